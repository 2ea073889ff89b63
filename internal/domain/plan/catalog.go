package plan

// Definition is a priced bundle of included time. Prices are in minor currency
// units and exclude tax.
type Definition struct {
	ID            ID
	DisplayName   string
	BasePrice     int64
	IncludedHours int
}

func (d Definition) IncludedMinutes() int {
	return d.IncludedHours * 60
}

var definitions = [...]Definition{
	{ID: Regular1Hour, DisplayName: "Regular (1 hour from check-in)", BasePrice: 500, IncludedHours: 1},
	{ID: Pack3Hour, DisplayName: "3-hour pack (3 hours from check-in)", BasePrice: 800, IncludedHours: 3},
	{ID: Pack5Hour, DisplayName: "5-hour pack (5 hours from check-in)", BasePrice: 1500, IncludedHours: 5},
	{ID: Pack8Hour, DisplayName: "8-hour pack (8 hours from check-in)", BasePrice: 1900, IncludedHours: 8},
}

var byID = func() map[ID]Definition {
	m := make(map[ID]Definition, len(definitions))
	for _, d := range definitions {
		m[d.ID] = d
	}
	return m
}()

func IsValid(id ID) bool {
	return id.IsValid()
}

func Lookup(id ID) (Definition, bool) {
	d, ok := byID[id]
	return d, ok
}

// All returns a fresh copy of the catalog in display order.
func All() []Definition {
	out := make([]Definition, len(definitions))
	copy(out, definitions[:])
	return out
}
