package plan

import "manga-cafe-billing/internal/pkg/errs"

var ErrInvalidPlan = errs.New("invalid plan")

type ID string

const (
	Regular1Hour ID = "regular_1hour"
	Pack3Hour    ID = "pack_3hour"
	Pack5Hour    ID = "pack_5hour"
	Pack8Hour    ID = "pack_8hour"
)

func (id ID) String() string {
	return string(id)
}

func (id ID) IsValid() bool {
	_, ok := byID[id]
	return ok
}

func ParseID(s string) (ID, error) {
	id := ID(s)
	if !id.IsValid() {
		return "", errs.Wrapf(ErrInvalidPlan, "unknown plan %q", s)
	}
	return id, nil
}
