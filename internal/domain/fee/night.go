package fee

import "time"

// NightWindow is the local-hour range [StartHour, EndHour). It wraps past
// midnight when StartHour > EndHour.
type NightWindow struct {
	StartHour int
	EndHour   int
}

func (w NightWindow) Contains(t time.Time) bool {
	h := t.Hour()
	if w.StartHour > w.EndHour {
		return h >= w.StartHour || h < w.EndHour
	}
	return h >= w.StartHour && h < w.EndHour
}

// Touches reports whether any minute step start, start+1m, ... before end
// falls inside the window.
func (w NightWindow) Touches(start, end time.Time) bool {
	if !start.Before(end) || w.StartHour == w.EndHour {
		return false
	}
	if w.Contains(start) {
		return true
	}

	next := w.nextStart(start)
	steps := (next.Sub(start) + time.Minute - 1) / time.Minute
	return start.Add(steps * time.Minute).Before(end)
}

func (w NightWindow) nextStart(t time.Time) time.Time {
	y, m, d := t.Date()
	next := time.Date(y, m, d, w.StartHour, 0, 0, 0, t.Location())
	if !next.After(t) {
		next = time.Date(y, m, d+1, w.StartHour, 0, 0, 0, t.Location())
	}
	return next
}
