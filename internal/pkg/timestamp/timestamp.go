package timestamp

import (
	"strings"
	"time"

	"manga-cafe-billing/internal/pkg/errs"
)

var ErrInvalidTimestamp = errs.New("invalid timestamp")

// Layouts without an offset are read in the caller's location.
var localLayouts = []string{
	time.DateTime,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
}

// Parse accepts RFC3339 or a naive "YYYY-MM-DD HH:MM[:SS]" timestamp.
func Parse(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errs.Wrapf(ErrInvalidTimestamp, "cannot parse %q", s)
}
