package clock

import "time"

type Clock interface {
	Now() time.Time
}

// Func adapts a plain function to Clock.
type Func func() time.Time

func (f Func) Now() time.Time {
	return f()
}

func Real() Clock {
	return Func(time.Now)
}

// Fixed always reports t; tests use it to pin issue times.
func Fixed(t time.Time) Clock {
	return Func(func() time.Time { return t })
}
