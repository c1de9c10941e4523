package clock

import "time"

// Portal civil time is pinned to UTC+8 regardless of the host timezone, so
// attendance dates and times never shift with server relocation or DST.
var Location = time.FixedZone("UTC+8", 8*60*60)

// Clock supplies the current civil time. Services take a Clock so tests can
// pin the wall clock.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().In(Location)
}

// System returns a Clock backed by the real wall clock in the portal timezone.
func System() Clock {
	return systemClock{}
}

// Fixed returns a Clock that always reports t, converted to the portal
// timezone.
func Fixed(t time.Time) Clock {
	return fixedClock{t.In(Location)}
}

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time {
	return c.t
}
