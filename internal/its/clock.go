// Package its converts wall-clock instants to ITS timestamps.
//
// ITS time counts TAI milliseconds since 2004-01-01T00:00:00Z. The CAM
// generation delta time is that count modulo 65536.
package its

import "time"

// Epoch is the ITS reference instant
var Epoch = time.Date(2004, time.January, 1, 0, 0, 0, 0, time.UTC)

// LeapSeconds is the TAI−UTC increase since Epoch (2005, 2008, 2012, 2015, 2016)
const LeapSeconds = 5

// Clock supplies the current instant; tests swap the source
type Clock struct {
	now func() time.Time
}

// NewClock creates a clock; nil uses time.Now
func NewClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now}
}

// Now returns the current instant
func (c *Clock) Now() time.Time {
	return c.now()
}

// TAIMilliseconds returns ITS milliseconds for t; instants before Epoch map to 0
func TAIMilliseconds(t time.Time) uint64 {
	d := t.Sub(Epoch)
	if d < 0 {
		return 0
	}
	return uint64(d/time.Millisecond) + LeapSeconds*1000
}

// GenerationDeltaTime returns the wrapped 16-bit generation time of t
func GenerationDeltaTime(t time.Time) uint16 {
	return uint16(TAIMilliseconds(t) % 65536)
}
