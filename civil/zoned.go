package civil

import (
	"fmt"
	"time"
)

// Zoned binds a UTC instant to a time zone's rules. The rules are an opaque,
// immutable reference; Zoned never mutates them and performs no rule lookup
// beyond asking the zone for its offset at the instant.
type Zoned struct {
	utc DateTime
	loc *time.Location
}

// InZone returns the zoned value for the given UTC instant under loc's
// rules. A nil loc means UTC.
func InZone(loc *time.Location, utc DateTime) Zoned {
	if loc == nil {
		loc = time.UTC
	}
	return Zoned{utc: utc, loc: loc}
}

// UTC returns the underlying instant.
func (z Zoned) UTC() DateTime { return z.utc }

// Location returns the zone's rules.
func (z Zoned) Location() *time.Location { return z.loc }

// Local returns the date-time as it reads on a wall clock in the zone, i.e.
// the UTC instant shifted by the zone's offset at that instant.
func (z Zoned) Local() DateTime {
	return z.utc.AddMillis(int64(z.offsetSeconds()) * millisPerSecond)
}

// OffsetString returns the zone's canonical UTC-offset suffix at the
// instant: "Z" for a zero offset, otherwise "+HH:MM" or "-HH:MM".
func (z Zoned) OffsetString() string {
	offset := z.offsetSeconds()
	if offset == 0 {
		return "Z"
	}
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	return fmt.Sprintf("%s%02d:%02d", sign, offset/3600, offset%3600/60)
}

// Equal reports whether two zoned values name the same instant under the
// same rules.
func (z Zoned) Equal(o Zoned) bool { return z.utc == o.utc && z.loc == o.loc }

func (z Zoned) offsetSeconds() int {
	_, offset := time.UnixMilli(z.utc.UnixMilli()).In(z.loc).Zone()
	return offset
}
