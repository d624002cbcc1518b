package civil

// DateTime is a date with a time of day, free of any time zone. It is stored
// as milliseconds since 1970-01-01 00:00:00, so shifting it across day,
// month or year boundaries is plain integer arithmetic; the calendar fields
// are derived on access.
type DateTime struct {
	millis int64
}

// NewDateTime combines a date with a time of day given as milliseconds since
// midnight. millisOfDay may exceed a single day or be negative; the date
// rolls over accordingly.
func NewDateTime(d Date, millisOfDay int64) DateTime {
	return DateTime{millis: epochDays(d.year, d.month, d.day)*millisPerDay + millisOfDay}
}

// DateTimeOfUnixMilli returns the date-time for a Unix timestamp in
// milliseconds.
func DateTimeOfUnixMilli(ms int64) DateTime {
	return DateTime{millis: ms}
}

// UnixMilli returns the value as milliseconds since 1970-01-01 00:00:00.
func (t DateTime) UnixMilli() int64 { return t.millis }

// AddMillis shifts the date-time by a signed number of milliseconds. The
// result is fully normalized: a shift across midnight rolls the date, and a
// roll across a month or year boundary rolls those too.
func (t DateTime) AddMillis(delta int64) DateTime {
	return DateTime{millis: t.millis + delta}
}

// Date returns the calendar date.
func (t DateTime) Date() Date {
	year, month, day := dateOfEpochDays(floorDiv(t.millis, millisPerDay))
	return Date{year: year, month: month, day: day}
}

// Hour returns the hour of the day, in [0, 23].
func (t DateTime) Hour() int { return int(t.millisOfDay() / millisPerHour) }

// Minute returns the minute of the hour, in [0, 59].
func (t DateTime) Minute() int { return int(t.millisOfDay() % millisPerHour / millisPerMinute) }

// Second returns the second of the minute, in [0, 59].
func (t DateTime) Second() int { return int(t.millisOfDay() % millisPerMinute / millisPerSecond) }

// Millisecond returns the millisecond of the second, in [0, 999].
func (t DateTime) Millisecond() int { return int(t.millisOfDay() % millisPerSecond) }

// Equal reports whether two date-times name the same instant.
func (t DateTime) Equal(o DateTime) bool { return t == o }

func (t DateTime) millisOfDay() int64 {
	return t.millis - floorDiv(t.millis, millisPerDay)*millisPerDay
}

// MillisOfDay combines clock fields into milliseconds since midnight.
func MillisOfDay(hour, minute, second, milli int) int64 {
	return int64(hour)*millisPerHour + int64(minute)*millisPerMinute + int64(second)*millisPerSecond + int64(milli)
}

const (
	millisPerSecond = 1000
	millisPerMinute = 60 * millisPerSecond
	millisPerHour   = 60 * millisPerMinute
	millisPerDay    = 24 * millisPerHour
)

// floorDiv divides rounding towards negative infinity, so that instants
// before the epoch land on the correct day.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b < 0 {
		q--
	}
	return q
}
