package civil

// Conversion between calendar dates and days since the Unix epoch. The cycle
// constants and both directions of the conversion are based on the Go
// standard library's time package, which counts days from a distant absolute
// epoch so that all intermediate values are non-negative.

const (
	daysPer400Years = 365*400 + 97
	daysPer100Years = 365*100 + 24
	daysPer4Years   = 365*4 + 1

	absoluteZeroYear = -292277022399
)

// daysBefore[m] counts the number of days in a non-leap year before the
// month with 1-based number m+1.
var daysBefore = [13]uint64{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334, 365}

var unixEpochDays = int64(daysSinceAbsoluteEpoch(1970))

// epochDays returns the number of days from 1970-01-01 to the given date.
// It assumes a date validated by NewDate.
func epochDays(year, month, day int) int64 {
	d := daysSinceAbsoluteEpoch(year) + daysBefore[month-1] + uint64(day) - 1
	if month > 2 && IsLeapYear(year) {
		d++ // +leap day
	}
	return int64(d) - unixEpochDays
}

// daysSinceAbsoluteEpoch takes a year and returns the number of days from
// the absolute epoch to the start of that year.
// This is basically (year - absoluteZeroYear) * 365, but accounting for leap days.
func daysSinceAbsoluteEpoch(year int) uint64 {
	y := uint64(int64(year) - absoluteZeroYear)

	// Add in days from 400-year cycles.
	n := y / 400
	y -= 400 * n
	d := uint64(daysPer400Years) * n

	// Add in 100-year cycles.
	n = y / 100
	y -= 100 * n
	d += daysPer100Years * n

	// Add in 4-year cycles.
	n = y / 4
	y -= 4 * n
	d += daysPer4Years * n

	// Add in non-leap years.
	n = y
	d += 365 * n

	return d
}

// dateOfEpochDays is the inverse of epochDays: it splits a day count
// relative to 1970-01-01 back into a calendar date.
func dateOfEpochDays(days int64) (year, month, day int) {
	d := uint64(days + unixEpochDays)

	// Split off 400-year cycles.
	n := d / daysPer400Years
	y := 400 * n
	d -= daysPer400Years * n

	// Cut off 100-year cycles.
	// The last cycle has one extra leap year, so on the last day
	// of that year, day / daysPer100Years will be 4 instead of 3.
	// Cut it back down to 3 by subtracting n>>2.
	n = d / daysPer100Years
	n -= n >> 2
	y += 100 * n
	d -= daysPer100Years * n

	// Cut off 4-year cycles.
	n = d / daysPer4Years
	y += 4 * n
	d -= daysPer4Years * n

	// Cut off years within a 4-year cycle, with the same
	// 4-instead-of-3 adjustment as for the 100-year cycles.
	n = d / 365
	n -= n >> 2
	y += n
	d -= 365 * n

	year = int(int64(y) + absoluteZeroYear)
	yday := int(d)

	if IsLeapYear(year) {
		switch {
		case yday > 31+29-1:
			// After leap day; pretend it wasn't there.
			yday--
		case yday == 31+29-1:
			return year, 2, 29
		}
	}

	// yday now indexes into a non-leap year. Estimate the month, correct the
	// estimate with the cumulative day table, and take the remainder as the
	// day of the month.
	month = yday / 31
	end := int(daysBefore[month+1])
	var begin int
	if yday >= end {
		month++
		begin = end
	} else {
		begin = int(daysBefore[month])
	}
	day = yday - begin + 1
	month++ // January is 1
	return year, month, day
}
