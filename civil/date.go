// Package civil implements calendar dates and naive date-times in the
// proleptic Gregorian calendar. It ignores leap seconds but respects leap
// years and deliberately does not depend on time.Location: a plain calendar
// value has no zone, and zone handling enters only with Zoned.
package civil

import "fmt"

// Date is a validated calendar date. The zero value is not a valid date;
// construct values with NewDate.
type Date struct {
	year  int
	month int
	day   int
}

// NewDate returns the calendar date for the given triple. It fails if month
// is outside [1, 12] or day is outside [1, DaysInMonth(year, month)].
func NewDate(year, month, day int) (Date, error) {
	if month < 1 || month > 12 {
		return Date{}, fmt.Errorf("month %d out of range [1, 12]", month)
	}
	if max := DaysInMonth(year, month); day < 1 || day > max {
		return Date{}, fmt.Errorf("day %d out of range [1, %d] for %04d-%02d", day, max, year, month)
	}
	return Date{year: year, month: month, day: day}, nil
}

// Year returns the year.
func (d Date) Year() int { return d.year }

// Month returns the month, January being 1.
func (d Date) Month() int { return d.month }

// Day returns the day of the month, starting at 1.
func (d Date) Day() int { return d.day }

// Equal reports whether two dates name the same day.
func (d Date) Equal(o Date) bool { return d == o }

// String returns the date in the extended ISO 8601 form, e.g. "2018-05-27".
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

// IsLeapYear determines if the year is a leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in a given month for a specific year.
func DaysInMonth(year, month int) int {
	if month == 2 {
		if IsLeapYear(year) {
			return 29
		}
		return 28
	}
	if month == 4 || month == 6 || month == 9 || month == 11 {
		return 30
	}
	return 31
}
