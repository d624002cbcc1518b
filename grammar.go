package iso8601

import (
	"math"
	"strconv"

	"github.com/ngrash/go-iso8601/civil"
	"github.com/ngrash/go-iso8601/internal/scan"
)

// The grammar is a hand-written recursive descent over the scan.Scanner
// cursor. Every rule either returns a value or a non-empty list of dead
// ends; there is no panic path. Ordered alternatives follow the commit
// convention: an alternative that fails without consuming input is rolled
// back and the next one is tried, while one that fails after consuming
// input ends the parse with its dead ends.

// fail records a dead end at the current position with the active contexts.
func fail(s *scan.Scanner, p Problem) []DeadEnd {
	return []DeadEnd{{Offset: s.Pos(), Problem: p, Context: s.Context()}}
}

// expectEnd fails unless the whole input has been consumed.
func expectEnd(s *scan.Scanner) []DeadEnd {
	if !s.Done() {
		return fail(s, ExpectingEnd{})
	}
	return nil
}

// paddedInt consumes exactly digits ASCII digits and converts them to a
// non-negative integer.
func paddedInt(s *scan.Scanner, digits int) (int, []DeadEnd) {
	start := s.Mark()
	for i := 0; i < digits; i++ {
		if _, ok := s.Digit(); !ok {
			return 0, fail(s, ExpectingDigit{})
		}
	}
	run := s.Slice(start)
	if len(run) != digits { // invariant guard, unreachable given the chomp above
		return 0, fail(s, ExpectingNDigits{N: digits, Got: run})
	}
	n, err := strconv.Atoi(run)
	if err != nil {
		return 0, fail(s, BadInt{Text: run})
	}
	return n, nil
}

// boundedInt consumes exactly two digits and checks the value against an
// inclusive range.
func boundedInt(s *scan.Scanner, lo, hi int) (int, []DeadEnd) {
	n, dead := paddedInt(s, 2)
	if dead != nil {
		return 0, dead
	}
	if n < lo || n > hi {
		return 0, fail(s, ExpectingRange{Value: n, Lo: lo, Hi: hi})
	}
	return n, nil
}

// calendarDate parses a date in basic (20180527) or extended (2018-05-27)
// form and validates the triple against the calendar.
func calendarDate(s *scan.Scanner) (civil.Date, []DeadEnd) {
	s.Push("year")
	year, dead := paddedInt(s, 4)
	s.Pop()
	if dead != nil {
		return civil.Date{}, dead
	}

	eatDashes(s)

	s.Push("month")
	month, dead := boundedInt(s, 1, 12)
	s.Pop()
	if dead != nil {
		return civil.Date{}, dead
	}

	eatDashes(s)

	s.Push("day-in-month")
	day, dead := boundedInt(s, 1, 31)
	s.Pop()
	if dead != nil {
		return civil.Date{}, dead
	}

	d, err := civil.NewDate(year, month, day)
	if err != nil {
		s.Push("leap-year")
		defer s.Pop()
		return civil.Date{}, fail(s, InvalidDate{
			Year:        year,
			Month:       month,
			Day:         day,
			DaysInMonth: civil.DaysInMonth(year, month),
		})
	}
	return d, nil
}

// eatDashes skips any run of '-' separators between date fields.
func eatDashes(s *scan.Scanner) {
	for s.Eat('-') {
	}
}

// timeOfDayMillis parses HH[:]MM[:]SS with an optional fractional-second
// suffix and returns milliseconds since midnight.
func timeOfDayMillis(s *scan.Scanner) (int64, []DeadEnd) {
	s.Push("hour")
	hour, dead := boundedInt(s, 0, 23)
	s.Pop()
	if dead != nil {
		return 0, dead
	}

	s.Eat(':')

	s.Push("minute")
	minute, dead := boundedInt(s, 0, 59)
	s.Pop()
	if dead != nil {
		return 0, dead
	}

	s.Eat(':')

	s.Push("second")
	second, dead := boundedInt(s, 0, 59)
	s.Pop()
	if dead != nil {
		return 0, dead
	}

	milli, dead := fractionMillis(s)
	if dead != nil {
		return 0, dead
	}

	return civil.MillisOfDay(hour, minute, second, milli), nil
}

// fractionMillis parses an optional fractional-second suffix. A missing
// suffix yields 0; a '.' commits to the suffix, so '.' without digits is a
// dead end rather than a fallback.
func fractionMillis(s *scan.Scanner) (int, []DeadEnd) {
	s.Push("fraction")
	defer s.Pop()

	mark := s.Mark()
	milli, dead := dotFraction(s)
	if dead == nil {
		return milli, nil
	}
	if s.Pos() != mark {
		return 0, dead
	}
	s.Rewind(mark)
	return 0, nil
}

// dotFraction parses '.' followed by one or more digits and rounds the
// fraction to the nearest whole millisecond. The digit run may be longer
// than three digits; ".9996" rounds to 1000 and the carry into the next
// second falls out of the later millisecond addition.
func dotFraction(s *scan.Scanner) (int, []DeadEnd) {
	if !s.Eat('.') {
		return 0, fail(s, ExpectingDot{})
	}
	start := s.Mark()
	for {
		if _, ok := s.Digit(); !ok {
			break
		}
	}
	run := s.Slice(start)
	if run == "" {
		return 0, fail(s, ExpectingDigit{})
	}
	f, err := strconv.ParseFloat("0."+run, 64)
	if err != nil {
		return 0, fail(s, BadInt{Text: run})
	}
	return int(math.Round(f * 1000)), nil
}

// utcOffsetMillis parses the timezone suffix: 'Z', a signed HH[:MM] offset,
// or nothing, which all default to UTC. The returned value is the signed
// adjustment to add to the local time to reach UTC; see offsetPolarity for
// the sign convention.
func utcOffsetMillis(s *scan.Scanner) (int64, []DeadEnd) {
	s.Push("offset")
	defer s.Pop()

	mark := s.Mark()
	ms, dead := zuluOffset(s)
	if dead == nil {
		return ms, nil
	}
	s.Rewind(mark)

	mark = s.Mark()
	ms, dead = signedOffset(s)
	if dead == nil {
		return ms, nil
	}
	if s.Pos() != mark {
		return 0, dead
	}
	s.Rewind(mark)

	// No offset present: the time is already UTC.
	return 0, nil
}

// zuluOffset parses the literal UTC marker.
func zuluOffset(s *scan.Scanner) (int64, []DeadEnd) {
	if !s.Eat('Z') {
		return 0, fail(s, ExpectingZ{})
	}
	return 0, nil
}

// signedOffset parses a sign followed by hours and optional minutes, in
// basic (+0530, +05) or extended (+05:30) form.
func signedOffset(s *scan.Scanner) (int64, []DeadEnd) {
	polarity, dead := offsetPolarity(s)
	if dead != nil {
		return 0, dead
	}

	s.Push("hour")
	hour, dead := boundedInt(s, 0, 23)
	s.Pop()
	if dead != nil {
		return 0, dead
	}

	minute := 0
	if colon := s.Eat(':'); colon || isDigit(s.Peek()) {
		s.Push("minute")
		minute, dead = boundedInt(s, 0, 59)
		s.Pop()
		if dead != nil {
			return 0, dead
		}
	}

	return polarity * civil.MillisOfDay(hour, minute, 0, 0), nil
}

// offsetPolarity parses the offset sign and maps it to the multiplier that
// turns the written offset into a UTC adjustment.
//
// Invariant: the mapping is inverted on purpose. A written "+05:00" means
// the local time is five hours ahead of UTC, so normalizing to UTC must
// subtract the stated offset: '+' maps to -1, and '-' as well as the
// Unicode minus sign map to +1.
func offsetPolarity(s *scan.Scanner) (int64, []DeadEnd) {
	s.Push("timezone polarity")
	defer s.Pop()
	switch {
	case s.Eat('+'):
		return -1, nil
	case s.Eat('-'):
		return 1, nil
	case s.EatRune('−'): // U+2212
		return 1, nil
	}
	return 0, fail(s, ExpectingSign{})
}

// dateTime parses a date, an optional 'T', a time of day and an optional
// offset, and normalizes the result to UTC by applying the offset
// adjustment. The adjustment may roll the value across midnight, month and
// year boundaries; AddMillis handles the roll-over.
func dateTime(s *scan.Scanner) (civil.DateTime, []DeadEnd) {
	d, dead := calendarDate(s)
	if dead != nil {
		return civil.DateTime{}, dead
	}

	s.Eat('T')

	ms, dead := timeOfDayMillis(s)
	if dead != nil {
		return civil.DateTime{}, dead
	}

	offset, dead := utcOffsetMillis(s)
	if dead != nil {
		return civil.DateTime{}, dead
	}

	return civil.NewDateTime(d, ms).AddMillis(offset), nil
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}
