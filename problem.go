package iso8601

import (
	"fmt"
	"strings"
)

// Problem identifies one way the grammar can fail. The set of problems is
// closed: every value is one of the concrete types in this file, so callers
// can switch over them exhaustively. New failure conditions extend this set
// rather than reusing OtherProblem.
type Problem interface {
	fmt.Stringer
	problem()
}

// ExpectingDigit means a required ASCII digit was missing at the position.
type ExpectingDigit struct{}

func (ExpectingDigit) problem()       {}
func (ExpectingDigit) String() string { return "expecting a digit" }

// ExpectingNDigits means a digit run had the wrong length. It guards an
// invariant of the numeric field parser and should be unreachable, since
// fields are chomped digit by digit.
type ExpectingNDigits struct {
	N   int
	Got string
}

func (p ExpectingNDigits) problem() {}
func (p ExpectingNDigits) String() string {
	return fmt.Sprintf("expecting %d digits, got %q", p.N, p.Got)
}

// ExpectingRange means a parsed integer fell outside an inclusive bound.
type ExpectingRange struct {
	Value int
	Lo    int
	Hi    int
}

func (p ExpectingRange) problem() {}
func (p ExpectingRange) String() string {
	return fmt.Sprintf("expecting an integer between %d and %d, got %d", p.Lo, p.Hi, p.Value)
}

// ExpectingDot means a fractional-second suffix was attempted but the
// leading '.' was missing.
type ExpectingDot struct{}

func (ExpectingDot) problem()       {}
func (ExpectingDot) String() string { return "expecting '.'" }

// ExpectingZ means the literal UTC marker was attempted but not found.
type ExpectingZ struct{}

func (ExpectingZ) problem()       {}
func (ExpectingZ) String() string { return "expecting 'Z'" }

// ExpectingSign means a timezone-offset sign was required but the next
// character was none of '+', '-' or the Unicode minus sign.
type ExpectingSign struct{}

func (ExpectingSign) problem()       {}
func (ExpectingSign) String() string { return "expecting '+', '-' or '−'" }

// ExpectingEnd means the grammar finished but input remained.
type ExpectingEnd struct{}

func (ExpectingEnd) problem()       {}
func (ExpectingEnd) String() string { return "expecting end of input" }

// BadInt means a digit run could not be converted to a number. Like
// ExpectingNDigits it is defensive: chomped runs always convert.
type BadInt struct {
	Text string
}

func (p BadInt) problem()       {}
func (p BadInt) String() string { return fmt.Sprintf("invalid number %q", p.Text) }

// InvalidDate means the year/month/day triple is not a real calendar date.
// DaysInMonth carries the actual length of the month, accounting for leap
// years.
type InvalidDate struct {
	Year        int
	Month       int
	Day         int
	DaysInMonth int
}

func (p InvalidDate) problem() {}
func (p InvalidDate) String() string {
	return fmt.Sprintf("no such calendar date: %04d-%02d-%02d (the month has %d days)",
		p.Year, p.Month, p.Day, p.DaysInMonth)
}

// OtherProblem is an escape hatch for failures outside the closed set. The
// grammar in this package never produces it.
type OtherProblem struct {
	Message string
}

func (p OtherProblem) problem()       {}
func (p OtherProblem) String() string { return p.Message }

// DeadEnd records one failed alternative: what went wrong, the byte offset
// where it happened and the grammar contexts active at that point,
// outermost first.
type DeadEnd struct {
	Offset  int
	Problem Problem
	Context []string
}

// ParseError is the error returned by all parse functions. DeadEnds is never
// empty and holds one entry per alternative tried at the failure point, in
// the order they were tried.
type ParseError struct {
	DeadEnds []DeadEnd
}

// Error returns a string representation of the parse error, implementing
// the error interface.
func (e *ParseError) Error() string {
	var b strings.Builder
	for i, d := range e.DeadEnds {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(&b, "offset %d: %s", d.Offset, d.Problem)
		if len(d.Context) > 0 {
			fmt.Fprintf(&b, " (in %s)", strings.Join(d.Context, " > "))
		}
	}
	return b.String()
}
