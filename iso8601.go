// Package iso8601 parses and renders dates, date-times and zoned date-times
// in the ISO 8601 textual format.
//
// Parsing accepts both the basic form (20180527T120000Z) and the extended
// form (2018-05-27T12:00:00Z), fractional seconds of any precision, and a
// timezone suffix that is either 'Z', a signed HH[:MM] offset or absent.
// Date-times are normalized to UTC while parsing. On failure, every parse
// function returns a *ParseError describing what was expected, at which
// offset, and in which part of the grammar.
//
// Rendering always produces the canonical zero-padded extended form, which
// parses back to the same value.
package iso8601

import (
	"time"

	"github.com/ngrash/go-iso8601/civil"
	"github.com/ngrash/go-iso8601/internal/scan"
)

// ParseDate parses a calendar date like "2018-05-27" or "20180527". The
// whole input must be consumed. The returned error is always a *ParseError.
func ParseDate(str string) (civil.Date, error) {
	s := scan.New(str)
	d, dead := calendarDate(s)
	if dead == nil {
		dead = expectEnd(s)
	}
	if dead != nil {
		return civil.Date{}, &ParseError{DeadEnds: dead}
	}
	return d, nil
}

// ParseDateTime parses a date-time like "2018-05-27T12:45:00.123+02:00" and
// normalizes it to UTC. The whole input must be consumed. The returned
// error is always a *ParseError.
func ParseDateTime(str string) (civil.DateTime, error) {
	s := scan.New(str)
	t, dead := dateTime(s)
	if dead == nil {
		dead = expectEnd(s)
	}
	if dead != nil {
		return civil.DateTime{}, &ParseError{DeadEnds: dead}
	}
	return t, nil
}

// ParseZonedDateTime parses a date-time and binds the resulting UTC instant
// to loc's rules. The zone is an opaque parameter: this package performs no
// rule lookup of its own. A nil loc means UTC.
func ParseZonedDateTime(loc *time.Location, str string) (civil.Zoned, error) {
	t, err := ParseDateTime(str)
	if err != nil {
		return civil.Zoned{}, err
	}
	return civil.InZone(loc, t), nil
}
