package iso8601

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ngrash/go-iso8601/civil"
)

func mustDate(t *testing.T, year, month, day int) civil.Date {
	t.Helper()
	d, err := civil.NewDate(year, month, day)
	if err != nil {
		t.Fatalf("NewDate(%d, %d, %d): %v", year, month, day, err)
	}
	return d
}

func deadEnds(t *testing.T, err error) []DeadEnd {
	t.Helper()
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error is %T, want *ParseError", err)
	}
	if len(perr.DeadEnds) == 0 {
		t.Fatal("ParseError with no dead ends")
	}
	return perr.DeadEnds
}

func TestParseDate(t *testing.T) {
	cases := []struct {
		input string
		want  civil.Date
	}{
		{"2018-05-27", mustDate(t, 2018, 5, 27)},
		{"20180527", mustDate(t, 2018, 5, 27)}, // basic form
		{"2018-0527", mustDate(t, 2018, 5, 27)},
		{"201805-27", mustDate(t, 2018, 5, 27)},
		{"1970-12-01", mustDate(t, 1970, 12, 1)},
		{"19701201", mustDate(t, 1970, 12, 1)},
		{"2020-02-29", mustDate(t, 2020, 2, 29)}, // leap day
		{"0001-01-01", mustDate(t, 1, 1, 1)},
	}
	for _, c := range cases {
		got, err := ParseDate(c.input)
		if err != nil {
			t.Errorf("ParseDate(%q): %v", c.input, err)
			continue
		}
		if diff := cmp.Diff(c.want, got); diff != "" {
			t.Errorf("ParseDate(%q) mismatch (-want +got):\n%s", c.input, diff)
		}
	}
}

func TestParseDate_Errors(t *testing.T) {
	cases := []struct {
		input string
		want  []DeadEnd
	}{
		{
			input: "20-05-27",
			want:  []DeadEnd{{Offset: 2, Problem: ExpectingDigit{}, Context: []string{"year"}}},
		},
		{
			input: "2018-13-27",
			want:  []DeadEnd{{Offset: 7, Problem: ExpectingRange{Value: 13, Lo: 1, Hi: 12}, Context: []string{"month"}}},
		},
		{
			input: "2018-05-32",
			want:  []DeadEnd{{Offset: 10, Problem: ExpectingRange{Value: 32, Lo: 1, Hi: 31}, Context: []string{"day-in-month"}}},
		},
		{
			input: "2019-02-29",
			want:  []DeadEnd{{Offset: 10, Problem: InvalidDate{Year: 2019, Month: 2, Day: 29, DaysInMonth: 28}, Context: []string{"leap-year"}}},
		},
		{
			input: "2018-04-31",
			want:  []DeadEnd{{Offset: 10, Problem: InvalidDate{Year: 2018, Month: 4, Day: 31, DaysInMonth: 30}, Context: []string{"leap-year"}}},
		},
		{
			input: "2018-05-27x",
			want:  []DeadEnd{{Offset: 10, Problem: ExpectingEnd{}}},
		},
	}
	for _, c := range cases {
		_, err := ParseDate(c.input)
		if err == nil {
			t.Errorf("ParseDate(%q) succeeded, want error", c.input)
			continue
		}
		if diff := cmp.Diff(c.want, deadEnds(t, err), cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("ParseDate(%q) dead ends mismatch (-want +got):\n%s", c.input, diff)
		}
	}
}

func TestParseDateTime(t *testing.T) {
	cases := []struct {
		input         string
		wantUnixMilli int64
	}{
		{"1970-01-01T00:00:00Z", 0},
		{"1970-01-01T00:01:01.000Z", 61000},
		{"19700101T000101Z", 61000}, // basic form
		{"19700101000101Z", 61000},  // 'T' omitted
		{"1970-01-01T00:01:01", 61000},

		// A stated offset is how far the local time is ahead of UTC, so
		// normalizing subtracts it: 10:00 at +05:00 is 05:00 UTC.
		{"1970-01-01T10:00:00+05:00", 5 * 60 * 60 * 1000},
		{"1969-12-31T19:00:00-05:00", 0},
		{"1969-12-31T19:00:00−05:00", 0}, // Unicode minus, U+2212
		{"1970-01-01T00:00:00+0530", -(5*60 + 30) * 60 * 1000},
		{"1970-01-01T00:00:00+05", -5 * 60 * 60 * 1000},
		{"1970-01-01T00:00:00-00:30", 30 * 60 * 1000},

		// Fractions round to the nearest millisecond, whatever their length.
		{"1970-01-01T00:00:00.5Z", 500},
		{"1970-01-01T00:00:00.123456Z", 123},
		{"1970-01-01T00:00:00.9996Z", 1000}, // round(999.6), carried into the next second
	}
	for _, c := range cases {
		got, err := ParseDateTime(c.input)
		if err != nil {
			t.Errorf("ParseDateTime(%q): %v", c.input, err)
			continue
		}
		if got.UnixMilli() != c.wantUnixMilli {
			t.Errorf("ParseDateTime(%q) = %d ms, want %d ms", c.input, got.UnixMilli(), c.wantUnixMilli)
		}
	}
}

func TestParseDateTime_Errors(t *testing.T) {
	cases := []struct {
		input string
		want  []DeadEnd
	}{
		{
			input: "2018-05-27T24:00:00Z",
			want:  []DeadEnd{{Offset: 13, Problem: ExpectingRange{Value: 24, Lo: 0, Hi: 23}, Context: []string{"hour"}}},
		},
		{
			input: "2018-05-27T12:60:00Z",
			want:  []DeadEnd{{Offset: 16, Problem: ExpectingRange{Value: 60, Lo: 0, Hi: 59}, Context: []string{"minute"}}},
		},
		{
			input: "2018-05-27T12:00:60Z",
			want:  []DeadEnd{{Offset: 19, Problem: ExpectingRange{Value: 60, Lo: 0, Hi: 59}, Context: []string{"second"}}},
		},
		{
			// The '.' commits to a fraction, so missing digits are a dead
			// end rather than a fallback to an absent fraction.
			input: "1970-01-01T00:00:00.Z",
			want:  []DeadEnd{{Offset: 20, Problem: ExpectingDigit{}, Context: []string{"fraction"}}},
		},
		{
			// A sign commits to an offset.
			input: "1970-01-01T00:00:00+0a:00",
			want:  []DeadEnd{{Offset: 21, Problem: ExpectingDigit{}, Context: []string{"offset", "hour"}}},
		},
		{
			// Neither 'Z' nor a sign: the offset defaults to UTC and the
			// leftover input is the problem.
			input: "1970-01-01T00:00:00*01:00",
			want:  []DeadEnd{{Offset: 19, Problem: ExpectingEnd{}}},
		},
	}
	for _, c := range cases {
		_, err := ParseDateTime(c.input)
		if err == nil {
			t.Errorf("ParseDateTime(%q) succeeded, want error", c.input)
			continue
		}
		if diff := cmp.Diff(c.want, deadEnds(t, err), cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("ParseDateTime(%q) dead ends mismatch (-want +got):\n%s", c.input, diff)
		}
	}
}

func TestParseDateTime_EquivalentForms(t *testing.T) {
	want, err := ParseDateTime("2018-05-27T12:45:00.123Z")
	if err != nil {
		t.Fatal(err)
	}
	for _, input := range []string{
		"20180527T124500.123Z",
		"2018-05-27T12:45:00.123",
		"2018-05-27T14:45:00.123+02:00",
		"2018-05-27T07:45:00.123-05:00",
		"20180527124500.123+0000",
	} {
		got, err := ParseDateTime(input)
		if err != nil {
			t.Errorf("ParseDateTime(%q): %v", input, err)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("ParseDateTime(%q) = %d ms, want %d ms", input, got.UnixMilli(), want.UnixMilli())
		}
	}
}

func TestParseError_Error(t *testing.T) {
	_, err := ParseDate("2019-02-29")
	if err == nil {
		t.Fatal("ParseDate succeeded, want error")
	}
	want := "offset 10: no such calendar date: 2019-02-29 (the month has 28 days) (in leap-year)"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
