package iso8601

import (
	"fmt"

	"github.com/ngrash/go-iso8601/civil"
)

// FormatDate renders d in the extended form, e.g. "2018-05-27". The year is
// left-padded to at least four digits but never truncated, so years beyond
// 9999 render with all their digits while month and day stay two digits.
func FormatDate(d civil.Date) string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year(), d.Month(), d.Day())
}

// FormatDateTime renders t as a UTC instant with millisecond precision and
// the trailing 'Z', e.g. "2018-05-27T12:45:00.123Z".
func FormatDateTime(t civil.DateTime) string {
	return FormatDate(t.Date()) + fmt.Sprintf("T%02d:%02d:%02d.%03dZ",
		t.Hour(), t.Minute(), t.Second(), t.Millisecond())
}

// FormatZoned renders z using its local field values, with the zone's
// canonical offset suffix in place of 'Z', e.g.
// "1969-12-31T19:00:00.000-05:00".
func FormatZoned(z civil.Zoned) string {
	l := z.Local()
	return FormatDate(l.Date()) + fmt.Sprintf("T%02d:%02d:%02d.%03d%s",
		l.Hour(), l.Minute(), l.Second(), l.Millisecond(), z.OffsetString())
}
