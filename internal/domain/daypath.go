package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Daily note paths follow a fixed structure inside the vault:
// <4-digit year>/<2-digit month>. <word>/<2-digit day> <word>.md
// e.g. "2025/12. Dec/29 Mon.md". Anything else is simply not a daily
// note and is excluded from the index without error.
var dayPathRegex = regexp.MustCompile(`(\d{4})/(\d{2})\. \w+/(\d{2}) \w+\.md$`)

// DateFromPath extracts the calendar date encoded in a daily note path.
// The returned time is UTC midnight. ok is false when the path does not
// match the pattern or encodes an impossible date (e.g. month 13).
func DateFromPath(path string) (date time.Time, ok bool) {
	m := dayPathRegex.FindStringSubmatch(path)
	if m == nil {
		return time.Time{}, false
	}

	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])

	t := Day(year, time.Month(month), day)
	// time.Date normalizes out-of-range components; a changed date
	// means the path named a day that does not exist.
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, false
	}

	return t, true
}

// PathForDate returns the canonical vault-relative path for a date,
// the inverse of DateFromPath.
func PathForDate(date time.Time) string {
	d := date.UTC()
	return fmt.Sprintf("%04d/%02d. %s/%02d %s.md",
		d.Year(), int(d.Month()), d.Format("Jan"), d.Day(), d.Format("Mon"))
}
