package application

import (
	"time"

	"daybook/internal/domain"
)

// ParseDay parses a user-supplied date argument into UTC midnight.
// Accepts ISO dates ("2025-03-07") and the relative words "today",
// "yesterday" and "tomorrow".
func ParseDay(arg string) (time.Time, error) {
	switch arg {
	case "today":
		return domain.DayOf(time.Now()), nil
	case "yesterday":
		return domain.DayOf(time.Now()).AddDate(0, 0, -1), nil
	case "tomorrow":
		return domain.DayOf(time.Now()).AddDate(0, 0, 1), nil
	}

	t, err := time.ParseInLocation("2006-01-02", arg, time.UTC)
	if err != nil {
		return time.Time{}, &ValidationError{
			Field:   "date",
			Message: "expected YYYY-MM-DD, today, yesterday or tomorrow",
		}
	}
	return t, nil
}

// ParseAdjacency parses "previous"/"next" (and the short forms
// "prev"/"n") into an adjacency direction.
func ParseAdjacency(arg string) (Adjacency, error) {
	switch arg {
	case "previous", "prev", "p":
		return Previous, nil
	case "next", "n":
		return Next, nil
	default:
		return 0, &ValidationError{
			Field:   "direction",
			Message: "expected previous or next",
		}
	}
}
