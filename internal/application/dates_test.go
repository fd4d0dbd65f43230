package application

import (
	"testing"
	"time"

	"daybook/internal/domain"
)

func TestParseDay(t *testing.T) {
	t.Run("ISO date", func(t *testing.T) {
		got, err := ParseDay("2025-03-07")
		if err != nil {
			t.Fatalf("ParseDay failed: %v", err)
		}
		if !got.Equal(domain.Day(2025, time.March, 7)) {
			t.Errorf("got %v, want 2025-03-07 UTC", got)
		}
		if got.Location() != time.UTC {
			t.Errorf("expected UTC, got %v", got.Location())
		}
	})

	t.Run("relative words", func(t *testing.T) {
		today, err := ParseDay("today")
		if err != nil {
			t.Fatalf("ParseDay(today) failed: %v", err)
		}
		yesterday, _ := ParseDay("yesterday")
		tomorrow, _ := ParseDay("tomorrow")

		if domain.DaysBetween(yesterday, today) != 1 {
			t.Error("yesterday should be one day before today")
		}
		if domain.DaysBetween(today, tomorrow) != 1 {
			t.Error("tomorrow should be one day after today")
		}
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		for _, arg := range []string{"", "07/03/2025", "2025-3-7", "someday"} {
			if _, err := ParseDay(arg); err == nil {
				t.Errorf("ParseDay(%q) should fail", arg)
			}
		}
	})
}

func TestParseAdjacency(t *testing.T) {
	if dir, err := ParseAdjacency("previous"); err != nil || dir != Previous {
		t.Errorf("ParseAdjacency(previous) = %v, %v", dir, err)
	}
	if dir, err := ParseAdjacency("next"); err != nil || dir != Next {
		t.Errorf("ParseAdjacency(next) = %v, %v", dir, err)
	}
	if _, err := ParseAdjacency("sideways"); err == nil {
		t.Error("ParseAdjacency(sideways) should fail")
	}
}
