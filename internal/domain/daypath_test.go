package domain

import (
	"testing"
	"time"
)

func TestDateFromPath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want time.Time
		ok   bool
	}{
		{"canonical daily note", "2025/03. Mar/07 Fri.md", Day(2025, time.March, 7), true},
		{"year end", "2025/12. Dec/29 Mon.md", Day(2025, time.December, 29), true},
		{"nested under vault folders", "journal/2024/01. Jan/02 Tue.md", Day(2024, time.January, 2), true},
		{"not a daily note", "notes/random.md", time.Time{}, false},
		{"missing weekday word", "2025/03. Mar/07.md", time.Time{}, false},
		{"missing month word", "2025/03/07 Fri.md", time.Time{}, false},
		{"single digit day", "2025/03. Mar/7 Fri.md", time.Time{}, false},
		{"wrong extension", "2025/03. Mar/07 Fri.txt", time.Time{}, false},
		{"impossible month", "2025/13. Mar/07 Fri.md", time.Time{}, false},
		{"impossible day", "2025/02. Feb/30 Sun.md", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DateFromPath(tt.path)
			if ok != tt.ok {
				t.Fatalf("DateFromPath(%q) ok = %v, want %v", tt.path, ok, tt.ok)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("DateFromPath(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestDateFromPathIsUTCMidnight(t *testing.T) {
	got, ok := DateFromPath("2025/03. Mar/07 Fri.md")
	if !ok {
		t.Fatal("expected path to parse")
	}
	if got.Location() != time.UTC {
		t.Errorf("expected UTC, got %v", got.Location())
	}
	if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 {
		t.Errorf("expected midnight, got %v", got)
	}
}

func TestPathForDateRoundTrip(t *testing.T) {
	dates := []time.Time{
		Day(2025, time.January, 1),
		Day(2025, time.December, 29),
		Day(2024, time.February, 29),
	}

	for _, date := range dates {
		path := PathForDate(date)
		got, ok := DateFromPath(path)
		if !ok {
			t.Fatalf("PathForDate(%v) = %q does not parse back", date, path)
		}
		if !got.Equal(date) {
			t.Errorf("round trip of %v via %q = %v", date, path, got)
		}
	}
}

func TestPathForDateFormat(t *testing.T) {
	got := PathForDate(Day(2025, time.December, 29))
	want := "2025/12. Dec/29 Mon.md"
	if got != want {
		t.Errorf("PathForDate = %q, want %q", got, want)
	}
}
