package domain

import "time"

// NavKind tags a timeline entry.
type NavKind int

const (
	NavNote NavKind = iota
	NavGap
)

// NavItem is one entry in the gap-collapsed timeline: either a dated
// note or a summarized run of consecutive missing days. For a gap,
// Date is the first missing day and GapDays counts the run (>= 1).
type NavItem struct {
	Kind      NavKind
	Date      time.Time
	Note      NoteRef // notes only
	IsActive  bool    // matches the caller-supplied active date
	IsCurrent bool    // matches the caller-supplied current date
	GapDays   int     // gaps only
}

// BuildTimeline produces the ordered note/gap sequence for a graph.
// Notes appear oldest first; between consecutive notes a single gap
// entry summarizes any missing days. No gap is emitted before the
// first or after the last note, and an empty graph yields nil.
//
// Invariant: walking the result from the first note's date, counting
// one day per note and GapDays per gap, visits every calendar day
// through the last note's date exactly once.
func BuildTimeline(g *Graph, active, current time.Time) []NavItem {
	notes := g.Notes(DirectionFuture)
	if len(notes) == 0 {
		return nil
	}

	items := make([]NavItem, 0, len(notes))
	for i, note := range notes {
		items = append(items, NavItem{
			Kind:      NavNote,
			Date:      note.Date,
			Note:      note.Note,
			IsActive:  SameDay(note.Date, active),
			IsCurrent: SameDay(note.Date, current),
		})

		if i+1 == len(notes) {
			break
		}
		missing := DaysBetween(note.Date, notes[i+1].Date) - 1
		if missing > 0 {
			items = append(items, NavItem{
				Kind:    NavGap,
				Date:    DayOf(note.Date).AddDate(0, 0, 1),
				GapDays: missing,
			})
		}
	}

	return items
}
