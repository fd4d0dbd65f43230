package domain

import "time"

// NoteRef identifies a daily note file owned by the vault.
type NoteRef struct {
	ID   string // vault-relative path, unique within the vault
	Path string // absolute filesystem path
}

// Waypoint is a node in the time-indexed note graph: either a single
// dated note or a named group of other waypoints. The set of variants
// is closed; traversal switches on the concrete type.
type Waypoint interface {
	ID() string
	Time() time.Time

	waypoint()
}

// NoteWaypoint is a leaf holding one dated note.
type NoteWaypoint struct {
	Note NoteRef
	Date time.Time // UTC midnight derived from the note path
}

func (w *NoteWaypoint) ID() string      { return w.Note.ID }
func (w *NoteWaypoint) Time() time.Time { return w.Date }
func (w *NoteWaypoint) waypoint()       {}

// GroupWaypoint is a named collection of waypoints. Children are kept
// in insertion order; traversal re-sorts by time, so order here does
// not affect query results.
type GroupWaypoint struct {
	Name     string
	Override time.Time // explicit time; zero means derive from children
	Children []Waypoint
}

// NewGroup creates an empty group waypoint.
func NewGroup(name string) *GroupWaypoint {
	return &GroupWaypoint{Name: name}
}

// Add appends children to the group. Groups are append-only during
// graph construction and read-only once traversal begins.
func (g *GroupWaypoint) Add(children ...Waypoint) {
	g.Children = append(g.Children, children...)
}

func (g *GroupWaypoint) ID() string { return g.Name }

// Time returns the explicit override if set, otherwise the earliest
// dated leaf descendant's time. A group with no dated descendants has
// a zero time and is excluded from calendar traversal.
func (g *GroupWaypoint) Time() time.Time {
	if !g.Override.IsZero() {
		return g.Override
	}
	var earliest time.Time
	for _, child := range g.Children {
		t := child.Time()
		if !ValidDay(t) {
			continue
		}
		if earliest.IsZero() || t.Before(earliest) {
			earliest = t
		}
	}
	return earliest
}

func (g *GroupWaypoint) waypoint() {}
