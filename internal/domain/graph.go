package domain

import (
	"sort"
	"time"
)

// Direction orders a traversal in time.
type Direction int

const (
	DirectionPast   Direction = iota // newest first
	DirectionFuture                  // oldest first
)

// Filter selects which waypoint kinds a traversal yields.
type Filter int

const (
	FilterAll Filter = iota
	FilterNotes
	FilterGroups
)

// TraverseOptions controls a graph traversal.
type TraverseOptions struct {
	Direction Direction
	Filter    Filter
	// IncludeUndated keeps waypoints whose time is zero or epoch;
	// by default they are dropped.
	IncludeUndated bool
}

// Graph is the full waypoint tree rooted at one group, representing
// the indexed state of all daily notes. A graph is immutable once
// built; rebuilds replace it wholesale.
type Graph struct {
	root *GroupWaypoint
}

// NewGraph creates a graph over the given root group.
func NewGraph(root *GroupWaypoint) *Graph {
	return &Graph{root: root}
}

// Root returns the root group.
func (g *Graph) Root() *GroupWaypoint { return g.root }

// Traverse flattens the graph (root included), filters by kind and
// calendar validity, sorts by time in the requested direction, and
// calls visit once per surviving waypoint. Output is deterministic for
// a fixed graph and options: ties keep flattening (pre-order) order.
func (g *Graph) Traverse(opts TraverseOptions, visit func(Waypoint)) {
	for _, w := range g.collect(opts) {
		visit(w)
	}
}

// Navigate returns the first leaf whose time exactly equals target, or
// nil. Exact-instant matches are expected to be unique in practice;
// ties resolve to the first leaf in flattening order.
func (g *Graph) Navigate(target time.Time) *NoteWaypoint {
	for _, w := range flatten(g.root) {
		note, isNote := w.(*NoteWaypoint)
		if isNote && ValidDay(note.Date) && note.Date.Equal(target) {
			return note
		}
	}
	return nil
}

// Find returns every leaf on the same UTC calendar day as target, in
// flattening order. Two notes may legitimately share a day.
func (g *Graph) Find(target time.Time) []*NoteWaypoint {
	var matches []*NoteWaypoint
	for _, w := range flatten(g.root) {
		note, isNote := w.(*NoteWaypoint)
		if isNote && ValidDay(note.Date) && SameDay(note.Date, target) {
			matches = append(matches, note)
		}
	}
	return matches
}

// Notes returns the dated leaves in the given direction. This is the
// chronological sequence the timeline and adjacency queries consume.
func (g *Graph) Notes(dir Direction) []*NoteWaypoint {
	collected := g.collect(TraverseOptions{Direction: dir, Filter: FilterNotes})
	notes := make([]*NoteWaypoint, len(collected))
	for i, w := range collected {
		notes[i] = w.(*NoteWaypoint)
	}
	return notes
}

func (g *Graph) collect(opts TraverseOptions) []Waypoint {
	var selected []Waypoint
	for _, w := range flatten(g.root) {
		switch w.(type) {
		case *NoteWaypoint:
			if opts.Filter == FilterGroups {
				continue
			}
		case *GroupWaypoint:
			if opts.Filter == FilterNotes {
				continue
			}
		}
		if !opts.IncludeUndated && !ValidDay(w.Time()) {
			continue
		}
		selected = append(selected, w)
	}

	sort.SliceStable(selected, func(i, j int) bool {
		if opts.Direction == DirectionPast {
			return selected[i].Time().After(selected[j].Time())
		}
		return selected[i].Time().Before(selected[j].Time())
	})

	return selected
}

// flatten walks the tree pre-order, root first.
func flatten(root Waypoint) []Waypoint {
	var all []Waypoint
	var walk func(Waypoint)
	walk = func(w Waypoint) {
		all = append(all, w)
		if group, isGroup := w.(*GroupWaypoint); isGroup {
			for _, child := range group.Children {
				walk(child)
			}
		}
	}
	walk(root)
	return all
}
