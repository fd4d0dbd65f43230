package watch

import (
	"testing"

	"github.com/fsnotify/fsnotify"
)

func TestRelevant(t *testing.T) {
	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"markdown created", fsnotify.Event{Name: "/v/2025/01. Jan/02 Thu.md", Op: fsnotify.Create}, true},
		{"markdown renamed", fsnotify.Event{Name: "/v/old.md", Op: fsnotify.Rename}, true},
		{"markdown removed", fsnotify.Event{Name: "/v/old.md", Op: fsnotify.Remove}, true},
		{"markdown written", fsnotify.Event{Name: "/v/old.md", Op: fsnotify.Write}, false},
		{"chmod only", fsnotify.Event{Name: "/v/old.md", Op: fsnotify.Chmod}, false},
		{"non-markdown created", fsnotify.Event{Name: "/v/image.png", Op: fsnotify.Create}, false},
		{"hidden file created", fsnotify.Event{Name: "/v/.trash.md", Op: fsnotify.Create}, false},
		{"uppercase extension", fsnotify.Event{Name: "/v/NOTE.MD", Op: fsnotify.Create}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := relevant(tt.event); got != tt.want {
				t.Errorf("relevant(%v) = %v, want %v", tt.event, got, tt.want)
			}
		})
	}
}
