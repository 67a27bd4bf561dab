package claydraw

import (
	"errors"
	"testing"
)

func TestPromptInt(t *testing.T) {
	tests := []struct {
		answer string
		want   int
		ok     bool
	}{
		{"640", 640, true},
		{" 320 ", 320, true},
		{"640px", 640, true},
		{"+12", 12, true},
		{"0", 0, false},
		{"-5", 0, false},
		{"abc", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := promptInt(NewQueuePrompter(tt.answer), "n:", 1)
		if got != tt.want || ok != tt.ok {
			t.Errorf("promptInt(%q) = %d, %v, want %d, %v", tt.answer, got, ok, tt.want, tt.ok)
		}
	}
	if _, ok := promptInt(NoPrompter{}, "n:", 1); ok {
		t.Error("promptInt(dismissed) ok = true")
	}
}

func TestPromptDefaultIsCurrentValue(t *testing.T) {
	var defs []string
	p := PromptFunc(func(message, def string) (string, bool) {
		defs = append(defs, message+def)
		return def, true
	})
	ed := newTestEditor(t, WithPrompter(p))
	if err := ed.ResizeFromPrompt(); err != nil {
		t.Fatalf("ResizeFromPrompt() = %v", err)
	}
	want := []string{"Canvas width (px):100", "Canvas height (px):100"}
	if len(defs) != 2 || defs[0] != want[0] || defs[1] != want[1] {
		t.Errorf("prompts = %q, want %q", defs, want)
	}
}

func TestResizeFromPrompt(t *testing.T) {
	tests := []struct {
		name    string
		answers []string
		wantErr error
		w, h    int
	}{
		{"ok", []string{"40", "30"}, nil, 40, 30},
		{"units", []string{"40px", "30px"}, nil, 40, 30},
		{"non-numeric width", []string{"abc", "30"}, ErrPromptCancelled, 100, 100},
		{"zero height", []string{"40", "0"}, ErrPromptCancelled, 100, 100},
		{"dismissed height", []string{"40"}, ErrPromptCancelled, 100, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ed := newTestEditor(t, WithPrompter(NewQueuePrompter(tt.answers...)))
			err := ed.ResizeFromPrompt()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ResizeFromPrompt() = %v, want %v", err, tt.wantErr)
			}
			d := ed.Document()
			if d.Width() != tt.w || d.Height() != tt.h {
				t.Errorf("size = %dx%d, want %dx%d", d.Width(), d.Height(), tt.w, tt.h)
			}
			wantCommits := 0
			if tt.wantErr == nil {
				wantCommits = 1
			}
			if got := ed.History().Len(); got != wantCommits {
				t.Errorf("History().Len() = %d, want %d", got, wantCommits)
			}
		})
	}
}

func TestQueuePrompter(t *testing.T) {
	q := NewQueuePrompter("a")
	q.Push("b")
	if q.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", q.Len())
	}
	for _, want := range []string{"a", "b"} {
		if got, ok := q.Prompt("", ""); !ok || got != want {
			t.Errorf("Prompt() = %q, %v, want %q, true", got, ok, want)
		}
	}
	if _, ok := q.Prompt("", ""); ok {
		t.Error("Prompt() on an empty queue ok = true")
	}
}
