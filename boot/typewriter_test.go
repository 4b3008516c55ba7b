package boot

import (
	"testing"
	"time"
)

const ms = time.Millisecond

func TestTypewriterScenario(t *testing.T) {
	tw := NewTypewriter([]string{"> A", "> B"}, 50*ms, 1000*ms)

	steps := []struct {
		at       time.Duration
		wantText string
		wantDone bool
	}{
		{at: 0, wantText: ">"},
		{at: 50 * ms, wantText: "> "},
		{at: 100 * ms, wantText: "> A"},
		{at: 1099 * ms, wantText: "> A"},
		{at: 1100 * ms, wantText: ">"},
		{at: 1150 * ms, wantText: "> "},
		{at: 1199 * ms, wantText: "> ", wantDone: false},
		{at: 1200 * ms, wantText: "> B", wantDone: true},
		{at: 5000 * ms, wantText: "> B", wantDone: true},
	}

	var now time.Duration
	for _, step := range steps {
		tw.Advance(step.at - now)
		now = step.at
		if got := tw.Text(); got != step.wantText {
			t.Fatalf("t=%v: Text() = %q, want %q", step.at, got, step.wantText)
		}
		if got := tw.Done(); got != step.wantDone {
			t.Fatalf("t=%v: Done() = %v, want %v", step.at, got, step.wantDone)
		}
	}
}

func TestTypewriterLargeStepCrossesLines(t *testing.T) {
	tw := NewTypewriter([]string{"ab", "", "cd"}, 50*ms, 1000*ms)
	tw.Advance(50*ms + 1000*ms)
	if tw.Line() != 1 || tw.Text() != "" {
		t.Fatalf("line=%d text=%q, want the empty spacer line", tw.Line(), tw.Text())
	}
	tw.Advance(1000 * ms)
	if tw.Line() != 2 || tw.Text() != "c" {
		t.Fatalf("line=%d text=%q, want %q", tw.Line(), tw.Text(), "c")
	}
	tw.Advance(50 * ms)
	if !tw.Done() {
		t.Fatal("expected done")
	}
}

func TestTypewriterEdgeCases(t *testing.T) {
	t.Run("no lines", func(t *testing.T) {
		if tw := NewTypewriter(nil, 0, 0); !tw.Done() || tw.Text() != "" {
			t.Fatalf("empty typewriter: done=%v text=%q", tw.Done(), tw.Text())
		}
	})
	t.Run("multibyte", func(t *testing.T) {
		tw := NewTypewriter([]string{"a…"}, 50*ms, 0)
		tw.Advance(50 * ms)
		if tw.Text() != "a…" || !tw.Done() {
			t.Fatalf("text=%q done=%v", tw.Text(), tw.Done())
		}
	})
}
