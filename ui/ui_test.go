package ui

import (
	"image/color"
	"testing"
	"time"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/milk9111/stargate/clock"
	"github.com/milk9111/stargate/console"
)

func TestSanitizePaste(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "contact", want: "contact"},
		{in: "help\nclear", want: "help"},
		{in: "pro\tjects", want: "projects"},
		{in: "\r\nrest", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := sanitizePaste(tt.in); got != tt.want {
				t.Fatalf("sanitizePaste(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTail(t *testing.T) {
	lines := make([]console.Line, 20)
	for i := range lines {
		lines[i] = console.Line{Text: string(rune('a' + i))}
	}
	got := tail(lines, visibleLines)
	if len(got) != visibleLines || got[0].Text != lines[20-visibleLines].Text {
		t.Fatalf("tail = %v", got)
	}
	if len(tail(lines[:3], visibleLines)) != 3 {
		t.Fatal("short log was trimmed")
	}
}

func TestConsoleRowsFollowLog(t *testing.T) {
	con := console.New(console.Text{}, console.Handlers{})
	p := &ConsolePanel{con: con}
	for i := 0; i < 3; i++ {
		p.addRow(DefaultFace())
	}

	con.Append("old", console.Normal)
	con.Append("> help", console.Command)
	con.Append("Now viewing: home", console.Info)
	con.Append("unknown command", console.Error)
	p.syncRows()

	want := []struct {
		label string
		tint  color.Color
	}{
		{"> help", severityColor(console.Command)},
		{"Now viewing: home", severityColor(console.Info)},
		{"unknown command", severityColor(console.Error)},
	}
	for i, w := range want {
		if got := p.rows[i].Label; got != w.label {
			t.Fatalf("row %d label = %q, want %q", i, got, w.label)
		}
		if p.tints[i] != w.tint {
			t.Fatalf("row %d tint = %v, want %v", i, p.tints[i], w.tint)
		}
	}

	con.Clear()
	con.Append("fresh", console.Normal)
	p.syncRows()
	if p.rows[0].Label != "fresh" || p.tints[0] != severityColor(console.Normal) {
		t.Fatalf("row 0 = %q %v after clear", p.rows[0].Label, p.tints[0])
	}
	for i := 1; i < len(p.rows); i++ {
		if p.rows[i].Label != "" {
			t.Fatalf("row %d = %q, want blank", i, p.rows[i].Label)
		}
	}
}

type seq struct{ vals []float64 }

func (s *seq) Float64() float64 {
	if len(s.vals) == 0 {
		return 1
	}
	v := s.vals[0]
	s.vals = s.vals[1:]
	return v
}

func TestClockLabelGlitchTint(t *testing.T) {
	// interval 2s, winning chance roll, 200ms glitch.
	w := clock.NewWidget(func() time.Time { return time.Unix(0, 0) }, time.UTC, &seq{vals: []float64{0, 0.1, 0}})
	face := DefaultFace()
	c := &ClockLabel{
		widget: w,
		tint:   clockColor,
		text:   widget.NewText(widget.TextOpts.Text(w.Text(), &face, clockColor)),
	}

	steps := []struct {
		dt   time.Duration
		want color.Color
	}{
		{0, clockColor},
		{2 * time.Second, glitchColor},
		{200 * time.Millisecond, clockColor},
	}
	for _, step := range steps {
		w.Tick(step.dt)
		c.sync()
		if c.tint != step.want {
			t.Fatalf("after %v tint = %v, want %v", step.dt, c.tint, step.want)
		}
		if c.text.Label != w.Text() {
			t.Fatalf("label = %q, want %q", c.text.Label, w.Text())
		}
	}
}
