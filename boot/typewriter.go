// Package boot types the boot messages one character at a time.
package boot

import "time"

const (
	DefaultCharDelay = 50 * time.Millisecond
	DefaultLinePause = 1000 * time.Millisecond
)

// Typewriter reveals Lines one at a time. The first character of a line is
// shown the moment the line starts, every following character CharDelay
// later. A fully typed line stays up for LinePause, then the text clears and
// the next line starts. Done becomes true once the last line is fully typed.
type Typewriter struct {
	Lines     []string
	CharDelay time.Duration
	LinePause time.Duration

	line    int
	typed   int
	clock   time.Duration
	pausing bool
	done    bool
}

func NewTypewriter(lines []string, charDelay, linePause time.Duration) *Typewriter {
	if charDelay <= 0 {
		charDelay = DefaultCharDelay
	}
	if linePause < 0 {
		linePause = DefaultLinePause
	}
	tw := &Typewriter{Lines: lines, CharDelay: charDelay, LinePause: linePause}
	tw.startLine()
	return tw
}

func (tw *Typewriter) startLine() {
	if tw.line >= len(tw.Lines) {
		tw.done = true
		return
	}
	tw.clock = 0
	tw.pausing = false
	n := len([]rune(tw.Lines[tw.line]))
	tw.typed = min(1, n)
	if tw.typed == n {
		tw.endLine()
	}
}

func (tw *Typewriter) endLine() {
	if tw.line == len(tw.Lines)-1 {
		tw.done = true
		return
	}
	tw.pausing = true
	tw.clock = 0
}

// Advance moves the typewriter forward by dt.
func (tw *Typewriter) Advance(dt time.Duration) {
	if tw == nil || tw.done || dt <= 0 {
		return
	}
	tw.clock += dt
	for !tw.done {
		if tw.pausing {
			if tw.clock < tw.LinePause {
				return
			}
			rest := tw.clock - tw.LinePause
			tw.line++
			tw.startLine()
			tw.clock = rest
			continue
		}
		if tw.clock < tw.CharDelay {
			return
		}
		tw.clock -= tw.CharDelay
		tw.typed++
		if tw.typed >= len([]rune(tw.Lines[tw.line])) {
			rest := tw.clock
			tw.endLine()
			tw.clock = rest
		}
	}
}

// Text is what is currently on screen.
func (tw *Typewriter) Text() string {
	if tw == nil || tw.line >= len(tw.Lines) {
		return ""
	}
	runes := []rune(tw.Lines[tw.line])
	return string(runes[:min(tw.typed, len(runes))])
}

// Line is the index of the line being shown.
func (tw *Typewriter) Line() int { return tw.line }

func (tw *Typewriter) Done() bool { return tw == nil || tw.done }

// Typing reports whether a caret should be shown.
func (tw *Typewriter) Typing() bool { return !tw.Done() && !tw.pausing }
