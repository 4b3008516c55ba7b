// Package console is the portfolio terminal: an append-only output log and a
// fixed verb table. It holds no UI; the ui package renders Lines and feeds
// Submit.
package console

import (
	"strings"

	"github.com/milk9111/stargate/ecs/component"
)

const DefaultPrompt = "user@portfolio:~ $ "

type Severity int

const (
	Normal Severity = iota
	Command
	Info
	Error
)

func (s Severity) String() string {
	switch s {
	case Command:
		return "command"
	case Info:
		return "info"
	case Error:
		return "error"
	default:
		return "normal"
	}
}

type Line struct {
	Text     string
	Severity Severity
}

// Text is the configurable copy shown by the console.
type Text struct {
	Prompt  string
	Welcome []string
	Help    []string
}

// Handlers are the side effects verbs delegate to. Navigate is the same
// handler the nav spheres use; it reports whether the move started.
type Handlers struct {
	Navigate     func(name component.NodeName) bool
	ExportResume func() (string, error)
}

type Console struct {
	text     Text
	handlers Handlers
	verbs    *registry
	lines    []Line

	open    bool
	pointer bool
}

func New(text Text, handlers Handlers) *Console {
	c := &Console{handlers: handlers, verbs: defaultVerbs()}
	c.SetText(text)
	return c
}

// SetHandlers replaces the side-effect handlers.
func (c *Console) SetHandlers(handlers Handlers) {
	c.handlers = handlers
}

// SetText swaps the configurable copy; used by hot reload.
func (c *Console) SetText(text Text) {
	if strings.TrimSpace(text.Prompt) == "" {
		text.Prompt = DefaultPrompt
	}
	c.text = text
}

func (c *Console) Text() Text { return c.text }

// Open makes the console visible and prints the welcome lines once.
func (c *Console) Open() {
	if c.open {
		return
	}
	c.open = true
	for _, line := range c.text.Welcome {
		c.Append(line, Info)
	}
}

// EnablePointer marks the console as accepting input and clicks. Until then
// Submit is ignored and the nav spheres do not react.
func (c *Console) EnablePointer() {
	c.pointer = true
}

func (c *Console) IsOpen() bool         { return c.open }
func (c *Console) PointerEnabled() bool { return c.pointer }

// Submit echoes the trimmed input as a command line and dispatches it.
// It reports whether the line was accepted.
func (c *Console) Submit(raw string) bool {
	if !c.pointer {
		return false
	}
	input := strings.TrimSpace(raw)
	c.Append(c.text.Prompt+input, Command)
	c.dispatch(input)
	return true
}

func (c *Console) dispatch(input string) {
	if input == "" {
		return
	}
	verb, ok := c.verbs.resolve(strings.ToLower(input))
	if !ok {
		c.Append("Error: Unknown command '"+input+"'. Type 'help' for options.", Error)
		return
	}
	verb.Run(c)
}

// Append adds one line to the log.
func (c *Console) Append(text string, severity Severity) {
	c.lines = append(c.lines, Line{Text: text, Severity: severity})
}

// Clear empties the log.
func (c *Console) Clear() {
	c.lines = c.lines[:0]
}

// Lines returns a copy of the log.
func (c *Console) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Console) Len() int { return len(c.lines) }

func (c *Console) navigate(name component.NodeName) {
	if c.handlers.Navigate == nil {
		return
	}
	c.handlers.Navigate(name)
}
