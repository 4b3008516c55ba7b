package ui

import (
	"image"
	"image/color"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/stargate/console"
)

const (
	visibleLines = 12
	panelWidth   = 560
	lineHeight   = 16
)

// ConsolePanel renders a console.Console: the tail of its log, coloured by
// severity, above a prompt and text input.
type ConsolePanel struct {
	UI *ebitenui.UI

	con   *console.Console
	panel *widget.Container
	rows  []*widget.Text
	tints []color.Color
	input *widget.TextInput
	paste func() string
}

// NewConsolePanel builds the panel. paste may be nil; when set it is called
// on Ctrl+V and its result appended to the input.
func NewConsolePanel(con *console.Console, face text.Face, paste func() string) *ConsolePanel {
	p := &ConsolePanel{con: con, paste: paste}

	p.panel = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(solidNineSlice(panelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(2),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 10, Bottom: 10, Left: 12, Right: 12}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(panelWidth, visibleLines*lineHeight+48),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)

	for i := 0; i < visibleLines; i++ {
		p.panel.AddChild(p.addRow(face))
	}

	inputRow := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(4),
		)),
	)
	inputRow.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(strings.TrimRight(con.Text().Prompt, " "), &face, &widget.LabelColor{Idle: promptColor, Disabled: promptColor}),
	))
	p.input = widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(panelWidth-200, lineHeight+8)),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     solidNineSlice(inputColor),
			Disabled: solidNineSlice(inputColor),
		}),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:     promptColor,
			Disabled: promptColor,
			Caret:    promptColor,
		}),
		widget.TextInputOpts.Face(&face),
		widget.TextInputOpts.SubmitOnEnter(true),
		widget.TextInputOpts.SubmitHandler(func(args *widget.TextInputChangedEventArgs) {
			p.submit(args.InputText)
		}),
	)
	inputRow.AddChild(p.input)
	p.panel.AddChild(inputRow)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout(
		widget.AnchorLayoutOpts.Padding(&widget.Insets{Top: 20, Left: 20, Right: 20, Bottom: 20}),
	)))
	root.AddChild(p.panel)
	p.UI = &ebitenui.UI{Container: root}
	return p
}

func (p *ConsolePanel) addRow(face text.Face) *widget.Text {
	tint := severityColor(console.Normal)
	row := widget.NewText(
		widget.TextOpts.Text("", &face, tint),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.MinSize(panelWidth-24, lineHeight)),
	)
	p.rows = append(p.rows, row)
	p.tints = append(p.tints, tint)
	return row
}

func (p *ConsolePanel) submit(raw string) {
	p.con.Submit(raw)
	p.input.SetText("")
}

// Update copies the log tail into the rows and handles paste.
func (p *ConsolePanel) Update() {
	p.syncRows()

	if p.paste != nil && p.input.IsFocused() && ctrlHeld() && inpututil.IsKeyJustPressed(ebiten.KeyV) {
		if s := sanitizePaste(p.paste()); s != "" {
			p.input.SetText(p.input.GetText() + s)
		}
	}
	p.UI.Update()
}

// syncRows shows the newest lines top to bottom, blanking unused rows.
func (p *ConsolePanel) syncRows() {
	lines := tail(p.con.Lines(), len(p.rows))
	for i, row := range p.rows {
		if i >= len(lines) {
			row.Label = ""
			continue
		}
		row.Label = lines[i].Text
		if tint := severityColor(lines[i].Severity); tint != p.tints[i] {
			row.SetColor(tint)
			p.tints[i] = tint
		}
	}
}

// Contains reports whether pixel (x, y) is over the panel.
func (p *ConsolePanel) Contains(x, y int) bool {
	return image.Pt(x, y).In(p.panel.GetWidget().Rect)
}

func (p *ConsolePanel) Focus() { p.input.Focus(true) }

func ctrlHeld() bool {
	return ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
}

func tail(lines []console.Line, n int) []console.Line {
	if len(lines) <= n {
		return lines
	}
	return lines[len(lines)-n:]
}

// sanitizePaste keeps the first line of s without control characters.
func sanitizePaste(s string) string {
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		s = s[:i]
	}
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}
