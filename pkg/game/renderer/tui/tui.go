package tui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/gookit/color"

	"mazeball/pkg/engine/input"
	"mazeball/pkg/engine/terminal"
	"mazeball/pkg/game/config"
	"mazeball/pkg/game/gameplay"
	"mazeball/pkg/game/renderer"
	"mazeball/pkg/game/state"
)

// Frame rate of the realtime loop. Each frame advances the simulation by
// TicksPerFrame 60 Hz ticks.
const (
	FrameRate     = 30
	TicksPerFrame = 60 / FrameRate
)

// Lines outside the maze canvas: title, blank, blank, messages (5), help.
const hudLines = 9

// Virtual pixels per terminal column and row. Terminal glyphs are roughly
// twice as tall as they are wide.
const (
	pxPerCol = 10
	pxPerRow = 20
)

// painter is satisfied by gookit's Style and RGBColor.
type painter interface {
	Sprint(a ...any) string
}

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out io.Writer
	in  io.Reader

	formatter renderer.Formatter
	width     int // terminal columns, 0 when unknown
	height    int

	// base is the configuration before it was fitted to the terminal.
	base config.Config

	colorWall   painter
	colorBall   painter
	colorGoal   painter
	colorHint   painter
	colorTitle  painter
	colorSubtle painter
}

// New creates a new TUI renderer
func New() *TUIRenderer {
	return &TUIRenderer{out: os.Stdout, in: os.Stdin}
}

// Name implements renderer.Renderer.
func (t *TUIRenderer) Name() string {
	return config.RendererTUI
}

// Init sets up colors and fits the maze configuration to the terminal.
func (t *TUIRenderer) Init() error {
	if !terminal.IsTerminal() {
		return fmt.Errorf("tui renderer needs an interactive terminal")
	}

	t.formatter = renderer.NewANSIFormatter()
	t.colorWall = renderer.RGBStyle(renderer.WallColor)
	t.colorBall = color.Style{color.FgBlue, color.OpBold}
	t.colorGoal = color.Style{color.FgGreen, color.OpBold}
	t.colorHint = renderer.RGBStyle(renderer.HintColor)
	t.colorTitle = color.Style{color.FgMagenta, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray}

	w, h := terminal.GetSize()
	t.width, t.height = w, h
	t.base = config.Current()
	config.Set(FitConfig(t.base, w, h))
	return nil
}

// FitConfig shrinks the maze so its ASCII drawing fits a termW x termH
// terminal and sets the virtual viewport to the terminal's aspect.
func FitConfig(cfg config.Config, termW, termH int) config.Config {
	maxCols := (termW - 1) / 4
	if maxCols < 1 {
		maxCols = 1
	}
	maxRows := (termH - hudLines - 1) / 2
	if maxRows < 1 {
		maxRows = 1
	}

	if cfg.Cols > maxCols {
		cfg.Cols = maxCols
	}
	if cfg.Cols == 0 {
		if cfg.MinCols > maxCols {
			cfg.MinCols = maxCols
		}
		if cfg.MinCols+cfg.ExtraCols-1 > maxCols {
			cfg.ExtraCols = maxCols - cfg.MinCols + 1
		}
	}
	cfg.MaxRows = maxRows

	cfg.Width = termW * pxPerCol
	cfg.Height = (termH - hudLines) * pxPerRow
	if cfg.Height < pxPerRow {
		cfg.Height = pxPerRow
	}
	return cfg
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	return t.formatter.Format(msg, args...)
}

// Run drives the game at FrameRate until the player quits. Keys are read
// on a separate goroutine and handed over on a buffered channel.
func (t *TUIRenderer) Run(g *state.Game) error {
	restore, err := terminal.Raw()
	if err != nil {
		return err
	}
	defer restore()

	terminal.Enter(t.out)
	defer terminal.Leave(t.out)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	intents := make(chan input.Intent, 16)
	readErr := make(chan error, 1)
	go func() {
		readErr <- input.Pump(ctx, input.NewKeyReader(t.in), intents)
	}()

	ticker := time.NewTicker(time.Second / FrameRate)
	defer ticker.Stop()

	w := bufio.NewWriter(t.out)
	for !g.Quit {
		select {
		case intent := <-intents:
			gameplay.ProcessIntent(g, intent)
		case err := <-readErr:
			return fmt.Errorf("read keys: %w", err)
		case <-ticker.C:
			tw, th := terminal.GetSize()
			if err := t.refit(w, g, tw, th); err != nil {
				return err
			}
			gameplay.Tick(g, TicksPerFrame)
			terminal.Home(w)
			t.RenderFrame(w, g)
			if err := w.Flush(); err != nil {
				return err
			}
		}
	}
	return nil
}

// refit rebuilds the current maze for a terminal that changed size. The
// seed is kept, so the maze only changes when the fitted dimensions do.
func (t *TUIRenderer) refit(w io.Writer, g *state.Game, termW, termH int) error {
	if termW == t.width && termH == t.height {
		return nil
	}
	t.width, t.height = termW, termH

	g.Config = FitConfig(t.base, termW, termH)
	terminal.Clear(w)
	return gameplay.Resize(g, float64(g.Config.Width), float64(g.Config.Height))
}

// RenderFrame writes one full frame: title, maze, messages and key help.
// Lines end in CR LF because raw mode turns off output translation.
func (t *TUIRenderer) RenderFrame(w io.Writer, g *state.Game) {
	rows, cols := g.Grid.Dimensions()
	title := fmt.Sprintf("%s  %dx%d  seed %d", t.FormatText("GT{TITLE}"), cols, rows, g.Seed)
	t.line(w, t.paint(t.colorTitle, title))
	t.line(w, "")

	c := Draw(g)
	for _, line := range c.cells {
		t.writeLine(w, line)
	}
	t.line(w, "")

	t.printMessagesPane(w, g)
	t.line(w, t.paint(t.colorSubtle, clip(HelpLine(), t.width)))
}

func (t *TUIRenderer) line(w io.Writer, s string) {
	fmt.Fprint(w, s, "\x1b[K\r\n")
}

// clip shortens s to at most n runes. n <= 0 leaves s alone.
func clip(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	return string(r[:n])
}

// writeLine prints a canvas row, painting runs of equal kind together.
func (t *TUIRenderer) writeLine(w io.Writer, line []cell) {
	var b strings.Builder
	for i := 0; i < len(line); {
		j := i
		var run []rune
		for j < len(line) && line[j].kind == line[i].kind {
			run = append(run, line[j].r)
			j++
		}
		b.WriteString(t.paint(t.painterFor(line[i].kind), string(run)))
		i = j
	}
	t.line(w, b.String())
}

func (t *TUIRenderer) painterFor(k kind) painter {
	switch k {
	case kindWall:
		return t.colorWall
	case kindBall:
		return t.colorBall
	case kindGoal:
		return t.colorGoal
	case kindHint:
		return t.colorHint
	}
	return nil
}

func (t *TUIRenderer) paint(p painter, s string) string {
	if p == nil {
		return s
	}
	return p.Sprint(s)
}

// printMessagesPane renders the last messages, padded to a fixed height so
// the frame does not jump.
func (t *TUIRenderer) printMessagesPane(w io.Writer, g *state.Game) {
	const lines = 5
	for i := 0; i < lines; i++ {
		msg := ""
		if i < len(g.Messages) {
			msg = g.Messages[i]
		}
		t.line(w, "  "+msg)
	}
}

// HelpLine lists the current key bindings.
func HelpLine() string {
	byAction := input.GetBindingsByAction()
	actions := make([]input.Action, 0, len(byAction))
	for a := range byAction {
		actions = append(actions, a)
	}
	sort.Slice(actions, func(i, j int) bool { return actions[i] < actions[j] })

	parts := make([]string, 0, len(actions))
	for _, a := range actions {
		parts = append(parts, fmt.Sprintf("%s: %s", input.ActionName(a), strings.Join(byAction[a], "/")))
	}
	return strings.Join(parts, "  ")
}
