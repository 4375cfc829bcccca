package ebiten

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/leonelquinteros/gotext"
	"golang.org/x/image/font/gofont/goregular"

	engineinput "mazeball/pkg/engine/input"
	"mazeball/pkg/game/config"
	"mazeball/pkg/game/gameplay"
	"mazeball/pkg/game/renderer"
	"mazeball/pkg/game/state"
)

// New creates a new Ebiten renderer
func New() *EbitenRenderer {
	cfg := config.Current()
	return &EbitenRenderer{
		windowWidth:    cfg.Width,
		windowHeight:   cfg.Height,
		formatter:      renderer.Plain,
		keyRepeatState: make(map[string]keyRepeatInfo),
		inputChan:      make(chan engineinput.Intent, 16),
	}
}

// Name implements renderer.Renderer.
func (e *EbitenRenderer) Name() string {
	return config.RendererEbiten
}

// Init loads the font and configures the window.
func (e *EbitenRenderer) Init() error {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("load font: %w", err)
	}
	e.fontSource = src
	e.messageFace = &text.GoTextFace{Source: src, Size: messageFontSize}
	e.bannerFace = &text.GoTextFace{Source: src, Size: bannerFontSize}

	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(gotext.Get("TITLE"))
	ebiten.SetTPS(60)
	return nil
}

// FormatText formats a message with the markup system. Text drawn in the
// window carries no ANSI colors.
func (e *EbitenRenderer) FormatText(msg string, args ...any) string {
	return e.formatter.Format(msg, args...)
}

// Run starts the Ebiten game loop. It returns when the player quits or the
// window is closed.
func (e *EbitenRenderer) Run(g *state.Game) error {
	e.game = g
	err := ebiten.RunGame(e)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// Update handles input and game logic (Ebiten interface). One call is one
// simulation tick.
func (e *EbitenRenderer) Update() error {
	g := e.game

	e.pollInput()

drain:
	for {
		select {
		case intent := <-e.inputChan:
			gameplay.ProcessIntent(g, intent)
		default:
			break drain
		}
	}

	if g.Quit {
		return ebiten.Termination
	}

	gameplay.Tick(g, 1)
	return nil
}

// Layout returns the game's logical screen size (Ebiten interface). The
// maze is laid out for a fixed viewport and scaled to the window.
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if e.game != nil {
		return int(e.game.Scene.Width), int(e.game.Scene.Height)
	}
	return e.windowWidth, e.windowHeight
}
