// Package config holds run configuration: defaults, command-line flags and
// environment overrides.
package config

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"

	"mazeball/pkg/engine/input"
)

// Renderer names
const (
	RendererEbiten = "ebiten"
	RendererTUI    = "tui"
)

// Environment variables read by LoadEnv.
const (
	EnvRenderer = "MAZEBALL_RENDERER"
	EnvSeed     = "MAZEBALL_SEED"
	EnvLang     = "MAZEBALL_LANG"
	EnvBind     = "MAZEBALL_BIND"
)

// ErrUnknownRenderer is returned when the renderer name is not recognised.
var ErrUnknownRenderer = errors.New("unknown renderer")

// ErrBadBinding is returned for a malformed key binding override.
var ErrBadBinding = errors.New("bad key binding")

// Config is the full run configuration.
type Config struct {
	Renderer string // "ebiten" or "tui"
	Lang     string // gotext locale, e.g. en_GB
	Seed     int64  // 0 seeds from the clock
	Dump     bool   // print the maze and exit
	Bindings string // key overrides, "action=key,action=key"

	Width  int // window width in px
	Height int // window height in px

	Cols      int // fixed horizontal cell count; 0 picks MinCols + rand(ExtraCols)
	MinCols   int
	ExtraCols int
	MaxRows   int // cap on vertical cells, 0 for none

	BallSpeed     float64 // px per tick set by a move
	Gravity       float64 // px/tick² while playing
	WinGravity    float64 // px/tick² after the goal is reached
	AirFriction   float64
	WallThickness float64
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Renderer: RendererEbiten,
		Lang:     "en_GB",

		Width:  1024,
		Height: 768,

		MinCols:   30,
		ExtraCols: 20,

		BallSpeed:     5,
		Gravity:       0.28,
		WinGravity:    0.28,
		AirFriction:   0.01,
		WallThickness: 3.5,
	}
}

var (
	mu      sync.RWMutex
	current = Default()
)

// Current returns a copy of the active configuration.
func Current() Config {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Set replaces the active configuration.
func Set(c Config) {
	mu.Lock()
	defer mu.Unlock()
	current = c
}

// BindFlags registers the command-line flags on fs, writing into c.
func (c *Config) BindFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Renderer, "renderer", c.Renderer, "renderer to use: ebiten or tui")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "maze seed (0 = random)")
	fs.IntVar(&c.Cols, "cols", c.Cols, "horizontal cell count (0 = random 30..49)")
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.StringVar(&c.Lang, "lang", c.Lang, "interface language")
	fs.BoolVar(&c.Dump, "dump", c.Dump, "print the maze as text and exit")
	fs.StringVar(&c.Bindings, "bind", c.Bindings, "key overrides, e.g. north=i,west=j (arrows and escape are fixed)")
}

// LoadEnv applies environment overrides. A .env file in the working
// directory is loaded first when present; variables already set in the
// process win over it.
func (c *Config) LoadEnv() error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config: .env could not be loaded: %v", err)
	}

	if v, ok := os.LookupEnv(EnvRenderer); ok {
		c.Renderer = v
	}
	if v, ok := os.LookupEnv(EnvLang); ok {
		c.Lang = v
	}
	if v, ok := os.LookupEnv(EnvBind); ok {
		c.Bindings = v
	}
	if v, ok := os.LookupEnv(EnvSeed); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s must be an integer: %w", EnvSeed, err)
		}
		c.Seed = seed
	}
	return nil
}

// Validate checks values that would make a run impossible.
func (c Config) Validate() error {
	switch c.Renderer {
	case RendererEbiten, RendererTUI:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownRenderer, c.Renderer)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("viewport %dx%d must be positive", c.Width, c.Height)
	}
	if c.Cols < 0 {
		return fmt.Errorf("cols %d must not be negative", c.Cols)
	}
	if _, err := ParseBindings(c.Bindings); err != nil {
		return err
	}
	return nil
}

// Binding rebinds one action to a single key code.
type Binding struct {
	Action input.Action
	Code   string
}

// ParseBindings reads "action=key" pairs separated by commas. Single
// character keys are lowercased to match the debounced input codes.
func ParseBindings(s string) ([]Binding, error) {
	var out []Binding
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, code, ok := strings.Cut(part, "=")
		if !ok || code == "" {
			return nil, fmt.Errorf("%w: %q, want action=key", ErrBadBinding, part)
		}
		action, ok := input.ParseAction(strings.TrimSpace(name))
		if !ok {
			return nil, fmt.Errorf("%w: unknown action %q", ErrBadBinding, name)
		}
		code = strings.TrimSpace(code)
		if len(code) == 1 {
			code = strings.ToLower(code)
		}
		out = append(out, Binding{Action: action, Code: code})
	}
	return out, nil
}

// ApplyBindings installs the Bindings overrides into the input layer.
func (c Config) ApplyBindings() error {
	bindings, err := ParseBindings(c.Bindings)
	if err != nil {
		return err
	}
	for _, b := range bindings {
		input.SetSingleBinding(b.Action, b.Code)
	}
	return nil
}

// Source is the random source used to pick the column count.
type Source interface {
	Intn(n int) int
}

// Dimensions returns the maze size for a width x height viewport. Columns
// are fixed by Cols or drawn from MinCols + rand(ExtraCols); rows follow
// the viewport aspect ratio so cells stay close to square.
func (c Config) Dimensions(width, height int, src Source) (rows, cols int) {
	cols = c.Cols
	if cols <= 0 {
		cols = c.MinCols
		if c.ExtraCols > 0 {
			cols += src.Intn(c.ExtraCols)
		}
	}
	if cols < 1 {
		cols = 1
	}

	rows = int(math.Ceil(float64(cols) * float64(height) / float64(width)))
	if rows < 1 {
		rows = 1
	}
	if c.MaxRows > 0 && rows > c.MaxRows {
		rows = c.MaxRows
	}
	return rows, cols
}
