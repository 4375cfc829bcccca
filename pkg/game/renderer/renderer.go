// Package renderer holds the rendering interface shared by the terminal and
// window backends, plus the message markup both of them understand.
package renderer

import (
	"fmt"
	"image/color"
	"regexp"

	gcolor "github.com/gookit/color"
	"github.com/leonelquinteros/gotext"
)

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since we intentionally look up translation keys dynamically from markup.
var dynamicGet = gotext.Get

// markup matches FUNC{operand}
var markup = regexp.MustCompile(`([A-Z_]*){([^{}]+)}`)

// Palette is the game's fixed color scheme.
var (
	WallColor = HSL(0, 0.6, 0.5)
	BallColor = HSL(220, 0.6, 0.5)
	GoalColor = HSL(120, 0.6, 0.4)
	HintColor = HSL(50, 0.8, 0.6)
)

// Formatter resolves message markup:
//
//	GT{KEY}      translated string
//	ACTION{key}  a key the player can press
//	GOAL{text}   highlighted in the goal color
//	DENIED{text} an error
type Formatter struct {
	Action gcolor.Style
	Goal   gcolor.Style
	Denied gcolor.Style
	Subtle gcolor.Style

	colored bool
}

// Plain resolves markup to bare text.
var Plain = Formatter{}

// NewANSIFormatter returns a formatter that wraps markup in terminal colors.
func NewANSIFormatter() Formatter {
	return Formatter{
		Action:  gcolor.Style{gcolor.FgMagenta, gcolor.OpBold},
		Goal:    gcolor.Style{gcolor.FgGreen, gcolor.OpBold},
		Denied:  gcolor.Style{gcolor.FgRed, gcolor.OpBold},
		Subtle:  gcolor.Style{gcolor.FgGray},
		colored: true,
	}
}

func (f Formatter) style(s gcolor.Style, text string) string {
	if !f.colored {
		return text
	}
	return s.Sprint(text)
}

// Format applies fmt.Sprintf and then resolves markup.
func (f Formatter) Format(msg string, args ...any) string {
	ret := msg
	if len(args) > 0 {
		ret = fmt.Sprintf(msg, args...)
	}

	return markup.ReplaceAllStringFunc(ret, func(m string) string {
		parts := markup.FindStringSubmatch(m)
		function, operand := parts[1], parts[2]

		switch function {
		case "GT":
			return dynamicGet(operand)
		case "ACTION":
			return f.style(f.Action, operand)
		case "GOAL":
			return f.style(f.Goal, operand)
		case "DENIED":
			return f.style(f.Denied, operand)
		case "SUBTLE":
			return f.style(f.Subtle, operand)
		}
		return m
	})
}

// StripANSI removes terminal color codes.
func StripANSI(s string) string {
	return gcolor.ClearCode(s)
}

// HSL converts a hue in degrees and saturation/lightness in [0,1] to RGBA.
func HSL(h, s, l float64) color.RGBA {
	c := (1 - abs(2*l-1)) * s
	hp := h / 60
	x := c * (1 - abs(mod(hp, 2)-1))

	var r, g, b float64
	switch {
	case hp < 1:
		r, g, b = c, x, 0
	case hp < 2:
		r, g, b = x, c, 0
	case hp < 3:
		r, g, b = 0, c, x
	case hp < 4:
		r, g, b = 0, x, c
	case hp < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	m := l - c/2
	to8 := func(v float64) uint8 { return uint8((v+m)*255 + 0.5) }
	return color.RGBA{R: to8(r), G: to8(g), B: to8(b), A: 0xff}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func mod(a, b float64) float64 {
	for a >= b {
		a -= b
	}
	return a
}

// RGBStyle returns a gookit 24-bit foreground style for c.
func RGBStyle(c color.RGBA) gcolor.RGBColor {
	return gcolor.RGB(c.R, c.G, c.B)
}
