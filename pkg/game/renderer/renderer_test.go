package renderer

import (
	"image/color"
	"testing"
)

func TestHSL(t *testing.T) {
	tests := []struct {
		h, s, l float64
		want    color.RGBA
	}{
		{0, 0.6, 0.5, color.RGBA{204, 51, 51, 255}},
		{220, 0.6, 0.5, color.RGBA{51, 102, 204, 255}},
		{120, 0.6, 0.4, color.RGBA{41, 163, 41, 255}},
		{0, 0, 1, color.RGBA{255, 255, 255, 255}},
	}
	for _, tt := range tests {
		if got := HSL(tt.h, tt.s, tt.l); got != tt.want {
			t.Errorf("HSL(%v, %v, %v) = %v, want %v", tt.h, tt.s, tt.l, got, tt.want)
		}
	}
}

func TestPlainFormat(t *testing.T) {
	got := Plain.Format("Press ACTION{%s} or DENIED{stop} UNKNOWN{x}", "r")
	want := "Press r or stop UNKNOWN{x}"
	if got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestANSIFormat_StripsBackToPlain(t *testing.T) {
	f := NewANSIFormatter()
	const msg = "ACTION{w} ACTION{a} ACTION{s} ACTION{d} to roll, GOAL{goal}"
	got := f.Format(msg)
	if StripANSI(got) != Plain.Format(msg) {
		t.Errorf("StripANSI(%q) = %q, want %q", got, StripANSI(got), Plain.Format(msg))
	}
}

func TestFormatText_NoRenderer(t *testing.T) {
	Current = nil
	if got := FormatText("ACTION{q}uit"); got != "quit" {
		t.Errorf("FormatText() = %q, want %q", got, "quit")
	}
}
