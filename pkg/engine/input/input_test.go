package input

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestMapToIntent_DefaultBindings(t *testing.T) {
	ResetBindings()
	tests := []struct {
		code string
		want Action
	}{
		{"w", ActionMoveNorth},
		{"W", ActionMoveNorth},
		{"arrow_up", ActionMoveNorth},
		{"s", ActionMoveSouth},
		{"S", ActionMoveSouth},
		{"a", ActionMoveWest},
		{"D", ActionMoveEast},
		{"arrow_right", ActionMoveEast},
		{"r", ActionRestart},
		{"f5", ActionResetLevel},
		{"?", ActionHint},
		{"q", ActionQuit},
		{"escape", ActionQuit},
		{"f9", ActionDumpMaze},
		{"f12", ActionScreenshot},
		{"x", ActionNone},
		{"", ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got := Translate(RawInput{Device: DeviceKeyboard, Code: tt.code})
			if got.Action != tt.want {
				t.Errorf("Translate(%q) = %s, want %s", tt.code, ActionName(got.Action), ActionName(tt.want))
			}
		})
	}
}

func TestIntent_IsMove(t *testing.T) {
	for _, a := range []Action{ActionMoveNorth, ActionMoveSouth, ActionMoveWest, ActionMoveEast} {
		if !(Intent{Action: a}).IsMove() {
			t.Errorf("%s.IsMove() = false", ActionName(a))
		}
	}
	for _, a := range []Action{ActionNone, ActionRestart, ActionQuit, ActionHint} {
		if (Intent{Action: a}).IsMove() {
			t.Errorf("%s.IsMove() = true", ActionName(a))
		}
	}
}

func TestSetSingleBinding(t *testing.T) {
	defer ResetBindings()
	ResetBindings()

	SetSingleBinding(ActionMoveNorth, "i")
	if got := MapToIntent(DebouncedInput{Code: "i"}).Action; got != ActionMoveNorth {
		t.Errorf("i -> %s, want Move North", ActionName(got))
	}
	if got := MapToIntent(DebouncedInput{Code: "w"}).Action; got != ActionNone {
		t.Errorf("w still bound to %s", ActionName(got))
	}
	if got := MapToIntent(DebouncedInput{Code: "arrow_up"}).Action; got != ActionMoveNorth {
		t.Error("arrow_up binding was removed")
	}

	SetSingleBinding(ActionRestart, "arrow_down")
	if got := MapToIntent(DebouncedInput{Code: "arrow_down"}).Action; got != ActionMoveSouth {
		t.Errorf("arrow_down rebound to %s", ActionName(got))
	}
}

func TestParseAction(t *testing.T) {
	for name, want := range map[string]Action{"north": ActionMoveNorth, "Reset": ActionResetLevel, "screenshot": ActionScreenshot} {
		if got, ok := ParseAction(name); !ok || got != want {
			t.Errorf("ParseAction(%q) = %s, %v; want %s", name, ActionName(got), ok, ActionName(want))
		}
	}
	if _, ok := ParseAction("jump"); ok {
		t.Error("ParseAction(\"jump\") should fail")
	}
}

func TestGetBindingsByAction_Sorted(t *testing.T) {
	ResetBindings()
	got := GetBindingsByAction()[ActionQuit]
	if strings.Join(got, ",") != "escape,q" {
		t.Errorf("quit bindings = %v, want [escape q]", got)
	}
}

func TestKeyReader_Decodes(t *testing.T) {
	k := NewKeyReader(strings.NewReader("wA\x1b[A\x1bOD\x1b[15~\x1b[20~\x1b[24~\x03\r\x1b"))
	want := []string{"w", "A", "arrow_up", "arrow_left", "f5", "f9", "f12", "escape", "enter", "escape"}
	for i, w := range want {
		got, err := k.ReadKey()
		if err != nil {
			t.Fatalf("key %d: error = %v", i, err)
		}
		if got != w {
			t.Errorf("key %d = %q, want %q", i, got, w)
		}
	}
	if _, err := k.ReadKey(); !errors.Is(err, io.EOF) {
		t.Errorf("ReadKey at end = %v, want io.EOF", err)
	}
}

func TestPump_TranslatesAndDrops(t *testing.T) {
	ResetBindings()
	out := make(chan Intent, 2)
	err := Pump(context.Background(), NewKeyReader(strings.NewReader("dxqw")), out)
	if !errors.Is(err, io.EOF) {
		t.Fatalf("Pump error = %v, want io.EOF", err)
	}
	close(out)

	var got []Action
	for i := range out {
		got = append(got, i.Action)
	}
	// x is unbound; w is dropped because the channel is full
	if len(got) != 2 || got[0] != ActionMoveEast || got[1] != ActionQuit {
		t.Errorf("intents = %v, want [east quit]", got)
	}
}
