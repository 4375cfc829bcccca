package ebiten

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "mazeball/pkg/engine/input"
)

// heldKeys repeat while held, like browser keydown events.
var heldKeys = []struct {
	key  ebiten.Key
	code string
}{
	{ebiten.KeyW, "w"},
	{ebiten.KeyA, "a"},
	{ebiten.KeyS, "s"},
	{ebiten.KeyD, "d"},
	{ebiten.KeyArrowUp, "arrow_up"},
	{ebiten.KeyArrowDown, "arrow_down"},
	{ebiten.KeyArrowLeft, "arrow_left"},
	{ebiten.KeyArrowRight, "arrow_right"},
}

// pressedKeys trigger once per press.
var pressedKeys = []struct {
	key  ebiten.Key
	code string
}{
	{ebiten.KeyR, "r"},
	{ebiten.KeyH, "h"},
	{ebiten.KeyQ, "q"},
	{ebiten.KeyEscape, "escape"},
	{ebiten.KeyF5, "f5"},
	{ebiten.KeyF9, "f9"},
	{ebiten.KeyF12, "f12"},
}

// pollInput reads the keyboard and queues intents (raw layer).
func (e *EbitenRenderer) pollInput() {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("Main window opened successfully (%dx%d)", w, h)
	}

	for _, k := range heldKeys {
		if e.shouldRepeatKey(func() bool { return ebiten.IsKeyPressed(k.key) }, k.code) {
			e.send(k.code)
		}
	}
	for _, k := range pressedKeys {
		if inpututil.IsKeyJustPressed(k.key) {
			e.send(k.code)
		}
	}
	// ? is Shift+/
	if inpututil.IsKeyJustPressed(ebiten.KeySlash) && ebiten.IsKeyPressed(ebiten.KeyShift) {
		e.send("?")
	}
}

// send maps a code to an Intent and queues it without blocking.
func (e *EbitenRenderer) send(code string) {
	intent := engineinput.Translate(engineinput.RawInput{
		Device:    engineinput.DeviceKeyboard,
		Code:      code,
		Timestamp: time.Now(),
	})
	if intent.Action == engineinput.ActionNone {
		return
	}

	// Non-blocking send to input channel
	select {
	case e.inputChan <- intent:
	default:
		// Channel full, drop input
	}
}

// shouldRepeatKey checks if a key should trigger (initial press or repeat)
func (e *EbitenRenderer) shouldRepeatKey(isPressed func() bool, code string) bool {
	now := time.Now().UnixMilli()

	pressed := isPressed()
	state, exists := e.keyRepeatState[code]

	if !pressed {
		// Key released - clean up state
		delete(e.keyRepeatState, code)
		return false
	}

	if !exists {
		// First press - record it and trigger immediately
		e.keyRepeatState[code] = keyRepeatInfo{firstPressed: now, lastRepeat: now}
		return true
	}

	// Key is held - check if we should repeat
	if now-state.firstPressed >= keyRepeatInitialDelay && now-state.lastRepeat >= keyRepeatInterval {
		state.lastRepeat = now
		e.keyRepeatState[code] = state
		return true
	}
	return false
}
