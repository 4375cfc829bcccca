package input

import (
	"bufio"
	"context"
	"io"
	"time"
)

// KeyReader decodes raw terminal bytes into key codes. The terminal must
// already be in raw mode.
type KeyReader struct {
	r *bufio.Reader
}

// NewKeyReader wraps r.
func NewKeyReader(r io.Reader) *KeyReader {
	return &KeyReader{r: bufio.NewReader(r)}
}

// ReadKey blocks until one key is available and returns its code. Ctrl+C
// is reported as "escape" so raw mode never swallows the quit.
func (k *KeyReader) ReadKey() (string, error) {
	b, err := k.r.ReadByte()
	if err != nil {
		return "", err
	}

	switch {
	case b == 0x1b:
		return k.readEscape(), nil
	case b == 3:
		return "escape", nil
	case b == '\r' || b == '\n':
		return "enter", nil
	case b >= 32 && b < 127:
		return string(b), nil
	}
	return "", nil
}

// readEscape reads the rest of an escape sequence. A lone ESC is the
// escape key.
func (k *KeyReader) readEscape() string {
	if k.r.Buffered() == 0 {
		return "escape"
	}

	b2, err := k.r.ReadByte()
	if err != nil {
		return "escape"
	}

	// CSI (ESC [) and SS3 (ESC O)
	if b2 != '[' && b2 != 'O' {
		return ""
	}

	b3, err := k.r.ReadByte()
	if err != nil {
		return ""
	}

	switch b3 {
	case 'A':
		return "arrow_up"
	case 'B':
		return "arrow_down"
	case 'C':
		return "arrow_right"
	case 'D':
		return "arrow_left"
	}

	// ESC [ 1 5 ~ is F5, ESC [ 2 0 ~ is F9, ESC [ 2 4 ~ is F12
	seq := []byte{b3}
	for b3 != '~' && len(seq) < 8 {
		if b3, err = k.r.ReadByte(); err != nil {
			return ""
		}
		seq = append(seq, b3)
	}
	switch string(seq) {
	case "15~":
		return "f5"
	case "20~":
		return "f9"
	case "24~":
		return "f12"
	}

	// Unknown escape sequence - discard it
	return ""
}

// Pump reads keys until ctx is done or the reader fails, translating each
// into an Intent on out. Sends never block: a full channel drops the key.
// ctx is only checked between keys, so after cancellation Pump stays
// blocked in ReadKey until the next key arrives or the reader is closed.
func Pump(ctx context.Context, k *KeyReader, out chan<- Intent) error {
	for {
		code, err := k.ReadKey()
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if code == "" {
			continue
		}

		intent := Translate(RawInput{Device: DeviceTerminal, Code: code, Timestamp: time.Now()})
		if intent.Action == ActionNone {
			continue
		}

		select {
		case out <- intent:
		default:
		}
	}
}
