package terminal

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// IsTerminal reports whether stdin is an interactive terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Raw puts stdin into raw mode and returns the function that restores it.
func Raw() (restore func(), err error) {
	fd := int(os.Stdin.Fd())
	old, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("raw mode: %w", err)
	}
	return func() { _ = term.Restore(fd, old) }, nil
}

// ANSI control sequences used by the realtime renderer.
const (
	clearScreen = "\x1b[2J"
	cursorHome  = "\x1b[H"
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
)

// Enter clears the screen and hides the cursor.
func Enter(w io.Writer) {
	fmt.Fprint(w, hideCursor, clearScreen, cursorHome)
}

// Clear wipes the screen, leaving the cursor at the top-left.
func Clear(w io.Writer) {
	fmt.Fprint(w, clearScreen, cursorHome)
}

// Home moves the cursor to the top-left without clearing, so a full frame
// can be redrawn in place.
func Home(w io.Writer) {
	fmt.Fprint(w, cursorHome)
}

// Leave restores the cursor and clears the screen.
func Leave(w io.Writer) {
	fmt.Fprint(w, clearScreen, cursorHome, showCursor)
}
