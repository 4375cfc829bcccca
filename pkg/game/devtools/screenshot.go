package devtools

import (
	"bytes"
	"fmt"
	"html"
	"image/color"
	"io"
	"os"
	"strings"
	"time"

	"mazeball/pkg/game/renderer"
	"mazeball/pkg/game/state"
)

// SaveScreenshotHTML saves the current maze as a colored HTML page in the
// working directory and returns the file name.
func SaveScreenshotHTML(g *state.Game) (string, error) {
	if g.Grid == nil {
		return "", fmt.Errorf("no grid")
	}

	timestamp := time.Now().Format("20060102-150405")
	filename := fmt.Sprintf("screenshot-%s.html", timestamp)

	var buf bytes.Buffer
	WriteScreenshotHTML(&buf, g)

	if err := os.WriteFile(filename, buf.Bytes(), 0644); err != nil {
		return "", err
	}
	return filename, nil
}

// WriteScreenshotHTML writes the page SaveScreenshotHTML stores.
func WriteScreenshotHTML(w io.Writer, g *state.Game) {
	rows, cols := g.Grid.Dimensions()

	fmt.Fprintf(w, `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Maze Ball - Screenshot</title>
    <style>
        body {
            background-color: #0f0f1a;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header { color: #bb86fc; font-size: 18px; margin-bottom: 10px; }
        .map-container {
            background-color: #1a1a2e;
            padding: 20px;
            border-radius: 8px;
            display: inline-block;
            margin: 20px 0;
        }
        .map-row { white-space: pre; line-height: 1.2; font-size: 16px; }
        .wall { color: %s; }
        .ball { color: %s; font-weight: bold; }
        .goal { color: %s; font-weight: bold; }
        .trail { color: %s; }
        .start { color: #888; }
        .messages { margin-top: 20px; border-top: 1px solid #333; padding-top: 10px; }
        .message { color: #ccc; margin: 5px 0; }
    </style>
</head>
<body>
`, hexColor(renderer.WallColor), hexColor(renderer.BallColor), hexColor(renderer.GoalColor), hexColor(renderer.HintColor))

	fmt.Fprintf(w, `    <div class="header">%dx%d, seed %d</div>`+"\n", cols, rows, g.Seed)
	if g.Won {
		fmt.Fprintln(w, `    <div class="header">Won</div>`)
	}

	fmt.Fprintln(w, `    <div class="map-container">`)
	var maze strings.Builder
	WriteMaze(&maze, g)
	for _, line := range strings.Split(strings.TrimSuffix(maze.String(), "\n"), "\n") {
		fmt.Fprint(w, `        <div class="map-row">`)
		for _, r := range line {
			if class := htmlClass(r); class != "" {
				fmt.Fprintf(w, `<span class="%s">%c</span>`, class, r)
			} else {
				fmt.Fprintf(w, "%c", r)
			}
		}
		fmt.Fprintln(w, "</div>")
	}
	fmt.Fprintln(w, `    </div>`)

	// Messages
	if len(g.Messages) > 0 {
		fmt.Fprintln(w, `    <div class="messages">`)
		for _, msg := range g.Messages {
			clean := html.EscapeString(renderer.StripANSI(msg))
			fmt.Fprintf(w, `        <div class="message">%s</div>`+"\n", clean)
		}
		fmt.Fprintln(w, `    </div>`)
	}

	fmt.Fprint(w, "</body>\n</html>\n")
}

// htmlClass returns the CSS class for a maze glyph, or "" for floor.
func htmlClass(r rune) string {
	switch r {
	case '+', '-', '|':
		return "wall"
	case '@':
		return "ball"
	case 'G':
		return "goal"
	case '.':
		return "trail"
	case 'S':
		return "start"
	}
	return ""
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
