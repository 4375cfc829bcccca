package devtools_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mazeball/pkg/game/config"
	"mazeball/pkg/game/devtools"
	"mazeball/pkg/game/gameplay"
	"mazeball/pkg/game/state"
)

func buildGame(t *testing.T) *state.Game {
	t.Helper()
	cfg := config.Default()
	cfg.Cols = 4
	cfg.Seed = 42
	cfg.Gravity = 0
	g, err := gameplay.BuildGame(cfg, 400, 300)
	if err != nil {
		t.Fatalf("BuildGame error = %v", err)
	}
	return g
}

func TestWriteMaze_Markers(t *testing.T) {
	g := buildGame(t)
	var buf bytes.Buffer
	devtools.WriteMaze(&buf, g)

	out := buf.String()
	if n := strings.Count(out, "@"); n != 1 {
		t.Errorf("ball markers = %d, want 1\n%s", n, out)
	}
	if n := strings.Count(out, "G"); n != 1 {
		t.Errorf("goal markers = %d, want 1\n%s", n, out)
	}
	if strings.Contains(out, ".") {
		t.Error("trail drawn with the hint off")
	}

	g.ShowHint = true
	buf.Reset()
	devtools.WriteMaze(&buf, g)
	if want := len(g.Solution()) - 2; strings.Count(buf.String(), ".") != want {
		t.Errorf("trail markers = %d, want %d\n%s", strings.Count(buf.String(), "."), want, buf.String())
	}
}

func TestWriteDump(t *testing.T) {
	g := buildGame(t)
	var buf bytes.Buffer
	devtools.WriteDump(&buf, g)

	out := buf.String()
	for _, want := range []string{"seed: 42", "grid_rows: 3", "grid_cols: 4", "open_edges: 11", "won: false", "=== END MAZE DUMP ==="} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q:\n%s", want, out)
		}
	}
}

func TestWriteScreenshotHTML(t *testing.T) {
	g := buildGame(t)
	g.AddMessage("<b>hello</b>")

	var buf bytes.Buffer
	devtools.WriteScreenshotHTML(&buf, g)

	out := buf.String()
	if !strings.Contains(out, `<span class="ball">@</span>`) {
		t.Error("ball not marked up")
	}
	if !strings.Contains(out, `<span class="goal">G</span>`) {
		t.Error("goal not marked up")
	}
	if !strings.Contains(out, "4x3, seed 42") {
		t.Error("header missing size or seed")
	}
	if !strings.Contains(out, "&lt;b&gt;hello&lt;/b&gt;") {
		t.Error("message not escaped")
	}
	if n := strings.Count(out, `class="map-row"`); n != 7 {
		t.Errorf("map rows = %d, want 7", n)
	}
}

func TestWriteDumpFile(t *testing.T) {
	g := buildGame(t)
	path := filepath.Join(t.TempDir(), "maze.txt")
	if err := devtools.WriteDumpFile(path, g); err != nil {
		t.Fatalf("WriteDumpFile error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "seed: 42") {
		t.Errorf("dump file missing the seed:\n%s", data)
	}

	missing := filepath.Join(t.TempDir(), "no-such-dir", "maze.txt")
	if err := devtools.WriteDumpFile(missing, g); err == nil {
		t.Error("WriteDumpFile into a missing directory should fail")
	}
}
