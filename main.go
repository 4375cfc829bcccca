package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/leonelquinteros/gotext"

	"mazeball/pkg/game/config"
	"mazeball/pkg/game/devtools"
	"mazeball/pkg/game/gameplay"
	"mazeball/pkg/game/renderer"
	"mazeball/pkg/game/renderer/ebiten"
	"mazeball/pkg/game/renderer/tui"
)

func initGettext(lang string) {
	gotext.Configure("locales", lang, "default")
}

// loadConfig builds the run configuration. Environment overrides are
// applied before the flags are bound, so an explicit flag always wins.
func loadConfig() config.Config {
	cfg := config.Default()
	if err := cfg.LoadEnv(); err != nil {
		log.Fatalf("Invalid environment: %v", err)
	}

	cfg.BindFlags(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	return cfg
}

func newRenderer(name string) renderer.Renderer {
	switch name {
	case config.RendererTUI:
		return tui.New()
	default:
		return ebiten.New()
	}
}

func main() {
	cfg := loadConfig()
	config.Set(cfg)
	if err := cfg.ApplyBindings(); err != nil {
		log.Fatalf("Invalid key bindings: %v", err)
	}

	initGettext(cfg.Lang)

	if cfg.Dump {
		g, err := gameplay.BuildGame(cfg, float64(cfg.Width), float64(cfg.Height))
		if err != nil {
			log.Fatalf("Failed to build maze: %v", err)
		}
		devtools.WriteDump(os.Stdout, g)
		return
	}

	r := newRenderer(cfg.Renderer)
	renderer.SetRenderer(r)
	if err := r.Init(); err != nil {
		log.Fatalf("Failed to initialise %s renderer: %v", r.Name(), err)
	}

	// Init may have fitted the configuration to the display.
	cfg = config.Current()
	g, err := gameplay.BuildGame(cfg, float64(cfg.Width), float64(cfg.Height))
	if err != nil {
		log.Fatalf("Failed to build maze: %v", err)
	}

	if err := r.Run(g); err != nil {
		log.Fatalf("Renderer error: %v", err)
	}

	fmt.Println(gotext.Get("GOODBYE"))
}
