package main

import (
	"log"

	"ShapeBoard/internal/config"
	"ShapeBoard/internal/ui"

	"github.com/tdewolff/argp"
)

// Board is the root command: open the shape board window.
type Board struct {
	Config  string  `short:"c" desc:"YAML config file"`
	Width   float64 `short:"W" desc:"Window width, overrides the config"`
	Height  float64 `short:"H" desc:"Window height, overrides the config"`
	Tool    string  `short:"t" desc:"Start with this tool selected: circle, star or ring"`
	Verbose bool    `short:"v" desc:"Log every editor event"`
}

func main() {
	root := argp.NewCmd(&Board{}, "Shape board: stamp circles, stars and rings on a pannable canvas")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Board) Run() error {
	cfg, err := config.Load(cmd.Config)
	if err != nil {
		return err
	}
	if cmd.Width > 0 {
		cfg.Window.Width = float32(cmd.Width)
	}
	if cmd.Height > 0 {
		cfg.Window.Height = float32(cmd.Height)
	}
	if cmd.Tool != "" {
		cfg.Canvas.Tool = cmd.Tool
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log.Printf("Starting shape board (%.0fx%.0f)", cfg.Window.Width, cfg.Window.Height)
	ui.RunApp(cfg, cmd.Verbose)
	return nil
}
