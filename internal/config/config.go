// Package config holds the window, canvas and shape settings of the board.
// Settings come from built-in defaults, optionally overridden by a YAML file.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"os"

	"ShapeBoard/internal/state"

	"github.com/mazznoer/csscolorparser"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

type Window struct {
	Title  string  `yaml:"title"`
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

type Canvas struct {
	Background string `yaml:"background"`
	// Tool names the palette tool selected at start-up; empty selects none.
	Tool string `yaml:"tool"`
}

type CircleShape struct {
	Radius float32 `yaml:"radius"`
}

type StarShape struct {
	Points      int     `yaml:"points"`
	InnerRadius float32 `yaml:"innerRadius"`
	OuterRadius float32 `yaml:"outerRadius"`
}

type RingShape struct {
	InnerRadius float32 `yaml:"innerRadius"`
	OuterRadius float32 `yaml:"outerRadius"`
}

type Shapes struct {
	Fill   string      `yaml:"fill"`
	Circle CircleShape `yaml:"circle"`
	Star   StarShape   `yaml:"star"`
	Ring   RingShape   `yaml:"ring"`
}

type Config struct {
	Window Window `yaml:"window"`
	Canvas Canvas `yaml:"canvas"`
	Shapes Shapes `yaml:"shapes"`
}

// Default returns the stock look: light blue canvas with green shapes.
func Default() Config {
	return Config{
		Window: Window{Title: "Shape Board", Width: 1024, Height: 768},
		Canvas: Canvas{Background: "lightblue"},
		Shapes: Shapes{
			Fill:   "#89b717",
			Circle: CircleShape{Radius: 20},
			Star:   StarShape{Points: 5, InnerRadius: 20, OuterRadius: 40},
			Ring:   RingShape{InnerRadius: 20, OuterRadius: 30},
		},
	}
}

// Load reads path on top of the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err = Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	log.Printf("[CONFIG] loaded %s", path)
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("decode yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks colours and geometry.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %vx%v must be positive", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if _, err := ParseColor(c.Canvas.Background); err != nil {
		return fmt.Errorf("canvas background: %w", err)
	}
	if c.Canvas.Tool != "" {
		if _, err := state.ParseShapeKind(c.Canvas.Tool); err != nil {
			return fmt.Errorf("%w: canvas tool: %w", ErrInvalid, err)
		}
	}
	if _, err := ParseColor(c.Shapes.Fill); err != nil {
		return fmt.Errorf("shape fill: %w", err)
	}
	if c.Shapes.Circle.Radius <= 0 {
		return fmt.Errorf("%w: circle radius must be positive", ErrInvalid)
	}
	if c.Shapes.Star.Points < 3 {
		return fmt.Errorf("%w: star needs at least 3 points, got %d", ErrInvalid, c.Shapes.Star.Points)
	}
	if c.Shapes.Star.InnerRadius <= 0 || c.Shapes.Star.OuterRadius <= 0 {
		return fmt.Errorf("%w: star radii must be positive", ErrInvalid)
	}
	if c.Shapes.Ring.InnerRadius < 0 || c.Shapes.Ring.OuterRadius <= 0 {
		return fmt.Errorf("%w: ring radii must be positive", ErrInvalid)
	}
	if c.Shapes.Ring.InnerRadius == c.Shapes.Ring.OuterRadius {
		return fmt.Errorf("%w: ring radii must differ", ErrInvalid)
	}
	return nil
}

// BackgroundColor returns the parsed canvas background. Call after Validate.
func (c Config) BackgroundColor() color.Color {
	col, _ := ParseColor(c.Canvas.Background)
	return col
}

// FillColor returns the parsed shape fill. Call after Validate.
func (c Config) FillColor() color.Color {
	col, _ := ParseColor(c.Shapes.Fill)
	return col
}

// StartTool returns the tool to select at start-up, NoShape if none is set.
// Call after Validate.
func (c Config) StartTool() state.ShapeKind {
	if c.Canvas.Tool == "" {
		return state.NoShape
	}
	kind, _ := state.ParseShapeKind(c.Canvas.Tool)
	return kind
}

// ParseColor accepts CSS colour names, hex and rgb()/hsl() notation.
func ParseColor(s string) (color.NRGBA, error) {
	c, err := csscolorparser.Parse(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: colour %q: %v", ErrInvalid, s, err)
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA), nil
}
