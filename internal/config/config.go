// Package config handles demo configuration loading and management.
package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"perspectiveview/internal/perspective"
)

// Config holds all demo settings.
type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Render    RenderConfig    `yaml:"render"`
	Map       MapConfig       `yaml:"map"`
	Character CharacterConfig `yaml:"character"`
	Logging   LoggingConfig   `yaml:"logging"`
	Record    RecordConfig    `yaml:"record"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	TPS    int    `yaml:"tps"`
	Title  string `yaml:"title"`
}

// RenderConfig holds the projection settings handed to the renderer.
type RenderConfig struct {
	UnitX       float64 `yaml:"unit_x"`
	UnitY       float64 `yaml:"unit_y"`
	DepthFactor float64 `yaml:"depth_factor"`
	VanishingX  float64 `yaml:"vanishing_x"`
	VanishingY  float64 `yaml:"vanishing_y"`
	Mode        string  `yaml:"mode"`
	BaseColor   string  `yaml:"base_color"` // #rrggbb or #rrggbbaa
	Strict      bool    `yaml:"strict"`
	// MapUnit lets a map that names its own tile size replace UnitX/UnitY.
	// Setting the unit in the file or with -unit turns it off.
	MapUnit bool `yaml:"map_unit"`
}

// MapConfig selects the height map. File wins over Random, Random over Demo.
type MapConfig struct {
	Demo      string  `yaml:"demo"`
	File      string  `yaml:"file"`
	Random    bool    `yaml:"random"`
	Seed      int64   `yaml:"seed"`
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	MaxHeight int     `yaml:"max_height"`
	Density   float64 `yaml:"density"`
	// Crop > 0 keeps only the cells within Crop of (CropX, CropY).
	Crop  int `yaml:"crop"`
	CropX int `yaml:"crop_x"`
	CropY int `yaml:"crop_y"`
}

// CharacterConfig holds the walking box of the demo scene.
type CharacterConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	Speed           float64 `yaml:"speed"`
	StartX          float64 `yaml:"start_x"`
	StartY          float64 `yaml:"start_y"`
	FollowVanishing bool    `yaml:"follow_vanishing"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// RecordConfig names the outputs of a recorded session.
type RecordConfig struct {
	Journal string `yaml:"journal"`
	PNG     string `yaml:"png"`
}

// Default returns a Config matching the classic demo: an 850×850 canvas,
// 50px tiles and the vanishing point at (425,325).
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  850,
			Height: 850,
			TPS:    60,
			Title:  "perspectiveview",
		},
		Render: RenderConfig{
			UnitX:       50,
			UnitY:       50,
			DepthFactor: 0.05,
			VanishingX:  425,
			VanishingY:  325,
			Mode:        perspective.VariableHeight.String(),
			BaseColor:   "#323232",
			MapUnit:     true,
		},
		Map: MapConfig{
			Demo:      "different-heights",
			Seed:      42,
			Width:     17,
			Height:    17,
			MaxHeight: 4,
			Density:   0.2,
		},
		Character: CharacterConfig{
			Width:           20,
			Height:          20,
			Speed:           2,
			StartX:          260,
			StartY:          180,
			FollowVanishing: true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate checks the settings the renderer does not validate itself.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("tps %d must be positive", c.Window.TPS)
	}
	if c.Character.Width <= 0 || c.Character.Height <= 0 || c.Character.Speed < 0 {
		return fmt.Errorf("character %vx%v speed %v invalid", c.Character.Width, c.Character.Height, c.Character.Speed)
	}
	if c.Map.Density < 0 || c.Map.Density > 1 {
		return fmt.Errorf("map density %v outside [0,1]", c.Map.Density)
	}
	if c.Map.Crop < 0 {
		return fmt.Errorf("map crop %d must not be negative", c.Map.Crop)
	}
	_, err := c.Perspective()
	return err
}

// Perspective converts the render section into a validated renderer config.
func (c *Config) Perspective() (perspective.Config, error) {
	mode, err := perspective.ParseMode(c.Render.Mode)
	if err != nil {
		return perspective.Config{}, err
	}
	base, err := ParseColor(c.Render.BaseColor)
	if err != nil {
		return perspective.Config{}, err
	}
	pc := perspective.Config{
		Unit:           perspective.UnitSize{X: c.Render.UnitX, Y: c.Render.UnitY},
		DepthFactor:    c.Render.DepthFactor,
		VanishingPoint: perspective.Point{X: c.Render.VanishingX, Y: c.Render.VanishingY},
		Mode:           mode,
		BaseColor:      base,
	}
	if err := pc.Validate(); err != nil {
		return perspective.Config{}, err
	}
	return pc, nil
}

// ParseColor reads #rrggbb or #rrggbbaa. Alpha defaults to opaque.
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("colour %q: want #rrggbb or #rrggbbaa", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("colour %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// FormatColor is the inverse of ParseColor.
func FormatColor(c color.RGBA) string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
