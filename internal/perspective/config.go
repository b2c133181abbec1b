package perspective

import (
	"fmt"
	"image/color"
	"math"
	"strings"
)

// Mode selects how cell heights become geometry.
type Mode uint8

const (
	// VariableHeight projects each cell by its own height.
	VariableHeight Mode = iota
	// UniformHeight projects every occupied cell as if its height were 1.
	UniformHeight
	// Flat draws occupied cells as ground quads without projection.
	Flat
)

func (m Mode) String() string {
	switch m {
	case VariableHeight:
		return "variable"
	case UniformHeight:
		return "uniform"
	case Flat:
		return "flat"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// ParseMode accepts the names produced by Mode.String.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "variable", "variable_height", "":
		return VariableHeight, nil
	case "uniform", "uniform_height", "unitary":
		return UniformHeight, nil
	case "flat":
		return Flat, nil
	}
	return 0, fmt.Errorf("mode %q: %w", s, ErrInvalidMode)
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if m > Flat {
		return nil, fmt.Errorf("mode %d: %w", uint8(m), ErrInvalidMode)
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(b []byte) error {
	parsed, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// effectiveHeight maps a stored cell height to the height used for
// projection under m.
func (m Mode) effectiveHeight(h int) int {
	if h <= 0 {
		return 0
	}
	if m == VariableHeight {
		return h
	}
	return 1
}

// Config is the scalar part of a renderer's configuration. The height map is
// held separately because it is replaced wholesale.
type Config struct {
	Unit           UnitSize
	DepthFactor    float64
	VanishingPoint Point
	Mode           Mode
	BaseColor      color.RGBA
}

// DefaultConfig mirrors the demo scene: 50px tiles, depth 0.05, vanishing
// point at (425,325) and a dark grey base colour.
func DefaultConfig() Config {
	return Config{
		Unit:           UnitSize{X: 50, Y: 50},
		DepthFactor:    0.05,
		VanishingPoint: Point{X: 425, Y: 325},
		Mode:           VariableHeight,
		BaseColor:      color.RGBA{R: 50, G: 50, B: 50, A: 255},
	}
}

// Validate checks every field and reports the first violation.
func (c Config) Validate() error {
	if !c.Unit.valid() {
		return fmt.Errorf("unit %vx%v: %w", c.Unit.X, c.Unit.Y, ErrInvalidUnitSize)
	}
	if c.DepthFactor < 0 || math.IsNaN(c.DepthFactor) || math.IsInf(c.DepthFactor, 0) {
		return fmt.Errorf("depth factor %v: %w", c.DepthFactor, ErrInvalidDepthFactor)
	}
	if !c.VanishingPoint.finite() {
		return fmt.Errorf("vanishing point %v: %w", c.VanishingPoint, ErrInvalidVanishingPoint)
	}
	if !cellInRange(c.VanishingPoint.X/c.Unit.X) || !cellInRange(c.VanishingPoint.Y/c.Unit.Y) {
		return fmt.Errorf("vanishing point %v beyond addressable cells: %w", c.VanishingPoint, ErrInvalidVanishingPoint)
	}
	if c.Mode > Flat {
		return fmt.Errorf("mode %d: %w", uint8(c.Mode), ErrInvalidMode)
	}
	return nil
}

// maxCellCoord bounds vanishing cell coordinates so CellAt never overflows.
const maxCellCoord = 1 << 31

func cellInRange(v float64) bool {
	v = math.Floor(v)
	return v >= -maxCellCoord && v < maxCellCoord
}

// VanishingCell returns the cell containing the vanishing point.
func (c Config) VanishingCell() Cell {
	return CellAt(c.VanishingPoint, c.Unit)
}

// Patch names the fields to change in a single Apply call. Nil fields keep
// their current value.
type Patch struct {
	Map            *HeightMap
	Unit           *UnitSize
	DepthFactor    *float64
	VanishingPoint *Point
	Mode           *Mode
	BaseColor      *color.RGBA
}

func (p Patch) merge(c Config) Config {
	if p.Unit != nil {
		c.Unit = *p.Unit
	}
	if p.DepthFactor != nil {
		c.DepthFactor = *p.DepthFactor
	}
	if p.VanishingPoint != nil {
		c.VanishingPoint = *p.VanishingPoint
	}
	if p.Mode != nil {
		c.Mode = *p.Mode
	}
	if p.BaseColor != nil {
		c.BaseColor = *p.BaseColor
	}
	return c
}
