package ui

import (
	"image"
	"math"
	"strconv"

	"perspectiveview/internal/core"
)

const (
	panelPadding = 12
	rowHeight    = 36
	buttonSize   = 24
	buttonGap    = 6
	titleHeight  = 44
)

// control is one HUD row: a scene control plus the value last read from the
// scene's parameter snapshot.
type control struct {
	core.ParameterControl

	value float64
	known bool

	top         int
	minus, plus image.Rectangle
}

func newControls(specs []core.ParameterControl, width int) []control {
	cs := make([]control, len(specs))
	for i, spec := range specs {
		top := titleHeight + i*rowHeight
		y := top + (rowHeight-buttonSize)/2
		right := width - panelPadding
		cs[i] = control{
			ParameterControl: spec,
			top:              top,
			plus:             image.Rect(right-buttonSize, y, right, y+buttonSize),
			minus:            image.Rect(right-2*buttonSize-buttonGap, y, right-buttonSize-buttonGap, y+buttonSize),
		}
	}
	return cs
}

func (c *control) integral() bool {
	return c.Type == core.ParamTypeInt || c.Type == core.ParamTypeEnum
}

func (c *control) step() float64 {
	if c.integral() {
		return math.Max(1, math.Round(c.Step))
	}
	if c.Step <= 0 {
		return 0.05
	}
	return c.Step
}

// target is the clamped value one step in dir. ok is false when the step
// would not change the value.
func (c *control) target(dir int) (v float64, ok bool) {
	if !c.known || dir == 0 {
		return c.value, false
	}
	v = c.value + float64(dir)*c.step()
	if c.HasMin {
		v = math.Max(v, c.Min)
	}
	if c.HasMax {
		v = math.Min(v, c.Max)
	}
	if c.integral() {
		v = math.Round(v)
	}
	return v, math.Abs(v-c.value) > 1e-9
}

// adjust steps the control through whichever setter matches its type and
// keeps the new value when the scene accepts it.
func (c *control) adjust(dir int, ints core.IntParameterSetter, floats core.FloatParameterSetter) bool {
	v, ok := c.target(dir)
	if !ok {
		return false
	}
	switch {
	case c.integral() && ints != nil:
		ok = ints.SetIntParameter(c.Key, int(v))
	case c.Type == core.ParamTypeFloat && floats != nil:
		ok = floats.SetFloatParameter(c.Key, v)
	default:
		ok = false
	}
	if ok {
		c.value = v
	}
	return ok
}

func (c *control) label() string {
	if !c.known {
		return "--"
	}
	if !c.integral() {
		return strconv.FormatFloat(c.value, 'f', decimals(c.step()), 64)
	}
	n := int(c.value)
	if c.Type == core.ParamTypeEnum && n >= 0 && n < len(c.Choices) {
		return c.Choices[n]
	}
	return strconv.Itoa(n)
}

// decimals picks enough digits to show a change of one step.
func decimals(step float64) int {
	d := 1
	for _, limit := range []float64{0.1, 0.01, 0.001} {
		if step < limit {
			d++
		}
	}
	return d
}

// refresh reads each control's value out of snap.
func refresh(cs []control, snap core.ParameterSnapshot) {
	for i := range cs {
		c := &cs[i]
		p, ok := snap.Lookup(c.Key)
		if !ok {
			c.known = false
			continue
		}
		v, err := strconv.ParseFloat(p.Value, 64)
		c.value, c.known = v, err == nil && !(c.integral() && v != math.Trunc(v))
	}
}

// hit returns the control and step direction under the panel point pt.
func hit(cs []control, pt image.Point) (int, int, bool) {
	for i := range cs {
		switch {
		case pt.In(cs[i].minus):
			return i, -1, true
		case pt.In(cs[i].plus):
			return i, 1, true
		}
	}
	return 0, 0, false
}
