package ui

import (
	"image"
	"testing"

	"perspectiveview/internal/core"
)

type fakeScene struct {
	ints   map[string]int
	floats map[string]float64
	reject bool
}

func (f *fakeScene) SetIntParameter(key string, v int) bool {
	if f.reject {
		return false
	}
	f.ints[key] = v
	return true
}

func (f *fakeScene) SetFloatParameter(key string, v float64) bool {
	if f.reject {
		return false
	}
	f.floats[key] = v
	return true
}

func testControls() []control {
	return newControls([]core.ParameterControl{
		{Key: "mode", Type: core.ParamTypeEnum, Step: 1, Max: 2, HasMin: true, HasMax: true, Choices: []string{"variable", "uniform", "flat"}},
		{Key: "depth_factor", Type: core.ParamTypeFloat, Step: 0.01, Max: 0.5, HasMin: true, HasMax: true},
		{Key: "unit", Type: core.ParamTypeInt, Step: 5, Min: 10, Max: 100, HasMin: true, HasMax: true},
	}, 200)
}

func snapshot(values map[string]string) core.ParameterSnapshot {
	var g core.ParameterGroup
	for k, v := range values {
		g.Params = append(g.Params, core.Parameter{Key: k, Value: v})
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{g}}
}

func TestRefreshAndLabels(t *testing.T) {
	cs := testControls()
	refresh(cs, snapshot(map[string]string{"mode": "2", "depth_factor": "0.05", "unit": "2.5"}))
	if got := cs[0].label(); got != "flat" {
		t.Fatalf("mode label = %q, want flat", got)
	}
	if got := cs[1].label(); got != "0.05" {
		t.Fatalf("depth label = %q, want 0.05", got)
	}
	if cs[2].known || cs[2].label() != "--" {
		t.Fatalf("fractional int accepted: %+v", cs[2])
	}
}

func TestAdjustClampsAndCallsSetter(t *testing.T) {
	cs := testControls()
	refresh(cs, snapshot(map[string]string{"mode": "1", "depth_factor": "0.495", "unit": "12"}))
	s := &fakeScene{ints: map[string]int{}, floats: map[string]float64{}}

	if !cs[0].adjust(1, s, s) || s.ints["mode"] != 2 {
		t.Fatalf("mode step: %v", s.ints)
	}
	if _, ok := cs[0].target(1); ok {
		t.Fatal("mode can step past its last choice")
	}
	if cs[0].adjust(1, s, s) {
		t.Fatal("adjust at max reported a change")
	}

	if !cs[1].adjust(1, s, s) || s.floats["depth_factor"] != 0.5 {
		t.Fatalf("depth not clamped to 0.5: %v", s.floats)
	}

	if !cs[2].adjust(-1, s, s) || s.ints["unit"] != 10 {
		t.Fatalf("unit not clamped to 10: %v", s.ints)
	}

	s.reject = true
	before := cs[2].value
	if cs[2].adjust(1, s, s) || cs[2].value != before {
		t.Fatalf("rejected step changed the value to %v", cs[2].value)
	}
}

func TestAdjustNeedsMatchingSetter(t *testing.T) {
	cs := testControls()
	refresh(cs, snapshot(map[string]string{"depth_factor": "0.1"}))
	s := &fakeScene{ints: map[string]int{}, floats: map[string]float64{}}
	if cs[1].adjust(1, s, nil) {
		t.Fatal("float control adjusted without a float setter")
	}
	if cs[0].adjust(1, s, s) {
		t.Fatal("control without a value adjusted")
	}
}

func TestHitFindsButtons(t *testing.T) {
	cs := testControls()
	i, dir, ok := hit(cs, cs[1].plus.Min)
	if !ok || i != 1 || dir != 1 {
		t.Fatalf("plus hit = %d %d %v", i, dir, ok)
	}
	i, dir, ok = hit(cs, cs[2].minus.Min.Add(image.Pt(2, 2)))
	if !ok || i != 2 || dir != -1 {
		t.Fatalf("minus hit = %d %d %v", i, dir, ok)
	}
	if _, _, ok := hit(cs, image.Pt(0, 0)); ok {
		t.Fatal("title area hit a button")
	}
	if cs[0].plus.Max.X != 200-panelPadding || cs[0].minus.Max.X+buttonGap != cs[0].plus.Min.X {
		t.Fatalf("button layout %v %v", cs[0].minus, cs[0].plus)
	}
}

func TestDecimals(t *testing.T) {
	for step, want := range map[float64]int{0.5: 1, 0.05: 2, 0.01: 2, 0.005: 3, 0.0001: 4} {
		if got := decimals(step); got != want {
			t.Errorf("decimals(%v) = %d, want %d", step, got, want)
		}
	}
}
