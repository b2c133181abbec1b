package maps

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"perspectiveview/internal/perspective"
)

func sample(t *testing.T) *Map {
	t.Helper()
	m, err := New("sample", perspective.UnitSize{X: 10, Y: 10}, [][]int{
		{1, 2, 3},
		{4, 5, 6},
	})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	m.Fallback = 9
	return m
}

func TestSectionIsInclusiveAndPadsWithFallback(t *testing.T) {
	m := sample(t)
	got := m.Section(-1, 0, 2, 1)
	want := [][]int{
		{9, 1, 2},
		{9, 4, 5},
	}
	if !slices.EqualFunc(got, want, slices.Equal[[]int]) {
		t.Fatalf("section = %v, want %v", got, want)
	}
}

func TestSectionNegativeAmount(t *testing.T) {
	if got := sample(t).Section(0, 0, -1, 0); got != nil {
		t.Fatalf("section = %v, want nil", got)
	}
}

func TestSectionAtUsesBufferMagnitudes(t *testing.T) {
	m := sample(t)
	got := m.SectionAt(1, 0, Buffer{Top: -1, Right: 1, Bottom: 1, Left: 1})
	want := [][]int{
		{9, 9, 9},
		{1, 2, 3},
		{4, 5, 6},
	}
	if !slices.EqualFunc(got, want, slices.Equal[[]int]) {
		t.Fatalf("section = %v, want %v", got, want)
	}
	sub, err := m.SubMap(1, 0, Buffer{Top: 1, Right: 1, Bottom: 1, Left: 1})
	if err != nil {
		t.Fatalf("submap: %v", err)
	}
	if sub.Width() != 3 || sub.Height() != 3 || sub.Fallback != 9 {
		t.Fatalf("submap %dx%d fallback %d", sub.Width(), sub.Height(), sub.Fallback)
	}
}

func TestSubMapNegativeFallback(t *testing.T) {
	m := sample(t)
	m.Fallback = -1
	if _, err := m.SubMap(0, 0, Buffer{Top: 1}); !errors.Is(err, perspective.ErrNegativeHeight) {
		t.Fatalf("err = %v, want ErrNegativeHeight", err)
	}
	// a section that stays inside the grid never sees the fallback.
	sub, err := m.SubMap(1, 1, Buffer{Top: 1, Left: 1})
	if err != nil {
		t.Fatalf("inner submap: %v", err)
	}
	if h, _ := sub.Heights.At(0, 0); h != 1 {
		t.Fatalf("inner (0,0) = %d, want 1", h)
	}
}

func TestOccupied(t *testing.T) {
	m, err := New("o", perspective.UnitSize{X: 1, Y: 1}, [][]int{{0, 1}})
	if err != nil {
		t.Fatal(err)
	}
	if m.Occupied(0, 0) || !m.Occupied(1, 0) || m.Occupied(5, 5) {
		t.Fatalf("occupied mismatch")
	}
}

func TestNewRejectsRaggedRows(t *testing.T) {
	_, err := New("bad", perspective.UnitSize{X: 1, Y: 1}, [][]int{{1, 2}, {3}})
	if !errors.Is(err, perspective.ErrRaggedMap) {
		t.Fatalf("err = %v, want ErrRaggedMap", err)
	}
}

func TestDemoMaps(t *testing.T) {
	names := DemoNames()
	want := []string{"different-heights", "height-colors", "same-heights"}
	if !slices.Equal(names, want) {
		t.Fatalf("demo names = %v, want %v", names, want)
	}
	for _, name := range names {
		m, err := Demo(name)
		if err != nil {
			t.Fatalf("demo %s: %v", name, err)
		}
		if m.Width() != 17 || m.Height() != 17 {
			t.Fatalf("demo %s is %dx%d", name, m.Width(), m.Height())
		}
		if m.Unit != (perspective.UnitSize{X: 50, Y: 50}) {
			t.Fatalf("demo %s unit %v", name, m.Unit)
		}
	}
	m, _ := Demo("height-colors")
	if got := m.Heights.MaxHeight(); got != 6 {
		t.Fatalf("height-colors max = %d, want 6", got)
	}
	if _, err := Demo("nope"); err == nil {
		t.Fatalf("unknown demo accepted")
	}
}

func TestParseRejectsSchemaViolations(t *testing.T) {
	cases := map[string]string{
		"negative height": `{"rows": [[0, -1]]}`,
		"fractional":      `{"rows": [[0, 1.5]]}`,
		"no rows":         `{"name": "x"}`,
		"empty rows":      `{"rows": []}`,
		"zero unit":       `{"unit": {"x": 0, "y": 5}, "rows": [[1]]}`,
		"unknown field":   `{"rows": [[1]], "colour": "red"}`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(doc), FormatJSON); err == nil {
				t.Fatalf("accepted %s", doc)
			}
		})
	}
}

func TestParseRaggedRowsPassSchemaButFail(t *testing.T) {
	_, err := Parse([]byte(`{"rows": [[1, 2], [3]]}`), FormatJSON)
	if !errors.Is(err, perspective.ErrRaggedMap) {
		t.Fatalf("err = %v, want ErrRaggedMap", err)
	}
}

func TestParseYAMLDefaultsUnit(t *testing.T) {
	m, err := Parse([]byte("rows:\n  - [0, 1]\n  - [2, 0]\n"), FormatYAML)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if m.Unit != perspective.DefaultConfig().Unit || m.UnitSet {
		t.Fatalf("unit = %v set %v", m.Unit, m.UnitSet)
	}
	if h, _ := m.Heights.At(0, 1); h != 2 {
		t.Fatalf("(0,1) = %d, want 2", h)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := sample(t)
	for _, name := range []string{"m.json", "m.yaml"} {
		path := filepath.Join(dir, name)
		if err := Save(path, src); err != nil {
			t.Fatalf("save %s: %v", name, err)
		}
		got, err := Load(path)
		if err != nil {
			t.Fatalf("load %s: %v", name, err)
		}
		if !got.Heights.Equal(src.Heights) || got.Unit != src.Unit || got.Fallback != src.Fallback || got.Name != src.Name {
			t.Fatalf("%s round trip: %+v", name, got)
		}
	}
}

func TestLoadNamesMapAfterFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arena.json")
	if err := os.WriteFile(path, []byte(`{"rows": [[1]]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	m, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if m.Name != "arena" {
		t.Fatalf("name = %q", m.Name)
	}
}

func TestLoadWrapsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("rows: nope\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), path) {
		t.Fatalf("err = %v, want path context", err)
	}
}

func TestRandomIsDeterministic(t *testing.T) {
	opts := RandomOptions{Width: 12, Height: 9, MaxHeight: 4, Density: 0.3, Walls: true}
	a, err := Random(opts, 42)
	if err != nil {
		t.Fatalf("random: %v", err)
	}
	b, _ := Random(opts, 42)
	if !a.Heights.Equal(b.Heights) {
		t.Fatalf("same seed produced different maps")
	}
	if a.Width() != 12 || a.Height() != 9 {
		t.Fatalf("size %dx%d", a.Width(), a.Height())
	}
	if a.Heights.MaxHeight() > 4 {
		t.Fatalf("max height %d exceeds 4", a.Heights.MaxHeight())
	}
	for x := 0; x < 12; x++ {
		if !a.Occupied(x, 0) || !a.Occupied(x, 8) {
			t.Fatalf("wall missing at column %d", x)
		}
	}
	if _, err := Random(RandomOptions{}, 1); !errors.Is(err, perspective.ErrEmptyMap) {
		t.Fatalf("err = %v, want ErrEmptyMap", err)
	}
}
