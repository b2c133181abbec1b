package setup

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"perspectiveview/internal/config"
	"perspectiveview/internal/maps"
	"perspectiveview/internal/perspective"
)

func TestLoadMapPriority(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tiny.json")
	tiny, err := maps.New("tiny", perspective.UnitSize{X: 10, Y: 10}, [][]int{{1}})
	if err != nil {
		t.Fatal(err)
	}
	if err := maps.Save(path, tiny); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default().Map
	cfg.File = path
	cfg.Random = true
	m, err := LoadMap(cfg)
	if err != nil || m.Name != "tiny" {
		t.Fatalf("file map: %v %v", m, err)
	}

	cfg.File = ""
	m, err = LoadMap(cfg)
	if err != nil || m.Width() != cfg.Width {
		t.Fatalf("random map: %v %v", m, err)
	}

	cfg.Random = false
	cfg.Demo = "same-heights"
	m, err = LoadMap(cfg)
	if err != nil || m.Name != "same heights" {
		t.Fatalf("demo map: %v %v", m, err)
	}
}

func TestWorldFromDefaults(t *testing.T) {
	cfg := config.Default()
	w, err := World(cfg, nil)
	if err != nil {
		t.Fatalf("world: %v", err)
	}
	if got := w.Renderer().VanishingPoint(); got != (perspective.Point{X: 260, Y: 180}) {
		t.Fatalf("vanishing point = %v, want character centre", got)
	}
	if got := w.Size(); got.W != 850 || got.H != 850 {
		t.Fatalf("size = %+v", got)
	}
	if _, err := w.Frame(); err != nil {
		t.Fatalf("frame: %v", err)
	}
}

func TestWorldRejectsBadConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Render.Mode = "isometric"
	if _, err := World(cfg, nil); err == nil {
		t.Fatal("expected invalid mode to be rejected")
	}
}

func TestWorldUnitPrecedence(t *testing.T) {
	dir := t.TempDir()
	mapPath := filepath.Join(dir, "wide.json")
	doc := `{"name": "wide", "unit": {"x": 32, "y": 32}, "rows": [[0, 1], [1, 0]]}`
	if err := os.WriteFile(mapPath, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	bare := filepath.Join(dir, "bare.json")
	if err := os.WriteFile(bare, []byte(`{"rows": [[0, 1], [1, 0]]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfgPath := filepath.Join(dir, "pv.yaml")
	if err := os.WriteFile(cfgPath, []byte("render:\n  unit_x: 64\n  unit_y: 64\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		file    string
		mapFile string
		flags   []string
		want    float64
	}{
		{name: "map unit", mapFile: mapPath, want: 32},
		{name: "map without unit", mapFile: bare, want: 50},
		{name: "flag wins", mapFile: mapPath, flags: []string{"-unit", "40"}, want: 40},
		{name: "config file wins", file: cfgPath, mapFile: mapPath, want: 64},
	}
	for _, tt := range tests {
		cfg := config.Default()
		if tt.file != "" {
			var err error
			if cfg, err = config.Load(tt.file); err != nil {
				t.Fatalf("%s: load config: %v", tt.name, err)
			}
		}
		cfg.Map.File = tt.mapFile
		var f config.Flags
		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		f.Bind(fs)
		if err := fs.Parse(tt.flags); err != nil {
			t.Fatalf("%s: parse: %v", tt.name, err)
		}
		f.Apply(cfg)

		w, err := World(cfg, nil)
		if err != nil {
			t.Fatalf("%s: world: %v", tt.name, err)
		}
		want := perspective.UnitSize{X: tt.want, Y: tt.want}
		if got := w.Renderer().UnitSize(); got != want {
			t.Errorf("%s: unit = %v, want %v", tt.name, got, want)
		}
	}
}

func TestWorldCropsMap(t *testing.T) {
	cfg := config.Default()
	var f config.Flags
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f.Bind(fs)
	if err := fs.Parse([]string{"-crop", "2", "-crop-x", "0", "-crop-y", "8"}); err != nil {
		t.Fatal(err)
	}
	f.Apply(cfg)

	w, err := World(cfg, nil)
	if err != nil {
		t.Fatalf("world: %v", err)
	}
	m := w.Map()
	if m.Width() != 5 || m.Height() != 5 {
		t.Fatalf("cropped map is %dx%d, want 5x5", m.Width(), m.Height())
	}
	// columns left of the map take the fallback height.
	if h, _ := m.Heights.At(0, 2); h != 0 {
		t.Fatalf("padded cell = %d, want fallback 0", h)
	}

	cfg.Map.Crop = -1
	if _, err := World(cfg, nil); err == nil {
		t.Fatal("negative crop accepted")
	}
}
