package config

import "flag"

// Flags holds command-line overrides. Only flags the user actually set are
// applied, so file values survive unset flags.
type Flags struct {
	ConfigPath string
	Debug      bool
	Strict     bool

	Demo    string
	MapFile string
	Random  bool
	Seed    int64
	Crop    int
	CropX   int
	CropY   int

	Mode        string
	DepthFactor float64
	Unit        float64

	Width  int
	Height int
	TPS    int

	LogFile string
	Journal string
	PNG     string

	fs *flag.FlagSet
}

// Bind attaches the flags to the provided FlagSet.
func (f *Flags) Bind(fs *flag.FlagSet) {
	f.fs = fs
	fs.StringVar(&f.ConfigPath, "config", "", "path to config file")
	fs.BoolVar(&f.Debug, "debug", false, "enable debug logging")
	fs.BoolVar(&f.Strict, "strict", false, "panic on renderer invariant failures")
	fs.StringVar(&f.Demo, "map", "", "embedded demo map name")
	fs.StringVar(&f.MapFile, "map-file", "", "JSON or YAML map file")
	fs.BoolVar(&f.Random, "random", false, "generate a random map")
	fs.Int64Var(&f.Seed, "seed", 0, "seed for random maps")
	fs.IntVar(&f.Crop, "crop", 0, "keep only the cells within this many of the crop centre")
	fs.IntVar(&f.CropX, "crop-x", 0, "crop centre column")
	fs.IntVar(&f.CropY, "crop-y", 0, "crop centre row")
	fs.StringVar(&f.Mode, "mode", "", "render mode: variable, uniform or flat")
	fs.Float64Var(&f.DepthFactor, "depth", 0, "depth factor")
	fs.Float64Var(&f.Unit, "unit", 0, "tile size in pixels")
	fs.IntVar(&f.Width, "width", 0, "window width")
	fs.IntVar(&f.Height, "height", 0, "window height")
	fs.IntVar(&f.TPS, "tps", 0, "ticks per second")
	fs.StringVar(&f.LogFile, "log-file", "", "rotating log file")
	fs.StringVar(&f.Journal, "record", "", "record draw commands to a zstd journal")
	fs.StringVar(&f.PNG, "png", "", "write the rendered frame to a PNG file")
}

// Apply copies every explicitly set flag into cfg.
func (f *Flags) Apply(cfg *Config) {
	set := map[string]bool{}
	if f.fs != nil {
		f.fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	}
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if set["strict"] {
		cfg.Render.Strict = f.Strict
	}
	if set["map"] {
		cfg.Map.Demo = f.Demo
	}
	if set["map-file"] {
		cfg.Map.File = f.MapFile
	}
	if set["random"] {
		cfg.Map.Random = f.Random
	}
	if set["seed"] {
		cfg.Map.Seed = f.Seed
	}
	if set["crop"] {
		cfg.Map.Crop = f.Crop
	}
	if set["crop-x"] {
		cfg.Map.CropX = f.CropX
	}
	if set["crop-y"] {
		cfg.Map.CropY = f.CropY
	}
	if set["mode"] {
		cfg.Render.Mode = f.Mode
	}
	if set["depth"] {
		cfg.Render.DepthFactor = f.DepthFactor
	}
	if set["unit"] {
		cfg.Render.UnitX, cfg.Render.UnitY = f.Unit, f.Unit
		cfg.Render.MapUnit = false
	}
	if f.Width > 0 {
		cfg.Window.Width = f.Width
	}
	if f.Height > 0 {
		cfg.Window.Height = f.Height
	}
	if f.TPS > 0 {
		cfg.Window.TPS = f.TPS
	}
	if f.LogFile != "" {
		cfg.Logging.LogFile = f.LogFile
	}
	if f.Journal != "" {
		cfg.Record.Journal = f.Journal
	}
	if f.PNG != "" {
		cfg.Record.PNG = f.PNG
	}
}
