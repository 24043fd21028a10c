package config

import "flag"

// Flags holds the command-line overrides shared by the subcommands.
type Flags struct {
	Config   string
	Debug    bool
	Radius   int
	Sections int
	Out      string
	Format   string
	Save     bool
}

// Register binds the flags to a subcommand's flag set.
func (f *Flags) Register(fs *flag.FlagSet) {
	fs.StringVar(&f.Config, "config", "", "Path to config file")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.IntVar(&f.Radius, "radius", 0, "Mandala radius in pixels (blocks)")
	fs.IntVar(&f.Sections, "sections", 0, "Number of symmetric sections (must divide 360)")
	fs.StringVar(&f.Out, "out", "", "Image output directory")
	fs.StringVar(&f.Format, "format", "", "Image format: bmp or png")
}

// RegisterSave adds -save for subcommands that only write images on request.
func (f *Flags) RegisterSave(fs *flag.FlagSet) {
	fs.BoolVar(&f.Save, "save", false, "Save every composed mandala as an image")
}

// apply applies CLI flag overrides to the config.
func (f *Flags) apply(cfg *Config) {
	if f == nil {
		return
	}
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.Radius > 0 {
		cfg.Mandala.Radius = f.Radius
	}
	if f.Sections > 0 {
		cfg.Mandala.Sections = f.Sections
	}
	if f.Out != "" {
		cfg.Output.ImageDir = f.Out
	}
	if f.Format != "" {
		cfg.Output.ImageFormat = f.Format
	}
	if f.Save {
		cfg.Output.SaveAllToBitmap = true
	}
}
