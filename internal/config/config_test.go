package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/mandalas/pkg/mandala"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Mandala.Radius != 32 {
		t.Errorf("expected radius 32, got %d", cfg.Mandala.Radius)
	}
	if cfg.Mandala.Sections != 8 {
		t.Errorf("expected 8 sections, got %d", cfg.Mandala.Sections)
	}
	if cfg.Mandala.Elements.Random.Count != 4 {
		t.Errorf("expected 4 random elements, got %d", cfg.Mandala.Elements.Random.Count)
	}
	if len(cfg.Mandala.Elements.Random.Pool) != 4 {
		t.Errorf("expected 4 pool entries, got %d", len(cfg.Mandala.Elements.Random.Pool))
	}
	if _, ok := cfg.Mandala.Elements.Fixed["PETAL_1"]; !ok {
		t.Error("expected a fixed PETAL_1 element by default")
	}

	if cfg.Output.SaveAllToBitmap {
		t.Error("expected save_all_to_bitmap to be false by default")
	}
	if cfg.Output.ImageFormat != "bmp" {
		t.Errorf("expected image format 'bmp', got %s", cfg.Output.ImageFormat)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	configPath := writeConfig(t, `
mandala:
  radius: 48
  sections: 12
  elements:
    random:
      count: 6
      pool:
        PETAL:
          range: [0.2, 0.6]
        CURVE_CONVEX:
          vertices: 7
          range: [0.0, 0.9]
    fixed:
      CURVE_CONCAVE_inner:
        vertices: 3
        range: [0.1, 0.3]
      STRIP:
        range: [0.4, 0.5]

output:
  save_all_to_bitmap: true
  image_dir: "out"
  image_format: "png"

logging:
  level: "debug"
  log_file: "mandalas.log"
`)

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Mandala.Radius != 48 {
		t.Errorf("expected radius 48, got %d", cfg.Mandala.Radius)
	}
	if cfg.Mandala.Sections != 12 {
		t.Errorf("expected 12 sections, got %d", cfg.Mandala.Sections)
	}
	if cfg.Mandala.Elements.Random.Count != 6 {
		t.Errorf("expected 6 random elements, got %d", cfg.Mandala.Elements.Random.Count)
	}

	// The pool keeps document order and replaces the defaults.
	pool := cfg.Mandala.Elements.Random.Pool
	if len(pool) != 2 {
		t.Fatalf("expected 2 pool entries, got %d", len(pool))
	}
	if pool[0].Type != "PETAL" || pool[1].Type != "CURVE_CONVEX" {
		t.Errorf("expected pool order [PETAL CURVE_CONVEX], got [%s %s]", pool[0].Type, pool[1].Type)
	}
	if pool[1].Vertices != 7 {
		t.Errorf("expected 7 vertices, got %d", pool[1].Vertices)
	}
	if len(pool[0].Range) != 2 || pool[0].Range[0] != 0.2 || pool[0].Range[1] != 0.6 {
		t.Errorf("expected range [0.2 0.6], got %v", pool[0].Range)
	}

	fixed := cfg.Mandala.Elements.Fixed
	if len(fixed) != 2 {
		t.Errorf("expected fixed elements to be replaced, got %v", fixed)
	}
	if _, ok := fixed["PETAL_1"]; ok {
		t.Error("default PETAL_1 should not survive a file that lists fixed elements")
	}
	if fixed["CURVE_CONCAVE_inner"].Vertices != 3 {
		t.Errorf("expected 3 vertices, got %d", fixed["CURVE_CONCAVE_inner"].Vertices)
	}

	if !cfg.Output.SaveAllToBitmap {
		t.Error("expected save_all_to_bitmap to be true")
	}
	if cfg.Output.ImageDir != "out" {
		t.Errorf("expected image dir 'out', got %s", cfg.Output.ImageDir)
	}
	if cfg.Output.ImageFormat != "png" {
		t.Errorf("expected image format 'png', got %s", cfg.Output.ImageFormat)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "mandalas.log" {
		t.Errorf("expected log file 'mandalas.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileKeepsUnlistedSections(t *testing.T) {
	configPath := writeConfig(t, "mandala:\n  sections: 6\n")

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Mandala.Sections != 6 {
		t.Errorf("expected 6 sections, got %d", cfg.Mandala.Sections)
	}
	if len(cfg.Mandala.Elements.Random.Pool) != 4 {
		t.Errorf("expected default pool to survive, got %d entries", len(cfg.Mandala.Elements.Random.Pool))
	}
	if len(cfg.Mandala.Elements.Fixed) != 1 {
		t.Errorf("expected default fixed set to survive, got %v", cfg.Mandala.Elements.Fixed)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax", "mandala:\n  sections: not a number\n  invalid syntax here\n"},
		{"pool as list", "mandala:\n  elements:\n    random:\n      pool: [PETAL, STRIP]\n"},
		{"bad range", "mandala:\n  elements:\n    random:\n      pool:\n        PETAL:\n          range: wide\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			if err := loadFromFile(cfg, writeConfig(t, tt.content)); err == nil {
				t.Error("expected error loading invalid YAML, got nil")
			}
		})
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	// Actual path depends on OS
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())

	// No config file exists - should return empty
	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	if err := os.WriteFile("config.yaml", []byte("mandala:\n  sections: 4\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name   string
		flags  Flags
		verify func(*testing.T, *Config)
	}{
		{
			name:  "debug flag",
			flags: Flags{Debug: true},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
		},
		{
			name:  "radius and sections flags",
			flags: Flags{Radius: 64, Sections: 10},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Mandala.Radius != 64 {
					t.Errorf("expected radius 64, got %d", cfg.Mandala.Radius)
				}
				if cfg.Mandala.Sections != 10 {
					t.Errorf("expected 10 sections, got %d", cfg.Mandala.Sections)
				}
			},
		},
		{
			name:  "output flags",
			flags: Flags{Out: "/tmp/mandalas", Format: "png", Save: true},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Output.ImageDir != "/tmp/mandalas" {
					t.Errorf("expected image dir /tmp/mandalas, got %s", cfg.Output.ImageDir)
				}
				if cfg.Output.ImageFormat != "png" {
					t.Errorf("expected image format png, got %s", cfg.Output.ImageFormat)
				}
				if !cfg.Output.SaveAllToBitmap {
					t.Error("expected save flag to enable saving")
				}
			},
		},
		{
			name:  "zero flags change nothing",
			flags: Flags{},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Mandala.Radius != 32 || cfg.Mandala.Sections != 8 {
					t.Errorf("expected defaults, got radius %d sections %d", cfg.Mandala.Radius, cfg.Mandala.Sections)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.flags.apply(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("MANDALA_SECTIONS", "6")
	t.Setenv("MANDALA_RANDOM_COUNT", "0")
	t.Setenv("MANDALA_SAVE_ALL_TO_BITMAP", "true")
	t.Setenv("MANDALA_IMAGE_FORMAT", "png")
	t.Setenv("MANDALA_LOG_LEVEL", "warn")

	cfg := Default()
	if err := applyEnv(cfg); err != nil {
		t.Fatalf("failed to apply env: %v", err)
	}

	if cfg.Mandala.Sections != 6 {
		t.Errorf("expected 6 sections, got %d", cfg.Mandala.Sections)
	}
	// An explicit zero is still an override.
	if cfg.Mandala.Elements.Random.Count != 0 {
		t.Errorf("expected 0 random elements, got %d", cfg.Mandala.Elements.Random.Count)
	}
	if cfg.Mandala.Radius != 32 {
		t.Errorf("expected radius to keep its default, got %d", cfg.Mandala.Radius)
	}
	if !cfg.Output.SaveAllToBitmap {
		t.Error("expected save_all_to_bitmap from env")
	}
	if cfg.Output.ImageFormat != "png" {
		t.Errorf("expected image format png, got %s", cfg.Output.ImageFormat)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected log level warn, got %s", cfg.Logging.Level)
	}
}

func TestApplyEnvInvalid(t *testing.T) {
	t.Setenv("MANDALA_RADIUS", "huge")

	if err := applyEnv(Default()); err == nil {
		t.Error("expected error for non-numeric radius")
	}
}

func TestLoadPriority(t *testing.T) {
	configPath := writeConfig(t, `
mandala:
  radius: 20
  sections: 4
output:
  image_format: png
`)

	t.Setenv("MANDALA_RADIUS", "30")

	cfg, err := Load(&Flags{Config: configPath, Sections: 6})
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Sections from flag (6), not file (4)
	if cfg.Mandala.Sections != 6 {
		t.Errorf("expected 6 sections from flag, got %d", cfg.Mandala.Sections)
	}
	// Radius from env (30), not file (20)
	if cfg.Mandala.Radius != 30 {
		t.Errorf("expected radius 30 from env, got %d", cfg.Mandala.Radius)
	}
	// Format from file since nothing overrides it
	if cfg.Output.ImageFormat != "png" {
		t.Errorf("expected image format png from file, got %s", cfg.Output.ImageFormat)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := writeConfig(t, "mandala:\n  sections: 7\n")

	if _, err := Load(&Flags{Config: configPath}); err == nil {
		t.Error("expected 7 sections to be rejected")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"zero radius", func(c *Config) { c.Mandala.Radius = 0 }, true},
		{"sections not dividing 360", func(c *Config) { c.Mandala.Sections = 7 }, true},
		{"zero sections", func(c *Config) { c.Mandala.Sections = 0 }, true},
		{"negative count", func(c *Config) { c.Mandala.Elements.Random.Count = -1 }, true},
		{"unknown format", func(c *Config) { c.Output.ImageFormat = "gif" }, true},
		{"png", func(c *Config) { c.Output.ImageFormat = "png" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFixedType(t *testing.T) {
	tests := []struct {
		id   string
		want mandala.ElementType
	}{
		{"PETAL", mandala.Petal},
		{"PETAL_1", mandala.Petal},
		{"strip_outer", mandala.Strip},
		{"CURVE_CONVEX", mandala.CurveConvex},
		{"CURVE_CONCAVE_2", mandala.CurveConcave},
		{"SPIRAL_1", mandala.ElementType("SPIRAL_1")},
	}

	for _, tt := range tests {
		if got := FixedType(tt.id); got != tt.want {
			t.Errorf("FixedType(%q) = %s, want %s", tt.id, got, tt.want)
		}
	}
}

func TestRecipe(t *testing.T) {
	cfg := Default()
	cfg.Mandala.Elements.Random.Pool = Pool{
		{Type: "strip", ElementConfig: ElementConfig{Range: []float64{0.1, 0.2}}},
		{Type: "SPIRAL", ElementConfig: ElementConfig{Vertices: 3}},
	}
	cfg.Mandala.Elements.Fixed = FixedElements{
		"CURVE_RANDOM_1": {Vertices: 5, Range: []float64{0, 1}},
	}
	cfg.Output.SaveAllToBitmap = true

	r := cfg.Recipe()

	if r.RandomCount != 4 {
		t.Errorf("expected 4 random elements, got %d", r.RandomCount)
	}
	if !r.SaveImage {
		t.Error("expected SaveImage to follow save_all_to_bitmap")
	}
	if len(r.Pool) != 2 || r.Pool[0].Type != mandala.Strip || r.Pool[1].Type != "SPIRAL" {
		t.Errorf("unexpected pool %+v", r.Pool)
	}
	fixed, ok := r.Fixed["CURVE_RANDOM_1"]
	if !ok {
		t.Fatal("expected fixed element CURVE_RANDOM_1")
	}
	if fixed.Type != mandala.CurveRandom || fixed.Vertices != 5 {
		t.Errorf("unexpected fixed element %+v", fixed)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	orig := Default()
	orig.Mandala.Elements.Random.Pool = Pool{
		{Type: "PETAL", ElementConfig: ElementConfig{Range: []float64{0.3, 0.4}}},
		{Type: "CURVE_CONCAVE", ElementConfig: ElementConfig{Vertices: 6, Range: []float64{0.1, 0.9}}},
	}
	if err := orig.SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	cfg := &Config{}
	if err := loadFromFile(cfg, path); err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}

	pool := cfg.Mandala.Elements.Random.Pool
	if len(pool) != 2 || pool[0].Type != "PETAL" || pool[1].Type != "CURVE_CONCAVE" {
		t.Fatalf("pool order lost on round trip: %+v", pool)
	}
	if pool[1].Vertices != 6 {
		t.Errorf("expected 6 vertices, got %d", pool[1].Vertices)
	}
	if cfg.Mandala.Sections != orig.Mandala.Sections {
		t.Errorf("expected %d sections, got %d", orig.Mandala.Sections, cfg.Mandala.Sections)
	}
}

func TestRegisterSaveIsOptional(t *testing.T) {
	var f Flags
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	f.Register(fs)
	if fs.Lookup("save") != nil {
		t.Error("Register should not add -save")
	}

	var g Flags
	fs = flag.NewFlagSet("draw", flag.ContinueOnError)
	g.Register(fs)
	g.RegisterSave(fs)
	if err := fs.Parse([]string{"-save", "-sections", "12"}); err != nil {
		t.Fatalf("failed to parse flags: %v", err)
	}
	if !g.Save || g.Sections != 12 {
		t.Errorf("expected save and 12 sections, got %+v", g)
	}
}
