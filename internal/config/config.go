// Package config handles generator configuration loading and management.
package config

import (
	"fmt"

	"github.com/Faultbox/mandalas/pkg/mandala"
)

// Config holds all generator settings.
type Config struct {
	Mandala MandalaConfig `yaml:"mandala"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// MandalaConfig holds the composition settings.
type MandalaConfig struct {
	Radius   int            `yaml:"radius"`
	Sections int            `yaml:"sections"`
	Elements ElementsConfig `yaml:"elements"`
}

// ElementsConfig holds the random pool and the fixed elements.
type ElementsConfig struct {
	Random RandomConfig  `yaml:"random"`
	Fixed  FixedElements `yaml:"fixed"`
}

// RandomConfig holds the random element settings.
type RandomConfig struct {
	Count int  `yaml:"count"`
	Pool  Pool `yaml:"pool"`
}

// ElementConfig holds the shape parameters of one element.
type ElementConfig struct {
	Vertices int       `yaml:"vertices,omitempty"`
	Range    []float64 `yaml:"range,flow"`
}

// OutputConfig holds image persistence settings.
type OutputConfig struct {
	SaveAllToBitmap bool   `yaml:"save_all_to_bitmap"`
	ImageDir        string `yaml:"image_dir"`
	ImageFormat     string `yaml:"image_format"` // bmp or png
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Mandala: MandalaConfig{
			Radius:   32,
			Sections: 8,
			Elements: ElementsConfig{
				Random: RandomConfig{
					Count: 4,
					Pool: Pool{
						{Type: string(mandala.CurveConcave), ElementConfig: ElementConfig{Vertices: 4, Range: []float64{0.2, 0.9}}},
						{Type: string(mandala.CurveConvex), ElementConfig: ElementConfig{Vertices: 5, Range: []float64{0.1, 0.8}}},
						{Type: string(mandala.CurveRandom), ElementConfig: ElementConfig{Vertices: 3, Range: []float64{0, 1}}},
						{Type: string(mandala.Petal), ElementConfig: ElementConfig{Range: []float64{0.1, 0.5}}},
					},
				},
				Fixed: FixedElements{
					"PETAL_1": {Range: []float64{0.05, 0.3}},
				},
			},
		},
		Output: OutputConfig{
			SaveAllToBitmap: false,
			ImageDir:        "images",
			ImageFormat:     "bmp",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks the settings that would make composition impossible.
// Individual element shapes are checked when the mandala is built.
func (c *Config) Validate() error {
	if c.Mandala.Radius <= 0 {
		return fmt.Errorf("%w: radius must be positive, got %d", mandala.ErrInvalidAttributes, c.Mandala.Radius)
	}
	if c.Mandala.Sections <= 0 || 360%c.Mandala.Sections != 0 {
		return fmt.Errorf("%w: sections must divide 360, got %d", mandala.ErrInvalidAttributes, c.Mandala.Sections)
	}
	if c.Mandala.Elements.Random.Count < 0 {
		return fmt.Errorf("random element count must not be negative, got %d", c.Mandala.Elements.Random.Count)
	}
	switch c.Output.ImageFormat {
	case "bmp", "png":
	default:
		return fmt.Errorf("unsupported image format %q", c.Output.ImageFormat)
	}
	return nil
}

// Recipe converts the element settings into a composition recipe. Unknown
// element types are passed through so the composer can report and skip them.
func (c *Config) Recipe() mandala.Recipe {
	r := mandala.Recipe{
		RandomCount: c.Mandala.Elements.Random.Count,
		SaveImage:   c.Output.SaveAllToBitmap,
	}

	for _, e := range c.Mandala.Elements.Random.Pool {
		r.Pool = append(r.Pool, mandala.ElementParams{
			Type:     elementType(e.Type),
			Vertices: e.Vertices,
			Range:    e.Range,
		})
	}

	if len(c.Mandala.Elements.Fixed) > 0 {
		r.Fixed = make(map[string]mandala.ElementParams, len(c.Mandala.Elements.Fixed))
		for id, e := range c.Mandala.Elements.Fixed {
			r.Fixed[id] = mandala.ElementParams{
				Type:     FixedType(id),
				Vertices: e.Vertices,
				Range:    e.Range,
			}
		}
	}

	return r
}

func elementType(s string) mandala.ElementType {
	if t, err := mandala.ParseElementType(s); err == nil {
		return t
	}
	return mandala.ElementType(s)
}
