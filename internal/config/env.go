package config

import "github.com/kelseyhightower/envconfig"

// envPrefix namespaces every environment override, e.g. MANDALA_SECTIONS.
const envPrefix = "MANDALA"

// envOverrides lists the settings that can come from the environment.
// Unset variables leave the pointer fields nil.
type envOverrides struct {
	Radius          *int
	Sections        *int
	RandomCount     *int   `split_words:"true"`
	SaveAllToBitmap *bool  `split_words:"true"`
	ImageDir        string `split_words:"true"`
	ImageFormat     string `split_words:"true"`
	LogLevel        string `split_words:"true"`
	LogFile         string `split_words:"true"`
}

// applyEnv applies MANDALA_* environment overrides to the config.
func applyEnv(cfg *Config) error {
	var env envOverrides
	if err := envconfig.Process(envPrefix, &env); err != nil {
		return err
	}

	if env.Radius != nil {
		cfg.Mandala.Radius = *env.Radius
	}
	if env.Sections != nil {
		cfg.Mandala.Sections = *env.Sections
	}
	if env.RandomCount != nil {
		cfg.Mandala.Elements.Random.Count = *env.RandomCount
	}
	if env.SaveAllToBitmap != nil {
		cfg.Output.SaveAllToBitmap = *env.SaveAllToBitmap
	}
	if env.ImageDir != "" {
		cfg.Output.ImageDir = env.ImageDir
	}
	if env.ImageFormat != "" {
		cfg.Output.ImageFormat = env.ImageFormat
	}
	if env.LogLevel != "" {
		cfg.Logging.Level = env.LogLevel
	}
	if env.LogFile != "" {
		cfg.Logging.LogFile = env.LogFile
	}
	return nil
}
