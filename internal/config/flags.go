package config

// Overrides carries CLI flag values. Zero values leave the config alone.
type Overrides struct {
	Debug   bool
	LogFile string
	Width   int
	Height  int
	Step    float64
}

// Apply applies CLI flag overrides to the config.
func (o Overrides) Apply(cfg *Config) {
	if o.Debug {
		cfg.Logging.Level = "debug"
	}
	if o.LogFile != "" {
		cfg.Logging.LogFile = o.LogFile
	}
	if o.Width > 0 {
		cfg.View.Width = o.Width
	}
	if o.Height > 0 {
		cfg.View.Height = o.Height
	}
	if o.Step > 0 {
		cfg.Input.Step = o.Step
	}
}
