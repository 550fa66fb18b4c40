package config

import "github.com/spf13/pflag"

// Flags holds command-line overrides. Zero values leave the config alone.
type Flags struct {
	Config   string
	Debug    bool
	LogFile  string
	Encoding string
	NoFold   bool
	Validate bool
}

// Register binds the flags to fs, normally a command's persistent flags.
func (f *Flags) Register(fs *pflag.FlagSet) {
	fs.StringVar(&f.Config, "config", "", "Path to config file")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.StringVar(&f.LogFile, "log-file", "", "Also write logs to this file")
	fs.StringVar(&f.Encoding, "encoding", "", "Input charset (auto, utf-8, latin1, euc-kr, ...)")
	fs.BoolVar(&f.NoFold, "no-fold", false, "Write one record per element")
	fs.BoolVar(&f.Validate, "validate", false, "Check index references against vertex pools")
}

// apply applies CLI flag overrides to the config.
func (f *Flags) apply(cfg *Config) {
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.LogFile != "" {
		cfg.Logging.LogFile = f.LogFile
	}
	if f.Encoding != "" {
		cfg.Input.Encoding = f.Encoding
	}
	if f.NoFold {
		cfg.Output.Fold = false
	}
	if f.Validate {
		cfg.Input.Validate = true
	}
}
