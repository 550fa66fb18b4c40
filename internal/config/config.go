// Package config handles objtool configuration loading and management.
package config

// Config holds all objtool settings.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
	LSP     LSPConfig     `yaml:"lsp"`
	Logging LoggingConfig `yaml:"logging"`
}

// InputConfig controls how source files are read.
type InputConfig struct {
	Encoding string `yaml:"encoding"` // charset name or "auto"
	Validate bool   `yaml:"validate"` // check index references after parsing
}

// OutputConfig controls how documents are written back.
type OutputConfig struct {
	Fold     bool   `yaml:"fold"`     // fold point runs and line chains
	Header   string `yaml:"header"`   // comment written at the top of the file
	Encoding string `yaml:"encoding"` // charset of written files
}

// LSPConfig holds language server settings.
type LSPConfig struct {
	Verbosity int    `yaml:"verbosity"`
	LogFile   string `yaml:"log_file"`
	Validate  bool   `yaml:"validate"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Input: InputConfig{
			Encoding: "auto",
			Validate: false,
		},
		Output: OutputConfig{
			Fold:     true,
			Header:   "",
			Encoding: "utf-8",
		},
		LSP: LSPConfig{
			Verbosity: 0,
			LogFile:   "",
			Validate:  true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
