package config

import "flag"

// Flags holds command-line overrides. Zero values leave the config untouched.
type Flags struct {
	Config    string
	Debug     bool
	Layout    string
	IndexType string
	OutDir    string
	LogFile   string
}

// Register binds the flags to fs.
func (f *Flags) Register(fs *flag.FlagSet) {
	fs.StringVar(&f.Config, "config", "", "Path to config file (.yaml or .toml)")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.StringVar(&f.Layout, "layout", "", "Vertex layout: interleaved, planar, position_planar")
	fs.StringVar(&f.IndexType, "index", "", "Index type: none, uint16, uint32")
	fs.StringVar(&f.OutDir, "out", "", "Output directory")
	fs.StringVar(&f.LogFile, "log", "", "Log file path")
}

// apply applies flag overrides to the config.
func (f *Flags) apply(cfg *Config) {
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.Layout != "" {
		cfg.Geometry.Layout = f.Layout
	}
	if f.IndexType != "" {
		cfg.Geometry.IndexType = f.IndexType
	}
	if f.OutDir != "" {
		cfg.Output.Dir = f.OutDir
	}
	if f.LogFile != "" {
		cfg.Logging.LogFile = f.LogFile
	}
}
