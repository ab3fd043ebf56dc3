package config

import "context"

// Model is a project configuration file translated into plain values. Empty
// fields mean "not set" and leave the corresponding default in place.
type Model struct {
	// Input is the input root. Relative paths are resolved against the
	// configuration file's directory by the loader.
	Input string
	// Output is the output root, resolved like Input.
	Output string
	// Graph is where the dependency manifest is written, resolved like Input.
	Graph string

	LogLevel  string
	LogFormat string
}

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads the configuration file at path and translates it into the
	// format-agnostic model.
	Load(ctx context.Context, path string) (*Model, error)
}
