// Package hcl_adapter implements config.Loader for HCL project files:
//
//	input  = "site"
//	output = "dist"
//	graph  = "deps.hcl"
//
//	log {
//	  level  = "debug"
//	  format = "json"
//	}
package hcl_adapter

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/tagweaver/internal/config"
	"github.com/specialistvlad/tagweaver/internal/ctxlog"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot is the decoded top level of a project file.
type fileRoot struct {
	Input  string    `hcl:"input,optional"`
	Output string    `hcl:"output,optional"`
	Graph  string    `hcl:"graph,optional"`
	Log    *logBlock `hcl:"log,block"`
	Remain hcl.Body  `hcl:",remain"`
}

type logBlock struct {
	Level  string `hcl:"level,optional"`
	Format string `hcl:"format,optional"`
}

// Load parses and decodes the project file at path.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(file.Body, nil, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	// Unknown attributes and blocks end up in Remain; they are not fatal.
	if attrs, _ := root.Remain.JustAttributes(); len(attrs) > 0 {
		for name := range attrs {
			logger.Warn("Ignoring unknown configuration attribute.", "path", path, "attribute", name)
		}
	}

	base := filepath.Dir(path)
	model := &config.Model{
		Input:  resolve(base, root.Input),
		Output: resolve(base, root.Output),
		Graph:  resolve(base, root.Graph),
	}
	if root.Log != nil {
		model.LogLevel = root.Log.Level
		model.LogFormat = root.Log.Format
	}

	logger.Debug("HCL loading complete.", "input", model.Input, "output", model.Output)
	return model, nil
}

// resolve makes a relative path from the configuration file relative to the
// file's directory.
func resolve(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}
