// Package config defines the format-agnostic project configuration model and
// the Loader interface used to read it. Concrete loaders, such as the HCL one
// in hcl_adapter, live in separate packages.
package config
