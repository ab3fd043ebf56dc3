// Package topologystore defines the interface for storing and retrieving the
// dependency digraph of a build: which documents exist, where their sources
// live, and which other documents each one includes.
//
// # Lifecycle and Usage
//
// The topology store is:
//  1. **Created** once per build session (ephemeral, nothing persists across runs)
//  2. **Populated** by the directory scanner, one document per source file
//  3. **Read-only** afterwards: the sorter walks it and the builder resolves sources from it
//  4. **Discarded** when the session ends
package topologystore

import (
	"context"
	"path/filepath"
)

// Source locates a document's file relative to the input root. Path is the
// extension-less relative path with a leading "./" (for example "./partials/nav")
// and Ext is the original extension including the dot.
type Source struct {
	Path string
	Ext  string
}

// File returns the source's relative file name including its extension.
func (s Source) File() string {
	return s.Path + s.Ext
}

// Under joins the source's file name onto root.
func (s Source) Under(root string) string {
	return filepath.Join(root, filepath.FromSlash(s.File()))
}

// Document is one vertex of the dependency digraph.
type Document struct {
	// Tag is the document's identity, its file name without the extension.
	Tag string
	// Source is where the document lives under the input root.
	Source Source
	// Dependencies are the custom element names the document references.
	Dependencies []string
}

// Store is the interface for managing the dependency digraph and the
// tag→source index of a single build.
//
// # Ordering Requirements
//
// Builds must be reproducible, so implementations MUST NOT leak map iteration
// order: Tags returns documents in the order they were first recorded and
// DependenciesOf returns names sorted lexically.
type Store interface {
	// Put records a document. When a document with the same tag already exists
	// it is replaced (last write wins) but keeps its original position in
	// Tags; the replaced document is returned with true.
	Put(ctx context.Context, doc *Document) (*Document, bool)

	// Get retrieves a document by tag.
	Get(ctx context.Context, tag string) (*Document, bool)

	// Tags returns every recorded tag in first-recorded order.
	Tags(ctx context.Context) []string

	// DependenciesOf returns the tags the given tag references. A tag that
	// was never recorded (a dangling reference) has no dependencies.
	DependenciesOf(ctx context.Context, tag string) []string

	// Len returns the number of recorded documents.
	Len(ctx context.Context) int
}
