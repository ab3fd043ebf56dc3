package builder

import "context"

// Builder expands documents into the output tree.
type Builder interface {
	// Build expands every tag of order, in order, and stops at the first
	// failure. Files written before the failure are left in place.
	Build(ctx context.Context, order []string) (Result, error)

	// BuildTag expands a single tag and writes its output file.
	BuildTag(ctx context.Context, tag string) (TagResult, error)
}

// Result summarises a Build call.
type Result struct {
	Built          int
	Substitutions  int
	SelfReferences int
}

// TagResult describes the output of a single tag.
type TagResult struct {
	Tag    string
	Output string
	// Included lists the tags that were substituted, in substitution order.
	Included []string
	// SelfReference is set when the tag referenced itself.
	SelfReference bool
}
