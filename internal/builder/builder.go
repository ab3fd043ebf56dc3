package builder

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/tagweaver/internal/ctxlog"
	"github.com/specialistvlad/tagweaver/internal/topologystore"
)

// ErrMissingSource is returned when a tag to build has no recorded source.
var ErrMissingSource = errors.New("no source recorded for tag")

// FileBuilder reads sources below an input root and writes expanded files
// below an output root.
type FileBuilder struct {
	in    string
	out   string
	store topologystore.Store
}

// New creates a builder for the given roots and store.
func New(in, out string, store topologystore.Store) *FileBuilder {
	return &FileBuilder{in: in, out: out, store: store}
}

// Build implements the Builder interface.
func (b *FileBuilder) Build(ctx context.Context, order []string) (Result, error) {
	var result Result
	for _, tag := range order {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		tr, err := b.BuildTag(ctx, tag)
		if err != nil {
			return result, err
		}
		result.Built++
		result.Substitutions += len(tr.Included)
		if tr.SelfReference {
			result.SelfReferences++
		}
	}
	return result, nil
}

// BuildTag implements the Builder interface.
func (b *FileBuilder) BuildTag(ctx context.Context, tag string) (TagResult, error) {
	logger := ctxlog.FromContext(ctx)

	doc, ok := b.store.Get(ctx, tag)
	if !ok {
		return TagResult{}, fmt.Errorf("%w: %s", ErrMissingSource, tag)
	}
	inPath := doc.Source.Under(b.in)
	outPath := doc.Source.Under(b.out)
	logger.Info("Building tag.", "tag", tag, "from", inPath, "into", outPath)

	raw, err := os.ReadFile(inPath)
	if err != nil {
		return TagResult{}, fmt.Errorf("failed to read source of %q: %w", tag, err)
	}
	content := string(raw)

	result := TagResult{Tag: tag, Output: outPath}
	var pairs []string
	for _, other := range b.store.Tags(ctx) {
		needle := "<" + other + ">"
		if !strings.Contains(content, needle) {
			continue
		}
		if other == tag {
			logger.Error("Recursion is not allowed, leaving self reference unexpanded.", "tag", tag)
			result.SelfReference = true
			continue
		}

		included, err := b.readSource(ctx, other)
		if err != nil {
			return TagResult{}, fmt.Errorf("failed to include %q into %q: %w", other, tag, err)
		}
		logger.Debug("Substituting tag.", "tag", tag, "included", other)
		pairs = append(pairs, needle, included)
		result.Included = append(result.Included, other)
	}
	if len(pairs) > 0 {
		content = strings.NewReplacer(pairs...).Replace(content)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return TagResult{}, fmt.Errorf("failed to create output directory for %q: %w", tag, err)
	}
	if err := os.WriteFile(outPath, []byte(content), 0644); err != nil {
		return TagResult{}, fmt.Errorf("failed to write output of %q: %w", tag, err)
	}
	return result, nil
}

func (b *FileBuilder) readSource(ctx context.Context, tag string) (string, error) {
	doc, ok := b.store.Get(ctx, tag)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMissingSource, tag)
	}
	raw, err := os.ReadFile(doc.Source.Under(b.in))
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
