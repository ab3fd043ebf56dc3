package scan

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/specialistvlad/tagweaver/internal/ctxlog"
	"github.com/specialistvlad/tagweaver/internal/fsutil"
	"github.com/specialistvlad/tagweaver/internal/topologystore"
	"github.com/specialistvlad/tagweaver/internal/vocabulary"
)

// TagIdentity derives a document's tag from its file name by stripping the
// extension: "partials/nav.html" -> "nav".
func TagIdentity(path string) string {
	stem, _ := fsutil.SplitExt(filepath.Base(path))
	return stem
}

// ParseFile reads the file at path, computes the custom elements it
// references and records it in store. root is the input root the stored
// source path is made relative to. The replaced document is returned when the
// file's tag was already recorded.
func ParseFile(ctx context.Context, path, root string, store topologystore.Store) (*topologystore.Document, error) {
	logger := ctxlog.FromContext(ctx)

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	rel, ext, err := fsutil.RelativeStem(root, path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s against %s: %w", path, root, err)
	}

	names := vocabulary.CustomElementNames(string(content))
	deps := make([]string, 0, len(names))
	for name := range names {
		deps = append(deps, name)
	}

	doc := &topologystore.Document{
		Tag:          TagIdentity(path),
		Source:       topologystore.Source{Path: rel, Ext: ext},
		Dependencies: deps,
	}
	prev, replaced := store.Put(ctx, doc)
	logger.Debug("Parsed file.", "tag", doc.Tag, "source", doc.Source.File(), "custom_elements", len(deps))

	if !replaced {
		return nil, nil
	}
	return prev, nil
}
