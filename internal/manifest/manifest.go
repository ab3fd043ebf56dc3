// Package manifest renders the dependency digraph of a build as an HCL
// document, so the include structure of a site can be inspected or diffed:
//
//	order = ["nav", "layout", "index"]
//
//	tag "layout" {
//	  source     = "./partials/layout.html"
//	  depends_on = ["nav"]
//	}
package manifest

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/specialistvlad/tagweaver/internal/ctxlog"
	"github.com/specialistvlad/tagweaver/internal/topologystore"
	"github.com/zclconf/go-cty/cty"
)

// Render builds the manifest file for store. order is the build order; tags
// are emitted in store order.
func Render(ctx context.Context, store topologystore.Store, order []string) *hclwrite.File {
	f := hclwrite.NewEmptyFile()
	body := f.Body()
	body.SetAttributeValue("order", stringList(order))

	for _, tag := range store.Tags(ctx) {
		doc, ok := store.Get(ctx, tag)
		if !ok {
			continue
		}
		body.AppendNewline()
		block := body.AppendNewBlock("tag", []string{tag})
		block.Body().SetAttributeValue("source", cty.StringVal(doc.Source.File()))
		block.Body().SetAttributeValue("depends_on", stringList(doc.Dependencies))
	}
	return f
}

// Write renders the manifest into w.
func Write(ctx context.Context, w io.Writer, store topologystore.Store, order []string) error {
	src := hclwrite.Format(Render(ctx, store, order).Bytes())
	if _, err := w.Write(src); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}

// WriteFile renders the manifest into the file at path, creating parent
// directories as needed.
func WriteFile(ctx context.Context, path string, store topologystore.Store, order []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create manifest directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create manifest: %w", err)
	}
	defer f.Close()

	if err := Write(ctx, f, store, order); err != nil {
		return err
	}
	ctxlog.FromContext(ctx).Info("Graph manifest written.", "path", path, "tags", store.Len(ctx))
	return f.Close()
}

func stringList(items []string) cty.Value {
	if len(items) == 0 {
		return cty.ListValEmpty(cty.String)
	}
	vals := make([]cty.Value, 0, len(items))
	for _, item := range items {
		vals = append(vals, cty.StringVal(item))
	}
	return cty.ListVal(vals)
}
