package builder

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/tagweaver/internal/ctxlog"
	"github.com/specialistvlad/tagweaver/internal/inmemorytopology"
	"github.com/specialistvlad/tagweaver/internal/scan"
	"github.com/specialistvlad/tagweaver/internal/topologystore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	ctx   context.Context
	logs  *bytes.Buffer
	in    string
	out   string
	store topologystore.Store
}

// newFixture writes files under a fresh input root and scans them.
func newFixture(t *testing.T, files map[string]string) *fixture {
	t.Helper()

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := ctxlog.WithLogger(context.Background(), logger)

	base := t.TempDir()
	in := filepath.Join(base, "site")
	for name, content := range files {
		path := filepath.Join(in, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}

	store := inmemorytopology.New()
	_, err := scan.New(in, store).Scan(ctx)
	require.NoError(t, err)

	return &fixture{ctx: ctx, logs: &logs, in: in, out: filepath.Join(base, "build"), store: store}
}

func (f *fixture) read(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(f.out, filepath.FromSlash(name)))
	require.NoError(t, err)
	return string(data)
}

func TestBuildSubstitutesIncludes(t *testing.T) {
	f := newFixture(t, map[string]string{
		"a.html": "<b>",
		"b.html": "hello",
	})
	result, err := New(f.in, f.out, f.store).Build(f.ctx, []string{"b", "a"})
	require.NoError(t, err)

	assert.Equal(t, Result{Built: 2, Substitutions: 1}, result)
	assert.Equal(t, "hello", f.read(t, "a.html"))
	assert.Equal(t, "hello", f.read(t, "b.html"))
}

func TestBuildReplacesEveryOccurrence(t *testing.T) {
	f := newFixture(t, map[string]string{
		"page.html":    "<hr-line>\n<p>body</p>\n<hr-line>\n",
		"hr-line.html": "---",
	})
	_, err := New(f.in, f.out, f.store).BuildTag(f.ctx, "page")
	require.NoError(t, err)

	assert.Equal(t, "---\n<p>body</p>\n---\n", f.read(t, "page.html"))
}

func TestBuildSelfReference(t *testing.T) {
	f := newFixture(t, map[string]string{
		"self.html": "before <self> after",
	})
	result, err := New(f.in, f.out, f.store).Build(f.ctx, []string{"self"})
	require.NoError(t, err)

	assert.Equal(t, 1, result.SelfReferences)
	assert.Equal(t, "before <self> after", f.read(t, "self.html"))
	assert.Contains(t, f.logs.String(), "level=ERROR")
	assert.Contains(t, f.logs.String(), "Recursion is not allowed")
}

func TestBuildLeavesDanglingReferences(t *testing.T) {
	f := newFixture(t, map[string]string{
		"page.html":  "<unknown-widget>\n<known>\n",
		"known.html": "ok",
	})
	_, err := New(f.in, f.out, f.store).Build(f.ctx, []string{"known", "page"})
	require.NoError(t, err)

	assert.Equal(t, "<unknown-widget>\nok\n", f.read(t, "page.html"))
}

func TestBuildIsSinglePass(t *testing.T) {
	f := newFixture(t, map[string]string{
		"page.html":    "[<layout>]",
		"layout.html":  "(<nav-bar>)",
		"nav-bar.html": "NAV",
	})
	_, err := New(f.in, f.out, f.store).Build(f.ctx, []string{"nav-bar", "layout", "page"})
	require.NoError(t, err)

	assert.Equal(t, "(NAV)", f.read(t, "layout.html"))
	assert.Equal(t, "[(<nav-bar>)]", f.read(t, "page.html"), "nested includes are not expanded transitively")
}

func TestBuildOnlyMatchesBareTags(t *testing.T) {
	f := newFixture(t, map[string]string{
		"page.html": "<card class=\"x\">\n<card>\n",
		"card.html": "CARD",
	})
	_, err := New(f.in, f.out, f.store).BuildTag(f.ctx, "page")
	require.NoError(t, err)

	assert.Equal(t, "<card class=\"x\">\nCARD\n", f.read(t, "page.html"))
}

func TestBuildMirrorsTreeAndExtension(t *testing.T) {
	f := newFixture(t, map[string]string{
		"pages/blog/post.htm":       "<footer-note>",
		"partials/footer-note.html": "(c)",
	})
	tr, err := New(f.in, f.out, f.store).BuildTag(f.ctx, "post")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(f.out, "pages", "blog", "post.htm"), tr.Output)
	assert.Equal(t, []string{"footer-note"}, tr.Included)
	assert.Equal(t, "(c)", f.read(t, "pages/blog/post.htm"))
}

func TestBuildOverwritesExistingOutput(t *testing.T) {
	f := newFixture(t, map[string]string{
		"index.html": "fresh",
	})
	require.NoError(t, os.MkdirAll(f.out, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(f.out, "index.html"), []byte("stale content"), 0644))

	_, err := New(f.in, f.out, f.store).BuildTag(f.ctx, "index")
	require.NoError(t, err)
	assert.Equal(t, "fresh", f.read(t, "index.html"))
}

func TestBuildUnknownTag(t *testing.T) {
	f := newFixture(t, map[string]string{"a.html": "a"})

	_, err := New(f.in, f.out, f.store).Build(f.ctx, []string{"a", "ghost"})
	require.ErrorIs(t, err, ErrMissingSource)
	assert.Equal(t, "a", f.read(t, "a.html"), "files written before the failure stay on disk")
}

func TestBuildIsDeterministic(t *testing.T) {
	f := newFixture(t, map[string]string{
		"page.html": "<x-a><x-b>\n<x-b><x-a>\n<x-a>\n",
		"x-a.html":  "A<x-b>",
		"x-b.html":  "B<x-a>",
	})
	b := New(f.in, f.out, f.store)

	_, err := b.BuildTag(f.ctx, "page")
	require.NoError(t, err)
	first := f.read(t, "page.html")

	for range 5 {
		_, err := b.BuildTag(f.ctx, "page")
		require.NoError(t, err)
		assert.Equal(t, first, f.read(t, "page.html"))
	}
}
