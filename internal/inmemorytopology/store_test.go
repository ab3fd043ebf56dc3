package inmemorytopology

import (
	"context"
	"testing"

	"github.com/specialistvlad/tagweaver/internal/topologystore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doc(tag string, deps ...string) *topologystore.Document {
	return &topologystore.Document{
		Tag:          tag,
		Source:       topologystore.Source{Path: "./" + tag, Ext: ".html"},
		Dependencies: deps,
	}
}

func TestPutAndGet(t *testing.T) {
	s := New()
	ctx := context.Background()

	prev, replaced := s.Put(ctx, doc("a", "c", "b", "c"))
	require.False(t, replaced)
	require.Nil(t, prev)

	got, ok := s.Get(ctx, "a")
	require.True(t, ok)
	assert.Equal(t, "./a.html", got.Source.File())
	assert.Equal(t, []string{"b", "c"}, got.Dependencies, "dependencies are sorted and deduplicated")

	_, ok = s.Get(ctx, "missing")
	assert.False(t, ok)
}

func TestPutDuplicateKeepsPosition(t *testing.T) {
	s := New()
	ctx := context.Background()

	s.Put(ctx, doc("a"))
	s.Put(ctx, doc("b"))

	replacement := doc("a", "b")
	replacement.Source.Path = "./nested/a"
	prev, replaced := s.Put(ctx, replacement)

	require.True(t, replaced)
	assert.Equal(t, "./a", prev.Source.Path)
	assert.Equal(t, []string{"a", "b"}, s.Tags(ctx))
	assert.Equal(t, 2, s.Len(ctx))

	got, _ := s.Get(ctx, "a")
	assert.Equal(t, "./nested/a", got.Source.Path, "last write wins")
}

func TestDependenciesOf(t *testing.T) {
	s := New()
	ctx := context.Background()
	s.Put(ctx, doc("page", "nav", "footer"))

	assert.Equal(t, []string{"footer", "nav"}, s.DependenciesOf(ctx, "page"))

	deps := s.DependenciesOf(ctx, "never-scanned")
	assert.NotNil(t, deps)
	assert.Empty(t, deps)
}

func TestTagsIsASnapshot(t *testing.T) {
	s := New()
	ctx := context.Background()
	s.Put(ctx, doc("a"))

	tags := s.Tags(ctx)
	tags[0] = "mutated"
	assert.Equal(t, []string{"a"}, s.Tags(ctx))
}
