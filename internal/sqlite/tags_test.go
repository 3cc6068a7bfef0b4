// Tests for the tag accessors: dictionary plus many-to-many links.
package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelier-tools/shelf/pkg/types"
)

func TestTagAddAndList(t *testing.T) {
	b := setupBackend(t)
	es := mustElements(t, b)
	rs := mustRelations(t, b)

	createElement(t, es, "chars/hero/rig.ma")

	require.NoError(t, rs.AddTag("chars/hero/rig.ma", "rig"))
	require.NoError(t, rs.AddTag("chars/hero/rig.ma", "approved"))
	require.NoError(t, rs.AddTag("chars/hero/rig.ma", "hero"))

	tags, err := rs.Tags("chars/hero/rig.ma")
	require.NoError(t, err)
	assert.Equal(t, []string{"approved", "hero", "rig"}, tags, "tags are listed sorted")
}

func TestTagAddTwiceIsNoOp(t *testing.T) {
	b := setupBackend(t)
	es := mustElements(t, b)
	rs := mustRelations(t, b)

	createElement(t, es, "chars/hero/rig.ma")
	require.NoError(t, rs.AddTag("chars/hero/rig.ma", "rig"))
	require.NoError(t, rs.AddTag("chars/hero/rig.ma", "rig"))

	tags, err := rs.Tags("chars/hero/rig.ma")
	require.NoError(t, err)
	assert.Equal(t, []string{"rig"}, tags)
}

func TestTagSharedAcrossElements(t *testing.T) {
	b := setupBackend(t)
	es := mustElements(t, b)
	rs := mustRelations(t, b)

	createElement(t, es, "chars/hero/rig.ma")
	createElement(t, es, "chars/villain/rig.ma")

	require.NoError(t, rs.AddTag("chars/hero/rig.ma", "rig"))
	require.NoError(t, rs.AddTag("chars/villain/rig.ma", "rig"))

	// Unlinking from one element leaves the other's link intact.
	require.NoError(t, rs.RemoveTag("chars/hero/rig.ma", "rig"))

	heroTags, err := rs.Tags("chars/hero/rig.ma")
	require.NoError(t, err)
	assert.Empty(t, heroTags)

	villainTags, err := rs.Tags("chars/villain/rig.ma")
	require.NoError(t, err)
	assert.Equal(t, []string{"rig"}, villainTags)
}

func TestTagRemoveUnlinked(t *testing.T) {
	b := setupBackend(t)
	es := mustElements(t, b)
	rs := mustRelations(t, b)

	createElement(t, es, "chars/hero/rig.ma")
	assert.NoError(t, rs.RemoveTag("chars/hero/rig.ma", "never-linked"),
		"removing a tag that was never linked is not an error")
}

func TestTagMissingElement(t *testing.T) {
	b := setupBackend(t)
	rs := mustRelations(t, b)

	assert.ErrorIs(t, rs.AddTag("no/such/path", "rig"), types.ErrNotFound)
	assert.ErrorIs(t, rs.RemoveTag("no/such/path", "rig"), types.ErrNotFound)
	_, err := rs.Tags("no/such/path")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestTagEmptyName(t *testing.T) {
	b := setupBackend(t)
	es := mustElements(t, b)
	rs := mustRelations(t, b)

	createElement(t, es, "chars/hero/rig.ma")
	assert.ErrorIs(t, rs.AddTag("chars/hero/rig.ma", ""), types.ErrInvalidTag)
	assert.ErrorIs(t, rs.RemoveTag("chars/hero/rig.ma", ""), types.ErrInvalidTag)
}
