// Tests for the dependency edge accessors: directed labeled edges and
// one-hop queries in both directions.
package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelier-tools/shelf/pkg/types"
)

func TestDependencyAddAndQuery(t *testing.T) {
	b := setupBackend(t)
	es := mustElements(t, b)
	rs := mustRelations(t, b)

	createElement(t, es, "chars/hero/rig.ma")
	createElement(t, es, "chars/hero/model.ma")
	createElement(t, es, "chars/hero/textures/skin.png")

	require.NoError(t, rs.AddDependency("chars/hero/rig.ma", "chars/hero/model.ma", "rig requires model"))
	require.NoError(t, rs.AddDependency("chars/hero/rig.ma", "chars/hero/textures/skin.png", "preview texture"))

	deps, err := rs.DirectDependencies("chars/hero/rig.ma")
	require.NoError(t, err)
	require.Len(t, deps, 2)
	got := map[string]string{}
	for _, d := range deps {
		got[d.Identifier] = d.Label
	}
	assert.Equal(t, "rig requires model", got["chars/hero/model.ma"])
	assert.Equal(t, "preview texture", got["chars/hero/textures/skin.png"])

	dependents, err := rs.Dependents("chars/hero/model.ma")
	require.NoError(t, err)
	require.Len(t, dependents, 1)
	assert.Equal(t, "chars/hero/rig.ma", dependents[0].Identifier)

	// The edge is directed: the one-hop query never walks backwards.
	none, err := rs.DirectDependencies("chars/hero/model.ma")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestDependencyReAddOverwritesLabel(t *testing.T) {
	b := setupBackend(t)
	es := mustElements(t, b)
	rs := mustRelations(t, b)

	createElement(t, es, "chars/hero/rig.ma")
	createElement(t, es, "chars/hero/model.ma")

	require.NoError(t, rs.AddDependency("chars/hero/rig.ma", "chars/hero/model.ma", "old label"))
	require.NoError(t, rs.AddDependency("chars/hero/rig.ma", "chars/hero/model.ma", "new label"))

	deps, err := rs.DirectDependencies("chars/hero/rig.ma")
	require.NoError(t, err)
	require.Len(t, deps, 1, "re-adding the edge must not duplicate it")
	assert.Equal(t, "new label", deps[0].Label)
}

func TestDependencyMissingElement(t *testing.T) {
	b := setupBackend(t)
	es := mustElements(t, b)
	rs := mustRelations(t, b)

	createElement(t, es, "chars/hero/rig.ma")

	err := rs.AddDependency("chars/hero/rig.ma", "no/such/path", "dangling")
	assert.ErrorIs(t, err, types.ErrNotFound)
	err = rs.AddDependency("no/such/path", "chars/hero/rig.ma", "dangling")
	assert.ErrorIs(t, err, types.ErrNotFound)
	err = rs.RemoveDependency("chars/hero/rig.ma", "no/such/path")
	assert.ErrorIs(t, err, types.ErrNotFound)
	_, err = rs.DirectDependencies("no/such/path")
	assert.ErrorIs(t, err, types.ErrNotFound)
	_, err = rs.Dependents("no/such/path")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestDependencyRemove(t *testing.T) {
	b := setupBackend(t)
	es := mustElements(t, b)
	rs := mustRelations(t, b)

	createElement(t, es, "chars/hero/rig.ma")
	createElement(t, es, "chars/hero/model.ma")

	require.NoError(t, rs.AddDependency("chars/hero/rig.ma", "chars/hero/model.ma", "rig requires model"))
	require.NoError(t, rs.RemoveDependency("chars/hero/rig.ma", "chars/hero/model.ma"))

	deps, err := rs.DirectDependencies("chars/hero/rig.ma")
	require.NoError(t, err)
	assert.Empty(t, deps)

	assert.NoError(t, rs.RemoveDependency("chars/hero/rig.ma", "chars/hero/model.ma"),
		"removing an absent edge is not an error")
}

func TestDependencyEmptyResult(t *testing.T) {
	b := setupBackend(t)
	es := mustElements(t, b)
	rs := mustRelations(t, b)

	createElement(t, es, "props/lamp.obj")

	deps, err := rs.DirectDependencies("props/lamp.obj")
	require.NoError(t, err)
	assert.NotNil(t, deps)
	assert.Empty(t, deps)
}
