// Tests for the element registry: atomic creation, lookups, partial
// updates, filtered listing, and the cascading delete.
package sqlite

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelier-tools/shelf/pkg/types"
)

// mustElements returns the element store of an attached backend.
func mustElements(t *testing.T, b *Backend) types.ElementStore {
	t.Helper()
	es, err := b.Elements()
	require.NoError(t, err)
	return es
}

// mustRelations returns the relation store of an attached backend.
func mustRelations(t *testing.T, b *Backend) types.RelationStore {
	t.Helper()
	rs, err := b.Relations()
	require.NoError(t, err)
	return rs
}

// createElement registers an element with no attributes and returns it.
func createElement(t *testing.T, es types.ElementStore, identifier string) *types.Element {
	t.Helper()
	el, err := es.Create(identifier, NewInstanceID(), types.ElementAttrs{})
	require.NoError(t, err)
	return el
}

func strp(s string) *string { return &s }
func boolp(b bool) *bool    { return &b }

func TestElementCreate(t *testing.T) {
	b := setupBackend(t)
	es := mustElements(t, b)

	modified := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	folder := false
	ctime := int64(1770000000)
	attrs := types.ElementAttrs{
		Name:       strp("hero_rig"),
		Directory:  strp("chars/hero"),
		Type:       strp("ma"),
		Extension:  strp("ma"),
		Folder:     &folder,
		Owner:      strp("ana"),
		ModifiedAt: &modified,
		CreatedAt:  &ctime,
		Metadata:   strp(`{"renderer":"arnold"}`),
	}

	el, err := es.Create("chars/hero/rig.ma", NewInstanceID(), attrs)
	require.NoError(t, err)
	assert.NotZero(t, el.ID, "surrogate id is assigned by the store")
	assert.NotEmpty(t, el.InstanceID)

	got, err := es.GetByIdentifier("chars/hero/rig.ma")
	require.NoError(t, err)
	assert.Equal(t, el.ID, got.ID)
	assert.Equal(t, el.InstanceID, got.InstanceID)
	assert.Equal(t, "hero_rig", got.Name)
	assert.Equal(t, "chars/hero", got.Directory)
	assert.Equal(t, "ma", got.Type)
	assert.Equal(t, "ana", got.Owner)
	assert.True(t, got.ModifiedAt.Equal(modified))
	assert.Equal(t, ctime, got.CreatedAt)
	assert.Equal(t, `{"renderer":"arnold"}`, got.Metadata)

	byID, err := es.GetByInstanceID(el.InstanceID)
	require.NoError(t, err)
	assert.Equal(t, got.Identifier, byID.Identifier)
}

func TestElementCreateDuplicateIdentifier(t *testing.T) {
	b := setupBackend(t)
	es := mustElements(t, b)

	createElement(t, es, "chars/hero/rig.ma")
	_, err := es.Create("chars/hero/rig.ma", NewInstanceID(), types.ElementAttrs{})
	assert.ErrorIs(t, err, types.ErrDuplicateIdentifier)
}

func TestElementCreateDuplicateInstanceID(t *testing.T) {
	b := setupBackend(t)
	es := mustElements(t, b)

	id := NewInstanceID()
	_, err := es.Create("chars/hero/rig.ma", id, types.ElementAttrs{})
	require.NoError(t, err)
	_, err = es.Create("chars/villain/rig.ma", id, types.ElementAttrs{})
	assert.ErrorIs(t, err, types.ErrDuplicateInstanceID)
}

func TestElementCreateRejectsEmptyKeys(t *testing.T) {
	b := setupBackend(t)
	es := mustElements(t, b)

	_, err := es.Create("", NewInstanceID(), types.ElementAttrs{})
	assert.ErrorIs(t, err, types.ErrInvalidIdentifier)
	_, err = es.Create("chars/hero/rig.ma", "", types.ElementAttrs{})
	assert.ErrorIs(t, err, types.ErrInvalidInstanceID)
}

func TestElementGetNotFound(t *testing.T) {
	b := setupBackend(t)
	es := mustElements(t, b)

	_, err := es.GetByIdentifier("no/such/path")
	assert.ErrorIs(t, err, types.ErrNotFound)
	_, err = es.GetByInstanceID(NewInstanceID())
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestElementUpdatePartial(t *testing.T) {
	b := setupBackend(t)
	es := mustElements(t, b)

	_, err := es.Create("chars/hero/rig.ma", NewInstanceID(), types.ElementAttrs{
		Name:  strp("hero_rig"),
		Owner: strp("ana"),
	})
	require.NoError(t, err)

	require.NoError(t, es.UpdateAttributes("chars/hero/rig.ma", types.ElementAttrs{
		Name: strp("hero_rig_v2"),
	}))

	got, err := es.GetByIdentifier("chars/hero/rig.ma")
	require.NoError(t, err)
	assert.Equal(t, "hero_rig_v2", got.Name)
	assert.Equal(t, "ana", got.Owner, "unset attributes are left untouched")
}

func TestElementUpdateEmptyAttrs(t *testing.T) {
	b := setupBackend(t)
	es := mustElements(t, b)

	createElement(t, es, "chars/hero/rig.ma")
	assert.NoError(t, es.UpdateAttributes("chars/hero/rig.ma", types.ElementAttrs{}),
		"empty update on an existing element is a no-op")
	assert.ErrorIs(t, es.UpdateAttributes("no/such/path", types.ElementAttrs{}), types.ErrNotFound)
}

func TestElementUpdateNotFound(t *testing.T) {
	b := setupBackend(t)
	es := mustElements(t, b)

	err := es.UpdateAttributes("no/such/path", types.ElementAttrs{Name: strp("x")})
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestElementDelete(t *testing.T) {
	b := setupBackend(t)
	es := mustElements(t, b)

	createElement(t, es, "chars/hero/rig.ma")
	require.NoError(t, es.Delete("chars/hero/rig.ma"))

	_, err := es.GetByIdentifier("chars/hero/rig.ma")
	assert.ErrorIs(t, err, types.ErrNotFound)

	assert.ErrorIs(t, es.Delete("chars/hero/rig.ma"), types.ErrNotFound,
		"second delete reports the element gone")
}

func TestElementDeleteCascades(t *testing.T) {
	b := setupBackend(t)
	es := mustElements(t, b)
	rs := mustRelations(t, b)

	doomed := createElement(t, es, "chars/hero/rig.ma")
	other := createElement(t, es, "chars/hero/model.ma")

	require.NoError(t, rs.AddDependency("chars/hero/rig.ma", "chars/hero/model.ma", "rig requires model"))
	require.NoError(t, rs.AddDependency("chars/hero/model.ma", "chars/hero/rig.ma", "preview uses rig"))
	require.NoError(t, rs.AddTag("chars/hero/rig.ma", "hero"))
	require.NoError(t, rs.SetThumbnail("chars/hero/rig.ma", []byte{0x89, 0x50, 0x4e, 0x47}))
	require.NoError(t, rs.SetMetadata("chars/hero/rig.ma", "1.0.0", `{"joints":120}`))
	require.NoError(t, rs.SetLatestVersion(doomed.InstanceID, "v001", "hero-rig-v001", "", "ana"))

	require.NoError(t, es.Delete("chars/hero/rig.ma"))

	// Edges in both directions are gone.
	deps, err := rs.DirectDependencies("chars/hero/model.ma")
	require.NoError(t, err)
	assert.Empty(t, deps)
	dependents, err := rs.Dependents("chars/hero/model.ma")
	require.NoError(t, err)
	assert.Empty(t, dependents)

	// The version row went with the element, so its display name is
	// free for another element to claim.
	require.NoError(t, rs.SetLatestVersion(other.InstanceID, "v001", "hero-rig-v001", "", "ana"))
	v, err := rs.LatestVersion("chars/hero/model.ma")
	require.NoError(t, err)
	assert.Equal(t, "hero-rig-v001", v.DisplayName)

	// The identifier is reusable and the new element starts clean.
	fresh := createElement(t, es, "chars/hero/rig.ma")
	tags, err := rs.Tags("chars/hero/rig.ma")
	require.NoError(t, err)
	assert.Empty(t, tags)
	_, err = rs.Thumbnail("chars/hero/rig.ma")
	assert.ErrorIs(t, err, types.ErrNotFound)
	_, err = rs.Metadata("chars/hero/rig.ma")
	assert.ErrorIs(t, err, types.ErrNotFound)
	_, err = rs.LatestVersion("chars/hero/rig.ma")
	assert.ErrorIs(t, err, types.ErrNotFound)
	assert.NotEqual(t, doomed.InstanceID, fresh.InstanceID)
}

func TestElementDeleteAtomicOnFailure(t *testing.T) {
	b := setupBackend(t)
	es := mustElements(t, b)
	rs := mustRelations(t, b)

	el := createElement(t, es, "chars/hero/rig.ma")
	createElement(t, es, "chars/hero/model.ma")
	require.NoError(t, rs.AddDependency("chars/hero/rig.ma", "chars/hero/model.ma", "rig requires model"))
	require.NoError(t, rs.AddTag("chars/hero/rig.ma", "hero"))
	require.NoError(t, rs.SetLatestVersion(el.InstanceID, "v001", "hero-rig-v001", "", "ana"))

	// Breaking a table reached mid-cascade forces the delete to fail
	// after the tag and edge steps already executed in the transaction.
	_, err := b.db.Exec("DROP TABLE metadata")
	require.NoError(t, err)

	err = es.Delete("chars/hero/rig.ma")
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrStorageUnavailable)

	// The rollback leaves every row in place: all or nothing.
	_, err = es.GetByIdentifier("chars/hero/rig.ma")
	assert.NoError(t, err, "element row survives the failed cascade")
	tags, err := rs.Tags("chars/hero/rig.ma")
	require.NoError(t, err)
	assert.Equal(t, []string{"hero"}, tags)
	deps, err := rs.DirectDependencies("chars/hero/rig.ma")
	require.NoError(t, err)
	require.Len(t, deps, 1)
	assert.Equal(t, "chars/hero/model.ma", deps[0].Identifier)
	v, err := rs.LatestVersion("chars/hero/rig.ma")
	require.NoError(t, err)
	assert.Equal(t, "v001", v.Label)
}

func TestElementList(t *testing.T) {
	b := setupBackend(t)
	es := mustElements(t, b)

	folder := true
	_, err := es.Create("chars", NewInstanceID(), types.ElementAttrs{
		Directory: strp(""), Type: strp("folder"), Folder: &folder,
	})
	require.NoError(t, err)
	_, err = es.Create("chars/hero/rig.ma", NewInstanceID(), types.ElementAttrs{
		Directory: strp("chars/hero"), Type: strp("ma"),
	})
	require.NoError(t, err)
	_, err = es.Create("chars/hero/model.ma", NewInstanceID(), types.ElementAttrs{
		Directory: strp("chars/hero"), Type: strp("ma"),
	})
	require.NoError(t, err)
	_, err = es.Create("props/lamp.obj", NewInstanceID(), types.ElementAttrs{
		Directory: strp("props"), Type: strp("obj"),
	})
	require.NoError(t, err)

	all, err := es.List(types.ElementFilter{})
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "chars", all[0].Identifier, "listing is ordered by identifier")

	byDir, err := es.List(types.ElementFilter{Directory: "chars/hero"})
	require.NoError(t, err)
	assert.Len(t, byDir, 2)

	byType, err := es.List(types.ElementFilter{Type: "obj"})
	require.NoError(t, err)
	require.Len(t, byType, 1)
	assert.Equal(t, "props/lamp.obj", byType[0].Identifier)

	folders, err := es.List(types.ElementFilter{Folder: boolp(true)})
	require.NoError(t, err)
	require.Len(t, folders, 1)
	assert.Equal(t, "chars", folders[0].Identifier)

	files, err := es.List(types.ElementFilter{Folder: boolp(false)})
	require.NoError(t, err)
	assert.Len(t, files, 3)

	page, err := es.List(types.ElementFilter{Limit: 2, Offset: 1})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "chars/hero/model.ma", page[0].Identifier)

	none, err := es.List(types.ElementFilter{Directory: "no/such"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestElementZeroModifiedRoundTrip(t *testing.T) {
	b := setupBackend(t)
	es := mustElements(t, b)

	createElement(t, es, "props/lamp.obj")
	got, err := es.GetByIdentifier("props/lamp.obj")
	require.NoError(t, err)
	assert.True(t, got.ModifiedAt.IsZero(), "unset modified stays zero")
}
