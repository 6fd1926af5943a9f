package request_models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodePatch(t *testing.T, body string) PatchDocument {
	t.Helper()
	var doc PatchDocument
	require.NoError(t, json.Unmarshal([]byte(body), &doc))
	return doc
}

func TestPatchDocumentApplyTo(t *testing.T) {
	base := PointOfInterestForUpdate{Name: "Central Park", Description: "A large park"}

	t.Run("replace and add set fields in order", func(t *testing.T) {
		target := base
		doc := decodePatch(t, `[
			{"op":"replace","path":"/name","value":"Bryant Park"},
			{"op":"add","path":"/description","value":"Midtown"},
			{"op":"replace","path":"/description","value":"A small park"}
		]`)

		require.NoError(t, doc.ApplyTo(&target))
		assert.Equal(t, "Bryant Park", target.Name)
		assert.Equal(t, "A small park", target.Description)
	})

	t.Run("paths are case insensitive", func(t *testing.T) {
		target := base
		doc := decodePatch(t, `[{"op":"Replace","path":"/Name","value":"Bryant Park"}]`)

		require.NoError(t, doc.ApplyTo(&target))
		assert.Equal(t, "Bryant Park", target.Name)
	})

	t.Run("remove clears the field", func(t *testing.T) {
		target := base
		doc := decodePatch(t, `[{"op":"remove","path":"/description"}]`)

		require.NoError(t, doc.ApplyTo(&target))
		assert.Empty(t, target.Description)
	})

	t.Run("test passes on equal value", func(t *testing.T) {
		target := base
		doc := decodePatch(t, `[{"op":"test","path":"/name","value":"Central Park"},{"op":"replace","path":"/name","value":"X"}]`)

		require.NoError(t, doc.ApplyTo(&target))
		assert.Equal(t, "X", target.Name)
	})

	t.Run("test fails on different value", func(t *testing.T) {
		target := base
		doc := decodePatch(t, `[{"op":"test","path":"/name","value":"Other"}]`)

		err := doc.ApplyTo(&target)
		var perr *PatchError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, "Name", perr.Field)
		assert.Equal(t, 0, perr.Index)
	})

	t.Run("unknown path", func(t *testing.T) {
		target := base
		doc := decodePatch(t, `[{"op":"replace","path":"/id","value":"3"}]`)

		err := doc.ApplyTo(&target)
		var perr *PatchError
		require.ErrorAs(t, err, &perr)
		assert.Empty(t, perr.Field)
		assert.Equal(t, base, target)
	})

	t.Run("malformed paths", func(t *testing.T) {
		for _, path := range []string{"//name//", "/name/", "name", "//name", "/name/first", " /name"} {
			target := base
			doc := PatchDocument{{Op: PatchOpReplace, Path: path, Value: json.RawMessage(`"X"`)}}

			var perr *PatchError
			require.ErrorAs(t, doc.ApplyTo(&target), &perr, path)
			assert.Empty(t, perr.Field, path)
			assert.Equal(t, base, target, path)
		}
	})

	t.Run("unknown operation", func(t *testing.T) {
		target := base
		doc := decodePatch(t, `[{"op":"move","path":"/name","value":"x"}]`)

		var perr *PatchError
		require.ErrorAs(t, doc.ApplyTo(&target), &perr)
		assert.Equal(t, "Name", perr.Field)
	})

	t.Run("missing value", func(t *testing.T) {
		target := base
		doc := decodePatch(t, `[{"op":"replace","path":"/name"}]`)

		assert.Error(t, doc.ApplyTo(&target))
	})

	t.Run("non string value", func(t *testing.T) {
		target := base
		doc := decodePatch(t, `[{"op":"replace","path":"/description","value":42}]`)

		var perr *PatchError
		require.ErrorAs(t, doc.ApplyTo(&target), &perr)
		assert.Equal(t, "Description", perr.Field)
	})

	t.Run("second operation failing reports its index", func(t *testing.T) {
		target := base
		doc := decodePatch(t, `[{"op":"replace","path":"/name","value":"A"},{"op":"copy","path":"/name"}]`)

		var perr *PatchError
		require.ErrorAs(t, doc.ApplyTo(&target), &perr)
		assert.Equal(t, 1, perr.Index)
	})
}

func TestPointOfInterestForUpdateValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.Nil(t, PointOfInterestForUpdate{Name: "A", Description: "B"}.Validate())
	})

	t.Run("description equal to name", func(t *testing.T) {
		verr := PointOfInterestForUpdate{Name: "X", Description: "X"}.Validate()
		require.NotNil(t, verr)
		assert.Equal(t, []string{DescriptionEqualsNameMessage}, verr.Fields["Description"])
	})

	t.Run("name required", func(t *testing.T) {
		verr := PointOfInterestForUpdate{Description: "B"}.Validate()
		require.NotNil(t, verr)
		assert.Contains(t, verr.Fields, "Name")
	})

	t.Run("name too long", func(t *testing.T) {
		long := make([]byte, 51)
		for i := range long {
			long[i] = 'a'
		}
		verr := PointOfInterestForUpdate{Name: string(long), Description: "B"}.Validate()
		require.NotNil(t, verr)
		assert.Contains(t, verr.Fields, "Name")
	})
}
