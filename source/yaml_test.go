package source_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catalystgo/catalyst/dsl"
	"github.com/catalystgo/catalyst/source"
)

func TestYAMLBytes(t *testing.T) {
	t.Run("nested mappings are string keyed", func(t *testing.T) {
		m, err := source.YAMLBytes([]byte("name: widget\nmeta:\n  owner: kim\n"))
		require.NoError(t, err)
		assert.Equal(t, "widget", m["name"])
		meta, ok := m["meta"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "kim", meta["owner"])
	})

	t.Run("malformed payload", func(t *testing.T) {
		_, err := source.YAMLBytes([]byte(":\n  - ]"))
		require.Error(t, err)
	})

	t.Run("feeds a load directly", func(t *testing.T) {
		s := dsl.Object().
			Field("name", dsl.String()).Required().
			Field("count", dsl.Int()).
			MustBuild()
		m, err := source.YAMLBytes([]byte("name: widget\ncount: 3\n"))
		require.NoError(t, err)
		res, err := s.Load(context.Background(), m)
		require.NoError(t, err)
		require.True(t, res.IsValid())
		assert.Equal(t, 3, res.ValidData["count"])
	})
}

func TestYAMLList(t *testing.T) {
	items, err := source.YAMLList([]byte("- n: 1\n- n: 2\n"))
	require.NoError(t, err)
	require.Len(t, items, 2)
	first, ok := items[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 1, first["n"])
}

func TestYAMLEncode(t *testing.T) {
	data, err := source.YAML(map[string]any{"a": 1})
	require.NoError(t, err)
	assert.Equal(t, "a: 1\n", string(data))
}
