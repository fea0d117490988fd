package pairmap_test

import (
	"encoding/json"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/mashiike/pairmap"
	"github.com/mashiike/pairmap/internal/testutil"
	"github.com/stretchr/testify/require"
)

func newTestMap(t *testing.T, opts ...pairmap.Option) *pairmap.Map {
	t.Helper()
	m := pairmap.NewMap(opts...)
	for _, e := range [][2]string{
		{"name", "XXIV"},
		{"lang", "go"},
		{"name", "duplicate"},
		{"", "empty-key"},
		{"userName", "go"},
	} {
		require.NoError(t, m.Insert(e[0], e[1]))
	}
	t.Cleanup(m.Destroy)
	return m
}

func TestYAML2JSON(t *testing.T) {
	yamlStr := testutil.LoadString(t, "testdata/entries.yaml")
	jsonStr := testutil.LoadString(t, "testdata/entries.json")
	bs, err := pairmap.YAML2JSON([]byte(yamlStr))
	require.NoError(t, err)
	require.JSONEq(t, jsonStr, string(bs))
}

func TestJSON2YAML(t *testing.T) {
	yamlStr := testutil.LoadString(t, "testdata/entries.yaml")
	jsonStr := testutil.LoadString(t, "testdata/entries.json")
	bs, err := pairmap.JSON2YAML([]byte(jsonStr))
	require.NoError(t, err)
	require.YAMLEq(t, yamlStr, string(bs))
}

func TestJSON2Jsonnet(t *testing.T) {
	jsonStr := testutil.LoadString(t, "testdata/entries.json")
	bs, err := pairmap.JSON2Jsonnet("entries.jsonnet", []byte(jsonStr))
	require.NoError(t, err)
	require.Contains(t, string(bs), "key: 'name'")
	require.Contains(t, string(bs), "value: 'XXIV'")
}

func TestMap__JSON(t *testing.T) {
	m := newTestMap(t)
	bs, err := json.Marshal(m)
	require.NoError(t, err)
	require.JSONEq(t, testutil.LoadString(t, "testdata/entries.json"), string(bs))

	decoded := pairmap.NewMap()
	defer decoded.Destroy()
	require.NoError(t, json.Unmarshal(bs, decoded))
	require.Equal(t, m.Entries(), decoded.Entries())

	empty, err := json.Marshal(pairmap.NewMap())
	require.NoError(t, err)
	require.Equal(t, "[]", string(empty))
}

func TestMap__JSONRespectsBudget(t *testing.T) {
	m := pairmap.NewMap(pairmap.WithMaxEntries(3))
	err := json.Unmarshal([]byte(testutil.LoadString(t, "testdata/entries.json")), m)
	require.ErrorIs(t, err, pairmap.ErrAllocationFailure)
	require.ErrorContains(t, err, "entry[3]")
	require.Equal(t, 3, m.Len())
}

func TestMap__YAML(t *testing.T) {
	m := newTestMap(t)
	bs, err := yaml.Marshal(m)
	require.NoError(t, err)
	require.YAMLEq(t, testutil.LoadString(t, "testdata/entries.yaml"), string(bs))

	decoded := pairmap.NewMap()
	defer decoded.Destroy()
	require.NoError(t, yaml.Unmarshal([]byte(testutil.LoadString(t, "testdata/entries.yaml")), decoded))
	require.Equal(t, m.Entries(), decoded.Entries())
	value, ok := decoded.GetKey("empty-key")
	require.True(t, ok)
	require.Equal(t, "", value)

	plain := pairmap.NewMap()
	defer plain.Destroy()
	require.NoError(t, plain.Insert("tab", "a\tb"))
	require.NoError(t, plain.Insert("no", "no"))
	bs, err = yaml.Marshal(plain)
	require.NoError(t, err)
	reloaded := pairmap.NewMap()
	defer reloaded.Destroy()
	require.NoError(t, yaml.Unmarshal(bs, reloaded))
	require.Equal(t, plain.Entries(), reloaded.Entries())
}
