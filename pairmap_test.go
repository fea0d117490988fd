package pairmap_test

import (
	"errors"
	"fmt"
	"testing"
	"unsafe"

	"github.com/mashiike/pairmap"
	"github.com/motemen/go-testutil/dataloc"
	"github.com/stretchr/testify/require"
)

func TestMap__E2E(t *testing.T) {
	m := pairmap.NewMap()
	require.NoError(t, m.Insert("name", "XXIV"))
	value, ok := m.Get("name")
	require.True(t, ok)
	require.Equal(t, "XXIV", value)
	key, ok := m.GetKey("XXIV")
	require.True(t, ok)
	require.Equal(t, "name", key)
	m.Destroy()
	require.True(t, m.IsDestroyed())
}

func TestMap__Empty(t *testing.T) {
	for _, m := range []*pairmap.Map{pairmap.NewMap(), pairmap.NewMap(pairmap.WithIndex())} {
		require.True(t, m.IsEmpty())
		require.Equal(t, 0, m.Len())
		_, ok := m.Get("anything")
		require.False(t, ok)
		_, ok = m.GetKey("anything")
		require.False(t, ok)
		_, ok = m.Get("")
		require.False(t, ok)
		require.Nil(t, m.Entries())
	}
}

func TestMap__Lookup(t *testing.T) {
	cases := []struct {
		name      string
		entries   [][2]string
		getKey    string
		wantValue string
		wantFound bool
		getValue  string
		wantKey   string
		wantKeyOK bool
	}{
		{
			name:      "first match wins",
			entries:   [][2]string{{"a", "1"}, {"a", "2"}},
			getKey:    "a",
			wantValue: "1",
			wantFound: true,
			getValue:  "2",
			wantKey:   "a",
			wantKeyOK: true,
		},
		{
			name:      "first match with interleaved keys",
			entries:   [][2]string{{"x", "1"}, {"y", "2"}, {"x", "3"}},
			getKey:    "x",
			wantValue: "1",
			wantFound: true,
			getValue:  "3",
			wantKey:   "x",
			wantKeyOK: true,
		},
		{
			name:      "duplicate values resolve to first key",
			entries:   [][2]string{{"lang", "go"}, {"userName", "go"}},
			getKey:    "userName",
			wantValue: "go",
			wantFound: true,
			getValue:  "go",
			wantKey:   "lang",
			wantKeyOK: true,
		},
		{
			name:      "empty value is found",
			entries:   [][2]string{{"k", ""}},
			getKey:    "k",
			wantValue: "",
			wantFound: true,
			getValue:  "",
			wantKey:   "k",
			wantKeyOK: true,
		},
		{
			name:      "empty key is found",
			entries:   [][2]string{{"", "v"}},
			getKey:    "",
			wantValue: "v",
			wantFound: true,
			getValue:  "v",
			wantKey:   "",
			wantKeyOK: true,
		},
		{
			name:      "byte exact comparison",
			entries:   [][2]string{{"Name", "XXIV"}, {" name", "xxiv"}},
			getKey:    "name",
			wantFound: false,
			getValue:  "XXIV ",
			wantKeyOK: false,
		},
		{
			name:      "not found",
			entries:   [][2]string{{"a", "1"}},
			getKey:    "b",
			wantFound: false,
			getValue:  "2",
			wantKeyOK: false,
		},
	}
	for _, c := range cases {
		for _, indexed := range []bool{false, true} {
			t.Run(fmt.Sprintf("%s/indexed=%v", c.name, indexed), func(t *testing.T) {
				loc := dataloc.L(c.name)
				var opts []pairmap.Option
				if indexed {
					opts = append(opts, pairmap.WithIndex())
				}
				m := pairmap.NewMap(opts...)
				defer m.Destroy()
				for _, e := range c.entries {
					require.NoError(t, m.Insert(e[0], e[1]), loc)
				}
				require.Equal(t, len(c.entries), m.Len(), loc)
				value, ok := m.Get(c.getKey)
				require.Equal(t, c.wantFound, ok, loc)
				require.Equal(t, c.wantValue, value, loc)
				key, ok := m.GetKey(c.getValue)
				require.Equal(t, c.wantKeyOK, ok, loc)
				require.Equal(t, c.wantKey, key, loc)
			})
		}
	}
}

func TestMap__LengthInvariant(t *testing.T) {
	m := pairmap.NewMap()
	for i := 0; i < 100; i++ {
		require.NoError(t, m.Insert(fmt.Sprintf("key-%d", i%7), fmt.Sprintf("value-%d", i)))
		require.Equal(t, i+1, m.Len())
		require.Len(t, m.RawEntries(), i+1)
		require.False(t, m.IsEmpty())
	}
	pos := 0
	for k, v := range m.All() {
		require.Equal(t, fmt.Sprintf("key-%d", pos%7), k)
		require.Equal(t, fmt.Sprintf("value-%d", pos), v)
		pos++
	}
	require.Equal(t, 100, pos)
}

func TestMap__InsertCopiesStrings(t *testing.T) {
	buf := []byte("name")
	val := []byte("XXIV")
	m := pairmap.NewMap()
	require.NoError(t, m.Insert(unsafe.String(&buf[0], len(buf)), unsafe.String(&val[0], len(val))))
	copy(buf, "xxxx")
	copy(val, "yyyy")

	value, ok := m.Get("name")
	require.True(t, ok)
	require.Equal(t, "XXIV", value)
	key, ok := m.GetKey("XXIV")
	require.True(t, ok)
	require.Equal(t, "name", key)
}

func TestMap__EntriesIsCopy(t *testing.T) {
	m := pairmap.NewMap()
	require.NoError(t, m.Insert("a", "1"))
	entries := m.Entries()
	entries[0].Value = "changed"
	value, _ := m.Get("a")
	require.Equal(t, "1", value)
}

func TestMap__AllocationFailure(t *testing.T) {
	cases := []struct {
		name  string
		opts  []pairmap.Option
		fill  [][2]string
		key   string
		value string
	}{
		{
			name:  "max entries",
			opts:  []pairmap.Option{pairmap.WithMaxEntries(2)},
			fill:  [][2]string{{"a", "1"}, {"b", "2"}},
			key:   "c",
			value: "3",
		},
		{
			name:  "max bytes",
			opts:  []pairmap.Option{pairmap.WithMaxBytes(5)},
			fill:  [][2]string{{"ab", "12"}},
			key:   "c",
			value: "34",
		},
		{
			name:  "max bytes with index",
			opts:  []pairmap.Option{pairmap.WithMaxBytes(4), pairmap.WithIndex()},
			fill:  [][2]string{{"a", "1"}},
			key:   "new",
			value: "value",
		},
		{
			name:  "single entry larger than budget",
			opts:  []pairmap.Option{pairmap.WithMaxBytes(3)},
			key:   "long",
			value: "entry",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := pairmap.NewMap(c.opts...)
			for _, e := range c.fill {
				require.NoError(t, m.Insert(e[0], e[1]))
			}
			before := m.Entries()
			beforeBytes := m.Bytes()
			keyIndex, valueIndex := m.IndexLen()

			err := m.Insert(c.key, c.value)
			require.Error(t, err)
			require.True(t, errors.Is(err, pairmap.ErrAllocationFailure))

			require.Equal(t, len(c.fill), m.Len())
			require.Equal(t, before, m.Entries())
			require.Equal(t, beforeBytes, m.Bytes())
			k, v := m.IndexLen()
			require.Equal(t, keyIndex, k)
			require.Equal(t, valueIndex, v)
			_, ok := m.Get(c.key)
			require.False(t, ok)
			_, ok = m.GetKey(c.value)
			require.False(t, ok)
		})
	}
}

func TestMap__BudgetExactFit(t *testing.T) {
	m := pairmap.NewMap(pairmap.WithMaxBytes(4), pairmap.WithMaxEntries(2))
	require.NoError(t, m.Insert("ab", "12"))
	require.Equal(t, 4, m.Bytes())
	require.NoError(t, m.Insert("", ""))
	require.ErrorIs(t, m.Insert("", ""), pairmap.ErrAllocationFailure)
}

func TestMap__Destroy(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		m := pairmap.NewMap()
		m.Destroy()
		require.True(t, m.IsDestroyed())
		require.Nil(t, m.RawEntries())
	})
	t.Run("with entries", func(t *testing.T) {
		m := pairmap.NewMap(pairmap.WithIndex())
		require.NoError(t, m.Insert("name", "XXIV"))
		require.NoError(t, m.Insert("lang", "go"))
		m.Destroy()
		require.Nil(t, m.RawEntries())
		require.Equal(t, 0, m.Len())
		require.Equal(t, 0, m.Bytes())
		k, v := m.IndexLen()
		require.Zero(t, k)
		require.Zero(t, v)
		_, ok := m.Get("name")
		require.False(t, ok)
		_, ok = m.GetKey("go")
		require.False(t, ok)
	})
	t.Run("twice", func(t *testing.T) {
		m := pairmap.NewMap()
		m.Destroy()
		require.NotPanics(t, m.Destroy)
	})
	t.Run("insert after destroy", func(t *testing.T) {
		m := pairmap.NewMap()
		m.Destroy()
		require.ErrorIs(t, m.Insert("a", "1"), pairmap.ErrDestroyed)
		require.Equal(t, 0, m.Len())
	})
}
