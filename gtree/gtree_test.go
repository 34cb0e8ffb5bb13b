package gtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gostructs/ds/collection"
)

func TestInsertCreatesAncestors(t *testing.T) {
	tr := New[int]()
	require.NoError(t, tr.Insert("a/b/c", 42))
	require.NoError(t, tr.Insert("d/e/f/g", 24))

	assert.Equal(t, 7, tr.Len())
	assert.Equal(t, []string{"a", "d", "b", "e", "c", "f", "g"}, tr.Keys())
}

func TestInsertInvalidPath(t *testing.T) {
	tr := New[int]()
	assert.ErrorIs(t, tr.Insert("", 1), collection.ErrInvalidArgument)
	assert.ErrorIs(t, tr.Insert("///", 1), collection.ErrInvalidArgument)
	assert.True(t, tr.Empty())
}

func TestInsertOverwrites(t *testing.T) {
	tr := New[int]()
	require.NoError(t, tr.Insert("a/b", 1))
	require.NoError(t, tr.Insert("a/b", 2))

	assert.Equal(t, 2, tr.Len())
	m := tr.Find("a/b")
	require.True(t, m.Found)
	assert.Equal(t, 2, m.Data)
}

func TestDelimiterStyles(t *testing.T) {
	tr := New[string]()
	require.NoError(t, tr.Insert(`a\b`, "backslash"))
	require.NoError(t, tr.Insert("a|c", "pipe"))

	assert.True(t, tr.Contains("a/b"))
	m := tr.Find(`a|b`)
	require.True(t, m.Found)
	assert.Equal(t, "backslash", m.Data)

	m = tr.Find("a/c")
	require.True(t, m.Found)
	assert.Equal(t, "pipe", m.Data)
}

func TestFindAndContains(t *testing.T) {
	tr := New[int]()
	require.NoError(t, tr.Insert("x/y", 7))

	assert.True(t, tr.Contains("x"))
	assert.True(t, tr.Contains("x/y"))
	assert.False(t, tr.Contains("x/z"))
	assert.False(t, tr.Contains(""))

	// The interior node exists with a zero payload.
	m := tr.Find("x")
	require.True(t, m.Found)
	assert.Zero(t, m.Data)

	assert.False(t, tr.Find("nope").Found)
}

func TestRemoveSubtree(t *testing.T) {
	tr := New[int]()
	require.NoError(t, tr.Insert("a/b/c", 1))
	require.NoError(t, tr.Insert("a/b/d", 2))
	require.NoError(t, tr.Insert("a/e", 3))
	require.Equal(t, 5, tr.Len())

	_, err := tr.Remove("a/b")
	require.NoError(t, err)

	assert.Equal(t, 2, tr.Len())
	assert.False(t, tr.Contains("a/b"))
	assert.False(t, tr.Contains("a/b/c"))
	assert.True(t, tr.Contains("a/e"))

	_, err = tr.Remove("a/b")
	assert.ErrorIs(t, err, collection.ErrNotFound)
	_, err = tr.Remove("")
	assert.ErrorIs(t, err, collection.ErrNotFound)
}

func TestRemoveReturnsPayload(t *testing.T) {
	tr := New[int]()
	require.NoError(t, tr.Insert("a/b", 9))

	v, err := tr.Remove("a/b")
	require.NoError(t, err)
	assert.Equal(t, 9, v)
	assert.Equal(t, 1, tr.Len())
}

func TestBreadthOrder(t *testing.T) {
	tr := New[int]()
	require.NoError(t, tr.Insert("a/b/c", 42))
	require.NoError(t, tr.Insert("d/e/f/g", 24))

	var keys []string
	tr.Breadth(func(key string, _ int) bool {
		keys = append(keys, key)
		return false
	})
	assert.Equal(t, []string{"a", "d", "b", "e", "c", "f", "g"}, keys)
}

func TestBreadthShortCircuit(t *testing.T) {
	tr := New[int]()
	require.NoError(t, tr.Insert("a/b", 1))
	require.NoError(t, tr.Insert("c/d", 2))

	var keys []string
	tr.Breadth(func(key string, _ int) bool {
		keys = append(keys, key)
		return key == "c"
	})
	assert.Equal(t, []string{"a", "c"}, keys)
}

func TestBreadthSearch(t *testing.T) {
	tr := New[int]()
	require.NoError(t, tr.Insert("a/b/c", 42))

	m := tr.BreadthSearch("c")
	require.True(t, m.Found)
	assert.Equal(t, 42, m.Data)

	assert.False(t, tr.BreadthSearch("zzz").Found)
}

func TestHeight(t *testing.T) {
	tr := New[int]()
	assert.Zero(t, tr.Height())

	require.NoError(t, tr.Insert("a", 1))
	assert.Zero(t, tr.Height())

	require.NoError(t, tr.Insert("a/b/c", 1))
	assert.Equal(t, 2, tr.Height())

	require.NoError(t, tr.Insert("d/e/f/g", 1))
	assert.Equal(t, 3, tr.Height())
}

func TestClear(t *testing.T) {
	tr := New[int]()
	require.NoError(t, tr.Insert("a/b", 1))
	tr.Clear()

	assert.True(t, tr.Empty())
	assert.Zero(t, tr.Len())

	require.NoError(t, tr.Insert("x", 5))
	assert.True(t, tr.Contains("x"))
}

func TestString(t *testing.T) {
	tr := New[int]()
	require.NoError(t, tr.Insert("a/b/c", 42))
	require.NoError(t, tr.Insert("d/e/f/g", 24))

	assert.Equal(t, "GeneralTree[size=7, height=3] {a, d, b, e, c, f, g}", tr.String())
	assert.Equal(t, tr.String(), tr.JSON())
	assert.Equal(t, "GeneralTree[size=0, height=0]", New[int]().String())
}

func TestSplitPath(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"a/b/c", []string{"a", "b", "c"}},
		{`a\b\c`, []string{"a", "b", "c"}},
		{"a|b|c", []string{"a", "b", "c"}},
		{"/a//b/", []string{"a", "b"}},
		{`a/b\c|d`, []string{"a", "b", "c", "d"}},
		{"", nil},
		{"///", nil},
	}
	for _, tc := range tests {
		got := SplitPath(tc.in)
		if tc.want == nil {
			assert.Empty(t, got, "input %q", tc.in)
		} else {
			assert.Equal(t, tc.want, got, "input %q", tc.in)
		}
	}
}

func TestJoinPath(t *testing.T) {
	assert.Equal(t, "/a/b/c/", JoinPath("a", "b", "c"))
	assert.Equal(t, "/a/", JoinPath("a"))
	assert.Equal(t, "", JoinPath())
}
