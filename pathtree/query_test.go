package pathtree

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func usersTree() *Tree[string] {
	return New(
		Item[string]{p("users"), "All"},
		Item[string]{p("users", "john", "profile"), "P"},
		Item[string]{p("users", "john", "settings"), "S"},
		Item[string]{p("users", "jane", "photos", "1"), "Ph"},
	)
}

// prefixTree has first-level keys sharing leading characters
func prefixTree() *Tree[int] {
	return New(
		Item[int]{p(), 0},
		Item[int]{p("a"), 1},
		Item[int]{p("ab"), 2},
		Item[int]{p("ab", "x"), 3},
		Item[int]{p("abc", "d"), 4},
		Item[int]{p("abcd"), 5},
		Item[int]{p("abcde", "1"), 7},
		Item[int]{p("abcde", "2"), 8},
		Item[int]{p("b"), 6},
	)
}

func TestTraverse(t *testing.T) {
	t.Parallel()

	tree := usersTree()

	for _, tcase := range []*struct {
		Path  []string
		Found bool
		Exp   []Item[string]
	}{
		{nil, true, tree.Items()},
		{p("users"), true, []Item[string]{
			{nil, "All"},
			{p("jane", "photos", "1"), "Ph"},
			{p("john", "profile"), "P"},
			{p("john", "settings"), "S"},
		}},
		{p("users", "john"), true, []Item[string]{
			{p("profile"), "P"},
			{p("settings"), "S"},
		}},
		{p("users", "jane"), true, []Item[string]{{p("photos", "1"), "Ph"}}},
		{p("users", "jane", "photos"), true, []Item[string]{{p("1"), "Ph"}}},
		{p("users", "jane", "photos", "1"), true, []Item[string]{{nil, "Ph"}}},
		{p("users", "jane", "photos", "2"), false, nil},
		{p("users", "jane", "videos"), false, nil},
		{p("users", "john", "x"), false, nil},
		{p("users", "john", "profile", "x"), false, nil},
		{p("nobody"), false, nil},
	} {
		tcase := tcase

		t.Run(fmt.Sprintf("%q", tcase.Path), func(t *testing.T) {
			sub, ok := tree.Traverse(tcase.Path)

			require.Equal(t, tcase.Found, ok)
			if !ok {
				assert.Nil(t, sub)
				return
			}
			assert.Equal(t, tcase.Exp, sub.Items())
			requireCompressed(t, sub)
		})
	}
}

func TestTraverse_Isolation(t *testing.T) {
	t.Parallel()

	tree := usersTree()

	sub, ok := tree.Traverse(p("users", "john"))
	require.True(t, ok)

	inside, ok := tree.Traverse(p("users", "jane"))
	require.True(t, ok)

	sub.Set(p("profile"), "P2")
	sub.Delete(p("settings"))
	inside.Set(p("photos", "1"), "Ph2")

	tree.Set(p("users", "john", "settings"), "S2")

	assert.Equal(t, []Item[string]{
		{p("users"), "All"},
		{p("users", "jane", "photos", "1"), "Ph"},
		{p("users", "john", "profile"), "P"},
		{p("users", "john", "settings"), "S2"},
	}, tree.Items())

	assert.Equal(t, []Item[string]{{p("profile"), "P2"}}, sub.Items())
	assert.Equal(t, []Item[string]{{p("photos", "1"), "Ph2"}}, inside.Items())

	requireCompressed(t, tree)
	requireCompressed(t, sub)
}

func TestTraversePrefix(t *testing.T) {
	t.Parallel()

	tree := prefixTree()

	sub, ok := tree.TraversePrefix("ab")
	require.True(t, ok)

	exp := []Item[int]{
		{p(""), 2},
		{p("", "x"), 3},
		{p("c", "d"), 4},
		{p("cd"), 5},
		{p("cde", "1"), 7},
		{p("cde", "2"), 8},
	}
	if diff := cmp.Diff(exp, sub.Items()); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}
	requireCompressed(t, sub)

	// the empty prefix keeps everything, the root value included
	all, ok := tree.TraversePrefix("")
	require.True(t, ok)
	assert.Equal(t, tree.Items(), all.Items())

	_, ok = tree.TraversePrefix("zz")
	assert.False(t, ok)

	// the view is independent
	sub.Set(p("cd"), 50)
	val, _ := tree.Get(p("abcd"))
	assert.Equal(t, 5, val)
}

func TestTraverseChild(t *testing.T) {
	t.Parallel()

	tree := prefixTree()

	sub, ok := tree.TraverseChild('a')
	require.True(t, ok)
	assert.Equal(t, []Item[int]{
		{nil, 0},
		{p("a"), 1},
		{p("ab"), 2},
		{p("ab", "x"), 3},
		{p("abc", "d"), 4},
		{p("abcd"), 5},
		{p("abcde", "1"), 7},
		{p("abcde", "2"), 8},
	}, sub.Items())

	sub, ok = tree.TraverseChild('b')
	require.True(t, ok)
	assert.Equal(t, []Item[int]{{nil, 0}, {p("b"), 6}}, sub.Items())

	sub, ok = tree.TraverseChild('z')
	assert.False(t, ok)
	assert.Nil(t, sub)

	sub, ok = New(Item[int]{p("жук"), 1}, Item[int]{p("жаба"), 2}, Item[int]{p("з"), 3}).TraverseChild('ж')
	require.True(t, ok)
	assert.Equal(t, []int{2, 1}, sub.AllValues())
}

func TestValueQueries(t *testing.T) {
	t.Parallel()

	tree := prefixTree()

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 7, 8, 6}, tree.AllValues())
	assert.Equal(t, []int{1, 2, 5, 6}, tree.ValuesOneLevelDeep())
	assert.Equal(t, []string{"a", "ab", "abc", "abcd", "abcde", "b"}, tree.AllChildKeys())
	assert.Equal(t, []rune{'a', 'b'}, tree.AllChildCharacters())

	empty := New[int]()

	assert.Empty(t, empty.AllValues())
	assert.Empty(t, empty.ValuesOneLevelDeep())
	assert.Empty(t, empty.AllChildKeys())
	assert.Empty(t, empty.AllChildCharacters())
}

func TestAllChildCharacters(t *testing.T) {
	t.Parallel()

	tree := New(
		Item[int]{p("жук"), 1},
		Item[int]{p(""), 2},
		Item[int]{p("zeta"), 3},
		Item[int]{p("zoo", "x"), 4},
		Item[int]{p("жаба"), 5},
	)

	assert.Equal(t, []rune{'z', 'ж'}, tree.AllChildCharacters())
}

func TestValuesAlongPath(t *testing.T) {
	t.Parallel()

	tree := prefixTree()

	along := tree.ValuesAlongPath("abcde")

	// "abc" is compressed together with "d" and "abcde" holds no value
	require.Len(t, along, 3)

	for i, exp := range []struct {
		Key   string
		Val   int
		Items []Item[int]
	}{
		{"a", 1, nil},
		{"ab", 2, []Item[int]{{p("x"), 3}}},
		{"abcd", 5, nil},
	} {
		assert.Equal(t, exp.Key, along[i].Key)
		assert.Equal(t, exp.Val, along[i].Val)
		assert.Equal(t, exp.Items, along[i].Tree.Items())
	}

	along = tree.ValuesAlongPath("b")
	require.Len(t, along, 1)
	assert.Equal(t, 6, along[0].Val)

	assert.Empty(t, tree.ValuesAlongPath("x"))
	assert.Empty(t, tree.ValuesAlongPath(""))
	assert.Empty(t, New[int]().ValuesAlongPath("abc"))
}

func TestValuesAlongPath_EmptyKey(t *testing.T) {
	t.Parallel()

	tree := New(Item[int]{p(""), 1}, Item[int]{p("", "x"), 2}, Item[int]{p("k"), 3})

	along := tree.ValuesAlongPath("kk")
	require.Len(t, along, 2)

	assert.Equal(t, "", along[0].Key)
	assert.Equal(t, 1, along[0].Val)
	assert.Equal(t, []Item[int]{{p("x"), 2}}, along[0].Tree.Items())

	assert.Equal(t, "k", along[1].Key)
	assert.Equal(t, 3, along[1].Val)
}
