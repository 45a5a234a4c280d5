package pathtree

import (
	"unicode/utf8"

	"github.com/aglyzov/go-pathtree/critbit/dict"
	"github.com/aglyzov/go-pathtree/veb/runeset"
)

// Along is a first-level entry whose key is a leading part of a target string.
type Along[V any] struct {
	Key  string
	Val  V
	Tree *Tree[V] // everything stored below the key
}

// Traverse returns a view of the subtree at the given path: every path with the given
// prefix, the prefix stripped. The view shares nodes with the receiver until either is
// changed.
func (t *Tree[V]) Traverse(path []string) (*Tree[V], bool) {
	n, tail, ok := t.seek(path)
	if !ok {
		return nil, false
	}

	if len(tail) == 0 {
		return t.view(&node[V]{val: n.val, hasVal: n.hasVal, children: n.children}), true
	}

	// the path ends inside the node - cut it at the boundary and re-root below
	root := &node[V]{}
	root.setChild(&node[V]{prefix: tail, val: n.val, hasVal: n.hasVal, children: n.children})

	return t.view(root), true
}

// TraversePrefix returns a view of the first-level entries whose keys start with the given
// string, the string stripped from the keys. The root value is not part of the view unless
// the prefix is empty.
func (t *Tree[V]) TraversePrefix(prefix string) (*Tree[V], bool) {
	if prefix == "" {
		return t.Clone(), true
	}

	sub, ok := t.rootNode().children.Traverse(prefix)
	if !ok {
		return nil, false
	}

	// re-key the nodes: their first segment lost the prefix too
	for _, item := range sub.Items() {
		n := item.Val
		sub.Set(item.Key, &node[V]{
			prefix:   concat([]string{item.Key}, n.prefix[1:]),
			val:      n.val,
			hasVal:   n.hasVal,
			children: n.children,
		})
	}

	return t.view(&node[V]{children: sub}), true
}

// TraverseChild returns a tree of the first-level entries whose keys start with the given
// character. The root value is preserved.
func (t *Tree[V]) TraverseChild(r rune) (*Tree[V], bool) {
	var (
		root = t.rootNode()
		sub  = dict.New[*node[V]]()
	)

	root.children.Iter(string(r), func(item dict.Item[*node[V]]) bool {
		sub.Set(item.Key, item.Val)
		return true
	})

	if sub.Empty() {
		return nil, false
	}

	return t.view(&node[V]{val: root.val, hasVal: root.hasVal, children: sub}), true
}

// AllValues returns every stored value, the root value included.
func (t *Tree[V]) AllValues() []V {
	var vals []V

	t.Iter(nil, func(_ []string, val V) bool {
		vals = append(vals, val)
		return true
	})

	return vals
}

// ValuesOneLevelDeep returns the values stored at single-segment paths.
func (t *Tree[V]) ValuesOneLevelDeep() []V {
	var vals []V

	for _, n := range t.rootNode().children.Values() {
		if len(n.prefix) == 1 && n.hasVal {
			vals = append(vals, n.val)
		}
	}

	return vals
}

// AllChildKeys returns the first segments of all the stored paths in ascending order.
func (t *Tree[V]) AllChildKeys() []string {
	return t.rootNode().children.Keys()
}

// AllChildCharacters returns the distinct leading characters of the first-level keys in
// ascending order. Empty keys have none.
func (t *Tree[V]) AllChildCharacters() []rune {
	set := runeset.New()

	for _, key := range t.AllChildKeys() {
		if r, size := utf8.DecodeRuneInString(key); size != 0 {
			set.Add(r)
		}
	}

	return set.Runes()
}

// ValuesAlongPath returns the single-segment paths whose segment is a leading part of the
// target string, shortest first. Only nodes holding exactly that one segment and a value
// qualify: a key compressed together with deeper segments is skipped even if its first
// segment matches.
func (t *Tree[V]) ValuesAlongPath(target string) []Along[V] {
	var found []Along[V]

	for _, along := range t.rootNode().children.ValuesAlongPath(target) {
		n := along.Val
		if len(n.prefix) != 1 || !n.hasVal {
			continue
		}

		found = append(found, Along[V]{
			Key:  along.Key,
			Val:  n.val,
			Tree: t.view(&node[V]{children: n.children}),
		})
	}

	return found
}
