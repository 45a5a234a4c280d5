package pathtree

import (
	"github.com/aglyzov/go-pathtree/critbit/dict"
)

// owner is a token identifying the tree allowed to mutate a node in place.
type owner struct {
	_ int // non-zero size keeps every token at a distinct address
}

// node is a compressed run of segments. Its children are keyed by the first segment of
// their own prefix.
//
// A node is mutated in place only by the tree holding its owner token. A node referencing a
// children dict it did not create has a nil owner and is copied before any change.
type node[V any] struct {
	owner    *owner
	prefix   []string
	val      V
	hasVal   bool
	children *dict.Dict[*node[V]]
}

func (n *node[V]) setChild(child *node[V]) {
	if n.children == nil {
		n.children = &dict.Dict[*node[V]]{}
	}
	n.children.Set(child.prefix[0], child)
}

// onlyChildExcept returns the single child left after removing the given key.
func (n *node[V]) onlyChildExcept(key string) *node[V] {
	var other *node[V]

	n.children.Iter("", func(item dict.Item[*node[V]]) bool {
		if item.Key == key {
			return true
		}
		other = item.Val
		return false
	})

	return other
}

// suffixed returns a view of n cut after the first k segments of its prefix.
func suffixed[V any](n *node[V], k int) *node[V] {
	return &node[V]{
		prefix:   n.prefix[k:],
		val:      n.val,
		hasVal:   n.hasVal,
		children: n.children,
	}
}

// commonPrefix returns the number of leading segments a and b share.
func commonPrefix(a, b []string) int {
	max := len(a)
	if l := len(b); l < max {
		max = l
	}

	var i int
	for i = 0; i < max; i++ {
		if a[i] != b[i] {
			break
		}
	}
	return i
}

func hasPrefix(path, prefix []string) bool {
	return len(path) >= len(prefix) && commonPrefix(path, prefix) == len(prefix)
}

// concat two segment slices, returning a third new copy
func concat(a, b []string) []string {
	c := make([]string, len(a)+len(b))
	copy(c, a)
	copy(c[len(a):], b)
	return c
}

func clonePath(path []string) []string {
	if len(path) == 0 {
		return nil
	}
	return concat(nil, path)
}
