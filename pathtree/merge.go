package pathtree

import (
	"github.com/aglyzov/go-pathtree/critbit/dict"
)

// Resolver combines two values found at the same path during a merge. The first argument
// always comes from the left-hand (receiver) tree.
type Resolver[V any] func(ours, theirs V) V

// Merging returns a new tree holding the paths of both trees. Values present on both sides
// are combined by the resolver. Neither input is changed; unchanged subtrees are shared.
func (t *Tree[V]) Merging(other *Tree[V], resolve Resolver[V]) *Tree[V] {
	var (
		a   = t.rootNode()
		b   = other.rootNode()
		res = &Tree[V]{}
		m   = merger[V]{owner: res.token(), resolve: resolve}
	)

	t.freeze()
	other.freeze()

	root := &node[V]{owner: m.owner}
	root.val, root.hasVal = m.value(a, b)
	root.children = m.children(a.children, b.children)

	res.root = root

	return res
}

// MergeAll folds the trees left to right starting from an empty tree:
//
//	New().Merging(trees[0], resolve).Merging(trees[1], resolve)...
func MergeAll[V any](trees []*Tree[V], resolve Resolver[V]) *Tree[V] {
	res := New[V]()

	for _, t := range trees {
		res = res.Merging(t, resolve)
	}

	return res
}

type merger[V any] struct {
	owner   *owner
	resolve Resolver[V]
}

func (m *merger[V]) value(a, b *node[V]) (V, bool) {
	switch {
	case a.hasVal && b.hasVal:
		return m.resolve(a.val, b.val), true
	case a.hasVal:
		return a.val, true
	default:
		return b.val, b.hasVal
	}
}

func (m *merger[V]) children(a, b *dict.Dict[*node[V]]) *dict.Dict[*node[V]] {
	if a.Empty() && b.Empty() {
		return nil
	}
	return a.Merge(b, m.merge)
}

// merge combines two nodes whose prefixes start with the same segment.
//
// Possible scenarios:
// ------------------
//
// 1) equal prefixes:
//
//	|.......a.......|
//	|.......b.......|
//
// 2) a is an ancestor of b:
//
//	|....a....|
//	|....b....|..tail..|
//
// 3) b is an ancestor of a:
//
//	|....a....|..tail..|
//	|....b....|
//
// 4) divergent:
//
//	|..common..|..a-tail..|
//	|..common..|..b-tail..|
func (m *merger[V]) merge(a, b *node[V]) *node[V] {
	common := commonPrefix(a.prefix, b.prefix)

	switch {
	case common == len(a.prefix) && common == len(b.prefix):
		n := &node[V]{owner: m.owner, prefix: a.prefix}
		n.val, n.hasVal = m.value(a, b)
		n.children = m.children(a.children, b.children)
		return n

	case common == len(a.prefix):
		n := &node[V]{owner: m.owner, prefix: a.prefix, val: a.val, hasVal: a.hasVal}
		n.children = m.children(a.children, single(suffixed(b, common)))
		return n

	case common == len(b.prefix):
		n := &node[V]{owner: m.owner, prefix: b.prefix, val: b.val, hasVal: b.hasVal}
		n.children = m.children(single(suffixed(a, common)), b.children)
		return n
	}

	n := &node[V]{owner: m.owner, prefix: a.prefix[:common:common]}
	n.setChild(suffixed(a, common))
	n.setChild(suffixed(b, common))
	return n
}

func single[V any](n *node[V]) *dict.Dict[*node[V]] {
	return dict.New(dict.Item[*node[V]]{Key: n.prefix[0], Val: n})
}

// KeepFirst is a Resolver preferring the left-hand value.
func KeepFirst[V any](ours, _ V) V {
	return ours
}

// KeepLast is a Resolver preferring the right-hand value.
func KeepLast[V any](_, theirs V) V {
	return theirs
}
