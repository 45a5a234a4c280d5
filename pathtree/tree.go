package pathtree

import (
	"sync/atomic"
)

// Item represents a path-value pair
type Item[V any] struct {
	Path []string
	Val  V
}

// Tree is a path-compressed tree keyed by segment paths. The empty path addresses the root
// value.
//
// The zero value is an empty tree ready to use. A Tree is not safe for concurrent mutation;
// the persistent operations (Clone, Setting, Deleting, Merging, Traverse*) may be called
// concurrently by readers.
type Tree[V any] struct {
	owner atomic.Pointer[owner]
	root  *node[V] // empty prefix; nil for a zero tree
}

// New returns a new Tree optionally initialized with the given path-value pairs.
func New[V any](items ...Item[V]) *Tree[V] {
	t := &Tree[V]{root: &node[V]{}}
	t.owner.Store(&owner{})

	for _, item := range items {
		t.Set(item.Path, item.Val)
	}

	return t
}

// token returns the current owner token, creating one for a zero tree.
func (t *Tree[V]) token() *owner {
	if own := t.owner.Load(); own != nil {
		return own
	}
	t.owner.CompareAndSwap(nil, &owner{})
	return t.owner.Load()
}

// freeze gives up ownership of every existing node. Called whenever the nodes become
// reachable from another tree.
func (t *Tree[V]) freeze() {
	if t != nil {
		t.owner.Store(&owner{})
	}
}

func (t *Tree[V]) rootNode() *node[V] {
	if t == nil || t.root == nil {
		return &node[V]{}
	}
	return t.root
}

// writable returns n itself if the tree owns it, or an owned copy otherwise.
func (t *Tree[V]) writable(n *node[V]) *node[V] {
	own := t.token()
	if n.owner == own {
		return n
	}

	c := &node[V]{
		owner:  own,
		prefix: n.prefix,
		val:    n.val,
		hasVal: n.hasVal,
	}
	if !n.children.Empty() {
		c.children = n.children.Clone()
	}
	return c
}

func (t *Tree[V]) newNode(path []string, val V) *node[V] {
	return &node[V]{
		owner:  t.token(),
		prefix: clonePath(path),
		val:    val,
		hasVal: true,
	}
}

// view returns a new tree rooted at the given node. The receiver loses ownership of its
// nodes since the view shares them.
func (t *Tree[V]) view(root *node[V]) *Tree[V] {
	t.freeze()

	v := &Tree[V]{root: root}
	v.owner.Store(&owner{})

	return v
}

// Empty reports whether the tree holds no values at all.
func (t *Tree[V]) Empty() bool {
	root := t.rootNode()
	return !root.hasVal && root.children.Empty()
}

// Len returns the number of stored values, the root value included.
func (t *Tree[V]) Len() int {
	var size int

	t.Iter(nil, func([]string, V) bool {
		size++
		return true
	})

	return size
}

// Get returns a value associated with the given path.
func (t *Tree[V]) Get(path []string) (V, bool) {
	var (
		zero V
		n    = t.rootNode()
	)

	for len(path) != 0 {
		child, ok := n.children.Get(path[0])
		if !ok || !hasPrefix(path, child.prefix) {
			return zero, false // not found
		}
		n, path = child, path[len(child.prefix):]
	}

	return n.val, n.hasVal
}

// Set assigns a value to a path in place. Returns the previous value (if any).
func (t *Tree[V]) Set(path []string, val V) (old V, replaced bool) {
	n := t.writable(t.rootNode())
	t.root = n

	for {
		if len(path) == 0 {
			old, replaced = n.val, n.hasVal
			n.val, n.hasVal = val, true
			return
		}

		child, ok := n.children.Get(path[0])
		if !ok {
			// no branch yet - add a leaf
			n.setChild(t.newNode(path, val))
			return
		}

		common := commonPrefix(child.prefix, path)

		if common == len(child.prefix) {
			// the path runs through the child - descend
			next := t.writable(child)
			if next != child {
				n.setChild(next)
			}
			n, path = next, path[common:]
			continue
		}

		// the path ends inside the child's prefix or diverges from it:
		//
		//   child:  |....common....|...tail...|
		//   path:   |....common....|
		//   path:   |....common....|..rest..|
		//
		// the child keeps the tail under a new branch node holding the common run
		var (
			branch = &node[V]{owner: t.token(), prefix: child.prefix[:common:common]}
			tail   = t.writable(child)
		)

		tail.prefix = child.prefix[common:]
		branch.setChild(tail)

		if common == len(path) {
			branch.val, branch.hasVal = val, true
		} else {
			branch.setChild(t.newNode(path[common:], val))
		}

		n.setChild(branch)

		return
	}
}

// Delete removes the path from the tree in place and returns its value (if any).
func (t *Tree[V]) Delete(path []string) (old V, deleted bool) {
	root := t.rootNode()

	if len(path) == 0 {
		if !root.hasVal {
			return
		}
		var zero V
		root = t.writable(root)
		old, deleted = root.val, true
		root.val, root.hasVal = zero, false
		t.root = root
		return
	}

	child, ok := root.children.Get(path[0])
	if !ok {
		return
	}

	var res *node[V]

	res, old, deleted = t.remove(child, path)
	if !deleted {
		return
	}

	root = t.writable(root)
	if res == nil {
		root.children.Del(path[0])
	} else if res != child {
		root.setChild(res)
	}
	t.root = root

	return
}

// remove deletes the path (starting with the node's own prefix) from the subtree of n.
// It returns the node replacing n, nil when n has to go away entirely.
func (t *Tree[V]) remove(n *node[V], path []string) (*node[V], V, bool) {
	var zero V

	if !hasPrefix(path, n.prefix) {
		return n, zero, false
	}

	path = path[len(n.prefix):]

	if len(path) == 0 {
		// exact match - delete the node's own value
		if !n.hasVal {
			return n, zero, false
		}
		old := n.val

		switch n.children.Len() {
		case 0:
			return nil, old, true
		case 1:
			return t.collapse(n.prefix, n.children.Values()[0]), old, true
		}

		n = t.writable(n)
		n.val, n.hasVal = zero, false

		return n, old, true
	}

	key := path[0]

	child, ok := n.children.Get(key)
	if !ok {
		return n, zero, false
	}

	res, old, deleted := t.remove(child, path)
	if !deleted {
		return n, zero, false
	}

	if res != nil {
		if res != child {
			n = t.writable(n)
			n.setChild(res)
		}
		return n, old, true
	}

	if n.hasVal || n.children.Len() > 2 {
		n = t.writable(n)
		n.children.Del(key)
		return n, old, true
	}

	// no value and a single child left - merge with it
	other := n.onlyChildExcept(key)
	if other == nil {
		return nil, old, true
	}

	return t.collapse(n.prefix, other), old, true
}

// collapse merges a parent prefix into its sole child.
func (t *Tree[V]) collapse(prefix []string, child *node[V]) *node[V] {
	c := t.writable(child)
	c.prefix = concat(prefix, child.prefix)
	return c
}

// Clone returns a tree with the same content. Both trees share their nodes until either
// of them is changed.
func (t *Tree[V]) Clone() *Tree[V] {
	return t.view(t.rootNode())
}

// Setting returns a new tree with the value assigned to the path. The receiver is not changed.
func (t *Tree[V]) Setting(path []string, val V) *Tree[V] {
	c := t.Clone()
	c.Set(path, val)
	return c
}

// Deleting returns a new tree without the path. The receiver is not changed.
func (t *Tree[V]) Deleting(path []string) *Tree[V] {
	c := t.Clone()
	c.Delete(path)
	return c
}

// Iter calls a handler for every value stored at or below the given path. Values of a node
// come before its descendants and siblings come in ascending key order.
// It returns whether all the values were iterated.
// The handler can continue the process by returning true or abort with false.
func (t *Tree[V]) Iter(prefix []string, handler func(path []string, val V) bool) bool {
	n, tail, ok := t.seek(prefix)
	if !ok {
		return true
	}
	if len(tail) != 0 {
		prefix = concat(prefix, tail)
	}
	return walk(n, clonePath(prefix), handler)
}

func walk[V any](n *node[V], path []string, h func([]string, V) bool) bool {
	if n.hasVal && !h(path, n.val) {
		return false
	}
	for _, child := range n.children.Values() {
		if !walk(child, concat(path, child.prefix), h) {
			return false
		}
	}
	return true
}

// Items returns all the path-value pairs in iteration order.
func (t *Tree[V]) Items() []Item[V] {
	var items []Item[V]

	t.Iter(nil, func(path []string, val V) bool {
		items = append(items, Item[V]{path, val})
		return true
	})

	return items
}

// seek finds the node the path leads to. When the path ends in the middle of a node's
// prefix, the node is returned along with the rest of its prefix.
func (t *Tree[V]) seek(path []string) (n *node[V], tail []string, ok bool) {
	n = t.rootNode()

	for len(path) != 0 {
		child, found := n.children.Get(path[0])
		if !found {
			return nil, nil, false
		}

		common := commonPrefix(child.prefix, path)

		switch {
		case common == len(child.prefix):
			n, path = child, path[common:]
		case common == len(path):
			return child, child.prefix[common:], true
		default:
			return nil, nil, false
		}
	}

	return n, nil, true
}
