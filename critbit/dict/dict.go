// Package dict implements a string-keyed crit-bit tree.
//
// Every key is an arbitrary byte string. The empty string and strings containing NUL bytes
// are ordinary keys: a byte is compared as a 9-bit value with the high bit set, and a missing
// byte (past the end of a shorter key) is compared as zero, so a key always sorts before its
// extensions.
package dict

import (
	"fmt"
	"io"
	"math/bits"
	"strings"
)

// Item is a key-value pair stored in a Dict.
type Item[V any] struct {
	Key string
	Val V
}

// ref holds either an Item or a node
type ref[V any] struct {
	Item[V]
	node *node[V]
}

type node[V any] struct {
	child [2]ref[V]
	// off is the offset of the differing byte
	off int
	// bit contains the single crit bit of the differing 9-bit byte
	bit uint16
}

// Dict is a crit-bit tree. The zero value is an empty Dict ready to use.
type Dict[V any] struct {
	size int
	root ref[V]
}

// critByte returns the 9-bit byte of a key at the given offset (0 past the end).
func critByte(key string, off int) uint16 {
	if off < len(key) {
		return 0x100 | uint16(key[off])
	}
	return 0
}

// dir calculates the direction for the given key
func (n *node[V]) dir(key string) byte {
	if critByte(key, n.off)&n.bit != 0 {
		return 1
	}
	return 0
}

// New returns a Dict initialized with the given items.
func New[V any](items ...Item[V]) *Dict[V] {
	t := &Dict[V]{}
	for _, item := range items {
		t.Set(item.Key, item.Val)
	}
	return t
}

// Len returns the number of keys in the tree.
func (t *Dict[V]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

func (t *Dict[V]) Empty() bool {
	return t == nil || t.size == 0
}

// Get returns a value associated with the key
func (t *Dict[V]) Get(key string) (val V, ok bool) {
	// test for empty tree
	if t.Empty() {
		return
	}
	// walk for best member
	p := &t.root
	for p.node != nil {
		p = &p.node.child[p.node.dir(key)]
	}
	// check for membership
	if p.Key != key {
		return
	}
	return p.Val, true
}

// Replace applies a func to a previous value of a key and stores the result.
// Returns the previous value and whether it existed.
func (t *Dict[V]) Replace(key string, replace func(old V, ok bool) V) (prev V, ok bool) {
	var zero V

	// test for empty tree
	if t.size == 0 {
		t.root = ref[V]{Item: Item[V]{key, replace(zero, false)}}
		t.size++
		return
	}
	// walk for best member
	p := &t.root
	for p.node != nil {
		p = &p.node.child[p.node.dir(key)]
	}
	if p.Key == key {
		// key exists - replace its value
		prev = p.Val
		p.Val = replace(prev, true)
		return prev, true
	}
	// find differing byte
	var off int
	var ch, keych uint16
	for ; ; off++ {
		ch, keych = critByte(p.Key, off), critByte(key, off)
		if ch != keych {
			break
		}
	}
	// find differing bit
	bit := uint16(1) << (bits.Len16(ch^keych) - 1)
	var ndir byte
	if ch&bit != 0 {
		ndir++
	}
	// insert new node
	nn := &node[V]{off: off, bit: bit}
	nn.child[1-ndir].Item = Item[V]{key, replace(zero, false)}

	// walk for best insertion node
	wp := &t.root
	for wp.node != nil {
		n := wp.node
		if n.off > off || n.off == off && n.bit < bit {
			break
		}
		wp = &n.child[n.dir(key)]
	}
	nn.child[ndir] = *wp
	*wp = ref[V]{node: nn}
	t.size++

	return
}

// Set associates a given value with a key. Returns the previous value (if any).
func (t *Dict[V]) Set(key string, val V) (V, bool) {
	return t.Replace(key, func(V, bool) V { return val })
}

// Del removes the key from the tree and returns its value (if any)
func (t *Dict[V]) Del(key string) (val V, ok bool) {
	// test for empty tree
	if t.Empty() {
		return
	}
	// walk for best member
	var dir byte
	var wp *ref[V]
	p := &t.root
	for p.node != nil {
		wp = p
		dir = p.node.dir(key)
		p = &p.node.child[dir]
	}
	// check for membership
	if p.Key != key {
		return
	}
	val, ok = p.Val, true
	// delete from the tree
	t.size--
	if wp == nil {
		t.root = ref[V]{}
		return
	}
	*wp = wp.node.child[1-dir]
	return
}

// Clone returns a copy of the tree structure. Values are copied as is.
func (t *Dict[V]) Clone() *Dict[V] {
	c := &Dict[V]{}
	if t.Empty() {
		return c
	}
	c.size = t.size
	c.root = cloneRef(t.root)
	return c
}

func cloneRef[V any](r ref[V]) ref[V] {
	if r.node == nil {
		return r
	}
	n := *r.node
	n.child[0] = cloneRef(n.child[0])
	n.child[1] = cloneRef(n.child[1])
	return ref[V]{node: &n}
}

// Merge returns a new Dict holding the union of both key sets. Values of common keys are
// combined as combine(ours, theirs).
func (t *Dict[V]) Merge(other *Dict[V], combine func(a, b V) V) *Dict[V] {
	res := t.Clone()
	other.Iter("", func(item Item[V]) bool {
		res.Replace(item.Key, func(old V, ok bool) V {
			if ok {
				return combine(old, item.Val)
			}
			return item.Val
		})
		return true
	})
	return res
}

// Traverse returns a new Dict of all the keys starting with the prefix, the prefix stripped.
func (t *Dict[V]) Traverse(prefix string) (*Dict[V], bool) {
	sub := &Dict[V]{}
	t.Iter(prefix, func(item Item[V]) bool {
		sub.Set(item.Key[len(prefix):], item.Val)
		return true
	})
	if sub.Empty() {
		return nil, false
	}
	return sub, true
}

// Along is a key found on the way to a target string.
type Along[V any] struct {
	Key string
	Val V
	// Rest holds the keys strictly extending Key, with Key stripped
	Rest *Dict[V]
}

// ValuesAlongPath returns every stored key that is a leading prefix of the target, shortest
// first.
func (t *Dict[V]) ValuesAlongPath(target string) []Along[V] {
	var found []Along[V]
	if t.Empty() {
		return found
	}
	for i := 0; i <= len(target); i++ {
		key := target[:i]
		val, ok := t.Get(key)
		if !ok {
			continue
		}
		rest := &Dict[V]{}
		t.Iter(key, func(item Item[V]) bool {
			if len(item.Key) > len(key) {
				rest.Set(item.Key[len(key):], item.Val)
			}
			return true
		})
		found = append(found, Along[V]{Key: key, Val: val, Rest: rest})
	}
	return found
}

// Iter calls a handler for all keys with a given prefix in ascending order.
// It returns whether all prefixed keys were iterated.
// The handler can continue the process by returning true or abort with false.
func (t *Dict[V]) Iter(prefix string, handler func(Item[V]) bool) bool {
	// test empty tree
	if t.Empty() {
		return true
	}
	// shortcut for empty prefix
	if len(prefix) == 0 {
		return iterate(&t.root, handler)
	}
	// walk for best member
	p, top := &t.root, &t.root
	for p.node != nil {
		newtop := p.node.off < len(prefix)
		p = &p.node.child[p.node.dir(prefix)]
		if newtop {
			top = p
		}
	}
	if !strings.HasPrefix(p.Key, prefix) {
		return true
	}
	return iterate(top, handler)
}

// iterate calls the key handler or traverses both node children unless aborted.
func iterate[V any](p *ref[V], h func(Item[V]) bool) bool {
	if p.node != nil {
		return iterate(&p.node.child[0], h) && iterate(&p.node.child[1], h)
	}
	return h(p.Item)
}

// Items returns all the items in ascending key order.
func (t *Dict[V]) Items() []Item[V] {
	items := make([]Item[V], 0, t.Len())

	// empty tree?
	if t.Empty() {
		return items
	}

	// walk the tree without function recursion
	toVisit := []*ref[V]{&t.root}

	for l := len(toVisit); l > 0; l = len(toVisit) {
		p := toVisit[l-1]
		toVisit = toVisit[:l-1]

		// leaf?
		if p.node == nil {
			items = append(items, p.Item)
		} else {
			// push the children, right first
			toVisit = append(toVisit, &p.node.child[1], &p.node.child[0])
		}
	}
	return items
}

// Keys returns all keys in ascending order.
func (t *Dict[V]) Keys() []string {
	keys := make([]string, 0, t.Len())
	for _, item := range t.Items() {
		keys = append(keys, item.Key)
	}
	return keys
}

// Values returns all values in ascending key order.
func (t *Dict[V]) Values() []V {
	vals := make([]V, 0, t.Len())
	for _, item := range t.Items() {
		vals = append(vals, item.Val)
	}
	return vals
}

func (t *Dict[V]) DebugDump(w io.Writer) {
	if t.Empty() {
		fmt.Fprintln(w, "T: EMPTY")
		return
	}
	debugDump(w, &t.root, "T:", 0, "")
}

func debugDump[V any](w io.Writer, r *ref[V], tag string, off int, indent string) {
	if r.node == nil {
		critbyte := "  [         ]"
		if c := critByte(r.Key, off); c != 0 {
			critbyte = fmt.Sprintf("%q [%09b]", rune(r.Key[off]), c)
		}
		fmt.Fprintf(w, "%s%s LEAF byte=%s key=%q val=%v\n", indent, tag, critbyte, r.Key, r.Val)
		return
	}
	fmt.Fprintf(w, "%s%s NODE off=%v mask=%09b\n", indent, tag, r.node.off, r.node.bit)

	debugDump(w, &r.node.child[0], "L:", r.node.off, indent+"  ")
	debugDump(w, &r.node.child[1], "R:", r.node.off, indent+"  ")
}
