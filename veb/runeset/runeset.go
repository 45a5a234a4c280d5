// Package runeset implements a set of runes as a 3-level 256-ary bitmap trie.
//
// Each level consumes 8 bits of a rune (24 bits in total, enough for utf8.MaxRune). A node
// keeps a 256-bit bitmap of present children and a dense slice of the children themselves;
// the slice index of a child is the popcount of the bitmap bits below it.
package runeset

import (
	"unicode/utf8"

	"github.com/hideo55/go-popcount"
)

const (
	levels   = 3
	topShift = 8 * (levels - 1)
)

type Set struct {
	root *Node
	size int
}

type Node struct {
	bitmap   [4]uint64 // 256 bits representing 2**8 entries
	children []*Node
}

func New(runes ...rune) *Set {
	s := &Set{
		root: &Node{},
	}
	for _, r := range runes {
		s.Add(r)
	}
	return s
}

// Len returns the number of runes in the set.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return s.size
}

// Has reports whether the rune is in the set.
func (s *Set) Has(r rune) bool {
	if s == nil || !valid(r) {
		return false
	}

	var (
		val   = uint32(r)
		shift = topShift
		node  = s.root
	)

	for i := 0; ; i++ {
		idx := byte(val >> shift)
		ofs := idx >> 6
		bmp := node.bitmap[ofs]
		idx &= 0x3F // the lowest 6 bits (2**6 == 64)

		if (bmp>>idx)&0x01 == 0 {
			return false // underlying nodes don't have it
		}
		if i == levels-1 {
			break // this is a leaf
		}
		node = node.children[node.rank(ofs, idx)]
		shift -= 8
	}

	return true
}

// Add puts the rune into the set and reports whether it was not there yet.
// Runes outside of the Unicode range are ignored.
func (s *Set) Add(r rune) (add bool) {
	if !valid(r) {
		return false
	}

	var (
		val   = uint32(r)
		shift = topShift
		node  = s.root
	)

	for i := 0; ; i++ {
		idx := byte(val >> shift)
		ofs := idx >> 6
		bmp := node.bitmap[ofs]
		idx &= 0x3F // the lowest 6 bits (2**6 == 64)

		add = false
		if (bmp>>idx)&0x01 == 0 {
			node.bitmap[ofs] = bmp | (1 << idx)
			add = true
		}
		if i == levels-1 {
			if add {
				s.size++
			}
			break // this is a leaf
		}

		cnt := node.rank(ofs, idx)

		if add {
			// open a gap at cnt for the new child
			num := len(node.children)
			node.children = append(node.children, nil)
			copy(node.children[cnt+1:], node.children[cnt:num])

			next := &Node{}
			node.children[cnt] = next
			node = next
		} else {
			node = node.children[cnt]
		}
		shift -= 8
	}

	return
}

// Runes returns the members of the set in ascending order.
func (s *Set) Runes() []rune {
	runes := make([]rune, 0, s.Len())
	if s == nil {
		return runes
	}
	return s.root.collect(0, 0, runes)
}

// rank returns the number of set bits below the given one.
func (n *Node) rank(ofs, idx byte) uint64 {
	cnt := popcount.Count(n.bitmap[ofs] & ((1 << idx) - 1))
	for j := byte(0); j < ofs; j++ {
		cnt += popcount.Count(n.bitmap[j])
	}
	return cnt
}

func (n *Node) collect(level int, base uint32, runes []rune) []rune {
	child := 0

	for ofs := 0; ofs < len(n.bitmap); ofs++ {
		for bmp := n.bitmap[ofs]; bmp != 0; bmp &= bmp - 1 {
			var (
				low = bmp & -bmp
				idx = uint32(ofs)<<6 | uint32(popcount.Count(low-1))
				val = base<<8 | idx
			)

			if level == levels-1 {
				runes = append(runes, rune(val))
				continue
			}

			runes = n.children[child].collect(level+1, val, runes)
			child++
		}
	}

	return runes
}

func valid(r rune) bool {
	return r >= 0 && r <= utf8.MaxRune
}
