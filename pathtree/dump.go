package pathtree

import (
	"fmt"
	"io"

	"github.com/xlab/treeprint"
)

// String renders the node structure of the tree, one compressed prefix per line.
func (t *Tree[V]) String() string {
	root := t.rootNode()

	label := "<root>"
	if root.hasVal {
		label = fmt.Sprintf("<root> = %v", root.val)
	}

	tree := treeprint.NewWithRoot(label)
	addBranches(tree, root)

	return tree.String()
}

func addBranches[V any](tree treeprint.Tree, n *node[V]) {
	for _, child := range n.children.Values() {
		label := fmt.Sprintf("%q", child.prefix)
		if child.hasVal {
			label = fmt.Sprintf("%q = %v", child.prefix, child.val)
		}

		if child.children.Empty() {
			tree.AddNode(label)
			continue
		}

		addBranches(tree.AddBranch(label), child)
	}
}

func (t *Tree[V]) DebugDump(w io.Writer) {
	fmt.Fprint(w, t.String())
}
