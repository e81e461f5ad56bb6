package tst

import (
	"fmt"
	"io"

	"github.com/xlab/treeprint"
)

// ##################################################
//  useful during development, debugging and testing
// ##################################################

// Dump writes the shape of the tree to w, one node per line. Every node is
// shown as its symbol and weight, followed by a dot when a key ends there.
// Edges are tagged with the child they follow: <, = or >.
func (t *tree) Dump(w io.Writer) error {
	_, err := io.WriteString(w, t.dumpString())
	return err
}

// dumpString is just a wrapper for dumpRec.
func (t *tree) dumpString() string {
	root := treeprint.NewWithRoot(fmt.Sprintf("size(%d), nodes(%d)", t.size, t.nodes))
	dumpRec(root, "", t.root)
	return root.String()
}

// dumpRec, rec-descent the tree.
func dumpRec(branch treeprint.Tree, edge string, n *tstNode) {
	if n == nil {
		return
	}

	var sub treeprint.Tree
	if edge == "" {
		sub = branch.AddBranch(n.label())
	} else {
		sub = branch.AddMetaBranch(edge, n.label())
	}
	dumpRec(sub, "<", n.lower)
	dumpRec(sub, "=", n.equal)
	dumpRec(sub, ">", n.higher)
}

// label returns the text shown for n by Dump.
func (n *tstNode) label() string {
	marker := ""
	if n.terminal {
		marker = " ·"
	}
	return fmt.Sprintf("%q %d%s", n.symbol, n.weight, marker)
}
