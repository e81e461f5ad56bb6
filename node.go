package tst

// tstNode is a single position of the tree.
//
// lower and higher hold keys whose symbol at this position sorts before or
// after symbol, equal holds the remainder of keys that share it.
type tstNode struct {
	symbol   Symbol
	terminal bool   // some key ends here
	weight   uint64 // access counter, see Search
	lower    *tstNode
	equal    *tstNode
	higher   *tstNode
}

// newNode creates a node holding the passed in symbol.
func newNode(symbol Symbol) *tstNode {
	return &tstNode{symbol: symbol}
}

// Weight returns the access weight of the node, or 0 for a nil node.
func (n *tstNode) Weight() uint64 {
	if n == nil {
		return 0
	}
	return n.weight
}

// ownWeight returns the weight of the node without the weights of its
// lower and higher children. The subtraction wraps like the weights do.
func (n *tstNode) ownWeight() uint64 {
	return n.weight - n.lower.Weight() - n.higher.Weight()
}

// rotationScore returns 2*w(n) - w(sibling) - w(parent) where sibling is the
// child of n facing away from parent. ok is false if n is not the lower or
// higher child of parent.
func (n *tstNode) rotationScore(parent *tstNode) (score int64, ok bool) {
	if parent == nil {
		return 0, false
	}

	var sibling *tstNode
	switch n {
	case parent.lower:
		sibling = n.higher
	case parent.higher:
		sibling = n.lower
	default:
		return 0, false
	}
	return int64(2*n.weight - sibling.Weight() - parent.weight), true
}

// rotateUp promotes n above parent, where parentRef is the slot holding
// parent and n is one of parent's lower or higher children.
//
// Only the weights of the two relinked nodes are recomputed: the demoted
// parent keeps its own weight plus its new children, n keeps its own weight
// plus its new children.
func (n *tstNode) rotateUp(parentRef **tstNode) {
	parent := *parentRef
	alpha := n.ownWeight()
	parentAlpha := parent.ownWeight()

	if parent.lower == n {
		// rotate right
		parent.lower = n.higher
		n.higher = parent
	} else {
		// rotate left
		parent.higher = n.lower
		n.lower = parent
	}
	*parentRef = n

	parent.weight = parentAlpha + parent.lower.Weight() + parent.higher.Weight()
	n.weight = alpha + n.lower.Weight() + n.higher.Weight()
}

// free unlinks every node below n, children first.
func (n *tstNode) free() {
	if n == nil {
		return
	}
	n.lower.free()
	n.equal.free()
	n.higher.free()
	n.lower, n.equal, n.higher = nil, nil, nil
}
