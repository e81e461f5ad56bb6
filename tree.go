package tst

// tree - ternary search tree type.
type tree struct {
	root  *tstNode
	size  int // distinct keys
	nodes int
}

// newTst returns a tst with 0 nodes.
func newTst() *tree {
	return &tree{root: nil, size: 0, nodes: 0}
}

// Insert inserts the passed in key into the tree.
// Inserting never changes weights and never rotates.
func (t *tree) Insert(key Key) {
	if len(key) == 0 {
		return
	}
	t.insertHelper(&t.root, key)
}

// insertHelper is a helper function for Insert.
func (t *tree) insertHelper(currentRef **tstNode, key Key) {
	if *currentRef == nil {
		*currentRef = newNode(key[0])
		t.nodes++
	}
	current := *currentRef

	switch {
	case key[0] < current.symbol:
		t.insertHelper(&current.lower, key)
	case key[0] > current.symbol:
		t.insertHelper(&current.higher, key)
	case len(key) == 1:
		if !current.terminal {
			current.terminal = true
			t.size++
		}
	default:
		t.insertHelper(&current.equal, key[1:])
	}
}

// Search reports whether the passed in key was inserted.
//
// Every node visited has its weight incremented, and a matched node may be
// rotated above its lower/higher parent when it is accessed more often than
// its parent and its outer child together. The result never depends on the
// rotations.
func (t *tree) Search(key Key) bool {
	if len(key) == 0 {
		return false
	}
	return t.searchHelper(&t.root, nil, key)
}

// searchHelper is a helper function for Search. parentRef is the slot
// holding the node whose lower or higher child is *currentRef, or nil when
// *currentRef starts a new key position.
func (t *tree) searchHelper(currentRef, parentRef **tstNode, key Key) bool {
	current := *currentRef
	if current == nil {
		return false
	}

	current.weight++
	if key[0] < current.symbol {
		return t.searchHelper(&current.lower, currentRef, key)
	}
	if key[0] > current.symbol {
		return t.searchHelper(&current.higher, currentRef, key)
	}

	var found bool
	if len(key) > 1 {
		found = t.searchHelper(&current.equal, nil, key[1:])
	} else {
		found = current.terminal
	}

	if parentRef != nil {
		if score, ok := current.rotationScore(*parentRef); ok && score > 0 {
			current.rotateUp(parentRef)
		}
	}
	return found
}

// Contains reports whether the passed in key was inserted without touching
// weights or the shape of the tree.
func (t *tree) Contains(key Key) bool {
	if len(key) == 0 {
		return false
	}

	current := t.root
	for current != nil {
		switch {
		case key[0] < current.symbol:
			current = current.lower
		case key[0] > current.symbol:
			current = current.higher
		case len(key) == 1:
			return current.terminal
		default:
			current = current.equal
			key = key[1:]
		}
	}
	return false
}

// Destroy removes every node from the tree. The tree can be reused.
func (t *tree) Destroy() {
	t.size = 0
	t.nodes = 0
	t.root.free()
	t.root = nil
}

// Size returns the number of distinct keys in the tree.
func (t *tree) Size() int {
	return t.size
}

// Nodes returns the number of nodes in the tree.
func (t *tree) Nodes() int {
	return t.nodes
}

// Each iterate the whole tree with the lexicographical order,
// and will call the given callback for each key.
func (t *tree) Each(callback Callback) {
	t.eachHelper(t.root, make(Key, 0, 16), callback)
}

// eachHelper is a helper function of Each. prefix holds the symbols
// matched above current.
func (t *tree) eachHelper(current *tstNode, prefix Key, callback Callback) {
	if current == nil {
		return
	}

	t.eachHelper(current.lower, prefix, callback)

	prefix = append(prefix, current.symbol)
	if current.terminal {
		key := make(Key, len(prefix))
		copy(key, prefix)
		callback(key)
	}
	t.eachHelper(current.equal, prefix, callback)

	t.eachHelper(current.higher, prefix[:len(prefix)-1], callback)
}
