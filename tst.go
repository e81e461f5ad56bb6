package tst

import (
	"io"
	"unsafe"
)

// Symbol - one unit of the key alphabet.
type Symbol = rune

// Key type.
type Key = []Symbol

// Callback - callback function that is passed in Each.
type Callback func(key Key)

// Tree - self-adjusting ternary search tree interface.
//
// A Tree is not safe for concurrent use: Search reorganizes the tree.
type Tree interface {
	Insert(key Key)
	Search(key Key) (found bool)
	Contains(key Key) (found bool)
	Destroy()
	Each(cb Callback)
	Dump(w io.Writer) error
	Size() int
	Nodes() int
}

// New - creates a new, empty ternary search tree.
func New() Tree {
	return newTst()
}

// NodeSize returns the size in bytes of a single tree node.
func NodeSize() uintptr {
	return unsafe.Sizeof(tstNode{})
}
