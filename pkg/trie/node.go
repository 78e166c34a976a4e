// Package trie implements the letter prefix tree backing the spelling dictionary.
package trie

// AlphabetSize is the number of letters a node can branch on.
const AlphabetSize = 26

// Node is a single letter position in the trie.
// A node with a non-zero frequency terminates a stored word.
type Node struct {
	frequency int
	children  [AlphabetSize]*Node
}

// Frequency returns how many times the word ending at this node was inserted.
func (n *Node) Frequency() int {
	return n.frequency
}

// child returns the child for letter index i, or nil.
func (n *Node) child(i int) *Node {
	return n.children[i]
}

// addChild creates the child at i if missing and reports whether it was created.
func (n *Node) addChild(i int) (*Node, bool) {
	if c := n.children[i]; c != nil {
		return c, false
	}
	c := &Node{}
	n.children[i] = c
	return c, true
}

// letterIndex maps an ASCII letter to 0..25, folding upper case.
// Anything else yields -1.
func letterIndex(b byte) int {
	switch {
	case b >= 'a' && b <= 'z':
		return int(b - 'a')
	case b >= 'A' && b <= 'Z':
		return int(b - 'A')
	}
	return -1
}

// equal compares two subtrees by letter path and frequency.
func (n *Node) equal(o *Node) bool {
	if n.frequency != o.frequency {
		return false
	}
	for i := 0; i < AlphabetSize; i++ {
		a, b := n.children[i], o.children[i]
		if (a == nil) != (b == nil) {
			return false
		}
		if a != nil && !a.equal(b) {
			return false
		}
	}
	return true
}
