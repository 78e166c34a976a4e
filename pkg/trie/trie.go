package trie

import (
	"encoding/binary"
	"hash/fnv"
	"strings"

	"github.com/charmbracelet/log"
)

// Trie is a 26-ary prefix tree storing a frequency per completed word.
// It is not safe for concurrent mutation; concurrent reads of a trie
// that is no longer being written to are fine.
type Trie struct {
	root      *Node
	wordCount int
	nodeCount int
}

// New returns an empty trie holding only its root.
func New() *Trie {
	return &Trie{
		root:      &Node{},
		nodeCount: 1,
	}
}

// Insert adds word to the trie, or bumps its frequency if already present.
// Upper case letters are folded. Words that are empty or contain anything
// other than ASCII letters are rejected and leave the trie untouched.
func (t *Trie) Insert(word string) bool {
	if !IsWord(word) {
		log.Debugf("Rejected dictionary word %q", word)
		return false
	}

	node := t.root
	for i := 0; i < len(word); i++ {
		var created bool
		node, created = node.addChild(letterIndex(word[i]))
		if created {
			t.nodeCount++
		}
	}
	if node.frequency == 0 {
		t.wordCount++
	}
	node.frequency++
	return true
}

// Find returns the node terminating word if word was inserted at least once.
// Prefixes of stored words that were never inserted themselves are absent.
func (t *Trie) Find(word string) (*Node, bool) {
	if len(word) == 0 {
		return nil, false
	}
	node := t.root
	for i := 0; i < len(word); i++ {
		idx := letterIndex(word[i])
		if idx < 0 {
			return nil, false
		}
		node = node.child(idx)
		if node == nil {
			return nil, false
		}
	}
	if node.frequency == 0 {
		return nil, false
	}
	return node, true
}

// Frequency returns the stored frequency of word, 0 if absent.
func (t *Trie) Frequency(word string) int {
	if n, ok := t.Find(word); ok {
		return n.frequency
	}
	return 0
}

// WordCount returns the number of distinct words stored.
func (t *Trie) WordCount() int {
	return t.wordCount
}

// NodeCount returns the number of nodes, root included.
func (t *Trie) NodeCount() int {
	return t.nodeCount
}

// Walk visits every stored word in lexicographic order.
// Returning an error from fn stops the walk and returns that error.
func (t *Trie) Walk(fn func(word string, freq int) error) error {
	buf := make([]byte, 0, 32)
	return walk(t.root, buf, fn)
}

func walk(n *Node, path []byte, fn func(string, int) error) error {
	if n.frequency > 0 {
		if err := fn(string(path), n.frequency); err != nil {
			return err
		}
	}
	for i, c := range n.children {
		if c == nil {
			continue
		}
		if err := walk(c, append(path, byte('a'+i)), fn); err != nil {
			return err
		}
	}
	return nil
}

// Words returns every stored word once, sorted.
func (t *Trie) Words() []string {
	words := make([]string, 0, t.wordCount)
	_ = t.Walk(func(word string, _ int) error {
		words = append(words, word)
		return nil
	})
	return words
}

// String renders one word per line in lexicographic order.
func (t *Trie) String() string {
	var sb strings.Builder
	_ = t.Walk(func(word string, _ int) error {
		sb.WriteString(word)
		sb.WriteByte('\n')
		return nil
	})
	return sb.String()
}

// Equal reports whether both tries hold the same words with the same
// frequencies. Insertion order does not matter.
func (t *Trie) Equal(o *Trie) bool {
	if t == nil || o == nil {
		return t == o
	}
	if t.wordCount != o.wordCount || t.nodeCount != o.nodeCount {
		return false
	}
	return t.root.equal(o.root)
}

// Hash is consistent with Equal.
func (t *Trie) Hash() uint64 {
	h := fnv.New64a()
	var freq [8]byte
	_ = t.Walk(func(word string, f int) error {
		h.Write([]byte(word))
		binary.LittleEndian.PutUint64(freq[:], uint64(f))
		h.Write(freq[:])
		return nil
	})
	return h.Sum64()
}

// IsWord reports whether word is one or more ASCII letters, the only
// strings a trie can hold.
func IsWord(word string) bool {
	if len(word) == 0 {
		return false
	}
	for i := 0; i < len(word); i++ {
		if letterIndex(word[i]) < 0 {
			return false
		}
	}
	return true
}
