// Package dictionary feeds word lists into the spelling trie.
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bastiangx/wordfix/pkg/trie"
	"github.com/charmbracelet/log"
)

var (
	// ErrEmptyDictionary is returned when a source yields no valid words.
	ErrEmptyDictionary = errors.New("dictionary contains no valid words")
	// ErrInvalidToken is returned by strict loads on the first non-alphabetic token.
	ErrInvalidToken = errors.New("invalid dictionary token")
)

// maxTokenSize bounds a single whitespace separated token.
const maxTokenSize = 1 << 20

// Stats describes a completed load.
type Stats struct {
	Tokens   int
	Accepted int
	Skipped  int
	Words    int
	Nodes    int
}

// Options controls which tokens are accepted.
// A zero MaxWordLen means no upper bound. Strict turns a rejected token into
// an error instead of skipping it.
type Options struct {
	MinWordLen int
	MaxWordLen int
	Strict     bool
}

func (o Options) accepts(token string) bool {
	if !trie.IsWord(token) {
		return false
	}
	if len(token) < o.MinWordLen {
		return false
	}
	return o.MaxWordLen <= 0 || len(token) <= o.MaxWordLen
}

// Load reads whitespace separated tokens from r and inserts every valid one,
// lowercased, into t. Each occurrence adds one to the word's frequency.
func Load(r io.Reader, t *trie.Trie) (Stats, error) {
	return LoadWithOptions(r, t, Options{})
}

// LoadWithOptions is Load with token length limits.
func LoadWithOptions(r io.Reader, t *trie.Trie, opts Options) (Stats, error) {
	var stats Stats
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxTokenSize)
	scanner.Split(bufio.ScanWords)

	for scanner.Scan() {
		token := scanner.Text()
		stats.Tokens++
		if !opts.accepts(token) {
			if opts.Strict {
				return stats, fmt.Errorf("token %q at position %d: %w", token, stats.Tokens, ErrInvalidToken)
			}
			stats.Skipped++
			continue
		}
		t.Insert(strings.ToLower(token))
		stats.Accepted++
	}
	stats.Words = t.WordCount()
	stats.Nodes = t.NodeCount()

	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("failed to read dictionary: %w", err)
	}
	log.Debugf("Loaded %d tokens: %d accepted, %d skipped, %d distinct words",
		stats.Tokens, stats.Accepted, stats.Skipped, stats.Words)
	return stats, nil
}

// LoadFile builds a new trie from the word list at path.
// ErrEmptyDictionary is returned together with the (empty) trie when the file
// holds no valid words, so callers may still choose to run with it.
func LoadFile(path string, opts Options) (*trie.Trie, Stats, error) {
	if err := ValidateFileFormat(path, FormatText); err != nil {
		if errors.Is(err, ErrEmptyDictionary) {
			return trie.New(), Stats{}, err
		}
		return nil, Stats{}, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("failed to open dictionary %s: %w", path, err)
	}
	defer file.Close()

	t := trie.New()
	stats, err := LoadWithOptions(file, t, opts)
	if err != nil {
		return nil, stats, fmt.Errorf("%s: %w", path, err)
	}
	if stats.Accepted == 0 {
		return t, stats, fmt.Errorf("%s: %w", path, ErrEmptyDictionary)
	}
	return t, stats, nil
}

// LoadWords builds a trie from in-memory tokens, skipping invalid ones.
func LoadWords(words ...string) *trie.Trie {
	t := trie.New()
	for _, w := range words {
		if trie.IsWord(w) {
			t.Insert(strings.ToLower(w))
		}
	}
	return t
}

// Export writes the canonical listing of t, one word per line.
func Export(w io.Writer, t *trie.Trie) error {
	bw := bufio.NewWriter(w)
	err := t.Walk(func(word string, _ int) error {
		if _, err := bw.WriteString(word); err != nil {
			return err
		}
		return bw.WriteByte('\n')
	})
	if err != nil {
		return fmt.Errorf("failed to export dictionary: %w", err)
	}
	return bw.Flush()
}
