// Package suggest is the core, generating edit candidates around a misspelled word and ranking the dictionary hits among them.
package suggest

import "github.com/bastiangx/wordfix/pkg/trie"

// ICorrector defines the interface for spelling correction engines
type ICorrector interface {
	// Suggest returns the outcome of correcting a single word
	Suggest(word string) Result

	// SuggestSimilarWord returns the best word, or false when none exists
	SuggestSimilarWord(word string) (string, bool)

	// UseDictionary swaps the dictionary queries run against
	UseDictionary(dict *trie.Trie)

	// CachedQueries lists memoized queries by prefix, nil without a cache
	CachedQueries(prefix string) []string

	// Stats returns statistics about the loaded dictionary and cache
	Stats() map[string]int
}
