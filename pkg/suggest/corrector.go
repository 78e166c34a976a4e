package suggest

import (
	"strings"

	"github.com/bastiangx/wordfix/pkg/trie"
	"github.com/charmbracelet/log"
)

// Outcome tells how a query was resolved.
type Outcome int

const (
	// NoSuggestion means nothing within two edits is in the dictionary.
	NoSuggestion Outcome = iota
	// Exact means the query itself is a dictionary word.
	Exact
	// Corrected means a different dictionary word was picked.
	Corrected
)

func (o Outcome) String() string {
	switch o {
	case Exact:
		return "exact"
	case Corrected:
		return "corrected"
	default:
		return "none"
	}
}

// MaxDistance is the furthest edit distance searched.
const MaxDistance = 2

// Result is the answer to a single correction request.
type Result struct {
	Input     string
	Word      string
	Outcome   Outcome
	Distance  int
	Frequency int
}

// Found reports whether Word holds a usable answer.
func (r Result) Found() bool {
	return r.Outcome != NoSuggestion
}

// Corrector suggests dictionary words for misspelled input.
// Queries never modify the dictionary.
type Corrector struct {
	dict  *trie.Trie
	cache *ResultCache
}

// NewCorrector creates a corrector without result caching.
func NewCorrector(dict *trie.Trie) *Corrector {
	if dict == nil {
		dict = trie.New()
	}
	return &Corrector{dict: dict}
}

// NewCachedCorrector memoizes up to cacheSize results.
func NewCachedCorrector(dict *trie.Trie, cacheSize int) *Corrector {
	c := NewCorrector(dict)
	if cacheSize > 0 {
		c.cache = NewResultCache(cacheSize)
	}
	return c
}

// Dictionary returns the trie queries run against.
func (c *Corrector) Dictionary() *trie.Trie {
	return c.dict
}

// UseDictionary replaces the dictionary and drops cached results.
// It must not run concurrently with Suggest.
func (c *Corrector) UseDictionary(dict *trie.Trie) {
	if dict == nil {
		dict = trie.New()
	}
	c.dict = dict
	if c.cache != nil {
		c.cache.Reset()
	}
}

// SuggestSimilarWord returns the input itself when it is spelled correctly,
// else the best correction. The bool is false when nothing was found.
func (c *Corrector) SuggestSimilarWord(word string) (string, bool) {
	r := c.Suggest(word)
	return r.Word, r.Found()
}

// Suggest runs the escalating search: exact lookup, then every string one
// edit away, then every string two edits away. The first stage with a hit
// decides the result; among hits the most frequent wins, ties going to the
// alphabetically first word.
func (c *Corrector) Suggest(word string) Result {
	lower := strings.ToLower(word)
	if !trie.IsWord(lower) {
		log.Debugf("Query %q is not alphabetic", word)
		return Result{Input: lower}
	}

	if c.cache != nil {
		if r, ok := c.cache.Get(lower); ok {
			return r
		}
	}
	r := c.search(lower)
	if c.cache != nil {
		c.cache.Put(r)
	}
	return r
}

func (c *Corrector) search(word string) Result {
	if n, ok := c.dict.Find(word); ok {
		return Result{Input: word, Word: word, Outcome: Exact, Frequency: n.Frequency()}
	}

	d1 := Edits(word)
	if r, ok := c.best(word, d1, 1); ok {
		return r
	}

	// Expand every distance-1 string, dictionary word or not.
	found := NewRankedSet()
	for _, cand := range d1 {
		c.collect(Edits(cand), found)
	}
	if w, ok := found.Best(); ok {
		log.Debugf("Corrected %q to %q at distance 2 (%s)", word, w, found)
		return Result{Input: word, Word: w, Outcome: Corrected, Distance: 2, Frequency: found.Frequency()}
	}

	log.Debugf("No suggestion for %q", word)
	return Result{Input: word}
}

func (c *Corrector) best(word string, candidates []string, distance int) (Result, bool) {
	found := NewRankedSet()
	c.collect(candidates, found)
	w, ok := found.Best()
	if !ok {
		return Result{}, false
	}
	log.Debugf("Corrected %q to %q at distance %d (%s)", word, w, distance, found)
	return Result{Input: word, Word: w, Outcome: Corrected, Distance: distance, Frequency: found.Frequency()}, true
}

func (c *Corrector) collect(candidates []string, found *RankedSet) {
	for _, cand := range candidates {
		if n, ok := c.dict.Find(cand); ok {
			found.Offer(cand, n.Frequency())
		}
	}
}

// CachedQueries lists the memoized queries starting with prefix.
// It is nil when caching is off.
func (c *Corrector) CachedQueries(prefix string) []string {
	if c.cache == nil {
		return nil
	}
	return c.cache.Queries(strings.ToLower(prefix))
}

// Stats returns statistics about the dictionary and result cache.
func (c *Corrector) Stats() map[string]int {
	stats := map[string]int{
		"totalWords": c.dict.WordCount(),
		"totalNodes": c.dict.NodeCount(),
	}
	if c.cache != nil {
		for k, v := range c.cache.Stats() {
			stats[k] = v
		}
		stats["cache"] = 1
	} else {
		stats["cache"] = 0
	}
	return stats
}
