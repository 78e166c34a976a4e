package suggest

import (
	"math"
	"sort"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// ResultCache memoizes correction results keyed by the lowercased query.
// It is safe for concurrent use.
type ResultCache struct {
	results    *patricia.Trie
	accessTime map[string]int64
	clock      int64
	hits       int64
	misses     int64
	maxEntries int
	mu         sync.Mutex
}

// NewResultCache creates a cache holding at most maxEntries results.
func NewResultCache(maxEntries int) *ResultCache {
	if maxEntries < 1 {
		maxEntries = 1
	}
	return &ResultCache{
		results:    patricia.NewTrie(),
		accessTime: make(map[string]int64, maxEntries),
		maxEntries: maxEntries,
	}
}

// Get returns the cached result for query.
func (rc *ResultCache) Get(query string) (Result, bool) {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	item := rc.results.Get(patricia.Prefix(query))
	if item == nil {
		rc.misses++
		return Result{}, false
	}
	r, ok := item.(Result)
	if !ok {
		log.Errorf("Unknown item type: %T for query %s", item, query)
		rc.misses++
		return Result{}, false
	}
	rc.hits++
	rc.markAccessed(query)
	return r, true
}

// Put stores r under its input, evicting the least recently used entry
// when full.
func (rc *ResultCache) Put(r Result) {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	key := patricia.Prefix(r.Input)
	if _, exists := rc.accessTime[r.Input]; !exists && len(rc.accessTime) >= rc.maxEntries {
		rc.evictLRU()
	}
	rc.results.Set(key, r)
	rc.markAccessed(r.Input)
}

// Queries returns the cached queries starting with prefix, sorted.
// An empty prefix lists every cached query.
func (rc *ResultCache) Queries(prefix string) []string {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	var out []string
	visitor := func(p patricia.Prefix, _ patricia.Item) error {
		out = append(out, string(p))
		return nil
	}
	var err error
	if prefix == "" {
		err = rc.results.Visit(visitor)
	} else {
		err = rc.results.VisitSubtree(patricia.Prefix(prefix), visitor)
	}
	if err != nil {
		log.Errorf("Error visiting result cache: %v", err)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of cached results.
func (rc *ResultCache) Len() int {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return len(rc.accessTime)
}

// Reset drops every cached result.
func (rc *ResultCache) Reset() {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	rc.results = patricia.NewTrie()
	rc.accessTime = make(map[string]int64, rc.maxEntries)
	log.Debug("Result cache reset")
}

// Stats reports cache occupancy and hit counts.
func (rc *ResultCache) Stats() map[string]int {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	return map[string]int{
		"cacheEntries": len(rc.accessTime),
		"maxCache":     rc.maxEntries,
		"cacheHits":    int(rc.hits),
		"cacheMisses":  int(rc.misses),
	}
}

func (rc *ResultCache) markAccessed(query string) {
	rc.clock++
	rc.accessTime[query] = rc.clock
}

func (rc *ResultCache) evictLRU() {
	var oldest string
	var oldestTime int64 = math.MaxInt64

	for query, t := range rc.accessTime {
		if t < oldestTime {
			oldestTime = t
			oldest = query
		}
	}
	if oldestTime == math.MaxInt64 {
		return
	}
	rc.results.Delete(patricia.Prefix(oldest))
	delete(rc.accessTime, oldest)
	log.Debugf("Evicted query '%s' from result cache", oldest)
}
