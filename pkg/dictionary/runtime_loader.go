package dictionary

import (
	"fmt"
	"sync"
	"time"

	"github.com/bastiangx/wordfix/pkg/trie"
	"github.com/charmbracelet/log"
)

// DictionaryUser is anything that queries against a swappable trie.
type DictionaryUser interface {
	UseDictionary(dict *trie.Trie)
}

// RuntimeLoader rebuilds the dictionary from its source file on demand and
// hands the fresh trie to its user.
type RuntimeLoader struct {
	path     string
	opts     Options
	user     DictionaryUser
	last     Stats
	loadedAt time.Time
	mu       sync.Mutex
}

// NewRuntimeLoader creates a loader for the word list at path.
func NewRuntimeLoader(path string, opts Options, user DictionaryUser) *RuntimeLoader {
	return &RuntimeLoader{
		path: path,
		opts: opts,
		user: user,
	}
}

// Path returns the source file.
func (rl *RuntimeLoader) Path() string {
	return rl.path
}

// Reload reads the source again. On failure the previous dictionary stays in
// place; an empty word list is treated as a failure.
func (rl *RuntimeLoader) Reload() (Stats, error) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if rl.path == "" {
		return rl.last, fmt.Errorf("no dictionary path configured")
	}

	start := time.Now()
	t, stats, err := LoadFile(rl.path, rl.opts)
	if err != nil {
		log.Warnf("Failed to reload dictionary %s: %v", rl.path, err)
		return rl.last, err
	}

	rl.user.UseDictionary(t)
	rl.last = stats
	rl.loadedAt = time.Now()
	log.Debugf("Reloaded dictionary %s in %v: %d words, %d nodes",
		rl.path, time.Since(start), stats.Words, stats.Nodes)
	return stats, nil
}

// LastStats returns the statistics of the last successful load.
func (rl *RuntimeLoader) LastStats() (Stats, time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return rl.last, rl.loadedAt
}
