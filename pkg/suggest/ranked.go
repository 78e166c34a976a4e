package suggest

import "fmt"

// RankedSet keeps only the words seen at the highest frequency so far.
// The zero value is not ready for use; call NewRankedSet.
type RankedSet struct {
	frequency int
	members   map[string]struct{}
}

// NewRankedSet returns an empty set whose floor frequency is 1.
func NewRankedSet() *RankedSet {
	return &RankedSet{
		frequency: 1,
		members:   make(map[string]struct{}),
	}
}

// Offer records word if freq matches the current best, or replaces all
// members if freq beats it. Lower frequencies are dropped.
func (r *RankedSet) Offer(word string, freq int) {
	switch {
	case freq > r.frequency:
		r.frequency = freq
		clear(r.members)
		r.members[word] = struct{}{}
	case freq == r.frequency:
		r.members[word] = struct{}{}
	}
}

// Empty reports whether no word has been retained.
func (r *RankedSet) Empty() bool {
	return len(r.members) == 0
}

// Len returns the number of words at the current best frequency.
func (r *RankedSet) Len() int {
	return len(r.members)
}

// Frequency returns the current best frequency.
func (r *RankedSet) Frequency() int {
	return r.frequency
}

// Best returns the alphabetically first member.
func (r *RankedSet) Best() (string, bool) {
	if r.Empty() {
		return "", false
	}
	first := true
	var best string
	for w := range r.members {
		if first || w < best {
			best = w
			first = false
		}
	}
	return best, true
}

// String summarizes the set for debug logs.
func (r *RankedSet) String() string {
	return fmt.Sprintf("%d words F:%d", len(r.members), r.frequency)
}
