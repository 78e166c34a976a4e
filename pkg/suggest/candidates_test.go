package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeletions(t *testing.T) {
	assert.Equal(t, []string{"at", "ct", "ca"}, Deletions("cat"))
	assert.Empty(t, Deletions(""))
}

func TestTranspositions(t *testing.T) {
	assert.Equal(t, []string{"act", "cta"}, Transpositions("cat"))
	assert.Empty(t, Transpositions("a"))
	assert.Empty(t, Transpositions(""))
}

func TestAlterations(t *testing.T) {
	alts := Alterations("ab")
	assert.Len(t, alts, 2*26)
	assert.Equal(t, "ab", alts[0])
	assert.Equal(t, "zb", alts[25])
	assert.Equal(t, "aa", alts[26])
	assert.Contains(t, alts, "ab")

	count := 0
	for _, a := range alts {
		if a == "ab" {
			count++
		}
	}
	// one no-op replacement per position
	assert.Equal(t, 2, count)
}

func TestInsertions(t *testing.T) {
	ins := Insertions("ab")
	assert.Len(t, ins, 3*26)
	assert.Equal(t, "aab", ins[0])
	assert.Equal(t, "zab", ins[25])
	assert.Equal(t, "aab", ins[26])
	assert.Equal(t, "abz", ins[len(ins)-1])

	assert.Len(t, Insertions(""), 26)
	assert.Equal(t, "a", Insertions("")[0])
}

func TestEditsCount(t *testing.T) {
	for _, w := range []string{"a", "ab", "speling", "zzzzzzzzzz"} {
		l := len(w)
		want := l + (l - 1) + 26*l + 26*(l+1)
		assert.Len(t, Edits(w), want, w)
	}
	assert.Len(t, Edits(""), 26)
}

func TestEditsDoNotMutateInput(t *testing.T) {
	w := "hello"
	_ = Edits(w)
	assert.Equal(t, "hello", w)
}

func TestEditsReachKnownTypos(t *testing.T) {
	cases := map[string]string{
		"speling": "spelling", // insertion
		"helo":    "hello",    // insertion
		"teh":     "the",      // transposition
		"cst":     "cat",      // alteration
		"catt":    "cat",      // deletion
	}
	for typo, fix := range cases {
		assert.Contains(t, Edits(typo), fix, typo)
	}
}
