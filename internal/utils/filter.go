package utils

import "github.com/bastiangx/wordfix/pkg/trie"

// InputError describes why a word was refused before reaching the corrector
type InputError struct {
	Word   string
	Reason string
}

func (e *InputError) Error() string {
	return e.Reason + ": '" + e.Word + "'"
}

// ValidateInput checks a query word against the length limits and the
// alphabet. A zero maxLen disables the upper bound.
func ValidateInput(word string, minLen, maxLen int) error {
	switch {
	case word == "":
		return &InputError{Word: word, Reason: "missing word"}
	case len(word) < minLen:
		return &InputError{Word: word, Reason: "word too short"}
	case maxLen > 0 && len(word) > maxLen:
		return &InputError{Word: word, Reason: "word too long"}
	case !trie.IsWord(word):
		return &InputError{Word: word, Reason: "word must contain only letters"}
	}
	return nil
}
