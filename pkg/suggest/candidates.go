package suggest

// alphabet used for alterations and insertions.
const alphabet = "abcdefghijklmnopqrstuvwxyz"

// Deletions removes each character of w in turn.
func Deletions(w string) []string {
	out := make([]string, 0, len(w))
	for i := 0; i < len(w); i++ {
		out = append(out, w[:i]+w[i+1:])
	}
	return out
}

// Transpositions swaps each adjacent pair of characters in w.
func Transpositions(w string) []string {
	if len(w) < 2 {
		return nil
	}
	out := make([]string, 0, len(w)-1)
	buf := []byte(w)
	for i := 0; i < len(buf)-1; i++ {
		buf[i], buf[i+1] = buf[i+1], buf[i]
		out = append(out, string(buf))
		buf[i], buf[i+1] = buf[i+1], buf[i]
	}
	return out
}

// Alterations replaces each character of w with every letter, the original
// letter included, so w itself shows up once per position.
func Alterations(w string) []string {
	out := make([]string, 0, len(w)*len(alphabet))
	buf := []byte(w)
	for i := 0; i < len(buf); i++ {
		orig := buf[i]
		for j := 0; j < len(alphabet); j++ {
			buf[i] = alphabet[j]
			out = append(out, string(buf))
		}
		buf[i] = orig
	}
	return out
}

// Insertions inserts every letter at each of the len(w)+1 gaps of w.
func Insertions(w string) []string {
	out := make([]string, 0, (len(w)+1)*len(alphabet))
	buf := make([]byte, len(w)+1)
	for i := 0; i <= len(w); i++ {
		copy(buf, w[:i])
		copy(buf[i+1:], w[i:])
		for j := 0; j < len(alphabet); j++ {
			buf[i] = alphabet[j]
			out = append(out, string(buf))
		}
	}
	return out
}

// Edits returns every string one edit away from w: deletions, then
// transpositions, alterations and insertions. Duplicates are kept.
func Edits(w string) []string {
	n := len(w)
	size := n + 26*n + 26*(n+1)
	if n > 1 {
		size += n - 1
	}
	out := make([]string, 0, size)
	out = append(out, Deletions(w)...)
	out = append(out, Transpositions(w)...)
	out = append(out, Alterations(w)...)
	out = append(out, Insertions(w)...)
	return out
}
