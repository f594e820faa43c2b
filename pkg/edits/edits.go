/*
Package edits generates Norvig-style edit-distance-1 variations of a word:
every string reachable from the input by exactly one delete, adjacent
transpose, single-character replace, or single-character insert, over a
configurable alphabet.

Variations are produced in a fixed order (deletes, transposes, replaces,
inserts) and are not deduplicated: the same output string may appear more
than once (for instance, a replace with the original character reproduces
the input itself). Callers that need the original word's presence
guaranteed, or that need a unique set, filter or dedupe downstream.
*/
package edits

// DefaultAlphabet is the 26-letter lowercase alphabet used when no
// alphabet is supplied.
const DefaultAlphabet = "abcdefghijklmnopqrstuvwxyz"

// split is one of the n+1 (prefix, suffix) partitions of a word such that
// prefix+suffix reconstructs it exactly.
type split struct {
	prefix, suffix string
}

// splits enumerates all (L, R) such that L+R == word, including (ε, word)
// and (word, ε), in left-to-right order.
func splits(word string) []split {
	out := make([]split, 0, len(word)+1)
	for i := 0; i <= len(word); i++ {
		out = append(out, split{prefix: word[:i], suffix: word[i:]})
	}
	return out
}

// Variations returns every edit-distance-1 transformation of word using
// DefaultAlphabet. See [VariationsWithAlphabet] to use a different one.
func Variations(word string) []string {
	return VariationsWithAlphabet(word, DefaultAlphabet)
}

// VariationsWithAlphabet returns every edit-distance-1 transformation of
// word, using the given alphabet for replace and insert edits, in the
// order deletes, transposes, replaces, inserts: precisely n deletes, n-1
// transposes, len(alphabet)*n replaces, and len(alphabet)*(n+1) inserts,
// for a word of length n.
func VariationsWithAlphabet(word string, alphabet string) []string {
	parts := splits(word)

	out := make([]string, 0, len(word)*(2+2*len(alphabet))+len(alphabet))
	out = appendDeletes(out, parts)
	out = appendTransposes(out, parts)
	out = appendReplaces(out, parts, alphabet)
	out = appendInserts(out, parts, alphabet)
	return out
}

// appendDeletes emits, for every split with a non-empty suffix, the word
// with the suffix's first character removed.
func appendDeletes(out []string, parts []split) []string {
	for _, p := range parts {
		if len(p.suffix) == 0 {
			continue
		}
		out = append(out, p.prefix+p.suffix[1:])
	}
	return out
}

// appendTransposes emits, for every split whose suffix has at least two
// characters, the word with the suffix's first two characters swapped.
func appendTransposes(out []string, parts []split) []string {
	for _, p := range parts {
		if len(p.suffix) < 2 {
			continue
		}
		out = append(out, p.prefix+string(p.suffix[1])+string(p.suffix[0])+p.suffix[2:])
	}
	return out
}

// appendReplaces emits, for every split with a non-empty suffix and every
// letter of alphabet, the word with the suffix's first character replaced
// by that letter. Replacing with the suffix's own head character
// reproduces the original word.
func appendReplaces(out []string, parts []split, alphabet string) []string {
	for _, p := range parts {
		if len(p.suffix) == 0 {
			continue
		}
		for _, c := range []byte(alphabet) {
			out = append(out, p.prefix+string(c)+p.suffix[1:])
		}
	}
	return out
}

// appendInserts emits, for every split (including the ε/word and word/ε
// endpoints) and every letter of alphabet, the word with that letter
// inserted between prefix and suffix.
func appendInserts(out []string, parts []split, alphabet string) []string {
	for _, p := range parts {
		for _, c := range []byte(alphabet) {
			out = append(out, p.prefix+string(c)+p.suffix)
		}
	}
	return out
}
