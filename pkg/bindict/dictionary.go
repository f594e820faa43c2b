package bindict

import "github.com/tinytype/bindict/pkg/edits"

// Dictionary is the public query façade: Exists, Predictions,
// Corrections, orchestrating the unigram and n-gram navigators, the
// edit-distance-1 generator, and weighted-result packaging over one
// immutable Image.
type Dictionary struct {
	image   *Image
	unigram *unigramTrie
	ngram   *ngramTrie
	loaded  bool
}

// Open reads the named file as a binary image and wraps it as a
// Dictionary. On failure the returned error is non-nil and the returned
// Dictionary is nil; callers that want an always-usable value can fall
// back to FromBytes(nil), which answers every query as empty/false.
func Open(path string) (*Dictionary, error) {
	img, err := LoadImage(path)
	if err != nil {
		return nil, err
	}
	return FromImage(img), nil
}

// FromBytes wraps an in-memory byte slice as a loaded Dictionary. The
// slice is not copied; the caller must not mutate it afterward.
func FromBytes(buf []byte) *Dictionary {
	return FromImage(NewImage(buf))
}

// FromImage wraps an already-constructed Image as a loaded Dictionary.
func FromImage(img *Image) *Dictionary {
	return &Dictionary{
		image:   img,
		unigram: newUnigramTrie(img),
		ngram:   newNgramTrie(img),
		loaded:  true,
	}
}

// IsLoaded reports whether the dictionary has a usable image. An
// unloaded Dictionary answers every query as if it were empty.
func (d *Dictionary) IsLoaded() bool {
	return d != nil && d.loaded
}

// Exists reports whether word is present in the dictionary with positive
// weight.
func (d *Dictionary) Exists(word string) bool {
	if !d.IsLoaded() {
		return false
	}
	_, ok := d.unigram.weighted(word)
	return ok
}

// Predictions returns up to maxK weighted continuations of context, the
// ordered list of preceding words, drawn from the n-gram trie. Results
// are sorted by decreasing weight, ties broken by word for determinism.
// If maxK is 0, or context fails to resolve, or the n-gram chain doesn't
// match, Predictions returns an empty slice, never an error.
func (d *Dictionary) Predictions(context []string, maxK int) []WeightedWord {
	if !d.IsLoaded() || maxK == 0 {
		return nil
	}

	addrs := make([]int, len(context))
	for i, w := range context {
		addr := d.unigram.find(w)
		if addr == notFound {
			return nil
		}
		addrs[i] = addr
	}

	node := d.ngram.find(addrs)
	if node == notFound {
		return nil
	}

	// Enumerate every child here, unlimited: ngram.children only sorts by
	// weight, so truncating to maxK before the word tie-break could keep a
	// lexicographically-later word over an earlier one of equal weight.
	// sortByWeightDesc below does the real weight-then-word sort and is
	// the only place maxK is applied.
	children := d.ngram.children(node, -1)
	results := make([]WeightedWord, 0, len(children))
	for _, child := range children {
		unigramLeaf := d.ngram.toUnigram(child.offset)
		word := d.unigram.reconstruct(unigramLeaf)
		results = append(results, WeightedWord{Word: word, Weight: child.weight})
	}
	return sortByWeightDesc(results, maxK)
}

// Corrections returns up to maxK single-edit-distance spelling
// corrections of word, each paired with its dictionary weight. If word
// itself is a known word with positive weight, Corrections returns it
// alone (an early exit, no variations are explored). Otherwise it
// generates every edit-distance-1 variation and keeps the ones that
// resolve to a known word, preserving generation order (deletes before
// transposes before replaces before inserts) and allowing duplicates.
// Edit distance 2 is a documented non-goal: if no distance-1 match
// exists, Corrections returns an empty slice.
func (d *Dictionary) Corrections(word string, maxK int) []WeightedWord {
	if !d.IsLoaded() || maxK == 0 {
		return nil
	}

	if ww, ok := d.unigram.weighted(word); ok {
		return []WeightedWord{ww}
	}

	variations := edits.Variations(word)
	results := make([]WeightedWord, 0, maxK)
	for _, v := range variations {
		ww, ok := d.unigram.weighted(v)
		if !ok {
			continue
		}
		results = append(results, ww)
		if maxK >= 0 && len(results) >= maxK {
			break
		}
	}
	return results
}
