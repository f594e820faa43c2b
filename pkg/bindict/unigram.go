package bindict

import "sort"

// maxWordLength bounds ancestor reconstruction per the format contract;
// unlike a fixed-size C buffer, a slice here simply grows past it rather
// than overflowing, so the bound is documentation, not a cap.
const maxWordLength = 48

// unigramTrie wraps an Image with a memoized walk: locate a word's
// terminal node, list a node's weighted children, and reconstruct a word
// from a leaf by following parent back-pointers.
type unigramTrie struct {
	image *Image
	cache *lookupCache
}

func newUnigramTrie(image *Image) *unigramTrie {
	return &unigramTrie{image: image, cache: newLookupCache()}
}

// find walks from the unigram header following the child edge whose
// character equals the head of the remaining suffix, recursing on the
// remainder. It returns notFound if the word is empty or any step finds
// no matching child. The cache key is always the outer query string, even
// across recursive subproblems, so finds of different words never share a
// key; concurrent finds of the same word can only store the same offset,
// and the cache's own mutex serializes each get and put.
func (t *unigramTrie) find(word string) int {
	if word == "" || t.image.Empty() {
		return notFound
	}
	return t.findFrom(word, 0, firstUnigramNode, word)
}

func (t *unigramTrie) findFrom(suffix string, prefixLen, offset int, cacheKey string) int {
	if offset, ok := t.cache.get(cacheKey); ok {
		return offset
	}

	if len(suffix) == 0 {
		if prefixLen > 0 {
			t.cache.put(cacheKey, offset)
			return offset
		}
		return notFound
	}

	head := suffix[0]
	numChildren := t.image.readByte(offset + 2)
	for i := 0; i < numChildren; i++ {
		childOffset := t.image.readUint24(offset + 6 + 3*i)
		if byte(t.image.readByte(childOffset)) == head {
			return t.findFrom(suffix[1:], prefixLen+1, childOffset, cacheKey)
		}
	}
	return notFound
}

// weight returns the weight byte (0..255) of a unigram node.
func (t *unigramTrie) weight(node int) int {
	return t.image.readByte(node + 1)
}

// isTerminal reports whether a unigram node's weight is positive.
func (t *unigramTrie) isTerminal(node int) bool {
	return t.weight(node) > 0
}

// weighted resolves word and, if found with positive weight, returns its
// (word, weight) pair.
func (t *unigramTrie) weighted(word string) (WeightedWord, bool) {
	node := t.find(word)
	if node == notFound {
		return WeightedWord{}, false
	}
	w := t.weight(node)
	if w == 0 {
		return WeightedWord{}, false
	}
	return WeightedWord{Word: word, Weight: w}, true
}

// reconstruct follows parent offsets upward from leaf, collecting each
// node's character byte, stopping once the parent offset is at or below
// the first-node sentinel. Zero character bytes (the dummy root slot) are
// skipped. The result is root-to-leaf order.
func (t *unigramTrie) reconstruct(leaf int) string {
	ancestors := make([]int, 0, maxWordLength)
	ancestors = append(ancestors, leaf)

	parent := t.parentOf(leaf)
	for parent > firstUnigramNode {
		ancestors = append(ancestors, parent)
		parent = t.parentOf(parent)
	}

	chars := make([]byte, 0, len(ancestors))
	for i := len(ancestors) - 1; i >= 0; i-- {
		c := byte(t.image.readByte(ancestors[i]))
		if c == 0 {
			continue
		}
		chars = append(chars, c)
	}
	return string(chars)
}

func (t *unigramTrie) parentOf(node int) int {
	if node <= 0 {
		return 0
	}
	return t.image.readUint24(node + 3)
}

// children returns up to limit children of node, sorted by decreasing
// weight, truncated to limit.
func (t *unigramTrie) children(node, limit int) []weightedOffset {
	numChildren := t.image.readByte(node + 2)
	out := make([]weightedOffset, 0, numChildren)
	for i := 0; i < numChildren; i++ {
		childOffset := t.image.readUint24(node + 6 + 3*i)
		out = append(out, weightedOffset{offset: childOffset, weight: t.image.readByte(childOffset + 1)})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].weight > out[j].weight })
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// weightedOffset pairs a trie node's byte offset with its weight.
type weightedOffset struct {
	offset int
	weight int
}
