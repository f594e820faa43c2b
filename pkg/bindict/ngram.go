package bindict

import (
	"sort"
	"strconv"
	"strings"
)

// ngramTrie wraps an Image with a memoized walk: match a sequence of
// unigram leaf addresses against the n-gram trie, list a node's weighted
// children, and map an n-gram leaf to its referenced unigram leaf.
type ngramTrie struct {
	image      *Image
	headerBase int // offset of the n-gram header (recorded in the unigram header)
	cache      *lookupCache
}

func newNgramTrie(image *Image) *ngramTrie {
	var header int
	if !image.Empty() {
		header = image.readUint24(3)
	}
	return &ngramTrie{image: image, headerBase: header, cache: newLookupCache()}
}

// find walks from the n-gram header matching, at each step, the child
// whose word-reference field equals the current head address. It returns
// notFound if addrs is empty or any head fails to match.
func (t *ngramTrie) find(addrs []int) int {
	if len(addrs) == 0 {
		return notFound
	}
	key := ngramCacheKey(addrs)
	return t.findFrom(addrs, 0, t.headerBase+ngramHeaderSize, key)
}

func (t *ngramTrie) findFrom(addrs []int, prefixLen, offset int, cacheKey string) int {
	if offset, ok := t.cache.get(cacheKey); ok {
		return offset
	}

	if len(addrs) == 0 {
		if prefixLen > 0 {
			t.cache.put(cacheKey, offset)
			return offset
		}
		return notFound
	}

	head := addrs[0]
	numChildren := t.image.readByte(offset + 4)
	for i := 0; i < numChildren; i++ {
		childOffset := t.image.readUint24(offset + 5 + 3*i)
		// Compared as the full 3-byte word-reference field against the
		// full leaf address, not truncated to its low byte, so that two
		// unigram leaves sharing a low byte can never be confused here.
		childUnigramAddr := t.image.readUint24(childOffset)
		if childUnigramAddr == head {
			return t.findFrom(addrs[1:], prefixLen+1, childOffset, cacheKey)
		}
	}
	return notFound
}

// weight returns the weight byte of an n-gram node.
func (t *ngramTrie) weight(node int) int {
	return t.image.readByte(node + 3)
}

// toUnigram reads the 3-byte word-reference at the node's offset 0.
func (t *ngramTrie) toUnigram(node int) int {
	return t.image.readUint24(node)
}

// children returns up to limit children of node, sorted by decreasing
// weight, truncated to limit.
func (t *ngramTrie) children(node, limit int) []weightedOffset {
	numChildren := t.image.readByte(node + 4)
	out := make([]weightedOffset, 0, numChildren)
	for i := 0; i < numChildren; i++ {
		childOffset := t.image.readUint24(node + 5 + 3*i)
		out = append(out, weightedOffset{offset: childOffset, weight: t.image.readByte(childOffset + 3)})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].weight > out[j].weight })
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// ngramCacheKey canonicalizes a sequence of unigram addresses into a
// single cache key by joining their decimal forms.
func ngramCacheKey(addrs []int) string {
	var b strings.Builder
	for i, a := range addrs {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(strconv.Itoa(a))
	}
	return b.String()
}
