/*
Package builder assembles a byte image conformant with the format
described in [github.com/tinytype/bindict/pkg/bindict], from a set of
weighted unigrams and weighted n-grams. Word and phrase sets are staged
in a patricia trie for deterministic, sorted-prefix iteration, then
serialized by a depth-first walk of a plain one-byte-per-character trie
— the byte layout requires exactly one child edge per character, which a
radix-compressed patricia trie does not represent directly.
*/
package builder

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tchap/go-patricia/v2/patricia"
)

const ngramKeySeparator = "\x00"

// UnigramSet stages (word, weight) pairs before encoding.
type UnigramSet struct {
	trie *patricia.Trie
}

// NewUnigramSet returns an empty staging set.
func NewUnigramSet() *UnigramSet {
	return &UnigramSet{trie: patricia.NewTrie()}
}

// Add stages word with the given weight (0..255). A later Add for the
// same word overwrites its weight.
func (s *UnigramSet) Add(word string, weight uint8) {
	s.trie.Set(patricia.Prefix(word), int(weight))
}

func (s *UnigramSet) entries() []unigramEntry {
	var out []unigramEntry
	_ = s.trie.Visit(func(prefix patricia.Prefix, item patricia.Item) error {
		out = append(out, unigramEntry{word: string(prefix), weight: item.(int)})
		return nil
	})
	return out
}

type unigramEntry struct {
	word   string
	weight int
}

// NgramSet stages (word sequence, weight) pairs before encoding. Every
// word referenced by a staged n-gram must also be staged in the
// UnigramSet passed to Encode, or Encode returns an error.
type NgramSet struct {
	trie *patricia.Trie
}

// NewNgramSet returns an empty staging set.
func NewNgramSet() *NgramSet {
	return &NgramSet{trie: patricia.NewTrie()}
}

// Add stages the phrase words with the given weight.
func (s *NgramSet) Add(words []string, weight uint8) {
	key := strings.Join(words, ngramKeySeparator)
	s.trie.Insert(patricia.Prefix(key), int(weight))
}

func (s *NgramSet) entries() []ngramEntry {
	var out []ngramEntry
	_ = s.trie.Visit(func(prefix patricia.Prefix, item patricia.Item) error {
		out = append(out, ngramEntry{
			words:  strings.Split(string(prefix), ngramKeySeparator),
			weight: item.(int),
		})
		return nil
	})
	return out
}

type ngramEntry struct {
	words  []string
	weight int
}

// Encode serializes unigrams and ngrams into a byte image conformant
// with the bindict format.
func Encode(unigrams *UnigramSet, ngrams *NgramSet) ([]byte, error) {
	if unigrams == nil {
		unigrams = NewUnigramSet()
	}
	if ngrams == nil {
		ngrams = NewNgramSet()
	}

	charRoot := buildCharTrie(unigrams.entries())

	enc := &encoder{leafOffsets: make(map[string]int)}
	enc.writeUnigrams(charRoot)

	wordRoot, err := buildWordTrie(ngrams.entries(), enc.leafOffsets)
	if err != nil {
		return nil, err
	}
	enc.writeNgrams(wordRoot)

	return enc.buf, nil
}

// charNode is one node of the intermediate one-byte-per-character trie
// used to encode the unigram section.
type charNode struct {
	char       byte
	weight     int
	isTerminal bool
	word       string
	children   map[byte]*charNode
}

func newCharNode(c byte) *charNode {
	return &charNode{char: c, children: make(map[byte]*charNode)}
}

func buildCharTrie(entries []unigramEntry) *charNode {
	root := newCharNode(0)
	for _, e := range entries {
		node := root
		for i := 0; i < len(e.word); i++ {
			c := e.word[i]
			child, ok := node.children[c]
			if !ok {
				child = newCharNode(c)
				node.children[c] = child
			}
			node = child
		}
		node.weight = e.weight
		node.isTerminal = true
		node.word = e.word
	}
	return root
}

func sortedCharChildren(children map[byte]*charNode) []*charNode {
	out := make([]*charNode, 0, len(children))
	for _, c := range children {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].char < out[j].char })
	return out
}

// wordNode is one node of the intermediate word-level trie used to
// encode the n-gram section: each edge is a whole word, not a character.
type wordNode struct {
	weight     int
	isTerminal bool
	children   map[string]*wordNode
}

func newWordNode() *wordNode {
	return &wordNode{children: make(map[string]*wordNode)}
}

func buildWordTrie(entries []ngramEntry, leafOffsets map[string]int) (*wordNode, error) {
	root := newWordNode()
	for _, e := range entries {
		node := root
		for _, w := range e.words {
			if _, ok := leafOffsets[w]; !ok {
				return nil, fmt.Errorf("builder: n-gram word %q is not in the unigram set", w)
			}
			child, ok := node.children[w]
			if !ok {
				child = newWordNode()
				node.children[w] = child
			}
			node = child
		}
		node.weight = e.weight
		node.isTerminal = true
	}
	return root, nil
}

func sortedWordChildren(children map[string]*wordNode) []string {
	out := make([]string, 0, len(children))
	for w := range children {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// encoder writes bytes at a mutable current position: each node reserves
// space for its own child pointer array before recursing into those
// children, then the recursion backfills each reserved slot with the
// child's actual offset once it is known.
type encoder struct {
	buf         []byte
	pos         int
	leafOffsets map[string]int // word -> offset of its unigram terminal node
}

func clampWeight(w int) int {
	if w > 255 {
		return 255
	}
	if w < 0 {
		return 0
	}
	return w
}

func (e *encoder) ensure(n int) {
	for len(e.buf) < n {
		e.buf = append(e.buf, 0)
	}
}

func (e *encoder) setByte(offset int, v int) {
	e.ensure(offset + 1)
	e.buf[offset] = byte(v)
}

func (e *encoder) setUint24(offset, v int) {
	e.ensure(offset + 3)
	e.buf[offset] = byte(v >> 16)
	e.buf[offset+1] = byte(v >> 8)
	e.buf[offset+2] = byte(v)
}

// writeUnigrams serializes the unigram header and trie starting at
// offset 6, recording each terminal word's leaf offset in leafOffsets.
func (e *encoder) writeUnigrams(root *charNode) {
	e.setUint24(0, len(root.children))
	e.pos = 6
	e.writeUnigramNode(root, 0)
}

func (e *encoder) writeUnigramNode(node *charNode, parentOffset int) int {
	offset := e.pos
	children := sortedCharChildren(node.children)

	e.setByte(offset, int(node.char))
	e.setByte(offset+1, clampWeight(node.weight))
	e.setByte(offset+2, len(children))
	e.setUint24(offset+3, parentOffset)

	if node.isTerminal {
		e.leafOffsets[node.word] = offset
	}

	offsetChildren := offset + 6
	e.pos = offsetChildren + 3*len(children)
	for i, child := range children {
		childOffset := e.writeUnigramNode(child, offset)
		e.setUint24(offsetChildren+3*i, childOffset)
	}
	return offset
}

// writeNgrams serializes the n-gram header and trie, and backfills the
// unigram header's n-gram-offset field.
func (e *encoder) writeNgrams(root *wordNode) {
	ngramHeaderOffset := e.pos
	e.setUint24(3, ngramHeaderOffset)
	e.setUint24(ngramHeaderOffset, len(root.children))
	e.pos = ngramHeaderOffset + 3
	e.writeNgramNode(root, "")
}

func (e *encoder) writeNgramNode(node *wordNode, word string) int {
	offset := e.pos
	children := sortedWordChildren(node.children)

	unigramTail := 0
	if word != "" {
		unigramTail = e.leafOffsets[word]
	}
	e.setUint24(offset, unigramTail)
	e.setByte(offset+3, clampWeight(node.weight))
	e.setByte(offset+4, len(children))

	offsetChildren := offset + 5
	e.pos = offsetChildren + 3*len(children)
	for i, w := range children {
		childOffset := e.writeNgramNode(node.children[w], w)
		e.setUint24(offsetChildren+3*i, childOffset)
	}
	return offset
}
