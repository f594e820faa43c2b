package bindict

import (
	"fmt"
	"os"
)

// Image is an immutable byte sequence encoding a unigram trie and an
// n-gram trie, in the following format:
//
//	Unigram header (offset 0):
//	  0,1,2   number of unigram root children (3-byte big-endian)
//	  3,4,5   offset of the n-gram header
//	Unigram node (offset U):
//	  U+0     character
//	  U+1     weight (0 = non-terminal)
//	  U+2     child count C
//	  U+3..5  parent node offset
//	  U+6+3i  offset of i-th child, for i in [0,C)
//	N-gram header (at the recorded offset):
//	  0,1,2   number of n-gram root children
//	N-gram node (offset N):
//	  N+0..2  offset of a unigram leaf (the word reference)
//	  N+3     weight
//	  N+4     child count C
//	  N+5+3i  offset of i-th child, for i in [0,C)
//
// All multi-byte fields are big-endian, unsigned, 3 bytes wide unless
// stated otherwise. A zero-length Image is a valid, empty dictionary.
type Image struct {
	bytes []byte
}

const (
	unigramHeaderSize = 6
	// firstUnigramNode is the offset of the first unigram node, and also
	// the sentinel used when walking parent offsets upward: a parent
	// offset at or below this value terminates the ancestor chain.
	firstUnigramNode = unigramHeaderSize
	ngramHeaderSize  = 3
)

// NewImage wraps a byte slice as an immutable Image. The caller must not
// mutate buf afterward; Image keeps the slice, it does not copy it.
func NewImage(buf []byte) *Image {
	return &Image{bytes: buf}
}

// LoadImage reads the named file fully into memory and wraps it as an
// Image. Out-of-scope concerns (chunked or lazily-loaded sources) are left
// to callers; this is the single file-backed acquisition path.
func LoadImage(path string) (*Image, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("bindict: loading image from %q: %w", path, err)
	}
	return NewImage(buf), nil
}

// Len returns the number of bytes in the image.
func (img *Image) Len() int {
	if img == nil {
		return 0
	}
	return len(img.bytes)
}

// Empty reports whether the image is too short to hold the unigram
// header; such an image is answered as having no entries. An image that
// has a header but zero root children is not Empty.
func (img *Image) Empty() bool {
	return img.Len() < unigramHeaderSize
}
