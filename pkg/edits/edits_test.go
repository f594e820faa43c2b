package edits_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tinytype/bindict/pkg/edits"
)

func TestVariationsCounts(t *testing.T) {
	cases := []string{"a", "hi", "hello", "there"}
	for _, word := range cases {
		n := len(word)
		want := n + (n - 1) + 26*n + 26*(n+1)
		got := edits.Variations(word)
		assert.Lenf(t, got, want, "word %q", word)
	}
}

func TestVariationsEmptyWord(t *testing.T) {
	got := edits.Variations("")
	// n=0: 0 deletes, -1->0 transposes, 0 replaces, 26 inserts.
	assert.Len(t, got, 26)
	for _, v := range got {
		assert.Len(t, v, 1)
	}
}

func TestVariationsContainsKnownEdits(t *testing.T) {
	got := edits.Variations("you")
	assert.Contains(t, got, "ou")   // delete 'y'
	assert.Contains(t, got, "oyu")  // transpose 'y','o'
	assert.Contains(t, got, "yuu")  // replace 'o' with 'u'
	assert.Contains(t, got, "yoku") // insert 'k'
}

func TestVariationsOrderIsDeletesTransposesReplacesInserts(t *testing.T) {
	word := "ab"
	got := edits.Variations(word)

	deletes := 2
	transposes := 1
	replaces := 26 * 2
	inserts := 26 * 3

	assert.Equal(t, "b", got[0])
	assert.Equal(t, "a", got[1])
	assert.Equal(t, "ba", got[deletes])

	firstReplace := deletes + transposes
	assert.Equal(t, "ab", got[firstReplace]) // replacing 'a' with 'a' reproduces the word

	firstInsert := deletes + transposes + replaces
	assert.Equal(t, "aab", got[firstInsert])
	assert.Len(t, got, deletes+transposes+replaces+inserts)
}

func TestVariationsWithAlphabetRestrictsReplaceAndInsert(t *testing.T) {
	got := edits.VariationsWithAlphabet("at", "xy")
	assert.Contains(t, got, "xt")
	assert.Contains(t, got, "yt")
	assert.NotContains(t, got, "bt")
	assert.Contains(t, got, "xat")
	assert.Contains(t, got, "yat")
}

func TestVariationsLengthStaysWithinOne(t *testing.T) {
	word := "cat"
	for _, v := range edits.Variations(word) {
		diff := len(v) - len(word)
		assert.True(t, diff >= -1 && diff <= 1, "variation %q has length %d, word has %d", v, len(v), len(word))
	}
}
