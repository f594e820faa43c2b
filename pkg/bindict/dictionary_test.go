package bindict_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tinytype/bindict/pkg/bindict"
	"github.com/tinytype/bindict/pkg/builder"
)

// fixtureImage builds the byte image for the small dictionary used
// throughout this package's end-to-end scenarios:
//
//	unigrams: a:200 hi:130 hello:120 there:140 how:150 are:80 you:200 your:100
//	ngrams:   [hello there]:20 [hello you]:25 [how are you]:80
//	          [you are there]:30 [are you there]:30
func fixtureImage(t *testing.T) []byte {
	t.Helper()

	unigrams := builder.NewUnigramSet()
	unigrams.Add("a", 200)
	unigrams.Add("hi", 130)
	unigrams.Add("hello", 120)
	unigrams.Add("there", 140)
	unigrams.Add("how", 150)
	unigrams.Add("are", 80)
	unigrams.Add("you", 200)
	unigrams.Add("your", 100)

	ngrams := builder.NewNgramSet()
	ngrams.Add([]string{"hello", "there"}, 20)
	ngrams.Add([]string{"hello", "you"}, 25)
	ngrams.Add([]string{"how", "are", "you"}, 80)
	ngrams.Add([]string{"you", "are", "there"}, 30)
	ngrams.Add([]string{"are", "you", "there"}, 30)

	buf, err := builder.Encode(unigrams, ngrams)
	assert.NoError(t, err)
	return buf
}

func fixtureDictionary(t *testing.T) *bindict.Dictionary {
	t.Helper()
	return bindict.FromBytes(fixtureImage(t))
}

func TestExists(t *testing.T) {
	dict := fixtureDictionary(t)

	assert.True(t, dict.Exists("hello"))
	assert.True(t, dict.Exists("a"))
	assert.False(t, dict.Exists("bonjour"))
	assert.False(t, dict.Exists("h"))
}

func TestPredictionsAfterHello(t *testing.T) {
	dict := fixtureDictionary(t)

	results := dict.Predictions([]string{"hello"}, 4)
	assert.Len(t, results, 2)

	words := make([]string, len(results))
	for i, r := range results {
		words[i] = r.Word
	}
	assert.ElementsMatch(t, []string{"there", "you"}, words)
	assert.NotContains(t, words, "blah")

	assert.Equal(t, "you", results[0].Word)
	assert.Equal(t, 25, results[0].Weight)
	assert.Equal(t, "there", results[1].Word)
	assert.Equal(t, 20, results[1].Weight)
}

func TestPredictionsAfterHowAre(t *testing.T) {
	dict := fixtureDictionary(t)

	results := dict.Predictions([]string{"how", "are"}, 4)
	assert.Equal(t, []bindict.WeightedWord{{Word: "you", Weight: 80}}, results)
}

func TestPredictionsEmptyContext(t *testing.T) {
	dict := fixtureDictionary(t)
	assert.Empty(t, dict.Predictions(nil, 4))
	assert.Empty(t, dict.Predictions([]string{}, 4))
}

func TestPredictionsZeroLimit(t *testing.T) {
	dict := fixtureDictionary(t)
	assert.Empty(t, dict.Predictions([]string{"hello"}, 0))
}

func TestPredictionsUnknownWordInContext(t *testing.T) {
	dict := fixtureDictionary(t)
	assert.Empty(t, dict.Predictions([]string{"nonexistent"}, 4))
}

func TestCorrectionsExactMatchEarlyExit(t *testing.T) {
	dict := fixtureDictionary(t)

	results := dict.Corrections("you", 100)
	assert.Equal(t, []bindict.WeightedWord{{Word: "you", Weight: 200}}, results)
}

func TestCorrectionsMisspelling(t *testing.T) {
	dict := fixtureDictionary(t)

	results := dict.Corrections("yuu", 100)
	assert.Len(t, results, 1)
	assert.Equal(t, "you", results[0].Word)
	for _, r := range results {
		assert.NotEqual(t, "yuu", r.Word)
	}
}

func TestCorrectionsZeroLimit(t *testing.T) {
	dict := fixtureDictionary(t)
	assert.Empty(t, dict.Corrections("xyz", 0))
}

func TestCorrectionsNoMatch(t *testing.T) {
	dict := fixtureDictionary(t)
	assert.Empty(t, dict.Corrections("zzzzzzzzzz", 100))
}

func TestUnloadedDictionaryAnswersEmpty(t *testing.T) {
	var dict *bindict.Dictionary
	assert.False(t, dict.IsLoaded())
	assert.False(t, dict.Exists("you"))
	assert.Empty(t, dict.Predictions([]string{"hello"}, 4))
	assert.Empty(t, dict.Corrections("you", 4))
}

func TestOpenMissingFile(t *testing.T) {
	dict, err := bindict.Open("/nonexistent/path/to/dictionary.bin")
	assert.Error(t, err)
	assert.Nil(t, dict)
}

func TestFromBytesNilAnswersEmpty(t *testing.T) {
	dict := bindict.FromBytes(nil)
	assert.True(t, dict.IsLoaded())
	assert.False(t, dict.Exists("you"))
	assert.Empty(t, dict.Predictions([]string{"hello"}, 4))
	assert.Empty(t, dict.Corrections("you", 4))
}

// Cache idempotence: identical queries twice yield identical results.
func TestQueriesAreIdempotent(t *testing.T) {
	dict := fixtureDictionary(t)

	first := dict.Predictions([]string{"hello"}, 4)
	second := dict.Predictions([]string{"hello"}, 4)
	assert.Equal(t, first, second)

	assert.Equal(t, dict.Exists("hello"), dict.Exists("hello"))
	assert.Equal(t, dict.Corrections("yuu", 100), dict.Corrections("yuu", 100))
}

// predictions output length <= k, and weights are monotonically
// non-increasing.
func TestPredictionsRespectsLimitAndOrdering(t *testing.T) {
	dict := fixtureDictionary(t)

	results := dict.Predictions([]string{"hello"}, 1)
	assert.Len(t, results, 1)

	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Weight, results[i].Weight)
	}
}
