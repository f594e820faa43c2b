package bindict

import (
	"testing"

	"github.com/tinytype/bindict/pkg/builder"
)

func buildFixtureTries(t *testing.T) (*unigramTrie, *ngramTrie) {
	t.Helper()

	unigrams := builder.NewUnigramSet()
	unigrams.Add("hello", 120)
	unigrams.Add("there", 140)
	unigrams.Add("you", 200)
	unigrams.Add("how", 150)
	unigrams.Add("are", 80)

	ngrams := builder.NewNgramSet()
	ngrams.Add([]string{"hello", "there"}, 20)
	ngrams.Add([]string{"hello", "you"}, 25)
	ngrams.Add([]string{"how", "are", "you"}, 80)

	buf, err := builder.Encode(unigrams, ngrams)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	img := NewImage(buf)
	return newUnigramTrie(img), newNgramTrie(img)
}

func TestNgramFindAndChildren(t *testing.T) {
	unigram, ngram := buildFixtureTries(t)

	helloAddr := unigram.find("hello")
	if helloAddr == notFound {
		t.Fatal("expected to find \"hello\"")
	}

	node := ngram.find([]int{helloAddr})
	if node == notFound {
		t.Fatal("expected to find the n-gram chain starting at \"hello\"")
	}

	children := ngram.children(node, -1)
	if len(children) != 2 {
		t.Fatalf("expected 2 children after \"hello\", got %d", len(children))
	}
	if children[0].weight < children[1].weight {
		t.Fatal("children not sorted by decreasing weight")
	}

	youUnigram := ngram.toUnigram(children[0].offset)
	word := unigram.reconstruct(youUnigram)
	if word != "you" {
		t.Fatalf("highest-weighted continuation of \"hello\" = %q, want %q", word, "you")
	}
}

func TestNgramFindMultiWordChain(t *testing.T) {
	unigram, ngram := buildFixtureTries(t)

	howAddr := unigram.find("how")
	areAddr := unigram.find("are")
	if howAddr == notFound || areAddr == notFound {
		t.Fatal("expected to find \"how\" and \"are\"")
	}

	node := ngram.find([]int{howAddr, areAddr})
	if node == notFound {
		t.Fatal("expected to find the chain [how, are]")
	}

	children := ngram.children(node, -1)
	if len(children) != 1 {
		t.Fatalf("expected 1 continuation of [how, are], got %d", len(children))
	}
	youUnigram := ngram.toUnigram(children[0].offset)
	if got := unigram.reconstruct(youUnigram); got != "you" {
		t.Fatalf("continuation = %q, want %q", got, "you")
	}
}

func TestNgramFindEmptyAddrs(t *testing.T) {
	_, ngram := buildFixtureTries(t)
	if ngram.find(nil) != notFound {
		t.Fatal("expected notFound for an empty address sequence")
	}
}

func TestNgramFindUnknownChain(t *testing.T) {
	unigram, ngram := buildFixtureTries(t)
	thereAddr := unigram.find("there")
	if thereAddr == notFound {
		t.Fatal("expected to find \"there\"")
	}
	if ngram.find([]int{thereAddr}) != notFound {
		t.Fatal("expected notFound: \"there\" starts no n-gram chain")
	}
}

func TestNgramCacheKeyDistinguishesSequences(t *testing.T) {
	a := ngramCacheKey([]int{1, 23})
	b := ngramCacheKey([]int{12, 3})
	if a == b {
		t.Fatalf("expected distinct cache keys for [1,23] and [12,3], got %q == %q", a, b)
	}
}
