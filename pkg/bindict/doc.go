/*
Package bindict is a read-only binary dictionary engine for on-device text
input. It answers three queries over a packed byte image that encodes two
coupled tries: a unigram (character) trie of known words with frequency
weights, and an n-gram (word) trie of multi-word phrases whose leaves
reference unigram leaves.

The image format, both trie layouts, and the traversal algorithms are
fixed by the binary contract described in [Image] — see that type's doc
comment for the byte layout. Nothing in this package mutates the image
after load; queries are served by walking byte offsets and memoizing
resolved addresses.

# Concurrency

A *Dictionary is safe for concurrent query calls: the unigram and n-gram
navigators each hold their own lookupCache, and each cache guards its map
with its own sync.Mutex (two independent mutexes, not one shared lock).
Every cache operation is a single atomic get-or-put, and a cache never
stores a not-found result, so concurrent queries can only ever agree on
or refine a cached offset, never corrupt one. For higher-throughput
read-only fan-out, prefer several *Dictionary values sharing one
immutable [Image] over contending on one instance's caches.
*/
package bindict
