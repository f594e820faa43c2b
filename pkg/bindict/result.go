package bindict

import "sort"

// WeightedWord is a (value, weight) pair returned by Predictions and
// Corrections: weight is an unsigned frequency score, higher preferred.
type WeightedWord struct {
	Word   string
	Weight int
}

// sortByWeightDesc sorts results by decreasing weight, breaking ties by
// lexicographic word order for determinism, then truncates to maxK. A
// negative maxK means unlimited.
func sortByWeightDesc(results []WeightedWord, maxK int) []WeightedWord {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Weight != results[j].Weight {
			return results[i].Weight > results[j].Weight
		}
		return results[i].Word < results[j].Word
	})
	if maxK >= 0 && len(results) > maxK {
		results = results[:maxK]
	}
	return results
}
