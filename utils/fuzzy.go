package utils

import (
	"math"
	"strings"
)

// DefaultMatchThreshold is the similarity cutoff for keyword membership.
const DefaultMatchThreshold = 60

// Ratio computes a character-overlap similarity between two strings in
// [0,100]. It follows the Ratcliff/Obershelp scheme: greedily pick the
// longest common contiguous substring, recurse on the pieces to the left
// and right, sum the matched characters M, and score round(200*M/T) where
// T is the combined length. Symmetric, and 100 for two empty strings.
// This is overlap similarity, not edit distance.
func Ratio(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 100
	}
	matched := matchingBlocks(ra, rb, 0, len(ra), 0, len(rb))
	return int(math.Round(200 * float64(matched) / float64(total)))
}

// matchingBlocks returns the total number of matched runes between
// a[alo:ahi] and b[blo:bhi] under the recursive longest-match partitioning.
func matchingBlocks(a, b []rune, alo, ahi, blo, bhi int) int {
	i, j, size := longestMatch(a, b, alo, ahi, blo, bhi)
	if size == 0 {
		return 0
	}
	return size +
		matchingBlocks(a, b, alo, i, blo, j) +
		matchingBlocks(a, b, i+size, ahi, j+size, bhi)
}

// longestMatch finds the longest contiguous matching block between
// a[alo:ahi] and b[blo:bhi]. Ties break toward the earliest position in a,
// then in b, matching the reference partitioning exactly.
func longestMatch(a, b []rune, alo, ahi, blo, bhi int) (besti, bestj, bestsize int) {
	besti, bestj = alo, blo
	j2len := make(map[int]int)
	for i := alo; i < ahi; i++ {
		newj2len := make(map[int]int)
		for j := blo; j < bhi; j++ {
			if a[i] != b[j] {
				continue
			}
			k := j2len[j-1] + 1
			newj2len[j] = k
			if k > bestsize {
				besti, bestj, bestsize = i-k+1, j-k+1, k
			}
		}
		j2len = newj2len
	}
	return besti, bestj, bestsize
}

// MatchKeyword reports whether text approximately matches any of the
// keywords. Both sides are normalized first. A keyword matches when the
// whole text clears the threshold, or when any single whitespace token of
// the text does. The token check is deliberately permissive: one stray
// matching word inside a long unrelated sentence still triggers.
func MatchKeyword(text string, keywords []string, threshold int) bool {
	text = Normalize(text)
	tokens := strings.Fields(text)
	for _, keyword := range keywords {
		keyword = Normalize(keyword)
		if Ratio(text, keyword) >= threshold {
			return true
		}
		for _, token := range tokens {
			if Ratio(token, keyword) >= threshold {
				return true
			}
		}
	}
	return false
}
