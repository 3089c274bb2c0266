package roster

import (
	"sort"
	"strings"
)

// DidYouMeanThreshold is the minimum similarity at which a best suggestion
// is confident enough for callers to auto-correct on. Hard contract.
const DidYouMeanThreshold = 0.6

// DefaultSuggestions is how many candidates Suggest returns by default.
const DefaultSuggestions = 3

// Candidate is one approximate-match suggestion.
type Candidate struct {
	Name       string  `json:"name"`
	Similarity float64 `json:"similarity"`
}

// Similarity returns 1 - levenshtein(a,b)/max(len(a),len(b)), compared
// case-insensitively. Identical strings score 1, fully dissimilar 0.
func Similarity(a, b string) float64 {
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	if a == b {
		return 1
	}
	longest := max(len(a), len(b))
	if longest == 0 {
		return 1
	}
	return 1 - float64(levenshtein(a, b))/float64(longest)
}

// Suggest returns the top-limit roster entries by descending similarity to
// input, ties broken by roster order.
func Suggest(input string, limit int) []Candidate {
	return SuggestFrom(input, characters, limit)
}

// SuggestFrom is Suggest over an arbitrary candidate pool, used for
// close-command recovery on move lookups. Pool order breaks ties.
func SuggestFrom(input string, pool []string, limit int) []Candidate {
	if limit <= 0 {
		limit = DefaultSuggestions
	}

	candidates := make([]Candidate, 0, len(pool))
	for _, c := range pool {
		candidates = append(candidates, Candidate{
			Name:       c,
			Similarity: Similarity(input, c),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Similarity > candidates[j].Similarity
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}

// levenshtein computes edit distance with the usual two-row DP. Identifier
// lengths are short, so no further optimization is warranted.
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
