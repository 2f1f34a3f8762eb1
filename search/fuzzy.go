package search

import (
	"sort"
	"strings"

	"github.com/antzucaro/matchr"
)

// Blend weights for the fuzzy components. They sum to 1.0; the blended
// score is additionally capped at 1.0 before the fuzzy weight is applied.
const (
	weightTokenSort   = 0.30
	weightTokenSet    = 0.25
	weightPartial     = 0.20
	weightWordOverlap = 0.15
	weightBigram      = 0.10
)

// BlendedScore measures query-to-text similarity in [0, 1] by blending
// token-sort, token-set, partial, exact word-overlap, and character-bigram
// ratios. Tolerant of word reordering, partial mentions, and minor typos.
func BlendedScore(query, text string) float64 {
	if query == "" || text == "" {
		return 0
	}
	score := weightTokenSort*tokenSortRatio(query, text) +
		weightTokenSet*tokenSetRatio(query, text) +
		weightPartial*partialRatio(query, text) +
		weightWordOverlap*wordOverlapRatio(query, text) +
		weightBigram*bigramRatio(query, text)
	if score > 1 {
		score = 1
	}
	return score
}

// tokenize splits text into lowercase tokens with surrounding punctuation
// trimmed.
func tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, `.,!?;:'"()[]{}-`)
		if f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// ratio is the normalized Levenshtein similarity of two strings.
func ratio(a, b string) float64 {
	if a == b {
		return 1
	}
	if a == "" || b == "" {
		return 0
	}
	la, lb := len([]rune(a)), len([]rune(b))
	longest := la
	if lb > longest {
		longest = lb
	}
	dist := matchr.Levenshtein(a, b)
	if dist >= longest {
		return 0
	}
	return 1 - float64(dist)/float64(longest)
}

func sortedJoin(tokens []string) string {
	sorted := make([]string, len(tokens))
	copy(sorted, tokens)
	sort.Strings(sorted)
	return strings.Join(sorted, " ")
}

// tokenSortRatio compares the two strings with their tokens sorted, making
// the measure order-insensitive.
func tokenSortRatio(a, b string) float64 {
	return ratio(sortedJoin(tokenize(a)), sortedJoin(tokenize(b)))
}

// tokenSetRatio splits tokens into intersection and differences and takes
// the best pairwise ratio, so a query wholly contained in a longer text
// still scores high.
func tokenSetRatio(a, b string) float64 {
	setA := tokenSet(tokenize(a))
	setB := tokenSet(tokenize(b))

	var common, onlyA, onlyB []string
	for tok := range setA {
		if setB[tok] {
			common = append(common, tok)
		} else {
			onlyA = append(onlyA, tok)
		}
	}
	for tok := range setB {
		if !setA[tok] {
			onlyB = append(onlyB, tok)
		}
	}
	sort.Strings(common)
	sort.Strings(onlyA)
	sort.Strings(onlyB)

	base := strings.Join(common, " ")
	combinedA := strings.TrimSpace(base + " " + strings.Join(onlyA, " "))
	combinedB := strings.TrimSpace(base + " " + strings.Join(onlyB, " "))

	best := ratio(base, combinedA)
	if r := ratio(base, combinedB); r > best {
		best = r
	}
	if r := ratio(combinedA, combinedB); r > best {
		best = r
	}
	return best
}

// partialRatio slides the shorter string across the longer one at word
// boundaries and returns the best window ratio.
func partialRatio(a, b string) float64 {
	shorter, longer := a, b
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	if len(shorter) == len(longer) {
		return ratio(shorter, longer)
	}

	best := 0.0
	for _, start := range wordStarts(longer) {
		end := start + len(shorter)
		if end > len(longer) {
			end = len(longer)
		}
		if r := ratio(shorter, longer[start:end]); r > best {
			best = r
		}
		if best == 1 {
			break
		}
	}
	return best
}

// wordStarts returns the byte offsets where words begin.
func wordStarts(s string) []int {
	starts := []int{0}
	for i := 1; i < len(s); i++ {
		if s[i-1] == ' ' && s[i] != ' ' {
			starts = append(starts, i)
		}
	}
	return starts
}

// wordOverlapRatio is the share of query tokens that appear verbatim in the
// text.
func wordOverlapRatio(query, text string) float64 {
	qTokens := tokenize(query)
	if len(qTokens) == 0 {
		return 0
	}
	tSet := tokenSet(tokenize(text))
	hits := 0
	for _, tok := range qTokens {
		if tSet[tok] {
			hits++
		}
	}
	return float64(hits) / float64(len(qTokens))
}

// bigramRatio is the Dice coefficient over character bigram sets, catching
// near-matches that token comparisons miss.
func bigramRatio(a, b string) float64 {
	bigA := bigrams(a)
	bigB := bigrams(b)
	if len(bigA) == 0 || len(bigB) == 0 {
		return 0
	}
	shared := 0
	for bg := range bigA {
		if bigB[bg] {
			shared++
		}
	}
	return 2 * float64(shared) / float64(len(bigA)+len(bigB))
}

func bigrams(s string) map[string]bool {
	runes := []rune(strings.ToLower(s))
	set := make(map[string]bool)
	for i := 0; i+1 < len(runes); i++ {
		set[string(runes[i:i+2])] = true
	}
	return set
}

func tokenSet(tokens []string) map[string]bool {
	set := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		set[tok] = true
	}
	return set
}
