package feature

import (
	"sort"
	"strings"

	"github.com/xrash/smetrics"
)

// DefaultFuzzyThreshold is the minimum normalized edit-distance similarity
// for a token to be considered a fuzzy match against a keyword table key.
const DefaultFuzzyThreshold = 0.8

// Normalize maps an informal token to the canonical labels of a category.
// Matching order: exact key, substring containment either direction, then
// fuzzy similarity against table keys. An unmatched token passes through as
// a literal label so user intent is never silently discarded.
func Normalize(token string, c Category, fuzzyThreshold float64) []Label {
	table := keywordTable(c)
	cleaned := strings.ToLower(strings.TrimSpace(token))
	if cleaned == "" || table == nil {
		return nil
	}
	if fuzzyThreshold <= 0 {
		fuzzyThreshold = DefaultFuzzyThreshold
	}

	if l, ok := table[cleaned]; ok {
		return []Label{l}
	}

	var matched []Label
	for _, key := range sortedKeys(table) {
		if strings.Contains(cleaned, key) || strings.Contains(key, cleaned) {
			matched = appendUnique(matched, table[key])
		}
	}
	if len(matched) > 0 {
		return matched
	}

	for _, key := range sortedKeys(table) {
		if Similarity(cleaned, key) >= fuzzyThreshold {
			matched = appendUnique(matched, table[key])
		}
	}
	if len(matched) > 0 {
		return matched
	}

	return []Label{Literal(strings.TrimSpace(token), c)}
}

// MatchText returns the keyword-table keys of a category contained in the
// given text. The returned tokens are raw table keys, not canonical labels;
// normalization happens later in the pipeline.
func MatchText(text string, c Category) []string {
	table := keywordTable(c)
	lowered := strings.ToLower(text)

	var tokens []string
	for _, key := range sortedKeys(table) {
		if strings.Contains(lowered, key) {
			tokens = append(tokens, key)
		}
	}
	return tokens
}

// Similarity is the normalized edit-distance ratio between two strings,
// in [0, 1] where 1 means equal.
func Similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	longest := len([]rune(a))
	if n := len([]rune(b)); n > longest {
		longest = n
	}
	if longest == 0 {
		return 1
	}
	dist := smetrics.WagnerFischer(a, b, 1, 1, 1)
	sim := 1 - float64(dist)/float64(longest)
	if sim < 0 {
		return 0
	}
	return sim
}

func sortedKeys(table map[string]Label) []string {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func appendUnique(labels []Label, l Label) []Label {
	for _, existing := range labels {
		if existing == l {
			return labels
		}
	}
	return append(labels, l)
}
