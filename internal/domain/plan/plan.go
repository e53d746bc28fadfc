// Package plan decides how the feature tokens of a merged intent combine
// before any predicate is built: it normalizes raw tokens into canonical
// labels per category and picks the grouping strategy the builder must use.
package plan

import (
	"github.com/Paurakh977/HomeStay-MCP/internal/domain/feature"
	"github.com/Paurakh977/HomeStay-MCP/internal/domain/intent"
)

// Strategy is the token grouping shape of the final feature predicate.
type Strategy string

const (
	// StrategySingle applies to one populated category under AND: the
	// category's MUST labels are conjoined and its OPTIONAL labels form one
	// disjunctive branch alongside them.
	StrategySingle Strategy = "single"
	// StrategyCrossOr joins per-category groups disjunctively. It applies
	// whenever more than one category is populated, and whenever the caller
	// forced MIXED.
	StrategyCrossOr Strategy = "cross_or"
	// StrategyFlatOr discards the MUST/OPTIONAL and category structure
	// entirely: every label becomes an independent disjunctive branch. It
	// applies when the operator is OR.
	StrategyFlatOr Strategy = "flat_or"
)

// Group is the normalized label set of one category.
type Group struct {
	Category feature.Category
	Must     []feature.Label
	Optional []feature.Label
}

// Empty reports whether the group carries no labels.
func (g Group) Empty() bool { return len(g.Must) == 0 && len(g.Optional) == 0 }

// Plan is the resolved grouping of one search request.
type Plan struct {
	Strategy Strategy
	Groups   []Group
}

// Empty reports whether no feature filtering is requested at all.
func (p Plan) Empty() bool { return len(p.Groups) == 0 }

// Labels returns every label of the plan in group order, MUST before
// OPTIONAL within each group.
func (p Plan) Labels() []feature.Label {
	var out []feature.Label
	for _, g := range p.Groups {
		out = append(out, g.Must...)
		out = append(out, g.Optional...)
	}
	return out
}

// Resolve normalizes the intent's feature tokens and picks the strategy.
//
//	OR          -> flat_or
//	MIXED       -> cross_or
//	AND, n > 1  -> cross_or
//	AND, n <= 1 -> single
//
// Categories without tokens produce no group. fuzzyThreshold is forwarded
// to token normalization.
func Resolve(in intent.Intent, fuzzyThreshold float64) Plan {
	var groups []Group
	for _, c := range feature.Categories() {
		set := in.Features(c)
		seen := make(map[string]bool)
		g := Group{
			Category: c,
			Must:     normalizeTokens(set.Must, c, fuzzyThreshold, seen),
			Optional: normalizeTokens(set.Optional, c, fuzzyThreshold, seen),
		}
		if !g.Empty() {
			groups = append(groups, g)
		}
	}

	strategy := StrategySingle
	switch {
	case in.ResolvedOperator() == intent.OperatorOr:
		strategy = StrategyFlatOr
	case in.ResolvedOperator() == intent.OperatorMixed, len(groups) > 1:
		strategy = StrategyCrossOr
	}

	return Plan{Strategy: strategy, Groups: groups}
}

// normalizeTokens maps raw tokens to labels, dropping duplicates so that a
// token and its synonym resolving to the same canonical label produce one
// predicate branch. The seen set is shared between a group's MUST and
// OPTIONAL lists: a label already required must not reappear as optional.
func normalizeTokens(tokens []string, c feature.Category, fuzzyThreshold float64, seen map[string]bool) []feature.Label {
	var out []feature.Label
	for _, tok := range tokens {
		for _, l := range feature.Normalize(tok, c, fuzzyThreshold) {
			if seen[l.Primary()] {
				continue
			}
			seen[l.Primary()] = true
			out = append(out, l)
		}
	}
	return out
}
