// Package query turns a merged intent and its resolved plan into the
// backend-agnostic predicate tree. The builder is pure: same intent, plan,
// and schema always yield the same tree.
package query

import (
	"strings"
	"unicode"

	"github.com/Paurakh977/HomeStay-MCP/internal/domain/feature"
	"github.com/Paurakh977/HomeStay-MCP/internal/domain/intent"
	"github.com/Paurakh977/HomeStay-MCP/internal/domain/plan"
	"github.com/Paurakh977/HomeStay-MCP/internal/domain/predicate"
)

// wideningMinWords is the label word count above which per-word leaves are
// added, and wideningMinRunes the shortest word worth a leaf of its own.
// Long composite labels ("Trekking, Climbing & Hiking Routes") rarely appear
// verbatim on records, so their content words match individually.
const (
	wideningMinWords = 3
	wideningMinRunes = 4
)

// Build assembles the full predicate for one request: scalar filters
// conjoined with the feature sub-tree dictated by the plan. The zero node is
// returned when nothing constrains the search.
func Build(in intent.Intent, p plan.Plan, s Schema) predicate.Node {
	nodes := scalarNodes(in, s)
	if f := featureNode(p, s); f.True() {
		nodes = append(nodes, f)
	}
	return predicate.And(nodes...)
}

func featureNode(p plan.Plan, s Schema) predicate.Node {
	switch p.Strategy {
	case plan.StrategyFlatOr:
		var branches []predicate.Node
		for _, g := range p.Groups {
			field := s.FeatureField(g.Category)
			for _, l := range append(append([]feature.Label{}, g.Must...), g.Optional...) {
				branches = append(branches, labelNode(field, l))
			}
		}
		return predicate.Or(branches...)
	case plan.StrategyCrossOr:
		var branches []predicate.Node
		for _, g := range p.Groups {
			branches = append(branches, groupNode(g, s))
		}
		return predicate.Or(branches...)
	}
	if len(p.Groups) == 0 {
		return predicate.And()
	}
	return groupNode(p.Groups[0], s)
}

// groupNode builds one category's sub-tree: every MUST label is its own
// conjunct, all OPTIONAL labels share one disjunctive conjunct.
func groupNode(g plan.Group, s Schema) predicate.Node {
	field := s.FeatureField(g.Category)
	var conjuncts []predicate.Node
	for _, l := range g.Must {
		conjuncts = append(conjuncts, labelNode(field, l))
	}
	if len(g.Optional) > 0 {
		var optional []predicate.Node
		for _, l := range g.Optional {
			optional = append(optional, labelNode(field, l))
		}
		conjuncts = append(conjuncts, predicate.Or(optional...))
	}
	return predicate.And(conjuncts...)
}

// labelNode builds the leaf group of one label: both scripts as alternative
// patterns, widened with per-word leaves when the label is a long composite.
func labelNode(field string, l feature.Label) predicate.Node {
	leaves := []predicate.Node{predicate.Match(field, l.Primary())}
	if l.Secondary() != "" {
		leaves = append(leaves, predicate.Match(field, l.Secondary()))
	}
	for _, w := range wideningWords(l.Primary()) {
		leaves = append(leaves, predicate.Match(field, w))
	}
	for _, w := range wideningWords(l.Secondary()) {
		leaves = append(leaves, predicate.Match(field, w))
	}
	return predicate.Or(leaves...)
}

// wideningWords returns the content words of a composite label, or nil when
// the label is short enough to match as-is.
func wideningWords(label string) []string {
	words := strings.FieldsFunc(label, func(r rune) bool {
		return unicode.IsSpace(r) || r == ',' || r == '&' || r == '/'
	})
	if len(words) < wideningMinWords {
		return nil
	}
	var out []string
	for _, w := range words {
		if len([]rune(w)) >= wideningMinRunes {
			out = append(out, w)
		}
	}
	return out
}

func scalarNodes(in intent.Intent, s Schema) []predicate.Node {
	var nodes []predicate.Node
	add := func(n predicate.Node) {
		if n.True() {
			nodes = append(nodes, n)
		}
	}

	add(bilingualNode(s.Province, in.Province, in.Language))
	add(bilingualNode(s.District, in.District, in.Language))
	add(bilingualNode(s.Municipality, in.Municipality, in.Language))
	add(bilingualNode(s.Ward, in.Ward, in.Language))
	add(matchNode(s.City, in.City))
	add(matchNode(s.VillageName, in.VillageName))

	add(matchNode(s.HomestayName, in.HomestayName))
	add(equalsNode(s.HomestayType, in.HomestayType))
	add(equalsNode(s.Status, in.Status))
	add(equalsNode(s.AdminUsername, in.AdminUsername))

	add(intRangeNode(s.HomeCount, in.MinHomeCount, in.MaxHomeCount))
	add(intRangeNode(s.RoomCount, in.MinRoomCount, in.MaxRoomCount))
	add(intRangeNode(s.BedCount, in.MinBedCount, in.MaxBedCount))
	add(intRangeNode(s.MaxGuests, in.MinGuests, in.MaxGuests))

	add(rangeNode(s.Rating, in.MinRating, in.MaxRating))
	add(rangeNode(s.AverageRating, in.MinAverageRating, in.MaxAverageRating))
	add(intRangeNode(s.ReviewCount, in.MinReviewCount, nil))

	add(rangeNode(s.PricePerNight, in.MinPricePerNight, in.MaxPricePerNight))

	add(intRangeNode(s.TeamMemberCount, in.MinTeamMembers, nil))
	add(equalsNode(s.OperatorGender, in.OperatorGender))

	add(boolNode(s.IsVerified, in.IsVerified))
	add(boolNode(s.IsFeatured, in.IsFeatured))

	add(matchNode(s.DHSRNo, in.DHSRNo))
	add(matchNode(s.RegistrationAuthority, in.RegistrationAuthority))
	add(matchNode(s.BusinessRegistrationNumber, in.BusinessRegistrationNumber))

	return nodes
}

// bilingualNode matches one script when a language preference is set, and
// either script otherwise.
func bilingualNode(base string, value *string, lang string) predicate.Node {
	if value == nil || *value == "" {
		return predicate.And()
	}
	switch lang {
	case "en", "ne":
		return predicate.Match(base+"."+lang, *value)
	}
	return predicate.Or(
		predicate.Match(base+".en", *value),
		predicate.Match(base+".ne", *value),
	)
}

func matchNode(field string, value *string) predicate.Node {
	if value == nil || *value == "" {
		return predicate.And()
	}
	return predicate.Match(field, *value)
}

func equalsNode(field string, value *string) predicate.Node {
	if value == nil || *value == "" {
		return predicate.And()
	}
	return predicate.Equals(field, *value)
}

func boolNode(field string, value *bool) predicate.Node {
	if value == nil {
		return predicate.And()
	}
	return predicate.Equals(field, *value)
}

func rangeNode(field string, gte, lte *float64) predicate.Node {
	if gte == nil && lte == nil {
		return predicate.And()
	}
	return predicate.Between(field, gte, lte)
}

func intRangeNode(field string, gte, lte *int) predicate.Node {
	var lo, hi *float64
	if gte != nil {
		v := float64(*gte)
		lo = &v
	}
	if lte != nil {
		v := float64(*lte)
		hi = &v
	}
	return rangeNode(field, lo, hi)
}
