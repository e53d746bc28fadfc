package intent

import "github.com/Paurakh977/HomeStay-MCP/internal/domain/feature"

// Relaxed derives the single relaxed variant of an over-constrained intent:
// every category's MUST tokens move into that category's OPTIONAL set, and
// the operator escalates to MIXED when more than one category is populated,
// OR otherwise. The receiver is not modified.
//
// The second return value is false when there is nothing to relax (no MUST
// tokens anywhere), in which case retrying would re-run the same query.
func (in Intent) Relaxed() (Intent, bool) {
	hasMust := false
	for _, c := range feature.Categories() {
		if len(in.Features(c).Must) > 0 {
			hasMust = true
			break
		}
	}
	if !hasMust {
		return in, false
	}

	out := in
	out.Attractions = relaxSet(in.Attractions)
	out.Infrastructure = relaxSet(in.Infrastructure)
	out.Services = relaxSet(in.Services)

	op := OperatorOr
	if out.CategoryCount() > 1 {
		op = OperatorMixed
	}
	out.Operator = &op

	return out, true
}

func relaxSet(s FeatureSet) FeatureSet {
	if len(s.Must) == 0 {
		return s
	}
	optional := make([]string, 0, len(s.Optional)+len(s.Must))
	optional = append(optional, s.Optional...)
	optional = append(optional, s.Must...)
	return FeatureSet{Optional: optional}
}
