package intent

import (
	"reflect"
	"testing"
)

func TestRelaxedMovesMustIntoOptional(t *testing.T) {
	in := Intent{
		Attractions: FeatureSet{Must: []string{"hiking", "fishing"}},
		Services:    FeatureSet{Must: []string{"guide"}, Optional: []string{"camping"}},
	}

	out, ok := in.Relaxed()
	if !ok {
		t.Fatal("intent with MUST tokens must be relaxable")
	}
	if len(out.Attractions.Must) != 0 {
		t.Fatalf("MUST tokens must be cleared, got %v", out.Attractions.Must)
	}
	if !reflect.DeepEqual(out.Attractions.Optional, []string{"hiking", "fishing"}) {
		t.Fatalf("MUST tokens must land in OPTIONAL, got %v", out.Attractions.Optional)
	}
	if !reflect.DeepEqual(out.Services.Optional, []string{"camping", "guide"}) {
		t.Fatalf("existing OPTIONAL tokens must be preserved, got %v", out.Services.Optional)
	}
}

func TestRelaxedOperatorEscalation(t *testing.T) {
	single := Intent{Attractions: FeatureSet{Must: []string{"hiking"}}}
	out, ok := single.Relaxed()
	if !ok || out.ResolvedOperator() != OperatorOr {
		t.Fatalf("single-category relaxation must escalate to OR, got %s", out.ResolvedOperator())
	}

	multi := Intent{
		Attractions:    FeatureSet{Must: []string{"hiking"}},
		Infrastructure: FeatureSet{Optional: []string{"wifi"}},
	}
	out, ok = multi.Relaxed()
	if !ok || out.ResolvedOperator() != OperatorMixed {
		t.Fatalf("multi-category relaxation must escalate to MIXED, got %s", out.ResolvedOperator())
	}
}

func TestRelaxedNothingToRelax(t *testing.T) {
	cases := map[string]Intent{
		"empty intent":  {},
		"only optional": {Infrastructure: FeatureSet{Optional: []string{"wifi"}}},
		"only scalars":  {MinRating: floatp(4), District: strp("Kaski")},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			if _, ok := in.Relaxed(); ok {
				t.Fatal("relaxation must be refused when no MUST token exists")
			}
		})
	}
}

func TestRelaxedDoesNotMutateReceiver(t *testing.T) {
	in := Intent{
		Attractions: FeatureSet{Must: []string{"hiking"}},
		MinRating:   floatp(4),
	}
	before := Intent{
		Attractions: FeatureSet{Must: []string{"hiking"}},
		MinRating:   in.MinRating,
	}

	if _, ok := in.Relaxed(); !ok {
		t.Fatal("expected relaxation to apply")
	}
	if !reflect.DeepEqual(in, before) {
		t.Fatalf("receiver was mutated: %+v", in)
	}
}

func TestRelaxedKeepsScalarFilters(t *testing.T) {
	in := Intent{
		District:    strp("Kaski"),
		MinRating:   floatp(4),
		Attractions: FeatureSet{Must: []string{"hiking"}},
	}
	out, _ := in.Relaxed()
	if out.District == nil || *out.District != "Kaski" {
		t.Fatal("scalar filters must survive relaxation")
	}
	if out.MinRating == nil || *out.MinRating != 4 {
		t.Fatal("rating floor must survive relaxation")
	}
}

func TestParseOperator(t *testing.T) {
	op, err := ParseOperator("or")
	if err != nil || op == nil || *op != OperatorOr {
		t.Fatalf("lowercase operator must parse, got %v %v", op, err)
	}

	op, err = ParseOperator("")
	if err != nil || op != nil {
		t.Fatalf("empty operator means no preference, got %v %v", op, err)
	}

	if _, err = ParseOperator("XOR"); err == nil {
		t.Fatal("unknown operator must be rejected")
	}
}
