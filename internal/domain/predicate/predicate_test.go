package predicate

import (
	"encoding/json"
	"strings"
	"testing"
)

func f(v float64) *float64 { return &v }

func TestAndCollapsesSingleChild(t *testing.T) {
	leaf := Match("features.localAttractions", "hiking")
	got := And(leaf)
	if got.Kind() != KindLeaf {
		t.Fatalf("expected single-child And to collapse to the leaf, got kind %v", got.Kind())
	}
	if got.Field() != "features.localAttractions" || got.Pattern() != "hiking" {
		t.Fatalf("collapsed node lost leaf data: %+v", got)
	}
}

func TestOrCollapsesSingleChild(t *testing.T) {
	leaf := Equals("status", "approved")
	got := Or(leaf)
	if got.Kind() != KindLeaf {
		t.Fatalf("expected single-child Or to collapse to the leaf, got kind %v", got.Kind())
	}
}

func TestEmptyCompositeIsNotTrue(t *testing.T) {
	if And().True() {
		t.Fatal("empty And should not constrain anything")
	}
	if Or().True() {
		t.Fatal("empty Or should not constrain anything")
	}
	if !Match("homeStayName", "everest").True() {
		t.Fatal("leaf must always be true")
	}
}

func TestCombineDropsEmptyChildren(t *testing.T) {
	got := And(Or(), Match("status", "approved"), And())
	if got.Kind() != KindLeaf {
		t.Fatalf("empty children should be dropped and the rest collapsed, got kind %v", got.Kind())
	}
}

func TestNestedTreeStructure(t *testing.T) {
	tree := And(
		Match("features.localAttractions", "hiking"),
		Or(
			Match("features.infrastructure", "wifi"),
			Match("features.infrastructure", "internet"),
		),
	)
	if tree.Kind() != KindAnd {
		t.Fatalf("expected AND root, got %v", tree.Kind())
	}
	if len(tree.Children()) != 2 {
		t.Fatalf("expected 2 children, got %d", len(tree.Children()))
	}
	if tree.Children()[1].Kind() != KindOr {
		t.Fatalf("expected OR second child, got %v", tree.Children()[1].Kind())
	}
	if tree.Leaves() != 3 {
		t.Fatalf("expected 3 leaves, got %d", tree.Leaves())
	}
}

func TestLeafVariants(t *testing.T) {
	rng := Between("rating", f(4), nil)
	if rng.NumRange() == nil || rng.NumRange().GTE == nil || *rng.NumRange().GTE != 4 {
		t.Fatalf("range leaf lost its lower bound: %+v", rng.NumRange())
	}
	if rng.NumRange().LTE != nil {
		t.Fatal("open upper bound should stay nil")
	}

	eq := Equals("isVerified", true)
	v, ok := eq.ExactValue()
	if !ok || v != true {
		t.Fatalf("exact leaf lost its value: %v %v", v, ok)
	}

	if _, ok := rng.ExactValue(); ok {
		t.Fatal("range leaf must not report an exact value")
	}
}

func TestMarshalJSON(t *testing.T) {
	tree := And(
		Equals("status", "approved"),
		Between("averageRating", f(4), f(5)),
		Or(
			Match("features.tourismServices", "guide"),
			Match("features.tourismServices", "गाइड"),
		),
	)
	raw, err := json.Marshal(tree)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	s := string(raw)
	for _, want := range []string{`"and"`, `"or"`, `"equals":"approved"`, `"gte":4`, `"lte":5`, `"pattern":"guide"`} {
		if !strings.Contains(s, want) {
			t.Fatalf("marshaled tree missing %s: %s", want, s)
		}
	}
}
