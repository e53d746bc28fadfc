package feature

import "testing"

func TestNormalize_ExactKey(t *testing.T) {
	labels := Normalize("hiking", CategoryAttraction, 0)
	if len(labels) != 1 {
		t.Fatalf("expected 1 label, got %d", len(labels))
	}
	if labels[0] != labelTrekking {
		t.Errorf("expected trekking label, got %s", labels[0])
	}
}

func TestNormalize_CaseAndWhitespaceInsensitive(t *testing.T) {
	labels := Normalize("  HIKING ", CategoryAttraction, 0)
	if len(labels) != 1 || labels[0] != labelTrekking {
		t.Fatalf("expected trekking label, got %v", labels)
	}
}

func TestNormalize_Containment(t *testing.T) {
	// "hiking trails" contains the key "hiking".
	labels := Normalize("hiking trails", CategoryAttraction, 0)
	if len(labels) != 1 || labels[0] != labelTrekking {
		t.Fatalf("expected trekking label, got %v", labels)
	}
}

func TestNormalize_Fuzzy(t *testing.T) {
	// One deletion away from "fishing": similarity 6/7 > 0.8.
	labels := Normalize("fishng", CategoryAttraction, 0)
	if len(labels) != 1 || labels[0] != labelFishing {
		t.Fatalf("expected fishing label, got %v", labels)
	}
}

func TestNormalize_UnmatchedPassesThroughAsLiteral(t *testing.T) {
	labels := Normalize("paragliding", CategoryAttraction, 0)
	if len(labels) != 1 {
		t.Fatalf("expected 1 literal, got %d", len(labels))
	}
	if !labels[0].IsLiteral() {
		t.Error("expected literal passthrough label")
	}
	if labels[0].Primary() != "paragliding" {
		t.Errorf("literal should keep the raw token, got %q", labels[0].Primary())
	}
	if labels[0].Category() != CategoryAttraction {
		t.Errorf("literal should keep the category, got %s", labels[0].Category())
	}
}

func TestNormalize_EmptyToken(t *testing.T) {
	if labels := Normalize("   ", CategoryAttraction, 0); labels != nil {
		t.Errorf("blank token should normalize to nothing, got %v", labels)
	}
}

func TestNormalize_CategoryTablesAreIndependent(t *testing.T) {
	if labels := Normalize("wifi", CategoryAttraction, 0); !labels[0].IsLiteral() {
		t.Errorf("wifi should not match in attraction table, got %v", labels)
	}
	labels := Normalize("wifi", CategoryInfrastructure, 0)
	if len(labels) != 1 || labels[0] != labelWifi {
		t.Fatalf("expected wifi label, got %v", labels)
	}
}

func TestMatchText(t *testing.T) {
	tokens := MatchText("homestays with hiking and fishing", CategoryAttraction)
	want := map[string]bool{"hiking": true, "fishing": true}
	found := 0
	for _, tok := range tokens {
		if want[tok] {
			found++
		}
	}
	if found != 2 {
		t.Errorf("expected hiking and fishing among %v", tokens)
	}
	if infra := MatchText("homestays with hiking and fishing", CategoryInfrastructure); len(infra) != 0 {
		t.Errorf("no infrastructure keywords expected, got %v", infra)
	}
}

func TestSimilarity(t *testing.T) {
	cases := []struct {
		a, b string
		min  float64
		max  float64
	}{
		{"hiking", "hiking", 1, 1},
		{"fishng", "fishing", 0.85, 0.9},
		{"wifi", "temple", 0, 0.2},
	}
	for _, tc := range cases {
		got := Similarity(tc.a, tc.b)
		if got < tc.min || got > tc.max {
			t.Errorf("Similarity(%q, %q) = %f, want within [%f, %f]", tc.a, tc.b, got, tc.min, tc.max)
		}
	}
}

func TestCatalogLabelsAreBilingual(t *testing.T) {
	for _, c := range Categories() {
		for key, l := range keywordTable(c) {
			if l.Primary() == "" || l.Secondary() == "" {
				t.Errorf("catalog label for key %q is missing a script", key)
			}
			if l.Category() != c {
				t.Errorf("key %q maps to label of category %s, want %s", key, l.Category(), c)
			}
		}
	}
}
