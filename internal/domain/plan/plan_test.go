package plan

import (
	"testing"

	"github.com/Paurakh977/HomeStay-MCP/internal/domain/feature"
	"github.com/Paurakh977/HomeStay-MCP/internal/domain/intent"
)

func opp(o intent.Operator) *intent.Operator { return &o }

func TestResolveSingleCategoryDefaultsToSingle(t *testing.T) {
	in := intent.Intent{
		Attractions: intent.FeatureSet{
			Must:     []string{"hiking"},
			Optional: []string{"fishing"},
		},
	}

	p := Resolve(in, feature.DefaultFuzzyThreshold)

	if p.Strategy != StrategySingle {
		t.Fatalf("one category under AND must use single strategy, got %s", p.Strategy)
	}
	if len(p.Groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(p.Groups))
	}
	g := p.Groups[0]
	if g.Category != feature.CategoryAttraction {
		t.Fatalf("unexpected category %s", g.Category)
	}
	if len(g.Must) != 1 || len(g.Optional) != 1 {
		t.Fatalf("expected 1 MUST and 1 OPTIONAL label, got %d/%d", len(g.Must), len(g.Optional))
	}
}

func TestResolveMultipleCategoriesUseCrossOr(t *testing.T) {
	in := intent.Intent{
		Attractions:    intent.FeatureSet{Must: []string{"hiking"}},
		Infrastructure: intent.FeatureSet{Must: []string{"wifi"}},
	}

	p := Resolve(in, feature.DefaultFuzzyThreshold)

	if p.Strategy != StrategyCrossOr {
		t.Fatalf("two categories must use cross_or, got %s", p.Strategy)
	}
	if len(p.Groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(p.Groups))
	}
}

func TestResolveMixedForcesCrossOr(t *testing.T) {
	in := intent.Intent{
		Attractions: intent.FeatureSet{Must: []string{"hiking"}},
		Operator:    opp(intent.OperatorMixed),
	}

	p := Resolve(in, feature.DefaultFuzzyThreshold)

	if p.Strategy != StrategyCrossOr {
		t.Fatalf("MIXED must force cross_or even for one category, got %s", p.Strategy)
	}
}

func TestResolveOrFlattens(t *testing.T) {
	in := intent.Intent{
		Attractions: intent.FeatureSet{Must: []string{"hiking"}},
		Services:    intent.FeatureSet{Optional: []string{"guide"}},
		Operator:    opp(intent.OperatorOr),
	}

	p := Resolve(in, feature.DefaultFuzzyThreshold)

	if p.Strategy != StrategyFlatOr {
		t.Fatalf("OR must flatten everything, got %s", p.Strategy)
	}
	if got := len(p.Labels()); got != 2 {
		t.Fatalf("expected 2 labels in total, got %d", got)
	}
}

func TestResolveDedupesSynonyms(t *testing.T) {
	in := intent.Intent{
		Attractions: intent.FeatureSet{Must: []string{"hiking", "trekking"}},
	}

	p := Resolve(in, feature.DefaultFuzzyThreshold)

	if len(p.Groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(p.Groups))
	}
	if got := len(p.Groups[0].Must); got != 1 {
		t.Fatalf("hiking and trekking resolve to the same label, want 1, got %d", got)
	}
}

func TestResolveMustSubsumesOptional(t *testing.T) {
	in := intent.Intent{
		Attractions: intent.FeatureSet{
			Must:     []string{"fishing"},
			Optional: []string{"boating"},
		},
	}

	p := Resolve(in, feature.DefaultFuzzyThreshold)

	g := p.Groups[0]
	if len(g.Must) != 1 || len(g.Optional) != 0 {
		t.Fatalf("a label already required must not reappear as optional, got %d/%d", len(g.Must), len(g.Optional))
	}
}

func TestResolveEmptyIntent(t *testing.T) {
	p := Resolve(intent.Intent{}, feature.DefaultFuzzyThreshold)
	if !p.Empty() {
		t.Fatalf("intent without tokens must resolve to an empty plan, got %+v", p)
	}
	if p.Strategy != StrategySingle {
		t.Fatalf("empty plan keeps the default strategy, got %s", p.Strategy)
	}
}

func TestResolveKeepsLiteralTokens(t *testing.T) {
	in := intent.Intent{
		Attractions: intent.FeatureSet{Must: []string{"paragliding"}},
	}

	p := Resolve(in, feature.DefaultFuzzyThreshold)

	if len(p.Groups) != 1 || len(p.Groups[0].Must) != 1 {
		t.Fatalf("literal token must survive as a passthrough label: %+v", p)
	}
	if !p.Groups[0].Must[0].IsLiteral() {
		t.Fatal("unknown token should normalize to a literal label")
	}
}
