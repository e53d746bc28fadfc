package intent

import (
	"reflect"
	"testing"
)

func strp(s string) *string     { return &s }
func intp(v int) *int           { return &v }
func floatp(v float64) *float64 { return &v }
func boolp(v bool) *bool        { return &v }
func opp(o Operator) *Operator  { return &o }

func TestMergeExplicitWins(t *testing.T) {
	explicit := Intent{
		District:  strp("Kaski"),
		MinRating: floatp(4),
	}
	extracted := Intent{
		District:  strp("Lalitpur"),
		MinRating: floatp(3),
		Province:  strp("Gandaki"),
	}

	got := Merge(explicit, extracted)

	if *got.District != "Kaski" {
		t.Fatalf("explicit district must win, got %q", *got.District)
	}
	if *got.MinRating != 4 {
		t.Fatalf("explicit rating must win, got %v", *got.MinRating)
	}
	if got.Province == nil || *got.Province != "Gandaki" {
		t.Fatal("extraction must fill fields the caller left unset")
	}
}

func TestMergeExplicitlyClearedFeatureSetWins(t *testing.T) {
	explicit := Intent{
		Attractions: FeatureSet{Must: []string{}},
	}
	extracted := Intent{
		Attractions: FeatureSet{Must: []string{"hiking"}},
	}

	got := Merge(explicit, extracted)

	if got.Attractions.Must == nil || len(got.Attractions.Must) != 0 {
		t.Fatalf("an empty but present list is an explicit clear, got %v", got.Attractions.Must)
	}
	if got.Attractions.Optional != nil {
		t.Fatalf("unset optional list should come from extraction (nil here), got %v", got.Attractions.Optional)
	}
}

func TestMergeFeatureSetFillsUnsetHalf(t *testing.T) {
	explicit := Intent{
		Services: FeatureSet{Must: []string{"guide"}},
	}
	extracted := Intent{
		Services: FeatureSet{Must: []string{"cultural program"}, Optional: []string{"camping"}},
	}

	got := Merge(explicit, extracted)

	if !reflect.DeepEqual(got.Services.Must, []string{"guide"}) {
		t.Fatalf("explicit MUST list must win, got %v", got.Services.Must)
	}
	if !reflect.DeepEqual(got.Services.Optional, []string{"camping"}) {
		t.Fatalf("extracted OPTIONAL list should fill the gap, got %v", got.Services.Optional)
	}
}

func TestMergeOperatorPrecedence(t *testing.T) {
	cases := []struct {
		name      string
		explicit  *Operator
		extracted *Operator
		want      Operator
	}{
		{"explicit beats extracted", opp(OperatorAnd), opp(OperatorOr), OperatorAnd},
		{"extracted fills gap", nil, opp(OperatorOr), OperatorOr},
		{"neither set defaults to AND", nil, nil, OperatorAnd},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Merge(Intent{Operator: tc.explicit}, Intent{Operator: tc.extracted})
			if got.ResolvedOperator() != tc.want {
				t.Fatalf("resolved operator = %s, want %s", got.ResolvedOperator(), tc.want)
			}
		})
	}
}

func TestMergeIdempotent(t *testing.T) {
	explicit := Intent{
		District:       strp("Kaski"),
		MinRating:      floatp(4),
		MinTeamMembers: intp(5),
		IsVerified:     boolp(true),
		Attractions:    FeatureSet{Must: []string{"hiking"}},
	}
	extracted := Intent{
		Province:       strp("Gandaki"),
		MinRating:      floatp(3),
		Operator:       opp(OperatorOr),
		Infrastructure: FeatureSet{Optional: []string{"wifi"}},
		Language:       "ne",
	}

	once := Merge(explicit, extracted)
	twice := Merge(once, extracted)

	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("merge must be idempotent:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}

func TestMergeZeroExtraction(t *testing.T) {
	explicit := Intent{
		Status:    strp("approved"),
		MaxGuests: intp(10),
	}

	got := Merge(explicit, Intent{})

	if !reflect.DeepEqual(got, explicit) {
		t.Fatalf("merging an empty extraction must be a no-op:\ngot:  %+v\nwant: %+v", got, explicit)
	}
}
