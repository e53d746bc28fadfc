// Package intent holds the merged filter intent of one search request: the
// caller's explicit structured fields reconciled with whatever the free-text
// extractor recovered. An Intent is built once per request and treated as
// immutable afterwards; Relaxed returns a derived copy.
package intent

import (
	"github.com/Paurakh977/HomeStay-MCP/internal/domain/feature"
)

// FeatureSet holds raw feature tokens for one category, split into tokens
// the predicate must satisfy and tokens where any one match suffices.
// A nil slice means "not provided"; an empty non-nil slice means the caller
// explicitly cleared the set.
type FeatureSet struct {
	Must     []string
	Optional []string
}

// IsZero reports whether neither list was provided.
func (s FeatureSet) IsZero() bool { return s.Must == nil && s.Optional == nil }

// HasTokens reports whether any token is present.
func (s FeatureSet) HasTokens() bool { return len(s.Must) > 0 || len(s.Optional) > 0 }

// Intent is a partial filter description. Pointer fields distinguish "unset"
// from legitimate zero values (a rating floor of 0 is a real filter).
type Intent struct {
	// Location.
	Province     *string
	District     *string
	Municipality *string
	Ward         *string
	City         *string
	VillageName  *string

	// Basic info.
	HomestayName  *string
	HomestayType  *string // "community" or "private"
	Status        *string // "pending", "approved", "rejected"
	AdminUsername *string

	// Capacity.
	MinHomeCount *int
	MaxHomeCount *int
	MinRoomCount *int
	MaxRoomCount *int
	MinBedCount  *int
	MaxBedCount  *int
	MinGuests    *int
	MaxGuests    *int

	// Rating and reviews.
	MinRating        *float64
	MaxRating        *float64
	MinAverageRating *float64
	MaxAverageRating *float64
	MinReviewCount   *int

	// Price.
	MinPricePerNight *float64
	MaxPricePerNight *float64

	// Committee / operator composition.
	MinTeamMembers *int
	OperatorGender *string // "male", "female", "mixed"

	// Feature tokens per category (raw user strings, pre-normalization).
	Attractions    FeatureSet
	Infrastructure FeatureSet
	Services       FeatureSet

	// Booleans.
	IsVerified *bool
	IsFeatured *bool

	// Registration.
	DHSRNo                     *string
	RegistrationAuthority      *string
	BusinessRegistrationNumber *string

	// Language preference for bilingual address matching: "en", "ne", or
	// "" meaning match either script.
	Language string

	// Operator is the requested logical operator; nil means no preference
	// was expressed (resolves to AND).
	Operator *Operator
}

// Features returns the feature set of a category.
func (in Intent) Features(c feature.Category) FeatureSet {
	switch c {
	case feature.CategoryAttraction:
		return in.Attractions
	case feature.CategoryInfrastructure:
		return in.Infrastructure
	case feature.CategoryService:
		return in.Services
	}
	return FeatureSet{}
}

// CategoryCount is the number of categories carrying at least one token.
func (in Intent) CategoryCount() int {
	n := 0
	for _, c := range feature.Categories() {
		if in.Features(c).HasTokens() {
			n++
		}
	}
	return n
}

// ResolvedOperator returns the requested operator, defaulting to AND.
func (in Intent) ResolvedOperator() Operator {
	if in.Operator == nil {
		return OperatorAnd
	}
	return *in.Operator
}
