// Package homestay holds the record-shaped domain types shared between the
// search pipeline and the storage layer.
package homestay

// Summary is the projected shape returned by searches: the public homestay
// identifier and its display name.
type Summary struct {
	ID   string
	Name string
}

// SortSpec orders search results by one field.
type SortSpec struct {
	Field      string
	Descending bool
}

// DefaultSort orders by rating, newest first within equal ratings.
func DefaultSort() []SortSpec {
	return []SortSpec{
		{Field: "averageRating", Descending: true},
		{Field: "createdAt", Descending: true},
	}
}

// Stats is the aggregate snapshot produced by the statistics pipeline.
type Stats struct {
	Total     int64
	Approved  int64
	Pending   int64
	Rejected  int64
	Community int64
	Private   int64
	Verified  int64
	Featured  int64
	AvgRating float64
	AvgRooms  float64
	AvgBeds   float64
}
