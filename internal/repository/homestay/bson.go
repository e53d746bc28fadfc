package homestay

import (
	"regexp"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Paurakh977/HomeStay-MCP/internal/domain/homestay"
	"github.com/Paurakh977/HomeStay-MCP/internal/domain/predicate"
)

// bsonFilter lowers a predicate tree into a Mongo filter document. Pattern
// leaves become case-insensitive regexes with the pattern text quoted, so
// user input can never inject regex metacharacters.
func bsonFilter(n predicate.Node) bson.D {
	if !n.True() {
		return bson.D{}
	}
	switch n.Kind() {
	case predicate.KindLeaf:
		return bson.D{{Key: n.Field(), Value: leafValue(n)}}
	case predicate.KindAnd:
		return compositeFilter("$and", n.Children())
	case predicate.KindOr:
		return compositeFilter("$or", n.Children())
	}
	return bson.D{}
}

func compositeFilter(op string, children []predicate.Node) bson.D {
	parts := make(bson.A, 0, len(children))
	for _, c := range children {
		parts = append(parts, bsonFilter(c))
	}
	return bson.D{{Key: op, Value: parts}}
}

func leafValue(n predicate.Node) any {
	if r := n.NumRange(); r != nil {
		rng := bson.D{}
		if r.GTE != nil {
			rng = append(rng, bson.E{Key: "$gte", Value: *r.GTE})
		}
		if r.LTE != nil {
			rng = append(rng, bson.E{Key: "$lte", Value: *r.LTE})
		}
		return rng
	}
	if v, ok := n.ExactValue(); ok {
		return v
	}
	return bson.D{
		{Key: "$regex", Value: regexp.QuoteMeta(n.Pattern())},
		{Key: "$options", Value: "i"},
	}
}

// bsonSort lowers sort specs into a Mongo sort document.
func bsonSort(specs []homestay.SortSpec) bson.D {
	sort := make(bson.D, 0, len(specs))
	for _, s := range specs {
		dir := 1
		if s.Descending {
			dir = -1
		}
		sort = append(sort, bson.E{Key: s.Field, Value: dir})
	}
	return sort
}
