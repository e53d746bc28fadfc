// Package homestay implements the storage contract over the Mongo homestay
// collection, translating predicate trees into native filter documents.
package homestay

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/Paurakh977/HomeStay-MCP/internal/domain"
	domhs "github.com/Paurakh977/HomeStay-MCP/internal/domain/homestay"
	"github.com/Paurakh977/HomeStay-MCP/internal/domain/predicate"
)

// Repository reads the homestay collection.
type Repository struct {
	coll *mongo.Collection
}

// New creates a homestay repository over a collection handle.
func New(coll *mongo.Collection) *Repository {
	return &Repository{coll: coll}
}

// Count returns the number of documents matching the predicate.
func (r *Repository) Count(ctx context.Context, pred predicate.Node) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bsonFilter(pred))
	if err != nil {
		return 0, storageErr("count documents", err)
	}
	return n, nil
}

// CountAll returns the total number of documents in the collection.
func (r *Repository) CountAll(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, storageErr("count all documents", err)
	}
	return n, nil
}

type summaryDoc struct {
	ID   string `bson:"homestayId"`
	Name string `bson:"homeStayName"`
}

// Find returns the projected summaries of matching documents.
func (r *Repository) Find(
	ctx context.Context, pred predicate.Node,
	sort []domhs.SortSpec, skip, limit int64,
) ([]domhs.Summary, error) {
	opts := options.Find().
		SetProjection(bson.D{
			{Key: "homestayId", Value: 1},
			{Key: "homeStayName", Value: 1},
			{Key: "_id", Value: 0},
		}).
		SetSort(bsonSort(sort)).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, bsonFilter(pred), opts)
	if err != nil {
		return nil, storageErr("find documents", err)
	}
	defer cursor.Close(ctx)

	var docs []summaryDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, storageErr("decode documents", err)
	}

	out := make([]domhs.Summary, 0, len(docs))
	for _, d := range docs {
		if d.ID == "" {
			continue
		}
		out = append(out, domhs.Summary{ID: d.ID, Name: d.Name})
	}
	return out, nil
}

type statsDoc struct {
	Total     int64   `bson:"total_homestays"`
	Approved  int64   `bson:"approved_homestays"`
	Pending   int64   `bson:"pending_homestays"`
	Rejected  int64   `bson:"rejected_homestays"`
	Community int64   `bson:"community_homestays"`
	Private   int64   `bson:"private_homestays"`
	Verified  int64   `bson:"verified_homestays"`
	Featured  int64   `bson:"featured_homestays"`
	AvgRating float64 `bson:"avg_rating"`
	AvgRooms  float64 `bson:"avg_rooms"`
	AvgBeds   float64 `bson:"avg_beds"`
}

// Stats runs the aggregate snapshot over the whole collection.
func (r *Repository) Stats(ctx context.Context) (domhs.Stats, error) {
	count := func(cond bson.D) bson.D {
		return bson.D{{Key: "$sum", Value: bson.D{{Key: "$cond", Value: bson.A{cond, 1, 0}}}}}
	}
	eq := func(field string, value any) bson.D {
		return bson.D{{Key: "$eq", Value: bson.A{field, value}}}
	}

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total_homestays", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "approved_homestays", Value: count(eq("$status", "approved"))},
			{Key: "pending_homestays", Value: count(eq("$status", "pending"))},
			{Key: "rejected_homestays", Value: count(eq("$status", "rejected"))},
			{Key: "community_homestays", Value: count(eq("$homeStayType", "community"))},
			{Key: "private_homestays", Value: count(eq("$homeStayType", "private"))},
			{Key: "verified_homestays", Value: count(eq("$isVerified", true))},
			{Key: "featured_homestays", Value: count(eq("$isFeatured", true))},
			{Key: "avg_rating", Value: bson.D{{Key: "$avg", Value: "$averageRating"}}},
			{Key: "avg_rooms", Value: bson.D{{Key: "$avg", Value: "$roomCount"}}},
			{Key: "avg_beds", Value: bson.D{{Key: "$avg", Value: "$bedCount"}}},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return domhs.Stats{}, storageErr("aggregate stats", err)
	}
	defer cursor.Close(ctx)

	var docs []statsDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return domhs.Stats{}, storageErr("decode stats", err)
	}
	if len(docs) == 0 {
		return domhs.Stats{}, nil
	}

	d := docs[0]
	return domhs.Stats{
		Total:     d.Total,
		Approved:  d.Approved,
		Pending:   d.Pending,
		Rejected:  d.Rejected,
		Community: d.Community,
		Private:   d.Private,
		Verified:  d.Verified,
		Featured:  d.Featured,
		AvgRating: d.AvgRating,
		AvgRooms:  d.AvgRooms,
		AvgBeds:   d.AvgBeds,
	}, nil
}

// storageErr classifies driver failures: connectivity problems become the
// storage-unavailable category, everything else keeps its operation context.
func storageErr(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, mongo.ErrClientDisconnected) ||
		mongo.IsTimeout(err) ||
		mongo.IsNetworkError(err) {
		return fmt.Errorf("%w: %s: %v", domain.ErrStorageUnavailable, op, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
