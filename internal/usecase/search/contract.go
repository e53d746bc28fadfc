package search

import (
	"context"

	"github.com/Paurakh977/HomeStay-MCP/internal/domain/homestay"
	"github.com/Paurakh977/HomeStay-MCP/internal/domain/predicate"
)

// Repository defines the storage contract for search operations. Count and
// Find receive the predicate tree; the adapter translates it into its native
// query language preserving AND/OR/Leaf semantics exactly.
type Repository interface {
	Count(ctx context.Context, pred predicate.Node) (int64, error)
	CountAll(ctx context.Context) (int64, error)
	Find(
		ctx context.Context, pred predicate.Node,
		sort []homestay.SortSpec, skip, limit int64,
	) ([]homestay.Summary, error)
}

// Metrics records engine-level counters. Implementations must be safe for
// concurrent use.
type Metrics interface {
	SearchExecuted(relaxed bool)
}
