package stats

import (
	"context"

	"github.com/Paurakh977/HomeStay-MCP/internal/domain/homestay"
)

// Repository produces the aggregate snapshot from storage.
type Repository interface {
	Stats(ctx context.Context) (homestay.Stats, error)
}
