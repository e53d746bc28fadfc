// Package stats serves the collection-wide homestay statistics snapshot.
package stats

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Paurakh977/HomeStay-MCP/internal/domain"
	"github.com/Paurakh977/HomeStay-MCP/internal/domain/homestay"
)

// Service computes homestay statistics.
type Service struct {
	repo    Repository
	timeout time.Duration
}

// New creates a stats service.
func New(repo Repository, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Service{repo: repo, timeout: timeout}
}

// Stats returns the aggregate snapshot.
func (s *Service) Stats(ctx context.Context) (homestay.Stats, error) {
	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	snapshot, err := s.repo.Stats(cctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return homestay.Stats{}, fmt.Errorf("%w: stats timed out", domain.ErrStorageUnavailable)
		}
		return homestay.Stats{}, fmt.Errorf("aggregate stats: %w", err)
	}
	return snapshot, nil
}
