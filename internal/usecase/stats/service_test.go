package stats

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Paurakh977/HomeStay-MCP/internal/domain"
	"github.com/Paurakh977/HomeStay-MCP/internal/domain/homestay"
)

type repoMock struct {
	stats homestay.Stats
	err   error
}

func (m *repoMock) Stats(context.Context) (homestay.Stats, error) {
	return m.stats, m.err
}

func TestStats(t *testing.T) {
	want := homestay.Stats{Total: 42, Approved: 30, AvgRating: 4.2}
	svc := New(&repoMock{stats: want}, time.Second)

	got, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestStatsTimeout(t *testing.T) {
	svc := New(&repoMock{err: context.DeadlineExceeded}, time.Second)

	_, err := svc.Stats(context.Background())
	if !errors.Is(err, domain.ErrStorageUnavailable) {
		t.Fatalf("timeouts must map to storage unavailable, got %v", err)
	}
}

func TestStatsPropagatesRepoError(t *testing.T) {
	boom := errors.New("boom")
	svc := New(&repoMock{err: boom}, time.Second)

	_, err := svc.Stats(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("repo errors must propagate, got %v", err)
	}
}
