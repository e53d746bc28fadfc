package mcp

import (
	"context"

	"github.com/Paurakh977/HomeStay-MCP/internal/domain/homestay"
	"github.com/Paurakh977/HomeStay-MCP/internal/transport/officer"
	"github.com/Paurakh977/HomeStay-MCP/internal/usecase/search"
)

// Searcher runs the filter-resolution pipeline.
type Searcher interface {
	Search(ctx context.Context, req search.Request) (search.Result, error)
}

// StatsProvider serves the aggregate homestay snapshot.
type StatsProvider interface {
	Stats(ctx context.Context) (homestay.Stats, error)
}

// OfficerAPI proxies officer administration to the upstream admin API.
type OfficerAPI interface {
	Create(ctx context.Context, data officer.CreateOfficer, adminUsername, authToken string) (officer.Officer, error)
	List(ctx context.Context, adminUsername, authToken string) ([]officer.Officer, error)
	UpdateStatus(ctx context.Context, officerID string, isActive bool, adminUsername, authToken string) (string, error)
	Delete(ctx context.Context, officerID, adminUsername, authToken string) (string, error)
	UpdatePermissions(ctx context.Context, officerID string, permissions map[string]bool, adminUsername, authToken string) (officer.Officer, error)
}
