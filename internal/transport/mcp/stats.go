package mcp

import (
	"context"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
)

type statsResponse struct {
	TotalHomestays     int64   `json:"total_homestays"`
	ApprovedHomestays  int64   `json:"approved_homestays"`
	PendingHomestays   int64   `json:"pending_homestays"`
	RejectedHomestays  int64   `json:"rejected_homestays"`
	CommunityHomestays int64   `json:"community_homestays"`
	PrivateHomestays   int64   `json:"private_homestays"`
	VerifiedHomestays  int64   `json:"verified_homestays"`
	FeaturedHomestays  int64   `json:"featured_homestays"`
	AvgRating          float64 `json:"avg_rating"`
	AvgRooms           float64 `json:"avg_rooms"`
	AvgBeds            float64 `json:"avg_beds"`
}

func statsTool() mcpgo.Tool {
	return mcpgo.NewTool("get_homestay_statistics",
		mcpgo.WithDescription(
			"Get aggregate statistics about homestays: totals, counts by status, "+
				"type, verification and featured flags, and average rating, rooms, "+
				"and beds.",
		),
	)
}

func (s *Server) handleStats(ctx context.Context, _ mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	snapshot, err := s.stats.Stats(ctx)
	if err != nil {
		return s.toolError("get_homestay_statistics", err), nil
	}

	return jsonResult(statsResponse{
		TotalHomestays:     snapshot.Total,
		ApprovedHomestays:  snapshot.Approved,
		PendingHomestays:   snapshot.Pending,
		RejectedHomestays:  snapshot.Rejected,
		CommunityHomestays: snapshot.Community,
		PrivateHomestays:   snapshot.Private,
		VerifiedHomestays:  snapshot.Verified,
		FeaturedHomestays:  snapshot.Featured,
		AvgRating:          snapshot.AvgRating,
		AvgRooms:           snapshot.AvgRooms,
		AvgBeds:            snapshot.AvgBeds,
	})
}
