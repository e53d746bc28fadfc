package mcp

import (
	"context"

	mcpgo "github.com/mark3labs/mcp-go/mcp"

	"github.com/Paurakh977/HomeStay-MCP/internal/domain/intent"
	"github.com/Paurakh977/HomeStay-MCP/internal/domain/predicate"
	"github.com/Paurakh977/HomeStay-MCP/internal/usecase/search"
)

// searchArgs is the wire shape of the search_homestays tool. Pointer fields
// distinguish "not provided" from zero values, matching the intent model.
type searchArgs struct {
	Province     *string `json:"province"`
	District     *string `json:"district"`
	Municipality *string `json:"municipality"`
	Ward         *string `json:"ward"`
	City         *string `json:"city"`
	VillageName  *string `json:"village_name"`

	HomestayName  *string `json:"homestay_name"`
	HomestayType  *string `json:"homestay_type"`
	Status        *string `json:"status"`
	AdminUsername *string `json:"admin_username"`

	MinHomeCount *int `json:"min_home_count"`
	MaxHomeCount *int `json:"max_home_count"`
	MinRoomCount *int `json:"min_room_count"`
	MaxRoomCount *int `json:"max_room_count"`
	MinBedCount  *int `json:"min_bed_count"`
	MaxBedCount  *int `json:"max_bed_count"`
	MinGuests    *int `json:"min_guests"`
	MaxGuests    *int `json:"max_guests"`

	MinRating        *float64 `json:"min_rating"`
	MaxRating        *float64 `json:"max_rating"`
	MinAverageRating *float64 `json:"min_average_rating"`
	MaxAverageRating *float64 `json:"max_average_rating"`
	MinReviewCount   *int     `json:"min_review_count"`

	MinPricePerNight *float64 `json:"min_price_per_night"`
	MaxPricePerNight *float64 `json:"max_price_per_night"`

	MinTeamMembers *int    `json:"min_team_members"`
	OperatorGender *string `json:"operator_gender"`

	LocalAttractions    []string `json:"local_attractions"`
	AnyLocalAttractions []string `json:"any_local_attractions"`
	Infrastructure      []string `json:"infrastructure"`
	AnyInfrastructure   []string `json:"any_infrastructure"`
	TourismServices     []string `json:"tourism_services"`
	AnyTourismServices  []string `json:"any_tourism_services"`

	IsVerified *bool `json:"is_verified"`
	IsFeatured *bool `json:"is_featured"`

	DHSRNo                     *string `json:"dhsr_no"`
	RegistrationAuthority      *string `json:"registration_authority"`
	BusinessRegistrationNumber *string `json:"business_registration_number"`

	Language                   string `json:"language"`
	NaturalLanguageDescription string `json:"natural_language_description"`
	LogicalOperator            string `json:"logical_operator"`

	Skip      int64  `json:"skip"`
	Limit     int64  `json:"limit"`
	SortBy    string `json:"sort_by"`
	SortOrder string `json:"sort_order"`
}

func (a searchArgs) toRequest() search.Request {
	return search.Request{
		Description: a.NaturalLanguageDescription,
		Explicit: intent.Intent{
			Province:     a.Province,
			District:     a.District,
			Municipality: a.Municipality,
			Ward:         a.Ward,
			City:         a.City,
			VillageName:  a.VillageName,

			HomestayName:  a.HomestayName,
			HomestayType:  a.HomestayType,
			Status:        a.Status,
			AdminUsername: a.AdminUsername,

			MinHomeCount: a.MinHomeCount,
			MaxHomeCount: a.MaxHomeCount,
			MinRoomCount: a.MinRoomCount,
			MaxRoomCount: a.MaxRoomCount,
			MinBedCount:  a.MinBedCount,
			MaxBedCount:  a.MaxBedCount,
			MinGuests:    a.MinGuests,
			MaxGuests:    a.MaxGuests,

			MinRating:        a.MinRating,
			MaxRating:        a.MaxRating,
			MinAverageRating: a.MinAverageRating,
			MaxAverageRating: a.MaxAverageRating,
			MinReviewCount:   a.MinReviewCount,

			MinPricePerNight: a.MinPricePerNight,
			MaxPricePerNight: a.MaxPricePerNight,

			MinTeamMembers: a.MinTeamMembers,
			OperatorGender: a.OperatorGender,

			Attractions:    intent.FeatureSet{Must: a.LocalAttractions, Optional: a.AnyLocalAttractions},
			Infrastructure: intent.FeatureSet{Must: a.Infrastructure, Optional: a.AnyInfrastructure},
			Services:       intent.FeatureSet{Must: a.TourismServices, Optional: a.AnyTourismServices},

			IsVerified: a.IsVerified,
			IsFeatured: a.IsFeatured,

			DHSRNo:                     a.DHSRNo,
			RegistrationAuthority:      a.RegistrationAuthority,
			BusinessRegistrationNumber: a.BusinessRegistrationNumber,

			Language: a.Language,
		},
		Operator:       a.LogicalOperator,
		Skip:           a.Skip,
		Limit:          a.Limit,
		SortField:      a.SortBy,
		SortDescending: a.SortOrder != "asc",
	}
}

type searchResponse struct {
	HomestayUsernames []string       `json:"homestay_usernames"`
	HomestayNames     []string       `json:"homestay_names"`
	TotalCount        int64          `json:"total_count"`
	FilteredCount     int64          `json:"filtered_count"`
	AppliedFilter     predicate.Node `json:"applied_filter"`
	Relaxed           bool           `json:"relaxed"`
	Suggestions       []string       `json:"suggestions,omitempty"`
}

func searchTool() mcpgo.Tool {
	stringItems := map[string]any{"type": "string"}
	return mcpgo.NewTool("search_homestays",
		mcpgo.WithDescription(
			"Search homestays by structured filters and/or a free-text description. "+
				"Returns matching homestay identifiers and names, counts, the realized "+
				"filter, and refinement suggestions.",
		),
		mcpgo.WithString("province", mcpgo.Description("Province name, English or Nepali")),
		mcpgo.WithString("district", mcpgo.Description("District name, English or Nepali")),
		mcpgo.WithString("municipality", mcpgo.Description("Municipality name, English or Nepali")),
		mcpgo.WithString("ward", mcpgo.Description("Ward number")),
		mcpgo.WithString("city", mcpgo.Description("City name")),
		mcpgo.WithString("village_name", mcpgo.Description("Village name")),
		mcpgo.WithString("homestay_name", mcpgo.Description("Homestay name, partial match")),
		mcpgo.WithString("homestay_type", mcpgo.Description("Homestay type"), mcpgo.Enum("community", "private")),
		mcpgo.WithString("status", mcpgo.Description("Approval status, defaults to approved"), mcpgo.Enum("pending", "approved", "rejected")),
		mcpgo.WithString("admin_username", mcpgo.Description("Owning admin username")),
		mcpgo.WithNumber("min_home_count", mcpgo.Description("Minimum number of homes")),
		mcpgo.WithNumber("max_home_count", mcpgo.Description("Maximum number of homes")),
		mcpgo.WithNumber("min_room_count", mcpgo.Description("Minimum number of rooms")),
		mcpgo.WithNumber("max_room_count", mcpgo.Description("Maximum number of rooms")),
		mcpgo.WithNumber("min_bed_count", mcpgo.Description("Minimum number of beds")),
		mcpgo.WithNumber("max_bed_count", mcpgo.Description("Maximum number of beds")),
		mcpgo.WithNumber("min_guests", mcpgo.Description("Minimum guest capacity")),
		mcpgo.WithNumber("max_guests", mcpgo.Description("Maximum guest capacity")),
		mcpgo.WithNumber("min_rating", mcpgo.Description("Minimum rating, 0-5")),
		mcpgo.WithNumber("max_rating", mcpgo.Description("Maximum rating, 0-5")),
		mcpgo.WithNumber("min_average_rating", mcpgo.Description("Minimum average review rating, 0-5")),
		mcpgo.WithNumber("max_average_rating", mcpgo.Description("Maximum average review rating, 0-5")),
		mcpgo.WithNumber("min_review_count", mcpgo.Description("Minimum number of reviews")),
		mcpgo.WithNumber("min_price_per_night", mcpgo.Description("Minimum price per night")),
		mcpgo.WithNumber("max_price_per_night", mcpgo.Description("Maximum price per night")),
		mcpgo.WithNumber("min_team_members", mcpgo.Description("Minimum committee member count")),
		mcpgo.WithString("operator_gender", mcpgo.Description("Operator composition"), mcpgo.Enum("male", "female", "mixed")),
		mcpgo.WithArray("local_attractions", mcpgo.Description("Attractions every match must offer"), mcpgo.Items(stringItems)),
		mcpgo.WithArray("any_local_attractions", mcpgo.Description("Attractions where any one match suffices"), mcpgo.Items(stringItems)),
		mcpgo.WithArray("infrastructure", mcpgo.Description("Infrastructure every match must offer"), mcpgo.Items(stringItems)),
		mcpgo.WithArray("any_infrastructure", mcpgo.Description("Infrastructure where any one match suffices"), mcpgo.Items(stringItems)),
		mcpgo.WithArray("tourism_services", mcpgo.Description("Tourism services every match must offer"), mcpgo.Items(stringItems)),
		mcpgo.WithArray("any_tourism_services", mcpgo.Description("Tourism services where any one match suffices"), mcpgo.Items(stringItems)),
		mcpgo.WithBoolean("is_verified", mcpgo.Description("Only verified homestays")),
		mcpgo.WithBoolean("is_featured", mcpgo.Description("Only featured homestays")),
		mcpgo.WithString("dhsr_no", mcpgo.Description("DHSR registration number")),
		mcpgo.WithString("registration_authority", mcpgo.Description("Registration authority")),
		mcpgo.WithString("business_registration_number", mcpgo.Description("Business registration number")),
		mcpgo.WithString("language", mcpgo.Description("Address script preference; empty matches either"), mcpgo.Enum("en", "ne")),
		mcpgo.WithString("natural_language_description", mcpgo.Description("Free-text description of the desired homestay")),
		mcpgo.WithString("logical_operator", mcpgo.Description("How feature filters combine"), mcpgo.Enum("AND", "OR", "MIXED")),
		mcpgo.WithNumber("skip", mcpgo.Description("Number of results to skip")),
		mcpgo.WithNumber("limit", mcpgo.Description("Maximum number of results, defaults to 100")),
		mcpgo.WithString("sort_by", mcpgo.Description("Sort field, defaults to averageRating then createdAt")),
		mcpgo.WithString("sort_order", mcpgo.Description("Sort direction, defaults to desc"), mcpgo.Enum("asc", "desc")),
	)
}

func (s *Server) handleSearch(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	var args searchArgs
	if err := req.BindArguments(&args); err != nil {
		return mcpgo.NewToolResultError("invalid arguments: " + err.Error()), nil
	}

	result, err := s.search.Search(ctx, args.toRequest())
	if err != nil {
		return s.toolError("search_homestays", err), nil
	}

	return jsonResult(searchResponse{
		HomestayUsernames: result.IDs,
		HomestayNames:     result.Names,
		TotalCount:        result.Total,
		FilteredCount:     result.Filtered,
		AppliedFilter:     result.Predicate,
		Relaxed:           result.Relaxed,
		Suggestions:       result.Suggestions,
	})
}
