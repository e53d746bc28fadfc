package query

import "github.com/Paurakh977/HomeStay-MCP/internal/domain/feature"

// Schema maps logical filter fields to document field paths. Paths are
// configurable so a collection with a different shape can be served without
// touching the builder; bilingual bases get a ".en"/".ne" suffix appended at
// build time.
type Schema struct {
	Attractions     string `yaml:"attractions"`
	Infrastructure  string `yaml:"infrastructure"`
	TourismServices string `yaml:"tourism_services"`

	Province     string `yaml:"province"`
	District     string `yaml:"district"`
	Municipality string `yaml:"municipality"`
	Ward         string `yaml:"ward"`
	City         string `yaml:"city"`
	VillageName  string `yaml:"village_name"`

	HomestayName  string `yaml:"homestay_name"`
	HomestayType  string `yaml:"homestay_type"`
	Status        string `yaml:"status"`
	AdminUsername string `yaml:"admin_username"`

	HomeCount string `yaml:"home_count"`
	RoomCount string `yaml:"room_count"`
	BedCount  string `yaml:"bed_count"`
	MaxGuests string `yaml:"max_guests"`

	Rating        string `yaml:"rating"`
	AverageRating string `yaml:"average_rating"`
	ReviewCount   string `yaml:"review_count"`
	PricePerNight string `yaml:"price_per_night"`

	TeamMemberCount string `yaml:"team_member_count"`
	OperatorGender  string `yaml:"operator_gender"`

	IsVerified string `yaml:"is_verified"`
	IsFeatured string `yaml:"is_featured"`

	DHSRNo                     string `yaml:"dhsr_no"`
	RegistrationAuthority      string `yaml:"registration_authority"`
	BusinessRegistrationNumber string `yaml:"business_registration_number"`
}

// DefaultSchema returns the field paths of the homestay collection.
func DefaultSchema() Schema {
	return Schema{
		Attractions:     "features.localAttractions",
		Infrastructure:  "features.infrastructure",
		TourismServices: "features.tourismServices",

		Province:     "address.province",
		District:     "address.district",
		Municipality: "address.municipality",
		Ward:         "address.ward",
		City:         "address.city",
		VillageName:  "villageName",

		HomestayName:  "homeStayName",
		HomestayType:  "homeStayType",
		Status:        "status",
		AdminUsername: "adminUsername",

		HomeCount: "homeCount",
		RoomCount: "roomCount",
		BedCount:  "bedCount",
		MaxGuests: "maxGuests",

		Rating:        "rating",
		AverageRating: "averageRating",
		ReviewCount:   "reviewCount",
		PricePerNight: "pricePerNight",

		TeamMemberCount: "committeeMemberCount",
		OperatorGender:  "operatorGender",

		IsVerified: "isVerified",
		IsFeatured: "isFeatured",

		DHSRNo:                     "dhsrNo",
		RegistrationAuthority:      "registrationAuthority",
		BusinessRegistrationNumber: "businessRegistrationNumber",
	}
}

// ApplyDefaults fills unset paths from DefaultSchema so partial config
// overrides stay cheap.
func (s *Schema) ApplyDefaults() {
	def := DefaultSchema()
	fill := func(dst *string, fallback string) {
		if *dst == "" {
			*dst = fallback
		}
	}
	fill(&s.Attractions, def.Attractions)
	fill(&s.Infrastructure, def.Infrastructure)
	fill(&s.TourismServices, def.TourismServices)
	fill(&s.Province, def.Province)
	fill(&s.District, def.District)
	fill(&s.Municipality, def.Municipality)
	fill(&s.Ward, def.Ward)
	fill(&s.City, def.City)
	fill(&s.VillageName, def.VillageName)
	fill(&s.HomestayName, def.HomestayName)
	fill(&s.HomestayType, def.HomestayType)
	fill(&s.Status, def.Status)
	fill(&s.AdminUsername, def.AdminUsername)
	fill(&s.HomeCount, def.HomeCount)
	fill(&s.RoomCount, def.RoomCount)
	fill(&s.BedCount, def.BedCount)
	fill(&s.MaxGuests, def.MaxGuests)
	fill(&s.Rating, def.Rating)
	fill(&s.AverageRating, def.AverageRating)
	fill(&s.ReviewCount, def.ReviewCount)
	fill(&s.PricePerNight, def.PricePerNight)
	fill(&s.TeamMemberCount, def.TeamMemberCount)
	fill(&s.OperatorGender, def.OperatorGender)
	fill(&s.IsVerified, def.IsVerified)
	fill(&s.IsFeatured, def.IsFeatured)
	fill(&s.DHSRNo, def.DHSRNo)
	fill(&s.RegistrationAuthority, def.RegistrationAuthority)
	fill(&s.BusinessRegistrationNumber, def.BusinessRegistrationNumber)
}

// FeatureField maps a feature category to its array field path.
func (s Schema) FeatureField(c feature.Category) string {
	switch c {
	case feature.CategoryAttraction:
		return s.Attractions
	case feature.CategoryInfrastructure:
		return s.Infrastructure
	case feature.CategoryService:
		return s.TourismServices
	}
	return ""
}
