package feature

// Category is one of the three independent feature groups tracked on each
// homestay record.
type Category string

const (
	// CategoryAttraction covers local attractions (trekking routes, lakes, temples).
	CategoryAttraction Category = "attraction"
	// CategoryInfrastructure covers physical infrastructure (wifi, roads, water).
	CategoryInfrastructure Category = "infrastructure"
	// CategoryService covers tourism services (guides, cultural programs).
	CategoryService Category = "service"
)

// Categories returns all categories in a fixed order.
func Categories() []Category {
	return []Category{CategoryAttraction, CategoryInfrastructure, CategoryService}
}

// IsValid reports whether c is a known category.
func (c Category) IsValid() bool {
	switch c {
	case CategoryAttraction, CategoryInfrastructure, CategoryService:
		return true
	}
	return false
}
