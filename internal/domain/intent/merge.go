package intent

// Merge combines the caller's explicit fields with an extracted intent.
// Explicit values always win, including an explicitly cleared (empty but
// non-nil) feature list; extraction only fills gaps. Merge is idempotent:
// Merge(Merge(e, x), x) == Merge(e, x).
//
// The operator follows the same rule. The extractor only sets an operator
// when the text carried a real disjunction cue, so an extracted operator
// beats the generic default but never a caller-supplied override.
func Merge(explicit, extracted Intent) Intent {
	out := explicit

	out.Province = mergeString(explicit.Province, extracted.Province)
	out.District = mergeString(explicit.District, extracted.District)
	out.Municipality = mergeString(explicit.Municipality, extracted.Municipality)
	out.Ward = mergeString(explicit.Ward, extracted.Ward)
	out.City = mergeString(explicit.City, extracted.City)
	out.VillageName = mergeString(explicit.VillageName, extracted.VillageName)

	out.HomestayName = mergeString(explicit.HomestayName, extracted.HomestayName)
	out.HomestayType = mergeString(explicit.HomestayType, extracted.HomestayType)
	out.Status = mergeString(explicit.Status, extracted.Status)
	out.AdminUsername = mergeString(explicit.AdminUsername, extracted.AdminUsername)

	out.MinHomeCount = mergeInt(explicit.MinHomeCount, extracted.MinHomeCount)
	out.MaxHomeCount = mergeInt(explicit.MaxHomeCount, extracted.MaxHomeCount)
	out.MinRoomCount = mergeInt(explicit.MinRoomCount, extracted.MinRoomCount)
	out.MaxRoomCount = mergeInt(explicit.MaxRoomCount, extracted.MaxRoomCount)
	out.MinBedCount = mergeInt(explicit.MinBedCount, extracted.MinBedCount)
	out.MaxBedCount = mergeInt(explicit.MaxBedCount, extracted.MaxBedCount)
	out.MinGuests = mergeInt(explicit.MinGuests, extracted.MinGuests)
	out.MaxGuests = mergeInt(explicit.MaxGuests, extracted.MaxGuests)

	out.MinRating = mergeFloat(explicit.MinRating, extracted.MinRating)
	out.MaxRating = mergeFloat(explicit.MaxRating, extracted.MaxRating)
	out.MinAverageRating = mergeFloat(explicit.MinAverageRating, extracted.MinAverageRating)
	out.MaxAverageRating = mergeFloat(explicit.MaxAverageRating, extracted.MaxAverageRating)
	out.MinReviewCount = mergeInt(explicit.MinReviewCount, extracted.MinReviewCount)

	out.MinPricePerNight = mergeFloat(explicit.MinPricePerNight, extracted.MinPricePerNight)
	out.MaxPricePerNight = mergeFloat(explicit.MaxPricePerNight, extracted.MaxPricePerNight)

	out.MinTeamMembers = mergeInt(explicit.MinTeamMembers, extracted.MinTeamMembers)
	out.OperatorGender = mergeString(explicit.OperatorGender, extracted.OperatorGender)

	out.Attractions = mergeFeatureSet(explicit.Attractions, extracted.Attractions)
	out.Infrastructure = mergeFeatureSet(explicit.Infrastructure, extracted.Infrastructure)
	out.Services = mergeFeatureSet(explicit.Services, extracted.Services)

	out.IsVerified = mergeBool(explicit.IsVerified, extracted.IsVerified)
	out.IsFeatured = mergeBool(explicit.IsFeatured, extracted.IsFeatured)

	out.DHSRNo = mergeString(explicit.DHSRNo, extracted.DHSRNo)
	out.RegistrationAuthority = mergeString(explicit.RegistrationAuthority, extracted.RegistrationAuthority)
	out.BusinessRegistrationNumber = mergeString(explicit.BusinessRegistrationNumber, extracted.BusinessRegistrationNumber)

	if out.Language == "" {
		out.Language = extracted.Language
	}
	if explicit.Operator != nil {
		out.Operator = explicit.Operator
	} else {
		out.Operator = extracted.Operator
	}

	return out
}

func mergeString(explicit, extracted *string) *string {
	if explicit != nil {
		return explicit
	}
	return extracted
}

func mergeInt(explicit, extracted *int) *int {
	if explicit != nil {
		return explicit
	}
	return extracted
}

func mergeFloat(explicit, extracted *float64) *float64 {
	if explicit != nil {
		return explicit
	}
	return extracted
}

func mergeBool(explicit, extracted *bool) *bool {
	if explicit != nil {
		return explicit
	}
	return extracted
}

func mergeFeatureSet(explicit, extracted FeatureSet) FeatureSet {
	out := explicit
	if out.Must == nil {
		out.Must = extracted.Must
	}
	if out.Optional == nil {
		out.Optional = extracted.Optional
	}
	return out
}
