package models

import "strconv"

// baseColumns is the fixed output column order: base fields first, engineered
// features last. Every tabular sink writes exactly this order.
var baseColumns = []string{
	"id", "listing_url", "last_scraped",
	"name", "description", "property_type", "room_type",
	"host_id", "host_name", "host_since", "host_response_time",
	"host_response_rate", "host_acceptance_rate", "host_is_superhost",
	"host_listings_count", "host_identity_verified",
	"street", "neighbourhood", "neighbourhood_cleansed",
	"neighbourhood_group_cleansed", "city", "state", "zipcode",
	"latitude", "longitude", "is_location_exact",
	"accommodates", "bathrooms", "bedrooms", "beds", "bed_type",
	"amenities", "square_feet",
	"price", "weekly_price", "monthly_price", "security_deposit",
	"cleaning_fee", "guests_included", "extra_people",
	"minimum_nights", "maximum_nights", "instant_bookable",
	"cancellation_policy",
	"has_availability", "availability_30", "availability_60",
	"availability_90", "availability_365",
	"number_of_reviews", "first_review", "last_review",
	"review_scores_rating", "review_scores_accuracy",
	"review_scores_cleanliness", "review_scores_checkin",
	"review_scores_communication", "review_scores_location",
	"review_scores_value", "reviews_per_month",
	"price_category", "review_category", "host_category",
	"availability_category", "room_type_simplified",
	"is_professional_host", "has_cleaning_fee", "price_per_guest",
}

// Columns returns the output header. When withSequentialID is set the
// sequential_id column prefixes the base order.
func Columns(withSequentialID bool) []string {
	if !withSequentialID {
		return append([]string(nil), baseColumns...)
	}
	out := make([]string, 0, len(baseColumns)+1)
	out = append(out, "sequential_id")
	return append(out, baseColumns...)
}

// Row renders the record as strings in the same order Columns reports.
func (r *CleanedRecord) Row(withSequentialID bool) []string {
	row := make([]string, 0, len(baseColumns)+1)
	if withSequentialID {
		row = append(row, itoa(r.SequentialID))
	}
	return append(row,
		r.ID, r.ListingURL, r.LastScraped,
		r.Name, r.Description, r.PropertyType, r.RoomType,
		r.HostID, r.HostName, r.HostSince, r.HostResponseTime,
		ftoa(r.HostResponseRate), ftoa(r.HostAcceptanceRate),
		itoa(r.HostIsSuperhost), itoa(r.HostListingsCount),
		itoa(r.HostIdentityVerified),
		r.Street, r.Neighbourhood, r.NeighbourhoodCleansed,
		r.NeighbourhoodGroupCleansed, r.City, r.State, r.Zipcode,
		ftoa(r.Latitude), ftoa(r.Longitude), itoa(r.IsLocationExact),
		itoa(r.Accommodates), ftoa(r.Bathrooms), itoa(r.Bedrooms),
		itoa(r.Beds), r.BedType, itoa(r.Amenities), itoa(r.SquareFeet),
		ftoa(r.Price), ftoa(r.WeeklyPrice), ftoa(r.MonthlyPrice),
		ftoa(r.SecurityDeposit), ftoa(r.CleaningFee),
		itoa(r.GuestsIncluded), ftoa(r.ExtraPeople),
		itoa(r.MinimumNights), itoa(r.MaximumNights),
		itoa(r.InstantBookable), r.CancellationPolicy,
		itoa(r.HasAvailability), itoa(r.Availability30),
		itoa(r.Availability60), itoa(r.Availability90),
		itoa(r.Availability365),
		itoa(r.NumberOfReviews), r.FirstReview, r.LastReview,
		ftoa(r.ReviewScoresRating), ftoa(r.ReviewScoresAccuracy),
		ftoa(r.ReviewScoresCleanliness), ftoa(r.ReviewScoresCheckin),
		ftoa(r.ReviewScoresCommunication), ftoa(r.ReviewScoresLocation),
		ftoa(r.ReviewScoresValue), ftoa(r.ReviewsPerMonth),
		r.PriceCategory, r.ReviewCategory, r.HostCategory,
		r.AvailabilityCategory, r.RoomTypeSimplified,
		itoa(r.IsProfessionalHost), itoa(r.HasCleaningFee),
		ftoa(r.PricePerGuest),
	)
}

func itoa(v int) string { return strconv.Itoa(v) }

func ftoa(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
