package services

import "strings"

// Categorizers map already-normalized values onto fixed analytics buckets.
// Bucket boundaries are inclusive on the lower bound (< upper bound).

// PriceCategory buckets a nightly price.
func PriceCategory(price float64) string {
	switch {
	case price <= 0:
		return "unknown"
	case price < 75:
		return "budget"
	case price < 150:
		return "moderate"
	case price < 300:
		return "expensive"
	default:
		return "luxury"
	}
}

// ReviewCategory buckets a review count.
func ReviewCategory(count int) string {
	switch {
	case count == 0:
		return "no_reviews"
	case count < 5:
		return "few"
	case count < 20:
		return "moderate"
	case count < 50:
		return "many"
	default:
		return "very_popular"
	}
}

// HostCategory grades a host: superhosts outrank everything, otherwise the
// response rate decides.
func HostCategory(isSuperhost int, responseRate float64) string {
	switch {
	case isSuperhost != 0:
		return "superhost"
	case responseRate >= 90:
		return "responsive"
	case responseRate >= 50:
		return "moderate"
	default:
		return "low_response"
	}
}

// AvailabilityCategory buckets days available per year.
func AvailabilityCategory(days int) string {
	switch {
	case days == 0:
		return "not_available"
	case days < 30:
		return "rarely_available"
	case days < 180:
		return "occasionally_available"
	case days < 300:
		return "mostly_available"
	default:
		return "highly_available"
	}
}

// SimplifyRoomType collapses free-form room types into four labels by
// case-insensitive substring match. aptIsEntire additionally maps "apt"
// to Entire (variant behavior).
func SimplifyRoomType(roomType string, aptIsEntire bool) string {
	if roomType == "" {
		return "Other"
	}
	lower := strings.ToLower(roomType)
	switch {
	case strings.Contains(lower, "entire"),
		aptIsEntire && strings.Contains(lower, "apt"):
		return "Entire"
	case strings.Contains(lower, "private"):
		return "Private"
	case strings.Contains(lower, "shared"):
		return "Shared"
	}
	return "Other"
}
