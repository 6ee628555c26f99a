package models

import "time"

// RawRecord is one unvalidated input row keyed by header column name.
// A column missing from the row is simply absent from the map.
type RawRecord map[string]string

// Get returns the raw value for a column, or "" when absent.
func (r RawRecord) Get(name string) string {
	return r[name]
}

// Has reports whether the column was present in the input row.
func (r RawRecord) Has(name string) bool {
	_, ok := r[name]
	return ok
}

// Clone returns an independent copy of the record.
func (r RawRecord) Clone() RawRecord {
	out := make(RawRecord, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// CleanedRecord is the fully normalized, feature-enriched output row.
// Boolean fields are stored as 0/1 to match the warehouse schema.
type CleanedRecord struct {
	// Core identifiers
	ID          string
	ListingURL  string
	LastScraped string

	// Property details
	Name         string
	Description  string
	PropertyType string
	RoomType     string

	// Host information
	HostID               string
	HostName             string
	HostSince            string
	HostResponseTime     string
	HostResponseRate     float64
	HostAcceptanceRate   float64
	HostIsSuperhost      int
	HostListingsCount    int
	HostIdentityVerified int

	// Location
	Street                     string
	Neighbourhood              string
	NeighbourhoodCleansed      string
	NeighbourhoodGroupCleansed string
	City                       string
	State                      string
	Zipcode                    string
	Latitude                   float64
	Longitude                  float64
	IsLocationExact            int

	// Capacity and amenities
	Accommodates int
	Bathrooms    float64
	Bedrooms     int
	Beds         int
	BedType      string
	Amenities    int
	SquareFeet   int

	// Pricing
	Price           float64
	WeeklyPrice     float64
	MonthlyPrice    float64
	SecurityDeposit float64
	CleaningFee     float64
	GuestsIncluded  int
	ExtraPeople     float64

	// Booking rules
	MinimumNights      int
	MaximumNights      int
	InstantBookable    int
	CancellationPolicy string

	// Availability
	HasAvailability int
	Availability30  int
	Availability60  int
	Availability90  int
	Availability365 int

	// Reviews
	NumberOfReviews           int
	FirstReview               string
	LastReview                string
	ReviewScoresRating        float64
	ReviewScoresAccuracy      float64
	ReviewScoresCleanliness   float64
	ReviewScoresCheckin       float64
	ReviewScoresCommunication float64
	ReviewScoresLocation      float64
	ReviewScoresValue         float64
	ReviewsPerMonth           float64

	// Engineered features
	PriceCategory        string
	ReviewCategory       string
	HostCategory         string
	AvailabilityCategory string
	RoomTypeSimplified   string
	IsProfessionalHost   int
	HasCleaningFee       int
	PricePerGuest        float64

	// Assigned by the optional sort stage, 1-based. Zero when disabled.
	SequentialID int
}

// PipelineResult aggregates one pipeline invocation: the accepted records in
// output order plus the run counters. Read-only after the driver returns.
type PipelineResult struct {
	Records  []*CleanedRecord
	Raw      int
	Accepted int
	Rejected int
	Errored  int
	Elapsed  time.Duration
}

// NeighbourhoodStat is one row of the per-neighbourhood breakdown.
type NeighbourhoodStat struct {
	Neighbourhood string
	Listings      int
	AvgPrice      float64
	AvgRating     float64
}

// CategoryStat is one row of a categorical breakdown (price category or
// simplified room type).
type CategoryStat struct {
	Category  string
	Listings  int
	AvgPrice  float64
	AvgRating float64
}

// InsightReport holds the summary metrics computed over the accepted set.
type InsightReport struct {
	TotalListings        int
	AvgPrice             float64
	AvgReviewScore       float64
	SuperhostCount       int
	InstantBookableCount int
	TopNeighbourhoods    []NeighbourhoodStat
	ByPriceCategory      []CategoryStat
	ByRoomType           []CategoryStat
}
