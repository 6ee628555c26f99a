package services

import (
	"fmt"
	"strings"

	"airbnb-etl/config"
	"airbnb-etl/models"
)

// Outcome tags the result of transforming one raw row.
type Outcome int

const (
	// OutcomeAccepted means the row produced a CleanedRecord.
	OutcomeAccepted Outcome = iota
	// OutcomeRejected means the row failed pre-validation and was dropped.
	OutcomeRejected
	// OutcomeErrored means an unexpected failure occurred mid-transform.
	OutcomeErrored
)

// Transformer turns one RawRecord into one CleanedRecord, applying the
// configured validation bounds, per-field defaults and text limits, and
// computing the engineered features. It never fails a batch: the outcome tag
// tells the driver what happened to each row.
type Transformer struct {
	rules *config.TransformRules
}

// NewTransformer creates a Transformer with the given rule set.
func NewTransformer(rules *config.TransformRules) *Transformer {
	return &Transformer{rules: rules}
}

// Transform produces a CleanedRecord for an accepted row, or a Rejected or
// Errored outcome for a dropped one. Unexpected panics during assembly are
// recovered at the row boundary so one malformed row never aborts the batch.
func (t *Transformer) Transform(raw models.RawRecord) (rec *models.CleanedRecord, outcome Outcome, err error) {
	defer func() {
		if r := recover(); r != nil {
			rec = nil
			outcome = OutcomeErrored
			err = fmt.Errorf("transform row: %v", r)
		}
	}()

	id := strings.TrimSpace(raw.Get("id"))
	name := strings.TrimSpace(raw.Get("name"))

	// Blank trailing rows carry neither id nor name.
	if id == "" && name == "" {
		return nil, OutcomeRejected, nil
	}

	price := ParsePrice(t.field(raw, "price"))
	if price <= 0 || price > t.rules.MaxPrice {
		return nil, OutcomeRejected, nil
	}

	if id == "" {
		return nil, OutcomeRejected, nil
	}

	rec = &models.CleanedRecord{
		ID:          id,
		ListingURL:  t.field(raw, "listing_url"),
		LastScraped: t.field(raw, "last_scraped"),

		Name:         t.text(raw, "name"),
		Description:  t.text(raw, "description"),
		PropertyType: t.field(raw, "property_type"),
		RoomType:     t.field(raw, "room_type"),

		HostID:               strings.TrimSpace(t.field(raw, "host_id")),
		HostName:             t.text(raw, "host_name"),
		HostSince:            t.date(raw, "host_since"),
		HostResponseTime:     t.field(raw, "host_response_time"),
		HostResponseRate:     ParsePercentage(t.field(raw, "host_response_rate")),
		HostAcceptanceRate:   ParsePercentage(t.field(raw, "host_acceptance_rate")),
		HostIsSuperhost:      ParseBool(t.field(raw, "host_is_superhost")),
		HostListingsCount:    ParseInt(t.field(raw, "host_listings_count")),
		HostIdentityVerified: ParseBool(t.field(raw, "host_identity_verified")),

		Street:                     t.text(raw, "street"),
		Neighbourhood:              strings.TrimSpace(t.field(raw, "neighbourhood")),
		NeighbourhoodCleansed:      strings.TrimSpace(t.field(raw, "neighbourhood_cleansed")),
		NeighbourhoodGroupCleansed: strings.TrimSpace(t.field(raw, "neighbourhood_group_cleansed")),
		City:                       strings.TrimSpace(t.field(raw, "city")),
		State:                      strings.TrimSpace(t.field(raw, "state")),
		Zipcode:                    strings.TrimSpace(t.field(raw, "zipcode")),
		Latitude:                   ParseFloat(t.field(raw, "latitude")),
		Longitude:                  ParseFloat(t.field(raw, "longitude")),
		IsLocationExact:            ParseBool(t.field(raw, "is_location_exact")),

		Accommodates: ParseInt(t.field(raw, "accommodates")),
		Bathrooms:    ParseFloat(t.field(raw, "bathrooms")),
		Bedrooms:     ParseInt(t.field(raw, "bedrooms")),
		Beds:         ParseInt(t.field(raw, "beds")),
		BedType:      t.field(raw, "bed_type"),
		Amenities:    CountAmenities(t.field(raw, "amenities")),
		SquareFeet:   ParseInt(t.field(raw, "square_feet")),

		Price:           price,
		WeeklyPrice:     ParsePrice(t.field(raw, "weekly_price")),
		MonthlyPrice:    ParsePrice(t.field(raw, "monthly_price")),
		SecurityDeposit: ParsePrice(t.field(raw, "security_deposit")),
		CleaningFee:     ParsePrice(t.field(raw, "cleaning_fee")),
		GuestsIncluded:  ParseInt(t.field(raw, "guests_included")),
		ExtraPeople:     ParsePrice(t.field(raw, "extra_people")),

		MinimumNights:      ParseInt(t.field(raw, "minimum_nights")),
		MaximumNights:      ParseInt(t.field(raw, "maximum_nights")),
		InstantBookable:    ParseBool(t.field(raw, "instant_bookable")),
		CancellationPolicy: t.field(raw, "cancellation_policy"),

		HasAvailability: ParseBool(t.field(raw, "has_availability")),
		Availability30:  ParseInt(t.field(raw, "availability_30")),
		Availability60:  ParseInt(t.field(raw, "availability_60")),
		Availability90:  ParseInt(t.field(raw, "availability_90")),
		Availability365: ParseInt(t.field(raw, "availability_365")),

		NumberOfReviews:           ParseInt(t.field(raw, "number_of_reviews")),
		FirstReview:               t.date(raw, "first_review"),
		LastReview:                t.date(raw, "last_review"),
		ReviewScoresRating:        ParseFloat(t.field(raw, "review_scores_rating")),
		ReviewScoresAccuracy:      ParseFloat(t.field(raw, "review_scores_accuracy")),
		ReviewScoresCleanliness:   ParseFloat(t.field(raw, "review_scores_cleanliness")),
		ReviewScoresCheckin:       ParseFloat(t.field(raw, "review_scores_checkin")),
		ReviewScoresCommunication: ParseFloat(t.field(raw, "review_scores_communication")),
		ReviewScoresLocation:      ParseFloat(t.field(raw, "review_scores_location")),
		ReviewScoresValue:         ParseFloat(t.field(raw, "review_scores_value")),
		ReviewsPerMonth:           ParseFloat(t.field(raw, "reviews_per_month")),
	}

	// Engineered features, all computed from the normalized fields above.
	rec.PriceCategory = PriceCategory(rec.Price)
	rec.ReviewCategory = ReviewCategory(rec.NumberOfReviews)
	rec.HostCategory = HostCategory(rec.HostIsSuperhost, rec.HostResponseRate)
	rec.AvailabilityCategory = AvailabilityCategory(rec.Availability365)
	rec.RoomTypeSimplified = SimplifyRoomType(t.field(raw, "room_type"), t.rules.AptIsEntire)
	if rec.HostListingsCount > t.rules.ProfessionalThreshold {
		rec.IsProfessionalHost = 1
	}
	if rec.CleaningFee > 0 {
		rec.HasCleaningFee = 1
	}

	guests := rec.Accommodates
	if guests < 1 {
		guests = 1 // guard against division by zero
	}
	rec.PricePerGuest = round2(rec.Price / float64(guests))

	return rec, OutcomeAccepted, nil
}

// field returns the raw column value, or the configured default when the
// column is absent from the row. An empty value in a present column is kept.
func (t *Transformer) field(raw models.RawRecord, name string) string {
	if raw.Has(name) {
		return raw.Get(name)
	}
	return t.rules.Default(name)
}

func (t *Transformer) text(raw models.RawRecord, name string) string {
	return CleanText(t.field(raw, name), t.rules.TextLimit(name))
}

func (t *Transformer) date(raw models.RawRecord, name string) string {
	return NormalizeDate(t.field(raw, name), t.rules.DateFormats)
}
