package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TransformRules parameterizes the record transformer: per-field text length
// limits, per-field defaults applied when a raw column is absent, the price
// acceptance bounds, and the variant toggles. Loaded from an optional YAML
// file; any key left unset keeps its default.
type TransformRules struct {
	MaxPrice              float64           `yaml:"max_price"`
	ProfessionalThreshold int               `yaml:"professional_threshold"`
	TextLimits            map[string]int    `yaml:"text_limits"`
	Defaults              map[string]string `yaml:"defaults"`
	DateFormats           []string          `yaml:"date_formats"`

	// AptIsEntire makes the room-type simplifier treat "apt" as Entire,
	// in addition to "entire".
	AptIsEntire bool `yaml:"apt_is_entire"`
}

// DefaultRules returns the rule set of the base transform variant.
func DefaultRules() *TransformRules {
	return &TransformRules{
		MaxPrice:              10000,
		ProfessionalThreshold: 3,
		TextLimits: map[string]int{
			"name":        200,
			"description": 1000,
			"host_name":   100,
			"street":      200,
		},
		Defaults: map[string]string{
			"property_type":          "Unknown",
			"room_type":              "Unknown",
			"bed_type":               "Unknown",
			"host_response_time":     "N/A",
			"host_is_superhost":      "f",
			"host_identity_verified": "f",
			"city":                   "Seattle",
			"state":                  "WA",
			"is_location_exact":      "f",
			"guests_included":        "1",
			"minimum_nights":         "1",
			"maximum_nights":         "365",
			"instant_bookable":       "f",
			"cancellation_policy":    "flexible",
			"has_availability":       "t",
		},
		DateFormats: []string{"2006/01/02", "2006-01-02", "01/02/2006"},
		AptIsEntire: false,
	}
}

// LoadRules reads a YAML rules file over the defaults. An empty path returns
// the defaults unchanged.
func LoadRules(path string) (*TransformRules, error) {
	rules := DefaultRules()
	if path == "" {
		return rules, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rules: read %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, rules); err != nil {
		return nil, fmt.Errorf("rules: parse %q: %w", path, err)
	}
	if err := rules.validate(); err != nil {
		return nil, fmt.Errorf("rules: %q: %w", path, err)
	}
	return rules, nil
}

func (r *TransformRules) validate() error {
	if r.MaxPrice <= 0 {
		return fmt.Errorf("max_price must be positive, got %v", r.MaxPrice)
	}
	if r.ProfessionalThreshold < 0 {
		return fmt.Errorf("professional_threshold must be non-negative, got %d", r.ProfessionalThreshold)
	}
	if len(r.DateFormats) == 0 {
		return fmt.Errorf("date_formats must list at least one format")
	}
	for field, limit := range r.TextLimits {
		// Truncation appends "..." inside the limit, so anything shorter than
		// 4 characters cannot hold a truncated value. 0 means unlimited.
		if limit != 0 && limit < 4 {
			return fmt.Errorf("text_limits.%s must be 0 (unlimited) or at least 4, got %d", field, limit)
		}
	}
	return nil
}

// TextLimit returns the configured maximum length for a text field,
// or 0 when the field is unlimited.
func (r *TransformRules) TextLimit(field string) int {
	return r.TextLimits[field]
}

// Default returns the value to use when the raw column is absent.
func (r *TransformRules) Default(field string) string {
	return r.Defaults[field]
}
