package services

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	// controlRegexp matches runs of carriage returns, line feeds and tabs
	controlRegexp = regexp.MustCompile(`[\r\n\t]+`)
	// spaceRegexp matches runs of whitespace
	spaceRegexp = regexp.MustCompile(`\s+`)
	// nonNumericRegexp matches everything that is not a digit or decimal point
	nonNumericRegexp = regexp.MustCompile(`[^\d.]`)
)

// Every normalizer in this file is total: whatever the raw input looks like
// (empty, absent, garbage), it returns its documented default instead of
// failing. The one exception is NormalizeDate, whose failure mode is to pass
// the input through unchanged.

// CleanText collapses control characters and whitespace runs to single
// spaces and trims the result. A positive maxLength truncates longer output
// to maxLength-3 characters plus an ellipsis marker.
func CleanText(s string, maxLength int) string {
	if s == "" {
		return ""
	}
	s = controlRegexp.ReplaceAllString(s, " ")
	s = spaceRegexp.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)

	// Truncation counts characters, not bytes, so multibyte text is never
	// cut mid-rune.
	if r := []rune(s); maxLength > 0 && len(r) > maxLength {
		s = string(r[:maxLength-3]) + "..."
	}
	return s
}

// ParsePrice strips everything but digits and decimal points and parses the
// remainder, rounded to 2 fractional digits: "$1,234.56" -> 1234.56.
// Empty or unparseable input yields 0.
func ParsePrice(s string) float64 {
	if s == "" {
		return 0
	}
	cleaned := nonNumericRegexp.ReplaceAllString(s, "")
	if cleaned == "" {
		return 0
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return round2(v)
}

// ParseFloat converts a raw value to float64, treating "" and "N/A" as zero.
func ParseFloat(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" || s == "N/A" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// ParseInt converts a raw value to int, tolerating decimal-formatted
// integers: "2.0" -> 2. Truncates toward zero; "" and "N/A" yield 0.
func ParseInt(s string) int {
	s = strings.TrimSpace(s)
	if s == "" || s == "N/A" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return int(math.Trunc(v))
}

// ParsePercentage strips a trailing percent sign and parses the rest:
// "85%" -> 85.0. "" and "N/A" yield 0.
func ParsePercentage(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" || s == "N/A" {
		return 0
	}
	s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// ParseBool converts truthy markers (t, true, 1, yes — case-insensitive)
// to 1 and everything else to 0.
func ParseBool(s string) int {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "t", "true", "1", "yes":
		return 1
	}
	return 0
}

// NormalizeDate tries the given layouts in order and re-emits the first
// successful parse as YYYY-MM-DD. When no layout matches, the input is
// returned unchanged rather than defaulted.
func NormalizeDate(s string, layouts []string) string {
	if s == "" {
		return ""
	}
	for _, layout := range layouts {
		if dt, err := time.Parse(layout, s); err == nil {
			return dt.Format("2006-01-02")
		}
	}
	return s
}

// CountAmenities strips one pair of enclosing braces, splits on commas and
// returns the number of non-empty items: `{TV,"Wifi",Kitchen}` -> 3.
func CountAmenities(s string) int {
	s = strings.TrimSuffix(strings.TrimPrefix(strings.TrimSpace(s), "{"), "}")
	if s == "" {
		return 0
	}
	count := 0
	for _, item := range strings.Split(s, ",") {
		if strings.TrimSpace(item) != "" {
			count++
		}
	}
	return count
}

// round2 rounds to 2 fractional digits.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
