package services

import (
	"strconv"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"", 0, ""},
		{"  plain  ", 0, "plain"},
		{"line one\r\nline two\ttabbed", 0, "line one line two tabbed"},
		{"many    internal     spaces", 0, "many internal spaces"},
		{"abcdefghij", 8, "abcde..."},
		{"abcdefgh", 8, "abcdefgh"},
	}

	for _, tt := range tests {
		if got := CleanText(tt.in, tt.maxLen); got != tt.want {
			t.Errorf("CleanText(%q, %d) = %q; want %q", tt.in, tt.maxLen, got, tt.want)
		}
	}
}

func TestCleanTextTruncatesByCharacter(t *testing.T) {
	// 10 characters but 20 bytes: must not be truncated under a 12-char limit.
	in := strings.Repeat("é", 10)
	if got := CleanText(in, 12); got != in {
		t.Errorf("CleanText(%q, 12) = %q; want unchanged", in, got)
	}

	got := CleanText(strings.Repeat("é", 10), 8)
	want := strings.Repeat("é", 5) + "..."
	if got != want {
		t.Errorf("CleanText(10×é, 8) = %q; want %q", got, want)
	}
	if !utf8.ValidString(got) {
		t.Errorf("truncated output %q is not valid UTF-8", got)
	}
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"$1,200.50", 1200.50},
		{"$85.00", 85},
		{"1234.567", 1234.57},
		{"free", 0},
		{"", 0},
		{"$", 0},
		{"N/A", 0},
	}

	for _, tt := range tests {
		if got := ParsePrice(tt.in); got != tt.want {
			t.Errorf("ParsePrice(%q) = %v; want %v", tt.in, got, tt.want)
		}
	}
}

func TestParsePriceIdempotent(t *testing.T) {
	inputs := []string{"$1,200.50", "99", "$0.1", "garbage", "", "$12,345.678"}
	for _, in := range inputs {
		once := ParsePrice(in)
		if once < 0 {
			t.Errorf("ParsePrice(%q) = %v; want non-negative", in, once)
		}
		twice := ParsePrice(strconv.FormatFloat(once, 'f', -1, 64))
		if twice != once {
			t.Errorf("ParsePrice not idempotent for %q: %v then %v", in, once, twice)
		}
	}
}

func TestParseFloat(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"47.6062", 47.6062},
		{"", 0},
		{"N/A", 0},
		{"abc", 0},
	}

	for _, tt := range tests {
		if got := ParseFloat(tt.in); got != tt.want {
			t.Errorf("ParseFloat(%q) = %v; want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"2.0", 2},
		{"3", 3},
		{"2.9", 2},
		{"-1.9", -1},
		{"abc", 0},
		{"", 0},
		{"N/A", 0},
	}

	for _, tt := range tests {
		if got := ParseInt(tt.in); got != tt.want {
			t.Errorf("ParseInt(%q) = %d; want %d", tt.in, got, tt.want)
		}
	}
}

func TestParsePercentage(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"85%", 85},
		{" 92 % ", 92},
		{"100", 100},
		{"N/A", 0},
		{"", 0},
	}

	for _, tt := range tests {
		if got := ParsePercentage(tt.in); got != tt.want {
			t.Errorf("ParsePercentage(%q) = %v; want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"t", 1}, {"T", 1}, {"true", 1}, {"TRUE", 1}, {"1", 1}, {"yes", 1},
		{"f", 0}, {"false", 0}, {"0", 0}, {"no", 0}, {"", 0}, {"maybe", 0},
	}

	for _, tt := range tests {
		if got := ParseBool(tt.in); got != tt.want {
			t.Errorf("ParseBool(%q) = %d; want %d", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeDate(t *testing.T) {
	layouts := []string{"2006/01/02", "2006-01-02", "01/02/2006"}

	tests := []struct {
		in   string
		want string
	}{
		{"2016/01/02", "2016-01-02"},
		{"2016-01-02", "2016-01-02"},
		{"01/15/2019", "2019-01-15"},
		{"not a date", "not a date"}, // pass through unchanged
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeDate(tt.in, layouts); got != tt.want {
			t.Errorf("NormalizeDate(%q) = %q; want %q", tt.in, got, tt.want)
		}
	}
}

func TestCountAmenities(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{`{TV,"Wireless Internet",Kitchen}`, 3},
		{"{}", 0},
		{"", 0},
		{"{Heating}", 1},
		{"{TV, ,Kitchen}", 2}, // empty items are not counted
		{"TV,Kitchen", 2},     // braces optional
	}

	for _, tt := range tests {
		if got := CountAmenities(tt.in); got != tt.want {
			t.Errorf("CountAmenities(%q) = %d; want %d", tt.in, got, tt.want)
		}
	}
}
