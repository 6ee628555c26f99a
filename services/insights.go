package services

import (
	"fmt"
	"sort"
	"strings"

	"airbnb-etl/models"
	"airbnb-etl/utils"
)

// topNeighbourhoods caps the per-neighbourhood breakdown in the report.
const topNeighbourhoods = 5

// InsightService computes the summary metrics surface over the accepted
// record set: run aggregates plus neighbourhood and price-category breakdowns.
type InsightService struct {
	logger *utils.Logger
}

// NewInsightService creates an InsightService with the given logger.
func NewInsightService(logger *utils.Logger) *InsightService {
	return &InsightService{logger: logger}
}

// Generate computes the InsightReport for a set of cleaned records.
func (s *InsightService) Generate(records []*models.CleanedRecord) *models.InsightReport {
	report := &models.InsightReport{}
	if len(records) == 0 {
		return report
	}

	report.TotalListings = len(records)

	var totalPrice, totalScore float64
	byHood := make(map[string]*models.NeighbourhoodStat)
	byCategory := make(map[string]*models.CategoryStat)
	byRoomType := make(map[string]*models.CategoryStat)

	for _, r := range records {
		totalPrice += r.Price
		totalScore += r.ReviewScoresRating
		if r.HostIsSuperhost == 1 {
			report.SuperhostCount++
		}
		if r.InstantBookable == 1 {
			report.InstantBookableCount++
		}

		if r.Neighbourhood != "" {
			h := byHood[r.Neighbourhood]
			if h == nil {
				h = &models.NeighbourhoodStat{Neighbourhood: r.Neighbourhood}
				byHood[r.Neighbourhood] = h
			}
			h.Listings++
			h.AvgPrice += r.Price
			h.AvgRating += r.ReviewScoresRating
		}

		c := byCategory[r.PriceCategory]
		if c == nil {
			c = &models.CategoryStat{Category: r.PriceCategory}
			byCategory[r.PriceCategory] = c
		}
		c.Listings++
		c.AvgPrice += r.Price
		c.AvgRating += r.ReviewScoresRating

		rt := byRoomType[r.RoomTypeSimplified]
		if rt == nil {
			rt = &models.CategoryStat{Category: r.RoomTypeSimplified}
			byRoomType[r.RoomTypeSimplified] = rt
		}
		rt.Listings++
		rt.AvgPrice += r.Price
		rt.AvgRating += r.ReviewScoresRating
	}

	report.AvgPrice = round2(totalPrice / float64(len(records)))
	report.AvgReviewScore = round2(totalScore / float64(len(records)))

	for _, h := range byHood {
		h.AvgPrice = round2(h.AvgPrice / float64(h.Listings))
		h.AvgRating = round2(h.AvgRating / float64(h.Listings))
		report.TopNeighbourhoods = append(report.TopNeighbourhoods, *h)
	}
	sort.Slice(report.TopNeighbourhoods, func(i, j int) bool {
		a, b := report.TopNeighbourhoods[i], report.TopNeighbourhoods[j]
		if a.Listings != b.Listings {
			return a.Listings > b.Listings
		}
		return a.Neighbourhood < b.Neighbourhood
	})
	if len(report.TopNeighbourhoods) > topNeighbourhoods {
		report.TopNeighbourhoods = report.TopNeighbourhoods[:topNeighbourhoods]
	}

	for _, c := range byCategory {
		c.AvgPrice = round2(c.AvgPrice / float64(c.Listings))
		c.AvgRating = round2(c.AvgRating / float64(c.Listings))
		report.ByPriceCategory = append(report.ByPriceCategory, *c)
	}
	sort.Slice(report.ByPriceCategory, func(i, j int) bool {
		a, b := report.ByPriceCategory[i], report.ByPriceCategory[j]
		if a.Listings != b.Listings {
			return a.Listings > b.Listings
		}
		return a.Category < b.Category
	})

	for _, rt := range byRoomType {
		rt.AvgPrice = round2(rt.AvgPrice / float64(rt.Listings))
		rt.AvgRating = round2(rt.AvgRating / float64(rt.Listings))
		report.ByRoomType = append(report.ByRoomType, *rt)
	}
	sort.Slice(report.ByRoomType, func(i, j int) bool {
		a, b := report.ByRoomType[i], report.ByRoomType[j]
		if a.Listings != b.Listings {
			return a.Listings > b.Listings
		}
		return a.Category < b.Category
	})

	return report
}

// Print writes the report to stdout in a human-readable layout.
func (s *InsightService) Print(r *models.InsightReport) {
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)

	fmt.Printf("\n\033[1;35m%s\033[0m\n", sep)
	fmt.Printf("\033[1;35m  📊 CLEANED LISTINGS SUMMARY\033[0m\n")
	fmt.Printf("\033[1;35m%s\033[0m\n\n", sep)

	fmt.Printf("\033[1;33m  Overview\033[0m\n")
	fmt.Printf("  %s\n", thin)
	fmt.Printf("  Clean listings      : \033[1m%d\033[0m\n", r.TotalListings)
	fmt.Printf("  Superhosts          : \033[1m%d\033[0m\n", r.SuperhostCount)
	fmt.Printf("  Instant bookable    : \033[1m%d\033[0m\n", r.InstantBookableCount)
	if r.TotalListings > 0 {
		fmt.Printf("  Average price       : \033[1;32m$%.2f\033[0m\n", r.AvgPrice)
		fmt.Printf("  Average review score: \033[1;32m%.2f\033[0m\n", r.AvgReviewScore)
	}
	fmt.Println()

	fmt.Printf("\033[1;33m  Top Neighbourhoods\033[0m\n")
	fmt.Printf("  %s\n", thin)
	if len(r.TopNeighbourhoods) == 0 {
		fmt.Printf("  No neighbourhood data\n")
	} else {
		for i, h := range r.TopNeighbourhoods {
			fmt.Printf("  \033[1m%d.\033[0m %-30s %4d listings  \033[1;32m$%.2f\033[0m\n",
				i+1, truncate(h.Neighbourhood, 28), h.Listings, h.AvgPrice)
		}
	}
	fmt.Println()

	fmt.Printf("\033[1;33m  Price Categories\033[0m\n")
	fmt.Printf("  %s\n", thin)
	if len(r.ByPriceCategory) == 0 {
		fmt.Printf("  No price data\n")
	} else {
		for _, c := range r.ByPriceCategory {
			bar := strings.Repeat("█", barWidth(c.Listings, r.TotalListings))
			fmt.Printf("  %-12s %s (%d)\n", c.Category, bar, c.Listings)
		}
	}
	fmt.Println()

	fmt.Printf("\033[1;33m  Room Types\033[0m\n")
	fmt.Printf("  %s\n", thin)
	if len(r.ByRoomType) == 0 {
		fmt.Printf("  No room type data\n")
	} else {
		for _, rt := range r.ByRoomType {
			fmt.Printf("  %-12s %4d listings  \033[1;32m$%.2f\033[0m\n",
				rt.Category, rt.Listings, rt.AvgPrice)
		}
	}

	fmt.Printf("\n\033[1;35m%s\033[0m\n\n", sep)
}

// barWidth scales a count into a 0–30 character bar.
func barWidth(count, total int) int {
	if total == 0 {
		return 0
	}
	w := count * 30 / total
	if w == 0 && count > 0 {
		w = 1
	}
	return w
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
