// Package forecast implements the festival demand forecasting pipeline:
// sales velocity analysis, fuzzy inventory matching, confidence scoring,
// and the assembler that combines them into ranked recommendations.
package forecast

import (
	"strings"

	"biznova/models"
)

// DefaultWindowDays is the trailing sales window used when none is given.
const DefaultWindowDays = 30

// VelocityStat aggregates one item's sales over a trailing window.
// VelocityScore is a continuous rate in units per day, not a sales count.
type VelocityStat struct {
	TotalQuantity int     `json:"total_quantity"`
	TotalRevenue  float64 `json:"total_revenue"`
	SalesCount    int     `json:"sales_count"`
	VelocityScore float64 `json:"velocity_score"`
}

// ComputeVelocity flattens the line items of the given sales and
// accumulates per-item daily-rate statistics, keyed by lowercase item name.
// Returns an empty map when there are no sales in the window.
func ComputeVelocity(sales []models.Sale, windowDays int) map[string]VelocityStat {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}

	stats := make(map[string]VelocityStat)
	for _, sale := range sales {
		for _, item := range sale.Items {
			key := strings.ToLower(item.Name)
			stat := stats[key]
			stat.TotalQuantity += item.Quantity
			stat.TotalRevenue += float64(item.Quantity) * item.PricePerUnit
			stat.SalesCount++
			stats[key] = stat
		}
	}

	for key, stat := range stats {
		stat.VelocityScore = float64(stat.TotalQuantity) / float64(windowDays)
		stats[key] = stat
	}

	return stats
}
