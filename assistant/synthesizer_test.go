package assistant

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"biznova/aitools"
	"biznova/forecast"
	"biznova/models"
)

func TestFormatFallbackEmptyResultsAsksForClarification(t *testing.T) {
	assert.Equal(t, ClarificationMessage, FormatFallback(nil))
	assert.Equal(t, ClarificationMessage, FormatFallback(map[string]any{}))
}

func TestFormatFallbackForecastCarriesFullInformation(t *testing.T) {
	result := &forecast.Result{
		HasForecast: true,
		Festival:    "Lights Fest",
		Month:       "Oct",
		MonthsAway:  1,
		IsImminent:  true,
		DemandLevel: "High",
		Items: []forecast.Item{
			{ItemName: "Diya", CurrentStock: 0, Confidence: forecast.BucketHigh, ConfidenceScore: 75, RecommendedAction: "Restock urgently"},
			{ItemName: "Sweets", CurrentStock: 40, Confidence: forecast.BucketMedium, ConfidenceScore: 55, RecommendedAction: "Monitor stock"},
		},
		Summary: forecast.Summary{High: 1, Medium: 1},
	}

	text := FormatFallback(map[string]any{aitools.ToolFestivalForecast: result})

	assert.Contains(t, text, "Lights Fest")
	assert.Contains(t, text, "1 high, 1 medium, 0 low")
	assert.Contains(t, text, "Diya [High confidence]: Restock urgently (stock: 0)")
	assert.Contains(t, text, "Sweets [Medium confidence]: Monitor stock (stock: 40)")
}

func TestFormatFallbackNoForecast(t *testing.T) {
	text := FormatFallback(map[string]any{
		aitools.ToolFestivalForecast: &forecast.Result{HasForecast: false},
	})
	assert.Contains(t, text, "No upcoming festivals found")
}

func TestFormatFallbackMultipleToolsSortedAndSeparated(t *testing.T) {
	results := map[string]any{
		aitools.ToolTodaysProfit: models.ProfitSummary{Date: "2026-09-15", Revenue: 41, Cost: 20, Expenses: 7, Profit: 14},
		aitools.ToolLowStockItems: []models.LowStockItem{
			{Name: "Diya", StockQuantity: 4},
		},
	}

	text := FormatFallback(results)

	assert.Contains(t, text, "Diya: 4 left")
	assert.Contains(t, text, "net profit 14.00")
	// Tool names visit in sorted order: low stock renders before profit.
	assert.Less(t, strings.Index(text, "Diya"), strings.Index(text, "net profit"))

	// Same input always formats identically.
	assert.Equal(t, text, FormatFallback(results))
}

func TestFormatFallbackEmptyCollections(t *testing.T) {
	assert.Contains(t, FormatFallback(map[string]any{aitools.ToolLowStockItems: []models.LowStockItem{}}), "No items are low on stock")
	assert.Contains(t, FormatFallback(map[string]any{aitools.ToolTopSellers: []models.TopSeller{}}), "No sales recorded")
	assert.Contains(t, FormatFallback(map[string]any{aitools.ToolUpcomingFestivals: []models.UpcomingFestival{}}), "No upcoming festivals")
}

func TestFormatFallbackUnknownPayloadDumpsJSON(t *testing.T) {
	text := FormatFallback(map[string]any{"custom_tool": map[string]int{"answer": 42}})
	assert.Contains(t, text, `"answer":42`)
}

// Without an API key Synthesize must not attempt any network call and
// returns the deterministic fallback text.
func TestSynthesizeWithoutKeyUsesFallback(t *testing.T) {
	s := &Synthesizer{}
	results := map[string]any{
		aitools.ToolInventorySummary: models.InventorySummary{TotalItems: 3, TotalStockUnits: 15, StockValue: 40, OutOfStockItems: 1},
	}

	text := s.Synthesize(context.Background(), "how is my inventory?", "English", results)
	assert.Equal(t, FormatFallback(results), text)
	assert.Contains(t, text, "3 items")
}
