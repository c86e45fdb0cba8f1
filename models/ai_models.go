package models

// AssistantRequest defines the structure for requests to the AI assistant.
type AssistantRequest struct {
	Message  string `json:"message"`
	Language string `json:"language,omitempty"`
}

// ProfitSummary is today's deterministic profit breakdown for a merchant.
type ProfitSummary struct {
	Date     string  `json:"date"`
	Revenue  float64 `json:"revenue"`
	Cost     float64 `json:"cost"`
	Expenses float64 `json:"expenses"`
	Profit   float64 `json:"profit"`
}

// LowStockItem is an inventory item at or below the restock threshold.
type LowStockItem struct {
	Name          string `json:"name"`
	StockQuantity int    `json:"stock_quantity"`
}

// TopSeller summarizes an item's sales over a trailing window.
type TopSeller struct {
	Name          string  `json:"name"`
	TotalQuantity int     `json:"total_quantity"`
	TotalRevenue  float64 `json:"total_revenue"`
}

// InventorySummary aggregates a merchant's whole inventory.
type InventorySummary struct {
	TotalItems      int     `json:"total_items"`
	TotalStockUnits int     `json:"total_stock_units"`
	StockValue      float64 `json:"stock_value"`
	OutOfStockItems int     `json:"out_of_stock_items"`
}

// UpcomingFestival is a catalog event annotated with its distance from today.
type UpcomingFestival struct {
	Name        string `json:"name"`
	Region      string `json:"region"`
	Month       string `json:"month"`
	MonthsAway  int    `json:"months_away"`
	DemandLevel string `json:"demand_level"`
}
