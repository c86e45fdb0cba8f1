// Package aitools exposes the deterministic business metrics as named,
// parameterized tools. The assistant's intent router invokes tools by name;
// the tools pre-compute everything so the LLM only ever sees structured
// results, never raw inventory or sales collections.
package aitools

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"biznova/festival"
	"biznova/forecast"
	"biznova/models"
)

// ErrUnknownTool indicates a routing or configuration bug: tool names are
// fixed at build time and cannot vary with merchant data.
var ErrUnknownTool = errors.New("unknown tool")

// Tool names.
const (
	ToolFestivalForecast  = "get_festival_demand_forecast"
	ToolUpcomingFestivals = "get_upcoming_festivals"
	ToolTodaysProfit      = "get_todays_profit"
	ToolLowStockItems     = "get_low_stock_items"
	ToolTopSellers        = "get_top_sellers"
	ToolInventorySummary  = "get_inventory_summary"
)

const (
	defaultFestivalCount = 5
	defaultTopSellers    = 5
	lowStockThreshold    = 10
)

// Params carries the arguments a tool may need. Unused fields are ignored.
type Params struct {
	MerchantID string
	Count      int
	Days       int
}

// ExpenseStore reads recorded costs for profit computation.
type ExpenseStore interface {
	SumForDay(ctx context.Context, merchantID string, day time.Time) (float64, error)
}

// Registry holds the fixed tool set for the running process.
type Registry struct {
	inventory forecast.InventoryStore
	sales     forecast.SalesStore
	expenses  ExpenseStore
	assembler *forecast.Assembler
	catalog   []festival.Record
	now       func() time.Time

	tools map[string]func(ctx context.Context, p Params) (any, error)
}

// NewRegistry wires the tool set over the given stores and assembler.
// now may be nil, in which case time.Now is used.
func NewRegistry(inventory forecast.InventoryStore, sales forecast.SalesStore, expenses ExpenseStore, assembler *forecast.Assembler, catalog []festival.Record, now func() time.Time) *Registry {
	if now == nil {
		now = time.Now
	}
	r := &Registry{
		inventory: inventory,
		sales:     sales,
		expenses:  expenses,
		assembler: assembler,
		catalog:   catalog,
		now:       now,
	}
	r.tools = map[string]func(ctx context.Context, p Params) (any, error){
		ToolFestivalForecast:  r.festivalForecast,
		ToolUpcomingFestivals: r.upcomingFestivals,
		ToolTodaysProfit:      r.todaysProfit,
		ToolLowStockItems:     r.lowStockItems,
		ToolTopSellers:        r.topSellers,
		ToolInventorySummary:  r.inventorySummary,
	}
	return r
}

// Names returns the registered tool names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Call invokes a tool by name. An unknown name fails loudly: it can only be
// caused by a bug in the router, never by merchant data.
func (r *Registry) Call(ctx context.Context, name string, p Params) (any, error) {
	tool, ok := r.tools[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTool, name)
	}
	return tool(ctx, p)
}

func (r *Registry) festivalForecast(ctx context.Context, p Params) (any, error) {
	return r.assembler.Assemble(ctx, p.MerchantID)
}

func (r *Registry) upcomingFestivals(_ context.Context, p Params) (any, error) {
	count := p.Count
	if count <= 0 {
		count = defaultFestivalCount
	}

	now := r.now()
	current := int(now.Month()) - 1

	upcoming := make([]models.UpcomingFestival, 0, len(r.catalog))
	for _, rec := range r.catalog {
		fm, ok := festival.MonthIndex(rec.Month)
		if !ok {
			continue
		}
		distance := fm - current
		if distance < 0 {
			distance += 12
		}
		upcoming = append(upcoming, models.UpcomingFestival{
			Name:        rec.Name,
			Region:      rec.Region,
			Month:       rec.Month,
			MonthsAway:  distance,
			DemandLevel: rec.DemandLevel,
		})
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].MonthsAway < upcoming[j].MonthsAway
	})
	if len(upcoming) > count {
		upcoming = upcoming[:count]
	}
	return upcoming, nil
}

func (r *Registry) todaysProfit(ctx context.Context, p Params) (any, error) {
	now := r.now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	sales, err := r.sales.FindInRange(ctx, p.MerchantID, start, now)
	if err != nil {
		return nil, fmt.Errorf("todays profit: %w", err)
	}
	inventory, err := r.inventory.FindByMerchant(ctx, p.MerchantID)
	if err != nil {
		return nil, fmt.Errorf("todays profit: %w", err)
	}
	expenses, err := r.expenses.SumForDay(ctx, p.MerchantID, now)
	if err != nil {
		return nil, fmt.Errorf("todays profit: %w", err)
	}

	costByName := make(map[string]float64, len(inventory))
	for _, item := range inventory {
		costByName[strings.ToLower(item.Name)] = item.CostPerUnit
	}

	var revenue, cost float64
	for _, sale := range sales {
		for _, item := range sale.Items {
			revenue += float64(item.Quantity) * item.PricePerUnit
			cost += float64(item.Quantity) * costByName[strings.ToLower(item.Name)]
		}
	}

	return models.ProfitSummary{
		Date:     start.Format("2006-01-02"),
		Revenue:  revenue,
		Cost:     cost,
		Expenses: expenses,
		Profit:   revenue - cost - expenses,
	}, nil
}

func (r *Registry) lowStockItems(ctx context.Context, p Params) (any, error) {
	inventory, err := r.inventory.FindByMerchant(ctx, p.MerchantID)
	if err != nil {
		return nil, fmt.Errorf("low stock: %w", err)
	}

	low := make([]models.LowStockItem, 0)
	for _, item := range inventory {
		if item.StockQuantity < lowStockThreshold {
			low = append(low, models.LowStockItem{Name: item.Name, StockQuantity: item.StockQuantity})
		}
	}
	sort.SliceStable(low, func(i, j int) bool {
		return low[i].StockQuantity < low[j].StockQuantity
	})
	return low, nil
}

func (r *Registry) topSellers(ctx context.Context, p Params) (any, error) {
	days := p.Days
	if days <= 0 {
		days = forecast.DefaultWindowDays
	}
	count := p.Count
	if count <= 0 {
		count = defaultTopSellers
	}

	now := r.now()
	sales, err := r.sales.FindInRange(ctx, p.MerchantID, now.AddDate(0, 0, -days), now)
	if err != nil {
		return nil, fmt.Errorf("top sellers: %w", err)
	}

	stats := forecast.ComputeVelocity(sales, days)
	sellers := make([]models.TopSeller, 0, len(stats))
	for name, stat := range stats {
		sellers = append(sellers, models.TopSeller{
			Name:          name,
			TotalQuantity: stat.TotalQuantity,
			TotalRevenue:  stat.TotalRevenue,
		})
	}
	sort.SliceStable(sellers, func(i, j int) bool {
		if sellers[i].TotalQuantity != sellers[j].TotalQuantity {
			return sellers[i].TotalQuantity > sellers[j].TotalQuantity
		}
		return sellers[i].Name < sellers[j].Name
	})
	if len(sellers) > count {
		sellers = sellers[:count]
	}
	return sellers, nil
}

func (r *Registry) inventorySummary(ctx context.Context, p Params) (any, error) {
	inventory, err := r.inventory.FindByMerchant(ctx, p.MerchantID)
	if err != nil {
		return nil, fmt.Errorf("inventory summary: %w", err)
	}

	summary := models.InventorySummary{TotalItems: len(inventory)}
	for _, item := range inventory {
		summary.TotalStockUnits += item.StockQuantity
		summary.StockValue += float64(item.StockQuantity) * item.PricePerUnit
		if item.StockQuantity == 0 {
			summary.OutOfStockItems++
		}
	}
	return summary, nil
}
