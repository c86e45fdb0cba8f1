package forecast

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"biznova/festival"
	"biznova/models"
)

// lowStockThreshold is the in-stock quantity below which a restock is
// recommended.
const lowStockThreshold = 10

// maxForecastItems caps the returned recommendation list. The summary still
// counts every scored item.
const maxForecastItems = 10

// Item is one actionable recommendation. Recomputed fresh per request.
type Item struct {
	ItemName          string   `json:"item_name"`
	CurrentStock      int      `json:"current_stock"`
	InInventory       bool     `json:"in_inventory"`
	VelocityScore     float64  `json:"velocity_score"`
	Confidence        Bucket   `json:"confidence"`
	ConfidenceScore   int      `json:"confidence_score"`
	Reasoning         []string `json:"reasoning"`
	RecommendedAction string   `json:"recommended_action"`
}

// Summary counts scored items per confidence bucket, over the full
// pre-truncation list.
type Summary struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// Result is a complete festival demand forecast for one merchant.
type Result struct {
	HasForecast bool    `json:"has_forecast"`
	Festival    string  `json:"festival,omitempty"`
	Region      string  `json:"region,omitempty"`
	Month       string  `json:"month,omitempty"`
	MonthsAway  int     `json:"months_away,omitempty"`
	IsImminent  bool    `json:"is_imminent,omitempty"`
	DemandLevel string  `json:"demand_level,omitempty"`
	Items       []Item  `json:"items,omitempty"`
	Summary     Summary `json:"summary"`
}

// Assembler orchestrates the forecasting pipeline over a merchant's data.
type Assembler struct {
	Inventory  InventoryStore
	Sales      SalesStore
	Catalog    []festival.Record
	WindowDays int
	Now        func() time.Time // defaults to time.Now
}

// Assemble produces a ranked, capped recommendation list for the nearest
// upcoming festival. Every item in the festival's top-selling list is
// surfaced, whether or not the merchant stocks it.
func (a *Assembler) Assemble(ctx context.Context, merchantID string) (*Result, error) {
	now := time.Now()
	if a.Now != nil {
		now = a.Now()
	}
	windowDays := a.WindowDays
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}

	nearest := festival.FindNearest(a.Catalog, now)
	if nearest == nil {
		return &Result{HasForecast: false}, nil
	}

	// Inventory and sales are independent reads with no ordering dependency.
	var (
		inventory []models.InventoryItem
		sales     []models.Sale
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		inventory, err = a.Inventory.FindByMerchant(gctx, merchantID)
		return err
	})
	g.Go(func() error {
		var err error
		sales, err = a.Sales.FindInRange(gctx, merchantID, now.AddDate(0, 0, -windowDays), now)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("forecast data fetch: %w", err)
	}

	velocity := ComputeVelocity(sales, windowDays)
	fest := nearest.Festival

	items := make([]Item, 0, len(fest.TopSellingItems))
	for _, name := range fest.TopSellingItems {
		matched := Match(name, inventory)

		itemName := name
		stock := 0
		inInventory := false
		if matched != nil {
			itemName = matched.Name
			stock = matched.StockQuantity
			inInventory = true
		}

		stat := velocity[strings.ToLower(itemName)]

		bucket, score := Score(Signals{
			MonthsAway:    nearest.MonthsAway,
			Velocity:      stat,
			InInventory:   inInventory,
			StockQuantity: stock,
			DemandLevel:   fest.DemandLevel,
		})

		items = append(items, Item{
			ItemName:          itemName,
			CurrentStock:      stock,
			InInventory:       inInventory,
			VelocityScore:     stat.VelocityScore,
			Confidence:        bucket,
			ConfidenceScore:   score,
			Reasoning:         reasoning(fest, nearest, stat, inInventory, stock, windowDays),
			RecommendedAction: recommendedAction(inInventory, stock),
		})
	}

	// Summary counts reflect every scored item, not just the top 10.
	var summary Summary
	for _, item := range items {
		switch item.Confidence {
		case BucketHigh:
			summary.High++
		case BucketMedium:
			summary.Medium++
		default:
			summary.Low++
		}
	}

	rank := map[Bucket]int{BucketHigh: 2, BucketMedium: 1, BucketLow: 0}
	sort.SliceStable(items, func(i, j int) bool {
		return rank[items[i].Confidence] > rank[items[j].Confidence]
	})
	if len(items) > maxForecastItems {
		items = items[:maxForecastItems]
	}

	return &Result{
		HasForecast: true,
		Festival:    fest.Name,
		Region:      fest.Region,
		Month:       fest.Month,
		MonthsAway:  nearest.MonthsAway,
		IsImminent:  nearest.IsImminent,
		DemandLevel: fest.DemandLevel,
		Items:       items,
		Summary:     summary,
	}, nil
}

// recommendedAction is the fixed decision table over inventory state.
func recommendedAction(inInventory bool, stock int) string {
	switch {
	case !inInventory:
		return "Add to inventory"
	case stock == 0:
		return "Restock urgently"
	case stock < lowStockThreshold:
		return "Restock recommended"
	default:
		return "Monitor stock"
	}
}

func reasoning(fest festival.Record, nearest *festival.Nearest, stat VelocityStat, inInventory bool, stock, windowDays int) []string {
	reasons := make([]string, 0, 4)

	if nearest.IsImminent {
		reasons = append(reasons, fmt.Sprintf("%s is imminent (%d month(s) away)", fest.Name, nearest.MonthsAway))
	} else {
		reasons = append(reasons, fmt.Sprintf("%s is %d months away", fest.Name, nearest.MonthsAway))
	}

	reasons = append(reasons, fmt.Sprintf("Festival demand level is %s", fest.DemandLevel))

	switch {
	case !inInventory:
		reasons = append(reasons, "Not in your inventory yet")
	case stock == 0:
		reasons = append(reasons, "Currently out of stock")
	default:
		reasons = append(reasons, fmt.Sprintf("%d units in stock", stock))
	}

	if stat.SalesCount > 0 {
		reasons = append(reasons, fmt.Sprintf("Selling %.2f units/day over the last %d days", stat.VelocityScore, windowDays))
	} else {
		reasons = append(reasons, "No recent sales")
	}

	return reasons
}
