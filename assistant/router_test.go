package assistant

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"biznova/aitools"
	"biznova/festival"
	"biznova/forecast"
	"biznova/models"
)

type fakeInventoryStore struct {
	items []models.InventoryItem
}

func (f *fakeInventoryStore) FindByMerchant(ctx context.Context, merchantID string) ([]models.InventoryItem, error) {
	return f.items, nil
}

type fakeSalesStore struct {
	sales []models.Sale
}

func (f *fakeSalesStore) FindInRange(ctx context.Context, merchantID string, from, to time.Time) ([]models.Sale, error) {
	return f.sales, nil
}

type fakeExpenseStore struct{}

func (fakeExpenseStore) SumForDay(ctx context.Context, merchantID string, day time.Time) (float64, error) {
	return 0, nil
}

func testRouter() *Router {
	inv := &fakeInventoryStore{items: []models.InventoryItem{
		{Name: "Diya", StockQuantity: 4, PricePerUnit: 2.5},
	}}
	sales := &fakeSalesStore{}
	now := func() time.Time { return time.Date(2026, time.September, 15, 10, 0, 0, 0, time.UTC) }
	catalog := []festival.Record{{Name: "Lights Fest", Month: "Oct", DemandLevel: "High", TopSellingItems: []string{"Diya"}}}
	assembler := &forecast.Assembler{Inventory: inv, Sales: sales, Catalog: catalog, Now: now}
	registry := aitools.NewRegistry(inv, sales, fakeExpenseStore{}, assembler, catalog, now)
	return &Router{Registry: registry}
}

func TestClassifyByKeywords(t *testing.T) {
	cases := []struct {
		message string
		want    Intent
	}{
		{"Give me a business overview", IntentBusinessOverview},
		{"how's my business doing?", IntentBusinessOverview},
		{"What should I stock for the festival demand?", IntentFestivalForecast},
		{"help me prepare for the festival", IntentFestivalForecast},
		{"which festivals are coming up?", IntentUpcomingFestivals},
		{"any holiday soon?", IntentUpcomingFestivals},
		{"how much profit did I make?", IntentTodaysProfit},
		{"what did I earn this morning?", IntentTodaysProfit},
		{"what is running out?", IntentLowStock},
		{"show low stock items", IntentLowStock},
		{"what are my best sellers?", IntentTopSellers},
		{"top selling products please", IntentTopSellers},
		{"summarize my inventory", IntentInventorySummary},
		{"how much stock do I have?", IntentInventorySummary},
		{"tell me a joke", IntentUnknown},
		{"", IntentUnknown},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, ClassifyByKeywords(c.message), "message=%q", c.message)
	}
}

// With no API key configured Classify never touches the network.
func TestClassifyWithoutKeyUsesKeywords(t *testing.T) {
	r := testRouter()
	assert.Equal(t, IntentTodaysProfit, r.Classify(context.Background(), "how much profit today?"))
}

func TestDispatchSingleToolIntent(t *testing.T) {
	r := testRouter()

	results, err := r.Dispatch(context.Background(), IntentLowStock, aitools.Params{MerchantID: "m1"})
	require.NoError(t, err)
	require.Len(t, results, 1)

	low, ok := results[aitools.ToolLowStockItems].([]models.LowStockItem)
	require.True(t, ok)
	require.Len(t, low, 1)
	assert.Equal(t, "Diya", low[0].Name)
}

func TestDispatchBusinessOverviewFansOut(t *testing.T) {
	r := testRouter()

	results, err := r.Dispatch(context.Background(), IntentBusinessOverview, aitools.Params{MerchantID: "m1"})
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Contains(t, results, aitools.ToolTodaysProfit)
	assert.Contains(t, results, aitools.ToolLowStockItems)
	assert.Contains(t, results, aitools.ToolTopSellers)
}

func TestDispatchUnknownIntentReturnsNothing(t *testing.T) {
	r := testRouter()

	results, err := r.Dispatch(context.Background(), IntentUnknown, aitools.Params{MerchantID: "m1"})
	assert.NoError(t, err)
	assert.Nil(t, results)
}

func TestEveryIntentToolIsRegistered(t *testing.T) {
	r := testRouter()
	registered := make(map[string]bool)
	for _, name := range r.Registry.Names() {
		registered[name] = true
	}

	for intent, tools := range intentTools {
		for _, name := range tools {
			assert.True(t, registered[name], "intent %s references unregistered tool %s", intent, name)
		}
	}
}
