package handlers

import (
	"time"

	"github.com/stripe/stripe-go/v72"

	"biznova/aitools"
	"biznova/assistant"
	"biznova/config"
	"biznova/database"
	"biznova/festival"
	"biznova/forecast"
	"biznova/orders"
	"biznova/store"
)

// Shared wiring for the handler package, set once at startup.
var (
	inventoryStore *store.Inventory
	salesStore     *store.Sales
	expenseStore   *store.Expenses
	shopStore      *store.Shops

	catalog       []festival.Record
	assembler     *forecast.Assembler
	registry      *aitools.Registry
	intentRouter  *assistant.Router
	synthesizer   *assistant.Synthesizer
	pendingOrders *orders.Store
)

const pendingOrderTTL = 30 * time.Minute

// Init wires the stores, forecasting pipeline, AI assistant, and pending
// order store. Must be called after database.Connect and config loading.
func Init() {
	db := database.GetDB()
	inventoryStore = &store.Inventory{DB: db}
	salesStore = &store.Sales{DB: db}
	expenseStore = &store.Expenses{DB: db}
	shopStore = &store.Shops{DB: db}

	catalog = festival.Load(config.AppConfig.FestivalDataPath)

	assembler = &forecast.Assembler{
		Inventory: inventoryStore,
		Sales:     salesStore,
		Catalog:   catalog,
	}

	registry = aitools.NewRegistry(inventoryStore, salesStore, expenseStore, assembler, catalog, nil)
	intentRouter = &assistant.Router{
		Registry: registry,
		APIKey:   config.AppConfig.GeminiAPIKey,
		Model:    config.AppConfig.GeminiModel,
	}
	synthesizer = &assistant.Synthesizer{
		APIKey: config.AppConfig.GeminiAPIKey,
		Model:  config.AppConfig.GeminiModel,
	}

	pendingOrders = orders.NewStore(pendingOrderTTL)

	stripe.Key = config.AppConfig.StripeSecretKey
}
