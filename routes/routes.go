package routes

import (
	"github.com/gofiber/fiber/v2"

	"biznova/handlers"
	"biznova/middleware"
)

// SetupRoutes defines all the routes for the application.
func SetupRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	// --- Authentication Routes ---
	auth := api.Group("/auth")
	auth.Post("/register", handlers.HandleRegister)
	auth.Post("/login", handlers.HandleLogin)

	// --- Public Discovery ---
	api.Get("/shops/nearby", handlers.HandleGetNearbyShops)

	// --- Merchant Routes ---
	merchant := api.Group("/merchant", middleware.Authenticate, middleware.MerchantRequired)

	merchant.Get("/dashboard/summary", handlers.HandleGetMerchantDashboardSummary)

	merchant.Get("/inventory", handlers.HandleListInventory)
	merchant.Post("/inventory", handlers.HandleCreateInventoryItem)
	merchant.Put("/inventory/:itemId/stock", handlers.HandleAdjustStock)

	merchant.Get("/sales", handlers.HandleListSales)
	merchant.Post("/sales", handlers.HandleCreateSale)

	merchant.Get("/expenses/today", handlers.HandleListTodaysExpenses)
	merchant.Post("/expenses", handlers.HandleCreateExpense)

	merchant.Get("/forecast/festival", handlers.HandleGetFestivalForecast)
	merchant.Post("/assistant", handlers.HandleAssistant)

	merchant.Get("/orders/pending", handlers.HandleListPendingOrders)
	merchant.Post("/orders/confirm", handlers.HandleConfirmOrder)
	merchant.Post("/orders/reject", handlers.HandleRejectOrder)

	// --- Customer Routes ---
	customer := api.Group("/customer", middleware.Authenticate, middleware.CustomerRequired)
	customer.Post("/orders", handlers.HandlePlaceOrder)
}
