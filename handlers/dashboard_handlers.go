package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"biznova/aitools"
	"biznova/assistant"
	"biznova/middleware"
)

// HandleGetMerchantDashboardSummary returns the deterministic business
// metrics shown on the merchant dashboard: today's profit, low-stock items,
// and top sellers. The same tools back the AI assistant.
// GET /api/v1/merchant/dashboard/summary
func HandleGetMerchantDashboardSummary(c *fiber.Ctx) error {
	claims, err := middleware.ExtractClaims(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Unauthorized"})
	}

	results, err := intentRouter.Dispatch(c.Context(), assistant.IntentBusinessOverview, aitools.Params{MerchantID: claims.UserID})
	if err != nil {
		log.Printf("[DASHBOARD] Failed to compute summary: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to compute dashboard summary"})
	}

	return c.JSON(fiber.Map{"success": true, "data": results})
}
