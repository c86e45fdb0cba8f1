package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"biznova/middleware"
)

// HandleGetFestivalForecast returns the festival demand forecast for the
// merchant's inventory and recent sales.
// GET /api/v1/merchant/forecast/festival
func HandleGetFestivalForecast(c *fiber.Ctx) error {
	claims, err := middleware.ExtractClaims(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Unauthorized"})
	}

	result, err := assembler.Assemble(c.Context(), claims.UserID)
	if err != nil {
		log.Printf("[FORECAST] Assembly failed for merchant %s: %v", claims.UserID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to generate forecast"})
	}

	if !result.HasForecast {
		return c.JSON(fiber.Map{"success": true, "data": result, "message": "No upcoming festivals found"})
	}

	return c.JSON(fiber.Map{"success": true, "data": result})
}
