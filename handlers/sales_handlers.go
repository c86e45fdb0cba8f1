package handlers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"biznova/middleware"
	"biznova/models"
)

// CreateSaleInput defines the expected input for recording a new sale.
type CreateSaleInput struct {
	PaymentType string            `json:"paymentType"`
	Items       []models.SaleItem `json:"items"`
}

// HandleCreateSale records a completed sale and decrements stock.
// POST /api/v1/merchant/sales
func HandleCreateSale(c *fiber.Ctx) error {
	claims, err := middleware.ExtractClaims(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Unauthorized"})
	}

	var input CreateSaleInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}
	if len(input.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "A sale needs at least one item"})
	}

	sale := models.Sale{
		MerchantID:  claims.UserID,
		PaymentType: input.PaymentType,
		Items:       input.Items,
	}
	if sale.PaymentType == "" {
		sale.PaymentType = "cash"
	}

	if err := salesStore.Record(c.Context(), &sale); err != nil {
		log.Printf("[SALES] Failed to record sale: %v", err)
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"success": false, "message": "Failed to record sale: " + err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": sale})
}

// HandleListSales returns the merchant's sales over a trailing window.
// GET /api/v1/merchant/sales?days=30
func HandleListSales(c *fiber.Ctx) error {
	claims, err := middleware.ExtractClaims(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Unauthorized"})
	}

	days := c.QueryInt("days", 30)
	if days <= 0 {
		days = 30
	}

	now := time.Now()
	sales, err := salesStore.FindInRange(c.Context(), claims.UserID, now.AddDate(0, 0, -days), now)
	if err != nil {
		log.Printf("[SALES] Failed to list sales: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to retrieve sales"})
	}

	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"sales": sales}})
}
