package handlers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"biznova/middleware"
	"biznova/models"
)

// HandleCreateExpense records a merchant expense.
// POST /api/v1/merchant/expenses
func HandleCreateExpense(c *fiber.Ctx) error {
	claims, err := middleware.ExtractClaims(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Unauthorized"})
	}

	var expense models.Expense
	if err := c.BodyParser(&expense); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}
	if expense.Label == "" || expense.Amount <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Expense needs a label and a positive amount"})
	}

	expense.MerchantID = claims.UserID
	if err := expenseStore.Create(c.Context(), &expense); err != nil {
		log.Printf("[EXPENSES] Failed to create expense: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to record expense"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": expense})
}

// HandleListTodaysExpenses returns the merchant's expenses for today.
// GET /api/v1/merchant/expenses/today
func HandleListTodaysExpenses(c *fiber.Ctx) error {
	claims, err := middleware.ExtractClaims(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Unauthorized"})
	}

	expenses, err := expenseStore.FindForDay(c.Context(), claims.UserID, time.Now())
	if err != nil {
		log.Printf("[EXPENSES] Failed to list expenses: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to retrieve expenses"})
	}

	return c.JSON(fiber.Map{"success": true, "data": expenses})
}
