package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"biznova/middleware"
	"biznova/models"
	"biznova/utils"
)

// HandleListInventory returns the merchant's inventory, paginated.
// GET /api/v1/merchant/inventory
func HandleListInventory(c *fiber.Ctx) error {
	claims, err := middleware.ExtractClaims(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Unauthorized"})
	}

	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("pageSize", 20)

	items, err := inventoryStore.FindByMerchant(c.Context(), claims.UserID)
	if err != nil {
		log.Printf("[INVENTORY] Failed to list items: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to retrieve inventory items"})
	}

	pagination := utils.CreatePagination(len(items), page, pageSize)
	start := (pagination.CurrentPage - 1) * pagination.PageSize
	if start > len(items) {
		start = len(items)
	}
	end := start + pagination.PageSize
	if end > len(items) {
		end = len(items)
	}

	return c.JSON(fiber.Map{"success": true, "data": items[start:end], "pagination": pagination})
}

// HandleCreateInventoryItem adds a new item to the merchant's inventory.
// POST /api/v1/merchant/inventory
func HandleCreateInventoryItem(c *fiber.Ctx) error {
	claims, err := middleware.ExtractClaims(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Unauthorized"})
	}

	var item models.InventoryItem
	if err := c.BodyParser(&item); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}

	if item.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Item name is required"})
	}
	if item.StockQuantity < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Stock quantity cannot be negative"})
	}

	item.MerchantID = claims.UserID
	if err := inventoryStore.Create(c.Context(), &item); err != nil {
		log.Printf("[INVENTORY] Failed to create item: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to create inventory item"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": item})
}

// HandleAdjustStock applies a signed stock delta to one item.
// PUT /api/v1/merchant/inventory/:itemId/stock
func HandleAdjustStock(c *fiber.Ctx) error {
	claims, err := middleware.ExtractClaims(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Unauthorized"})
	}

	itemID := c.Params("itemId")

	var req struct {
		Quantity int    `json:"quantity"`
		Reason   string `json:"reason"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}

	newQuantity, err := inventoryStore.AdjustStock(c.Context(), claims.UserID, itemID, req.Quantity)
	if err != nil {
		log.Printf("[INVENTORY] Failed to adjust stock for %s: %v", itemID, err)
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Item not found or stock adjustment failed"})
	}

	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"item_id": itemID, "stock_quantity": newQuantity}})
}
