package handlers

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/paymentintent"

	"biznova/config"
	"biznova/middleware"
	"biznova/models"
	"biznova/orders"
)

// PlaceOrderInput is a customer's purchase request against one merchant.
type PlaceOrderInput struct {
	MerchantID string        `json:"merchantId"`
	Items      []orders.Item `json:"items"`
}

// HandlePlaceOrder stores a customer's order for merchant confirmation. A
// new order from the same customer replaces the previous pending one; the
// order expires if the merchant never acts on it.
// POST /api/v1/customer/orders
func HandlePlaceOrder(c *fiber.Ctx) error {
	claims, err := middleware.ExtractClaims(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Unauthorized"})
	}

	var input PlaceOrderInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}
	if input.MerchantID == "" || len(input.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "merchantId and at least one item are required"})
	}
	for _, item := range input.Items {
		if item.Name == "" || item.Quantity <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Every item needs a name and a positive quantity"})
		}
	}

	order := pendingOrders.Put(orders.Order{
		MerchantID: input.MerchantID,
		CustomerID: claims.UserID,
		Items:      input.Items,
	})

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": order})
}

// HandleListPendingOrders returns the merchant's unexpired pending orders.
// GET /api/v1/merchant/orders/pending
func HandleListPendingOrders(c *fiber.Ctx) error {
	claims, err := middleware.ExtractClaims(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Unauthorized"})
	}

	return c.JSON(fiber.Map{"success": true, "data": pendingOrders.ListForMerchant(claims.UserID)})
}

// ConfirmOrderInput selects a pending order and how it will be paid.
type ConfirmOrderInput struct {
	CustomerID  string `json:"customerId"`
	PaymentType string `json:"paymentType"`
}

// HandleConfirmOrder turns a customer's pending order into a recorded sale,
// pricing each line from the merchant's current inventory. Card payments
// additionally get a Stripe payment intent.
// POST /api/v1/merchant/orders/confirm
func HandleConfirmOrder(c *fiber.Ctx) error {
	claims, err := middleware.ExtractClaims(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Unauthorized"})
	}

	var input ConfirmOrderInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}
	if input.CustomerID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "customerId is required"})
	}

	order, ok := pendingOrders.Get(claims.UserID, input.CustomerID)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "No pending order for this customer (it may have expired)"})
	}

	inventory, err := inventoryStore.FindByMerchant(c.Context(), claims.UserID)
	if err != nil {
		log.Printf("[ORDERS] Failed to load inventory: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to price the order"})
	}
	priceByName := make(map[string]float64, len(inventory))
	for _, item := range inventory {
		priceByName[strings.ToLower(item.Name)] = item.PricePerUnit
	}

	saleItems := make([]models.SaleItem, 0, len(order.Items))
	for _, item := range order.Items {
		price, found := priceByName[strings.ToLower(item.Name)]
		if !found {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"success": false, "message": "Item not in inventory: " + item.Name})
		}
		saleItems = append(saleItems, models.SaleItem{
			Name:         item.Name,
			Quantity:     item.Quantity,
			PricePerUnit: price,
		})
	}

	paymentType := input.PaymentType
	if paymentType == "" {
		paymentType = "cash"
	}

	sale := models.Sale{
		MerchantID:  claims.UserID,
		PaymentType: paymentType,
		Items:       saleItems,
	}
	if err := salesStore.Record(c.Context(), &sale); err != nil {
		log.Printf("[ORDERS] Failed to record confirmed order: %v", err)
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"success": false, "message": "Failed to confirm order: " + err.Error()})
	}

	// The order leaves the pending store only after the sale is recorded.
	pendingOrders.Remove(claims.UserID, input.CustomerID)

	response := fiber.Map{"sale": sale}

	if paymentType == "card" && config.AppConfig.StripeSecretKey != "" {
		params := &stripe.PaymentIntentParams{
			Amount:   stripe.Int64(int64(sale.TotalAmount * 100)), // cents
			Currency: stripe.String(string(stripe.CurrencyUSD)),
			AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
				Enabled: stripe.Bool(true),
			},
		}
		params.AddMetadata("merchantId", claims.UserID)
		params.AddMetadata("customerId", input.CustomerID)
		params.AddMetadata("orderId", order.ID)

		pi, err := paymentintent.New(params)
		if err != nil {
			log.Printf("[ORDERS] Stripe payment intent creation failed: %v", err)
		} else {
			response["clientSecret"] = pi.ClientSecret
		}
	}

	return c.JSON(fiber.Map{"success": true, "data": response})
}

// HandleRejectOrder drops a customer's pending order without recording a sale.
// POST /api/v1/merchant/orders/reject
func HandleRejectOrder(c *fiber.Ctx) error {
	claims, err := middleware.ExtractClaims(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Unauthorized"})
	}

	var input struct {
		CustomerID string `json:"customerId"`
	}
	if err := c.BodyParser(&input); err != nil || input.CustomerID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "customerId is required"})
	}

	if _, ok := pendingOrders.Remove(claims.UserID, input.CustomerID); !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "No pending order for this customer"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
