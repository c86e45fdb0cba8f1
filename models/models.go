package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// --- JWT & Auth ---

type JwtClaims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// --- Core Models ---

// User represents an account in the system (merchant or customer).
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Shop is a merchant's retail location, discoverable by customers nearby.
type Shop struct {
	ID         string    `json:"id"`
	MerchantID string    `json:"merchant_id"`
	Name       string    `json:"name"`
	Address    *string   `json:"address,omitempty"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// InventoryItem is a stock-keeping item owned by a single merchant.
type InventoryItem struct {
	ID            string    `json:"id"`
	MerchantID    string    `json:"merchant_id"`
	Name          string    `json:"name"`
	Category      *string   `json:"category,omitempty"`
	StockQuantity int       `json:"stock_quantity"`
	PricePerUnit  float64   `json:"price_per_unit"`
	CostPerUnit   float64   `json:"cost_per_unit"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Sale is a single completed transaction. Append-only after creation.
type Sale struct {
	ID          string     `json:"id"`
	MerchantID  string     `json:"merchant_id"`
	TotalAmount float64    `json:"total_amount"`
	PaymentType string     `json:"payment_type"`
	CreatedAt   time.Time  `json:"created_at"`
	Items       []SaleItem `json:"items,omitempty"`
}

// SaleItem is an individual line within a Sale.
type SaleItem struct {
	ID           string  `json:"id,omitempty"`
	SaleID       string  `json:"sale_id,omitempty"`
	Name         string  `json:"name"`
	Quantity     int     `json:"quantity"`
	PricePerUnit float64 `json:"price_per_unit"`
}

// Expense is a cost recorded by a merchant (rent, supplies, wages, ...).
type Expense struct {
	ID         string    `json:"id"`
	MerchantID string    `json:"merchant_id"`
	Label      string    `json:"label"`
	Amount     float64   `json:"amount"`
	CreatedAt  time.Time `json:"created_at"`
}
