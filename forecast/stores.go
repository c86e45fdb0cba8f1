package forecast

import (
	"context"
	"time"

	"biznova/models"
)

// InventoryStore reads a merchant's stock records. The forecast pipeline
// never writes inventory.
type InventoryStore interface {
	FindByMerchant(ctx context.Context, merchantID string) ([]models.InventoryItem, error)
}

// SalesStore reads a merchant's sales within a date range. The forecast
// pipeline never writes sales.
type SalesStore interface {
	FindInRange(ctx context.Context, merchantID string, from, to time.Time) ([]models.Sale, error)
}
