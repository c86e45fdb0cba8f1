package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"biznova/models"
)

// Shops reads shop records for customer-side discovery.
type Shops struct {
	DB *pgxpool.Pool
}

// FindActive returns every active shop with its coordinates.
func (s *Shops) FindActive(ctx context.Context) ([]models.Shop, error) {
	query := `
		SELECT id, merchant_id, name, address, latitude, longitude, is_active, created_at, updated_at
		FROM shops
		WHERE is_active = true
	`
	rows, err := s.DB.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query shops: %w", err)
	}
	defer rows.Close()

	shops := make([]models.Shop, 0)
	for rows.Next() {
		var shop models.Shop
		if err := rows.Scan(&shop.ID, &shop.MerchantID, &shop.Name, &shop.Address,
			&shop.Latitude, &shop.Longitude, &shop.IsActive, &shop.CreatedAt, &shop.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan shop: %w", err)
		}
		shops = append(shops, shop)
	}
	return shops, rows.Err()
}
