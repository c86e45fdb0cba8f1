// Package store contains the pgx-backed data access layer. Queries follow
// the raw-SQL query + scan convention used across the handlers.
package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"biznova/models"
)

// Inventory reads and writes a merchant's stock records.
type Inventory struct {
	DB *pgxpool.Pool
}

// FindByMerchant returns every inventory item owned by the merchant.
func (s *Inventory) FindByMerchant(ctx context.Context, merchantID string) ([]models.InventoryItem, error) {
	query := `
		SELECT id, merchant_id, name, category, stock_quantity, price_per_unit, cost_per_unit, created_at, updated_at
		FROM inventory_items
		WHERE merchant_id = $1
		ORDER BY name
	`
	rows, err := s.DB.Query(ctx, query, merchantID)
	if err != nil {
		return nil, fmt.Errorf("query inventory: %w", err)
	}
	defer rows.Close()

	items := make([]models.InventoryItem, 0)
	for rows.Next() {
		var item models.InventoryItem
		if err := rows.Scan(&item.ID, &item.MerchantID, &item.Name, &item.Category,
			&item.StockQuantity, &item.PricePerUnit, &item.CostPerUnit,
			&item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// Create inserts a new inventory item and fills in its generated fields.
func (s *Inventory) Create(ctx context.Context, item *models.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (merchant_id, name, category, stock_quantity, price_per_unit, cost_per_unit)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	err := s.DB.QueryRow(ctx, query, item.MerchantID, item.Name, item.Category,
		item.StockQuantity, item.PricePerUnit, item.CostPerUnit,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert inventory item: %w", err)
	}
	return nil
}

// AdjustStock applies a signed quantity delta and returns the new quantity.
// The quantity never goes below zero.
func (s *Inventory) AdjustStock(ctx context.Context, merchantID, itemID string, delta int) (int, error) {
	query := `
		UPDATE inventory_items
		SET stock_quantity = GREATEST(stock_quantity + $1, 0), updated_at = NOW()
		WHERE id = $2 AND merchant_id = $3
		RETURNING stock_quantity
	`
	var newQuantity int
	if err := s.DB.QueryRow(ctx, query, delta, itemID, merchantID).Scan(&newQuantity); err != nil {
		return 0, fmt.Errorf("adjust stock: %w", err)
	}
	return newQuantity, nil
}
