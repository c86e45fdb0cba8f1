package store

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"biznova/models"
)

// Sales reads and appends a merchant's transaction history.
type Sales struct {
	DB *pgxpool.Pool
}

// FindInRange returns every sale for the merchant created within [from, to],
// with line items attached. A failed item fetch leaves that sale with an
// empty item list rather than failing the whole read.
func (s *Sales) FindInRange(ctx context.Context, merchantID string, from, to time.Time) ([]models.Sale, error) {
	query := `
		SELECT id, merchant_id, total_amount, payment_type, created_at
		FROM sales
		WHERE merchant_id = $1 AND created_at BETWEEN $2 AND $3
		ORDER BY created_at DESC
	`
	rows, err := s.DB.Query(ctx, query, merchantID, from, to)
	if err != nil {
		return nil, fmt.Errorf("query sales: %w", err)
	}
	defer rows.Close()

	sales := make([]models.Sale, 0)
	for rows.Next() {
		var sale models.Sale
		if err := rows.Scan(&sale.ID, &sale.MerchantID, &sale.TotalAmount, &sale.PaymentType, &sale.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		sales = append(sales, sale)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range sales {
		items, err := s.findItems(ctx, sales[i].ID)
		if err != nil {
			log.Printf("[SALES] Failed to fetch items for sale %s: %v", sales[i].ID, err)
			sales[i].Items = []models.SaleItem{}
			continue
		}
		sales[i].Items = items
	}

	return sales, nil
}

func (s *Sales) findItems(ctx context.Context, saleID string) ([]models.SaleItem, error) {
	query := `
		SELECT id, sale_id, name, quantity, price_per_unit
		FROM sale_items
		WHERE sale_id = $1
	`
	rows, err := s.DB.Query(ctx, query, saleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]models.SaleItem, 0)
	for rows.Next() {
		var item models.SaleItem
		if err := rows.Scan(&item.ID, &item.SaleID, &item.Name, &item.Quantity, &item.PricePerUnit); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// Record inserts a sale with its line items and decrements stock for each
// named item, all in one transaction. Overselling aborts the transaction.
func (s *Sales) Record(ctx context.Context, sale *models.Sale) error {
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin sale transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var totalAmount float64
	for _, item := range sale.Items {
		totalAmount += float64(item.Quantity) * item.PricePerUnit
	}
	sale.TotalAmount = totalAmount

	saleQuery := `
		INSERT INTO sales (merchant_id, total_amount, payment_type)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	if err := tx.QueryRow(ctx, saleQuery, sale.MerchantID, sale.TotalAmount, sale.PaymentType).Scan(&sale.ID, &sale.CreatedAt); err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}

	for i := range sale.Items {
		item := &sale.Items[i]
		itemQuery := `
			INSERT INTO sale_items (sale_id, name, quantity, price_per_unit)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`
		if err := tx.QueryRow(ctx, itemQuery, sale.ID, item.Name, item.Quantity, item.PricePerUnit).Scan(&item.ID); err != nil {
			return fmt.Errorf("insert sale item: %w", err)
		}
		item.SaleID = sale.ID

		stockQuery := `
			UPDATE inventory_items
			SET stock_quantity = stock_quantity - $1, updated_at = NOW()
			WHERE merchant_id = $2 AND LOWER(name) = LOWER($3) AND stock_quantity >= $1
		`
		tag, err := tx.Exec(ctx, stockQuery, item.Quantity, sale.MerchantID, item.Name)
		if err != nil {
			return fmt.Errorf("decrement stock: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("insufficient stock for item %q", item.Name)
		}
	}

	return tx.Commit(ctx)
}
