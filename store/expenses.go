package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"biznova/models"
)

// Expenses reads and appends a merchant's recorded costs.
type Expenses struct {
	DB *pgxpool.Pool
}

// SumForDay totals the merchant's expenses recorded on the given calendar day.
func (s *Expenses) SumForDay(ctx context.Context, merchantID string, day time.Time) (float64, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM expenses
		WHERE merchant_id = $1 AND created_at >= $2 AND created_at < $3
	`
	var total float64
	if err := s.DB.QueryRow(ctx, query, merchantID, start, end).Scan(&total); err != nil {
		return 0, fmt.Errorf("sum expenses: %w", err)
	}
	return total, nil
}

// Create inserts a new expense and fills in its generated fields.
func (s *Expenses) Create(ctx context.Context, expense *models.Expense) error {
	query := `
		INSERT INTO expenses (merchant_id, label, amount)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := s.DB.QueryRow(ctx, query, expense.MerchantID, expense.Label, expense.Amount).
		Scan(&expense.ID, &expense.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

// FindForDay returns the merchant's expenses recorded on the given day.
func (s *Expenses) FindForDay(ctx context.Context, merchantID string, day time.Time) ([]models.Expense, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	query := `
		SELECT id, merchant_id, label, amount, created_at
		FROM expenses
		WHERE merchant_id = $1 AND created_at >= $2 AND created_at < $3
		ORDER BY created_at DESC
	`
	rows, err := s.DB.Query(ctx, query, merchantID, start, end)
	if err != nil {
		return nil, fmt.Errorf("query expenses: %w", err)
	}
	defer rows.Close()

	expenses := make([]models.Expense, 0)
	for rows.Next() {
		var e models.Expense
		if err := rows.Scan(&e.ID, &e.MerchantID, &e.Label, &e.Amount, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}
