package repository

import (
	"context"
	"database/sql"
	"fmt"

	"tienda/internal/domain"
	"tienda/internal/errors"
)

type MySQLOrderRepository struct {
	db *sql.DB
}

func NewMySQLOrderRepository(db *sql.DB) *MySQLOrderRepository {
	return &MySQLOrderRepository{db: db}
}

const orderColumns = `id, shipping_address1, shipping_address2, city, zip, country,
	       phone, status, channel, total_price, user_id, date_ordered`

func scanOrder(row interface{ Scan(...any) error }) (*domain.Order, error) {
	var order domain.Order
	err := row.Scan(
		&order.ID, &order.ShippingAddress1, &order.ShippingAddress2,
		&order.City, &order.Zip, &order.Country, &order.Phone,
		&order.Status, &order.Channel, &order.TotalPrice,
		&order.UserID, &order.DateOrdered,
	)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *MySQLOrderRepository) Insert(ctx context.Context, tx *sql.Tx, order domain.Order) error {
	query := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := tx.ExecContext(ctx, query,
		order.ID, order.ShippingAddress1, order.ShippingAddress2,
		order.City, order.Zip, order.Country, order.Phone,
		order.Status, order.Channel, order.TotalPrice,
		order.UserID, order.DateOrdered,
	)
	if err != nil {
		return fmt.Errorf("inserting order: %w", err)
	}

	return nil
}

func (r *MySQLOrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = ?`

	order, err := scanOrder(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order with id %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying order by id: %w", err)
	}

	return order, nil
}

func (r *MySQLOrderRepository) FindAll(ctx context.Context) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY date_ordered DESC`

	return r.queryOrders(ctx, query)
}

func (r *MySQLOrderRepository) FindByUserID(ctx context.Context, userID string) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id = ? ORDER BY date_ordered DESC`

	return r.queryOrders(ctx, query, userID)
}

func (r *MySQLOrderRepository) queryOrders(ctx context.Context, query string, args ...any) ([]domain.Order, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying orders: %w", err)
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning order: %w", err)
		}
		orders = append(orders, *order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating orders: %w", err)
	}

	return orders, nil
}

// UpdateStatus changes only the status column. Existence is checked by the
// caller: MySQL reports zero affected rows for a same-value update, so the
// row count cannot distinguish "missing" from "already in that status".
func (r *MySQLOrderRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	query := `UPDATE orders SET status = ? WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, status, id); err != nil {
		return fmt.Errorf("updating order status: %w", err)
	}

	return nil
}

func (r *MySQLOrderRepository) DeleteByID(ctx context.Context, id string) error {
	query := `DELETE FROM orders WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting order: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("order with id %s not found", id))
	}

	return nil
}

func (r *MySQLOrderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting orders: %w", err)
	}

	return count, nil
}

func (r *MySQLOrderRepository) SumTotalPrice(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(total_price), 0) FROM orders`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("summing order totals: %w", err)
	}

	return total, nil
}
