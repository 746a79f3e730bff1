package repository

import (
	"context"
	"database/sql"
	"fmt"

	"tienda/internal/domain"
)

// MySQLOrderItemRepository owns order lines. Lines are only ever written
// inside an order-creation transaction and only ever removed by the order
// cascade; there is no independent listing.
type MySQLOrderItemRepository struct {
	db *sql.DB
}

func NewMySQLOrderItemRepository(db *sql.DB) *MySQLOrderItemRepository {
	return &MySQLOrderItemRepository{db: db}
}

func (r *MySQLOrderItemRepository) Insert(ctx context.Context, tx *sql.Tx, item domain.OrderItem) error {
	query := `INSERT INTO order_items (id, order_id, product_id, quantity) VALUES (?, ?, ?, ?)`

	_, err := tx.ExecContext(ctx, query, item.ID, item.OrderID, item.ProductID, item.Quantity)
	if err != nil {
		return fmt.Errorf("inserting order item: %w", err)
	}

	return nil
}

func (r *MySQLOrderItemRepository) FindByOrderID(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	query := `SELECT id, order_id, product_id, quantity FROM order_items WHERE order_id = ?`

	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("querying order items: %w", err)
	}
	defer rows.Close()

	items := []domain.OrderItem{}
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity); err != nil {
			return nil, fmt.Errorf("scanning order item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order items: %w", err)
	}

	return items, nil
}

func (r *MySQLOrderItemRepository) DeleteByID(ctx context.Context, id string) error {
	query := `DELETE FROM order_items WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("deleting order item: %w", err)
	}

	return nil
}
