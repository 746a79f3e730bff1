package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"tienda/internal/domain"
	"tienda/internal/errors"
)

type MySQLProductRepository struct {
	db *sql.DB
}

func NewMySQLProductRepository(db *sql.DB) *MySQLProductRepository {
	return &MySQLProductRepository{db: db}
}

const productColumns = `id, name, description, rich_description, image, brand, price,
	       category_id, count_in_stock, rating, num_reviews, is_featured, date_created`

func scanProduct(row interface{ Scan(...any) error }) (*domain.Product, error) {
	var p domain.Product
	var categoryID sql.NullString
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.RichDescription, &p.Image, &p.Brand,
		&p.Price, &categoryID, &p.CountInStock, &p.Rating, &p.NumReviews,
		&p.IsFeatured, &p.DateCreated,
	)
	if err != nil {
		return nil, err
	}
	p.CategoryID = categoryID.String
	return &p, nil
}

func (r *MySQLProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = ?`

	product, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("product with id %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying product by id: %w", err)
	}

	return product, nil
}

// FindAll optionally filters by category ids.
func (r *MySQLProductRepository) FindAll(ctx context.Context, categoryIDs []string) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`
	args := []any{}

	if len(categoryIDs) > 0 {
		placeholders := strings.Repeat("?,", len(categoryIDs))
		query += ` WHERE category_id IN (` + placeholders[:len(placeholders)-1] + `)`
		for _, id := range categoryIDs {
			args = append(args, id)
		}
	}

	return r.queryProducts(ctx, query, args...)
}

func (r *MySQLProductRepository) FindFeatured(ctx context.Context, limit int) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE is_featured = TRUE LIMIT ?`

	return r.queryProducts(ctx, query, limit)
}

func (r *MySQLProductRepository) queryProducts(ctx context.Context, query string, args ...any) ([]domain.Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}
		products = append(products, *product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating products: %w", err)
	}

	return products, nil
}

func (r *MySQLProductRepository) Insert(ctx context.Context, product domain.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		product.ID, product.Name, product.Description, product.RichDescription,
		product.Image, product.Brand, product.Price, product.CategoryID,
		product.CountInStock, product.Rating, product.NumReviews,
		product.IsFeatured, product.DateCreated,
	)
	if err != nil {
		return fmt.Errorf("inserting product: %w", err)
	}

	return nil
}

func (r *MySQLProductRepository) Update(ctx context.Context, product domain.Product) error {
	query := `
		UPDATE products
		SET name = ?, description = ?, rich_description = ?, image = ?, brand = ?,
		    price = ?, category_id = ?, count_in_stock = ?, rating = ?,
		    num_reviews = ?, is_featured = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		product.Name, product.Description, product.RichDescription, product.Image,
		product.Brand, product.Price, product.CategoryID, product.CountInStock,
		product.Rating, product.NumReviews, product.IsFeatured, product.ID,
	)
	if err != nil {
		return fmt.Errorf("updating product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		if _, err := r.FindByID(ctx, product.ID); err != nil {
			return err
		}
	}

	return nil
}

func (r *MySQLProductRepository) DeleteByID(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("product with id %s not found", id))
	}

	return nil
}

func (r *MySQLProductRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting products: %w", err)
	}

	return count, nil
}
