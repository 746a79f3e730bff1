package testutil

import (
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

// SetupTestDB configura una base de datos de prueba
// Espera que exista una BD MySQL en localhost:3306 llamada 'tienda_test'
func SetupTestDB(t *testing.T) *sql.DB {
	dsn := "root:@tcp(localhost:3306)/tienda_test?parseTime=true"
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Ping(); err != nil {
		t.Skipf("test database not available: %v", err)
	}

	return db
}

// CleanupTestDB limpia la BD de prueba
func CleanupTestDB(t *testing.T, db *sql.DB) {
	if db == nil {
		return
	}

	tables := []string{"order_items", "orders", "products", "categories", "users"}
	for _, table := range tables {
		if _, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)); err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}

	db.Close()
}

// SetupTestTables crea las tablas necesarias para los tests
func SetupTestTables(t *testing.T, db *sql.DB) {
	createCategories := `
	CREATE TABLE IF NOT EXISTS categories (
		id CHAR(36) NOT NULL PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		icon VARCHAR(100) NOT NULL DEFAULT '',
		color VARCHAR(50) NOT NULL DEFAULT ''
	)`

	createProducts := `
	CREATE TABLE IF NOT EXISTS products (
		id CHAR(36) NOT NULL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		description TEXT NOT NULL,
		rich_description TEXT NOT NULL,
		image VARCHAR(500) NOT NULL DEFAULT '',
		brand VARCHAR(100) NOT NULL DEFAULT '',
		price DECIMAL(10,2) NOT NULL DEFAULT 0.00,
		category_id CHAR(36),
		count_in_stock INT NOT NULL DEFAULT 0,
		rating DECIMAL(3,1) NOT NULL DEFAULT 0,
		num_reviews INT NOT NULL DEFAULT 0,
		is_featured TINYINT(1) NOT NULL DEFAULT 0,
		date_created DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`

	createUsers := `
	CREATE TABLE IF NOT EXISTS users (
		id CHAR(36) NOT NULL PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		email VARCHAR(150) NOT NULL UNIQUE,
		password_hash VARCHAR(100) NOT NULL,
		phone VARCHAR(30) NOT NULL DEFAULT '',
		is_admin TINYINT(1) NOT NULL DEFAULT 0,
		street VARCHAR(255) NOT NULL DEFAULT '',
		apartment VARCHAR(100) NOT NULL DEFAULT '',
		zip VARCHAR(20) NOT NULL DEFAULT '',
		city VARCHAR(100) NOT NULL DEFAULT '',
		country VARCHAR(100) NOT NULL DEFAULT ''
	)`

	createOrders := `
	CREATE TABLE IF NOT EXISTS orders (
		id CHAR(36) NOT NULL PRIMARY KEY,
		shipping_address1 VARCHAR(255) NOT NULL DEFAULT '',
		shipping_address2 VARCHAR(255) NOT NULL DEFAULT '',
		city VARCHAR(100) NOT NULL DEFAULT '',
		zip VARCHAR(20) NOT NULL DEFAULT '',
		country VARCHAR(100) NOT NULL DEFAULT '',
		phone VARCHAR(30) NOT NULL DEFAULT '',
		status VARCHAR(50) NOT NULL DEFAULT 'pending',
		channel VARCHAR(50) NOT NULL DEFAULT '',
		total_price DECIMAL(10,2) NOT NULL DEFAULT 0.00,
		user_id CHAR(36) NOT NULL,
		date_ordered DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		INDEX idx_orders_user (user_id)
	)`

	createOrderItems := `
	CREATE TABLE IF NOT EXISTS order_items (
		id CHAR(36) NOT NULL PRIMARY KEY,
		order_id CHAR(36) NOT NULL,
		product_id CHAR(36) NOT NULL,
		quantity INT NOT NULL DEFAULT 1,
		FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE,
		INDEX idx_order_items_order (order_id)
	)`

	tables := []struct {
		name  string
		query string
	}{
		{"categories", createCategories},
		{"products", createProducts},
		{"users", createUsers},
		{"orders", createOrders},
		{"order_items", createOrderItems},
	}

	for _, tbl := range tables {
		if _, err := db.Exec(tbl.query); err != nil {
			t.Logf("failed to create table %s: %v", tbl.name, err)
		}
	}
}
