package database

import (
	"database/sql"
	"fmt"
)

func Open(url string) (*sql.DB, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates the schema if it does not exist yet. The id column type
// depends on the driver: postgres in production, sqlite3 in tests.
func Migrate(db *sql.DB, driver string) error {
	idColumn := "SERIAL PRIMARY KEY"
	if driver == "sqlite3" {
		idColumn = "INTEGER PRIMARY KEY AUTOINCREMENT"
	}
	for _, table := range schema {
		if _, err := db.Exec(fmt.Sprintf(table, idColumn)); err != nil {
			return err
		}
	}
	return nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id %s,
		name VARCHAR(50) NOT NULL,
		email VARCHAR(255) NOT NULL UNIQUE,
		password VARCHAR(255) NOT NULL,
		role VARCHAR(20) NOT NULL DEFAULT 'user'
	)`,
	`CREATE TABLE IF NOT EXISTS categories (
		id %s,
		category_name VARCHAR(255) NOT NULL,
		description TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS brands (
		id %s,
		brand_name VARCHAR(255) NOT NULL,
		brand_address VARCHAR(255) NOT NULL,
		brand_email VARCHAR(255) NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id %s,
		name VARCHAR(255) NOT NULL,
		price DECIMAL(12,2) NOT NULL,
		stock INTEGER NOT NULL,
		category_id INTEGER NOT NULL,
		brand_id INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS stores (
		id %s,
		name VARCHAR(255) NOT NULL,
		phone_number VARCHAR(30) NOT NULL,
		address VARCHAR(255) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS payments (
		id %s,
		method VARCHAR(255) NOT NULL,
		number_id VARCHAR(255) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS deliveries (
		id %s,
		order_type VARCHAR(255) NOT NULL,
		extra_protection BOOLEAN NOT NULL DEFAULT FALSE,
		shipping_price DECIMAL(8,2) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS vouchers (
		id %s,
		discount_price DECIMAL(8,2) NOT NULL,
		expired_date VARCHAR(10) NOT NULL,
		description VARCHAR(255) NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id %s,
		order_date VARCHAR(10) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		user_id INTEGER NOT NULL,
		product_id INTEGER NOT NULL,
		voucher_id INTEGER,
		payment_id INTEGER,
		delivery_id INTEGER,
		destination_address TEXT NOT NULL
	)`,
}
