package repository

import (
	"context"
	"database/sql"
	"fmt"
)

const schema = `
	CREATE TABLE IF NOT EXISTS categories (
		id UUID PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		slug VARCHAR(100) NOT NULL,
		description TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT categories_name_key UNIQUE (name),
		CONSTRAINT categories_slug_key UNIQUE (slug),
		CONSTRAINT categories_slug_format CHECK (slug ~ '^[a-z0-9-]+$')
	);

	CREATE TABLE IF NOT EXISTS products (
		id UUID PRIMARY KEY,
		name VARCHAR(200) NOT NULL,
		slug VARCHAR(200) NOT NULL,
		category_id UUID NOT NULL,
		price_1month BIGINT NOT NULL DEFAULT 0,
		price_2month BIGINT NOT NULL DEFAULT 0,
		price_3month BIGINT NOT NULL DEFAULT 0,
		image_url TEXT,
		description TEXT,
		specifications TEXT,
		key_features TEXT,
		youtube_url TEXT,
		seo_meta_title VARCHAR(255),
		seo_meta_description TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT products_slug_key UNIQUE (slug),
		CONSTRAINT products_slug_format CHECK (slug ~ '^[a-z0-9-]+$'),
		CONSTRAINT products_category_id_fkey FOREIGN KEY (category_id) REFERENCES categories(id) ON DELETE CASCADE,
		CONSTRAINT products_prices_non_negative CHECK (price_1month >= 0 AND price_2month >= 0 AND price_3month >= 0)
	);

	CREATE INDEX IF NOT EXISTS products_category_order_idx ON products (category_id, created_at, id);

	CREATE TABLE IF NOT EXISTS leads (
		id UUID PRIMARY KEY,
		name VARCHAR(200) NOT NULL,
		phone VARCHAR(32) NOT NULL,
		source VARCHAR(50) NOT NULL,
		product VARCHAR(255),
		page_url TEXT,
		message TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS leads_phone_idx ON leads (phone);

	CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		email VARCHAR(255) NOT NULL,
		full_name VARCHAR(200),
		google_id VARCHAR(255),
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		is_admin BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT users_email_key UNIQUE (email),
		CONSTRAINT users_google_id_key UNIQUE (google_id)
	);
`

func initSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to execute schema creation: %w", err)
	}

	return nil
}
