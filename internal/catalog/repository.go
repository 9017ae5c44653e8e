package catalog

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context, category string) ([]Product, error) {
	query := `
		SELECT id, name, tagline, price, image_url, category, occasion, mood,
		       players_min, players_max, badges, created_at
		FROM products
	`
	args := []interface{}{}

	if category != "" {
		query += " WHERE category = $1"
		args = append(args, category)
	}

	query += " ORDER BY name ASC"

	var products []Product
	err := r.db.SelectContext(ctx, &products, query, args...)
	if err != nil {
		return nil, err
	}

	return products, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Product, error) {
	query := `
		SELECT id, name, tagline, price, image_url, category, occasion, mood,
		       players_min, players_max, badges, created_at
		FROM products
		WHERE id = $1
	`

	var product Product
	err := r.db.GetContext(ctx, &product, query, id)
	if err != nil {
		return nil, err
	}

	return &product, nil
}
