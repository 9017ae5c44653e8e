package content

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]BlogPost, error) {
	query := `
		SELECT id, title, date, excerpt, image_url
		FROM blog_posts
		ORDER BY date DESC`

	posts := []BlogPost{}
	if err := r.db.SelectContext(ctx, &posts, query); err != nil {
		return nil, fmt.Errorf("failed to list blog posts: %w", err)
	}

	return posts, nil
}
