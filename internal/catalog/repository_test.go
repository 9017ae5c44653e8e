package catalog

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func setupCatalogMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	closer := func() { sqlxDB.Close() }
	return repo, mock, closer
}

func productColumns() []string {
	return []string{"id", "name", "tagline", "price", "image_url", "category", "occasion", "mood", "players_min", "players_max", "badges", "created_at"}
}

func TestRepository_List(t *testing.T) {
	repo, mock, close := setupCatalogMock(t)
	defer close()

	ctx := context.Background()

	rows := sqlmock.NewRows(productColumns()).
		AddRow("buzzed", "Buzzed", "The classic drinking game, now with a twist.", 1499, "", "Card Game", "Party", "Funny", 3, "20+", pq.StringArray{}, time.Now()).
		AddRow("dead-mans-deck", "Dead Man's Deck", "A pirate-themed card game.", 1999, "", "Card Game", "Party", "Competitive", 2, "4", pq.StringArray{"Best Seller"}, time.Now())

	mock.ExpectQuery("SELECT id, name, tagline, price").WillReturnRows(rows)

	products, err := repo.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, products, 2)
	require.Equal(t, "Buzzed", products[0].Name)
}

func TestRepository_ListByCategory(t *testing.T) {
	repo, mock, close := setupCatalogMock(t)
	defer close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id, name, tagline, price").
		WithArgs("Puzzle").
		WillReturnRows(sqlmock.NewRows(productColumns()).
			AddRow("galaxy-puzzle", "Galaxy Puzzle (1000 pcs)", "Get lost in the cosmos.", 2499, "", "Puzzle", "Family", "Casual", 1, "any", pq.StringArray{}, time.Now()))

	products, err := repo.List(ctx, "Puzzle")
	require.NoError(t, err)
	require.Len(t, products, 1)
	require.Equal(t, "Puzzle", products[0].Category)
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock, close := setupCatalogMock(t)
	defer close()

	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
		WithArgs("buzzed").
		WillReturnRows(sqlmock.NewRows(productColumns()).
			AddRow("buzzed", "Buzzed", "The classic drinking game, now with a twist.", 1499, "", "Card Game", "Party", "Funny", 3, "20+", pq.StringArray{}, time.Now()))

	product, err := repo.GetByID(ctx, "buzzed")
	require.NoError(t, err)
	require.Equal(t, 1499, product.Price)
}
