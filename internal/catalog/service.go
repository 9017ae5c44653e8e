package catalog

import (
	"context"
	"errors"
	"fmt"

	"joyjuncture/internal/metrics"
	"joyjuncture/internal/wallet"
)

var ErrProductNotFound = errors.New("product not found")

// purchasePointsPerRupee converts a product's price into earned Joy
// Points. Purchases never charge money, they only award points.
const purchasePointsPerRupee = 10

type Service interface {
	GetAllProducts(ctx context.Context, category string) ([]Product, error)
	GetProductByID(ctx context.Context, id string) (*Product, error)
	Purchase(ctx context.Context, userID, productID string) (*Product, int, error)
}

type service struct {
	repo   Repository
	ledger wallet.Service
}

func NewService(repo Repository, ledger wallet.Service) Service {
	return &service{
		repo:   repo,
		ledger: ledger,
	}
}

func (s *service) GetAllProducts(ctx context.Context, category string) ([]Product, error) {
	return s.repo.List(ctx, category)
}

func (s *service) GetProductByID(ctx context.Context, id string) (*Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// Purchase awards points for a product. The points are not announced to
// the caller unless the ledger write succeeded.
func (s *service) Purchase(ctx context.Context, userID, productID string) (*Product, int, error) {
	product, err := s.repo.GetByID(ctx, productID)
	if err != nil {
		return nil, 0, ErrProductNotFound
	}

	points := product.Price * purchasePointsPerRupee
	description := fmt.Sprintf("Purchase: %s", product.Name)

	if err := s.ledger.AddTransaction(ctx, userID, description, points, false); err != nil {
		return nil, 0, err
	}

	metrics.RecordPurchase()
	metrics.RecordPointsAwarded("purchase", points)

	return product, points, nil
}
