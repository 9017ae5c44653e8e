package wallet

import (
	"context"
	"errors"

	"joyjuncture/internal/metrics"
)

// WelcomeDescription is the reserved description of the one-time welcome
// bonus. At most one transaction per user may carry it.
const WelcomeDescription = "Welcome to Joy Juncture!"

var (
	ErrEmptyUserID      = errors.New("user id must not be empty")
	ErrEmptyDescription = errors.New("description must not be empty")
)

type Service interface {
	// GetHistory returns the user's transactions newest first. A user
	// with an empty ledger gets the welcome bonus recorded first, so
	// the result is never empty.
	GetHistory(ctx context.Context, userID string) ([]Transaction, error)

	// AddTransaction appends one earning event. With initial=true the
	// call is idempotent: a duplicate welcome insert is a no-op success.
	AddTransaction(ctx context.Context, userID, description string, points int, initial bool) error

	// GetTotalPoints is the sum of points over GetHistory. The balance
	// is always derived from the log, never stored.
	GetTotalPoints(ctx context.Context, userID string) (int, error)
}

type service struct {
	repo          Repository
	welcomePoints int
}

func NewService(repo Repository, welcomePoints int) Service {
	return &service{
		repo:          repo,
		welcomePoints: welcomePoints,
	}
}

func (s *service) GetHistory(ctx context.Context, userID string) ([]Transaction, error) {
	if userID == "" {
		return nil, ErrEmptyUserID
	}

	txs, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(txs) > 0 {
		return txs, nil
	}

	// First ledger access: record the welcome bonus, then re-read.
	if err := s.AddTransaction(ctx, userID, WelcomeDescription, s.welcomePoints, true); err != nil {
		return nil, err
	}

	return s.repo.ListByUser(ctx, userID)
}

func (s *service) AddTransaction(ctx context.Context, userID, description string, points int, initial bool) error {
	if userID == "" {
		return ErrEmptyUserID
	}
	if description == "" {
		return ErrEmptyDescription
	}

	if initial {
		inserted, err := s.repo.AppendInitial(ctx, userID, description, points)
		if err != nil {
			return err
		}
		if inserted {
			metrics.RecordWelcomeBonus()
			metrics.RecordWalletTransaction("welcome")
		}
		return nil
	}

	if _, err := s.repo.Append(ctx, userID, description, points); err != nil {
		return err
	}

	metrics.RecordWalletTransaction("earn")
	return nil
}

func (s *service) GetTotalPoints(ctx context.Context, userID string) (int, error) {
	txs, err := s.GetHistory(ctx, userID)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, tx := range txs {
		total += tx.Points
	}

	return total, nil
}
