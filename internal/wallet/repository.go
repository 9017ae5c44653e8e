package wallet

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var (
	// ErrStoreUnavailable marks connectivity or service failures of the
	// ledger store. Callers may retry; the ledger itself never does.
	ErrStoreUnavailable = errors.New("ledger store unavailable")

	// ErrPermissionDenied marks a store-side access-control rejection.
	// It usually means misconfiguration and must not be retried.
	ErrPermissionDenied = errors.New("ledger store permission denied")
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// mapStoreError classifies a driver error into the ledger taxonomy,
// keeping the original cause in the message.
func mapStoreError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "42501", "28000", "28P01":
			return fmt.Errorf("%w: %v", ErrPermissionDenied, err)
		}
	}
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}

func (r *repository) Append(ctx context.Context, userID, description string, points int) (*Transaction, error) {
	query := `
		INSERT INTO wallet_transactions (user_id, description, points)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, description, points, date
	`

	var tx Transaction
	err := r.db.GetContext(ctx, &tx, query, userID, description, points)
	if err != nil {
		return nil, mapStoreError(err)
	}

	return &tx, nil
}

// AppendInitial inserts the welcome transaction only if the user has no
// transaction with the same description yet. The guard is a single
// conditional statement, backed by a partial unique index on the reserved
// description, so two racing first-time sessions produce exactly one row.
func (r *repository) AppendInitial(ctx context.Context, userID, description string, points int) (bool, error) {
	query := `
		INSERT INTO wallet_transactions (user_id, description, points)
		SELECT $1, $2, $3
		WHERE NOT EXISTS (
			SELECT 1 FROM wallet_transactions
			WHERE user_id = $1 AND description = $2
		)
	`

	res, err := r.db.ExecContext(ctx, query, userID, description, points)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			// Lost the race to the unique index: the bonus exists.
			return false, nil
		}
		return false, mapStoreError(err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, mapStoreError(err)
	}

	return n > 0, nil
}

func (r *repository) ListByUser(ctx context.Context, userID string) ([]Transaction, error) {
	query := `
		SELECT id, user_id, description, points, date
		FROM wallet_transactions
		WHERE user_id = $1
		ORDER BY date DESC, id DESC
	`

	var txs []Transaction
	err := r.db.SelectContext(ctx, &txs, query, userID)
	if err != nil {
		return nil, mapStoreError(err)
	}

	return txs, nil
}

func (r *repository) CountByDescription(ctx context.Context, userID, description string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM wallet_transactions
		WHERE user_id = $1 AND description = $2
	`

	var count int
	err := r.db.GetContext(ctx, &count, query, userID, description)
	if err != nil {
		return 0, mapStoreError(err)
	}

	return count, nil
}
