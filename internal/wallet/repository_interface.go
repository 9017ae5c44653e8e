package wallet

import "context"

type Repository interface {
	Append(ctx context.Context, userID, description string, points int) (*Transaction, error)
	AppendInitial(ctx context.Context, userID, description string, points int) (bool, error)
	ListByUser(ctx context.Context, userID string) ([]Transaction, error)
	CountByDescription(ctx context.Context, userID, description string) (int, error)
}
