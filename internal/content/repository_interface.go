package content

import "context"

type Repository interface {
	List(ctx context.Context) ([]BlogPost, error)
}
