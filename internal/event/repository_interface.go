package event

import "context"

type Repository interface {
	List(ctx context.Context) ([]Event, error)
	GetByID(ctx context.Context, id string) (*Event, error)
	CreateRegistration(ctx context.Context, userID, eventID string) (*Registration, error)
	HasRegistration(ctx context.Context, userID, eventID string) (bool, error)
	ListRegistrations(ctx context.Context, userID string) ([]RegistrationWithEvent, error)
}
