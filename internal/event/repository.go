package event

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"joyjuncture/internal/db"
)

var ErrAlreadyRegistered = errors.New("user already registered for this event")

type repository struct {
	db *sqlx.DB
}

func NewRepository(database *sqlx.DB) Repository {
	return &repository{db: database}
}

func (r *repository) List(ctx context.Context) ([]Event, error) {
	query := `
		SELECT id, name, date, location, description, price, image_url,
		       date < NOW() AS is_past, created_at
		FROM events
		ORDER BY date DESC
	`

	var events []Event
	err := r.db.SelectContext(ctx, &events, query)
	if err != nil {
		return nil, err
	}

	return events, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Event, error) {
	query := `
		SELECT id, name, date, location, description, price, image_url,
		       date < NOW() AS is_past, created_at
		FROM events
		WHERE id = $1
	`

	var event Event
	err := r.db.GetContext(ctx, &event, query, id)
	if err != nil {
		return nil, err
	}

	return &event, nil
}

func (r *repository) CreateRegistration(ctx context.Context, userID, eventID string) (*Registration, error) {
	query := `
		INSERT INTO event_registrations (user_id, event_id)
		VALUES ($1, $2)
		RETURNING id, user_id, event_id, created_at
	`

	var reg Registration
	err := r.db.GetContext(ctx, &reg, query, userID, eventID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, ErrAlreadyRegistered
		}
		return nil, err
	}

	return &reg, nil
}

func (r *repository) HasRegistration(ctx context.Context, userID, eventID string) (bool, error) {
	return db.Exists(ctx, r.db,
		`SELECT EXISTS(SELECT 1 FROM event_registrations WHERE user_id = $1 AND event_id = $2)`,
		userID, eventID,
	)
}

func (r *repository) ListRegistrations(ctx context.Context, userID string) ([]RegistrationWithEvent, error) {
	query := `
		SELECT r.id, r.user_id, r.event_id, r.created_at,
		       e.name AS event_name, e.date AS event_date, e.location
		FROM event_registrations r
		JOIN events e ON e.id = r.event_id
		WHERE r.user_id = $1
		ORDER BY e.date DESC
	`

	var regs []RegistrationWithEvent
	err := r.db.SelectContext(ctx, &regs, query, userID)
	if err != nil {
		return nil, err
	}

	return regs, nil
}
