package event

import (
	"context"
	"errors"
	"fmt"

	"joyjuncture/internal/email"
	"joyjuncture/internal/logger"
	"joyjuncture/internal/metrics"
	"joyjuncture/internal/user"
	"joyjuncture/internal/wallet"
)

var (
	ErrEventNotFound = errors.New("event not found")
	ErrEventPast     = errors.New("cannot register for a past event")
)

// registrationPoints is the flat award for joining an event.
const registrationPoints = 50

type Service interface {
	GetAllEvents(ctx context.Context) ([]Event, error)
	GetEventByID(ctx context.Context, id string) (*Event, error)
	Register(ctx context.Context, userID, eventID string) (*Event, int, error)
	GetUserRegistrations(ctx context.Context, userID string) ([]RegistrationWithEvent, error)
}

type service struct {
	repo         Repository
	userRepo     user.Repository
	ledger       wallet.Service
	emailService *email.Service
}

func NewService(repo Repository, userRepo user.Repository, ledger wallet.Service, emailService *email.Service) Service {
	return &service{
		repo:         repo,
		userRepo:     userRepo,
		ledger:       ledger,
		emailService: emailService,
	}
}

func (s *service) GetAllEvents(ctx context.Context) ([]Event, error) {
	return s.repo.List(ctx)
}

func (s *service) GetEventByID(ctx context.Context, id string) (*Event, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrEventNotFound
	}
	return event, nil
}

// Register records the registration and awards points. Registration and
// award are only announced after both writes succeeded; a failed ledger
// write surfaces as an error even though the registration row exists.
func (s *service) Register(ctx context.Context, userID, eventID string) (*Event, int, error) {
	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return nil, 0, ErrEventNotFound
	}

	if event.IsPast {
		return nil, 0, ErrEventPast
	}

	if _, err := s.repo.CreateRegistration(ctx, userID, eventID); err != nil {
		return nil, 0, err
	}

	description := fmt.Sprintf("Registered for: %s", event.Name)
	if err := s.ledger.AddTransaction(ctx, userID, description, registrationPoints, false); err != nil {
		return nil, 0, err
	}

	metrics.RecordEventRegistration()
	metrics.RecordPointsAwarded("event_registration", registrationPoints)

	if s.emailService != nil {
		u, err := s.userRepo.FindByID(ctx, userID)
		if err == nil {
			if err := s.emailService.SendEventConfirmation(ctx, u.Email, u.Name, event.Name, event.Location, event.Date); err != nil {
				logger.Errorf("Failed to queue event confirmation for %s: %v", u.Email, err)
			}
		}
	}

	return event, registrationPoints, nil
}

func (s *service) GetUserRegistrations(ctx context.Context, userID string) ([]RegistrationWithEvent, error) {
	return s.repo.ListRegistrations(ctx, userID)
}
