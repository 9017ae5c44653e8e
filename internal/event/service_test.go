package event

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"joyjuncture/internal/user"
	"joyjuncture/internal/wallet"
)

// MockRepository is a mock implementation of Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context) ([]Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Event), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id string) (*Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Event), args.Error(1)
}

func (m *MockRepository) CreateRegistration(ctx context.Context, userID, eventID string) (*Registration, error) {
	args := m.Called(ctx, userID, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Registration), args.Error(1)
}

func (m *MockRepository) HasRegistration(ctx context.Context, userID, eventID string) (bool, error) {
	args := m.Called(ctx, userID, eventID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) ListRegistrations(ctx context.Context, userID string) ([]RegistrationWithEvent, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]RegistrationWithEvent), args.Error(1)
}

// MockUserRepository is a mock implementation of user.Repository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, name, email, passwordHash, avatarURL string) (*user.User, error) {
	args := m.Called(ctx, name, email, passwordHash, avatarURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

// MockLedger is a mock implementation of wallet.Service
type MockLedger struct {
	mock.Mock
}

func (m *MockLedger) GetHistory(ctx context.Context, userID string) ([]wallet.Transaction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]wallet.Transaction), args.Error(1)
}

func (m *MockLedger) AddTransaction(ctx context.Context, userID, description string, points int, initial bool) error {
	args := m.Called(ctx, userID, description, points, initial)
	return args.Error(0)
}

func (m *MockLedger) GetTotalPoints(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func upcomingEvent() *Event {
	return &Event{
		ID:       "evt1",
		Name:     "Game Night Live",
		Date:     time.Now().Add(48 * time.Hour),
		Location: "Downtown Hall",
		Price:    499,
		IsPast:   false,
	}
}

func TestService_Register(t *testing.T) {
	t.Run("successful registration awards points", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockLedger := new(MockLedger)
		service := NewService(mockRepo, new(MockUserRepository), mockLedger, nil)

		evt := upcomingEvent()
		mockRepo.On("GetByID", mock.Anything, "evt1").Return(evt, nil)
		mockRepo.On("CreateRegistration", mock.Anything, "u-1", "evt1").
			Return(&Registration{ID: "reg-1", UserID: "u-1", EventID: "evt1"}, nil)
		mockLedger.On("AddTransaction", mock.Anything, "u-1", "Registered for: Game Night Live", 50, false).Return(nil)

		got, points, err := service.Register(context.Background(), "u-1", "evt1")

		assert.NoError(t, err)
		assert.Equal(t, evt, got)
		assert.Equal(t, 50, points)
		mockRepo.AssertExpectations(t)
		mockLedger.AssertExpectations(t)
	})

	t.Run("past event rejected", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockLedger := new(MockLedger)
		service := NewService(mockRepo, new(MockUserRepository), mockLedger, nil)

		past := upcomingEvent()
		past.IsPast = true
		mockRepo.On("GetByID", mock.Anything, "evt1").Return(past, nil)

		_, _, err := service.Register(context.Background(), "u-1", "evt1")

		assert.ErrorIs(t, err, ErrEventPast)
		mockRepo.AssertNotCalled(t, "CreateRegistration")
		mockLedger.AssertNotCalled(t, "AddTransaction")
	})

	t.Run("unknown event", func(t *testing.T) {
		mockRepo := new(MockRepository)
		service := NewService(mockRepo, new(MockUserRepository), new(MockLedger), nil)

		mockRepo.On("GetByID", mock.Anything, "missing").Return(nil, errors.New("no rows"))

		_, _, err := service.Register(context.Background(), "u-1", "missing")

		assert.ErrorIs(t, err, ErrEventNotFound)
	})

	t.Run("duplicate registration", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockLedger := new(MockLedger)
		service := NewService(mockRepo, new(MockUserRepository), mockLedger, nil)

		mockRepo.On("GetByID", mock.Anything, "evt1").Return(upcomingEvent(), nil)
		mockRepo.On("CreateRegistration", mock.Anything, "u-1", "evt1").Return(nil, ErrAlreadyRegistered)

		_, _, err := service.Register(context.Background(), "u-1", "evt1")

		assert.ErrorIs(t, err, ErrAlreadyRegistered)
		mockLedger.AssertNotCalled(t, "AddTransaction")
	})

	t.Run("no points announced when ledger write fails", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockLedger := new(MockLedger)
		service := NewService(mockRepo, new(MockUserRepository), mockLedger, nil)

		mockRepo.On("GetByID", mock.Anything, "evt1").Return(upcomingEvent(), nil)
		mockRepo.On("CreateRegistration", mock.Anything, "u-1", "evt1").
			Return(&Registration{ID: "reg-1"}, nil)
		mockLedger.On("AddTransaction", mock.Anything, "u-1", "Registered for: Game Night Live", 50, false).
			Return(wallet.ErrStoreUnavailable)

		_, points, err := service.Register(context.Background(), "u-1", "evt1")

		assert.ErrorIs(t, err, wallet.ErrStoreUnavailable)
		assert.Zero(t, points)
	})
}

func TestService_GetAllEvents(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, new(MockUserRepository), new(MockLedger), nil)

	mockRepo.On("List", mock.Anything).Return([]Event{
		{ID: "evt1", Name: "Game Night Live"},
		{ID: "evt3", Name: "Summer Game Fest", IsPast: true},
	}, nil)

	events, err := service.GetAllEvents(context.Background())

	assert.NoError(t, err)
	assert.Len(t, events, 2)
}
