package event

import (
	"errors"
	"fmt"
	"net/http"

	"joyjuncture/internal/auth"
	"joyjuncture/internal/email"
	"joyjuncture/internal/logger"
	"joyjuncture/internal/user"
	"joyjuncture/internal/wallet"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Handler struct {
	service Service
}

func NewHandler(db *sqlx.DB, ledger wallet.Service, emailService *email.Service) *Handler {
	return &Handler{
		service: NewService(NewRepository(db), user.NewRepository(db), ledger, emailService),
	}
}

// ListEvents godoc
// @Summary      List events
// @Description  Returns all events, newest date first, with a derived is_past flag.
// @Tags         events
// @Produce      json
// @Success      200  {array}   Event
// @Failure      500  {object}  api.ErrorResponse
// @Router       /events [get]
func (h *Handler) ListEvents(c *gin.Context) {
	events, err := h.service.GetAllEvents(c.Request.Context())
	if err != nil {
		logger.Errorf("Failed to list events: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load events"})
		return
	}

	c.JSON(http.StatusOK, events)
}

// GetEvent godoc
// @Summary      Get event
// @Tags         events
// @Produce      json
// @Param        eventID  path      string  true  "Event ID"
// @Success      200      {object}  Event
// @Failure      404      {object}  api.ErrorResponse
// @Router       /events/{eventID} [get]
func (h *Handler) GetEvent(c *gin.Context) {
	event, err := h.service.GetEventByID(c.Request.Context(), c.Param("eventID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		return
	}

	c.JSON(http.StatusOK, event)
}

// Register godoc
// @Summary      Register for an event
// @Description  Registers the user for an upcoming event and awards Joy Points.
// @Tags         events
// @Security     BearerAuth
// @Produce      json
// @Param        eventID  path      string  true  "Event ID"
// @Success      200      {object}  RegisterResponse
// @Failure      400      {object}  api.ErrorResponse
// @Failure      401      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Failure      503      {object}  api.ErrorResponse
// @Router       /events/{eventID}/register [post]
func (h *Handler) Register(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	event, points, err := h.service.Register(c.Request.Context(), userID, c.Param("eventID"))
	if err != nil {
		switch {
		case errors.Is(err, ErrEventNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		case errors.Is(err, ErrEventPast):
			c.JSON(http.StatusBadRequest, gin.H{"error": "cannot register for a past event"})
		case errors.Is(err, ErrAlreadyRegistered):
			c.JSON(http.StatusConflict, gin.H{"error": "already registered for this event"})
		case errors.Is(err, wallet.ErrStoreUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "wallet temporarily unavailable, please retry"})
		case errors.Is(err, wallet.ErrPermissionDenied):
			logger.Errorf("Ledger rejected registration write: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "wallet store permission denied: check store access configuration"})
		default:
			logger.Errorf("Event registration failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register for event"})
		}
		return
	}

	c.JSON(http.StatusOK, RegisterResponse{
		Message:       fmt.Sprintf("You're registered for %s!", event.Name),
		PointsAwarded: points,
	})
}

// ListMyRegistrations godoc
// @Summary      List my event registrations
// @Tags         events
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   RegistrationWithEvent
// @Failure      401  {object}  api.ErrorResponse
// @Failure      500  {object}  api.ErrorResponse
// @Router       /events/registrations [get]
func (h *Handler) ListMyRegistrations(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	regs, err := h.service.GetUserRegistrations(c.Request.Context(), userID)
	if err != nil {
		logger.Errorf("Failed to list registrations: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load registrations"})
		return
	}

	c.JSON(http.StatusOK, regs)
}
