package wallet

import (
	"errors"
	"net/http"

	"joyjuncture/internal/auth"
	"joyjuncture/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Handler struct {
	service Service
}

func NewHandler(db *sqlx.DB, welcomePoints int) *Handler {
	return &Handler{
		service: NewService(NewRepository(db), welcomePoints),
	}
}

// Service exposes the ledger service for other domains (purchases, event
// registrations, games) that award points.
func (h *Handler) Service() Service {
	return h.service
}

// respondLedgerError maps ledger errors onto HTTP statuses. Permission
// problems are surfaced distinctly: they indicate misconfiguration, not
// something the user can fix by retrying.
func respondLedgerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrPermissionDenied):
		logger.Errorf("Ledger store rejected access: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "wallet store permission denied: check store access configuration"})
	case errors.Is(err, ErrStoreUnavailable):
		logger.Errorf("Ledger store unavailable: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "wallet temporarily unavailable, please retry"})
	case errors.Is(err, ErrEmptyUserID), errors.Is(err, ErrEmptyDescription):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Errorf("Ledger operation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to access wallet"})
	}
}

// GetBalance godoc
// @Summary      Get total Joy Points
// @Description  Returns the authenticated user's balance, derived by summing the transaction log.
// @Tags         wallet
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  BalanceResponse
// @Failure      401  {object}  api.ErrorResponse
// @Failure      503  {object}  api.ErrorResponse
// @Router       /wallet [get]
func (h *Handler) GetBalance(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	total, err := h.service.GetTotalPoints(c.Request.Context(), userID)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, BalanceResponse{TotalPoints: total})
}

// ListTransactions godoc
// @Summary      Points history
// @Description  Returns the user's wallet transactions, newest first. A first-time caller receives the welcome bonus.
// @Tags         wallet
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Transaction
// @Failure      401  {object}  api.ErrorResponse
// @Failure      503  {object}  api.ErrorResponse
// @Router       /wallet/transactions [get]
func (h *Handler) ListTransactions(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	txs, err := h.service.GetHistory(c.Request.Context(), userID)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, txs)
}
