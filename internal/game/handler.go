package game

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"joyjuncture/internal/auth"
	"joyjuncture/internal/logger"
	"joyjuncture/internal/wallet"
)

type Handler struct {
	service Service
}

func NewHandler(ledger wallet.Service) *Handler {
	return &Handler{service: NewService(ledger)}
}

// DailySudoku godoc
// @Summary      Daily puzzle
// @Description  Returns today's sudoku puzzle and riddle.
// @Tags         play
// @Produce      json
// @Success      200  {object}  SudokuResponse
// @Router       /play/sudoku [get]
func (h *Handler) DailySudoku(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.DailySudoku())
}

// SubmitSudoku godoc
// @Summary      Submit sudoku solution
// @Description  Checks the submitted grid. A correct solution earns Joy Points.
// @Tags         play
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        submission  body      SudokuSubmission  true  "Completed grid"
// @Success      200         {object}  SolveResponse
// @Failure      400         {object}  api.ErrorResponse
// @Failure      401         {object}  api.ErrorResponse
// @Failure      503         {object}  api.ErrorResponse
// @Router       /play/sudoku [post]
func (h *Handler) SubmitSudoku(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req SudokuSubmission
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "a 9x9 grid is required"})
		return
	}

	solved, points, err := h.service.SubmitSudoku(c.Request.Context(), userID, req.Grid)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, solveResponse(solved, points, "Congratulations! You solved it!", "Not quite right. Keep trying!"))
}

// SubmitRiddle godoc
// @Summary      Submit riddle answer
// @Tags         play
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        submission  body      RiddleSubmission  true  "Answer"
// @Success      200         {object}  SolveResponse
// @Failure      400         {object}  api.ErrorResponse
// @Failure      401         {object}  api.ErrorResponse
// @Failure      503         {object}  api.ErrorResponse
// @Router       /play/riddle [post]
func (h *Handler) SubmitRiddle(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req RiddleSubmission
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "an answer is required"})
		return
	}

	solved, points, err := h.service.SubmitRiddle(c.Request.Context(), userID, req.Answer)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, solveResponse(solved, points, "Correct! An echo it is!", "Not quite right. Give it another thought!"))
}

func solveResponse(solved bool, points int, winMsg, loseMsg string) SolveResponse {
	if solved {
		return SolveResponse{Solved: true, Message: winMsg, PointsAwarded: points}
	}
	return SolveResponse{Solved: false, Message: loseMsg}
}

func respondLedgerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, wallet.ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "wallet temporarily unavailable, solution not recorded"})
	case errors.Is(err, wallet.ErrPermissionDenied):
		logger.Errorf("Ledger rejected game award: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "wallet store permission denied: check store access configuration"})
	default:
		logger.Errorf("Game submission failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record solution"})
	}
}
