package game

import (
	"context"
	"strings"

	"joyjuncture/internal/metrics"
	"joyjuncture/internal/wallet"
)

const (
	sudokuPoints = 25
	riddlePoints = 10

	sudokuDescription = "Solved Sudoku Puzzle"
	riddleDescription = "Solved Daily Riddle"
)

type Service interface {
	DailySudoku() SudokuResponse
	// SubmitSudoku checks the grid against the solution. Points are
	// announced only after the ledger write succeeds.
	SubmitSudoku(ctx context.Context, userID string, grid Grid) (bool, int, error)
	SubmitRiddle(ctx context.Context, userID, answer string) (bool, int, error)
}

type service struct {
	ledger wallet.Service
}

func NewService(ledger wallet.Service) Service {
	return &service{ledger: ledger}
}

func (s *service) DailySudoku() SudokuResponse {
	return SudokuResponse{
		Puzzle: sudokuPuzzle,
		Reward: sudokuPoints,
		Riddle: riddleQuestion,
	}
}

func (s *service) SubmitSudoku(ctx context.Context, userID string, grid Grid) (bool, int, error) {
	if grid != sudokuSolution {
		return false, 0, nil
	}

	if err := s.ledger.AddTransaction(ctx, userID, sudokuDescription, sudokuPoints, false); err != nil {
		return false, 0, err
	}

	metrics.RecordGameSolved("sudoku")
	metrics.RecordPointsAwarded("game", sudokuPoints)
	return true, sudokuPoints, nil
}

func (s *service) SubmitRiddle(ctx context.Context, userID, answer string) (bool, int, error) {
	if !strings.Contains(strings.ToLower(answer), "echo") {
		return false, 0, nil
	}

	if err := s.ledger.AddTransaction(ctx, userID, riddleDescription, riddlePoints, false); err != nil {
		return false, 0, err
	}

	metrics.RecordGameSolved("riddle")
	metrics.RecordPointsAwarded("game", riddlePoints)
	return true, riddlePoints, nil
}
