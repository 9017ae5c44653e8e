package game

// Grid is a 9x9 sudoku board. Zero marks an empty cell.
type Grid [9][9]int

// SudokuResponse is the daily puzzle handed to the client.
type SudokuResponse struct {
	Puzzle Grid   `json:"puzzle"`
	Reward int    `json:"reward"`
	Riddle string `json:"riddle"`
}

type SudokuSubmission struct {
	Grid Grid `json:"grid" binding:"required"`
}

type RiddleSubmission struct {
	Answer string `json:"answer" binding:"required"`
}

type SolveResponse struct {
	Solved        bool   `json:"solved"`
	Message       string `json:"message"`
	PointsAwarded int    `json:"points_awarded"`
}

// Daily puzzle data. A rotation scheme can replace these fixed values
// once there is more than one puzzle.
var sudokuPuzzle = Grid{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

var sudokuSolution = Grid{
	{5, 3, 4, 6, 7, 8, 9, 1, 2},
	{6, 7, 2, 1, 9, 5, 3, 4, 8},
	{1, 9, 8, 3, 4, 2, 5, 6, 7},
	{8, 5, 9, 7, 6, 1, 4, 2, 3},
	{4, 2, 6, 8, 5, 3, 7, 9, 1},
	{7, 1, 3, 9, 2, 4, 8, 5, 6},
	{9, 6, 1, 5, 3, 7, 2, 8, 4},
	{2, 8, 7, 4, 1, 9, 6, 3, 5},
	{3, 4, 5, 2, 8, 6, 1, 7, 9},
}

const riddleQuestion = "I speak without a mouth and hear without ears. I have no body, but I come alive with wind. What am I?"
