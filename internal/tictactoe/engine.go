package tictactoe

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var ErrInvalidMark = errors.New("mark must be X or O")

// ApplyMove - returns a copy of board with mark placed at (row, col).
// On error the board is returned unchanged.
func ApplyMove(board entity.Board, row, col int, mark entity.Cell) (entity.Board, error) {
	pos := entity.Position{Row: row, Col: col}

	if err := validateMove(board, pos, mark); err != nil {
		return board, err
	}

	board[row][col] = mark

	return board, nil
}

// validateMove - checks if the move is valid.
func validateMove(board entity.Board, pos entity.Position, mark entity.Cell) error {
	if !pos.InRange() {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrOutOfRange, pos.Row, pos.Col)
	}

	if !mark.IsMark() {
		return ErrInvalidMark
	}

	if board.At(pos) != entity.Empty {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrCellOccupied, pos.Row, pos.Col)
	}

	return nil
}

// Evaluate - derives the outcome of a board. The first uniform line in
// entity.Lines order wins; a full board without one is a draw.
func Evaluate(board entity.Board) entity.Outcome {
	for _, line := range entity.Lines {
		a, b, c := board.At(line[0]), board.At(line[1]), board.At(line[2])
		if a != entity.Empty && a == b && b == c {
			return entity.WonOutcome(a, line)
		}
	}

	if board.IsFull() {
		return entity.DrawOutcome()
	}

	return entity.Outcome{Kind: entity.InProgress}
}

// winner - the mark owning a complete line, or Empty.
func winner(board *entity.Board) entity.Cell {
	for _, line := range entity.Lines {
		a := board[line[0].Row][line[0].Col]
		if a != entity.Empty && a == board[line[1].Row][line[1].Col] && a == board[line[2].Row][line[2].Col] {
			return a
		}
	}

	return entity.Empty
}

// FindWinningMove - first empty cell, row-major, that completes a line for mark.
func FindWinningMove(board entity.Board, mark entity.Cell) (entity.Position, bool) {
	for _, pos := range board.EmptyCells() {
		board[pos.Row][pos.Col] = mark
		won := winner(&board) == mark
		board[pos.Row][pos.Col] = entity.Empty

		if won {
			return pos, true
		}
	}

	return entity.Position{}, false
}
