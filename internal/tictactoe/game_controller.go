package tictactoe

import (
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// MakeTurn - plays mark at (row, col) on a session, enforcing turn order,
// and records the outcome when the move ends the round.
func MakeTurn(game *entity.Game, mark entity.Cell, row, col int) error {
	if err := game.ConfirmOngoingState(); err != nil {
		return err
	}

	if game.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	board, err := ApplyMove(game.Board, row, col, mark)
	if err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	game.Board = board
	game.UpdatedAt = time.Now().UTC()
	updateGameStatus(game, mark)

	return nil
}

// updateGameStatus - checks the game status after a move.
func updateGameStatus(game *entity.Game, mark entity.Cell) {
	outcome := Evaluate(game.Board)
	if outcome.IsTerminal() {
		game.Finish(outcome)
		return
	}

	game.Outcome = outcome
	game.Turn = mark.Opponent()
}
