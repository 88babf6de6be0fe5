package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	x = entity.MarkX
	o = entity.MarkO
	e = entity.Empty
)

func TestApplyMove(t *testing.T) {
	t.Run("Places the mark on an empty cell", func(t *testing.T) {
		// Given: an empty board
		board := entity.Board{}

		// When: X plays the center
		next, err := ApplyMove(board, 1, 1, x)

		// Then: the returned board holds X at the center and the input is untouched
		require.NoError(t, err)
		assert.Equal(t, x, next[1][1])
		assert.Equal(t, entity.Board{}, board)
	})

	t.Run("Rejects an occupied cell without changing the board", func(t *testing.T) {
		// Given: a board where X holds the corner
		board := entity.Board{{x, e, e}, {e, e, e}, {e, e, e}}

		// When: O tries the same corner
		next, err := ApplyMove(board, 0, 0, o)

		// Then: ErrCellOccupied is returned and the board is unchanged
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, board, next)
	})

	t.Run("Rejects coordinates out of range", func(t *testing.T) {
		board := entity.Board{}

		for _, pos := range []entity.Position{{Row: -1, Col: 0}, {Row: 0, Col: -1}, {Row: 3, Col: 0}, {Row: 0, Col: 3}, {Row: 20, Col: 20}} {
			// When: a move outside the grid is played
			next, err := ApplyMove(board, pos.Row, pos.Col, x)

			// Then: ErrOutOfRange is returned
			require.ErrorIs(t, err, apperror.ErrOutOfRange, "position %v", pos)
			assert.Equal(t, board, next)
		}
	})

	t.Run("Rejects an empty mark", func(t *testing.T) {
		_, err := ApplyMove(entity.Board{}, 0, 0, e)

		require.ErrorIs(t, err, ErrInvalidMark)
	})

	t.Run("Accepts the last empty cell and ends in a draw", func(t *testing.T) {
		// Given: a board with only (2,2) empty and X to move
		board := entity.Board{{x, o, x}, {x, o, o}, {o, x, e}}

		// When: X tries an occupied cell
		_, err := ApplyMove(board, 0, 0, x)

		// Then: it is rejected
		require.ErrorIs(t, err, apperror.ErrCellOccupied)

		// When: X plays the sole empty cell
		next, err := ApplyMove(board, 2, 2, x)

		// Then: it is accepted and the board is a draw
		require.NoError(t, err)
		assert.Equal(t, entity.DrawOutcome(), Evaluate(next))
	})

	t.Run("Bottom row open after two full rows", func(t *testing.T) {
		// Given: X,O,X / O,X,O / _,_,_ with X to move
		board := entity.Board{{x, o, x}, {o, x, o}, {e, e, e}}
		require.Equal(t, entity.InProgress, Evaluate(board).Kind)

		// Then: every filled cell is rejected and the board is unchanged
		for row := range 2 {
			for col := range entity.Size {
				next, err := ApplyMove(board, row, col, x)
				require.ErrorIs(t, err, apperror.ErrCellOccupied, "cell (%d,%d)", row, col)
				assert.Equal(t, board, next)
			}
		}

		// And: every empty cell is accepted
		tests := []struct {
			col      int
			expected entity.Outcome
		}{
			{col: 0, expected: entity.WonOutcome(x, entity.Lines[7])},
			{col: 1, expected: entity.Outcome{Kind: entity.InProgress}},
			{col: 2, expected: entity.WonOutcome(x, entity.Lines[6])},
		}

		for _, tt := range tests {
			next, err := ApplyMove(board, 2, tt.col, x)
			require.NoError(t, err)
			assert.Equal(t, x, next[2][tt.col])
			assert.Equal(t, tt.expected, Evaluate(next), "cell (2,%d)", tt.col)
		}

		// When: the round is played out with (2,1) for X, (2,0) for O and (2,2) for X
		next, err := ApplyMove(board, 2, 1, x)
		require.NoError(t, err)
		next, err = ApplyMove(next, 2, 0, o)
		require.NoError(t, err)
		next, err = ApplyMove(next, 2, 2, x)
		require.NoError(t, err)

		// Then: the board is full and the diagonal decides it
		assert.True(t, next.IsFull())
		assert.Equal(t, entity.WonOutcome(x, entity.Lines[6]), Evaluate(next))
	})
}

func TestEvaluate(t *testing.T) {
	t.Run("Empty board is in progress", func(t *testing.T) {
		assert.Equal(t, entity.InProgress, Evaluate(entity.Board{}).Kind)
	})

	t.Run("Board without a line and with empty cells is in progress", func(t *testing.T) {
		// Given: a partially filled board without a complete line
		board := entity.Board{{x, o, e}, {e, x, e}, {e, e, o}}

		// When: evaluating
		outcome := Evaluate(board)

		// Then: the game continues
		assert.Equal(t, entity.InProgress, outcome.Kind)
		assert.False(t, outcome.IsTerminal())
		assert.Nil(t, outcome.Line)
	})

	t.Run("Every fixed line wins regardless of other cells", func(t *testing.T) {
		for _, mark := range []entity.Cell{x, o} {
			for _, line := range entity.Lines {
				// Given: a board holding mark along a single line
				var board entity.Board
				for _, pos := range line {
					board[pos.Row][pos.Col] = mark
				}

				// When: evaluating
				outcome := Evaluate(board)

				// Then: mark wins along exactly that line
				require.Equal(t, entity.Won, outcome.Kind, "line %v", line)
				assert.Equal(t, mark, outcome.Mark)
				require.NotNil(t, outcome.Line)
				assert.Equal(t, line, *outcome.Line)
			}
		}
	})

	t.Run("Full board with a line is a win, not a draw", func(t *testing.T) {
		board := entity.Board{{x, x, x}, {o, o, x}, {x, o, o}}

		outcome := Evaluate(board)

		assert.Equal(t, entity.WonOutcome(x, entity.Lines[0]), outcome)
	})

	t.Run("Full board without a line is a draw", func(t *testing.T) {
		board := entity.Board{{x, o, x}, {x, o, o}, {o, x, x}}

		outcome := Evaluate(board)

		assert.Equal(t, entity.DrawOutcome(), outcome)
		assert.True(t, outcome.IsTerminal())
	})

	t.Run("Winning line marks its cells", func(t *testing.T) {
		board := entity.Board{{o, x, x}, {e, o, x}, {e, e, o}}

		outcome := Evaluate(board)

		assert.True(t, outcome.Contains(entity.Position{Row: 1, Col: 1}))
		assert.False(t, outcome.Contains(entity.Position{Row: 0, Col: 1}))
	})
}

func TestFindWinningMove(t *testing.T) {
	t.Run("Finds the completing cell", func(t *testing.T) {
		board := entity.Board{{x, e, e}, {o, x, e}, {o, e, e}}

		pos, ok := FindWinningMove(board, x)

		require.True(t, ok)
		assert.Equal(t, entity.Position{Row: 2, Col: 2}, pos)
	})

	t.Run("Reports none when no line can be completed", func(t *testing.T) {
		board := entity.Board{{x, o, e}, {e, e, e}, {e, e, e}}

		_, ok := FindWinningMove(board, x)

		assert.False(t, ok)
	})
}
