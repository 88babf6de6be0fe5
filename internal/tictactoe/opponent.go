package tictactoe

import (
	"errors"
	"math"
	"math/rand"
	"sync"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const winScore = 10

var ErrNoAvailableMoves = errors.New("no available moves")

// Opponent picks moves for a computer-controlled seat. The random source is
// the only mutable state and is guarded, so one Opponent can serve many games.
type Opponent struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewOpponent(src rand.Source) *Opponent {
	return &Opponent{
		rnd: rand.New(src), //nolint: gosec // it's ok
	}
}

// SelectMove - returns a move for mark at the given difficulty,
// or false when the board is full.
func (that *Opponent) SelectMove(board entity.Board, difficulty entity.Difficulty, mark entity.Cell) (entity.Position, bool) {
	empty := board.EmptyCells()
	if len(empty) == 0 {
		return entity.Position{}, false
	}

	switch difficulty {
	case entity.Easy:
		return that.pick(empty), true
	case entity.Hard:
		return bestMove(board, mark), true
	default:
		suggestion, _ := Suggest(board, mark)
		return that.pick(suggestion.Cells), true
	}
}

func (that *Opponent) pick(cells []entity.Position) entity.Position {
	if len(cells) == 1 {
		return cells[0]
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	return cells[that.rnd.Intn(len(cells))]
}

// bestMove - exhaustive minimax. Equal scores keep the first move found in
// row-major order, so the result is deterministic.
func bestMove(board entity.Board, mark entity.Cell) entity.Position {
	var best entity.Position
	bestScore := math.MinInt

	for _, pos := range board.EmptyCells() {
		board[pos.Row][pos.Col] = mark
		score := minimax(&board, 0, false, mark)
		board[pos.Row][pos.Col] = entity.Empty

		if score > bestScore {
			bestScore = score
			best = pos
		}
	}

	return best
}

// minimax - scores the position for me: 10-depth on a win, depth-10 on a loss, 0 on a draw.
func minimax(board *entity.Board, depth int, maximizing bool, me entity.Cell) int {
	switch w := winner(board); {
	case w == me:
		return winScore - depth
	case w != entity.Empty:
		return depth - winScore
	case board.IsFull():
		return 0
	}

	mover := me
	score := math.MinInt
	if !maximizing {
		mover = me.Opponent()
		score = math.MaxInt
	}

	for row := range board {
		for col := range board[row] {
			if board[row][col] != entity.Empty {
				continue
			}

			board[row][col] = mover
			next := minimax(board, depth+1, !maximizing, me)
			board[row][col] = entity.Empty

			if maximizing {
				score = max(score, next)
			} else {
				score = min(score, next)
			}
		}
	}

	return score
}
