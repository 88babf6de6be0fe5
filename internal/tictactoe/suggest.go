package tictactoe

import "github.com/rocketscienceinc/tictactoe-engine/internal/entity"

// Reason explains why a cell is suggested.
type Reason string

const (
	ReasonWin    Reason = "win"
	ReasonBlock  Reason = "block"
	ReasonCenter Reason = "center"
	ReasonCorner Reason = "corner"
	ReasonAny    Reason = "any"
)

// Suggestion is a set of equally good cells for the mark to move.
type Suggestion struct {
	Reason Reason            `json:"reason"`
	Cells  []entity.Position `json:"cells"`
}

// Suggest - applies the fixed priority list win, block, center, corner, any.
// Returns false when the board has no empty cell.
func Suggest(board entity.Board, mark entity.Cell) (Suggestion, bool) {
	empty := board.EmptyCells()
	if len(empty) == 0 {
		return Suggestion{}, false
	}

	if pos, ok := FindWinningMove(board, mark); ok {
		return Suggestion{Reason: ReasonWin, Cells: []entity.Position{pos}}, true
	}

	if pos, ok := FindWinningMove(board, mark.Opponent()); ok {
		return Suggestion{Reason: ReasonBlock, Cells: []entity.Position{pos}}, true
	}

	if board.At(entity.Center) == entity.Empty {
		return Suggestion{Reason: ReasonCenter, Cells: []entity.Position{entity.Center}}, true
	}

	corners := make([]entity.Position, 0, len(entity.Corners))
	for _, corner := range entity.Corners {
		if board.At(corner) == entity.Empty {
			corners = append(corners, corner)
		}
	}

	if len(corners) > 0 {
		return Suggestion{Reason: ReasonCorner, Cells: corners}, true
	}

	return Suggestion{Reason: ReasonAny, Cells: empty}, true
}
