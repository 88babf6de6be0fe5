package entity

import (
	"errors"
	"fmt"
)

// Size is the side length of the board.
const Size = 3

var ErrUnknownCell = errors.New("unknown cell value")

// Cell is the state of one board square.
type Cell uint8

const (
	Empty Cell = iota
	MarkX
	MarkO
)

func (that Cell) String() string {
	switch that {
	case MarkX:
		return "X"
	case MarkO:
		return "O"
	default:
		return ""
	}
}

// Opponent - returns the other mark. Empty stays Empty.
func (that Cell) Opponent() Cell {
	switch that {
	case MarkX:
		return MarkO
	case MarkO:
		return MarkX
	default:
		return Empty
	}
}

func (that Cell) IsMark() bool {
	return that == MarkX || that == MarkO
}

func (that Cell) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Cell) UnmarshalText(text []byte) error {
	switch string(text) {
	case "":
		*that = Empty
	case "X", "x":
		*that = MarkX
	case "O", "o":
		*that = MarkO
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCell, text)
	}

	return nil
}

// Position is a 0-based board coordinate.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Position) InRange() bool {
	return that.Row >= 0 && that.Row < Size && that.Col >= 0 && that.Col < Size
}

// Line is a triple of cells that wins the game when uniformly marked.
type Line [Size]Position

func (that Line) Contains(pos Position) bool {
	for _, p := range that {
		if p == pos {
			return true
		}
	}

	return false
}

var (
	// Lines - rows, then columns, then the two diagonals.
	Lines = [8]Line{
		{{0, 0}, {0, 1}, {0, 2}},
		{{1, 0}, {1, 1}, {1, 2}},
		{{2, 0}, {2, 1}, {2, 2}},
		{{0, 0}, {1, 0}, {2, 0}},
		{{0, 1}, {1, 1}, {2, 1}},
		{{0, 2}, {1, 2}, {2, 2}},
		{{0, 0}, {1, 1}, {2, 2}},
		{{0, 2}, {1, 1}, {2, 0}},
	}

	Center  = Position{Row: 1, Col: 1}
	Corners = [4]Position{{0, 0}, {0, 2}, {2, 0}, {2, 2}}
)

// Board is a row-major 3x3 grid. It is a value: copying it takes a snapshot.
type Board [Size][Size]Cell

func (that Board) At(pos Position) Cell {
	return that[pos.Row][pos.Col]
}

// EmptyCells - returns the empty positions in row-major order.
func (that Board) EmptyCells() []Position {
	cells := make([]Position, 0, Size*Size)
	for row := range that {
		for col, cell := range that[row] {
			if cell == Empty {
				cells = append(cells, Position{Row: row, Col: col})
			}
		}
	}

	return cells
}

func (that Board) IsFull() bool {
	for row := range that {
		for _, cell := range that[row] {
			if cell == Empty {
				return false
			}
		}
	}

	return true
}

func (that Board) Count(mark Cell) int {
	count := 0
	for row := range that {
		for _, cell := range that[row] {
			if cell == mark {
				count++
			}
		}
	}

	return count
}
