package entity

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownOutcome    = errors.New("unknown outcome kind")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
)

type OutcomeKind uint8

const (
	InProgress OutcomeKind = iota
	Won
	Draw
)

func (that OutcomeKind) String() string {
	switch that {
	case Won:
		return "won"
	case Draw:
		return "draw"
	default:
		return "in_progress"
	}
}

func (that OutcomeKind) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *OutcomeKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "in_progress", "":
		*that = InProgress
	case "won":
		*that = Won
	case "draw":
		*that = Draw
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOutcome, text)
	}

	return nil
}

// Outcome is derived from a board: in progress, won by Mark along Line, or a draw.
type Outcome struct {
	Kind OutcomeKind `json:"kind"`
	Mark Cell        `json:"mark,omitempty"`
	Line *Line       `json:"line,omitempty"`
}

func WonOutcome(mark Cell, line Line) Outcome {
	return Outcome{Kind: Won, Mark: mark, Line: &line}
}

func DrawOutcome() Outcome {
	return Outcome{Kind: Draw}
}

func (that Outcome) IsTerminal() bool {
	return that.Kind == Won || that.Kind == Draw
}

// Contains - reports whether pos is part of the winning line.
func (that Outcome) Contains(pos Position) bool {
	if that.Kind != Won || that.Line == nil {
		return false
	}

	return that.Line.Contains(pos)
}

// Difficulty selects the opponent strategy.
type Difficulty uint8

const (
	Easy Difficulty = iota
	Medium
	Hard
)

func (that Difficulty) String() string {
	switch that {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	default:
		return "medium"
	}
}

// ParseDifficulty - accepts english names and the labels of the mobile client.
func ParseDifficulty(value string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "easy", "fácil", "facil":
		return Easy, nil
	case "medium", "medio":
		return Medium, nil
	case "hard", "difícil", "dificil":
		return Hard, nil
	default:
		return Medium, fmt.Errorf("%w: %q", ErrUnknownDifficulty, value)
	}
}

func (that Difficulty) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Difficulty) UnmarshalText(text []byte) error {
	difficulty, err := ParseDifficulty(string(text))
	if err != nil {
		return err
	}

	*that = difficulty
	return nil
}
