package entity

import (
	"errors"
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

// Mode - who plays the second seat.
type Mode string

const (
	ModeLocal Mode = "local"
	ModeBot   Mode = "bot"
)

var (
	ErrUnknownGameStatus = errors.New("unknown game status")
	ErrUnknownMode       = errors.New("unknown game mode")
)

func ParseMode(value string) (Mode, error) {
	switch Mode(value) {
	case ModeLocal, "":
		return ModeLocal, nil
	case ModeBot:
		return ModeBot, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, value)
	}
}

// Score is kept across resets of the same session.
type Score struct {
	X     int `json:"x"`
	O     int `json:"o"`
	Draws int `json:"draws"`
}

func (that *Score) Record(outcome Outcome) {
	switch {
	case outcome.Kind == Draw:
		that.Draws++
	case outcome.Kind == Won && outcome.Mark == MarkX:
		that.X++
	case outcome.Kind == Won && outcome.Mark == MarkO:
		that.O++
	}
}

type Game struct {
	ID         string     `json:"id"`
	Board      Board      `json:"board"`
	Turn       Cell       `json:"turn,omitempty"`
	Mode       Mode       `json:"mode"`
	Difficulty Difficulty `json:"difficulty"`
	BotMark    Cell       `json:"bot_mark,omitempty"`
	Status     string     `json:"status"`
	Outcome    Outcome    `json:"outcome"`
	Score      Score      `json:"score"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// NewGame - creates an ongoing session with an empty board and X to move.
// botMark is ignored outside of bot mode.
func NewGame(id string, mode Mode, difficulty Difficulty, botMark Cell) *Game {
	if mode != ModeBot {
		botMark = Empty
	} else if !botMark.IsMark() {
		botMark = MarkO
	}

	now := time.Now().UTC()

	return &Game{
		ID:         id,
		Turn:       MarkX,
		Mode:       mode,
		Difficulty: difficulty,
		BotMark:    botMark,
		Status:     StatusOngoing,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Finish - stores a terminal outcome and counts it in the score.
func (that *Game) Finish(outcome Outcome) {
	that.Outcome = outcome
	that.Status = StatusFinished
	that.Turn = Empty
	that.Score.Record(outcome)
}

// Reset - starts a new round on the same session. The score survives.
func (that *Game) Reset() {
	that.Board = Board{}
	that.Outcome = Outcome{}
	that.Status = StatusOngoing
	that.Turn = MarkX
	that.UpdatedAt = time.Now().UTC()
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWithBot() bool {
	return that.Mode == ModeBot
}

func (that *Game) IsBotTurn() bool {
	return that.IsWithBot() && that.IsOngoing() && that.Turn == that.BotMark
}

// HumanMark - the mark of the human seat in bot mode.
func (that *Game) HumanMark() Cell {
	return that.BotMark.Opponent()
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}
