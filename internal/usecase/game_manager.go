package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type opponent interface {
	SelectMove(board entity.Board, difficulty entity.Difficulty, mark entity.Cell) (entity.Position, bool)
}

// GameSettings - options of a new session.
type GameSettings struct {
	Mode       entity.Mode
	Difficulty entity.Difficulty
	BotMark    entity.Cell
}

type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo
	opponent opponent

	// thinkDelay is waited before every bot move.
	thinkDelay time.Duration

	locksMu sync.Mutex
	locks   map[string]*sessionLock
}

// sessionLock - refs counts holders and waiters; the entry is dropped when it reaches zero.
type sessionLock struct {
	mu   sync.Mutex
	refs int
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, opponent opponent, thinkDelay time.Duration) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		gameRepo:   gameRepo,
		opponent:   opponent,
		thinkDelay: thinkDelay,

		locks: make(map[string]*sessionLock),
	}
}

func (that *GameManager) CreateGame(ctx context.Context, settings GameSettings) (*entity.Game, error) {
	game := entity.NewGame(uuid.NewString(), settings.Mode, settings.Difficulty, settings.BotMark)

	if game.IsBotTurn() {
		if err := that.botTurn(ctx, game); err != nil {
			return nil, fmt.Errorf("bot failed to make first turn: %w", err)
		}
	}

	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game created", "gameID", game.ID, "mode", game.Mode, "difficulty", game.Difficulty.String())

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// MakeTurn - plays the human move at (row, col) for the mark whose turn it is.
// In bot mode the bot answers in the same call unless the move ended the round.
// A cancelled context while the bot thinks discards the whole turn.
func (that *GameManager) MakeTurn(ctx context.Context, id string, row, col int) (*entity.Game, error) {
	unlock := that.lock(id)
	defer unlock()

	game, err := that.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	if game.IsBotTurn() {
		return game, apperror.ErrNotYourTurn
	}

	if err = tictactoe.MakeTurn(game, game.Turn, row, col); err != nil {
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	if game.IsBotTurn() {
		if err = that.botTurn(ctx, game); err != nil {
			return nil, fmt.Errorf("bot failed to make turn: %w", err)
		}
	}

	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	if game.IsFinished() {
		that.logger.Info("game finished", "gameID", game.ID, "outcome", game.Outcome.Kind.String(), "winner", game.Outcome.Mark.String())
	}

	return game, nil
}

// Reset - starts a new round on the session, keeping the score.
func (that *GameManager) Reset(ctx context.Context, id string) (*entity.Game, error) {
	unlock := that.lock(id)
	defer unlock()

	game, err := that.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	game.Reset()

	if game.IsBotTurn() {
		if err = that.botTurn(ctx, game); err != nil {
			return nil, fmt.Errorf("bot failed to make first turn: %w", err)
		}
	}

	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	return game, nil
}

// Hint - suggests cells for the mark to move.
func (that *GameManager) Hint(ctx context.Context, id string) (tictactoe.Suggestion, error) {
	game, err := that.GetGame(ctx, id)
	if err != nil {
		return tictactoe.Suggestion{}, err
	}

	if err = game.ConfirmOngoingState(); err != nil {
		return tictactoe.Suggestion{}, err
	}

	suggestion, _ := tictactoe.Suggest(game.Board, game.Turn)

	return suggestion, nil
}

func (that *GameManager) DeleteGame(ctx context.Context, id string) error {
	unlock := that.lock(id)
	defer unlock()

	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.logger.Info("game deleted", "gameID", id)

	return nil
}

func (that *GameManager) botTurn(ctx context.Context, game *entity.Game) error {
	log := that.logger.With("method", "botTurn", "gameID", game.ID)

	if err := that.think(ctx); err != nil {
		return err
	}

	pos, ok := that.opponent.SelectMove(game.Board, game.Difficulty, game.BotMark)
	if !ok {
		return tictactoe.ErrNoAvailableMoves
	}

	if err := tictactoe.MakeTurn(game, game.BotMark, pos.Row, pos.Col); err != nil {
		return fmt.Errorf("failed to apply bot move: %w", err)
	}

	log.Debug("bot moved", "row", pos.Row, "col", pos.Col)

	return nil
}

func (that *GameManager) think(ctx context.Context) error {
	if that.thinkDelay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(that.thinkDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (that *GameManager) updateGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}

// lock - serializes turns on one session.
func (that *GameManager) lock(id string) func() {
	that.locksMu.Lock()
	l, ok := that.locks[id]
	if !ok {
		l = &sessionLock{}
		that.locks[id] = l
	}
	l.refs++
	that.locksMu.Unlock()

	l.mu.Lock()

	return func() {
		l.mu.Unlock()

		that.locksMu.Lock()
		defer that.locksMu.Unlock()

		l.refs--
		if l.refs == 0 {
			delete(that.locks, id)
		}
	}
}
