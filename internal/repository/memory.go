package repository

import (
	"context"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type memoryEntry struct {
	game      entity.Game
	expiresAt time.Time
}

type memoryGame struct {
	mu    sync.RWMutex
	games map[string]memoryEntry
	ttl   time.Duration
	now   func() time.Time
}

// NewMemoryGameRepository - keeps games in process memory. Callers get copies.
// Like the redis repository, every write refreshes the ttl and zero means no expiry;
// expired games are swept on writes.
func NewMemoryGameRepository(ttl time.Duration) GameRepository {
	return &memoryGame{
		games: make(map[string]memoryEntry),
		ttl:   ttl,
		now:   time.Now,
	}
}

func (that *memoryGame) CreateOrUpdate(_ context.Context, game *entity.Game) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	now := that.now()
	that.sweep(now)

	entry := memoryEntry{game: cloneGame(game)}
	if that.ttl > 0 {
		entry.expiresAt = now.Add(that.ttl)
	}

	that.games[game.ID] = entry

	return nil
}

func (that *memoryGame) GetByID(_ context.Context, id string) (*entity.Game, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	entry, ok := that.games[id]
	if !ok || entry.expired(that.now()) {
		return nil, apperror.ErrGameNotFound
	}

	clone := cloneGame(&entry.game)

	return &clone, nil
}

func (that *memoryGame) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	entry, ok := that.games[id]
	if !ok {
		return apperror.ErrGameNotFound
	}

	delete(that.games, id)

	if entry.expired(that.now()) {
		return apperror.ErrGameNotFound
	}

	return nil
}

func (that *memoryGame) sweep(now time.Time) {
	if that.ttl <= 0 {
		return
	}

	for id, entry := range that.games {
		if entry.expired(now) {
			delete(that.games, id)
		}
	}
}

func (that memoryEntry) expired(now time.Time) bool {
	return !that.expiresAt.IsZero() && !now.Before(that.expiresAt)
}

// cloneGame - the winning line is the only field shared by pointer.
func cloneGame(game *entity.Game) entity.Game {
	clone := *game
	if game.Outcome.Line != nil {
		line := *game.Outcome.Line
		clone.Outcome.Line = &line
	}

	return clone
}
