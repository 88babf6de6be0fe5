package rest

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
	mockedUseCase "github.com/rocketscienceinc/tictactoe-engine/mocks/usecase"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	opponent := tictactoe.NewOpponent(rand.NewSource(7))
	manager := usecase.NewGameManager(logger, repository.NewMemoryGameRepository(0), opponent, 0)

	return New(logger, manager, opponent).Handler()
}

func do(t *testing.T, handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return rec
}

func decodeGame(t *testing.T, rec *httptest.ResponseRecorder) entity.Game {
	t.Helper()

	var game entity.Game
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &game))

	return game
}

func TestPing(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodGet, "/ping", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestLocalGameFlow(t *testing.T) {
	handler := newTestServer(t)

	// Given: a new local game
	rec := do(t, handler, http.MethodPost, "/games", `{"mode":"local"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	game := decodeGame(t, rec)
	require.NotEmpty(t, game.ID)
	assert.Equal(t, entity.Medium, game.Difficulty)

	// When: X and O alternate until X completes the top row
	moves := [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0, 2}}
	for _, move := range moves {
		body := `{"row":` + string(rune('0'+move[0])) + `,"col":` + string(rune('0'+move[1])) + `}`
		rec = do(t, handler, http.MethodPost, "/games/"+game.ID+"/turns", body)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}

	// Then: X won along the first row and scored
	game = decodeGame(t, rec)
	assert.Equal(t, entity.StatusFinished, game.Status)
	assert.Equal(t, entity.WonOutcome(entity.MarkX, entity.Lines[0]), game.Outcome)
	assert.Equal(t, entity.Score{X: 1}, game.Score)

	// And: further turns are rejected
	rec = do(t, handler, http.MethodPost, "/games/"+game.ID+"/turns", `{"row":2,"col":2}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// And: hints are refused for a finished round
	rec = do(t, handler, http.MethodGet, "/games/"+game.ID+"/hint", "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	// When: resetting
	rec = do(t, handler, http.MethodPost, "/games/"+game.ID+"/reset", "")
	require.Equal(t, http.StatusOK, rec.Code)

	// Then: the board is empty and the score survives
	game = decodeGame(t, rec)
	assert.Equal(t, entity.Board{}, game.Board)
	assert.Equal(t, entity.Score{X: 1}, game.Score)

	// And: the game can be fetched and deleted
	assert.Equal(t, http.StatusOK, do(t, handler, http.MethodGet, "/games/"+game.ID, "").Code)
	assert.Equal(t, http.StatusNoContent, do(t, handler, http.MethodDelete, "/games/"+game.ID, "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, handler, http.MethodGet, "/games/"+game.ID, "").Code)
}

func TestBotGameFlow(t *testing.T) {
	handler := newTestServer(t)

	// Given: a hard bot game
	rec := do(t, handler, http.MethodPost, "/games", `{"mode":"bot","difficulty":"hard"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	game := decodeGame(t, rec)
	assert.Equal(t, entity.MarkO, game.BotMark)

	// When: the human opens in a corner
	rec = do(t, handler, http.MethodPost, "/games/"+game.ID+"/turns", `{"row":0,"col":0}`)
	require.Equal(t, http.StatusOK, rec.Code)

	// Then: the bot answered with the center and it is X's turn again
	game = decodeGame(t, rec)
	assert.Equal(t, entity.MarkO, game.Board[1][1])
	assert.Equal(t, entity.MarkX, game.Turn)

	// And: a hint is available for X
	rec = do(t, handler, http.MethodGet, "/games/"+game.ID+"/hint", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var suggestion tictactoe.Suggestion
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &suggestion))
	assert.Equal(t, tictactoe.ReasonCorner, suggestion.Reason)
}

func TestBotOpensWhenHoldingX(t *testing.T) {
	handler := newTestServer(t)

	rec := do(t, handler, http.MethodPost, "/games", `{"mode":"bot","difficulty":"medio","bot_mark":"X"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	game := decodeGame(t, rec)
	assert.Equal(t, entity.MarkX, game.Board[1][1])
	assert.Equal(t, entity.MarkO, game.Turn)
}

func TestErrorStatuses(t *testing.T) {
	handler := newTestServer(t)

	rec := do(t, handler, http.MethodPost, "/games", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	id := decodeGame(t, rec).ID

	require.Equal(t, http.StatusOK, do(t, handler, http.MethodPost, "/games/"+id+"/turns", `{"row":1,"col":1}`).Code)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
	}{
		{"occupied cell", http.MethodPost, "/games/" + id + "/turns", `{"row":1,"col":1}`, http.StatusConflict},
		{"out of range", http.MethodPost, "/games/" + id + "/turns", `{"row":3,"col":0}`, http.StatusBadRequest},
		{"missing coordinates", http.MethodPost, "/games/" + id + "/turns", `{"row":1}`, http.StatusBadRequest},
		{"malformed body", http.MethodPost, "/games/" + id + "/turns", `{`, http.StatusBadRequest},
		{"unknown game", http.MethodPost, "/games/nope/turns", `{"row":0,"col":0}`, http.StatusNotFound},
		{"unknown mode", http.MethodPost, "/games", `{"mode":"online"}`, http.StatusBadRequest},
		{"unknown difficulty", http.MethodPost, "/games", `{"difficulty":"insane"}`, http.StatusBadRequest},
		{"delete unknown game", http.MethodDelete, "/games/nope", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, handler, tt.method, tt.path, tt.body)

			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}

func TestEngineEndpoints(t *testing.T) {
	handler := newTestServer(t)

	t.Run("Evaluate reports a win with its line", func(t *testing.T) {
		rec := do(t, handler, http.MethodPost, "/engine/evaluate", `{"board":[["X","O",""],["X","O",""],["X","",""]]}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var outcome entity.Outcome
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &outcome))
		assert.Equal(t, entity.WonOutcome(entity.MarkX, entity.Lines[3]), outcome)
	})

	t.Run("Medium move takes the win", func(t *testing.T) {
		rec := do(t, handler, http.MethodPost, "/engine/move",
			`{"board":[["O","O",""],["X","X",""],["","",""]],"difficulty":"medium","mark":"O"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp moveResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, entity.Position{Row: 0, Col: 2}, resp.Move)
	})

	t.Run("Full board has no move", func(t *testing.T) {
		rec := do(t, handler, http.MethodPost, "/engine/move",
			`{"board":[["X","O","X"],["X","O","O"],["O","X","X"]],"difficulty":"hard","mark":"O"}`)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("Bad cell value", func(t *testing.T) {
		rec := do(t, handler, http.MethodPost, "/engine/evaluate", `{"board":[["Z","",""],["","",""],["","",""]]}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRequestLimits(t *testing.T) {
	t.Run("Oversized body is rejected", func(t *testing.T) {
		handler := newTestServer(t)

		// Given: a body larger than any valid request
		body := `{"mode":"` + strings.Repeat("a", 2*maxBodyBytes) + `"}`

		// When: creating a game with it
		rec := do(t, handler, http.MethodPost, "/games", body)

		// Then: the request is refused before it is parsed
		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		assert.Contains(t, rec.Body.String(), errBodyTooLarge.Error())
	})

	t.Run("Storage failures do not leak details", func(t *testing.T) {
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		opponent := tictactoe.NewOpponent(rand.NewSource(1))

		// Given: a repository that cannot reach its server
		mockGameRepo := mockedUseCase.NewMockgameRepo(t)
		mockGameRepo.EXPECT().
			GetByID(mock.Anything, "g1").
			Return(nil, errors.New("dial tcp 10.0.0.7:6379: connect: connection refused")).
			Once()

		handler := New(logger, usecase.NewGameManager(logger, mockGameRepo, opponent, 0), opponent).Handler()

		// When: fetching a game
		rec := do(t, handler, http.MethodGet, "/games/g1", "")

		// Then: a generic message is returned
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), errInternalError.Error())
		assert.NotContains(t, rec.Body.String(), "6379")
	})
}
