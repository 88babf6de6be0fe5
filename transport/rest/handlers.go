package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

// maxBodyBytes - the largest request is a board with difficulty and mark.
const maxBodyBytes = 4 << 10

var (
	errInvalidBody   = errors.New("invalid request body")
	errBodyTooLarge  = errors.New("request body too large")
	errInternalError = errors.New("internal server error")
)

type createGameRequest struct {
	Mode       string             `json:"mode"`
	Difficulty *entity.Difficulty `json:"difficulty,omitempty"`
	BotMark    entity.Cell        `json:"bot_mark"`
}

type turnRequest struct {
	Row *int `json:"row"`
	Col *int `json:"col"`
}

type evaluateRequest struct {
	Board entity.Board `json:"board"`
}

type moveRequest struct {
	Board      entity.Board      `json:"board"`
	Difficulty entity.Difficulty `json:"difficulty"`
	Mark       entity.Cell       `json:"mark"`
}

type moveResponse struct {
	Move entity.Position `json:"move"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (that *Server) createGame(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if err := decode(w, r, &req); err != nil {
		that.writeError(w, err)
		return
	}

	mode, err := entity.ParseMode(req.Mode)
	if err != nil {
		that.writeError(w, err)
		return
	}

	settings := usecase.GameSettings{
		Mode:       mode,
		Difficulty: entity.Medium,
		BotMark:    req.BotMark,
	}
	if req.Difficulty != nil {
		settings.Difficulty = *req.Difficulty
	}

	game, err := that.games.CreateGame(r.Context(), settings)
	if err != nil {
		that.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, game)
}

func (that *Server) getGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.games.GetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, game)
}

func (that *Server) deleteGame(w http.ResponseWriter, r *http.Request) {
	if err := that.games.DeleteGame(r.Context(), chi.URLParam(r, "id")); err != nil {
		that.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *Server) makeTurn(w http.ResponseWriter, r *http.Request) {
	var req turnRequest
	if err := decode(w, r, &req); err != nil {
		that.writeError(w, err)
		return
	}

	if req.Row == nil || req.Col == nil {
		that.writeError(w, errInvalidBody)
		return
	}

	game, err := that.games.MakeTurn(r.Context(), chi.URLParam(r, "id"), *req.Row, *req.Col)
	if err != nil {
		that.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, game)
}

func (that *Server) resetGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.games.Reset(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, game)
}

func (that *Server) hint(w http.ResponseWriter, r *http.Request) {
	suggestion, err := that.games.Hint(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, suggestion)
}

func (that *Server) evaluate(w http.ResponseWriter, r *http.Request) {
	var req evaluateRequest
	if err := decode(w, r, &req); err != nil {
		that.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tictactoe.Evaluate(req.Board))
}

func (that *Server) selectMove(w http.ResponseWriter, r *http.Request) {
	req := moveRequest{Difficulty: entity.Medium, Mark: entity.MarkO}
	if err := decode(w, r, &req); err != nil {
		that.writeError(w, err)
		return
	}

	if !req.Mark.IsMark() {
		that.writeError(w, tictactoe.ErrInvalidMark)
		return
	}

	move, ok := that.opponent.SelectMove(req.Board, req.Difficulty, req.Mark)
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, moveResponse{Move: move})
}

// decode - an empty body leaves dst with its defaults.
func decode(w http.ResponseWriter, r *http.Request, dst any) error {
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}

	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return errBodyTooLarge
	}

	if err != nil {
		return errors.Join(errInvalidBody, err)
	}

	return nil
}

func (that *Server) writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "error", err)
		err = errInternalError
	}

	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, apperror.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, errBodyTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, apperror.ErrCellOccupied),
		errors.Is(err, apperror.ErrNotYourTurn),
		errors.Is(err, apperror.ErrGameFinished):
		return http.StatusConflict
	case errors.Is(err, apperror.ErrOutOfRange),
		errors.Is(err, errInvalidBody),
		errors.Is(err, tictactoe.ErrInvalidMark),
		errors.Is(err, entity.ErrUnknownMode),
		errors.Is(err, entity.ErrUnknownDifficulty),
		errors.Is(err, entity.ErrUnknownCell):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
