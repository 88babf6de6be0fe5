package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

const shutdownTimeout = 5 * time.Second

type gameUseCase interface {
	CreateGame(ctx context.Context, settings usecase.GameSettings) (*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	MakeTurn(ctx context.Context, id string, row, col int) (*entity.Game, error)
	Reset(ctx context.Context, id string) (*entity.Game, error)
	Hint(ctx context.Context, id string) (tictactoe.Suggestion, error)
	DeleteGame(ctx context.Context, id string) error
}

type opponent interface {
	SelectMove(board entity.Board, difficulty entity.Difficulty, mark entity.Cell) (entity.Position, bool)
}

type Server struct {
	logger   *slog.Logger
	games    gameUseCase
	opponent opponent
	router   chi.Router
}

func New(logger *slog.Logger, games gameUseCase, opponent opponent) *Server {
	server := &Server{
		logger:   logger.With("component", "rest"),
		games:    games,
		opponent: opponent,
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(server.logRequest)

	router.Get("/ping", pingHandler)

	router.Route("/games", func(r chi.Router) {
		r.Post("/", server.createGame)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", server.getGame)
			r.Delete("/", server.deleteGame)
			r.Post("/turns", server.makeTurn)
			r.Post("/reset", server.resetGame)
			r.Get("/hint", server.hint)
		})
	})

	router.Route("/engine", func(r chi.Router) {
		r.Post("/evaluate", server.evaluate)
		r.Post("/move", server.selectMove)
	})

	server.router = router

	return server
}

func (that *Server) Handler() http.Handler {
	return that.router
}

// Start - serves HTTP until ctx is cancelled, then shuts down gracefully.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
		return nil
	}
}

func (that *Server) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		started := time.Now()

		next.ServeHTTP(ww, r)

		that.logger.Debug("request served",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(started),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
