// internal/httpserver/server.go
//
// HTTP server wiring for server mode.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/stats".
//   - Game endpoints: POST /game/new (public), POST /game/guess and
//     GET /game/{id} (bearer game token).
//
// Notes:
//   - Sessions live in the store; finished games are recorded in the ledger.
//   - Games outlive their last guess so GET /game/{id} keeps working, and
//     are expired once their token TTL has passed (on each new game and
//     every sweepInterval while serving).
//   - The dictionary is loaded once at startup and shared by every game.

package httpserver

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/termwordle/internal/config"
	"github.com/robalobadob/wordle/apps/termwordle/internal/game"
	"github.com/robalobadob/wordle/apps/termwordle/internal/stats"
	"github.com/robalobadob/wordle/apps/termwordle/internal/store"
)

const (
	// maxGuessesLimit caps the per-game budget a client may request.
	maxGuessesLimit = 20

	sweepInterval = time.Minute
)

// Server bundles router, session store, results ledger and dictionary.
type Server struct {
	r       *chi.Mux
	store   store.Store
	ledger  *stats.Ledger
	words   []string
	cfg     config.Config
	newRand func() game.Rand
	now     func() time.Time
	hs      *http.Server
}

// Option customizes a Server.
type Option func(*Server)

// WithRand sets the random source factory used for non-daily games.
func WithRand(f func() game.Rand) Option {
	return func(s *Server) { s.newRand = f }
}

// WithClock sets the clock used for game creation times and expiry.
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, ledger *stats.Ledger, words []string, cfg config.Config, opts ...Option) *Server {
	s := &Server{
		r:      chi.NewRouter(),
		store:  st,
		ledger: ledger,
		words:  words,
		cfg:    cfg,
		newRand: func() game.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
		now: time.Now,
	}
	for _, o := range opts {
		o(s)
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(requestLogger)                   // debug access log
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(cors(cfg.ClientOrigin))          // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"service":   "termwordle",
			"endpoints": []string{"/health", "/stats", "POST /game/new", "POST /game/guess", "GET /game/{id}"},
		})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "games": s.store.Len(), "words": len(s.words)})
	})
	s.r.Get("/stats", s.handleStats)

	s.mountGame(s.r)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Start serves HTTP on addr until Shutdown is called.
func (s *Server) Start(addr string) error {
	s.hs = &http.Server{Addr: addr, Handler: s.r, ReadHeaderTimeout: 5 * time.Second}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.sweep(ctx, sweepInterval)

	err := s.hs.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown stops a server started with Start.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.hs == nil {
		return nil
	}
	return s.hs.Shutdown(ctx)
}

// sweep expires games every interval until ctx is done.
func (s *Server) sweep(ctx context.Context, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.expireGames(ctx)
		}
	}
}

// expireGames drops games created more than one token TTL ago. Their
// tokens are no longer accepted, so nothing can reach them.
func (s *Server) expireGames(ctx context.Context) {
	n, err := s.store.Expire(ctx, s.now().Add(-s.cfg.TokenTTL))
	if err != nil {
		log.Warn().Err(err).Msg("expire games")
		return
	}
	if n > 0 {
		log.Debug().Int("expired", n).Int("games", s.store.Len()).Msg("expired games")
	}
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// handleStats returns totals for games finished since startup.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	sum, err := s.ledger.Summary(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("stats summary")
		writeError(w, http.StatusInternalServerError, "stats_failed")
		return
	}
	writeJSON(w, http.StatusOK, sum)
}
