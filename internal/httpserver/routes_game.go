// internal/httpserver/routes_game.go
//
// Game routes:
//   - POST /game/new   → create a session (random or daily target), return a game token
//   - POST /game/guess → submit a guess to the token's game
//   - GET  /game/{id}  → history and state of the token's game
//
// Guess rejections are ordinary outcomes: 422 with a specific error code,
// and the session is left unchanged.

package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/termwordle/internal/daily"
	"github.com/robalobadob/wordle/apps/termwordle/internal/game"
	"github.com/robalobadob/wordle/apps/termwordle/internal/stats"
	"github.com/robalobadob/wordle/apps/termwordle/internal/store"
)

const (
	modeRandom = "random"
	modeDaily  = "daily"
)

// mountGame registers all /game routes.
func (s *Server) mountGame(r chi.Router) {
	r.Route("/game", func(r chi.Router) {
		r.Post("/new", s.handleNewGame)
		r.With(s.requireGameToken()).Post("/guess", s.handleGuess)
		r.With(s.requireGameToken()).Get("/{id}", s.handleGetGame)
	})
}

// -----------------------------------------------------------------------------
// /game/new

type newGameReq struct {
	MaxGuesses int  `json:"maxGuesses"` // optional; server default when 0
	Daily      bool `json:"daily"`      // pick today's word instead of a random one
}

type newGameRes struct {
	GameID       string    `json:"gameId"`
	Token        string    `json:"token"`
	TokenExpires time.Time `json:"tokenExpires"`
	Mode         string    `json:"mode"`
	WordLength   int       `json:"wordLength"`
	MaxGuesses   int       `json:"maxGuesses"`
}

func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	// An empty body means all defaults.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	if req.MaxGuesses == 0 {
		req.MaxGuesses = s.cfg.MaxGuesses
	}
	if req.MaxGuesses < 1 || req.MaxGuesses > maxGuessesLimit {
		writeError(w, http.StatusBadRequest, "invalid_max_guesses")
		return
	}

	mode := modeRandom
	rng := s.newRand()
	if req.Daily {
		mode = modeDaily
		rng = daily.Today(s.cfg.DailySalt)
	}

	def, err := game.NewDefinition(s.words, req.MaxGuesses, rng)
	if err != nil {
		log.Error().Err(err).Msg("new definition")
		writeError(w, http.StatusInternalServerError, "definition_failed")
		return
	}

	s.expireGames(r.Context())

	g := &store.Game{
		ID:        uuid.NewString(),
		Mode:      mode,
		CreatedAt: s.now().UTC(),
		Session:   game.NewSession(def),
	}
	tok, exp, err := s.signGameToken(g.ID)
	if err != nil {
		log.Error().Err(err).Msg("sign game token")
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return
	}
	if err := s.store.Put(r.Context(), g); err != nil {
		log.Error().Err(err).Msg("save game")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	log.Info().Str("gameId", g.ID).Str("mode", mode).Int("maxGuesses", def.MaxGuesses).Msg("game created")

	writeJSON(w, http.StatusCreated, newGameRes{
		GameID:       g.ID,
		Token:        tok,
		TokenExpires: exp.UTC(),
		Mode:         mode,
		WordLength:   def.WordLength,
		MaxGuesses:   def.MaxGuesses,
	})
}

// -----------------------------------------------------------------------------
// /game/guess

type guessReq struct {
	GameID string `json:"gameId"`
	Guess  string `json:"guess"`
}

type guessRes struct {
	Marks     []game.Validity `json:"marks"`
	State     game.State      `json:"state"`
	Guesses   int             `json:"guesses"`
	Remaining int             `json:"remaining"`
	Answer    string          `json:"answer,omitempty"` // revealed once lost
}

func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	if req.GameID == "" || req.GameID != authorizedGame(r) {
		writeError(w, http.StatusForbidden, "forbidden")
		return
	}
	word := strings.TrimSpace(req.Guess)

	var (
		res      guessRes
		finished *stats.Result
	)
	err := s.store.Update(r.Context(), req.GameID, func(g *store.Game) error {
		state, err := g.Session.Guess(word)
		if err != nil {
			return err
		}
		history := g.Session.History()
		res = guessRes{
			Marks:     history[len(history)-1].Letters,
			State:     state,
			Guesses:   len(history),
			Remaining: g.Session.Remaining(),
		}
		if state == game.StateLost {
			res.Answer = g.Session.Definition().Target
		}
		if state.Terminal() {
			finished = &stats.Result{
				GameID:     g.ID,
				Mode:       g.Mode,
				State:      state,
				Guesses:    len(history),
				MaxGuesses: g.Session.Definition().MaxGuesses,
				FinishedAt: s.now(),
			}
		}
		return nil
	})
	if err != nil {
		status, code := guessError(err)
		if status == http.StatusInternalServerError {
			log.Error().Err(err).Str("gameId", req.GameID).Msg("apply guess")
		}
		writeError(w, status, code)
		return
	}

	// Record the result (best effort, non-fatal if it fails)
	if finished != nil {
		if err := s.ledger.Record(r.Context(), *finished); err != nil {
			log.Warn().Err(err).Str("gameId", req.GameID).Msg("record result")
		}
		log.Info().Str("gameId", req.GameID).Str("state", string(finished.State)).Int("guesses", finished.Guesses).Msg("game finished")
	}

	writeJSON(w, http.StatusOK, res)
}

// guessError maps engine and store errors to an HTTP status and error code.
func guessError(err error) (int, string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, game.ErrWrongLength):
		return http.StatusUnprocessableEntity, "wrong_length"
	case errors.Is(err, game.ErrAlreadyGuessed):
		return http.StatusUnprocessableEntity, "already_guessed"
	case errors.Is(err, game.ErrNotInDictionary):
		return http.StatusUnprocessableEntity, "not_in_dictionary"
	case errors.Is(err, game.ErrGameOver):
		return http.StatusConflict, "game_over"
	default:
		return http.StatusInternalServerError, "server_error"
	}
}

// -----------------------------------------------------------------------------
// /game/{id}

type gameRes struct {
	GameID     string             `json:"gameId"`
	Mode       string             `json:"mode"`
	State      game.State         `json:"state"`
	WordLength int                `json:"wordLength"`
	MaxGuesses int                `json:"maxGuesses"`
	Remaining  int                `json:"remaining"`
	History    []game.GuessRecord `json:"history"`
	Answer     string             `json:"answer,omitempty"`
	CreatedAt  time.Time          `json:"createdAt"`
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id != authorizedGame(r) {
		writeError(w, http.StatusForbidden, "forbidden")
		return
	}
	var res gameRes
	err := s.store.Update(r.Context(), id, func(g *store.Game) error {
		def := g.Session.Definition()
		res = gameRes{
			GameID:     g.ID,
			Mode:       g.Mode,
			State:      g.Session.State(),
			WordLength: def.WordLength,
			MaxGuesses: def.MaxGuesses,
			Remaining:  g.Session.Remaining(),
			History:    g.Session.History(),
			CreatedAt:  g.CreatedAt,
		}
		if res.State == game.StateLost {
			res.Answer = def.Target
		}
		return nil
	})
	if err != nil {
		status, code := guessError(err)
		writeError(w, status, code)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
