package main

import (
	"context"
	"errors"
	"flag"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/mattn/go-colorable"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/termwordle/internal/cli"
	"github.com/robalobadob/wordle/apps/termwordle/internal/config"
	"github.com/robalobadob/wordle/apps/termwordle/internal/daily"
	"github.com/robalobadob/wordle/apps/termwordle/internal/game"
	"github.com/robalobadob/wordle/apps/termwordle/internal/httpserver"
	"github.com/robalobadob/wordle/apps/termwordle/internal/stats"
	"github.com/robalobadob/wordle/apps/termwordle/internal/store"
	"github.com/robalobadob/wordle/apps/termwordle/internal/words"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	flag.StringVar(&cfg.WordsFile, "filename", cfg.WordsFile, "word file, one word per line (default: built-in list)")
	flag.IntVar(&cfg.MaxGuesses, "max-guesses", cfg.MaxGuesses, "guesses allowed per game")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	flag.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "disable colored output")
	dailyMode := flag.Bool("daily", false, "play today's word instead of a random one")
	serve := flag.Bool("serve", false, "serve the JSON API instead of playing in the terminal")
	flag.Parse()
	if err := checkModes(*serve, *dailyMode); err != nil {
		log.Fatal().Err(err).Msg("invalid flags")
	}

	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	src := words.Pick(cfg.WordsFile)
	var rng game.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	if *dailyMode {
		rng = daily.Today(cfg.DailySalt)
	}
	def, err := game.FromSource(src, cfg.MaxGuesses, rng)
	if err != nil {
		log.Fatal().Err(err).Str("source", src.Name()).Msg("failed to load word list")
	}

	if *serve {
		runServer(cfg, def.Dictionary)
		return
	}
	os.Exit(play(cfg, src.Name(), def))
}

// checkModes rejects flag combinations that would be silently ignored.
func checkModes(serve, daily bool) error {
	if serve && daily {
		return errors.New(`-daily has no effect with -serve; clients start daily games with {"daily": true} on POST /game/new`)
	}
	return nil
}

// play runs one game on the terminal and returns the process exit code.
func play(cfg config.Config, source string, def game.Definition) int {
	// Logs go to stderr so they never land on the board.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: cfg.NoColor})

	out := colorable.NewColorableStdout()
	if err := cli.Banner(out, source, len(def.Dictionary), def.MaxGuesses); err != nil {
		log.Error().Err(err).Msg("write banner")
		return 1
	}

	r := cli.New(game.NewSession(def), os.Stdin, out, cli.Options{
		Color: !cfg.NoColor && cli.IsTerminal(os.Stdout),
	})
	state, err := r.Run()
	switch {
	case errors.Is(err, cli.ErrInputClosed):
		log.Warn().Msg("input closed, game abandoned")
		return 1
	case err != nil:
		log.Error().Err(err).Msg("game loop failed")
		return 1
	}
	log.Debug().Str("state", string(state)).Msg("game over")
	return 0
}

func runServer(cfg config.Config, dictionary []string) {
	ledger, err := stats.Open()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open stats ledger")
	}
	defer ledger.Close()

	srv := httpserver.New(store.NewMemoryStore(), ledger, dictionary, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("shutdown")
		}
	}()

	log.Info().Str("port", cfg.Port).Int("words", len(dictionary)).Msg("starting server")
	if err := srv.Start(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
