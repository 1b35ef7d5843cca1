package stats

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/robalobadob/wordle/apps/termwordle/internal/game"
)

// timeLayout is fixed-width so finished_at sorts as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Result is one finished game.
type Result struct {
	GameID     string
	Mode       string // "random" | "daily"
	State      game.State
	Guesses    int
	MaxGuesses int
	FinishedAt time.Time
}

// Summary aggregates every recorded result.
type Summary struct {
	Played int `json:"played"`
	Wins   int `json:"wins"`
	// Streak counts consecutive wins ending with the most recent game.
	Streak int `json:"streak"`
	// Distribution maps guesses-to-win to number of wins.
	Distribution map[int]int `json:"distribution"`
}

// Ledger records finished games for the lifetime of the process.
type Ledger struct{ db *sql.DB }

// Open creates an empty ledger.
func Open() (*Ledger, error) {
	db, err := openDB()
	if err != nil {
		return nil, fmt.Errorf("open stats db: %w", err)
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate stats db: %w", err)
	}
	return &Ledger{db: db}, nil
}

// Close releases the database; all results are discarded.
func (l *Ledger) Close() error { return l.db.Close() }

// Record stores a finished game. Recording the same GameID twice is a no-op.
func (l *Ledger) Record(ctx context.Context, r Result) error {
	if !r.State.Terminal() {
		return errors.New("stats: game not finished")
	}
	if r.FinishedAt.IsZero() {
		r.FinishedAt = time.Now()
	}
	_, err := l.db.ExecContext(ctx, `
        INSERT OR IGNORE INTO results
            (game_id, mode, outcome, guesses, max_guesses, finished_at)
        VALUES (?, ?, ?, ?, ?, ?)`,
		r.GameID, r.Mode, string(r.State), r.Guesses, r.MaxGuesses,
		r.FinishedAt.UTC().Format(timeLayout),
	)
	return err
}

// Summary computes totals, the current streak, and the win distribution.
func (l *Ledger) Summary(ctx context.Context) (Summary, error) {
	s := Summary{Distribution: map[int]int{}}

	if err := l.db.QueryRowContext(ctx, `
        SELECT COUNT(1), COALESCE(SUM(outcome = 'won'), 0) FROM results`,
	).Scan(&s.Played, &s.Wins); err != nil {
		return Summary{}, err
	}

	rows, err := l.db.QueryContext(ctx, `
        SELECT guesses, COUNT(1) FROM results
        WHERE outcome = 'won'
        GROUP BY guesses`)
	if err != nil {
		return Summary{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var guesses, n int
		if err := rows.Scan(&guesses, &n); err != nil {
			return Summary{}, err
		}
		s.Distribution[guesses] = n
	}
	if err := rows.Err(); err != nil {
		return Summary{}, err
	}

	// Streak: wins after the most recent loss.
	if err := l.db.QueryRowContext(ctx, `
        SELECT COUNT(1) FROM results
        WHERE outcome = 'won'
          AND finished_at > COALESCE(
              (SELECT MAX(finished_at) FROM results WHERE outcome = 'lost'), '')`,
	).Scan(&s.Streak); err != nil {
		return Summary{}, err
	}
	return s, nil
}
