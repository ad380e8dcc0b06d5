// Package sqlite keeps the leaderboard in a local database file, for single-node
// deployments without Postgres.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"quiz-racer/internal/domain"

	_ "modernc.org/sqlite"
)

// createdAtLayout is fixed width so text order matches time order.
const createdAtLayout = "2006-01-02T15:04:05.000000000Z"

type LeaderboardStore struct {
	db *sql.DB
}

func NewLeaderboardStore(dbPath string) (*LeaderboardStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// A single writer avoids SQLITE_BUSY between concurrent finishing sessions.
	db.SetMaxOpenConns(1)
	store := &LeaderboardStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *LeaderboardStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS leaderboard_results (
  id TEXT PRIMARY KEY,
  player_name TEXT NOT NULL,
  score INTEGER NOT NULL,
  correct_answers INTEGER NOT NULL,
  total_time_seconds REAL NOT NULL,
  accuracy_percent INTEGER NOT NULL,
  tier TEXT NOT NULL,
  created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS leaderboard_results_rank_idx ON leaderboard_results (score DESC, created_at ASC);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create leaderboard table: %w", err)
	}
	return nil
}

func (s *LeaderboardStore) SubmitResult(ctx context.Context, r domain.Result) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	const stmt = `
INSERT INTO leaderboard_results (id, player_name, score, correct_answers, total_time_seconds, accuracy_percent, tier, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO NOTHING;
`
	_, err := s.db.ExecContext(ctx, stmt,
		r.ID,
		r.PlayerName,
		r.Score,
		r.CorrectAnswers,
		r.TotalTimeSeconds,
		r.AccuracyPercent,
		string(r.Tier),
		r.CreatedAt.UTC().Format(createdAtLayout),
	)
	if err != nil {
		return fmt.Errorf("insert result: %w", err)
	}
	return nil
}

func (s *LeaderboardStore) TopResults(ctx context.Context, limit int, tier domain.Tier) ([]domain.Result, error) {
	const query = `
SELECT id, player_name, score, correct_answers, total_time_seconds, accuracy_percent, tier, created_at
FROM leaderboard_results
WHERE ? = '' OR tier = ?
ORDER BY score DESC, created_at ASC
LIMIT ?;
`
	rows, err := s.db.QueryContext(ctx, query, string(tier), string(tier), limit)
	if err != nil {
		return nil, fmt.Errorf("query leaderboard: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Result, 0)
	for rows.Next() {
		var (
			r         domain.Result
			tierRaw   string
			createdAt string
		)
		if err := rows.Scan(&r.ID, &r.PlayerName, &r.Score, &r.CorrectAnswers, &r.TotalTimeSeconds, &r.AccuracyPercent, &tierRaw, &createdAt); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		r.Tier = domain.Tier(tierRaw)
		if r.CreatedAt, err = time.Parse(createdAtLayout, createdAt); err != nil {
			return nil, fmt.Errorf("parse created_at of %s: %w", r.ID, err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query leaderboard: %w", err)
	}
	return out, nil
}

func (s *LeaderboardStore) Close() error {
	return s.db.Close()
}
