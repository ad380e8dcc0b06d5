package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"

	"quiz-racer/internal/domain"
)

// LeaderboardStore persists finished results in leaderboard_results.
type LeaderboardStore struct {
	pool *pgxpool.Pool
}

func NewLeaderboardStore(pool *pgxpool.Pool) *LeaderboardStore {
	return &LeaderboardStore{pool: pool}
}

func (s *LeaderboardStore) SubmitResult(ctx context.Context, r domain.Result) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	_, err := s.pool.Exec(ctx, `INSERT INTO leaderboard_results
(id, player_name, score, correct_answers, total_time_seconds, accuracy_percent, tier, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (id) DO NOTHING`,
		r.ID, r.PlayerName, r.Score, r.CorrectAnswers, r.TotalTimeSeconds, r.AccuracyPercent, string(r.Tier), r.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert result: %w", err)
	}
	return nil
}

// TopResults orders by score descending, earlier results first on ties. An empty tier lists all tiers.
func (s *LeaderboardStore) TopResults(ctx context.Context, limit int, tier domain.Tier) ([]domain.Result, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, player_name, score, correct_answers, total_time_seconds, accuracy_percent, tier, created_at
FROM leaderboard_results
WHERE $1::text = '' OR tier = $1::text
ORDER BY score DESC, created_at ASC
LIMIT $2`, string(tier), limit)
	if err != nil {
		return nil, fmt.Errorf("query leaderboard: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Result, 0, limit)
	for rows.Next() {
		var (
			r    domain.Result
			tier string
		)
		if err := rows.Scan(&r.ID, &r.PlayerName, &r.Score, &r.CorrectAnswers, &r.TotalTimeSeconds, &r.AccuracyPercent, &tier, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		r.Tier = domain.Tier(tier)
		r.CreatedAt = r.CreatedAt.UTC()
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query leaderboard: %w", err)
	}
	return out, nil
}
