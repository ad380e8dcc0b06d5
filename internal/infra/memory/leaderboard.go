package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"quiz-racer/internal/domain"
)

// LeaderboardStore keeps results in process. It is both the gateway sessions
// submit to and the reader behind the leaderboard view.
type LeaderboardStore struct {
	mu      sync.RWMutex
	results []domain.Result
}

func NewLeaderboardStore() *LeaderboardStore {
	return &LeaderboardStore{}
}

func (s *LeaderboardStore) SubmitResult(_ context.Context, result domain.Result) error {
	if result.ID == "" {
		result.ID = uuid.NewString()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = append(s.results, result)
	return nil
}

// TopResults orders by score descending, earlier results first on ties.
func (s *LeaderboardStore) TopResults(_ context.Context, limit int, tier domain.Tier) ([]domain.Result, error) {
	s.mu.RLock()
	out := make([]domain.Result, 0, len(s.results))
	for _, r := range s.results {
		if tier == "" || r.Tier == tier {
			out = append(out, r)
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
