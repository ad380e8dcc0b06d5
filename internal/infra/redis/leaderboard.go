package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"quiz-racer/internal/domain"
)

const (
	resultsKey   = "racer:results"
	rankingAll   = "racer:leaderboard:all"
	rankingTierF = "racer:leaderboard:%s"
)

// LeaderboardStore ranks results with sorted sets:
//
//	HSET racer:results {id} {json result}
//	ZADD racer:leaderboard:all    {rank} {id}
//	ZADD racer:leaderboard:{tier} {rank} {id}
//
// The rank is the score plus a fraction that shrinks with time, so equal
// scores list the earlier result first.
type LeaderboardStore struct {
	client *redis.Client
}

func NewLeaderboardStore(client *redis.Client) *LeaderboardStore {
	return &LeaderboardStore{client: client}
}

func (s *LeaderboardStore) SubmitResult(ctx context.Context, result domain.Result) error {
	if result.ID == "" {
		result.ID = uuid.NewString()
	}
	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	member := redis.Z{Score: rank(result), Member: result.ID}

	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, resultsKey, result.ID, raw)
	pipe.ZAdd(ctx, rankingAll, member)
	pipe.ZAdd(ctx, tierKey(result.Tier), member)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("store result: %w", err)
	}
	return nil
}

func (s *LeaderboardStore) TopResults(ctx context.Context, limit int, tier domain.Tier) ([]domain.Result, error) {
	key := rankingAll
	if tier != "" {
		key = tierKey(tier)
	}
	ids, err := s.client.ZRevRange(ctx, key, 0, int64(limit)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("rank results: %w", err)
	}
	out := make([]domain.Result, 0, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	values, err := s.client.HMGet(ctx, resultsKey, ids...).Result()
	if err != nil {
		return nil, fmt.Errorf("load results: %w", err)
	}
	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		var r domain.Result
		if err := json.Unmarshal([]byte(raw), &r); err != nil {
			return nil, fmt.Errorf("unmarshal result: %w", err)
		}
		out = append(out, r)
	}
	return out, nil
}

func tierKey(tier domain.Tier) string {
	return fmt.Sprintf(rankingTierF, tier)
}

func rank(r domain.Result) float64 {
	return float64(r.Score) + 1 - float64(r.CreatedAt.Unix())/1e10
}
