package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"quiz-racer/internal/domain"
	"quiz-racer/internal/infra/memory"
)

const questionsKey = "racer:questions"

// QuestionRepository caches the question pool in Redis and falls back to a loader on cache miss.
// The pool is stored as one hash field per difficulty:
//
//	HSET racer:questions {difficulty} {json array of questions}
type QuestionRepository struct {
	client *redis.Client
	loader memory.QuestionLoader
	ttl    time.Duration
	sf     singleflight.Group

	rndMu sync.Mutex
	rnd   *rand.Rand
}

func NewQuestionRepository(client *redis.Client, loader memory.QuestionLoader, ttl time.Duration) *QuestionRepository {
	return &QuestionRepository{
		client: client,
		loader: loader,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *QuestionRepository) GetPool(ctx context.Context) (domain.QuestionPool, error) {
	if pool, ok := r.cached(ctx); ok {
		return pool, nil
	}

	result, err, _ := r.sf.Do(questionsKey, func() (interface{}, error) {
		// Re-check cache in case another goroutine filled it.
		if pool, ok := r.cached(ctx); ok {
			return pool, nil
		}

		questions, err := r.loader.LoadQuestions(ctx)
		if err != nil {
			return nil, err
		}
		if len(questions) == 0 {
			return nil, domain.ErrNoQuestions
		}
		pool := domain.NewQuestionPool(questions)
		if err := r.store(ctx, pool); err != nil {
			log.Warn().Err(err).Msg("cache question pool")
		}
		return pool, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(domain.QuestionPool), nil
}

func (r *QuestionRepository) cached(ctx context.Context) (domain.QuestionPool, bool) {
	fields, err := r.client.HGetAll(ctx, questionsKey).Result()
	if err != nil || len(fields) == 0 {
		return nil, false
	}
	pool := make(domain.QuestionPool, len(fields))
	for difficulty, raw := range fields {
		var questions []domain.Question
		if err := json.Unmarshal([]byte(raw), &questions); err != nil {
			log.Warn().Err(err).Str("difficulty", difficulty).Msg("corrupt cached questions")
			return nil, false
		}
		pool[domain.Difficulty(difficulty)] = questions
	}
	return pool, true
}

func (r *QuestionRepository) store(ctx context.Context, pool domain.QuestionPool) error {
	pipe := r.client.TxPipeline()
	pipe.Del(ctx, questionsKey)
	for difficulty, questions := range pool {
		raw, err := json.Marshal(questions)
		if err != nil {
			return fmt.Errorf("marshal %s questions: %w", difficulty, err)
		}
		pipe.HSet(ctx, questionsKey, string(difficulty), raw)
	}
	if ttl := r.ttlWithJitter(); ttl > 0 {
		pipe.Expire(ctx, questionsKey, ttl)
	}
	_, err := pipe.Exec(ctx)
	return err
}

// Invalidate removes the cached pool for every instance sharing this Redis.
func (r *QuestionRepository) Invalidate(ctx context.Context) error {
	return r.client.Del(ctx, questionsKey).Err()
}

func (r *QuestionRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	jitterMax := int64(r.ttl) / 10
	r.rndMu.Lock()
	defer r.rndMu.Unlock()
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}
