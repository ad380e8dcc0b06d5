package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"quiz-racer/internal/domain"
)

// QuestionLoader loads the question bank from Postgres.
type QuestionLoader struct {
	pool *pgxpool.Pool
}

func NewQuestionLoader(pool *pgxpool.Pool) *QuestionLoader {
	return &QuestionLoader{pool: pool}
}

func (l *QuestionLoader) LoadQuestions(ctx context.Context) ([]domain.Question, error) {
	rows, err := l.pool.Query(ctx, `SELECT id, text, options, correct_index, difficulty, category FROM questions ORDER BY difficulty, id`)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}
	defer rows.Close()

	var out []domain.Question
	for rows.Next() {
		var (
			q          domain.Question
			rawOptions []byte
			difficulty string
		)
		if err := rows.Scan(&q.ID, &q.Text, &rawOptions, &q.CorrectIndex, &difficulty, &q.Category); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		if q.Options, err = decodeOptions(q.ID, rawOptions); err != nil {
			return nil, err
		}
		q.Difficulty = domain.Difficulty(difficulty)
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}
	if len(out) == 0 {
		return nil, domain.ErrNoQuestions
	}
	return out, nil
}

func decodeOptions(id string, raw []byte) ([]string, error) {
	var options []string
	if err := json.Unmarshal(raw, &options); err != nil {
		return nil, fmt.Errorf("unmarshal options of %s: %w", id, err)
	}
	if len(options) != domain.OptionCount {
		return nil, fmt.Errorf("question %s has %d options, want %d", id, len(options), domain.OptionCount)
	}
	return options, nil
}

// SeedQuestions upserts questions in one batch.
func SeedQuestions(ctx context.Context, pool *pgxpool.Pool, questions []domain.Question) error {
	batch := &pgx.Batch{}
	for _, q := range questions {
		options, err := json.Marshal(q.Options)
		if err != nil {
			return fmt.Errorf("marshal options of %s: %w", q.ID, err)
		}
		batch.Queue(`INSERT INTO questions (id, text, options, correct_index, difficulty, category)
VALUES ($1, $2, $3::jsonb, $4, $5, $6)
ON CONFLICT (id) DO UPDATE SET text = EXCLUDED.text, options = EXCLUDED.options,
	correct_index = EXCLUDED.correct_index, difficulty = EXCLUDED.difficulty, category = EXCLUDED.category`,
			q.ID, q.Text, string(options), q.CorrectIndex, string(q.Difficulty), q.Category)
	}

	br := pool.SendBatch(ctx, batch)
	defer br.Close()
	for _, q := range questions {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("seed question %s: %w", q.ID, err)
		}
	}
	return nil
}
