package app

import (
	"math"
	"time"

	"quiz-racer/internal/domain"
)

// Rules are the scoring constants of a session.
type Rules struct {
	PerQuestionTime int
	TotalQuestions  int
	MaxDistance     int
}

// BaseDistance is the distance a correct answer earns before time and streak bonuses.
func (r Rules) BaseDistance() float64 {
	if r.TotalQuestions <= 0 {
		return 0
	}
	return float64(r.MaxDistance) / float64(r.TotalQuestions)
}

// CalculateDistance returns the distance awarded for one answer.
// streak is the number of consecutive correct answers before this one.
func CalculateDistance(timeLeft int, correct bool, streak int, rules Rules) int {
	if !correct {
		return 0
	}
	timeBonus := 0.0
	if rules.PerQuestionTime > 0 {
		timeBonus = float64(clampInt(timeLeft, 0, rules.PerQuestionTime)) / float64(rules.PerQuestionTime) * 10
	}
	multiplier := 1 + float64(streak)*0.1
	return int(math.Round((rules.BaseDistance() + timeBonus) * multiplier))
}

// Accuracy is the integer percentage of correct answers.
func Accuracy(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}

// Outcome is the scoring result of one resolved question.
type Outcome struct {
	Correct        bool
	TimeLeft       int
	AnswerTime     int
	StreakBefore   int
	DistanceGained int
}

// Tally is the running aggregate of a session: score, streak and per-question answer times.
// It is not safe for concurrent use; the owning Session serializes access.
type Tally struct {
	rules       Rules
	score       domain.Score
	streak      int
	answerTimes []int
}

func NewTally(rules Rules) *Tally {
	return &Tally{rules: rules, answerTimes: make([]int, 0, rules.TotalQuestions)}
}

// Record scores one answer and folds it into the aggregate.
func (t *Tally) Record(timeLeft int, correct bool) Outcome {
	timeLeft = clampInt(timeLeft, 0, t.rules.PerQuestionTime)
	out := Outcome{
		Correct:      correct,
		TimeLeft:     timeLeft,
		AnswerTime:   t.rules.PerQuestionTime - timeLeft,
		StreakBefore: t.streak,
	}
	t.answerTimes = append(t.answerTimes, out.AnswerTime)

	if !correct {
		t.streak = 0
		t.score.WrongAnswers++
		return out
	}

	out.DistanceGained = CalculateDistance(timeLeft, true, out.StreakBefore, t.rules)
	t.streak++
	t.score.CorrectAnswers++
	t.score.TotalDistance = min(t.score.TotalDistance+out.DistanceGained, t.rules.MaxDistance)
	// No bonus is credited on the first answer of a new streak.
	if out.StreakBefore > 0 {
		t.score.StreakBonus += float64(out.DistanceGained) * 0.1
	}
	return out
}

// Finalize fills in the averages once the session is over. elapsed is wall-clock session time.
func (t *Tally) Finalize(elapsed time.Duration) domain.Score {
	if len(t.answerTimes) > 0 {
		sum := 0
		for _, at := range t.answerTimes {
			sum += at
		}
		t.score.AverageTime = float64(sum) / float64(len(t.answerTimes))
	} else {
		t.score.AverageTime = 0
	}
	t.score.TotalTime = elapsed.Seconds()
	return t.score
}

func (t *Tally) Score() domain.Score { return t.score }

func (t *Tally) Streak() int { return t.streak }

func (t *Tally) AnswerTimes() []int {
	return append([]int(nil), t.answerTimes...)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
