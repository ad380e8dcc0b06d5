package app_test

import (
	"testing"
	"time"

	"quiz-racer/internal/app"
)

var raceRules = app.Rules{PerQuestionTime: 8, TotalQuestions: 30, MaxDistance: 1000}

func TestCalculateDistance(t *testing.T) {
	cases := []struct {
		name     string
		timeLeft int
		correct  bool
		streak   int
		want     int
	}{
		{name: "no time left", timeLeft: 0, correct: true, streak: 0, want: 33},
		{name: "full budget", timeLeft: 8, correct: true, streak: 0, want: 43},
		{name: "streak of three", timeLeft: 8, correct: true, streak: 3, want: 56},
		{name: "half budget", timeLeft: 4, correct: true, streak: 0, want: 38},
		{name: "wrong answer", timeLeft: 8, correct: false, streak: 5, want: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := app.CalculateDistance(tc.timeLeft, tc.correct, tc.streak, raceRules)
			if got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestTallyStreakAndBonus(t *testing.T) {
	tally := app.NewTally(raceRules)

	first := tally.Record(8, true)
	if first.DistanceGained != 43 || first.StreakBefore != 0 {
		t.Fatalf("unexpected first outcome %+v", first)
	}
	if tally.Score().StreakBonus != 0 {
		t.Fatalf("first answer of a streak must not earn a bonus, got %v", tally.Score().StreakBonus)
	}

	second := tally.Record(8, true)
	// (33.33 + 10) * 1.1 = 47.67
	if second.DistanceGained != 48 || tally.Streak() != 2 {
		t.Fatalf("unexpected second outcome %+v streak=%d", second, tally.Streak())
	}
	if got := tally.Score().StreakBonus; got < 4.79 || got > 4.81 {
		t.Fatalf("expected streak bonus 4.8, got %v", got)
	}

	wrong := tally.Record(3, false)
	if wrong.DistanceGained != 0 || tally.Streak() != 0 {
		t.Fatalf("wrong answer must reset streak, got %+v streak=%d", wrong, tally.Streak())
	}

	score := tally.Score()
	if score.CorrectAnswers != 2 || score.WrongAnswers != 1 || score.TotalDistance != 91 {
		t.Fatalf("unexpected score %+v", score)
	}
	if times := tally.AnswerTimes(); len(times) != 3 || times[0] != 0 || times[2] != 5 {
		t.Fatalf("unexpected answer times %v", times)
	}
}

func TestTallyClampsTotalDistance(t *testing.T) {
	tally := app.NewTally(app.Rules{PerQuestionTime: 8, TotalQuestions: 3, MaxDistance: 100})
	for i := 0; i < 5; i++ {
		tally.Record(8, true)
	}
	if got := tally.Score().TotalDistance; got != 100 {
		t.Fatalf("expected distance clamped at 100, got %d", got)
	}
}

func TestTallyFinalize(t *testing.T) {
	tally := app.NewTally(raceRules)
	empty := tally.Finalize(0)
	if empty.AverageTime != 0 {
		t.Fatalf("expected zero average with no answers, got %v", empty.AverageTime)
	}

	tally.Record(8, true) // 0s
	tally.Record(5, true) // 3s
	tally.Record(0, false)
	score := tally.Finalize(42 * time.Second)
	if score.AverageTime < 3.66 || score.AverageTime > 3.67 {
		t.Fatalf("expected average 3.67, got %v", score.AverageTime)
	}
	if score.TotalTime != 42 {
		t.Fatalf("expected total time 42, got %v", score.TotalTime)
	}
}

func TestAccuracy(t *testing.T) {
	if got := app.Accuracy(20, 30); got != 67 {
		t.Fatalf("expected 67, got %d", got)
	}
	if got := app.Accuracy(0, 0); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}
