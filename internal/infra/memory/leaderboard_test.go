package memory

import (
	"context"
	"testing"
	"time"

	"quiz-racer/internal/domain"
)

func TestLeaderboardOrdering(t *testing.T) {
	store := NewLeaderboardStore()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	ctx := context.Background()

	submit := func(name string, score int, tier domain.Tier, at time.Duration) {
		t.Helper()
		err := store.SubmitResult(ctx, domain.Result{PlayerName: name, Score: score, Tier: tier, CreatedAt: base.Add(at)})
		if err != nil {
			t.Fatalf("submit: %v", err)
		}
	}
	submit("late-tie", 500, domain.TierAdult, 2*time.Minute)
	submit("top", 900, domain.TierYoung, 3*time.Minute)
	submit("early-tie", 500, domain.TierAdult, time.Minute)
	submit("low", 100, domain.TierYoung, 0)

	all, err := store.TopResults(ctx, 10, "")
	if err != nil {
		t.Fatalf("top results: %v", err)
	}
	want := []string{"top", "early-tie", "late-tie", "low"}
	for i, name := range want {
		if all[i].PlayerName != name {
			t.Fatalf("position %d: expected %s, got %s", i, name, all[i].PlayerName)
		}
		if all[i].ID == "" {
			t.Fatalf("expected generated id for %s", name)
		}
	}

	young, _ := store.TopResults(ctx, 10, domain.TierYoung)
	if len(young) != 2 || young[0].PlayerName != "top" {
		t.Fatalf("unexpected young leaderboard %+v", young)
	}

	limited, _ := store.TopResults(ctx, 1, "")
	if len(limited) != 1 || limited[0].PlayerName != "top" {
		t.Fatalf("expected limit of 1, got %+v", limited)
	}
}
