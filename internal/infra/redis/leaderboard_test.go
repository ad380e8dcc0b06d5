package redis

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"

	"quiz-racer/internal/domain"
)

func TestLeaderboardStoreRanksResults(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	store := NewLeaderboardStore(newClient(mr))
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	results := []domain.Result{
		{PlayerName: "late-tie", Score: 640, Tier: domain.TierAdult, CreatedAt: base.Add(time.Hour)},
		{PlayerName: "top", Score: 1000, Tier: domain.TierYoung, CreatedAt: base.Add(2 * time.Hour)},
		{PlayerName: "early-tie", Score: 640, Tier: domain.TierAdult, CreatedAt: base},
		{PlayerName: "low", Score: 12, Tier: domain.TierYoung, CreatedAt: base},
	}
	for _, r := range results {
		if err := store.SubmitResult(ctx, r); err != nil {
			t.Fatalf("submit %s: %v", r.PlayerName, err)
		}
	}

	all, err := store.TopResults(ctx, 10, "")
	if err != nil {
		t.Fatalf("top results: %v", err)
	}
	want := []string{"top", "early-tie", "late-tie", "low"}
	if len(all) != len(want) {
		t.Fatalf("expected %d results, got %d", len(want), len(all))
	}
	for i, name := range want {
		if all[i].PlayerName != name {
			t.Fatalf("position %d: expected %s, got %s", i, name, all[i].PlayerName)
		}
	}
	if !all[1].CreatedAt.Equal(base) || all[1].ID == "" {
		t.Fatalf("result fields not preserved: %+v", all[1])
	}

	adult, err := store.TopResults(ctx, 1, domain.TierAdult)
	if err != nil {
		t.Fatalf("top adult: %v", err)
	}
	if len(adult) != 1 || adult[0].PlayerName != "early-tie" {
		t.Fatalf("unexpected adult leaderboard %+v", adult)
	}
}

func TestLeaderboardStoreEmpty(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	top, err := NewLeaderboardStore(newClient(mr)).TopResults(context.Background(), 5, domain.TierYoung)
	if err != nil || len(top) != 0 {
		t.Fatalf("expected empty leaderboard, got %v %v", top, err)
	}
}
