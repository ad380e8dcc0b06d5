package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"quiz-racer/internal/domain"
)

func TestLeaderboardEndpoint(t *testing.T) {
	svc, _, board := newTestService(t)
	base := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	for i, r := range []domain.Result{
		{PlayerName: "Bob", Score: 420, Tier: domain.TierYoung, CreatedAt: base},
		{PlayerName: "Cleo", Score: 910, Tier: domain.TierAdult, CreatedAt: base.Add(time.Minute)},
		{PlayerName: "Dan", Score: 300, Tier: domain.TierAdult, CreatedAt: base.Add(2 * time.Minute)},
	} {
		if err := board.SubmitResult(context.Background(), r); err != nil {
			t.Fatalf("seed %d: %v", i, err)
		}
	}
	router := NewRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/leaderboard", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var all leaderboardResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &all); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(all.Results) != 3 || all.Results[0].PlayerName != "Cleo" {
		t.Fatalf("unexpected leaderboard %+v", all.Results)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/leaderboard?tier=adult&limit=1", nil))
	var adult leaderboardResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &adult); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if adult.Tier != domain.TierAdult || len(adult.Results) != 1 || adult.Results[0].PlayerName != "Cleo" {
		t.Fatalf("unexpected adult leaderboard %+v", adult)
	}

	for _, target := range []string{"/api/leaderboard?tier=senior", "/api/leaderboard?limit=abc"} {
		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", target, rec.Code)
		}
	}
}

func TestHealthz(t *testing.T) {
	svc, _, _ := newTestService(t)
	rec := httptest.NewRecorder()
	NewRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
