package app_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"quiz-racer/internal/app"
	"quiz-racer/internal/app/apptest"
	"quiz-racer/internal/domain"
	"quiz-racer/internal/infra/memory"
)

type failingQuestions struct{ calls int }

func (f *failingQuestions) GetPool(context.Context) (domain.QuestionPool, error) {
	f.calls++
	return nil, errors.New("db down")
}

func newService(t *testing.T, questions app.QuestionRepository) (*app.GameService, *apptest.FakeClock, *memory.LeaderboardStore) {
	t.Helper()
	if questions == nil {
		questions = memory.NewQuestionRepository(memory.NewStaticQuestionLoader(apptest.Pool(15).All()), time.Minute)
	}
	clock := apptest.NewFakeClock(time.Date(2025, 10, 17, 9, 0, 0, 0, time.UTC))
	board := memory.NewLeaderboardStore()
	svc := app.NewGameService(memory.NewSessionStore(), questions, board, board, app.DefaultConfig(),
		app.WithServiceClock(clock),
		app.WithRandomSource(func() app.Random { return rand.New(rand.NewSource(5)) }),
	)
	return svc, clock, board
}

func TestGameServicePlaysToLeaderboard(t *testing.T) {
	svc, clock, _ := newService(t, nil)
	ctx := context.Background()

	id, err := svc.NewSession(ctx)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	defer svc.Close(ctx, id)

	events, cancel, err := svc.Subscribe(ctx, id)
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	defer cancel()

	snap, err := svc.Start(ctx, id, domain.TierYoung, "Grace")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if snap.Phase != domain.PhasePlaying || snap.Question == nil {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if ev := <-events; ev.Type != domain.EventPhase {
		t.Fatalf("expected phase event, got %s", ev.Type)
	}

	for i := 0; i < 30; i++ {
		accepted, err := svc.SubmitAnswer(ctx, id, 1)
		if err != nil || !accepted {
			t.Fatalf("submit %d: accepted=%v err=%v", i, accepted, err)
		}
		clock.Advance(time.Second)
	}

	if err := svc.ShowLeaderboard(ctx, id); err != nil {
		t.Fatalf("show leaderboard: %v", err)
	}
	snap, _ = svc.Snapshot(ctx, id)
	if snap.Phase != domain.PhaseLeaderboard {
		t.Fatalf("expected leaderboard phase, got %s", snap.Phase)
	}

	top, err := svc.TopResults(ctx, 0, domain.TierYoung)
	if err != nil {
		t.Fatalf("top results: %v", err)
	}
	if len(top) != 1 || top[0].PlayerName != "Grace" || top[0].Score != 1000 || top[0].ID == "" {
		t.Fatalf("unexpected leaderboard %+v", top)
	}

	if err := svc.Restart(ctx, id); err != nil {
		t.Fatalf("restart: %v", err)
	}
	snap, _ = svc.Snapshot(ctx, id)
	if snap.Phase != domain.PhaseStart {
		t.Fatalf("expected start after restart, got %s", snap.Phase)
	}
}

func TestGameServiceUnknownSession(t *testing.T) {
	svc, _, _ := newService(t, nil)
	ctx := context.Background()

	if _, err := svc.Start(ctx, "missing", domain.TierAdult, "Ada"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := svc.SubmitAnswer(ctx, "missing", 0); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, _, err := svc.Subscribe(ctx, "missing"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestGameServiceValidatesBeforeLoadingQuestions(t *testing.T) {
	questions := &failingQuestions{}
	svc, _, _ := newService(t, questions)
	ctx := context.Background()
	id, _ := svc.NewSession(ctx)
	defer svc.Close(ctx, id)

	if _, err := svc.Start(ctx, id, domain.TierAdult, ""); !errors.Is(err, domain.ErrPlayerNameRequired) {
		t.Fatalf("expected name required, got %v", err)
	}
	if questions.calls != 0 {
		t.Fatalf("question store must not be hit for an invalid name")
	}
	if _, err := svc.Start(ctx, id, domain.TierAdult, "Ada"); err == nil {
		t.Fatalf("expected question store error")
	}
	snap, _ := svc.Snapshot(ctx, id)
	if snap.Phase != domain.PhaseStart {
		t.Fatalf("failed start must leave the session at start, got %s", snap.Phase)
	}
}

func TestGameServiceCloseForgetsSession(t *testing.T) {
	svc, _, _ := newService(t, nil)
	ctx := context.Background()
	id, _ := svc.NewSession(ctx)

	events, _, err := svc.Subscribe(ctx, id)
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	svc.Close(ctx, id)
	if _, ok := <-events; ok {
		t.Fatalf("expected subscription closed")
	}
	if _, err := svc.Snapshot(ctx, id); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected closed session to be forgotten, got %v", err)
	}
}

func TestGameServiceTopResultsWithoutReader(t *testing.T) {
	svc := app.NewGameService(memory.NewSessionStore(), nil, nil, nil, app.DefaultConfig())
	top, err := svc.TopResults(context.Background(), 500, "")
	if err != nil || top == nil || len(top) != 0 {
		t.Fatalf("expected empty leaderboard, got %v %v", top, err)
	}
}

func TestTeeGatewayReachesEveryGateway(t *testing.T) {
	ok := &apptest.RecordingGateway{}
	down := &apptest.RecordingGateway{Fail: true}
	tee := app.NewTeeGateway(ok, nil, down)

	err := tee.SubmitResult(context.Background(), domain.Result{PlayerName: "Ada"})
	if !errors.Is(err, apptest.ErrGatewayDown) {
		t.Fatalf("expected gateway failure, got %v", err)
	}
	if len(ok.Results()) != 1 || len(down.Results()) != 1 {
		t.Fatalf("expected both gateways to be called")
	}
}
