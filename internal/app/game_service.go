package app

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"quiz-racer/internal/domain"
)

// SessionRepository abstracts where live sessions are kept (in-memory, Redis-marked, etc).
type SessionRepository interface {
	Put(session *Session)
	Get(sessionID string) (*Session, bool)
	Delete(sessionID string)
}

// QuestionRepository loads the question pool (from cache/backing store).
type QuestionRepository interface {
	GetPool(ctx context.Context) (domain.QuestionPool, error)
}

// LeaderboardReader serves ranked results for the leaderboard view.
// An empty tier returns every tier.
type LeaderboardReader interface {
	TopResults(ctx context.Context, limit int, tier domain.Tier) ([]domain.Result, error)
}

const (
	DefaultLeaderboardLimit = 50
	MaxLeaderboardLimit     = 100
)

// GameService contains the game use cases over many concurrent sessions.
type GameService struct {
	sessions    SessionRepository
	questions   QuestionRepository
	gateway     Gateway
	leaderboard LeaderboardReader
	cfg         Config
	clock       Clock
	newRandom   func() Random
	notifiers   []Notifier
}

// ServiceOption customizes a GameService.
type ServiceOption func(*GameService)

// WithServiceClock drives every session from c.
func WithServiceClock(c Clock) ServiceOption {
	return func(s *GameService) { s.clock = c }
}

// WithRandomSource sets the factory for per-session random sources.
func WithRandomSource(f func() Random) ServiceOption {
	return func(s *GameService) { s.newRandom = f }
}

// WithSessionNotifier attaches n to every session created by the service.
func WithSessionNotifier(n Notifier) ServiceOption {
	return func(s *GameService) { s.notifiers = append(s.notifiers, n) }
}

func NewGameService(store SessionRepository, questions QuestionRepository, gateway Gateway, leaderboard LeaderboardReader, cfg Config, opts ...ServiceOption) *GameService {
	s := &GameService{
		sessions:    store,
		questions:   questions,
		gateway:     gateway,
		leaderboard: leaderboard,
		cfg:         cfg,
		clock:       SystemClock{},
		newRandom: func() Random {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewSession allocates an idle session and returns its id.
func (s *GameService) NewSession(_ context.Context) (string, error) {
	id := uuid.NewString()
	opts := []SessionOption{
		WithClock(s.clock),
		WithRandom(s.newRandom()),
	}
	if s.gateway != nil {
		opts = append(opts, WithGateway(identifiedGateway{next: s.gateway}))
	}
	for _, n := range s.notifiers {
		opts = append(opts, WithNotifier(n))
	}
	s.sessions.Put(NewSession(id, s.cfg, opts...))
	return id, nil
}

// Start begins a game for playerName in tier.
func (s *GameService) Start(ctx context.Context, sessionID string, tier domain.Tier, playerName string) (domain.Snapshot, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return domain.Snapshot{}, domain.ErrSessionNotFound
	}
	// Validate before touching the question store.
	if _, err := ValidatePlayerName(playerName); err != nil {
		return domain.Snapshot{}, err
	}
	pool, err := s.questions.GetPool(ctx)
	if err != nil {
		return domain.Snapshot{}, err
	}
	if err := session.Start(pool, tier, playerName); err != nil {
		return domain.Snapshot{}, err
	}
	return session.Snapshot(), nil
}

// SubmitAnswer forwards the option index to the session. accepted is false for ignored submissions.
func (s *GameService) SubmitAnswer(_ context.Context, sessionID string, index int) (bool, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return false, domain.ErrSessionNotFound
	}
	return session.SubmitAnswer(index), nil
}

func (s *GameService) Restart(_ context.Context, sessionID string) error {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return domain.ErrSessionNotFound
	}
	session.Restart()
	return nil
}

func (s *GameService) ShowLeaderboard(_ context.Context, sessionID string) error {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return domain.ErrSessionNotFound
	}
	return session.ShowLeaderboard()
}

func (s *GameService) Snapshot(_ context.Context, sessionID string) (domain.Snapshot, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return domain.Snapshot{}, domain.ErrSessionNotFound
	}
	return session.Snapshot(), nil
}

// Subscribe returns a channel that receives events for a session.
// The caller must invoke the returned cancel function to avoid leaks.
func (s *GameService) Subscribe(_ context.Context, sessionID string) (<-chan domain.Event, func(), error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, nil, domain.ErrSessionNotFound
	}
	ch, cancel := session.Subscribe()
	return ch, cancel, nil
}

// Close stops the session's timers and forgets it.
func (s *GameService) Close(_ context.Context, sessionID string) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return
	}
	session.Close()
	s.sessions.Delete(sessionID)
}

// TopResults serves the leaderboard view, clamping limit to [1, MaxLeaderboardLimit].
func (s *GameService) TopResults(ctx context.Context, limit int, tier domain.Tier) ([]domain.Result, error) {
	if s.leaderboard == nil {
		return []domain.Result{}, nil
	}
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}
	limit = min(limit, MaxLeaderboardLimit)
	return s.leaderboard.TopResults(ctx, limit, tier)
}

// identifiedGateway stamps a result id so every downstream gateway records the same one.
type identifiedGateway struct {
	next Gateway
}

func (g identifiedGateway) SubmitResult(ctx context.Context, result domain.Result) error {
	if result.ID == "" {
		result.ID = uuid.NewString()
	}
	return g.next.SubmitResult(ctx, result)
}
