package app

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"quiz-racer/internal/domain"
)

// Gateway accepts the result of a finished session for persistence.
type Gateway interface {
	SubmitResult(ctx context.Context, result domain.Result) error
}

const persistTimeout = 5 * time.Second

// SessionOption customizes a Session.
type SessionOption func(*Session)

// WithClock drives timers from c instead of the wall clock.
func WithClock(c Clock) SessionOption {
	return func(s *Session) { s.clock = c }
}

// WithRandom replaces the random source used for selection and competitors.
func WithRandom(r Random) SessionOption {
	return func(s *Session) { s.rnd = r }
}

// WithGateway sets where finished results are sent.
func WithGateway(g Gateway) SessionOption {
	return func(s *Session) { s.gateway = g }
}

// WithNotifier adds a listener for session events (sound, analytics).
func WithNotifier(n Notifier) SessionOption {
	return func(s *Session) { s.notifiers = append(s.notifiers, n) }
}

// Session is the game state machine of one player:
// start -> playing -> finished -> leaderboard, and back to start on Restart.
//
// Every mutation happens under mu. Timer callbacks carry the countdown
// generation or the session epoch they were scheduled in and are dropped when
// it no longer matches, so a stale callback cannot touch a newer game.
type Session struct {
	id        string
	cfg       Config
	clock     Clock
	rnd       Random
	gateway   Gateway
	hub       *Broadcaster
	notifiers []Notifier

	mu          sync.Mutex
	phase       domain.Phase
	tier        domain.Tier
	playerName  string
	questions   []domain.Question
	index       int
	answering   bool
	lastResult  domain.AnswerResult
	distance    int
	tally       *Tally
	countdown   *Countdown
	competitors []domain.Competitor
	startedAt   time.Time
	summary     *domain.Summary
	reveal      Timer
	epoch       uint64
	closed      bool
}

func NewSession(id string, cfg Config, opts ...SessionOption) *Session {
	s := &Session{
		id:    id,
		cfg:   cfg,
		clock: SystemClock{},
		rnd:   rand.New(rand.NewSource(time.Now().UnixNano())),
		hub:   NewBroadcaster(),
		phase: domain.PhaseStart,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.countdown = NewCountdown(s.clock, cfg.PerQuestionTime)
	s.tally = NewTally(cfg.rules())
	return s
}

func (s *Session) ID() string { return s.id }

// ValidatePlayerName trims raw and checks it is non-empty and at most 20 characters.
func ValidatePlayerName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", domain.ErrPlayerNameRequired
	}
	if utf8.RuneCountInString(name) > domain.MaxPlayerNameLength {
		return "", domain.ErrPlayerNameTooLong
	}
	return name, nil
}

// Start validates the player, builds a fresh question list and enters playing.
// It is only valid from the start phase; a finished game needs Restart first.
// On error the session is left untouched.
func (s *Session) Start(pool domain.QuestionPool, tier domain.Tier, playerName string) error {
	name, err := ValidatePlayerName(playerName)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return domain.ErrSessionNotFound
	}
	if s.phase != domain.PhaseStart {
		return domain.ErrInvalidPhase
	}

	questions, err := GenerateSessionQuestions(pool, tier, s.cfg.TotalQuestions, s.rnd)
	if err != nil {
		return err
	}
	if len(questions) < s.cfg.TotalQuestions {
		log.Warn().
			Str("session", s.id).
			Str("tier", string(tier)).
			Int("want", s.cfg.TotalQuestions).
			Int("got", len(questions)).
			Msg("question pool too small, session shortened")
	}

	s.cancelLocked()
	s.resetLocked()
	s.tier = tier
	s.playerName = name
	s.questions = questions
	s.competitors = NewCompetitors(s.cfg.Competitors)
	s.startedAt = s.clock.Now()
	s.phase = domain.PhasePlaying
	s.emitLocked(domain.Event{Type: domain.EventPhase})
	s.beginQuestionLocked()
	return nil
}

// SubmitAnswer resolves the current question with the chosen option.
// It reports false, changing nothing, while an answer is being revealed or
// when there is no current question.
func (s *Session) SubmitAnswer(index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentLocked() == nil || s.answering {
		return false
	}
	s.resolveLocked(index, false)
	return true
}

// Timeout resolves the current question as unanswered. It follows the same
// guard as SubmitAnswer, so at most one resolution happens per question.
func (s *Session) Timeout() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentLocked() == nil || s.answering {
		return false
	}
	s.resolveLocked(domain.NoAnswer, true)
	return true
}

// Restart abandons the current game, cancelling any pending tick or reveal, and returns to start.
func (s *Session) Restart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelLocked()
	s.resetLocked()
	s.phase = domain.PhaseStart
	s.emitLocked(domain.Event{Type: domain.EventPhase})
}

// ShowLeaderboard moves a finished session to the leaderboard view.
func (s *Session) ShowLeaderboard() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.phase {
	case domain.PhaseLeaderboard:
		return nil
	case domain.PhaseFinished:
		s.phase = domain.PhaseLeaderboard
		s.emitLocked(domain.Event{Type: domain.EventPhase})
		return nil
	default:
		return domain.ErrInvalidPhase
	}
}

// Subscribe streams session events. The caller must invoke cancel.
func (s *Session) Subscribe() (<-chan domain.Event, func()) {
	return s.hub.Subscribe()
}

// Close stops all timers and ends subscriptions. The session rejects Start afterwards.
func (s *Session) Close() {
	s.mu.Lock()
	s.cancelLocked()
	s.closed = true
	s.mu.Unlock()
	s.hub.Close()
}

func (s *Session) Phase() domain.Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Snapshot copies the observable state.
func (s *Session) Snapshot() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := domain.Snapshot{
		SessionID:       s.id,
		Phase:           s.phase,
		Tier:            s.tier,
		PlayerName:      s.playerName,
		CurrentIndex:    s.index,
		TotalQuestions:  s.totalLocked(),
		TimeLeft:        s.countdown.Remaining(),
		PerQuestionTime: s.cfg.PerQuestionTime,
		IsAnswering:     s.answering,
		Distance:        s.distance,
		MaxDistance:     s.cfg.MaxDistance,
		Streak:          s.tally.Streak(),
		LastResult:      s.lastResult,
		Score:           s.tally.Score(),
		AnswerTimes:     s.tally.AnswerTimes(),
		Competitors:     append([]domain.Competitor(nil), s.competitors...),
		Position:        s.positionLocked(),
		Summary:         s.summary,
	}
	if q := s.currentLocked(); q != nil {
		view := q.View()
		snap.Question = &view
	}
	return snap
}

func (s *Session) onTick(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != domain.PhasePlaying || s.answering {
		return
	}
	_, expired, ok := s.countdown.Tick(gen)
	if !ok {
		return
	}
	s.emitLocked(domain.Event{Type: domain.EventTick})
	if expired {
		s.resolveLocked(domain.NoAnswer, true)
	}
}

// resolveLocked locks input, scores the answer and schedules the reveal.
func (s *Session) resolveLocked(index int, timedOut bool) {
	q := s.questions[s.index]
	s.answering = true
	s.countdown.Stop()

	correct := !timedOut && q.IsCorrect(index)
	out := s.tally.Record(s.countdown.Remaining(), correct)
	if correct {
		s.distance = min(s.distance+out.DistanceGained, s.cfg.MaxDistance)
		s.lastResult = domain.AnswerCorrect
	} else {
		s.lastResult = domain.AnswerWrong
	}
	AdvanceCompetitors(s.competitors, s.cfg.rules(), s.rnd)

	s.emitLocked(domain.Event{
		Type: domain.EventAnswer,
		Answer: &domain.AnswerOutcome{
			QuestionIndex:  s.index,
			SelectedIndex:  index,
			CorrectIndex:   q.CorrectIndex,
			Result:         s.lastResult,
			TimedOut:       timedOut,
			AnswerTime:     out.AnswerTime,
			DistanceGained: out.DistanceGained,
			Distance:       s.distance,
			Streak:         s.tally.Streak(),
			Position:       s.positionLocked(),
		},
	})

	epoch := s.epoch
	s.reveal = s.clock.AfterFunc(s.cfg.RevealDelay, func() { s.afterReveal(epoch) })
}

func (s *Session) afterReveal(epoch uint64) {
	s.mu.Lock()
	if epoch != s.epoch || s.phase != domain.PhasePlaying || !s.answering {
		s.mu.Unlock()
		return
	}
	s.reveal = nil
	if s.index+1 < len(s.questions) {
		s.index++
		s.beginQuestionLocked()
		s.mu.Unlock()
		return
	}
	result := s.finishLocked()
	s.mu.Unlock()

	s.persist(result)
}

func (s *Session) beginQuestionLocked() {
	s.answering = false
	s.lastResult = domain.AnswerNone
	s.countdown.Reset()
	s.countdown.Start(s.onTick)
	view := s.questions[s.index].View()
	s.emitLocked(domain.Event{Type: domain.EventQuestion, Question: &view})
}

func (s *Session) finishLocked() domain.Result {
	now := s.clock.Now()
	score := s.tally.Finalize(now.Sub(s.startedAt))
	s.answering = false
	s.lastResult = domain.AnswerNone
	s.phase = domain.PhaseFinished

	accuracy := Accuracy(score.CorrectAnswers, len(s.questions))
	s.summary = &domain.Summary{
		PlayerName:      s.playerName,
		Tier:            s.tier,
		Score:           score,
		Position:        s.positionLocked(),
		AccuracyPercent: accuracy,
		Competitors:     append([]domain.Competitor(nil), s.competitors...),
	}
	s.emitLocked(domain.Event{Type: domain.EventFinished, Summary: s.summary})

	return domain.Result{
		PlayerName:       s.playerName,
		Score:            score.TotalDistance,
		CorrectAnswers:   score.CorrectAnswers,
		TotalTimeSeconds: score.TotalTime,
		AccuracyPercent:  accuracy,
		Tier:             s.tier,
		CreatedAt:        now.UTC(),
	}
}

// persist hands the result to the gateway once. Failures are logged and never
// change the finished state.
func (s *Session) persist(result domain.Result) {
	if s.gateway == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := s.gateway.SubmitResult(ctx, result); err != nil {
		log.Warn().
			Err(err).
			Str("session", s.id).
			Str("player", result.PlayerName).
			Str("tier", string(result.Tier)).
			Msg("leaderboard submission failed")
	}
}

func (s *Session) cancelLocked() {
	s.countdown.Stop()
	if s.reveal != nil {
		s.reveal.Stop()
		s.reveal = nil
	}
	s.epoch++
}

func (s *Session) resetLocked() {
	s.tier = ""
	s.playerName = ""
	s.questions = nil
	s.index = 0
	s.answering = false
	s.lastResult = domain.AnswerNone
	s.distance = 0
	s.tally = NewTally(s.cfg.rules())
	s.countdown.Reset()
	s.competitors = nil
	s.summary = nil
	s.startedAt = time.Time{}
}

func (s *Session) currentLocked() *domain.Question {
	if s.phase != domain.PhasePlaying || s.index >= len(s.questions) {
		return nil
	}
	return &s.questions[s.index]
}

func (s *Session) totalLocked() int {
	if len(s.questions) > 0 {
		return len(s.questions)
	}
	return s.cfg.TotalQuestions
}

func (s *Session) positionLocked() int {
	return RankOf(float64(s.distance), competitorDistances(s.competitors))
}

func (s *Session) emitLocked(ev domain.Event) {
	ev.SessionID = s.id
	ev.Phase = s.phase
	ev.Index = s.index
	ev.TimeLeft = s.countdown.Remaining()
	s.hub.Notify(ev)
	for _, n := range s.notifiers {
		n.Notify(ev)
	}
}
