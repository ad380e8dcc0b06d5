package domain

import (
	"fmt"
	"strings"
	"time"
)

// MaxPlayerNameLength bounds the trimmed player name, counted in characters.
const MaxPlayerNameLength = 20

// OptionCount is the number of choices every question offers.
const OptionCount = 4

// NoAnswer is the option index recorded when the countdown expires.
const NoAnswer = -1

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists the bands from lowest to highest.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// Tier selects which two adjacent difficulty bands a session mixes.
type Tier string

const (
	TierYoung Tier = "young"
	TierAdult Tier = "adult"
)

// ParseTier validates a raw tier name.
func ParseTier(raw string) (Tier, error) {
	switch t := Tier(strings.ToLower(strings.TrimSpace(raw))); t {
	case TierYoung, TierAdult:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTier, raw)
	}
}

// Phase is the lifecycle stage of a game session.
type Phase string

const (
	PhaseStart       Phase = "start"
	PhasePlaying     Phase = "playing"
	PhaseFinished    Phase = "finished"
	PhaseLeaderboard Phase = "leaderboard"
)

// AnswerResult is the correct/wrong flag shown during the reveal window.
type AnswerResult string

const (
	AnswerNone    AnswerResult = ""
	AnswerCorrect AnswerResult = "correct"
	AnswerWrong   AnswerResult = "wrong"
)

// Question models an MCQ question with exactly four options.
type Question struct {
	ID           string     `json:"id"`
	Text         string     `json:"text"`
	Options      []string   `json:"options"`
	CorrectIndex int        `json:"correctIndex"`
	Difficulty   Difficulty `json:"difficulty"`
	Category     string     `json:"category"`
}

// IsCorrect reports whether the option index answers the question.
func (q Question) IsCorrect(index int) bool {
	return index == q.CorrectIndex
}

// View strips the answer key so the question can be sent to a player.
func (q Question) View() QuestionView {
	return QuestionView{
		ID:         q.ID,
		Text:       q.Text,
		Options:    append([]string(nil), q.Options...),
		Difficulty: q.Difficulty,
		Category:   q.Category,
	}
}

// QuestionView is the player-facing form of a Question.
type QuestionView struct {
	ID         string     `json:"id"`
	Text       string     `json:"text"`
	Options    []string   `json:"options"`
	Difficulty Difficulty `json:"difficulty"`
	Category   string     `json:"category"`
}

// QuestionPool is the read-only question bank grouped by difficulty.
type QuestionPool map[Difficulty][]Question

// NewQuestionPool groups questions by difficulty, keeping input order within a band.
func NewQuestionPool(questions []Question) QuestionPool {
	pool := make(QuestionPool, len(Difficulties))
	for _, q := range questions {
		pool[q.Difficulty] = append(pool[q.Difficulty], q)
	}
	return pool
}

// All flattens the pool from easy to hard.
func (p QuestionPool) All() []Question {
	out := make([]Question, 0)
	for _, d := range Difficulties {
		out = append(out, p[d]...)
	}
	return out
}

// Size counts questions across all bands.
func (p QuestionPool) Size() int {
	n := 0
	for _, qs := range p {
		n += len(qs)
	}
	return n
}

// Score is the aggregate of a session; AverageTime and TotalTime are only set once finished.
type Score struct {
	TotalDistance  int     `json:"totalDistance"`
	CorrectAnswers int     `json:"correctAnswers"`
	WrongAnswers   int     `json:"wrongAnswers"`
	AverageTime    float64 `json:"averageTime"`
	StreakBonus    float64 `json:"streakBonus"`
	TotalTime      float64 `json:"totalTime"`
}

// Competitor is a synthetic racer advancing alongside the player.
type Competitor struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Distance float64 `json:"distance"`
}

// Result is the leaderboard record written once per finished session.
type Result struct {
	ID               string    `json:"id"`
	PlayerName       string    `json:"playerName"`
	Score            int       `json:"score"`
	CorrectAnswers   int       `json:"correctAnswers"`
	TotalTimeSeconds float64   `json:"totalTimeSeconds"`
	AccuracyPercent  int       `json:"accuracyPercent"`
	Tier             Tier      `json:"tier"`
	CreatedAt        time.Time `json:"createdAt"`
}

// AnswerOutcome describes one resolved question.
type AnswerOutcome struct {
	QuestionIndex  int          `json:"questionIndex"`
	SelectedIndex  int          `json:"selectedIndex"`
	CorrectIndex   int          `json:"correctIndex"`
	Result         AnswerResult `json:"result"`
	TimedOut       bool         `json:"timedOut"`
	AnswerTime     int          `json:"answerTime"`
	DistanceGained int          `json:"distanceGained"`
	Distance       int          `json:"distance"`
	Streak         int          `json:"streak"`
	Position       int          `json:"position"`
}

// Summary is the finished-session view.
type Summary struct {
	PlayerName      string       `json:"playerName"`
	Tier            Tier         `json:"tier"`
	Score           Score        `json:"score"`
	Position        int          `json:"position"`
	AccuracyPercent int          `json:"accuracyPercent"`
	Competitors     []Competitor `json:"competitors"`
}

// Snapshot captures the observable state of a session.
type Snapshot struct {
	SessionID       string        `json:"sessionId"`
	Phase           Phase         `json:"phase"`
	Tier            Tier          `json:"tier,omitempty"`
	PlayerName      string        `json:"playerName,omitempty"`
	CurrentIndex    int           `json:"currentIndex"`
	TotalQuestions  int           `json:"totalQuestions"`
	TimeLeft        int           `json:"timeLeft"`
	PerQuestionTime int           `json:"perQuestionTime"`
	IsAnswering     bool          `json:"isAnswering"`
	Distance        int           `json:"distance"`
	MaxDistance     int           `json:"maxDistance"`
	Streak          int           `json:"streak"`
	LastResult      AnswerResult  `json:"lastResult"`
	Question        *QuestionView `json:"question,omitempty"`
	Score           Score         `json:"score"`
	AnswerTimes     []int         `json:"answerTimes"`
	Competitors     []Competitor  `json:"competitors"`
	Position        int           `json:"position"`
	Summary         *Summary      `json:"summary,omitempty"`
}

// EventType names a session notification.
type EventType string

const (
	EventPhase    EventType = "phase"
	EventQuestion EventType = "question"
	EventTick     EventType = "tick"
	EventAnswer   EventType = "answer"
	EventFinished EventType = "finished"
)

// Event is emitted on every observable session transition.
type Event struct {
	Type      EventType      `json:"type"`
	SessionID string         `json:"sessionId"`
	Phase     Phase          `json:"phase"`
	Index     int            `json:"index"`
	TimeLeft  int            `json:"timeLeft"`
	Question  *QuestionView  `json:"question,omitempty"`
	Answer    *AnswerOutcome `json:"answer,omitempty"`
	Summary   *Summary       `json:"summary,omitempty"`
}
