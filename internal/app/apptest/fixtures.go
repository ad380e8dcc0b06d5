package apptest

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"quiz-racer/internal/domain"
)

// Pool builds a pool with perBand questions in each difficulty. Every question's
// correct option is index 1.
func Pool(perBand int) domain.QuestionPool {
	questions := make([]domain.Question, 0, perBand*len(domain.Difficulties))
	for _, d := range domain.Difficulties {
		for i := 1; i <= perBand; i++ {
			questions = append(questions, domain.Question{
				ID:           fmt.Sprintf("%c%d", d[0], i),
				Text:         fmt.Sprintf("%s question %d", d, i),
				Options:      []string{"A", "B", "C", "D"},
				CorrectIndex: 1,
				Difficulty:   d,
				Category:     "General",
			})
		}
	}
	return domain.NewQuestionPool(questions)
}

// RecordingGateway keeps every submitted result and can be told to fail.
type RecordingGateway struct {
	mu      sync.Mutex
	Fail    bool
	results []domain.Result
}

var ErrGatewayDown = errors.New("gateway down")

func (g *RecordingGateway) SubmitResult(_ context.Context, result domain.Result) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.results = append(g.results, result)
	if g.Fail {
		return ErrGatewayDown
	}
	return nil
}

func (g *RecordingGateway) Results() []domain.Result {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]domain.Result(nil), g.results...)
}

// RecordingNotifier collects session events.
type RecordingNotifier struct {
	mu     sync.Mutex
	events []domain.Event
}

func (n *RecordingNotifier) Notify(ev domain.Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, ev)
}

func (n *RecordingNotifier) Events() []domain.Event {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]domain.Event(nil), n.events...)
}

// Count returns how many events of type t were seen.
func (n *RecordingNotifier) Count(t domain.EventType) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	c := 0
	for _, ev := range n.events {
		if ev.Type == t {
			c++
		}
	}
	return c
}
