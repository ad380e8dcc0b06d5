package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"quiz-racer/internal/domain"
)

type fakeChannel struct {
	exchange, key string
	published     []amqp.Publishing
	err           error
}

func (c *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	if c.err != nil {
		return c.err
	}
	c.exchange, c.key = exchange, key
	c.published = append(c.published, msg)
	return nil
}

func TestResultPublisherPublishesJSON(t *testing.T) {
	ch := &fakeChannel{}
	pub := NewResultPublisher(ch, "racer", "race.finished")
	stamp := time.Date(2025, 10, 17, 8, 0, 0, 0, time.UTC)
	pub.now = func() time.Time { return stamp }

	result := domain.Result{ID: "r-1", PlayerName: "Ada", Score: 812, CorrectAnswers: 25, AccuracyPercent: 83, Tier: domain.TierAdult, CreatedAt: stamp}
	if err := pub.SubmitResult(context.Background(), result); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if len(ch.published) != 1 || ch.exchange != "racer" || ch.key != "race.finished" {
		t.Fatalf("unexpected publish %+v to %s/%s", ch.published, ch.exchange, ch.key)
	}
	msg := ch.published[0]
	if msg.ContentType != "application/json" || msg.MessageId != "r-1" || msg.DeliveryMode != amqp.Persistent || !msg.Timestamp.Equal(stamp) {
		t.Fatalf("unexpected message headers %+v", msg)
	}

	var decoded resultMessage
	if err := json.Unmarshal(msg.Body, &decoded); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if decoded.Event != "race.finished" || decoded.Result.PlayerName != "Ada" || decoded.Result.Score != 812 {
		t.Fatalf("unexpected body %+v", decoded)
	}
}

func TestResultPublisherWrapsErrors(t *testing.T) {
	broken := errors.New("channel closed")
	pub := NewResultPublisher(&fakeChannel{err: broken}, "", "results")
	if err := pub.SubmitResult(context.Background(), domain.Result{}); !errors.Is(err, broken) {
		t.Fatalf("expected wrapped channel error, got %v", err)
	}
	if err := pub.Close(); err != nil {
		t.Fatalf("close without connection: %v", err)
	}
}
