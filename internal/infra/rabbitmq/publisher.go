// Package rabbitmq publishes finished race results as JSON messages so other
// services (analytics, notifications) can react to them.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"quiz-racer/internal/domain"
)

// Channel is the part of *amqp.Channel the publisher needs.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// ResultPublisher is an app.Gateway that emits one message per finished session.
type ResultPublisher struct {
	mu         sync.Mutex
	channel    Channel
	exchange   string
	routingKey string
	now        func() time.Time
	closers    []func() error
}

// NewResultPublisher publishes on an already opened channel.
func NewResultPublisher(channel Channel, exchange, routingKey string) *ResultPublisher {
	return &ResultPublisher{
		channel:    channel,
		exchange:   exchange,
		routingKey: routingKey,
		now:        time.Now,
	}
}

// Dial connects to url and declares the destination. With an empty exchange
// messages go through the default exchange to a durable queue named routingKey.
func Dial(url, exchange, routingKey string) (*ResultPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if exchange == "" {
		_, err = ch.QueueDeclare(
			routingKey,
			true,  // durable
			false, // delete when unused
			false, // exclusive
			false, // no-wait
			nil,   // arguments
		)
	} else {
		err = ch.ExchangeDeclare(
			exchange,
			amqp.ExchangeTopic,
			true,  // durable
			false, // auto-deleted
			false, // internal
			false, // no-wait
			nil,   // arguments
		)
	}
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare destination: %w", err)
	}

	p := NewResultPublisher(ch, exchange, routingKey)
	p.closers = []func() error{ch.Close, conn.Close}
	return p, nil
}

// resultMessage is the wire form of a finished session.
type resultMessage struct {
	Event  string        `json:"event"`
	Result domain.Result `json:"result"`
}

func (p *ResultPublisher) SubmitResult(ctx context.Context, result domain.Result) error {
	body, err := json.Marshal(resultMessage{Event: "race.finished", Result: result})
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	err = p.channel.PublishWithContext(
		ctx,
		p.exchange,
		p.routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    result.ID,
			Timestamp:    p.now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish result: %w", err)
	}
	return nil
}

func (p *ResultPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	var first error
	for _, c := range p.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	p.closers = nil
	return first
}
