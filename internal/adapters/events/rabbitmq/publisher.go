// Package rabbitmq publishes ledger entry events to a durable RabbitMQ queue.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/SscSPs/personal_ledger_app/internal/core/ports/events"
	amqp "github.com/rabbitmq/amqp091-go"
)

// publishChannel is the part of *amqp.Channel the publisher needs.
type publishChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// EntryEventPublisher sends each event as a persistent JSON message through the default exchange,
// routed to Queue.
type EntryEventPublisher struct {
	conn  *amqp.Connection
	ch    publishChannel
	Queue string
}

var _ events.EntryEventPublisher = (*EntryEventPublisher)(nil)

// NewEntryEventPublisher dials url and declares queue as durable.
func NewEntryEventPublisher(url, queue string) (*EntryEventPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open rabbitmq channel: %w", err)
	}
	_, err = ch.QueueDeclare(
		queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare queue %s: %w", queue, err)
	}
	return &EntryEventPublisher{conn: conn, ch: ch, Queue: queue}, nil
}

// Close releases the channel and the connection.
func (p *EntryEventPublisher) Close() {
	if p == nil {
		return
	}
	if ch, ok := p.ch.(*amqp.Channel); ok && ch != nil {
		_ = ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}

func (p *EntryEventPublisher) PublishEntryEvent(ctx context.Context, event events.EntryEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode entry event: %w", err)
	}
	err = p.ch.PublishWithContext(ctx,
		"",      // default exchange
		p.Queue, // routing key = queue
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    event.EventID,
			Type:         string(event.Type),
			Timestamp:    event.OccurredAt,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish %s event: %w", event.Type, err)
	}
	return nil
}
