// Package events publishes interaction events to other services.
package events

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/chamodKanishka/Cooking-Skill-Management-System/internal/models"
	kgo "github.com/segmentio/kafka-go"
)

// Publisher sends interaction events. Callers treat failures as non-fatal.
type Publisher interface {
	PublishInteraction(ctx context.Context, evt models.InteractionEvent) error
	Close() error
}

// messageWriter is the subset of *kafka.Writer used here
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kgo.Message) error
	Close() error
}

// KafkaPublisher writes JSON events keyed by post owner, so one owner's events stay ordered
type KafkaPublisher struct {
	w messageWriter
}

// NewKafkaPublisher creates a Kafka writer for the given comma separated brokers
func NewKafkaPublisher(brokers, topic string) *KafkaPublisher {
	var addrs []string
	for _, b := range strings.Split(brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			addrs = append(addrs, b)
		}
	}
	w := &kgo.Writer{
		Addr:         kgo.TCP(addrs...),
		Topic:        topic,
		Balancer:     &kgo.Hash{},
		RequiredAcks: kgo.RequireOne,
		BatchTimeout: 50 * time.Millisecond,
	}
	return &KafkaPublisher{w: w}
}

func (p *KafkaPublisher) PublishInteraction(ctx context.Context, evt models.InteractionEvent) error {
	b, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	return p.w.WriteMessages(ctx, kgo.Message{
		Key:   []byte(evt.PostOwnerID),
		Value: b,
		Time:  evt.OccurredAt,
	})
}

func (p *KafkaPublisher) Close() error { return p.w.Close() }

// NoopPublisher drops every event
type NoopPublisher struct{}

func (NoopPublisher) PublishInteraction(context.Context, models.InteractionEvent) error { return nil }

func (NoopPublisher) Close() error { return nil }
