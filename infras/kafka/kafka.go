package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"backoffice/config"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

type Event struct {
	Key   string
	Value any
}

func (e *Event) ToKafkaMessage() (kafkaGo.Message, error) {
	jsonValue, err := json.Marshal(e.Value)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal event value to JSON")

		return kafkaGo.Message{}, fmt.Errorf("failed to marshal event value to JSON: %w", err)
	}

	return kafkaGo.Message{
		Key:   []byte(e.Key),
		Value: jsonValue,
	}, nil
}

// Publisher emits domain lifecycle events to the configured topic.
type Publisher interface {
	Publish(ctx context.Context, events ...Event) error
}

type publisherImpl struct {
	writer *kafkaGo.Writer
}

type noopPublisher struct{}

func (n *noopPublisher) Publish(_ context.Context, _ ...Event) error {
	return nil
}

func New(config *config.Config) Publisher {
	if !config.External.Kafka.Enable {
		log.Info().Msg("Kafka publishing disabled, using no-op publisher")

		return &noopPublisher{}
	}

	writer := &kafkaGo.Writer{
		Addr:                   kafkaGo.TCP(config.External.Kafka.Brokers...),
		Topic:                  config.External.Kafka.Topic,
		AllowAutoTopicCreation: true,
		Async:                  true,
	}

	log.Info().Strs("brokers", config.External.Kafka.Brokers).Str("topic", config.External.Kafka.Topic).Msg("Kafka publisher initialized")

	return &publisherImpl{
		writer: writer,
	}
}

func (p *publisherImpl) Publish(ctx context.Context, events ...Event) error {
	msgs := make([]kafkaGo.Message, 0, len(events))

	for _, event := range events {
		msg, err := event.ToKafkaMessage()
		if err != nil {
			return err
		}

		msgs = append(msgs, msg)
	}

	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		log.Error().Err(err).Msg("Failed to publish events to Kafka.")

		return fmt.Errorf("failed to publish events to Kafka: %w", err)
	}

	return nil
}
