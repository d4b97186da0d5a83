package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./kafka.go -destination=./mocks/kafka_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"

	"cruisevoyager/config"
	"cruisevoyager/shared/logger"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

// Producer publishes domain events to the booking topic.
type Producer interface {
	Publish(ctx context.Context, key string, value any) error
	Close() error
}

// New returns a Kafka-backed producer when brokers are configured and a
// no-op producer otherwise.
func New(cfg *config.Config) Producer {
	if !cfg.Kafka.Enable || len(cfg.Kafka.Brokers) == 0 {
		log.Info().Msg("Kafka disabled, booking events will not be published")

		return &noopProducer{}
	}

	writer := &kafkaGo.Writer{
		Addr:     kafkaGo.TCP(cfg.Kafka.Brokers...),
		Topic:    cfg.Kafka.Topic,
		Balancer: &kafkaGo.LeastBytes{},
	}

	log.Info().Strs("brokers", cfg.Kafka.Brokers).Str("topic", cfg.Kafka.Topic).Msg("Kafka producer initialized")

	return &kafkaProducer{writer: writer}
}

type kafkaProducer struct {
	writer *kafkaGo.Writer
}

func (p *kafkaProducer) Publish(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafkaGo.Message{
		Key:   []byte(key),
		Value: payload,
	})
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

func (p *kafkaProducer) Close() error {
	return p.writer.Close() //nolint:wrapcheck
}

type noopProducer struct {
}

func (p *noopProducer) Publish(_ context.Context, _ string, _ any) error {
	return nil
}

func (p *noopProducer) Close() error {
	return nil
}
