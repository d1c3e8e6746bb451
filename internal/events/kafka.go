package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/festy23/challenge_tracker/internal/config"
	"github.com/festy23/challenge_tracker/pkg/retry"
)

// messageWriter is the subset of *kafka.Writer used by KafkaPublisher.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes events as JSON to a Kafka topic, keyed by challenge
// id so that events of one challenge stay ordered.
type KafkaPublisher struct {
	writer       messageWriter
	writeTimeout time.Duration
	retry        retry.Config
	logger       *zap.SugaredLogger
}

// NewKafkaPublisher creates a publisher for cfg.Topic on cfg.Brokers.
func NewKafkaPublisher(cfg config.EventsConfig, logger *zap.SugaredLogger) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		BatchSize:    10,
		BatchTimeout: 10 * time.Millisecond,
		WriteTimeout: cfg.WriteTimeout,
		// Retries are driven by retry.Config so they get logged.
		MaxAttempts:            1,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: cfg.AutoCreateTopic,
	}

	return newKafkaPublisher(writer, cfg.WriteTimeout, retry.KafkaConfig(), logger)
}

func newKafkaPublisher(
	writer messageWriter,
	writeTimeout time.Duration,
	retryCfg retry.Config,
	logger *zap.SugaredLogger,
) *KafkaPublisher {
	p := &KafkaPublisher{
		writer:       writer,
		writeTimeout: writeTimeout,
		retry:        retryCfg,
		logger:       logger.Named("events"),
	}
	p.retry.Notify = func(attempt int, err error, next time.Duration) {
		p.logger.Warnw("Event publish attempt failed",
			"attempt", attempt,
			"max_attempts", p.retry.MaxAttempts,
			"retry_in", next,
			"error", err,
		)
	}
	return p
}

// PublishProgressRecorded writes event to the topic.
func (p *KafkaPublisher) PublishProgressRecorded(ctx context.Context, event ProgressRecorded) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", event.Type, err)
	}

	msg := kafka.Message{
		Key:   []byte(event.ChallengeID),
		Value: data,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(event.Type)},
			{Key: "event-id", Value: []byte(event.EventID)},
		},
	}

	if p.writeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.writeTimeout)
		defer cancel()
	}

	err = retry.Do(ctx, p.retry, func() error {
		return p.writer.WriteMessages(ctx, msg)
	})
	if err != nil {
		return fmt.Errorf("publish %s event: %w", event.Type, err)
	}

	p.logger.Debugw("Event published", "event_id", event.EventID, "type", event.Type, "challenge_id", event.ChallengeID)
	return nil
}

// Close flushes pending messages and closes the writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// New returns a Kafka publisher when brokers are configured and a no-op
// publisher otherwise.
func New(cfg config.EventsConfig, logger *zap.SugaredLogger) Publisher {
	if !cfg.Enabled() {
		logger.Infow("Event publishing disabled")
		return NewNoop()
	}
	logger.Infow("Event publishing enabled", "brokers", cfg.Brokers, "topic", cfg.Topic)
	return NewKafkaPublisher(cfg, logger)
}
