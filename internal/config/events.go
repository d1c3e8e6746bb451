package config

import (
	"fmt"
	"time"
)

// EventsConfig holds progress event publishing configuration.
// Publishing is disabled when no brokers are configured.
type EventsConfig struct {
	// Brokers is the list of Kafka broker addresses.
	Brokers []string
	// Topic is the Kafka topic progress events are written to.
	Topic string
	// WriteTimeout bounds a single publish call.
	WriteTimeout time.Duration
	// AutoCreateTopic lets the broker create Topic on first write.
	AutoCreateTopic bool
}

// LoadEventsConfigFromEnv loads events configuration from environment variables.
func LoadEventsConfigFromEnv() EventsConfig {
	return EventsConfig{
		Brokers:      GetEnvSlice("EVENTS_KAFKA_BROKERS", nil),
		Topic:        GetEnv("EVENTS_KAFKA_TOPIC", "challenge-tracker.progress"),
		WriteTimeout: GetEnvDuration("EVENTS_WRITE_TIMEOUT", 5*time.Second),

		AutoCreateTopic: GetEnvBool("EVENTS_KAFKA_AUTO_CREATE_TOPIC", true),
	}
}

// Enabled reports whether events should be published.
func (c EventsConfig) Enabled() bool {
	return len(c.Brokers) > 0
}

// Validate validates events configuration.
func (c EventsConfig) Validate() error {
	if !c.Enabled() {
		return nil
	}
	if c.Topic == "" {
		return fmt.Errorf("EVENTS_KAFKA_TOPIC is required when brokers are set")
	}
	if c.WriteTimeout <= 0 {
		return fmt.Errorf("WriteTimeout must be greater than 0")
	}
	return nil
}
