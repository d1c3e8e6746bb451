// Package events publishes domain events about recorded progress.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TypeProgressRecorded is the type of the event emitted after progress is recorded.
const TypeProgressRecorded = "progress.recorded"

// ProgressRecorded describes one successful progress submission.
type ProgressRecorded struct {
	EventID       string    `json:"eventId"`
	Type          string    `json:"type"`
	OccurredAt    time.Time `json:"occurredAt"`
	ProgressLogID string    `json:"progressLogId"`
	UserID        string    `json:"userId"`
	ChallengeID   string    `json:"challengeId"`
	Date          string    `json:"date"`
	Value         float64   `json:"value"`
	TotalValue    float64   `json:"totalValue"`
}

// NewProgressRecorded builds an event with a fresh id. Value is the submitted
// amount and total the value stored for the day after the increment.
func NewProgressRecorded(
	logID, userID, challengeID string,
	day time.Time,
	value, total float64,
	at time.Time,
) ProgressRecorded {
	return ProgressRecorded{
		EventID:       uuid.NewString(),
		Type:          TypeProgressRecorded,
		OccurredAt:    at.UTC(),
		ProgressLogID: logID,
		UserID:        userID,
		ChallengeID:   challengeID,
		Date:          day.Format(time.DateOnly),
		Value:         value,
		TotalValue:    total,
	}
}

// Publisher delivers events to subscribers outside the service.
type Publisher interface {
	// PublishProgressRecorded delivers a progress.recorded event.
	PublishProgressRecorded(ctx context.Context, event ProgressRecorded) error

	// Close flushes pending events and releases resources.
	Close() error
}

type noopPublisher struct{}

// NewNoop returns a Publisher that drops every event.
func NewNoop() Publisher {
	return noopPublisher{}
}

func (noopPublisher) PublishProgressRecorded(context.Context, ProgressRecorded) error {
	return nil
}

func (noopPublisher) Close() error {
	return nil
}
