package service

import (
	"context"
)

// FanoutEvent asks the fanout worker to notify a set of recipients.
type FanoutEvent struct {
	RequestID    string   `json:"request_id,omitempty"` // For distributed tracing
	Kind         string   `json:"kind"`
	EventID      string   `json:"event_id"`
	Subject      string   `json:"subject"`
	Body         string   `json:"body"`
	RecipientIDs []string `json:"recipient_ids"`
}

// EventPublisher defines the interface for publishing fanout events for asynchronous delivery
type EventPublisher interface {
	// PublishFanoutEvent hands the event to the delivery backend
	PublishFanoutEvent(ctx context.Context, event *FanoutEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
