package usecase

import (
	"context"

	"joinme/internal/domain/service"
)

// FanoutResult counts the outcome of one fanout.
type FanoutResult struct {
	Sent   int
	Failed int
}

// FanoutUsecase delivers a fanout event to each recipient in order.
type FanoutUsecase interface {
	Deliver(ctx context.Context, event *service.FanoutEvent) FanoutResult
}
