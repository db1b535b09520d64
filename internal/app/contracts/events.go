package contracts

import (
	"context"
	"meetslot-service/internal/pkg/dto/requests"
)

type MeetingEventPublisher interface {
	Publish(ctx context.Context, event *requests.MeetingEvent) error
}
