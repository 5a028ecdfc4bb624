package consumer

import (
	"context"

	"go-hrms/internal/events"
	"go-hrms/internal/realtime"

	"go.uber.org/zap"
)

// ConsumeEmployeeLifecycle fans employee lifecycle events out to the
// employee-action websocket channel.
func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader MessageReader,
	broadcaster realtime.Broadcaster,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.employee_lifecycle")

	consume(ctx, reader, log, func(ctx context.Context, event events.EmployeeActionEvent) error {
		if err := broadcaster.Broadcast(ctx, realtime.ChannelEmployeeAction, realtime.EventEmployeeAction, event); err != nil {
			return err
		}

		log.Debug("employee action broadcast",
			zap.String("action", event.Action),
			zap.String("employee_id", event.EmployeeID),
		)
		return nil
	})
}
