package consumer

import (
	"context"

	"go-hrms/internal/events"
	"go-hrms/internal/notification"

	"go.uber.org/zap"
)

func ConsumeNotificationEmail(
	ctx context.Context,
	reader MessageReader,
	mailer notification.Mailer,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.notification_email")

	consume(ctx, reader, log, func(ctx context.Context, event events.NotificationEmailEvent) error {
		if event.To == "" {
			return nil
		}
		if err := mailer.Send(ctx, event.To, event.Name, event.Subject, event.Body); err != nil {
			return err
		}

		log.Info("notification email sent", zap.String("notification_id", event.NotificationID))
		return nil
	})
}
