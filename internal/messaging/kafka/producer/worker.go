package producer

import (
	"context"
	"time"

	"go-hrms/internal/messaging/kafka"

	"go.uber.org/zap"
)

const (
	batchSize           = 50
	defaultPollInterval = 3 * time.Second
)

// batchResult counts what one relay pass did with the rows it claimed.
type batchResult struct {
	claimed int
	sent    int
	failed  int
}

// ProcessOutboxEvents relays pending outbox rows to Kafka every pollInterval
// until ctx is cancelled. A full batch is followed straight away by the next
// one so a backlog drains without waiting for the ticker.
func ProcessOutboxEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	logger *zap.Logger,
	pollInterval time.Duration,
) {
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}

	log := logger.Named("outbox.relay")
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	log.Info("outbox relay started", zap.Duration("poll_interval", pollInterval))
	for {
		select {
		case <-ctx.Done():
			log.Info("outbox relay stopped")
			return
		case <-ticker.C:
			drain(ctx, repo, writer, log)
		}
	}
}

func drain(ctx context.Context, repo kafka.OutboxRepository, writer MessageWriter, log *zap.Logger) {
	for ctx.Err() == nil {
		res, err := relayBatch(ctx, repo, writer, log)
		if err != nil {
			log.Error("list pending outbox rows failed", zap.Error(err))
			return
		}
		if res.claimed > 0 {
			log.Info("outbox batch relayed",
				zap.Int("sent", res.sent),
				zap.Int("failed", res.failed),
			)
		}
		if res.claimed < batchSize {
			return
		}
	}
}

// relayBatch publishes one batch. A row that cannot be written is marked
// failed so the repository schedules its retry; the rest of the batch still
// goes out.
func relayBatch(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	log *zap.Logger,
) (batchResult, error) {
	rows, err := repo.ListPending(ctx, batchSize)
	if err != nil {
		return batchResult{}, err
	}

	res := batchResult{claimed: len(rows)}
	for _, row := range rows {
		fields := []zap.Field{
			zap.String("outbox_id", row.ID),
			zap.String("event_type", row.EventType),
			zap.String("topic", row.Topic),
		}

		if err := publishEvent(ctx, writer, row); err != nil {
			res.failed++
			log.Warn("publish outbox row failed", append(fields, zap.Error(err))...)
			if markErr := repo.MarkFailed(ctx, row.ID, err.Error()); markErr != nil {
				log.Error("record outbox failure failed", append(fields, zap.Error(markErr))...)
			}
			continue
		}

		// A failed MarkSent leaves the row pending, so it is sent again.
		if err := repo.MarkSent(ctx, row.ID); err != nil {
			log.Error("mark outbox row sent failed", append(fields, zap.Error(err))...)
		}
		res.sent++
		log.Debug("outbox row sent", fields...)
	}
	return res, nil
}
