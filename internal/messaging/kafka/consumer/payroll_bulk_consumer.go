package consumer

import (
	"context"

	"go-hrms/internal/events"

	"go.uber.org/zap"
)

// BulkPayrollProcessor is satisfied by payroll.Service.
type BulkPayrollProcessor interface {
	ProcessBulkBatch(ctx context.Context, batchID string) error
}

func ConsumePayrollBulkRequested(
	ctx context.Context,
	reader MessageReader,
	processor BulkPayrollProcessor,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.payroll_bulk")

	consume(ctx, reader, log, func(ctx context.Context, event events.PayrollBulkRequestedEvent) error {
		if err := processor.ProcessBulkBatch(ctx, event.BatchID); err != nil {
			log.Warn("bulk payroll batch failed", zap.String("batch_id", event.BatchID), zap.Error(err))
			return err
		}

		log.Info("bulk payroll batch processed", zap.String("batch_id", event.BatchID))
		return nil
	})
}
