package consumer

import (
	"context"

	"go-hrms/internal/events"

	"go.uber.org/zap"
)

// ImportProcessor is satisfied by importexport.ImportService.
type ImportProcessor interface {
	ProcessImport(ctx context.Context, jobID string) error
}

func ConsumeEmployeeImportRequested(
	ctx context.Context,
	reader MessageReader,
	processor ImportProcessor,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.employee_import")

	consume(ctx, reader, log, func(ctx context.Context, event events.EmployeeImportRequestedEvent) error {
		if err := processor.ProcessImport(ctx, event.JobID); err != nil {
			log.Warn("employee import failed", zap.String("job_id", event.JobID), zap.Error(err))
			return err
		}

		log.Info("employee import processed", zap.String("job_id", event.JobID))
		return nil
	})
}
