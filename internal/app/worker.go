package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-hrms/internal/bootstrap"
	"go-hrms/internal/config"
	"go-hrms/internal/events"
	"go-hrms/internal/messaging/kafka/producer"
	"go-hrms/internal/shared/connection"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// RunWorker relays the outbox to Kafka and runs the scheduled jobs until
// SIGINT/SIGTERM.
func RunWorker(cfg config.Config) error {
	logger := zap.L().Named("app.worker")

	p, err := connect(cfg)
	if err != nil {
		return err
	}
	defer p.Close()

	kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.KafkaBroker, connectRetries)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	if err := connection.EnsureKafkaTopics(cfg.KafkaBroker, events.Topics()...); err != nil {
		logger.Warn("ensure kafka topics", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m, err := buildModules(ctx, p, zap.L())
	if err != nil {
		return err
	}

	go producer.ProcessOutboxEvents(
		ctx,
		m.outbox,
		kafkaWriter,
		logger,
		cfg.OutboxPollInterval,
	)

	scheduler := cron.New(cron.WithLocation(time.UTC))
	_, err = scheduler.AddFunc(cfg.ProbationCron, func() {
		runProbationTransitions(ctx, m, logger)
	})
	if err != nil {
		return err
	}
	scheduler.Start()
	logger.Info("scheduler started", zap.String("probation_cron", cfg.ProbationCron))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("worker shutting down")
	cancel()
	<-scheduler.Stop().Done()

	return nil
}

func runProbationTransitions(ctx context.Context, m *modules, logger *zap.Logger) {
	start := time.Now()
	res, err := m.employments.ProcessProbationTransitions(ctx, start)
	if err != nil {
		logger.Error("probation transitions failed", zap.Error(err))
		return
	}

	logger.Info("probation transitions done",
		zap.Int("due", res.Due),
		zap.Int("passed", len(res.Passed)),
		zap.Int("failed", res.Failed),
		zap.Duration("took", time.Since(start)),
	)
	if len(res.Passed) > 0 {
		m.audit.Log(ctx, bootstrap.AuditLog{
			Action:  "PROBATION_TRANSITIONS",
			Message: "probation periods completed",
			Meta:    map[string]any{"employment_ids": res.Passed},
		})
	}
}
