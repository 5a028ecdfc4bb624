package app

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"go-hrms/internal/config"
	"go-hrms/internal/events"
	"go-hrms/internal/messaging/kafka/consumer"
	"go-hrms/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const consumerGroup = "go-hrms"

// RunConsumer runs one reader per topic until SIGINT/SIGTERM.
func RunConsumer(cfg config.Config) error {
	logger := zap.L().Named("app.consumer")

	p, err := connect(cfg)
	if err != nil {
		return err
	}
	defer p.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m, err := buildModules(ctx, p, zap.L())
	if err != nil {
		return err
	}

	reader := func(topic string) *kafkago.Reader {
		return connection.NewKafkaReader(cfg.KafkaBroker, topic, consumerGroup+"-"+topic)
	}
	payrollReader := reader(events.PayrollBulkRequestedTopic)
	importReader := reader(events.EmployeeImportRequestedTopic)
	emailReader := reader(events.NotificationEmailTopic)
	lifecycleReader := reader(events.EmployeeLifecycleTopic)
	readers := []*kafkago.Reader{payrollReader, importReader, emailReader, lifecycleReader}
	defer func() {
		for _, r := range readers {
			if err := r.Close(); err != nil {
				logger.Warn("closing reader", zap.String("topic", r.Config().Topic), zap.Error(err))
			}
		}
	}()

	var wg sync.WaitGroup
	run := func(fn func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn()
		}()
	}
	run(func() { consumer.ConsumePayrollBulkRequested(ctx, payrollReader, m.payrolls, logger) })
	run(func() { consumer.ConsumeEmployeeImportRequested(ctx, importReader, m.imports, logger) })
	run(func() { consumer.ConsumeNotificationEmail(ctx, emailReader, m.mailer, logger) })
	run(func() { consumer.ConsumeEmployeeLifecycle(ctx, lifecycleReader, m.broadcaster, logger) })

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()
	wg.Wait()

	return nil
}
