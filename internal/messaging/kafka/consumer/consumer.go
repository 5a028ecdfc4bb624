package consumer

import (
	"context"
	"encoding/json"
	"time"

	"go-hrms/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumers use.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

const maxAttempts = 3

var retryBackoff = time.Second

// consume runs the fetch/handle/commit loop until ctx is cancelled. Offsets
// are committed only after handle succeeds, or after the message is given up
// on: undecodable payloads immediately, handler failures after maxAttempts.
func consume[T any](
	ctx context.Context,
	reader MessageReader,
	log *zap.Logger,
	handle func(ctx context.Context, event T) error,
) {
	log.Info("consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("consumer stopped")
				return
			}
			log.Error("fetch message failed", zap.Error(err))
			continue
		}

		var event T
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode message failed, skipping",
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
			commit(ctx, reader, log, msg)
			continue
		}

		msgCtx := messageContext(ctx, msg, log)
		if err := handleWithRetry(msgCtx, event, handle); err != nil {
			if ctx.Err() != nil {
				log.Info("consumer stopped")
				return
			}
			log.Error("handle message failed, giving up",
				zap.Int64("offset", msg.Offset),
				zap.Int("attempts", maxAttempts),
				zap.Error(err),
			)
		}

		commit(ctx, reader, log, msg)
	}
}

// messageContext carries the request id the outbox row was written under, so
// handler logs line up with the HTTP request that queued the work.
func messageContext(ctx context.Context, msg kafkago.Message, log *zap.Logger) context.Context {
	var rid string
	for _, h := range msg.Headers {
		if h.Key == "request_id" {
			rid = string(h.Value)
			break
		}
	}
	if rid == "" {
		return contextutil.WithLogger(ctx, log)
	}
	ctx = contextutil.WithRequestID(ctx, rid)
	return contextutil.WithLogger(ctx, log.With(zap.String("request_id", rid)))
}

func handleWithRetry[T any](ctx context.Context, event T, handle func(ctx context.Context, event T) error) error {
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err = handle(ctx, event); err == nil {
			return nil
		}
		if attempt == maxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * retryBackoff):
		}
	}
	return err
}

func commit(ctx context.Context, reader MessageReader, log *zap.Logger, msg kafkago.Message) {
	if err := reader.CommitMessages(ctx, msg); err != nil {
		log.Error("commit message failed", zap.Int64("offset", msg.Offset), zap.Error(err))
	}
}
