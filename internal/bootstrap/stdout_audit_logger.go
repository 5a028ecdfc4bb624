package bootstrap

import (
	"context"
	"time"

	"go-hrms/internal/shared/contextutil"

	"go.uber.org/zap"
)

// StdoutAuditLogger writes audit entries through zap on the "audit" logger,
// so they land wherever the process logs go.
type StdoutAuditLogger struct {
	logger *zap.Logger
	now    func() time.Time
}

func NewStdoutAuditLogger(logger ...*zap.Logger) *StdoutAuditLogger {
	l := zap.L()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &StdoutAuditLogger{logger: l.Named("audit"), now: time.Now}
}

func (l *StdoutAuditLogger) Log(ctx context.Context, entry AuditLog) {
	actor := entry.ActorID
	if actor == "" {
		actor = contextutil.GetUserID(ctx)
	}
	l.logger.Info("audit event",
		zap.String("timestamp", l.now().UTC().Format(time.RFC3339)),
		zap.String("action", entry.Action),
		zap.String("actor_id", actor),
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("message", entry.Message),
		zap.Any("meta", entry.Meta),
	)
}
