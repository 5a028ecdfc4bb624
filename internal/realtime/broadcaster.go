package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "hrms:broadcast:"

const (
	ChannelEmployeeAction = "employee-action"

	EventEmployeeAction   = "employee.action"
	EventNotification     = "notification.created"
	EventPayrollProgress  = "payroll.bulk.progress"
	EventPayrollCompleted = "payroll.bulk.completed"
	EventImportProgress   = "import.progress"
	EventImportCompleted  = "import.completed"
)

const (
	payrollBulkPrefix = "payroll-bulk."
	userPrefix        = "private-user."
	importPrefix      = "private-import."
)

func PayrollBulkChannel(batchID string) string { return payrollBulkPrefix + batchID }

func UserChannel(userID string) string { return userPrefix + userID }

func ImportChannel(userID string) string { return importPrefix + userID }

// Message is the frame delivered to websocket subscribers.
type Message struct {
	Channel string `json:"channel"`
	Event   string `json:"event"`
	Data    any    `json:"data"`
}

//go:generate mockgen -source=broadcaster.go -destination=mock/broadcaster_mock.go -package=mock
type Broadcaster interface {
	Broadcast(ctx context.Context, channel, event string, data any) error
}

type redisBroadcaster struct {
	rdb    *redis.Client
	logger *zap.Logger
}

// NewBroadcaster publishes through Redis so every API replica's hub sees the
// message regardless of which process produced it.
func NewBroadcaster(rdb *redis.Client, logger ...*zap.Logger) Broadcaster {
	l := zap.L().Named("realtime.broadcaster")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("realtime.broadcaster")
	}
	return &redisBroadcaster{rdb: rdb, logger: l}
}

func (b *redisBroadcaster) Broadcast(ctx context.Context, channel, event string, data any) error {
	payload, err := json.Marshal(Message{Channel: channel, Event: event, Data: data})
	if err != nil {
		return fmt.Errorf("marshal broadcast: %w", err)
	}

	if err := b.rdb.Publish(ctx, keyPrefix+channel, payload).Err(); err != nil {
		b.logger.Warn("broadcast failed",
			zap.String("channel", channel),
			zap.String("event", event),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// CanSubscribe decides whether userID may listen on channel.
func CanSubscribe(userID, channel string) bool {
	switch {
	case channel == ChannelEmployeeAction:
		return true
	case strings.HasPrefix(channel, payrollBulkPrefix):
		return len(channel) > len(payrollBulkPrefix)
	case strings.HasPrefix(channel, userPrefix):
		return userID != "" && channel == UserChannel(userID)
	case strings.HasPrefix(channel, importPrefix):
		return userID != "" && channel == ImportChannel(userID)
	default:
		return false
	}
}
