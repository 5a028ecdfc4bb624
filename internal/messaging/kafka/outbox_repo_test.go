package kafka_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/shared/contextutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	ctx := contextutil.WithRequestID(context.Background(), "req-42")

	event, err := kafka.NewEvent(ctx, "employee", "emp-1", "employee.created", "topic.v1", map[string]string{"id": "emp-1"})

	require.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, "req-42", event.RequestID)
	assert.Equal(t, kafka.OutboxStatusPending, event.Status)
	assert.JSONEq(t, `{"id":"emp-1"}`, string(event.Payload))
}

func TestValidateOutboxEvent(t *testing.T) {
	base := kafka.OutboxEvent{ID: "1", Topic: "t", Payload: []byte(`{}`), Status: kafka.OutboxStatusPending}
	assert.NoError(t, kafka.ValidateOutboxEvent(base))

	missingTopic := base
	missingTopic.Topic = ""
	assert.Error(t, kafka.ValidateOutboxEvent(missingTopic))

	badStatus := base
	badStatus.Status = "weird"
	assert.Error(t, kafka.ValidateOutboxEvent(badStatus))
}

func TestOutboxRepository_CreateInsideTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	event := kafka.OutboxEvent{
		ID: "11111111-1111-1111-1111-111111111111", AggregateType: "payroll_batch", AggregateID: "b1",
		EventType: "payroll.bulk.requested", Topic: "topic.v1", Payload: []byte(`{}`), Status: kafka.OutboxStatusPending,
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO outbox_events")).
		WithArgs(event.ID, "", event.AggregateType, event.AggregateID, event.EventType, event.Topic, event.Payload, event.Status).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)
	repo := kafka.NewOutboxRepository(db).WithTx(tx)
	require.NoError(t, repo.Create(context.Background(), event))
	require.NoError(t, tx.Commit())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_ListPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "request_id", "aggregate_type", "aggregate_id", "event_type", "topic", "payload", "status", "retry_count", "next_retry_at",
	}).AddRow("1", "req", "employee", "emp-1", "employee.created", "topic.v1", []byte(`{}`), "pending", 0, now)

	mock.ExpectQuery(regexp.QuoteMeta("FROM outbox_events")).
		WithArgs(kafka.OutboxStatusPending, kafka.OutboxStatusFailed, 10, kafka.MaxRetries, float64(120)).
		WillReturnRows(rows)

	events, err := kafka.NewOutboxRepository(db).ListPending(context.Background(), 10)

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "req", events[0].RequestID)
	assert.Equal(t, "emp-1", events[0].AggregateID)
}
