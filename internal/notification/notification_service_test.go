package notification_test

import (
	"context"
	"testing"
	"time"

	"go-hrms/internal/events"
	"go-hrms/internal/messaging/kafka"
	kafkamock "go-hrms/internal/messaging/kafka/mock"
	"go-hrms/internal/notification"
	notificationerrors "go-hrms/internal/notification/errors"
	"go-hrms/internal/notification/mock"
	"go-hrms/internal/realtime"
	realtimemock "go-hrms/internal/realtime/mock"
	"go-hrms/internal/user"
	usermock "go-hrms/internal/user/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type fixture struct {
	svc         notification.Service
	sql         sqlmock.Sqlmock
	repo        *mock.MockRepository
	outbox      *kafkamock.MockOutboxRepository
	users       *usermock.MockRepository
	recipients  *mock.MockRecipientResolver
	broadcaster *realtimemock.MockBroadcaster
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	db, sm, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	f := fixture{
		sql:         sm,
		repo:        mock.NewMockRepository(ctrl),
		outbox:      kafkamock.NewMockOutboxRepository(ctrl),
		users:       usermock.NewMockRepository(ctrl),
		recipients:  mock.NewMockRecipientResolver(ctrl),
		broadcaster: realtimemock.NewMockBroadcaster(ctrl),
	}
	f.svc = notification.NewService(db, f.repo, f.outbox, f.users, f.recipients, f.broadcaster)
	return f
}

func TestService_NotifyUsers(t *testing.T) {
	ctx := context.Background()

	t.Run("stores, queues mail and pushes to active users", func(t *testing.T) {
		f := newFixture(t)
		active := user.User{ID: uuid.New(), Name: "Nok", Email: "nok@example.com", IsActive: true}
		inactive := user.User{ID: uuid.New(), Name: "Old", Email: "old@example.com", IsActive: false}

		f.users.EXPECT().
			FindByIDs(ctx, []string{active.ID.String(), inactive.ID.String()}).
			Return([]user.User{active, inactive}, nil)

		f.sql.ExpectBegin()
		f.repo.EXPECT().WithTx(gomock.Any()).Return(f.repo)
		f.repo.EXPECT().
			CreateBatch(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, items []notification.Notification) error {
				require.Len(t, items, 1)
				assert.Equal(t, active.ID, items[0].UserID)
				assert.JSONEq(t, `{"employee_id":"e-1"}`, string(items[0].Data))
				return nil
			})
		f.outbox.EXPECT().WithTx(gomock.Any()).Return(f.outbox)
		f.outbox.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, e kafka.OutboxEvent) error {
				assert.Equal(t, events.NotificationEmailTopic, e.Topic)
				assert.Contains(t, string(e.Payload), "nok@example.com")
				return nil
			})
		f.sql.ExpectCommit()
		f.broadcaster.EXPECT().
			Broadcast(ctx, realtime.UserChannel(active.ID.String()), realtime.EventNotification, gomock.Any()).
			Return(nil)

		err := f.svc.NotifyUsers(ctx, []string{active.ID.String(), inactive.ID.String(), active.ID.String()}, notification.Input{
			Type:    notification.TypeProbationCompleted,
			Title:   "Probation completed",
			Message: "Somchai passed probation",
			Data:    map[string]string{"employee_id": "e-1"},
			Email:   true,
		})

		assert.NoError(t, err)
		assert.NoError(t, f.sql.ExpectationsWereMet())
	})

	t.Run("no recipients is a no-op", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().FindByIDs(ctx, []string{}).Return(nil, nil)

		err := f.svc.NotifyUsers(ctx, nil, notification.Input{Type: notification.TypeLeaveRequested})
		assert.NoError(t, err)
	})
}

func TestService_NotifyRoles(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	u := user.User{ID: uuid.New(), Email: "hr@example.com", IsActive: true}

	f.recipients.EXPECT().UserIDsWithRoles(ctx, "hr-manager").Return([]string{u.ID.String()}, nil)
	f.users.EXPECT().FindByIDs(ctx, []string{u.ID.String()}).Return([]user.User{u}, nil)
	f.sql.ExpectBegin()
	f.repo.EXPECT().WithTx(gomock.Any()).Return(f.repo)
	f.repo.EXPECT().CreateBatch(ctx, gomock.Len(1)).Return(nil)
	f.sql.ExpectCommit()
	f.broadcaster.EXPECT().Broadcast(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	err := f.svc.NotifyRoles(ctx, []string{"hr-manager"}, notification.Input{Type: notification.TypeLeaveRequested, Title: "Leave"})
	assert.NoError(t, err)
	assert.NoError(t, f.sql.ExpectationsWereMet())
}

func TestService_MarkRead(t *testing.T) {
	ctx := context.Background()
	userID := uuid.NewString()
	id := uuid.NewString()

	t.Run("invalid id", func(t *testing.T) {
		f := newFixture(t)
		err := f.svc.MarkRead(ctx, userID, "nope")
		assert.ErrorIs(t, err, notificationerrors.ErrInvalidNotificationID)
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().FindByID(ctx, userID, id).Return(nil, gorm.ErrRecordNotFound)

		err := f.svc.MarkRead(ctx, userID, id)
		assert.ErrorIs(t, err, notificationerrors.ErrNotificationNotFound)
	})

	t.Run("already read is idempotent", func(t *testing.T) {
		f := newFixture(t)
		readAt := time.Now()
		f.repo.EXPECT().FindByID(ctx, userID, id).Return(&notification.Notification{ReadAt: &readAt}, nil)

		assert.NoError(t, f.svc.MarkRead(ctx, userID, id))
	})

	t.Run("marks unread", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().FindByID(ctx, userID, id).Return(&notification.Notification{}, nil)
		f.repo.EXPECT().MarkRead(ctx, userID, id, gomock.Any()).Return(int64(1), nil)

		assert.NoError(t, f.svc.MarkRead(ctx, userID, id))
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	id := uuid.NewString()

	f.repo.EXPECT().Delete(ctx, "u-1", id).Return(int64(0), nil)

	err := f.svc.Delete(ctx, "u-1", id)
	assert.ErrorIs(t, err, notificationerrors.ErrNotificationNotFound)
}
