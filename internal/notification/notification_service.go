package notification

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go-hrms/internal/events"
	"go-hrms/internal/messaging/kafka"
	notificationerrors "go-hrms/internal/notification/errors"
	"go-hrms/internal/realtime"
	"go-hrms/internal/shared/contextutil"
	"go-hrms/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=notification_service.go -destination=mock/notification_service_mock.go -package=mock
type Service interface {
	NotifyUsers(ctx context.Context, userIDs []string, in Input) error
	NotifyRoles(ctx context.Context, roles []string, in Input) error
	List(ctx context.Context, userID string, req ListNotificationsRequest) ([]NotificationResponse, int64, error)
	UnreadCount(ctx context.Context, userID string) (int64, error)
	MarkRead(ctx context.Context, userID, id string) error
	MarkAllRead(ctx context.Context, userID string) (int64, error)
	Delete(ctx context.Context, userID, id string) error
}

// RecipientResolver is satisfied by rbac.Service.
type RecipientResolver interface {
	UserIDsWithRoles(ctx context.Context, roleNames ...string) ([]string, error)
}

type service struct {
	db          *sql.DB
	repo        Repository
	outbox      kafka.OutboxRepository
	users       user.Repository
	recipients  RecipientResolver
	broadcaster realtime.Broadcaster
	logger      *zap.Logger
	now         func() time.Time
}

func NewService(
	db *sql.DB,
	repo Repository,
	outbox kafka.OutboxRepository,
	users user.Repository,
	recipients RecipientResolver,
	broadcaster realtime.Broadcaster,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("notification.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.service")
	}
	return &service{
		db:          db,
		repo:        repo,
		outbox:      outbox,
		users:       users,
		recipients:  recipients,
		broadcaster: broadcaster,
		logger:      l,
		now:         time.Now,
	}
}

func (s *service) NotifyRoles(ctx context.Context, roles []string, in Input) error {
	ids, err := s.recipients.UserIDsWithRoles(ctx, roles...)
	if err != nil {
		return err
	}
	return s.NotifyUsers(ctx, ids, in)
}

func (s *service) NotifyUsers(ctx context.Context, userIDs []string, in Input) error {
	l := contextutil.GetLogger(ctx, s.logger)

	recipients, err := s.users.FindByIDs(ctx, dedupe(userIDs))
	if err != nil {
		return err
	}
	if len(recipients) == 0 {
		return nil
	}

	var data json.RawMessage
	if in.Data != nil {
		data, err = json.Marshal(in.Data)
		if err != nil {
			return fmt.Errorf("marshal notification data: %w", err)
		}
	}

	now := s.now()
	items := make([]Notification, 0, len(recipients))
	for _, u := range recipients {
		if !u.IsActive {
			continue
		}
		items = append(items, Notification{
			ID:        uuid.New(),
			UserID:    u.ID,
			Type:      in.Type,
			Title:     in.Title,
			Message:   in.Message,
			Data:      data,
			CreatedAt: now,
		})
	}
	if len(items) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).CreateBatch(ctx, items); err != nil {
		l.Error("failed to store notifications", zap.String("type", in.Type), zap.Error(err))
		return err
	}

	if in.Email {
		emails := make(map[uuid.UUID]user.User, len(recipients))
		for _, u := range recipients {
			emails[u.ID] = u
		}
		outbox := s.outbox.WithTx(tx)
		for _, n := range items {
			u := emails[n.UserID]
			if u.Email == "" {
				continue
			}
			event, err := kafka.NewEvent(ctx, "notification", n.ID.String(), "notification.email", events.NotificationEmailTopic,
				events.NotificationEmailEvent{
					EventType:      "notification.email",
					NotificationID: n.ID.String(),
					To:             u.Email,
					Name:           u.Name,
					Subject:        n.Title,
					Body:           n.Message,
					OccurredAt:     now,
				})
			if err != nil {
				return err
			}
			if err := outbox.Create(ctx, event); err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	// Delivery over the socket is best effort; the row is the source of truth.
	for _, n := range items {
		if err := s.broadcaster.Broadcast(ctx, realtime.UserChannel(n.UserID.String()), realtime.EventNotification, mapToResponse(n)); err != nil {
			l.Warn("failed to push notification", zap.String("user_id", n.UserID.String()), zap.Error(err))
		}
	}

	l.Info("notifications sent", zap.String("type", in.Type), zap.Int("recipients", len(items)))
	return nil
}

func (s *service) List(ctx context.Context, userID string, req ListNotificationsRequest) ([]NotificationResponse, int64, error) {
	req.Params = req.Params.Normalize()

	items, total, err := s.repo.FindByUser(ctx, userID, req)
	if err != nil {
		return nil, 0, err
	}

	resp := make([]NotificationResponse, 0, len(items))
	for _, n := range items {
		resp = append(resp, mapToResponse(n))
	}
	return resp, total, nil
}

func (s *service) UnreadCount(ctx context.Context, userID string) (int64, error) {
	return s.repo.CountUnread(ctx, userID)
}

func (s *service) MarkRead(ctx context.Context, userID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return notificationerrors.ErrInvalidNotificationID
	}

	n, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notificationerrors.ErrNotificationNotFound
		}
		return err
	}
	if n.ReadAt != nil {
		return nil
	}

	_, err = s.repo.MarkRead(ctx, userID, id, s.now())
	return err
}

func (s *service) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	return s.repo.MarkAllRead(ctx, userID, s.now())
}

func (s *service) Delete(ctx context.Context, userID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return notificationerrors.ErrInvalidNotificationID
	}

	affected, err := s.repo.Delete(ctx, userID, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return notificationerrors.ErrNotificationNotFound
	}
	return nil
}

func mapToResponse(n Notification) NotificationResponse {
	resp := NotificationResponse{
		ID:        n.ID.String(),
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		Data:      n.Data,
		CreatedAt: n.CreatedAt.Format(time.RFC3339),
	}
	if n.ReadAt != nil {
		v := n.ReadAt.Format(time.RFC3339)
		resp.ReadAt = &v
	}
	return resp
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok || id == "" {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
