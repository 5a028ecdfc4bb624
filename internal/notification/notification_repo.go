package notification

import (
	"context"
	"database/sql"
	"time"

	"go-hrms/internal/shared/dbtx"
	"go-hrms/internal/shared/query"

	"gorm.io/gorm"
)

//go:generate mockgen -source=notification_repo.go -destination=mock/notification_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	CreateBatch(ctx context.Context, items []Notification) error
	FindByID(ctx context.Context, userID, id string) (*Notification, error)
	FindByUser(ctx context.Context, userID string, req ListNotificationsRequest) ([]Notification, int64, error)
	CountUnread(ctx context.Context, userID string) (int64, error)
	MarkRead(ctx context.Context, userID, id string, at time.Time) (int64, error)
	MarkAllRead(ctx context.Context, userID string, at time.Time) (int64, error)
	Delete(ctx context.Context, userID, id string) (int64, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) CreateBatch(ctx context.Context, items []Notification) error {
	if len(items) == 0 {
		return nil
	}
	return dbtx.Conn(ctx, r.db, r.tx).CreateInBatches(items, 100).Error
}

func (r *repository) FindByID(ctx context.Context, userID, id string) (*Notification, error) {
	var n Notification
	err := dbtx.Conn(ctx, r.db, r.tx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&n).Error
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *repository) scoped(ctx context.Context, userID string, req ListNotificationsRequest) *gorm.DB {
	q := dbtx.Conn(ctx, r.db, r.tx).
		Model(&Notification{}).
		Where("user_id = ?", userID).
		Scopes(
			query.Eq("type", req.Type),
			query.Search(req.Search, "title", "message"),
		)
	if req.Unread {
		q = q.Where("read_at IS NULL")
	}
	return q
}

func (r *repository) FindByUser(ctx context.Context, userID string, req ListNotificationsRequest) ([]Notification, int64, error) {
	var (
		items []Notification
		total int64
	)
	if err := r.scoped(ctx, userID, req).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.scoped(ctx, userID, req).
		Order("created_at DESC").
		Scopes(query.Paginate(req.Params)).
		Find(&items).Error
	return items, total, err
}

func (r *repository) CountUnread(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := dbtx.Conn(ctx, r.db, r.tx).
		Model(&Notification{}).
		Where("user_id = ? AND read_at IS NULL", userID).
		Count(&count).Error
	return count, err
}

func (r *repository) MarkRead(ctx context.Context, userID, id string, at time.Time) (int64, error) {
	res := dbtx.Conn(ctx, r.db, r.tx).
		Model(&Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Where("read_at IS NULL").
		Update("read_at", at)
	return res.RowsAffected, res.Error
}

func (r *repository) MarkAllRead(ctx context.Context, userID string, at time.Time) (int64, error) {
	res := dbtx.Conn(ctx, r.db, r.tx).
		Model(&Notification{}).
		Where("user_id = ? AND read_at IS NULL", userID).
		Update("read_at", at)
	return res.RowsAffected, res.Error
}

func (r *repository) Delete(ctx context.Context, userID, id string) (int64, error) {
	res := dbtx.Conn(ctx, r.db, r.tx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&Notification{})
	return res.RowsAffected, res.Error
}
