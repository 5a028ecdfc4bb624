package user

import (
	"context"
	"time"

	"go-hrms/internal/shared/query"

	"gorm.io/gorm"
)

var userSortColumns = map[string]string{
	"name":          "name",
	"email":         "email",
	"created_at":    "created_at",
	"last_login_at": "last_login_at",
}

//go:generate mockgen -source=user_repo.go -destination=mock/user_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	FindByIDs(ctx context.Context, ids []string) ([]User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindAll(ctx context.Context, req ListUsersRequest) ([]User, int64, error)
	ExistsByEmployeeID(ctx context.Context, employeeID, excludeID string) (bool, error)
	Update(ctx context.Context, u *User) error
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	return &u, err
}

func (r *repository) FindByIDs(ctx context.Context, ids []string) ([]User, error) {
	var users []User
	if len(ids) == 0 {
		return users, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error
	return users, err
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).First(&u, "email = ?", email).Error
	return &u, err
}

func (r *repository) filtered(ctx context.Context, req ListUsersRequest) *gorm.DB {
	q := r.db.WithContext(ctx).
		Model(&User{}).
		Scopes(query.Search(req.Search, "name", "email"))
	if req.IsActive != nil {
		q = q.Where("is_active = ?", *req.IsActive)
	}
	return q
}

func (r *repository) FindAll(ctx context.Context, req ListUsersRequest) ([]User, int64, error) {
	var (
		users []User
		total int64
	)

	if err := r.filtered(ctx, req).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.filtered(ctx, req).
		Scopes(
			query.Sort(req.Params, userSortColumns, "created_at"),
			query.Paginate(req.Params),
		).
		Find(&users).Error
	return users, total, err
}

func (r *repository) ExistsByEmployeeID(ctx context.Context, employeeID, excludeID string) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&User{}).Where("employee_id = ?", employeeID)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *repository) Update(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *repository) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&User{}).
		Where("id = ?", id).
		UpdateColumn("last_login_at", at).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&User{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
