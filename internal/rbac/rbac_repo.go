package rbac

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	GetUserRoles(ctx context.Context) ([]UserRoleRow, error)
	GetRolePermissions(ctx context.Context) ([]RolePermissionRow, error)
	RoleNamesForUser(ctx context.Context, userID string) ([]string, error)
	PermissionNamesForUser(ctx context.Context, userID string) ([]string, error)
	UserIDsByRoleNames(ctx context.Context, roleNames []string) ([]string, error)

	ListRoles(ctx context.Context) ([]Role, error)
	GetRoleByID(ctx context.Context, id string) (*Role, error)
	FindRolesByNames(ctx context.Context, names []string) ([]Role, error)
	CreateRole(ctx context.Context, role *Role) error
	UpdateRole(ctx context.Context, role *Role) error
	DeleteRole(ctx context.Context, id string) error

	ListPermissions(ctx context.Context) ([]Permission, error)
	FindPermissionsByNames(ctx context.Context, names []string) ([]Permission, error)
	GetPermissionNamesByRoleID(ctx context.Context, roleID string) ([]string, error)
	ReplaceRolePermissions(ctx context.Context, roleID uuid.UUID, permIDs []uuid.UUID) error
	ReplaceUserRoles(ctx context.Context, userID uuid.UUID, roleIDs []uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetUserRoles(ctx context.Context) ([]UserRoleRow, error) {
	var result []UserRoleRow
	err := r.db.WithContext(ctx).
		Table("user_roles").
		Select("user_roles.user_id::text AS user_id, roles.name AS role_name").
		Joins("JOIN roles ON roles.id = user_roles.role_id").
		Scan(&result).Error
	return result, err
}

func (r *repository) GetRolePermissions(ctx context.Context) ([]RolePermissionRow, error) {
	var result []RolePermissionRow
	err := r.db.WithContext(ctx).
		Table("role_permissions").
		Select("roles.name AS role_name, permissions.resource, permissions.action").
		Joins("JOIN roles ON roles.id = role_permissions.role_id").
		Joins("JOIN permissions ON permissions.id = role_permissions.permission_id").
		Scan(&result).Error
	return result, err
}

func (r *repository) RoleNamesForUser(ctx context.Context, userID string) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Table("user_roles").
		Joins("JOIN roles ON roles.id = user_roles.role_id").
		Where("user_roles.user_id = ?", userID).
		Order("roles.name").
		Pluck("roles.name", &names).Error
	return names, err
}

func (r *repository) PermissionNamesForUser(ctx context.Context, userID string) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Table("user_roles").
		Joins("JOIN role_permissions ON role_permissions.role_id = user_roles.role_id").
		Joins("JOIN permissions ON permissions.id = role_permissions.permission_id").
		Where("user_roles.user_id = ?", userID).
		Distinct().
		Order("permissions.name").
		Pluck("permissions.name", &names).Error
	return names, err
}

func (r *repository) UserIDsByRoleNames(ctx context.Context, roleNames []string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Table("user_roles").
		Joins("JOIN roles ON roles.id = user_roles.role_id").
		Joins("JOIN users ON users.id = user_roles.user_id").
		Where("roles.name IN ?", roleNames).
		Where("users.is_active = ?", true).
		Distinct().
		Pluck("user_roles.user_id::text", &ids).Error
	return ids, err
}

func (r *repository) ListRoles(ctx context.Context) ([]Role, error) {
	var result []Role
	err := r.db.WithContext(ctx).Order("name").Find(&result).Error
	return result, err
}

func (r *repository) GetRoleByID(ctx context.Context, id string) (*Role, error) {
	var result Role
	if err := r.db.WithContext(ctx).First(&result, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *repository) FindRolesByNames(ctx context.Context, names []string) ([]Role, error) {
	var result []Role
	err := r.db.WithContext(ctx).Where("name IN ?", names).Find(&result).Error
	return result, err
}

func (r *repository) CreateRole(ctx context.Context, role *Role) error {
	return r.db.WithContext(ctx).Create(role).Error
}

func (r *repository) UpdateRole(ctx context.Context, role *Role) error {
	return r.db.WithContext(ctx).Save(role).Error
}

func (r *repository) DeleteRole(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&RolePermission{}, "role_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&UserRole{}, "role_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&Role{}, "id = ?", id).Error
	})
}

func (r *repository) ListPermissions(ctx context.Context) ([]Permission, error) {
	var result []Permission
	err := r.db.WithContext(ctx).Order("category, name").Find(&result).Error
	return result, err
}

func (r *repository) FindPermissionsByNames(ctx context.Context, names []string) ([]Permission, error) {
	var result []Permission
	err := r.db.WithContext(ctx).Where("name IN ?", names).Find(&result).Error
	return result, err
}

func (r *repository) GetPermissionNamesByRoleID(ctx context.Context, roleID string) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Table("permissions").
		Joins("JOIN role_permissions ON role_permissions.permission_id = permissions.id").
		Where("role_permissions.role_id = ?", roleID).
		Order("permissions.name").
		Pluck("permissions.name", &names).Error
	return names, err
}

func (r *repository) ReplaceRolePermissions(ctx context.Context, roleID uuid.UUID, permIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&RolePermission{}, "role_id = ?", roleID).Error; err != nil {
			return err
		}
		if len(permIDs) == 0 {
			return nil
		}
		rows := make([]RolePermission, len(permIDs))
		for i, pID := range permIDs {
			rows[i] = RolePermission{RoleID: roleID, PermissionID: pID}
		}
		return tx.Create(&rows).Error
	})
}

func (r *repository) ReplaceUserRoles(ctx context.Context, userID uuid.UUID, roleIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&UserRole{}, "user_id = ?", userID).Error; err != nil {
			return err
		}
		if len(roleIDs) == 0 {
			return nil
		}
		rows := make([]UserRole, len(roleIDs))
		for i, rID := range roleIDs {
			rows[i] = UserRole{UserID: userID, RoleID: rID}
		}
		return tx.Create(&rows).Error
	})
}
