package app

import (
	"context"
	"fmt"
	"strings"

	"go-hrms/internal/domain"
	"go-hrms/internal/leave"
	"go-hrms/internal/rbac"
	"go-hrms/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type seedConfig struct {
	AdminName     string
	AdminEmail    string
	AdminPassword string
}

// resourceActions lists the permissions checked by the route groups.
var resourceActions = map[string][]string{
	"role":             {domain.ActionRead, domain.ActionCreate, domain.ActionUpdate, domain.ActionDelete},
	"user":             {domain.ActionRead, domain.ActionCreate, domain.ActionUpdate, domain.ActionDelete},
	"department":       {domain.ActionRead, domain.ActionCreate, domain.ActionUpdate, domain.ActionDelete},
	"position":         {domain.ActionRead, domain.ActionCreate, domain.ActionUpdate, domain.ActionDelete},
	"employee":         {domain.ActionRead, domain.ActionCreate, domain.ActionUpdate, domain.ActionDelete, domain.ActionImport, domain.ActionExport},
	"employment":       {domain.ActionRead, domain.ActionCreate, domain.ActionUpdate, domain.ActionDelete, domain.ActionApprove},
	"grant":            {domain.ActionRead, domain.ActionCreate, domain.ActionUpdate, domain.ActionDelete, domain.ActionExport},
	"allocation":       {domain.ActionRead, domain.ActionUpdate},
	"tax":              {domain.ActionRead, domain.ActionCreate, domain.ActionUpdate, domain.ActionDelete},
	"payroll":          {domain.ActionRead, domain.ActionCreate, domain.ActionUpdate, domain.ActionDelete, domain.ActionApprove, domain.ActionExport},
	"leave":            {domain.ActionRead, domain.ActionCreate, domain.ActionUpdate, domain.ActionDelete, domain.ActionApprove},
	"travel":           {domain.ActionRead, domain.ActionCreate, domain.ActionUpdate, domain.ActionDelete, domain.ActionApprove},
	"interview":        {domain.ActionRead, domain.ActionCreate, domain.ActionUpdate, domain.ActionDelete},
	"personnel_action": {domain.ActionRead, domain.ActionCreate, domain.ActionUpdate, domain.ActionDelete, domain.ActionApprove},
}

var categories = map[string]string{
	"role":             "Access",
	"user":             "Access",
	"department":       "Organization",
	"position":         "Organization",
	"employee":         "Employees",
	"employment":       "Employees",
	"personnel_action": "Employees",
	"grant":            "Grants",
	"allocation":       "Grants",
	"tax":              "Payroll",
	"payroll":          "Payroll",
	"leave":            "Requests",
	"travel":           "Requests",
	"interview":        "Recruitment",
}

type roleSeed struct {
	name        string
	description string
	// grants maps a resource to its allowed actions; "*" means all of them.
	grants map[string][]string
}

var (
	allActions = []string{"*"}
	readOnly   = []string{domain.ActionRead}
	readWrite  = []string{domain.ActionRead, domain.ActionCreate, domain.ActionUpdate}
	approver   = []string{domain.ActionRead, domain.ActionApprove}
)

var roleSeeds = []roleSeed{
	{
		name:        domain.RoleAdmin,
		description: "Full access",
		grants:      map[string][]string{"*": allActions},
	},
	{
		name:        domain.RoleHRManager,
		description: "Manages HR records, payroll and approvals",
		grants: map[string][]string{
			"user":             readOnly,
			"department":       allActions,
			"position":         allActions,
			"employee":         allActions,
			"employment":       allActions,
			"grant":            allActions,
			"allocation":       allActions,
			"tax":              allActions,
			"payroll":          allActions,
			"leave":            allActions,
			"travel":           allActions,
			"interview":        allActions,
			"personnel_action": allActions,
		},
	},
	{
		name:        domain.RoleHRAssistant,
		description: "Maintains HR records",
		grants: map[string][]string{
			"department":       readOnly,
			"position":         readOnly,
			"employee":         append(readWrite, domain.ActionImport, domain.ActionExport),
			"employment":       readWrite,
			"grant":            readOnly,
			"allocation":       readOnly,
			"payroll":          readWrite,
			"leave":            readWrite,
			"travel":           readWrite,
			"interview":        readWrite,
			"personnel_action": readWrite,
		},
	},
	{
		name:        domain.RoleManager,
		description: "Approves requests for their team",
		grants: map[string][]string{
			"employee":         readOnly,
			"employment":       readOnly,
			"leave":            approver,
			"travel":           approver,
			"personnel_action": approver,
			"interview":        readWrite,
		},
	},
	{
		name:        domain.RoleEmployee,
		description: "Self service",
		grants: map[string][]string{
			"leave":  {domain.ActionRead, domain.ActionCreate},
			"travel": {domain.ActionRead, domain.ActionCreate},
		},
	},
}

var leaveTypeSeeds = []leave.LeaveType{
	{Name: "Annual Leave", DefaultDays: 26},
	{Name: "Sick Leave", DefaultDays: 30, RequiresAttachment: true},
	{Name: "Personal Leave", DefaultDays: 3},
	{Name: "Maternity Leave", DefaultDays: 98, RequiresAttachment: true},
	{Name: "Traditional Day-off", DefaultDays: 13},
	{Name: "Unpaid Leave", DefaultDays: 0},
}

func seedAll(ctx context.Context, db *gorm.DB, cfg seedConfig, logger *zap.Logger) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		perms, err := seedPermissions(tx)
		if err != nil {
			return err
		}
		roles, err := seedRoles(tx, perms)
		if err != nil {
			return err
		}
		if err := seedLeaveTypes(tx); err != nil {
			return err
		}
		return seedAdmin(tx, cfg, roles[domain.RoleAdmin], logger)
	})
}

// seedPermissions inserts missing permissions and returns all of them keyed
// by name.
func seedPermissions(tx *gorm.DB) (map[string]rbac.Permission, error) {
	var rows []rbac.Permission
	for resource, actions := range resourceActions {
		for _, action := range actions {
			rows = append(rows, rbac.Permission{
				ID:       uuid.New(),
				Name:     resource + "." + action,
				Resource: resource,
				Action:   action,
				Label:    strings.ToUpper(action[:1]) + action[1:] + " " + strings.ReplaceAll(resource, "_", " "),
				Category: categories[resource],
			})
		}
	}
	err := tx.Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("seed permissions: %w", err)
	}

	var all []rbac.Permission
	if err := tx.Find(&all).Error; err != nil {
		return nil, err
	}
	out := make(map[string]rbac.Permission, len(all))
	for _, p := range all {
		out[p.Name] = p
	}
	return out, nil
}

// seedRoles creates the built-in roles. Permissions are only attached to a
// role the first time it is created so later edits made through the API
// survive a re-run.
func seedRoles(tx *gorm.DB, perms map[string]rbac.Permission) (map[string]rbac.Role, error) {
	out := make(map[string]rbac.Role, len(roleSeeds))
	for _, rs := range roleSeeds {
		var role rbac.Role
		res := tx.Where("name = ?", rs.name).
			Attrs(rbac.Role{ID: uuid.New(), Name: rs.name, Description: rs.description, IsSystem: true}).
			FirstOrCreate(&role)
		if res.Error != nil {
			return nil, fmt.Errorf("seed role %s: %w", rs.name, res.Error)
		}
		out[rs.name] = role
		if res.RowsAffected == 0 {
			continue
		}

		var links []rbac.RolePermission
		for _, p := range perms {
			if granted(rs.grants, p.Resource, p.Action) {
				links = append(links, rbac.RolePermission{RoleID: role.ID, PermissionID: p.ID})
			}
		}
		if len(links) == 0 {
			continue
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&links).Error; err != nil {
			return nil, fmt.Errorf("seed role %s permissions: %w", rs.name, err)
		}
	}
	return out, nil
}

func granted(grants map[string][]string, resource, action string) bool {
	for _, key := range []string{resource, "*"} {
		for _, a := range grants[key] {
			if a == "*" || a == action {
				return true
			}
		}
	}
	return false
}

func seedLeaveTypes(tx *gorm.DB) error {
	for _, lt := range leaveTypeSeeds {
		lt.ID = uuid.New()
		var existing leave.LeaveType
		if err := tx.Where("name = ?", lt.Name).Attrs(lt).FirstOrCreate(&existing).Error; err != nil {
			return fmt.Errorf("seed leave type %s: %w", lt.Name, err)
		}
	}
	return nil
}

func seedAdmin(tx *gorm.DB, cfg seedConfig, admin rbac.Role, logger *zap.Logger) error {
	if cfg.AdminPassword == "" {
		logger.Warn("ADMIN_PASSWORD not set, skipping admin account")
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	var u user.User
	res := tx.Where("email = ?", strings.ToLower(cfg.AdminEmail)).
		Attrs(user.User{
			ID:       uuid.New(),
			Name:     cfg.AdminName,
			Email:    strings.ToLower(cfg.AdminEmail),
			Password: string(hashed),
			IsActive: true,
		}).
		FirstOrCreate(&u)
	if res.Error != nil {
		return fmt.Errorf("seed admin: %w", res.Error)
	}

	link := rbac.UserRole{UserID: u.ID, RoleID: admin.ID}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error; err != nil {
		return fmt.Errorf("seed admin role: %w", err)
	}
	if res.RowsAffected > 0 {
		logger.Info("admin account created", zap.String("email", u.Email))
	}
	return nil
}
