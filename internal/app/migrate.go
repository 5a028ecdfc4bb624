package app

import (
	"context"
	"fmt"

	"go-hrms/internal/allocation"
	"go-hrms/internal/config"
	"go-hrms/internal/department"
	"go-hrms/internal/employee"
	"go-hrms/internal/employment"
	"go-hrms/internal/grant"
	"go-hrms/internal/importexport"
	"go-hrms/internal/interview"
	"go-hrms/internal/leave"
	"go-hrms/internal/notification"
	"go-hrms/internal/payroll"
	"go-hrms/internal/personnelaction"
	"go-hrms/internal/position"
	"go-hrms/internal/rbac"
	"go-hrms/internal/shared/connection"
	"go-hrms/internal/shared/counter"
	"go-hrms/internal/tax"
	"go-hrms/internal/travel"
	"go-hrms/internal/user"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// models is every owned table, parents before children.
func models() []any {
	return []any{
		&user.User{},
		&rbac.Role{},
		&rbac.Permission{},
		&rbac.RolePermission{},
		&rbac.UserRole{},
		&counter.Counter{},
		&department.Department{},
		&position.Position{},
		&employee.Employee{},
		&grant.Grant{},
		&grant.GrantItem{},
		&grant.PositionSlot{},
		&employment.Employment{},
		&employment.ProbationRecord{},
		&allocation.FundingAllocation{},
		&tax.TaxBracket{},
		&tax.TaxSetting{},
		&payroll.PayrollBatch{},
		&payroll.Payroll{},
		&leave.LeaveType{},
		&leave.LeaveBalance{},
		&leave.LeaveRequest{},
		&travel.TravelRequest{},
		&interview.Interview{},
		&personnelaction.PersonnelAction{},
		&notification.Notification{},
		&importexport.ImportJob{},
	}
}

const outboxDDL = `
CREATE TABLE IF NOT EXISTS outbox_events (
	id             UUID PRIMARY KEY,
	request_id     VARCHAR(100),
	aggregate_type VARCHAR(100) NOT NULL,
	aggregate_id   VARCHAR(100) NOT NULL,
	event_type     VARCHAR(150) NOT NULL,
	topic          VARCHAR(255) NOT NULL,
	payload        JSONB NOT NULL,
	status         VARCHAR(20) NOT NULL DEFAULT 'pending',
	retry_count    INT NOT NULL DEFAULT 0,
	next_retry_at  TIMESTAMPTZ,
	error_message  VARCHAR(500),
	processed_at   TIMESTAMPTZ,
	created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_outbox_events_pending ON outbox_events (status, next_retry_at, created_at);
`

// RunMigrate creates or updates the schema and then seeds roles,
// permissions, leave types and the first admin account.
func RunMigrate(cfg config.Config, seed bool) error {
	logger := zap.L().Named("app.migrate")

	db, err := connection.ConnectGORMWithRetry(cfg.DB, connectRetries)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	ctx := context.Background()
	if err := migrate(ctx, db); err != nil {
		return err
	}
	logger.Info("schema migrated", zap.Int("tables", len(models())+1))

	if !seed {
		return nil
	}
	if err := seedAll(ctx, db, seedConfig{
		AdminName:     config.GetEnv("ADMIN_NAME", "Administrator"),
		AdminEmail:    config.GetEnv("ADMIN_EMAIL", "admin@hrms.local"),
		AdminPassword: config.GetEnv("ADMIN_PASSWORD", ""),
	}, logger); err != nil {
		return err
	}
	logger.Info("seed data applied")
	return nil
}

func migrate(ctx context.Context, db *gorm.DB) error {
	tx := db.WithContext(ctx)
	if err := tx.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		return fmt.Errorf("enable pgcrypto: %w", err)
	}
	if err := tx.AutoMigrate(models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	if err := tx.Exec(outboxDDL).Error; err != nil {
		return fmt.Errorf("create outbox: %w", err)
	}
	return nil
}
