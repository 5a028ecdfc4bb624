package app

import (
	"context"

	"go-hrms/internal/allocation"
	"go-hrms/internal/auth"
	"go-hrms/internal/bootstrap"
	"go-hrms/internal/department"
	"go-hrms/internal/employee"
	"go-hrms/internal/employment"
	"go-hrms/internal/grant"
	"go-hrms/internal/importexport"
	"go-hrms/internal/interview"
	"go-hrms/internal/leave"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/notification"
	"go-hrms/internal/payroll"
	"go-hrms/internal/personnelaction"
	"go-hrms/internal/position"
	"go-hrms/internal/rbac"
	"go-hrms/internal/rbac/infra"
	"go-hrms/internal/realtime"
	"go-hrms/internal/shared/cache"
	"go-hrms/internal/shared/counter"
	"go-hrms/internal/tax"
	"go-hrms/internal/travel"
	"go-hrms/internal/user"

	"go.uber.org/zap"
)

// modules is the service graph shared by the api, worker and consumer
// processes.
type modules struct {
	tokens      auth.TokenStore
	outbox      kafka.OutboxRepository
	broadcaster realtime.Broadcaster
	mailer      notification.Mailer
	audit       bootstrap.AuditLogger

	rbac          rbac.Service
	auth          auth.Service
	users         user.Service
	departments   department.Service
	positions     position.Service
	employees     employee.Service
	employments   employment.Service
	grants        grant.Service
	allocations   allocation.Service
	taxes         tax.Service
	payrolls      payroll.Service
	leaves        leave.Service
	travels       travel.Service
	interviews    interview.Service
	actions       personnelaction.Service
	notifications notification.Service
	imports       importexport.ImportService
	exports       importexport.ExportService
}

func buildModules(ctx context.Context, in *platform, logger *zap.Logger) (*modules, error) {
	cfg := in.cfg
	c := cache.New(in.rdb, logger)

	// --- Repositories ---
	rbacRepo := rbac.NewRepository(in.gormDB)
	userRepo := user.NewRepository(in.gormDB)
	departmentRepo := department.NewRepository(in.gormDB)
	positionRepo := position.NewRepository(in.gormDB)
	employeeRepo := employee.NewRepository(in.gormDB)
	employmentRepo := employment.NewRepository(in.gormDB)
	grantRepo := grant.NewRepository(in.gormDB)
	allocationRepo := allocation.NewRepository(in.gormDB)
	taxRepo := tax.NewRepository(in.gormDB)
	payrollRepo := payroll.NewRepository(in.gormDB)
	leaveRepo := leave.NewRepository(in.gormDB)
	travelRepo := travel.NewRepository(in.gormDB)
	interviewRepo := interview.NewRepository(in.gormDB)
	actionRepo := personnelaction.NewRepository(in.gormDB)
	notificationRepo := notification.NewRepository(in.gormDB)
	importRepo := importexport.NewRepository(in.gormDB)
	counterRepo := counter.NewRepository(in.gormDB)

	m := &modules{
		tokens:      auth.NewTokenStore(in.rdb),
		outbox:      kafka.NewOutboxRepository(in.db),
		broadcaster: realtime.NewBroadcaster(in.rdb, logger),
		audit:       bootstrap.NewStdoutAuditLogger(logger),
	}
	if cfg.SMTP.Enabled() {
		m.mailer = notification.NewSMTPMailer(cfg.SMTP)
	} else {
		m.mailer = notification.NewLogMailer(logger)
	}

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return nil, err
	}
	m.rbac = rbac.NewService(rbacRepo, enforcer, logger)
	if err := m.rbac.LoadPolicy(ctx); err != nil {
		return nil, err
	}

	// --- Services ---
	m.auth = auth.NewService(userRepo, m.rbac, m.tokens, auth.TokenConfig{
		Secret:     []byte(cfg.JWTSecret),
		AccessTTL:  cfg.AccessTokenTTL,
		RefreshTTL: cfg.RefreshTokenTTL,
	})
	m.users = user.NewService(userRepo, m.rbac)
	m.notifications = notification.NewService(in.db, notificationRepo, m.outbox, userRepo, m.rbac, m.broadcaster, logger)

	m.departments = department.NewService(departmentRepo, c)
	m.positions = position.NewService(positionRepo, c)
	m.employees = employee.NewService(in.db, employeeRepo, counterRepo, m.outbox, c, logger)
	m.grants = grant.NewService(in.db, grantRepo, c, logger)
	m.allocations = allocation.NewService(in.db, allocationRepo, employmentRepo, grantRepo, logger)
	m.employments = employment.NewService(in.db, employmentRepo, m.allocations, m.outbox, m.notifications, logger)
	m.taxes = tax.NewService(taxRepo, c, logger)
	m.payrolls = payroll.NewService(in.db, payrollRepo, employmentRepo, allocationRepo, employeeRepo,
		m.taxes, m.outbox, m.broadcaster, m.notifications, logger)
	m.leaves = leave.NewService(in.db, leaveRepo, logger)
	m.travels = travel.NewService(in.db, travelRepo, logger)
	m.interviews = interview.NewService(interviewRepo, logger)
	m.actions = personnelaction.NewService(in.db, actionRepo, employmentRepo, m.allocations,
		m.outbox, m.notifications, m.audit, logger)

	m.imports = importexport.NewImportService(in.db, importRepo, importexport.NewLocalStore(cfg.StorageDir),
		m.employees, m.outbox, m.broadcaster, m.notifications, logger)
	m.exports = importexport.NewExportService(m.employees, m.grants, m.payrolls, logger)

	return m, nil
}
