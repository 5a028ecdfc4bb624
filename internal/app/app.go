package app

import (
	"context"
	"net/http"

	"go-hrms/internal/allocation"
	"go-hrms/internal/auth"
	"go-hrms/internal/config"
	"go-hrms/internal/department"
	"go-hrms/internal/employee"
	"go-hrms/internal/employment"
	"go-hrms/internal/grant"
	"go-hrms/internal/importexport"
	"go-hrms/internal/interview"
	"go-hrms/internal/leave"
	"go-hrms/internal/middleware"
	"go-hrms/internal/notification"
	"go-hrms/internal/payroll"
	"go-hrms/internal/personnelaction"
	"go-hrms/internal/position"
	"go-hrms/internal/rbac"
	"go-hrms/internal/realtime"
	"go-hrms/internal/shared/response"
	"go-hrms/internal/tax"
	"go-hrms/internal/travel"
	"go-hrms/internal/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects the infrastructure, wires every module onto router and
// starts the websocket hub. The returned func releases everything.
func BuildApp(router *gin.Engine, cfg config.Config) (func(), error) {
	logger := zap.L()

	// 1. Setup Infrastructure
	p, err := connect(cfg)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	m, err := buildModules(ctx, p, logger)
	if err != nil {
		cancel()
		p.Close()
		return nil, err
	}

	hub := realtime.NewHub(p.rdb, logger)
	go func() {
		if err := hub.Run(ctx); err != nil && ctx.Err() == nil {
			logger.Error("realtime hub stopped", zap.Error(err))
		}
	}()

	// 2. Register Modules & Routes
	registerRoutes(router, p, m, hub)

	return func() {
		cancel()
		if err := p.Close(); err != nil {
			logger.Warn("closing connections", zap.Error(err))
		}
	}, nil
}

func registerRoutes(router *gin.Engine, p *platform, m *modules, hub *realtime.Hub) {
	cfg := p.cfg
	logger := zap.L()

	router.Use(
		middleware.RequestID(),
		middleware.ContextLogger(logger),
		middleware.SecureHeaders(cfg.IsProduction()),
	)

	router.GET("/health", func(c *gin.Context) {
		if err := p.db.PingContext(c.Request.Context()); err != nil {
			response.Error(c, http.StatusServiceUnavailable, "UNAVAILABLE", "database unreachable", nil)
			return
		}
		response.Success(c, http.StatusOK, "OK", nil, nil)
	})

	// --- Handlers ---
	authHandler := auth.NewHandler(m.auth, auth.CookieConfig{
		Secure:     cfg.IsProduction(),
		AccessTTL:  cfg.AccessTokenTTL,
		RefreshTTL: cfg.RefreshTokenTTL,
	}, logger)
	userHandler := user.NewHandler(m.users, logger)
	rbacHandler := rbac.NewHandler(m.rbac)
	departmentHandler := department.NewHandler(m.departments)
	positionHandler := position.NewHandler(m.positions)
	employeeHandler := employee.NewHandler(m.employees, logger)
	employmentHandler := employment.NewHandler(m.employments, logger)
	grantHandler := grant.NewHandler(m.grants)
	allocationHandler := allocation.NewHandler(m.allocations)
	taxHandler := tax.NewHandler(m.taxes)
	payrollHandler := payroll.NewHandler(m.payrolls)
	leaveHandler := leave.NewHandler(m.leaves)
	travelHandler := travel.NewHandler(m.travels)
	interviewHandler := interview.NewHandler(m.interviews)
	actionHandler := personnelaction.NewHandler(m.actions)
	notificationHandler := notification.NewHandler(m.notifications)
	importExportHandler := importexport.NewHandler(m.imports, m.exports)
	realtimeHandler := realtime.NewHandler(hub, realtime.HandlerConfig{
		Secret:         []byte(cfg.JWTSecret),
		Denylist:       m.tokens,
		AllowedOrigins: cfg.CORSOrigins,
	}, logger)

	// --- Routes Registration ---
	public := router.Group("/api/v1")
	protected := public.Group("", middleware.AuthMiddleware(middleware.AuthConfig{
		Secret:   []byte(cfg.JWTSecret),
		Denylist: m.tokens,
	}))

	auth.RegisterRoutes(public, protected, authHandler)
	realtime.RegisterRoutes(public, realtimeHandler)

	rbac.RegisterRoutes(protected, rbacHandler, m.rbac)
	user.RegisterRoutes(protected, userHandler, m.rbac)
	department.RegisterRoutes(protected, departmentHandler, m.rbac)
	position.RegisterRoutes(protected, positionHandler, m.rbac)
	employee.RegisterRoutes(protected, employeeHandler, m.rbac)
	employment.RegisterRoutes(protected, employmentHandler, m.rbac)
	grant.RegisterRoutes(protected, grantHandler, m.rbac)
	allocation.RegisterRoutes(protected, allocationHandler, m.rbac)
	tax.RegisterRoutes(protected, taxHandler, m.rbac)
	payroll.RegisterRoutes(protected, payrollHandler, m.rbac, p.rdb)
	leave.RegisterRoutes(protected, leaveHandler, m.rbac)
	travel.RegisterRoutes(protected, travelHandler, m.rbac)
	interview.RegisterRoutes(protected, interviewHandler, m.rbac)
	personnelaction.RegisterRoutes(protected, actionHandler, m.rbac)
	notification.RegisterRoutes(protected, notificationHandler)
	importexport.RegisterRoutes(protected, importExportHandler, m.rbac, p.rdb)
}
