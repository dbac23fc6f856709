package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	complaintusecases "jannivaran/internal/application/complaint/usecases"
	escalationusecases "jannivaran/internal/application/escalation/usecases"
	userusecases "jannivaran/internal/application/user/usecases"
	"jannivaran/internal/infrastructure/auth"
	"jannivaran/internal/infrastructure/config"
	"jannivaran/internal/infrastructure/email"
	"jannivaran/internal/infrastructure/permission"
	"jannivaran/internal/infrastructure/ratelimit"
	"jannivaran/internal/infrastructure/repository"
	"jannivaran/internal/infrastructure/services"
	"jannivaran/internal/interfaces/http/handlers"
	"jannivaran/internal/interfaces/http/middleware"
	"jannivaran/internal/interfaces/http/routes"
	"jannivaran/internal/shared/logger"
	"jannivaran/internal/shared/services/markdown"
)

// rbacModelPath locates the casbin model relative to the working directory.
const rbacModelPath = "configs/rbac_model.conf"

// Router wires repositories, use cases, and handlers into a Gin engine.
type Router struct {
	engine          *gin.Engine
	authRoutes      *routes.AuthRouteConfig
	complaintRoutes *routes.ComplaintRouteConfig
	escalationRts   *routes.EscalationRouteConfig
	dashboardRoutes *routes.DashboardRouteConfig
	healthHandler   *handlers.HealthHandler
	allowedOrigins  []string
	logger          logger.Interface
}

// NewRouter builds the full dependency graph for the HTTP surface.
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) (*Router, error) {
	engine := gin.New()

	complaintRepo := repository.NewComplaintRepository(db)
	escalationRepo := repository.NewEscalationRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)
	userRepo := repository.NewUserRepository(db)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes, cfg.Auth.JWT.RefreshExpDays)
	idGen := services.NewRandomTrackingIDGenerator()
	markdownSvc := markdown.NewMarkdownService()

	emailService := email.NewSMTPEmailService(email.SMTPConfig{
		Host:        cfg.Email.SMTPHost,
		Port:        cfg.Email.SMTPPort,
		Username:    cfg.Email.SMTPUser,
		Password:    cfg.Email.SMTPPassword,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		BaseURL:     cfg.Server.BaseURL,
	})

	complaintLimiter := ratelimit.NewRedisRateLimiter(redisClient, cfg.RateLimit, log)

	enforcer, err := permission.NewEnforcer(db, rbacModelPath, log)
	if err != nil {
		return nil, err
	}
	if err := permission.InitDefaultPolicies(enforcer, log); err != nil {
		return nil, err
	}

	fileComplaintUC := complaintusecases.NewFileComplaintUseCase(complaintRepo, userRepo, auditRepo, idGen, complaintLimiter, emailService, log)
	getComplaintUC := complaintusecases.NewGetComplaintUseCase(complaintRepo, log)
	trackComplaintUC := complaintusecases.NewTrackComplaintUseCase(complaintRepo, log)
	listComplaintsUC := complaintusecases.NewListComplaintsUseCase(complaintRepo, log)
	changeStatusUC := complaintusecases.NewChangeStatusUseCase(complaintRepo, userRepo, auditRepo, emailService, markdownSvc, log)
	changePriorityUC := complaintusecases.NewChangePriorityUseCase(complaintRepo, auditRepo, log)
	assignComplaintUC := complaintusecases.NewAssignComplaintUseCase(complaintRepo, userRepo, auditRepo, log)
	deleteComplaintUC := complaintusecases.NewDeleteComplaintUseCase(complaintRepo, auditRepo, log)
	interveneUC := complaintusecases.NewInterveneUseCase(complaintRepo, auditRepo, log)
	getAuditTrailUC := complaintusecases.NewGetAuditTrailUseCase(auditRepo, log)
	dashboardStatsUC := complaintusecases.NewGetDashboardStatsUseCase(complaintRepo, log)

	escalateUC := escalationusecases.NewEscalateComplaintUseCase(complaintRepo, escalationRepo, auditRepo, log)
	resolveEscalationUC := escalationusecases.NewResolveEscalationUseCase(escalationRepo, auditRepo, log)
	listEscalationsUC := escalationusecases.NewListEscalationsUseCase(escalationRepo, log)
	listComplaintEscUC := escalationusecases.NewListComplaintEscalationsUseCase(complaintRepo, escalationRepo, log)
	sweepUC := escalationusecases.NewSweepUseCase(complaintRepo, escalationRepo, userRepo, auditRepo, emailService, log)

	registerUC := userusecases.NewRegisterUseCase(userRepo, hasher, emailService, log)
	loginUC := userusecases.NewLoginUseCase(userRepo, hasher, jwtService, log)
	refreshTokenUC := userusecases.NewRefreshTokenUseCase(jwtService, log)

	complaintHandler := handlers.NewComplaintHandler(
		fileComplaintUC, getComplaintUC, trackComplaintUC, listComplaintsUC,
		changeStatusUC, changePriorityUC, assignComplaintUC, deleteComplaintUC,
		interveneUC, getAuditTrailUC, userRepo,
	)
	escalationHandler := handlers.NewEscalationHandler(
		escalateUC, resolveEscalationUC, listEscalationsUC, listComplaintEscUC, sweepUC, userRepo,
	)
	authHandler := handlers.NewAuthHandler(registerUC, loginUC, refreshTokenUC, userRepo, log)
	dashboardHandler := handlers.NewDashboardHandler(dashboardStatsUC)
	categoryHandler := handlers.NewCategoryHandler()

	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)
	permissionMiddleware := middleware.NewPermissionMiddleware(enforcer, log)
	ipLimiter := middleware.NewIPRateLimiter(redisClient, 100, 1*time.Minute)

	return &Router{
		engine: engine,
		authRoutes: &routes.AuthRouteConfig{
			AuthHandler:    authHandler,
			AuthMiddleware: authMiddleware,
			Permission:     permissionMiddleware,
			RateLimiter:    ipLimiter,
		},
		complaintRoutes: &routes.ComplaintRouteConfig{
			ComplaintHandler:  complaintHandler,
			EscalationHandler: escalationHandler,
			AuthMiddleware:    authMiddleware,
			Permission:        permissionMiddleware,
		},
		escalationRts: &routes.EscalationRouteConfig{
			EscalationHandler: escalationHandler,
			AuthMiddleware:    authMiddleware,
			Permission:        permissionMiddleware,
		},
		dashboardRoutes: &routes.DashboardRouteConfig{
			DashboardHandler: dashboardHandler,
			CategoryHandler:  categoryHandler,
			AuthMiddleware:   authMiddleware,
			Permission:       permissionMiddleware,
		},
		healthHandler:  handlers.NewHealthHandler(),
		allowedOrigins: cfg.Server.AllowedOrigins,
		logger:         log,
	}, nil
}

// SetupRoutes configures all HTTP routes.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.allowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", r.healthHandler.HealthCheck)

	routes.SetupAuthRoutes(r.engine, r.authRoutes)
	routes.SetupComplaintRoutes(r.engine, r.complaintRoutes)
	routes.SetupEscalationRoutes(r.engine, r.escalationRts)
	routes.SetupDashboardRoutes(r.engine, r.dashboardRoutes)
}

// GetEngine returns the Gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
