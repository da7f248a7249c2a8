package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fitgrid/gym-system/internal/api/handler"
	"github.com/fitgrid/gym-system/internal/api/middleware"
	"github.com/fitgrid/gym-system/internal/core/domain"
	"github.com/fitgrid/gym-system/internal/core/service"
	"github.com/fitgrid/gym-system/internal/infrastructure/config"
	mongodb "github.com/fitgrid/gym-system/internal/infrastructure/db/mongo"
	redisdb "github.com/fitgrid/gym-system/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil (logout revocation disabled) and google may be nil (Google
// sign-in disabled).
func NewRouter(db *mongo.Database, rdb *redis.Client, google handler.GoogleCredentialVerifier, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())

	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	memberRepo := mongodb.NewMemberRepository(db)
	coachRepo := mongodb.NewCoachRepository(db)
	scheduleRepo := mongodb.NewScheduleRepository(db)
	paymentRepo := mongodb.NewPaymentRepository(db)

	var revoked *redisdb.RevokedTokens
	var revoker service.TokenRevoker
	var checker middleware.TokenChecker
	if rdb != nil {
		revoked = redisdb.NewRevokedTokens(rdb)
		revoker = revoked
		checker = revoked
	}

	// --- Services ---
	authService := service.NewAuthService(userRepo, revoker, cfg.JWTSecret, cfg.TokenTTL(), log)
	userService := service.NewUserService(userRepo, log)
	memberService := service.NewMemberService(memberRepo, userRepo, log)
	coachService := service.NewCoachService(coachRepo, userRepo, log)
	scheduleService := service.NewScheduleService(scheduleRepo, coachRepo, log)
	paymentService := service.NewPaymentService(paymentRepo, memberRepo, log)
	dashboardService := service.NewDashboardService(memberRepo, coachRepo, paymentRepo)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService, google)
	adminHandler := handler.NewAdminHandler(userService)
	memberHandler := handler.NewMemberHandler(memberService)
	coachHandler := handler.NewCoachHandler(coachService)
	scheduleHandler := handler.NewScheduleHandler(scheduleService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	healthHandler := handler.NewHealthHandler(db, rdb)

	authRequired := middleware.Auth(cfg.JWTSecret, checker)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	staffOnly := middleware.RBAC(domain.RoleAdmin, domain.RoleCoach)
	anyRole := middleware.RBAC(domain.RoleAdmin, domain.RoleCoach, domain.RoleMember)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/google", authHandler.Google)
	auth.GET("/verify", authHandler.Verify, authRequired)
	auth.POST("/logout", authHandler.Logout, authRequired)
	auth.GET("/profile", authHandler.Profile, authRequired)

	// --- Admin user management ---
	admin := e.Group("/api/admin", authRequired, adminOnly)
	admin.GET("/users", adminHandler.ListUsers)
	admin.POST("/users", adminHandler.CreateUser)
	admin.PATCH("/users/:id/role", adminHandler.UpdateUserRole)
	admin.PATCH("/users/:id/activate", adminHandler.ActivateUser)
	admin.PATCH("/users/:id/deactivate", adminHandler.DeactivateUser)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)

	// --- Members ---
	members := e.Group("/api/members", authRequired)
	members.GET("", memberHandler.List, anyRole)
	members.GET("/:id", memberHandler.Get, anyRole)
	members.POST("", memberHandler.Create, adminOnly)
	members.PUT("/:id", memberHandler.Update, adminOnly)
	members.DELETE("/:id", memberHandler.Delete, adminOnly)

	// --- Coaches ---
	coaches := e.Group("/api/coaches", authRequired)
	coaches.GET("", coachHandler.List, anyRole)
	coaches.GET("/:id", coachHandler.Get, anyRole)
	coaches.POST("", coachHandler.Create, adminOnly)
	coaches.PUT("/:id", coachHandler.Update, adminOnly)
	coaches.DELETE("/:id", coachHandler.Delete, adminOnly)

	// --- Schedules ---
	schedules := e.Group("/api/schedules", authRequired)
	schedules.GET("", scheduleHandler.List, anyRole)
	schedules.GET("/:id", scheduleHandler.Get, anyRole)
	schedules.POST("", scheduleHandler.Create, staffOnly)
	schedules.PUT("/:id", scheduleHandler.Update, staffOnly)
	schedules.DELETE("/:id", scheduleHandler.Delete, staffOnly)

	// --- Payments ---
	payments := e.Group("/api/payments", authRequired, adminOnly)
	payments.GET("", paymentHandler.List)
	payments.POST("", paymentHandler.Create)

	// --- Dashboard ---
	dashboard := e.Group("/api/dashboard", authRequired, staffOnly)
	dashboard.GET("/stats", dashboardHandler.Stats)

	// --- Health probes and metrics (no auth required) ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}
