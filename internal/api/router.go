package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/perfumehub/catalog-system/internal/api/handler"
	"github.com/perfumehub/catalog-system/internal/api/middleware"
	"github.com/perfumehub/catalog-system/internal/core/service"
	"github.com/perfumehub/catalog-system/internal/infrastructure/config"
	mongodb "github.com/perfumehub/catalog-system/internal/infrastructure/db/mongo"
	redisdb "github.com/perfumehub/catalog-system/internal/infrastructure/db/redis"
	"github.com/perfumehub/catalog-system/internal/infrastructure/queue"
)

// NewRouter builds the Echo instance with all routes registered. The audit
// dispatcher is returned so the caller can start and stop its workers.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) (*echo.Echo, *queue.Dispatcher, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("catalog"))

	// --- Dependencies ---
	memberRepo := mongodb.NewMemberRepository(db)
	perfumeRepo := mongodb.NewPerfumeRepository(db)
	brandRepo := mongodb.NewBrandRepository(db)
	eventRepo := mongodb.NewReviewEventRepository(db)
	sessions := redisdb.NewSessionStore(rdb, cfg.SessionTTL)

	tokens, err := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		return nil, nil, err
	}
	guard := service.NewGuard()
	dispatcher := queue.NewDispatcher(cfg.AuditWorkers, eventRepo, log)

	authService := service.NewAuthService(memberRepo, tokens, sessions, log)
	memberService := service.NewMemberService(memberRepo, perfumeRepo, brandRepo, guard, log)
	perfumeService := service.NewPerfumeService(perfumeRepo, brandRepo, guard, log)
	reviewService := service.NewReviewService(perfumeRepo, guard, dispatcher, log)
	brandService := service.NewBrandService(brandRepo, perfumeRepo, guard, log)

	authHandler := handler.NewAuthHandler(authService, cfg.SessionTTL)
	memberHandler := handler.NewMemberHandler(memberService)
	perfumeHandler := handler.NewPerfumeHandler(perfumeService, reviewService)
	brandHandler := handler.NewBrandHandler(brandService)

	authenticate := middleware.Authenticate(tokens, sessions, memberRepo)
	requireAuth := middleware.RequireAuth(guard)
	requireAdmin := middleware.RequireAdmin(guard)
	e.Use(authenticate)

	// --- Auth routes ---
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)
	e.POST("/api/auth/logout", authHandler.Logout)
	e.POST("/session/login", authHandler.SessionLogin)
	e.POST("/session/logout", authHandler.SessionLogout)

	// --- Member routes ---
	members := e.Group("/api/members")
	members.GET("", memberHandler.List, requireAdmin)
	members.GET("/reviews", memberHandler.MyReviews, requireAuth)
	members.PUT("/password", memberHandler.ChangePassword, requireAuth)
	members.PUT("/:id", memberHandler.UpdateProfile, requireAuth)

	// --- Perfume routes ---
	perfumes := e.Group("/api/perfumes")
	perfumes.GET("", perfumeHandler.List)
	perfumes.GET("/search", perfumeHandler.Search)
	perfumes.GET("/filter", perfumeHandler.FilterByBrand)
	perfumes.GET("/:id", perfumeHandler.Get)
	perfumes.POST("", perfumeHandler.Create, requireAdmin)
	perfumes.PUT("/:id", perfumeHandler.Update, requireAdmin)
	perfumes.DELETE("/:id", perfumeHandler.Delete, requireAdmin)
	perfumes.POST("/:id/reviews", perfumeHandler.SubmitReview, requireAuth)

	// --- Brand routes ---
	brands := e.Group("/api/brands")
	brands.GET("", brandHandler.List)
	brands.POST("", brandHandler.Create, requireAdmin)
	brands.PUT("/:id", brandHandler.Update, requireAdmin)
	brands.DELETE("/:id", brandHandler.Delete, requireAdmin)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	return e, dispatcher, nil
}
