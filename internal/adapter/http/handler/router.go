package handler

import (
	"confidential-points-exchange/internal/adapter/http/middleware"
	redisStore "confidential-points-exchange/internal/adapter/storage/redis"
	"confidential-points-exchange/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	IdentitySvc    ports.IdentityService
	AccessSvc      ports.AccessService
	RegistrySvc    ports.RegistryService
	AccountSvc     ports.AccountService
	ConversionSvc  ports.ConversionService
	OracleSvc      ports.OracleService
	EventSvc       ports.EventService
	TokenSvc       ports.TokenService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep: verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.IdentitySvc)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", rl("auth_register"), authHandler.Register)
		auth.POST("/login", rl("auth_login"), authHandler.Login)
	}

	// The oracle callback authenticates with its proof, not a session token.
	oracleHandler := NewOracleHandler(deps.OracleSvc)
	v1.POST("/decryptions/:id/verify", rl("decryptions"), oracleHandler.VerifyDecryption)

	// --- JWT-authenticated routes ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)

	adminHandler := NewAdminHandler(deps.RegistrySvc, deps.AccessSvc)
	admin := v1.Group("/admin", jwtAuth)
	{
		admin.POST("/brands", rl("admin"), adminHandler.RegisterBrand)
		admin.PUT("/rates", rl("admin"), adminHandler.SetRate)
		admin.POST("/ownership", rl("admin"), adminHandler.TransferOwnership)
	}

	registryHandler := NewRegistryHandler(deps.RegistrySvc)
	v1.GET("/brands", jwtAuth, rl("read"), registryHandler.ListBrands)
	v1.GET("/rates/:from/:to", jwtAuth, rl("read"), registryHandler.GetRate)

	accountHandler := NewAccountHandler(deps.AccountSvc)
	accounts := v1.Group("/accounts", jwtAuth)
	{
		accounts.POST("", rl("admin"), accountHandler.Create)
		accounts.GET("/me", rl("read"), accountHandler.Get)
		accounts.POST("/deactivate", rl("admin"), accountHandler.Deactivate)
		accounts.PUT("/mirror", rl("admin"), accountHandler.UpdateMirror)
	}

	conversionHandler := NewConversionHandler(deps.ConversionSvc)
	v1.POST("/conversions", jwtAuth, rl("conversions"), conversionHandler.Convert)

	decryptions := v1.Group("/decryptions", jwtAuth)
	{
		decryptions.POST("", rl("decryptions"), oracleHandler.RequestDecryption)
		decryptions.GET("/:id", rl("read"), oracleHandler.GetRecord)
	}

	eventHandler := NewEventHandler(deps.EventSvc)
	v1.GET("/events", jwtAuth, rl("read"), eventHandler.List)

	return r
}
