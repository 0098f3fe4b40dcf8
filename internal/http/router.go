package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jobs-api/internal/obs"
	"jobs-api/internal/service"
)

// RouterConfig reúne lo que el router necesita además de los handlers.
type RouterConfig struct {
	Tokens         *service.TokenService
	AuthLimiter    service.RateLimiter
	AllowedOrigins []string
	MaxBodyBytes   int64
}

// NewRouter configura el router de Gin con middlewares y rutas bajo /v1.
func NewRouter(
	logger *zap.Logger,
	cfg RouterConfig,
	authH *AuthHandler,
	userH *UserHandler,
	jobH *JobHandler,
) *gin.Engine {
	registerValidators()

	r := gin.New()

	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = 1 << 20
	}
	r.Use(
		zapLoggerMiddleware(logger),
		gin.Recovery(),
		securityHeadersMiddleware(),
		corsMiddleware(cfg.AllowedOrigins),
		jsonContentTypeMiddleware(),
		maxBodyBytesMiddleware(maxBody),
		obs.Instrument(),
	)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(obs.Handler()))

	v1 := r.Group("/v1")

	auth := v1.Group("/auth")
	auth.Use(rateLimitMiddleware(cfg.AuthLimiter))
	auth.POST("/sign-in", authH.SignIn)
	auth.GET("/sign-out", AccessGuard(cfg.Tokens), authH.SignOut)
	auth.GET("/refresh", RefreshGuard(cfg.Tokens), authH.Refresh)

	users := v1.Group("/users")
	users.POST("", rateLimitMiddleware(cfg.AuthLimiter), userH.CreateUser)
	users.GET("", AccessGuard(cfg.Tokens), userH.ListUsers)
	users.GET("/:id", AccessGuard(cfg.Tokens), userH.GetUser)
	users.PATCH("/:id", AccessGuard(cfg.Tokens), userH.UpdateUser)
	users.DELETE("/:id", AccessGuard(cfg.Tokens), userH.DeleteUser)

	jobs := v1.Group("/jobs", AccessGuard(cfg.Tokens))
	jobs.POST("", jobH.CreateJob)
	jobs.GET("", jobH.ListJobs)
	jobs.GET("/:id", jobH.GetJob)
	jobs.PATCH("/:id", jobH.UpdateJob)
	jobs.DELETE("/:id", jobH.DeleteJob)

	return r
}
