package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"fintrack/api"
	"fintrack/config"
	_ "fintrack/docs"
	"fintrack/middleware"
	"fintrack/validation"
)

// Handlers bundles the wired handlers the router mounts.
type Handlers struct {
	Auth     *api.AuthHandler
	Income   *api.IncomeHandler
	Category *api.CategoryHandler
	User     *api.UserHandler
	Export   *api.ExportHandler
}

// Setup builds the engine: middleware stack, guard pipelines, routes.
func Setup(cfg *config.Config, h Handlers) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(requestLogger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error().Interface("panic", recovered).Str("path", c.Request.URL.Path).Msg("panic recovered")
		c.AbortWithStatusJSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal Server Error"})
	}))
	r.Use(corsMiddleware(cfg))

	// Auth routes (no session required).
	auth := r.Group("/api/auth")
	{
		auth.POST("/signup",
			middleware.LoginRateLimit(10, time.Minute),
			middleware.Validate(validation.Signup()...),
			h.Auth.Signup)
		auth.POST("/login",
			middleware.LoginRateLimit(10, time.Minute),
			middleware.Validate(validation.Login()...),
			h.Auth.Login)
		auth.POST("/logout", h.Auth.Logout)
	}

	// Everything below requires the session cookie.
	authorized := r.Group("/api")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.GET("/auth/me", h.Auth.Me)

		incomes := authorized.Group("/incomes")
		{
			incomes.POST("", middleware.Validate(validation.IncomeCreate()...), h.Income.Create)
			incomes.GET("", middleware.Validate(validation.IncomeQuery()...), h.Income.List)
			incomes.GET("/:id", middleware.Validate(validation.IDParam("id")), h.Income.Get)
			incomes.PUT("/:id", middleware.Validate(validation.IncomeUpdate()...), h.Income.Update)
			incomes.DELETE("/:id", middleware.Validate(validation.IDParam("id")), h.Income.Delete)
		}

		categories := authorized.Group("/categories")
		{
			categories.GET("", h.Category.List)
			categories.POST("", middleware.Validate(validation.CategoryCreate()...), h.Category.Create)
			categories.PUT("/:id", middleware.Validate(validation.CategoryUpdate()...), h.Category.Update)
			categories.DELETE("/:id", middleware.Validate(validation.IDParam("id")), h.Category.Delete)
		}

		user := authorized.Group("/user")
		{
			user.GET("/profile", h.User.GetProfile)
			user.PUT("/profile", middleware.Validate(validation.ProfileUpdate()...), h.User.UpdateProfile)
			user.PATCH("/profile/password", middleware.Validate(validation.PasswordChange()...), h.User.ChangePassword)
		}

		export := authorized.Group("/export")
		{
			export.GET("/csv", h.Export.CSV)
			export.GET("/json", h.Export.JSON)
			export.GET("/xlsx", h.Export.XLSX)
		}
	}

	// Swagger UI.
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health checks, with and without the API prefix for proxy setups.
	health := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
	r.GET("/health", health)
	r.GET("/api/health", health)

	return r
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Str("ip", c.ClientIP()).
			Msg("request")
	}
}

// corsMiddleware echoes the request origin so the browser accepts the
// credentialed session cookie; a wildcard origin cannot be combined with
// credentials. An explicit cors_origin pins it instead.
func corsMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := cfg.Server.CORSOrigin
		if origin == "" {
			origin = c.GetHeader("Origin")
		}
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Vary", "Origin")
		}
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
