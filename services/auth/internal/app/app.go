package app

import (
	"time"

	"github.com/PritamDhobale/CreatorHub/pkg/config"
	"github.com/PritamDhobale/CreatorHub/pkg/httpserver"
	"github.com/PritamDhobale/CreatorHub/pkg/jwt"
	"github.com/PritamDhobale/CreatorHub/pkg/logger"
	"github.com/PritamDhobale/CreatorHub/pkg/middleware"
	"github.com/PritamDhobale/CreatorHub/pkg/s3"
	authHTTP "github.com/PritamDhobale/CreatorHub/services/auth/internal/controller/http"
	"github.com/PritamDhobale/CreatorHub/services/auth/internal/repo/persistent"
	"github.com/PritamDhobale/CreatorHub/services/auth/internal/usecase"

	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, s3Client *s3.Client, redisClient *redis.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)

	userRepo := persistent.NewUserRepository(db)
	authUseCase := usecase.NewAuthUseCase(userRepo, jwtService, s3Client, log)
	authHandler := authHTTP.NewAuthHandler(authUseCase)

	r := httpserver.NewRouter()
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	{
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)
	}

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(jwtService))
	protected.Use(middleware.RateLimitMiddleware(redisClient, 100, time.Minute))
	{
		protected.GET("/me", authHandler.Me)
		protected.POST("/avatar", authHandler.UploadAvatar)
		protected.GET("/users/role/:role", authHandler.ListByRole)
	}

	adminOnly := protected.Group("")
	adminOnly.Use(middleware.RequireRole("admin"))
	{
		adminOnly.PUT("/users/:id/active", authHandler.SetActive)
	}

	httpserver.Serve(r, cfg.ServerPort, "Auth service", log, db, redisClient, nil)
}
