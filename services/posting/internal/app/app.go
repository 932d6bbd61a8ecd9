package app

import (
	"time"

	"github.com/PritamDhobale/CreatorHub/pkg/config"
	"github.com/PritamDhobale/CreatorHub/pkg/httpserver"
	"github.com/PritamDhobale/CreatorHub/pkg/jwt"
	"github.com/PritamDhobale/CreatorHub/pkg/logger"
	"github.com/PritamDhobale/CreatorHub/pkg/middleware"
	"github.com/PritamDhobale/CreatorHub/pkg/queue"
	postingHTTP "github.com/PritamDhobale/CreatorHub/services/posting/internal/controller/http"
	"github.com/PritamDhobale/CreatorHub/services/posting/internal/publisher"
	"github.com/PritamDhobale/CreatorHub/services/posting/internal/repo/persistent"
	"github.com/PritamDhobale/CreatorHub/services/posting/internal/usecase"

	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, queueClient *queue.Client, redisClient *redis.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)

	postingRepo := persistent.NewPostingRepository(db, cfg.PostingFolderSize)
	registry := publisher.DefaultRegistry(log)
	postingUseCase := usecase.NewPostingUseCase(postingRepo, registry, queueClient, log)
	postingHandler := postingHTTP.NewPostingHandler(postingUseCase, log)

	r := httpserver.NewRouter()
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(jwtService))
	api.Use(middleware.RateLimitMiddleware(redisClient, 100, time.Minute))

	api.GET("/platforms", postingHandler.ListPlatforms)

	posting := api.Group("")
	posting.Use(middleware.RequireRole("admin", "poster"))
	{
		posting.GET("/folders", postingHandler.ListFolders)
		posting.GET("/folders/:id", postingHandler.GetFolder)
		posting.POST("/videos/:id/post", postingHandler.PostVideo)
	}

	httpserver.Serve(r, cfg.ServerPort, "Posting service", log, db, redisClient, queueClient)
}
