package app

import (
	"time"

	"github.com/PritamDhobale/CreatorHub/pkg/config"
	"github.com/PritamDhobale/CreatorHub/pkg/httpserver"
	"github.com/PritamDhobale/CreatorHub/pkg/jwt"
	"github.com/PritamDhobale/CreatorHub/pkg/logger"
	"github.com/PritamDhobale/CreatorHub/pkg/middleware"
	"github.com/PritamDhobale/CreatorHub/pkg/queue"
	"github.com/PritamDhobale/CreatorHub/pkg/s3"
	workflowHTTP "github.com/PritamDhobale/CreatorHub/services/workflow/internal/controller/http"
	"github.com/PritamDhobale/CreatorHub/services/workflow/internal/repo/persistent"
	"github.com/PritamDhobale/CreatorHub/services/workflow/internal/usecase"

	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, s3Client *s3.Client, queueClient *queue.Client, redisClient *redis.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)

	// Initialize repositories
	clientRepo := persistent.NewClientRepository(db)
	productionRepo := persistent.NewProductionRepository(db)

	// Initialize use cases
	adminUseCase := usecase.NewAdminUseCase(clientRepo, queueClient, log)
	productionUseCase := usecase.NewProductionUseCase(productionRepo, log)
	uploadUseCase := usecase.NewUploadUseCase(productionRepo, s3Client, redisClient, queueClient, log)
	reviewUseCase := usecase.NewReviewUseCase(productionRepo, redisClient, queueClient, log)
	statsUseCase := usecase.NewStatsUseCase(productionRepo, redisClient, log)

	// Initialize HTTP handlers
	adminHandler := workflowHTTP.NewAdminHandler(adminUseCase, log)
	productionHandler := workflowHTTP.NewProductionHandler(productionUseCase, uploadUseCase, log)
	reviewHandler := workflowHTTP.NewReviewHandler(reviewUseCase, statsUseCase, log)

	r := httpserver.NewRouter()
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(jwtService))
	api.Use(middleware.RateLimitMiddleware(redisClient, 100, time.Minute))

	admin := api.Group("/admin")
	admin.Use(middleware.RequireRole("admin"))
	{
		admin.POST("/clients", adminHandler.CreateClient)
		admin.GET("/clients", adminHandler.ListClients)
		admin.GET("/clients/:id", adminHandler.GetClient)
		admin.PUT("/clients/:id/status", adminHandler.UpdateClientStatus)
		admin.POST("/ideators", adminHandler.CreateIdeator)
		admin.GET("/ideators", adminHandler.ListIdeators)
		admin.GET("/ideators/:ideator_id", adminHandler.GetIdeator)
		admin.POST("/clients/:id/ideators/:ideator_id", adminHandler.AssignIdeator)
		admin.DELETE("/clients/:id/ideators/:ideator_id", adminHandler.UnassignIdeator)
		admin.POST("/shoots", adminHandler.CreateShoot)
		admin.GET("/shoots", adminHandler.ListShoots)
	}

	// Tree reads and the upload selection are shared by every production role
	{
		api.GET("/clients", productionHandler.ListClientTrees)
		api.GET("/clients/:id", productionHandler.GetClientTree)
		api.GET("/set-types", productionHandler.ListSetTypes)
		api.GET("/selection", productionHandler.GetSelection)
		api.PUT("/selection", productionHandler.Select)
		api.DELETE("/selection", productionHandler.ClearSelection)
		api.GET("/stats/status-counts", reviewHandler.StatusCounts)
	}

	planning := api.Group("")
	planning.Use(middleware.RequireRole("admin", "ideator"))
	{
		planning.POST("/clients/:id/days", productionHandler.AddDay)
		planning.POST("/days/:day_id/sets", productionHandler.AddSet)
	}

	filming := api.Group("")
	filming.Use(middleware.RequireRole("admin", "filmer"))
	{
		filming.POST("/clients/:id/days/:day_id/sets/:set_id/videos/:slot_id/footage", productionHandler.UploadRawFootage)
	}

	editing := api.Group("")
	editing.Use(middleware.RequireRole("admin", "editor"))
	{
		editing.POST("/clients/:id/days/:day_id/sets/:set_id/videos/:slot_id/edit", productionHandler.UploadEditedVideo)
	}

	review := api.Group("/review")
	review.Use(middleware.RequireRole("admin", "revisions", "editor"))
	{
		review.GET("/videos", reviewHandler.ListVideosForReview)
		review.GET("/videos/:slot_id/comments", reviewHandler.ListComments)
		review.POST("/videos/:slot_id/comments", reviewHandler.AddComment)
		review.POST("/videos/:slot_id/comments/:comment_id/replies", reviewHandler.ReplyToComment)
		review.POST("/videos/:slot_id/revision", reviewHandler.SendForRevision)
		review.POST("/videos/:slot_id/approve", reviewHandler.ApproveVideo)
	}

	httpserver.Serve(r, cfg.ServerPort, "Workflow service", log, db, redisClient, queueClient)
}
