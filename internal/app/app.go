package app

import (
	"fmt"
	"net/http"

	"github.com/Vedant005/SkillBridge-Backend/internal/clients"
	"github.com/Vedant005/SkillBridge-Backend/internal/config"
	"github.com/Vedant005/SkillBridge-Backend/internal/handlers"
	"github.com/Vedant005/SkillBridge-Backend/internal/logger"
	"github.com/Vedant005/SkillBridge-Backend/internal/middleware"
	"github.com/Vedant005/SkillBridge-Backend/internal/models"
	"github.com/Vedant005/SkillBridge-Backend/internal/repositories"
	"github.com/Vedant005/SkillBridge-Backend/internal/routes"
	"github.com/Vedant005/SkillBridge-Backend/internal/services"
	"github.com/Vedant005/SkillBridge-Backend/internal/storage"
	"github.com/Vedant005/SkillBridge-Backend/internal/validator"
	"github.com/Vedant005/SkillBridge-Backend/pkg/apperrors"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file found, relying on environment")
	}

	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := gormDB.AutoMigrate(&models.Client{}, &models.Freelancer{}, &models.Gig{}); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	router := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := router.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter wires storage, repositories, services and handlers into a
// ready gin engine. Tests call it directly against their own database.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:      cfg.Storage.Type,
		BasePath:  cfg.Storage.BasePath,
		BaseURL:   cfg.Storage.BaseURL,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Endpoint:  cfg.Storage.Endpoint,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	recommender := clients.NewRecommenderClient(cfg.Services.RecommenderURL)
	generator := clients.NewInferenceClient(cfg.Services.InferenceURL, cfg.Services.InferenceToken)

	appHandlers := initializeHandlers(cfg, gormDB, storageInstance, recommender, generator)

	router := initializeGinRouter(cfg)

	authMW := middleware.AuthMiddleware(cfg.JWT.AccessSecret)
	routes.SetupRoutes(router, appHandlers, authMW)

	return router
}

func initializeHandlers(
	cfg *config.Config,
	gormDB *gorm.DB,
	storageInstance storage.Storage,
	recommender services.Recommender,
	generator services.TextGenerator,
) *handlers.AppHandlers {
	clientRepo := repositories.NewClientRepository(gormDB)
	freelancerRepo := repositories.NewFreelancerRepository(gormDB)
	gigRepo := repositories.NewGigRepository(gormDB)

	jwtSettings := services.JWTSettings{
		AccessSecret:    cfg.JWT.AccessSecret,
		AccessTTLMin:    cfg.JWT.AccessTTLMin,
		RefreshSecret:   cfg.JWT.RefreshSecret,
		RefreshTTLHours: cfg.JWT.RefreshTTLHours,
	}

	clientAuth := services.NewAuthService(services.NewClientAccountStore(clientRepo), jwtSettings)
	freelancerAuth := services.NewAuthService(services.NewFreelancerAccountStore(freelancerRepo), jwtSettings)

	clientService := services.NewClientService(clientRepo, gigRepo)
	freelancerService := services.NewFreelancerService(freelancerRepo, storageInstance)
	gigService := services.NewGigService(gigRepo, clientRepo, recommender, generator)

	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		ClientHandler:     handlers.NewClientHandler(baseHandler, clientService, clientAuth),
		FreelancerHandler: handlers.NewFreelancerHandler(baseHandler, freelancerService, freelancerAuth),
		GigHandler:        handlers.NewGigHandler(baseHandler, gigService),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("Panic recovered", "panic", recovered, "path", c.Request.URL.Path)
		c.AbortWithStatusJSON(http.StatusInternalServerError, apperrors.ErrorResponse{
			StatusCode: http.StatusInternalServerError,
			Message:    "Internal server error",
			Success:    false,
		})
	}))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORS.AllowedOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	return router
}
