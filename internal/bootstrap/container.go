package bootstrap

import (
	"log"

	"tile-visualizer-be/internal/config"
	"tile-visualizer-be/internal/controller"
	"tile-visualizer-be/internal/pkg/logger"
	"tile-visualizer-be/internal/repository/unitofwork"
	"tile-visualizer-be/internal/service"
	"tile-visualizer-be/pkg/imagegen"
	"tile-visualizer-be/pkg/storage"

	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController           controller.IChatController
	TileController           controller.ITileController
	HomeController           controller.IHomeController
	GeneratedImageController controller.IGeneratedImageController
	UploadController         controller.IUploadController

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. External Collaborators
	objectStore, err := storage.NewMinioStore(
		cfg.Storage.Endpoint,
		cfg.Storage.AccessKey,
		cfg.Storage.SecretKey,
		cfg.Storage.PublicURL,
		cfg.Storage.UseSSL,
		service.UploadBuckets,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize object storage: %v", err)
	}

	generator, err := imagegen.NewClient(cfg.Generation.BaseURL)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize generation client: %v", err)
	}

	// 3. Services
	chatService := service.NewChatService(uowFactory)
	tileService := service.NewTileService(uowFactory)
	homeService := service.NewHomeService(uowFactory)
	generatedImageService := service.NewGeneratedImageService(uowFactory, generator)
	uploadService := service.NewUploadService(objectStore)

	// 4. Controllers
	return &Container{
		ChatController:           controller.NewChatController(chatService),
		TileController:           controller.NewTileController(tileService),
		HomeController:           controller.NewHomeController(homeService),
		GeneratedImageController: controller.NewGeneratedImageController(generatedImageService),
		UploadController:         controller.NewUploadController(uploadService),
		Logger:                   sysLogger,
	}
}
