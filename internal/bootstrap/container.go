package bootstrap

import (
	"log"

	"go.mongodb.org/mongo-driver/mongo"

	"typing-training-be/internal/config"
	"typing-training-be/internal/controller"
	"typing-training-be/internal/pkg/logger"
	"typing-training-be/internal/repository/contract"
	"typing-training-be/internal/repository/implementation"
	"typing-training-be/internal/service"
)

type Container struct {
	// Controllers
	StatusController  controller.IStatusController
	ContentController controller.IContentController
	SessionController controller.ISessionController
	UserController    controller.IUserController

	// Exposed for main.go to flush on shutdown
	Logger logger.ILogger
}

// NewContainer wires repositories, services and controllers. db may be nil
// when the store is unconfigured; the API then serves configuration errors
// and the status probe reports the store as unavailable.
func NewContainer(db *mongo.Database, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	var contentRepo contract.ContentRepository
	var sessionRepo contract.SessionRepository
	var userRepo contract.UserRepository
	if db != nil {
		contentRepo = implementation.NewContentRepository(db)
		sessionRepo = implementation.NewSessionRepository(db)
		userRepo = implementation.NewUserRepository(db)
	} else {
		log.Println("[WARN] Store handle is nil, data endpoints will report configuration errors")
	}

	contentService := service.NewContentService(contentRepo, sysLogger)
	sessionService := service.NewSessionService(contentRepo, sessionRepo, userRepo, sysLogger)
	userService := service.NewUserService(userRepo)
	statusService := service.NewStatusService(db, cfg, sysLogger)

	return &Container{
		StatusController:  controller.NewStatusController(statusService),
		ContentController: controller.NewContentController(contentService),
		SessionController: controller.NewSessionController(sessionService),
		UserController:    controller.NewUserController(userService),

		Logger: sysLogger,
	}
}
