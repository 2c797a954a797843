package main

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	dbadapter "murmur/internal/adapters/database"
	"murmur/internal/adapters/httpapi"
	"murmur/internal/adapters/s3media"
	"murmur/internal/config"
	"murmur/internal/core/message"
	messageapp "murmur/internal/core/message/service"
	"murmur/internal/core/post"
	postapp "murmur/internal/core/post/service"
	"murmur/internal/core/user"
	userapp "murmur/internal/core/user/service"
)

func main() {
	logger := config.NewLogger()
	defer logger.Sync()

	cfg, err := config.Load(logger)
	if err != nil {
		logger.Fatal("Invalid configuration", zap.Error(err))
	}

	db, err := config.OpenDB(cfg.DBDSN)
	if err != nil {
		logger.Fatal("Error connecting to the database", zap.Error(err))
	}
	defer closeDB(db, logger)

	if err := db.AutoMigrate(
		&user.User{},
		&post.Post{},
		&post.Image{},
		&message.Message{},
	); err != nil {
		logger.Fatal("Error during migrations", zap.Error(err))
	}
	logger.Info("Database migrations completed")

	uploader, err := s3media.New(context.Background(), cfg)
	if err != nil {
		logger.Fatal("Error setting up media storage", zap.Error(err))
	}

	userRepo := dbadapter.NewUserRepositoryDatabase(db)
	postRepo := dbadapter.NewPostRepositoryDatabase(db)
	messageRepo := dbadapter.NewMessageRepositoryDatabase(db)

	userSvc := userapp.NewUserService(userRepo, cfg.JWTSecret, logger)
	postSvc := postapp.NewPostService(postRepo, uploader, logger)
	messageSvc := messageapp.NewMessageService(messageRepo, logger)

	r := httpapi.SetupRoutes(userSvc, postSvc, messageSvc, cfg.JWTSecret)

	logger.Info("App is running...", zap.String("port", cfg.AppPort))
	if err := r.Run(":" + cfg.AppPort); err != nil {
		logger.Fatal("Server failed to start", zap.Error(err))
	}
}

func closeDB(db *gorm.DB, logger *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("Error getting raw DB", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing database connection", zap.Error(err))
	}
}
