package main

import (
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/Samuel-pydev/Spill-Zone-bck/auth"
	"github.com/Samuel-pydev/Spill-Zone-bck/config"
	"github.com/Samuel-pydev/Spill-Zone-bck/database"
	"github.com/Samuel-pydev/Spill-Zone-bck/handlers"
	"github.com/Samuel-pydev/Spill-Zone-bck/logger"
	"github.com/Samuel-pydev/Spill-Zone-bck/repositories"
	"github.com/Samuel-pydev/Spill-Zone-bck/routes"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}
	logger.InitLogger(settings.LogLevel)

	db, err := database.Connect(settings.DatabaseURL)
	if err != nil {
		logrus.Fatal("Failed to connect to database: ", err)
	}
	if err := database.Migrate(db); err != nil {
		logrus.Fatal("Failed to run migrations: ", err)
	}

	userRepo := repositories.NewUserRepository(db)
	postRepo := repositories.NewPostRepository(db)
	messageRepo := repositories.NewMessageRepository(db)
	reactionRepo := repositories.NewReactionRepository(db)

	tokens := auth.NewTokenService([]byte(settings.SecretKey), settings.TokenTTL)

	authHandler := handlers.NewAuthHandler(userRepo, tokens)
	feedHandler := handlers.NewFeedHandler(postRepo, reactionRepo)
	messageHandler := handlers.NewMessageHandler(messageRepo, userRepo)
	reactionHandler := handlers.NewReactionHandler(reactionRepo, settings.AllowedEmojis)
	systemHandler := handlers.NewSystemHandler()

	handler := routes.SetupRoutes(
		authHandler, feedHandler, messageHandler, reactionHandler, systemHandler,
		tokens, userRepo, settings.AllowedOrigins,
	)

	addr := fmt.Sprintf(":%d", settings.Port)
	logrus.Infof("Server running on port %d", settings.Port)
	logrus.Fatal(http.ListenAndServe(addr, handler))
}
