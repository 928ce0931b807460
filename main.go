package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	v1 "github.com/reviewhub-api/api/v1"
	"github.com/reviewhub-api/config"
	"github.com/reviewhub-api/database"
	"github.com/reviewhub-api/logger"
)

func main() {
	config.LoadEnv()
	logger.InitLogger(logger.ParseLevel(config.GetEnv("LOG_LEVEL", "info")))

	gin.SetMode(config.GetEnv("GIN_MODE", gin.ReleaseMode))

	database.Initialize()

	router := gin.Default()

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	v1.RegisterRoutes(router.Group("/api/v1"))

	port := config.GetEnv("PORT", "8080")
	logger.Infof("reviewhub-api starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logger.Errorf("failed to start server: %v", err)
	}
}
