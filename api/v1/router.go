package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/reviewhub-api/middleware"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	// Auth endpoints
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/signup", Signup)
		authGroup.POST("/token", GetToken)
	}

	// Catalog endpoints - reads public, writes behind auth (admin
	// authority enforced by the policy layer)
	categoryGroup := router.Group("/categories")
	{
		categoryGroup.GET("", middleware.OptionalAuth(), ListCategories)
		categoryGroup.GET("/:slug", middleware.OptionalAuth(), GetCategory)
		categoryGroup.POST("", middleware.RequireAuth(), CreateCategory)
		categoryGroup.DELETE("/:slug", middleware.RequireAuth(), DeleteCategory)
	}

	genreGroup := router.Group("/genres")
	{
		genreGroup.GET("", middleware.OptionalAuth(), ListGenres)
		genreGroup.GET("/:slug", middleware.OptionalAuth(), GetGenre)
		genreGroup.POST("", middleware.RequireAuth(), CreateGenre)
		genreGroup.DELETE("/:slug", middleware.RequireAuth(), DeleteGenre)
	}

	titleGroup := router.Group("/titles")
	{
		titleGroup.GET("", middleware.OptionalAuth(), ListTitles)
		titleGroup.GET("/:titleID", middleware.OptionalAuth(), GetTitle)
		titleGroup.POST("", middleware.RequireAuth(), CreateTitle)
		titleGroup.PATCH("/:titleID", middleware.RequireAuth(), UpdateTitle)
		titleGroup.DELETE("/:titleID", middleware.RequireAuth(), DeleteTitle)
	}

	// Review and comment endpoints - reads public, ownership checks in
	// the services
	reviewGroup := titleGroup.Group("/:titleID/reviews")
	{
		reviewGroup.GET("", middleware.OptionalAuth(), ListReviews)
		reviewGroup.GET("/:reviewID", middleware.OptionalAuth(), GetReview)
		reviewGroup.POST("", middleware.RequireAuth(), CreateReview)
		reviewGroup.PATCH("/:reviewID", middleware.RequireAuth(), UpdateReview)
		reviewGroup.DELETE("/:reviewID", middleware.RequireAuth(), DeleteReview)
	}

	commentGroup := reviewGroup.Group("/:reviewID/comments")
	{
		commentGroup.GET("", middleware.OptionalAuth(), ListComments)
		commentGroup.GET("/:commentID", middleware.OptionalAuth(), GetComment)
		commentGroup.POST("", middleware.RequireAuth(), CreateComment)
		commentGroup.PATCH("/:commentID", middleware.RequireAuth(), UpdateComment)
		commentGroup.DELETE("/:commentID", middleware.RequireAuth(), DeleteComment)
	}

	// User management - "me" resolves to the requester's own record and
	// needs authentication only; everything else needs admin authority
	// (checked in the detail handlers, since "me" shares their path)
	userGroup := router.Group("/users")
	userGroup.Use(middleware.RequireAuth())
	{
		userGroup.GET("", middleware.RequireAdmin(), ListUsers)
		userGroup.POST("", middleware.RequireAdmin(), CreateUser)
		userGroup.GET("/:username", GetUser)
		userGroup.PATCH("/:username", UpdateUser)
		userGroup.DELETE("/:username", middleware.RequireAdmin(), DeleteUser)
	}
}
