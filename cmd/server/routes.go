package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bedrijvengids.backend/internal/interfaces/http/handlers"
	"bedrijvengids.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler     *handlers.AuthHandler
	claimHandler    *handlers.ClaimHandler
	favoriteHandler *handlers.FavoriteHandler
	reviewHandler   *handlers.ReviewHandler
	facilityHandler *handlers.FacilityHandler
	adminHandler    *handlers.AdminHandler
	authMiddleware  gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/verify-email", d.authHandler.VerifyEmail)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/refresh", d.authHandler.Refresh)
			auth.GET("/me", d.authMiddleware, d.authHandler.Me)
		}

		// Facility directory routes (public)
		facilities := v1.Group("/facilities")
		{
			facilities.GET("", d.facilityHandler.List)
			facilities.GET("/:slug", d.facilityHandler.Get)
			facilities.GET("/:slug/reviews", d.facilityHandler.Reviews)
		}

		// Review submission (public, moderated before publication)
		reviews := v1.Group("/reviews")
		{
			reviews.POST("", d.reviewHandler.Submit)
		}

		// Claim routes (protected)
		claims := v1.Group("/claims")
		claims.Use(d.authMiddleware)
		{
			claims.POST("", middleware.IdempotencyMiddleware(), d.claimHandler.Create)
			claims.GET("", d.claimHandler.List)
			claims.GET("/:id", d.claimHandler.Get)
			claims.POST("/:id/verify", d.claimHandler.Verify)
		}

		// Favorite routes (protected)
		favorites := v1.Group("/favorites")
		favorites.Use(d.authMiddleware)
		{
			favorites.POST("", middleware.IdempotencyMiddleware(), d.favoriteHandler.Add)
			favorites.DELETE("", d.favoriteHandler.Remove)
			favorites.GET("", d.favoriteHandler.List)
		}

		// Admin moderation routes (protected)
		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, middleware.RequireAdmin())
		{
			admin.PUT("/claims/:id/status", d.adminHandler.UpdateClaimStatus)
			admin.PUT("/reviews/:id/status", d.adminHandler.UpdateReviewStatus)
		}
	}
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID, Idempotency-Key")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "bedrijvengids-backend",
			"version": "0.1.0",
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
