// internal/server/router.go
package server

import (
	"net/http"
	"time"

	"sampada/internal/auth"
	"sampada/internal/config"
	"sampada/internal/handler"
	"sampada/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires every HTTP route of the API.
func NewRouter(cfg config.Config, tokens *auth.TokenService) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	// The web client sends its session cookie cross-origin.
	if len(cfg.AllowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.AllowedOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	sessions := handler.NewSessionHandler(tokens)
	creditCards := handler.NewCreditCardsHandler()
	authMiddleware := middleware.NewAuthMiddleware(tokens)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/login", sessions.Login)
		v1.GET("/credit-cards", authMiddleware.Identify(), creditCards.GetCreditCards)
	}

	return router
}
