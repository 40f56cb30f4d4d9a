package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/krishna-v-thinkwik/invoicesyntaxwithdescription/internal/middleware"
	"github.com/krishna-v-thinkwik/invoicesyntaxwithdescription/internal/order"
)

func NewRouter(orderHandler *order.Handler) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.RequestLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.POST("/calculate_price", orderHandler.CalculatePrice)
	r.POST("/total_price", orderHandler.CalculatePrice) // legacy route

	// Liveness routes
	r.GET("/", func(c *gin.Context) {
		c.String(200, "Pizza Price Calculator API is running!")
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
