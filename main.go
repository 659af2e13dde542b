package main

import (
	controller "golang-medtrackbackend/controllers"
	middleware "golang-medtrackbackend/middleware"
	routes "golang-medtrackbackend/routes"
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
}

func main() {
	port := os.Getenv("PORT")

	if port == "" {
		port = "8080"
	}

	router := gin.New()
	router.Use(gin.Logger())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "token")
	router.Use(cors.New(corsConfig))

	// Public routes
	publicRoutes := router.Group("/")
	{
		publicRoutes.POST("/signup", controller.SignUp())
		publicRoutes.POST("/login", controller.Login())
		publicRoutes.POST("/refresh", controller.RefreshToken()) // Refresh token doesn't need auth middleware
	}

	// Private routes
	privateRoutes := router.Group("/")
	privateRoutes.Use(middleware.Authentication())
	{
		routes.UserRoutes(privateRoutes)
		routes.MedicationRoutes(privateRoutes)
		routes.MedicationLogRoutes(privateRoutes)
	}

	router.Run(":" + port)
}
