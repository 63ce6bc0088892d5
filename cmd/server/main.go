package main

import (
	"log"

	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/vpeters/high5-api/internal/config"
	"github.com/vpeters/high5-api/internal/constants"
	"github.com/vpeters/high5-api/internal/database"
	"github.com/vpeters/high5-api/internal/handlers"
	"github.com/vpeters/high5-api/internal/middleware"
	"github.com/vpeters/high5-api/internal/notify"
	"github.com/vpeters/high5-api/internal/repository"
	"github.com/vpeters/high5-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Gin router
	r := gin.Default()

	// Setup session middleware with Redis
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	store, err := redisStore.NewStore(
		10,        // Redis pool size
		"tcp",     // network type
		redisAddr, // Redis address from config
		"",        // username (empty for default user)
		"",        // password (empty = no password)
		[]byte(cfg.SessionSecret), // authentication key
	)
	if err != nil {
		log.Fatalf("Failed to create Redis store: %v", err)
	}
	// Configure session options based on environment
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax (1=Strict, 2=Lax, 3=None)
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Initialize repositories and services
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	teamRepo := repository.NewTeamRepository(db)

	authService := services.NewAuthService(userRepo)
	teamService := services.NewTeamService(teamRepo, userRepo)
	high5Service := services.NewHigh5Service(teamRepo, userRepo, notify.NewLogNotifier())

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	teamHandler := handlers.NewTeamHandler(teamService, authService)
	high5Handler := handlers.NewHigh5Handler(high5Service, authService)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "High5 API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
			auth.DELETE("/me", middleware.RequireAuth(), authHandler.DeleteAccount)
		}

		// Team routes (protected)
		teams := api.Group("/teams")
		teams.Use(middleware.RequireAuth())
		{
			teams.POST("", teamHandler.CreateTeam)
			teams.GET("", teamHandler.ListTeams)
			teams.GET("/:name", middleware.RequireTeamMembership(), teamHandler.GetTeam)
			teams.DELETE("/:name", middleware.RequireTeamMembership(), middleware.RequireTeamAdmin(), teamHandler.DeleteTeam)
			teams.POST("/:name/members", middleware.RequireTeamMembership(), middleware.RequireTeamAdmin(), teamHandler.AddMembers)
			teams.DELETE("/:name/members", middleware.RequireTeamMembership(), middleware.RequireTeamAdmin(), teamHandler.RemoveMembers)
			teams.GET("/:name/me", middleware.RequireTeamMembership(), high5Handler.GetUserPage)
			teams.POST("/:name/high5s", middleware.RequireTeamMembership(), high5Handler.Give)
		}

		// High5 routes (protected, giver-scoped)
		high5s := api.Group("/high5s")
		high5s.Use(middleware.RequireAuth())
		{
			high5s.PATCH("/:id", high5Handler.UpdateMessage)
			high5s.DELETE("/:id", high5Handler.Delete)
		}
	}

	// Start server
	log.Println("Server starting on :" + cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
