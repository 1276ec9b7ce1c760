package routes

import (
	"log"

	"choir-management-backend/internal/api/handlers"
	"choir-management-backend/internal/api/middleware"
	"choir-management-backend/internal/auth"
	"choir-management-backend/internal/config"
	"choir-management-backend/internal/repository"
	"choir-management-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	memberRepo := repository.NewMemberRepository(db)
	songRepo := repository.NewSongRepository(db)
	shiftRepo := repository.NewLeadershipShiftRepository(db)
	performanceRepo := repository.NewPerformanceRepository(db)
	rehearsalRepo := repository.NewRehearsalRepository(db)

	// Initialize services
	memberService := service.NewMemberService(memberRepo, validator)
	songService := service.NewSongService(songRepo, validator)
	shiftService := service.NewLeadershipShiftService(shiftRepo, memberRepo, validator)
	performanceService := service.NewPerformanceService(performanceRepo, shiftService, validator)
	rehearsalService := service.NewRehearsalService(rehearsalRepo, performanceRepo, validator)
	promotionService := service.NewPromotionService(rehearsalRepo, performanceRepo)

	// Initialize auth middleware with the capability roles config
	rolesConfig, err := auth.LoadRolesConfig(cfg.RolesConfigPath)
	if err != nil {
		log.Printf("Warning: Failed to load roles config, using defaults: %v", err)
		rolesConfig = nil
	}
	authMiddleware := auth.NewMiddleware(cfg.JWTSecret, rolesConfig)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	memberHandler := handlers.NewMemberHandler(memberService)
	songHandler := handlers.NewSongHandler(songService)
	shiftHandler := handlers.NewLeadershipShiftHandler(shiftService)
	performanceHandler := handlers.NewPerformanceHandler(performanceService)
	rehearsalHandler := handlers.NewRehearsalHandler(rehearsalService, promotionService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())

	{
		// Member routes
		members := v1.Group("/members")
		{
			members.GET("", memberHandler.ListMembers)
			members.POST("", memberHandler.CreateMember)
			members.GET("/:id", memberHandler.GetMember)
			members.PUT("/:id", memberHandler.UpdateMember)
			members.DELETE("/:id", memberHandler.DeleteMember)
		}

		// Song catalog routes
		songs := v1.Group("/songs")
		{
			songs.GET("", songHandler.ListSongs)
			songs.POST("", songHandler.CreateSong)
			songs.GET("/:id", songHandler.GetSong)
			songs.PUT("/:id", songHandler.UpdateSong)
			songs.DELETE("/:id", songHandler.DeleteSong)
		}

		// Leadership shift routes. Static paths before the :id wildcard.
		shifts := v1.Group("/leadership-shifts")
		{
			shifts.GET("", shiftHandler.ListShifts)
			shifts.GET("/current", shiftHandler.GetCurrentShift)
			shifts.GET("/upcoming", shiftHandler.GetUpcomingShifts)
			shifts.GET("/validity", shiftHandler.GetShiftValidity)
			shifts.GET("/:id", shiftHandler.GetShift)
			shifts.POST("", authMiddleware.RequireCapability(auth.CapabilityManageShifts), shiftHandler.CreateShift)
			shifts.PUT("/:id", authMiddleware.RequireCapability(auth.CapabilityManageShifts), shiftHandler.UpdateShift)
			shifts.DELETE("/:id", authMiddleware.RequireCapability(auth.CapabilityManageShifts), shiftHandler.DeleteShift)
		}

		// Performance routes
		performances := v1.Group("/performances")
		{
			performances.GET("", performanceHandler.ListPerformances)
			performances.GET("/:id", performanceHandler.GetPerformance)
			performances.POST("", authMiddleware.RequireCapability(auth.CapabilityManagePerformances), performanceHandler.CreatePerformance)
			performances.PUT("/:id", authMiddleware.RequireCapability(auth.CapabilityManagePerformances), performanceHandler.UpdatePerformance)
			performances.DELETE("/:id", authMiddleware.RequireCapability(auth.CapabilityManagePerformances), performanceHandler.DeletePerformance)
			performances.POST("/:id/status", authMiddleware.RequireCapability(auth.CapabilityManagePerformances), performanceHandler.AdvancePerformanceStatus)
			performances.POST("/:id/force-status", authMiddleware.RequireCapability(auth.CapabilityForceStatus), performanceHandler.ForcePerformanceStatus)
		}

		// Rehearsal and promotion routes
		rehearsals := v1.Group("/rehearsals")
		{
			rehearsals.GET("", rehearsalHandler.ListRehearsals)
			rehearsals.GET("/promotable", rehearsalHandler.GetPromotableRehearsals)
			rehearsals.GET("/:id", rehearsalHandler.GetRehearsal)
			rehearsals.POST("", authMiddleware.RequireCapability(auth.CapabilityManageRehearsals), rehearsalHandler.CreateRehearsal)
			rehearsals.PUT("/:id", authMiddleware.RequireCapability(auth.CapabilityManageRehearsals), rehearsalHandler.UpdateRehearsal)
			rehearsals.DELETE("/:id", authMiddleware.RequireCapability(auth.CapabilityManageRehearsals), rehearsalHandler.DeleteRehearsal)
			rehearsals.POST("/:id/complete", authMiddleware.RequireCapability(auth.CapabilityManageRehearsals), rehearsalHandler.CompleteRehearsal)
			rehearsals.POST("/:id/promote", authMiddleware.RequireCapability(auth.CapabilityPromote), rehearsalHandler.PromoteRehearsal)
			rehearsals.POST("/:id/replace", authMiddleware.RequireCapability(auth.CapabilityPromote), rehearsalHandler.ReplacePerformanceSongs)
			rehearsals.POST("/promote-bulk", authMiddleware.RequireCapability(auth.CapabilityPromote), rehearsalHandler.BulkPromoteRehearsals)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
