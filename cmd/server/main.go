package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"healthcare-backend/internal/config"
	"healthcare-backend/internal/database"
	"healthcare-backend/internal/handler"
	"healthcare-backend/internal/middleware"
	"healthcare-backend/internal/repository"
	"healthcare-backend/internal/service"
	"healthcare-backend/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()
	log.Println("Configuration loaded successfully")

	// 2. Initialize JWT utilities with config
	utils.InitJWT(
		cfg.JWT.AccessSecret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)

	// 3. Initialize database connection and schema
	db := database.Connect(cfg)
	database.Migrate(db)

	// 4. Initialize repositories
	userRepo := repository.NewUserRepo(db)
	patientRepo := repository.NewPatientRepo(db)
	doctorRepo := repository.NewDoctorRepo(db)
	mappingRepo := repository.NewMappingRepo(db)
	auditRepo := repository.NewAuditRepo(db)

	// 5. Initialize services
	authService := service.NewAuthService(userRepo, auditRepo)
	patientService := service.NewPatientService(patientRepo, auditRepo)
	doctorService := service.NewDoctorService(doctorRepo, auditRepo)
	mappingService := service.NewMappingService(mappingRepo, patientRepo, doctorRepo, auditRepo)
	dashboardService := service.NewDashboardService(patientRepo, doctorRepo, mappingRepo)

	// 6. Setup Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// 7. Setup Gin router
	r := gin.Default()

	// Apply CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// 8. Register handlers
	authHandler := handler.NewAuthHandler(authService)
	patientHandler := handler.NewPatientHandler(patientService)
	doctorHandler := handler.NewDoctorHandler(doctorService)
	mappingHandler := handler.NewMappingHandler(mappingService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	// 9. Define routes
	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{
			"status":  "healthy",
			"service": "healthcare-backend",
		})
	})

	// Auth routes (public)
	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
		auth.POST("/logout", authHandler.Logout)
	}

	// Patient routes (authenticated, owner-scoped)
	patients := r.Group("/patients")
	patients.Use(middleware.AuthMiddleware())
	{
		patients.GET("", patientHandler.ListPatients)
		patients.POST("", patientHandler.CreatePatient)
		patients.GET("/:id", patientHandler.GetPatient)
		patients.PUT("/:id", patientHandler.UpdatePatient)
		patients.PATCH("/:id", patientHandler.UpdatePatient)
		patients.DELETE("/:id", patientHandler.DeletePatient)
	}

	// Doctor routes (authenticated, global directory)
	doctors := r.Group("/doctors")
	doctors.Use(middleware.AuthMiddleware())
	{
		doctors.GET("", doctorHandler.ListDoctors)
		doctors.POST("", doctorHandler.CreateDoctor)
		doctors.GET("/:id", doctorHandler.GetDoctor)
		doctors.PUT("/:id", doctorHandler.UpdateDoctor)
		doctors.PATCH("/:id", doctorHandler.UpdateDoctor)
		doctors.DELETE("/:id", doctorHandler.DeleteDoctor)
	}

	// Mapping routes (authenticated)
	mappings := r.Group("/mappings")
	mappings.Use(middleware.AuthMiddleware())
	{
		mappings.GET("", mappingHandler.ListMappings)
		mappings.POST("", mappingHandler.CreateMapping)
		mappings.GET("/:id", mappingHandler.GetPatientDoctors) // :id is a patient ID
		mappings.DELETE("/:id", mappingHandler.RemoveMapping)  // :id is a mapping ID
	}

	// Dashboard routes (authenticated)
	dash := r.Group("/dashboard")
	dash.Use(middleware.AuthMiddleware())
	{
		dash.GET("/stats", dashboardHandler.GetStats)
	}

	// 10. Start server with graceful shutdown
	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")
	log.Println("Server exited")
}
