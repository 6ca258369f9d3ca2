package main

import (
	"log"

	_ "backend/api/swagger" // swagger docs
	"backend/internal/config"
	"backend/internal/database"
	"backend/internal/handler"
	"backend/internal/mailer"
	"backend/internal/middleware"
	"backend/internal/model"
	"backend/internal/repository"
	"backend/internal/service"
	"backend/internal/token"
	"backend/internal/websocket"
	"backend/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// @title           Idea Management API
// @version         1.0
// @description     REST API for submitting and reviewing employee improvement ideas.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	db, err := database.NewConnection(cfg.Database.DSN())
	if err != nil {
		zapLogger.Fatal("Database connection failed", zap.Error(err))
	}
	zapLogger.Info("Connected to PostgreSQL successfully")

	// Set up WebSocket Hub
	wsHub := websocket.NewHub(zapLogger)
	go wsHub.Run()

	tokens := token.NewManager([]byte(cfg.JWT.Secret))

	var mailSender mailer.Sender
	if cfg.SMTP.Configured() {
		mailSender = mailer.NewSMTPSender(cfg.SMTP)
	} else {
		zapLogger.Warn("SMTP not configured, email notifications will only be logged")
		mailSender = mailer.NewLogSender(zapLogger)
	}

	// Set up dependencies (Repository -> Service -> Handler)
	txManager := repository.NewTransactionManager(db)
	userRepo := repository.NewUserRepository(db)
	departmentRepo := repository.NewDepartmentRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	ideaRepo := repository.NewIdeaRepository(db)
	auditRepo := repository.NewAuditRepository(db)

	authService := service.NewAuthService(userRepo, employeeRepo, txManager, tokens, mailSender, cfg.Notify, zapLogger)
	departmentService := service.NewDepartmentService(departmentRepo, employeeRepo, ideaRepo, userRepo, auditRepo, txManager, zapLogger)
	employeeService := service.NewEmployeeService(employeeRepo, userRepo, ideaRepo, auditRepo, txManager, zapLogger)
	ideaService := service.NewIdeaService(ideaRepo, employeeRepo, auditRepo, txManager, mailSender, cfg.Notify, wsHub, zapLogger)
	dashboardService := service.NewDashboardService(db)
	auditService := service.NewAuditService(auditRepo)

	// Initialize Handlers
	authHandler := handler.NewAuthHandler(authService)
	departmentHandler := handler.NewDepartmentHandler(departmentService)
	employeeHandler := handler.NewEmployeeHandler(employeeService)
	ideaHandler := handler.NewIdeaHandler(ideaService)
	settingHandler := handler.NewSettingHandler(authService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	auditHandler := handler.NewAuditHandler(auditService)

	requireAuth := middleware.RequireAuth(tokens, userRepo)
	requireAdmin := middleware.RequireRole(model.RoleAdmin)

	// Set up Gin Router
	if cfg.Server.GinMode != "" {
		gin.SetMode(cfg.Server.GinMode)
	}
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.Server.CORSOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// WebSocket endpoint
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c, tokens)
	})

	// Register API Routes
	api := router.Group("/api")
	authHandler.RegisterRoutes(api, requireAuth)
	departmentHandler.RegisterRoutes(api, requireAuth, requireAdmin)
	employeeHandler.RegisterRoutes(api, requireAuth, requireAdmin)
	ideaHandler.RegisterRoutes(api, requireAuth, requireAdmin)
	settingHandler.RegisterRoutes(api, requireAuth)
	dashboardHandler.RegisterRoutes(api, requireAuth, requireAdmin)
	auditHandler.RegisterRoutes(api, requireAuth, requireAdmin)

	zapLogger.Info("Server listening", zap.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		zapLogger.Fatal("Server failed", zap.Error(err))
	}
}
