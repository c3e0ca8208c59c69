package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kharcha/internal/auth"
	"kharcha/internal/backup"
	"kharcha/internal/config"
	"kharcha/internal/database"
	"kharcha/internal/handlers"
	"kharcha/internal/logger"
	"kharcha/internal/middleware"
	"kharcha/internal/store"
	"kharcha/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/sync/errgroup"

	_ "kharcha/internal/docs" // Import swagger docs
)

// @title           Kharcha API
// @version         1.0
// @description     Kharcha is a local-first expense tracker: entries and categories live in a single on-device document, with period summaries and an optional backup to a user-chosen file.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Open the on-device database
	dbManager, err := database.NewManager(appConfig.DataPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer dbManager.Close()

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Load the document
	db := dbManager.DB()
	st, err := store.Open(db)
	if err != nil {
		return fmt.Errorf("failed to load document: %w", err)
	}
	st.SeedDefaultCategories()

	// Backup synchronizer
	synchronizer := backup.New(
		st,
		backup.NewDBHandleStore(db),
		backup.OSPicker{},
		backup.WithInterval(appConfig.BackupInterval),
	)

	// Register request validators
	validator.Register()

	// Initialize handlers
	entryHandler := handlers.NewEntryHandler(st)
	categoryHandler := handlers.NewCategoryHandler(st)
	statsHandler := handlers.NewStatsHandler(st)
	backupHandler := handlers.NewBackupHandler(st, synchronizer)
	lockHandler := handlers.NewLockHandler(st, auth.UnsupportedVerifier{})
	dataHandler := handlers.NewDataHandler(st, nil)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes: the lock screen must be reachable while locked
	lock := v1.Group("/lock")
	lock.GET("/status", lockHandler.Status)
	lock.POST("/pin", lockHandler.SetPIN)
	lock.POST("/unlock", lockHandler.Unlock)
	lock.POST("/biometric/unlock", lockHandler.BiometricUnlock)

	// Protected routes: pass through freely until a PIN is set
	protected := v1.Group("/")
	protected.Use(middleware.LockGuard(st))

	protected.DELETE("/lock/pin", lockHandler.RemovePIN)
	protected.PUT("/lock/biometric", lockHandler.SetBiometric)

	// Entry routes
	entries := protected.Group("/entries")
	entries.POST("", entryHandler.CreateEntry)
	entries.GET("", entryHandler.ListEntries)
	entries.GET("/:id", entryHandler.GetEntry)
	entries.PUT("/:id", entryHandler.UpdateEntry)
	entries.DELETE("/:id", entryHandler.DeleteEntry)

	// Category routes
	categories := protected.Group("/categories")
	categories.GET("", categoryHandler.ListCategories)
	categories.POST("", categoryHandler.CreateCategory)
	categories.PUT("/:id", categoryHandler.UpdateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	// Stats routes
	stats := protected.Group("/stats")
	stats.GET("/summary", statsHandler.Summary)
	stats.GET("/breakdown", statsHandler.CategoryBreakdown)
	stats.GET("/breakdown/:categoryId", statsHandler.SubcategoryBreakdown)

	// Backup routes
	backups := protected.Group("/backup")
	backups.GET("/status", backupHandler.Status)
	backups.POST("/connect", backupHandler.Connect)
	backups.POST("/sync", backupHandler.SyncNow)
	backups.POST("/check", backupHandler.Check)
	backups.DELETE("", backupHandler.Disconnect)

	// Data routes
	data := protected.Group("/data")
	data.GET("/export", dataHandler.Export)
	data.POST("/import", dataHandler.Import)
	data.POST("/reset", dataHandler.Reset)

	srv := &http.Server{
		Addr:    ":" + appConfig.Port,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Infof("Starting Kharcha server on port %s", appConfig.Port)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info("Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	// Run the startup backup check once the server is up
	synchronizer.CheckDailyBackup(ctx)

	return g.Wait()
}
