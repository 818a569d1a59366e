package main

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/sid-c23/cs6440-project/internal/config"
	"github.com/sid-c23/cs6440-project/internal/handlers"
	"github.com/sid-c23/cs6440-project/internal/logger"
	"github.com/sid-c23/cs6440-project/internal/metrics"
	"github.com/sid-c23/cs6440-project/internal/middleware"
	"github.com/sid-c23/cs6440-project/internal/repository"
	"github.com/sid-c23/cs6440-project/internal/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Start the HTTP API server and listen for requests.`,
	RunE:  runServe,
}

var (
	port      string
	useMemory bool
)

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides config)")
	serveCmd.Flags().BoolVar(&useMemory, "memory", false, "Use the in-memory store instead of PostgreSQL")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if port != "" {
		cfg.Server.Port = port
	}

	logFormat := cfg.Log.Format
	if cfg.Server.Env == "development" {
		logFormat = "console"
	}
	log := logger.New(logger.Config{Level: cfg.Log.Level, Format: logFormat})

	log.Info().Str("env", cfg.Server.Env).Msg("starting healthlog API server")

	// Stores
	var userRepo repository.UserRepository
	var eventRepo repository.EventRepository
	if useMemory {
		store := repository.NewMemoryStore()
		userRepo = store.Users()
		eventRepo = store.Events()
		log.Info().Msg("using in-memory store")
	} else {
		if cfg.Database.URL == "" {
			return fmt.Errorf("database.url is required (set DATABASE_URL or pass --memory)")
		}
		pool, err := repository.NewPool(context.Background(), cfg.Database.URL, cfg.Database.MaxConns, cfg.Database.MinConns)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer pool.Close()
		userRepo = repository.NewUserRepo(pool)
		eventRepo = repository.NewEventRepo(pool)
		log.Info().Msg("connected to database")
	}

	// Services
	userService := service.NewUserService(userRepo)
	eventService := service.NewEventService(eventRepo, userRepo, cfg.Coding.Systems)
	trendsService := service.NewTrendsService(eventRepo, userRepo)

	// Handlers
	m := metrics.NewManager()
	userHandler := handlers.NewUserHandler(userService)
	eventHandler := handlers.NewEventHandler(eventService, m)
	trendsHandler := handlers.NewTrendsHandler(trendsService, m)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	router.Use(middleware.Logger(log))
	router.Use(middleware.Metrics(m))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"env":    cfg.Server.Env,
		})
	})
	router.GET("/metrics", gin.WrapH(m.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.POST("/users", userHandler.CreateUser)
		v1.GET("/users", userHandler.ListUsers)
		v1.GET("/users/:id", userHandler.GetUser)
		v1.DELETE("/users/:id", userHandler.DeleteUser)

		v1.POST("/users/:id/events", eventHandler.CreateEvent)
		v1.GET("/users/:id/events", eventHandler.ListEvents)
		v1.GET("/users/:id/migraines", eventHandler.ListMigraines)
		v1.GET("/users/:id/triggers", eventHandler.ListTriggers)

		v1.GET("/users/:id/trends/weekly", trendsHandler.Weekly)
		v1.GET("/users/:id/trends/actions", trendsHandler.Actions)
		v1.GET("/users/:id/trends/migraines", trendsHandler.Migraines)
	}

	log.Info().Str("port", cfg.Server.Port).Msg("server listening")
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
