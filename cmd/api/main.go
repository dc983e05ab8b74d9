package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerfiles "github.com/swaggo/files"
	ginswagger "github.com/swaggo/gin-swagger"

	_ "github.com/fitcore/users-service/docs"
	"github.com/fitcore/users-service/internal/domain/ports"
	"github.com/fitcore/users-service/internal/domain/repositories"
	httphandlers "github.com/fitcore/users-service/internal/handlers/http"
	"github.com/fitcore/users-service/internal/handlers/middleware"
	"github.com/fitcore/users-service/internal/infrastructure/config"
	"github.com/fitcore/users-service/internal/infrastructure/i18n"
	"github.com/fitcore/users-service/internal/infrastructure/logging"
	"github.com/fitcore/users-service/internal/infrastructure/messaging"
	"github.com/fitcore/users-service/internal/infrastructure/messaging/rabbitmq"
	"github.com/fitcore/users-service/internal/infrastructure/persistence/postgres"
	"github.com/fitcore/users-service/internal/infrastructure/persistence/redis"
	"github.com/fitcore/users-service/internal/infrastructure/seeding"
	"github.com/fitcore/users-service/internal/infrastructure/storage"
	"github.com/fitcore/users-service/internal/services"
)

//	@title			FitCore Users Service API
//	@version		1.0
//	@description	API de gestão de alunos e funcionários da academia FitCore
func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting fitcore users service",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n
	translator, err := i18n.New("en")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", translator.DefaultLanguage(),
		"supported_languages", translator.Languages(),
	)

	// Inicializar repositories
	var studentRepo repositories.StudentRepository = postgres.NewStudentRepository(db)
	employeeRepo := postgres.NewEmployeeRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Cache de leitura opcional sobre o repositório de alunos
	if cfg.Redis.URL != "" {
		cache, err := redis.NewCache(cfg.Redis.URL, time.Duration(cfg.Redis.TTLSeconds)*time.Second, logger)
		if err != nil {
			logger.Error("failed to connect to redis", "error", err)
			log.Fatal(err)
		}
		studentRepo = redis.NewStudentCacheRepository(studentRepo, cache, logger)
		logger.Info("student read-through cache enabled", "ttl_seconds", cfg.Redis.TTLSeconds)
	}

	// Publicação de eventos opcional via RabbitMQ
	var (
		studentEvents  ports.StudentEventPublisher  = messaging.NoopStudentPublisher{}
		employeeEvents ports.EmployeeEventPublisher = messaging.NoopEmployeePublisher{}
	)
	if cfg.RabbitMQ.URL != "" {
		broker := rabbitmq.NewPublisher(cfg.RabbitMQ.URL, logger)
		defer broker.Close()
		studentEvents = rabbitmq.NewStudentEventProducer(broker)
		employeeEvents = rabbitmq.NewEmployeeEventProducer(broker)
	} else {
		logger.Warn("RABBITMQ_URL not set, lifecycle events disabled")
	}

	// Object storage para fotos de perfil
	profileStorage, err := storage.NewMinioStorage(&cfg.Minio, logger)
	if err != nil {
		logger.Error("failed to initialize object storage", "error", err)
		log.Fatal(err)
	}

	// Inicializar services
	studentService := services.NewStudentService(studentRepo, studentEvents, uow, logger)
	employeeService := services.NewEmployeeService(employeeRepo, employeeEvents, uow, logger)

	// Consumo dos eventos de cadastro vindos do sistema de matrículas
	if cfg.RabbitMQ.URL != "" {
		consumerCtx, stopConsumer := context.WithCancel(context.Background())
		defer stopConsumer()
		consumer := rabbitmq.NewConsumer(cfg.RabbitMQ.URL, studentService, employeeService, logger)
		consumer.Start(consumerCtx)
	}

	// Dados de demonstração
	if cfg.Seeding.Enabled {
		seeder := seeding.NewSeeder(studentService, employeeService, logger)
		if err := seeder.Run(context.Background()); err != nil {
			logger.Error("seeding failed", "error", err)
		}
	}

	// Inicializar handlers
	studentHandler := httphandlers.NewStudentHandler(studentService, studentService, profileStorage, logger)
	employeeHandler := httphandlers.NewEmployeeHandler(employeeService, employeeService, profileStorage, logger)

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Middleware global para expor base URL e modo de depuração ao contexto
	router.Use(func(c *gin.Context) {
		c.Set("base_url", cfg.Server.BaseURL)
		c.Set("debug", cfg.Debug)
		c.Next()
	})

	router.Use(middleware.I18n(translator))
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	router.Use(middleware.Metrics())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	// Observabilidade e documentação
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginswagger.WrapHandler(swaggerfiles.Handler))

	// Autenticação opcional nas rotas de escrita
	requireAuth := func(c *gin.Context) { c.Next() }
	if cfg.JWT.Enabled {
		requireAuth = middleware.RequireJWT(cfg.JWT.Secret)
	}

	// API routes
	v1 := router.Group("/api/v1")
	{
		students := v1.Group("/students")
		{
			students.GET("", studentHandler.List)
			students.GET("/active", studentHandler.ListActive)
			students.GET("/plan/:plan", studentHandler.ListByPlan)
			students.GET("/search", studentHandler.Search)
			students.GET("/:id", studentHandler.Get)
			students.GET("/:id/profile-picture", studentHandler.GetProfilePicture)

			students.POST("", requireAuth, studentHandler.Register)
			students.PUT("/:id", requireAuth, studentHandler.Update)
			students.PATCH("/:id/plan", requireAuth, studentHandler.ChangePlan)
			students.PATCH("/:id/physical-data", requireAuth, studentHandler.UpdatePhysicalData)
			students.PATCH("/:id/activate", requireAuth, studentHandler.Activate)
			students.PATCH("/:id/deactivate", requireAuth, studentHandler.Deactivate)
			students.DELETE("/:id", requireAuth, studentHandler.Delete)
			students.POST("/:id/profile-picture", requireAuth, studentHandler.UploadProfilePicture)
			students.PUT("/:id/profile-picture", requireAuth, studentHandler.UploadProfilePicture)
			students.DELETE("/:id/profile-picture", requireAuth, studentHandler.DeleteProfilePicture)
		}

		employees := v1.Group("/employees")
		{
			employees.GET("", employeeHandler.List)
			employees.GET("/active", employeeHandler.ListActive)
			employees.GET("/role/:role", employeeHandler.ListByRole)
			employees.GET("/search", employeeHandler.Search)
			employees.GET("/:id", employeeHandler.Get)
			employees.GET("/:id/profile-picture", employeeHandler.GetProfilePicture)

			employees.POST("", requireAuth, employeeHandler.Register)
			employees.PUT("/:id", requireAuth, employeeHandler.Update)
			employees.PATCH("/:id/role", requireAuth, employeeHandler.ChangeRole)
			employees.PATCH("/:id/terminate", requireAuth, employeeHandler.Terminate)
			employees.PATCH("/:id/reactivate", requireAuth, employeeHandler.Reactivate)
			employees.DELETE("/:id", requireAuth, employeeHandler.Delete)
			employees.POST("/:id/profile-picture", requireAuth, employeeHandler.UploadProfilePicture)
			employees.PUT("/:id/profile-picture", requireAuth, employeeHandler.UploadProfilePicture)
			employees.DELETE("/:id/profile-picture", requireAuth, employeeHandler.DeleteProfilePicture)
		}
	}

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
