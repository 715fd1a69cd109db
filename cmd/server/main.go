package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/Ritik8097/EmployeeTask/internal/apperr"
	"github.com/Ritik8097/EmployeeTask/internal/auth"
	appcfg "github.com/Ritik8097/EmployeeTask/internal/cfg"
	"github.com/Ritik8097/EmployeeTask/internal/department"
	"github.com/Ritik8097/EmployeeTask/internal/middleware"
	"github.com/Ritik8097/EmployeeTask/internal/routers"
	"github.com/Ritik8097/EmployeeTask/internal/task"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var defaultDepartments = []string{"Engineering", "Marketing", "Sales", "Human Resources", "Finance"}

func main() {
	cfg := appcfg.LoadConfig()
	logger := log.New(os.Stdout, "[server] ", log.LstdFlags|log.Lmicroseconds)

	db := mustInitDB(cfg)
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatalf("failed to access sql DB: %v", err)
	}
	defer sqlDB.Close()

	if err := db.AutoMigrate(&auth.Users{}, &department.Department{}, &task.Task{}); err != nil {
		logger.Fatalf("migration failed: %v", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	defer redisClient.Close()

	var producer task.EventProducer
	if brokers := cfg.BrokerList(); len(brokers) > 0 {
		producer = task.NewKafkaProducer(brokers, pickValue(cfg.KafkaTopic, "task-events"))
		defer producer.Close()
	} else {
		logger.Println("KAFKA_BROKERS not set, task events disabled")
	}

	jwtSecret := []byte(cfg.JWTSecret)
	if len(jwtSecret) == 0 {
		logger.Fatal("JWT_SECRET is required")
	}
	jwtTTL := parseTTL(cfg.JWTTTL, 3600)

	departmentRepo := department.NewRepository(db)
	departmentService := department.NewService(departmentRepo)

	userRepo := auth.NewRepository(db)
	userService := auth.NewUserService(userRepo, departmentRepo, jwtTTL)

	taskRepo := task.NewRepository(db)
	taskService := task.NewTaskService(taskRepo, producer)

	verifier := auth.NewVerifier(jwtSecret, redisClient)

	seedCtx, seedCancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := department.Seed(seedCtx, departmentRepo, defaultDepartments); err != nil {
		logger.Fatalf("department seed failed: %v", err)
	}
	if err := seedAdmin(seedCtx, cfg, userService); err != nil {
		logger.Fatalf("admin seed failed: %v", err)
	}
	seedCancel()

	rateLimiter := middleware.NewRateLimiter(100, time.Minute)
	router, err := routers.New(routers.Dependencies{
		Auth:        routers.NewAuthRoutes(userService, verifier, jwtSecret, redisClient),
		Tasks:       routers.NewTaskRoutes(taskService, verifier),
		Departments: routers.NewDepartmentRoutes(departmentService, verifier),
		Export:      routers.NewExportRoutes(taskService, verifier),
		Middleware: []func(http.Handler) http.Handler{
			middleware.SecurityHeaders,
			middleware.NewCORS(middleware.CORSOptions{
				AllowedOrigins:   splitOrigins(os.Getenv("CORS_ALLOWED_ORIGINS")),
				AllowCredentials: true,
			}),
			middleware.RequestSizeLimit(1 << 20),
			rateLimiter.Middleware,
		},
	})
	if err != nil {
		logger.Fatalf("router setup failed: %v", err)
	}

	httpServer := &http.Server{
		Addr:    ":" + pickValue(cfg.HTTPPort, "8080"),
		Handler: router.Handler(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Printf("HTTP server listening on %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Println("shutdown signal received")
	case err := <-errCh:
		logger.Printf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Printf("http shutdown error: %v", err)
	}
	logger.Println("server stopped")
}

func mustInitDB(cfg appcfg.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to init sql DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db
}

// seedAdmin creates the bootstrap administrator when ADMIN_EMAIL is set and
// not yet registered.
func seedAdmin(ctx context.Context, cfg appcfg.Config, users auth.UserService) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return nil
	}
	_, _, err := users.Register(ctx, auth.RegisterInput{
		Name:       pickValue(cfg.AdminName, "Administrator"),
		Email:      cfg.AdminEmail,
		Password:   cfg.AdminPassword,
		Department: defaultDepartments[0],
		Role:       auth.RoleAdmin,
	})
	if err != nil && apperr.KindOf(err) == apperr.KindDuplicate {
		return nil
	}
	return err
}

func splitOrigins(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return strings.Split(value, ",")
}

func parseTTL(value string, fallback int64) int64 {
	if secs, err := strconv.ParseInt(value, 10, 64); err == nil && secs > 0 {
		return secs
	}
	return fallback
}

func pickValue(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
