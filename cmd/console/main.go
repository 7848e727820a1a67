package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"

	_ "github.com/edukit/edu-console-api/api/swagger"
	"github.com/edukit/edu-console-api/internal/handler"
	"github.com/edukit/edu-console-api/internal/repository"
	"github.com/edukit/edu-console-api/internal/router"
	"github.com/edukit/edu-console-api/internal/service"
	"github.com/edukit/edu-console-api/internal/store"
	"github.com/edukit/edu-console-api/pkg/cache"
	"github.com/edukit/edu-console-api/pkg/config"
	"github.com/edukit/edu-console-api/pkg/database"
	"github.com/edukit/edu-console-api/pkg/logger"
	"github.com/edukit/edu-console-api/pkg/storage"
)

// @title Edu Console API
// @version 1.0.0
// @description Education management console: accounts, profiles, catalogue, grades and dashboards over a pluggable key-value store
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	kv, err := openStore(cfg)
	if err != nil {
		logr.Sugar().Fatalw("failed to open store backend", "backend", cfg.Store.Backend, "error", err)
	}

	var metricsSvc *service.MetricsService
	if cfg.Metrics.Enabled {
		metricsSvc = service.NewMetricsService()
		kv = store.NewInstrumentedKV(kv, metricsSvc)
	}

	notifier := store.NewNotifier()
	adapter := store.NewAdapter(kv, notifier, logr)

	users := repository.NewUserRepository(adapter)
	teachers := repository.NewTeacherRepository(adapter)
	students := repository.NewStudentRepository(adapter)
	courses := repository.NewCourseRepository(adapter)
	grades := repository.NewGradeRepository(adapter)
	assignments := repository.NewAssignmentRepository(adapter)
	submissions := repository.NewSubmissionRepository(adapter)

	validate := validator.New()

	authSvc := service.NewAuthService(users, adapter, cfg.Auth.SessionKey, validate, logr)
	userSvc := service.NewUserService(users, adapter, cfg.Auth.SessionKey, validate, logr)
	teacherSvc := service.NewTeacherService(teachers, cfg.Auth.DefaultPassword, validate, logr)
	studentSvc := service.NewStudentService(students, cfg.Auth.DefaultPassword, validate, logr)
	courseSvc := service.NewCourseService(courses, validate, logr)
	gradeSvc := service.NewGradeService(grades, validate, logr)
	assignmentSvc := service.NewAssignmentService(assignments, submissions, validate, logr)
	analyticsSvc := service.NewAnalyticsService(users, teachers, students, courses, grades, logr)
	dashboardSvc, stopDashboard := service.NewDashboardService(analyticsSvc, teachers, students, courses, grades, assignments, notifier, logr)
	defer stopDashboard()
	settingsSvc := service.NewSettingsService(adapter, logr)

	var exportHandler *handler.ExportHandler
	if cfg.Exports.Enabled {
		exportStore, err := storage.NewLocalStorage(cfg.Exports.StorageDir)
		if err != nil {
			logr.Sugar().Fatalw("failed to prepare exports directory", "error", err)
		}
		exportSvc := service.NewExportService(grades, students, courses, exportStore, logr)
		if cfg.Exports.RetentionDays > 0 {
			exportSvc.PruneOlderThan(time.Duration(cfg.Exports.RetentionDays) * 24 * time.Hour)
		}
		exportHandler = handler.NewExportHandler(exportSvc)
	}

	r := router.New(cfg, logr, authSvc, metricsSvc, router.Handlers{
		Auth:       handler.NewAuthHandler(authSvc),
		Users:      handler.NewUserHandler(userSvc),
		Teachers:   handler.NewTeacherHandler(teacherSvc),
		Students:   handler.NewStudentHandler(studentSvc),
		Courses:    handler.NewCourseHandler(courseSvc),
		Grades:     handler.NewGradeHandler(gradeSvc, studentSvc),
		Assignment: handler.NewAssignmentHandler(assignmentSvc, studentSvc),
		Dashboard:  handler.NewDashboardHandler(dashboardSvc, studentSvc),
		Analytics:  handler.NewAnalyticsHandler(analyticsSvc, metricsSvc),
		Settings:   handler.NewSettingsHandler(settingsSvc),
		Exports:    exportHandler,
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "store", cfg.Store.Backend)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

// openStore builds the configured key-value backend. The adapter and
// everything above it are indifferent to which one is in play.
func openStore(cfg *config.Config) (store.KV, error) {
	ctx := context.Background()
	switch cfg.Store.Backend {
	case config.StoreBackendMemory:
		return store.NewMemoryKV(), nil
	case config.StoreBackendRedis:
		client, err := cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		return store.NewRedisKV(client), nil
	case config.StoreBackendPostgres:
		db, err := database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		kv := store.NewPostgresKV(db)
		if err := kv.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		return kv, nil
	case config.StoreBackendFile:
		return store.NewFileKV(cfg.Store.DataDir)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}
