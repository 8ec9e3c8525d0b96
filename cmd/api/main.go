package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/clinicware/dental-admin/internal/config"
	"github.com/clinicware/dental-admin/internal/handler"
	appointmenthandler "github.com/clinicware/dental-admin/internal/handler/appointment"
	authhandler "github.com/clinicware/dental-admin/internal/handler/auth"
	doctorhandler "github.com/clinicware/dental-admin/internal/handler/doctor"
	patienthandler "github.com/clinicware/dental-admin/internal/handler/patient"
	reviewhandler "github.com/clinicware/dental-admin/internal/handler/review"
	treatmenthandler "github.com/clinicware/dental-admin/internal/handler/treatment"
	"github.com/clinicware/dental-admin/internal/middleware"
	"github.com/clinicware/dental-admin/internal/model"
	"github.com/clinicware/dental-admin/internal/repository/postgres"
	"github.com/clinicware/dental-admin/internal/router"
	"github.com/clinicware/dental-admin/internal/seed"
	appointmentservice "github.com/clinicware/dental-admin/internal/service/appointment"
	"github.com/clinicware/dental-admin/internal/service/audit"
	authservice "github.com/clinicware/dental-admin/internal/service/auth"
	doctorservice "github.com/clinicware/dental-admin/internal/service/doctor"
	patientservice "github.com/clinicware/dental-admin/internal/service/patient"
	reviewservice "github.com/clinicware/dental-admin/internal/service/review"
	treatmentservice "github.com/clinicware/dental-admin/internal/service/treatment"
	"github.com/clinicware/dental-admin/pkg/auth"
	"github.com/clinicware/dental-admin/pkg/logger"
	"github.com/clinicware/dental-admin/pkg/security"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(&logger.Config{
		Level:      logger.ParseLevel(cfg.Logging.Level),
		TimeFormat: time.RFC3339,
		Console:    cfg.Logging.Console,
	})

	if err := model.RegisterValidations(); err != nil {
		log.Fatal(err, "failed to register validations")
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal(err, "failed to connect to database")
	}
	defer db.Close()

	if err := postgres.EnsureSchema(db); err != nil {
		log.Fatal(err, "failed to apply schema")
	}

	hasher := security.NewBcryptHasher(bcrypt.DefaultCost)

	if cfg.Seed.Enabled {
		seeder := seed.NewSeeder(db, hasher, log)
		if err := seeder.Run(context.Background(), cfg.Seed); err != nil {
			log.Fatal(err, "failed to seed database")
		}
	}

	// Repositories
	doctorRepo := postgres.NewDoctorRepository(db)
	patientRepo := postgres.NewPatientRepository(db)
	treatmentRepo := postgres.NewTreatmentRepository(db)
	appointmentRepo := postgres.NewAppointmentRepository(db)
	reviewRepo := postgres.NewReviewRepository(db)
	userRepo := postgres.NewUserRepository(db)
	auditRepo := postgres.NewAuditRepository(db)

	// Services
	jwtExpiry := time.Duration(cfg.JWT.ExpiryMinutes) * time.Minute
	jwtSvc := auth.NewJWTService(cfg.JWT.Secret, jwtExpiry)
	auditor := audit.NewService(auditRepo, log)

	authSvc := authservice.NewService(userRepo, jwtSvc, hasher, jwtExpiry)
	doctorSvc := doctorservice.NewService(doctorRepo, auditor)
	patientSvc := patientservice.NewService(patientRepo, auditor)
	treatmentSvc := treatmentservice.NewService(treatmentRepo, auditor)
	appointmentSvc := appointmentservice.NewService(appointmentRepo, patientRepo, doctorRepo, treatmentRepo, auditor)
	reviewSvc := reviewservice.NewService(reviewRepo, appointmentRepo, auditor)

	// HTTP layer
	authMW := middleware.NewAuthMiddleware(authSvc, authSvc)
	r := router.NewRouter(
		authMW,
		authhandler.NewHandler(authSvc),
		doctorhandler.NewHandler(doctorSvc),
		patienthandler.NewHandler(patientSvc),
		treatmenthandler.NewHandler(treatmentSvc),
		appointmenthandler.NewHandler(appointmentSvc),
		reviewhandler.NewHandler(reviewSvc),
		handler.NewHandler(db),
		router.Config{
			RateLimitRPS:   cfg.RateLimit.RPS,
			RateLimitBurst: cfg.RateLimit.Burst,
			CORS:           middleware.DefaultCORSConfig(),
			MetricsPrefix:  "dental_admin",
		},
	)
	r.Setup()

	timeout := time.Duration(cfg.Server.TimeoutSeconds) * time.Second
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}

	go func() {
		log.Info(fmt.Sprintf("server listening on %s", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err, "server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error(err, "forced shutdown")
	}
	log.Info("server stopped")
}
