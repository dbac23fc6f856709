package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jannivaran/internal/application/escalation/usecases"
	"jannivaran/internal/infrastructure/config"
	"jannivaran/internal/infrastructure/database"
	"jannivaran/internal/infrastructure/email"
	"jannivaran/internal/infrastructure/repository"
	"jannivaran/internal/infrastructure/scheduler"
	"jannivaran/internal/shared/biztime"
	"jannivaran/internal/shared/logger"
)

func main() {
	// Parse environment from command line or env variable
	env := "development"
	if len(os.Args) > 1 {
		env = os.Args[1]
	}
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	// Load configuration
	cfg, err := config.Load(env)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(&cfg.Logger, env == "development"); err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger()
	log.Infow("starting SLA sweep worker", "environment", env)

	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		log.Errorw("failed to initialize business timezone", "error", err)
		os.Exit(1)
	}

	// Initialize database
	if err := database.Init(&cfg.Database); err != nil {
		log.Errorw("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	// Initialize repositories
	complaintRepo := repository.NewComplaintRepository(database.Get())
	escalationRepo := repository.NewEscalationRepository(database.Get())
	userRepo := repository.NewUserRepository(database.Get())
	auditRepo := repository.NewAuditLogRepository(database.Get())

	emailService := email.NewSMTPEmailService(email.SMTPConfig{
		Host:        cfg.Email.SMTPHost,
		Port:        cfg.Email.SMTPPort,
		Username:    cfg.Email.SMTPUser,
		Password:    cfg.Email.SMTPPassword,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		BaseURL:     cfg.Server.BaseURL,
	})

	sweepUC := usecases.NewSweepUseCase(complaintRepo, escalationRepo, userRepo, auditRepo, emailService, log)

	interval := time.Duration(cfg.Sweep.IntervalMinutes) * time.Minute
	if interval <= 0 {
		interval = 15 * time.Minute
	}

	sched := scheduler.NewSweepScheduler(sweepUC, interval, log)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Setup signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go sched.Start(ctx)
	log.Infow("sweep worker started", "interval", interval)

	sig := <-sigChan
	log.Infow("received signal, shutting down", "signal", sig)

	sched.Stop()
	log.Infow("sweep worker stopped")
}
