package sweep

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"jannivaran/internal/application/escalation/usecases"
	"jannivaran/internal/infrastructure/config"
	"jannivaran/internal/infrastructure/database"
	"jannivaran/internal/infrastructure/email"
	"jannivaran/internal/infrastructure/repository"
	"jannivaran/internal/shared/biztime"
	"jannivaran/internal/shared/logger"
)

var env string

// NewCommand returns the sweep command, which runs a single pass of the SLA
// sweep and exits. The worker binary runs the same pass on an interval.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run one SLA sweep pass",
		Long:  `Re-evaluate all active complaints once: escalate breached or stalled ones and send SLA warnings, then exit.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, env == "development"); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log := logger.NewLogger()

	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		return fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

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

	result, err := sweepUC.Execute(context.Background())
	if err != nil {
		return fmt.Errorf("sweep failed: %w", err)
	}

	fmt.Printf("Sweep complete: scanned=%d escalated=%d warned=%d\n",
		result.Scanned, result.Escalated, result.Warned)
	return nil
}
