package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"fieldserve/internal/infrastructure/config"
	"fieldserve/internal/infrastructure/database"
	"fieldserve/internal/infrastructure/persistence/migrations"
	"fieldserve/internal/shared/constants"
	"fieldserve/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database schema migrations and inspect the current migration state.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newStatusCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Apply the full schema so the database matches the current models.`,
		RunE:  runUp,
	}
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		Long:  `Report which tables exist in the target database.`,
		RunE:  runStatus,
	}
}

func initEnv() (logger.Interface, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, false); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	log := logger.NewLogger()

	if err := database.Init(&cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return log, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("running migrations", "environment", env)

	if err := migrations.MigrateAll(database.Get()); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Infow("migrations completed")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	tables := []string{
		constants.TableComplaints,
		constants.TableComplaintAssignments,
		constants.TableComplaintHistory,
		constants.TableComplaintNotes,
		constants.TableJobCards,
		constants.TableTechnicians,
		constants.TableCustomers,
	}

	migrator := database.Get().Migrator()
	missing := 0
	for _, table := range tables {
		exists := migrator.HasTable(table)
		if !exists {
			missing++
		}
		log.Infow("table status", "table", table, "exists", exists)
	}

	if missing > 0 {
		log.Warnw("schema is incomplete, run 'migrate up'", "missing_tables", missing)
	} else {
		log.Infow("schema is up to date")
	}

	return nil
}
