package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/openrota/weekshift/cmd/cli/commands"
	"github.com/openrota/weekshift/internal/config"
	"github.com/openrota/weekshift/pkg/postgres"
	"github.com/openrota/weekshift/pkg/utils/logging"
)

var (
	env string
	app *commands.AppContext
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "weekshift",
		Short: "WeekShift - manage weekly work-shift schedules",
		Long: `A CLI tool for managing weekly work-shift schedules: employee block-date
requests, manual schedule publishing, and Google Calendar imports.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil {
				if app.Logger != nil {
					app.Logger.Sync()
				}
				if app.Database != nil {
					app.Database.Close()
				}
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "prod", "Environment name used for log files")

	rootCmd.AddCommand(commands.RequestBlockDateCmd(appRef()))
	rootCmd.AddCommand(commands.ViewRequestCmd(appRef()))
	rootCmd.AddCommand(commands.ToggleRequestCmd(appRef()))
	rootCmd.AddCommand(commands.DeleteRequestCmd(appRef()))
	rootCmd.AddCommand(commands.PublishScheduleCmd(appRef()))
	rootCmd.AddCommand(commands.ImportScheduleCmd(appRef()))
	rootCmd.AddCommand(commands.LatestScheduleCmd(appRef()))
	rootCmd.AddCommand(commands.ScheduleHistoryCmd(appRef()))
	rootCmd.AddCommand(commands.RemoveScheduleCmd(appRef()))
	rootCmd.AddCommand(commands.ListEmployeesCmd(appRef()))
	rootCmd.AddCommand(commands.RegisterEmployeeCmd(appRef()))
	rootCmd.AddCommand(commands.UpdateEmployeeCmd(appRef()))
	rootCmd.AddCommand(commands.DeleteEmployeeCmd(appRef()))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// appRef hands commands the shared AppContext that initApp fills in during
// PersistentPreRunE.
func appRef() *commands.AppContext {
	if app == nil {
		app = &commands.AppContext{}
	}
	return app
}

// initApp sets up the logger, configuration, and database connection.
func initApp() error {
	var err error
	ref := appRef()
	ref.Ctx = context.Background()

	ref.Logger, err = logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	ref.Logger.Info("Starting weekshift", zap.String("environment", env))

	ref.Cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	ref.Logger.Debug("Configuration loaded")

	ref.Database, err = postgres.NewDB(ref.Ctx, ref.Cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := ref.Database.RunMigrations(ref.Ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	ref.Logger.Info("Database initialized")

	return nil
}
