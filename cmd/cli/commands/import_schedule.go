package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openrota/weekshift/internal/config"
	"github.com/openrota/weekshift/pkg/clients/calendarclient"
	"github.com/openrota/weekshift/pkg/core/services"
)

// ImportScheduleCmd creates the importSchedule command.
func ImportScheduleCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "importSchedule",
		Short: "Import next week's schedule from the configured Google Calendar",
		Long: `Import a weekly schedule from the configured Google Calendar. With --dry-run
the computed schedule is printed without saving a new version.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			savedBy, _ := cmd.Flags().GetString("saved-by")
			dateStr, _ := cmd.Flags().GetString("date")

			base, err := parseBaseDate(dateStr)
			if err != nil {
				return err
			}

			// The configuration check runs before credentials are loaded so
			// a missing calendar id is reported as such, not as an auth
			// problem.
			if app.Cfg.CalendarID == "" {
				return services.ErrCalendarNotConfigured
			}

			credentials, err := config.LoadCredentials(app.Cfg.CredentialsFile)
			if err != nil {
				return err
			}

			calendar, err := calendarclient.NewClient(app.Ctx, credentials)
			if err != nil {
				return err
			}

			result, err := services.ImportSchedule(app.Ctx, app.Database, calendar, app.Cfg, app.Logger, services.ImportOptions{
				Base:    base,
				DryRun:  dryRun,
				SavedBy: savedBy,
			})
			if errors.Is(err, services.ErrCalendarNotConfigured) {
				return fmt.Errorf("set calendarID in weekshift.yaml before importing")
			}
			if err != nil {
				return err
			}

			if dryRun {
				fmt.Printf("Dry run for week of %s:\n\n", result.Anchor.Format("02-01-2006"))
				printSchedule(result.Schedule, result.Anchor)
				return nil
			}

			fmt.Printf("Imported %s (version %d), saved by %s.\n",
				result.Shift.Name, result.Shift.ID, result.Shift.SavedBy)
			return nil
		},
	}

	cmd.Flags().Bool("dry-run", false, "Compute the schedule without saving it")
	cmd.Flags().String("saved-by", "", "Username recorded as the publisher; defaults to \"system\"")
	cmd.Flags().String("date", "", "Base date (2006-01-02) the anchor is computed from; defaults to today")

	return cmd
}
