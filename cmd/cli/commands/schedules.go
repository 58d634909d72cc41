package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/openrota/weekshift/pkg/core/model"
	"github.com/openrota/weekshift/pkg/core/services"
	"github.com/openrota/weekshift/pkg/db"
)

// PublishScheduleCmd creates the publishSchedule command.
func PublishScheduleCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publishSchedule <schedule.json>",
		Short: "Publish a hand-built weekly schedule as a new version",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			savedBy, _ := cmd.Flags().GetString("saved-by")
			dateStr, _ := cmd.Flags().GetString("date")

			base, err := parseBaseDate(dateStr)
			if err != nil {
				return err
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read schedule file: %w", err)
			}

			var schedule model.Schedule
			if err := json.Unmarshal(data, &schedule); err != nil {
				return fmt.Errorf("failed to parse schedule file: %w", err)
			}

			shift, err := services.PublishSchedule(app.Ctx, app.Database, app.Cfg, app.Logger, schedule, savedBy, base)
			if err != nil {
				return err
			}

			fmt.Printf("Published %s (version %d), saved by %s.\n", shift.Name, shift.ID, shift.SavedBy)
			return nil
		},
	}

	cmd.Flags().String("saved-by", "", "Username recorded as the publisher")
	cmd.Flags().String("date", "", "Base date (2006-01-02) the anchor is computed from; defaults to today")
	cmd.MarkFlagRequired("saved-by")

	return cmd
}

// LatestScheduleCmd creates the latestSchedule command.
func LatestScheduleCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "latestSchedule",
		Short: "Show the most recently published schedule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			shift, err := services.LatestSchedule(app.Ctx, app.Database)
			if err != nil {
				return err
			}
			if shift == nil {
				fmt.Println("No schedule has been published yet.")
				return nil
			}

			printShift(shift)
			return nil
		},
	}
}

// ScheduleHistoryCmd creates the scheduleHistory command.
func ScheduleHistoryCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "scheduleHistory",
		Short: "List every saved schedule version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			shifts, err := services.ScheduleHistory(app.Ctx, app.Database)
			if err != nil {
				return err
			}
			if len(shifts) == 0 {
				fmt.Println("No schedule versions saved.")
				return nil
			}

			for _, shift := range shifts {
				fmt.Printf("%4d  %s  saved by %-10s  %s\n",
					shift.ID, shift.Name, shift.SavedBy, shift.CreatedAt.Format("2006-01-02 15:04"))
			}

			return nil
		},
	}
}

// RemoveScheduleCmd creates the removeSchedule command.
func RemoveScheduleCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "removeSchedule <shift_id>",
		Short: "Delete one schedule version",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("shift_id must be a number: %w", err)
			}

			if err := services.RemoveSchedule(app.Ctx, app.Database, app.Logger, id); err != nil {
				return err
			}

			fmt.Println("Schedule version removed.")
			return nil
		},
	}
}

func parseBaseDate(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return time.Time{}, nil
	}
	base, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("date must be formatted 2006-01-02: %w", err)
	}
	return base, nil
}

func printShift(shift *db.Shift) {
	fmt.Printf("%s (version %d), saved by %s at %s\n\n",
		shift.Name, shift.ID, shift.SavedBy, shift.CreatedAt.Format("2006-01-02 15:04"))
	printSchedule(shift.Data, shift.Date)
}

func printSchedule(schedule model.Schedule, anchor time.Time) {
	for day, assignments := range schedule {
		date := anchor.AddDate(0, 0, day)
		fmt.Printf("%s:\n", date.Format("Monday 02-01-2006"))
		if len(assignments) == 0 {
			fmt.Println("  (empty)")
			continue
		}
		for _, a := range assignments {
			fmt.Printf("  %-8s %s\n", a.Key.Slot, a.Username)
		}
	}
}
