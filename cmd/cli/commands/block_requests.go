package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/openrota/weekshift/pkg/core/services"
)

// RequestBlockDateCmd creates the requestBlockDate command.
func RequestBlockDateCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "requestBlockDate <username> <date> [comment...]",
		Short: "Request a blocked (unavailable) date for an employee",
		Long:  `Request a blocked date. The date is recorded exactly as given (dd-mm-yyyy); a second request for the same date string is rejected as a duplicate.`,
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			username := args[0]
			date := args[1]
			comment := strings.Join(args[2:], " ")

			outcome, err := services.CreateBlockRequest(app.Ctx, app.Database, app.Logger, username, date, comment)
			if err != nil {
				return err
			}

			switch outcome {
			case services.BlockRequestDuplicate:
				fmt.Printf("A block request for %s on %s already exists.\n", username, date)
			default:
				fmt.Printf("Block request recorded for %s on %s.\n", username, date)
			}

			return nil
		},
	}
}

// ViewRequestCmd creates the viewRequest command.
func ViewRequestCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "viewRequest <employee_id> <request_id>",
		Short: "Show one block-date request",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			request, err := services.GetBlockRequest(app.Ctx, app.Database, args[0], args[1])
			if err != nil {
				return err
			}

			status := "pending"
			if request.Approved {
				status = fmt.Sprintf("approved by %s", request.ApprovedBy)
			}

			fmt.Printf("Date:    %s\n", request.Date)
			fmt.Printf("Status:  %s\n", status)
			if request.Comment != "" {
				fmt.Printf("Comment: %s\n", request.Comment)
			}

			return nil
		},
	}
}

// ToggleRequestCmd creates the toggleRequest command.
func ToggleRequestCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "toggleRequest <employee_id> <request_id> <admin_username>",
		Short: "Toggle approval of a block-date request",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := services.ToggleBlockApproval(app.Ctx, app.Database, app.Logger, args[0], args[1], args[2])
			if errors.Is(err, services.ErrRequestNotFound) {
				return fmt.Errorf("no block request %s for employee %s", args[1], args[0])
			}
			if err != nil {
				return err
			}

			if result.Approved {
				fmt.Printf("Request for %s is now approved.\n", result.Username)
			} else {
				fmt.Printf("Request for %s is back to pending.\n", result.Username)
			}

			return nil
		},
	}
}

// DeleteRequestCmd creates the deleteRequest command.
func DeleteRequestCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deleteRequest <employee_id> <request_id>",
		Short: "Delete a block-date request in any state",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := services.DeleteBlockRequest(app.Ctx, app.Database, app.Logger, args[0], args[1]); err != nil {
				return err
			}

			fmt.Println("Block request deleted.")
			return nil
		},
	}
}
