package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openrota/weekshift/pkg/core/services"
)

// ListEmployeesCmd creates the listEmployees command.
func ListEmployeesCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listEmployees",
		Short: "List all employees and their block-date requests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			employees, err := services.ListDirectory(app.Ctx, app.Database)
			if err != nil {
				return err
			}

			fmt.Printf("\nFound %d employees:\n\n", len(employees))
			for _, e := range employees {
				role := ""
				if e.Admin {
					role = " [admin]"
				}
				fmt.Printf("- %s (%s) %s%s\n", e.Username, e.ID, e.Email, role)
				for _, r := range e.BlockedDates {
					status := "pending"
					if r.Approved {
						status = fmt.Sprintf("approved by %s", r.ApprovedBy)
					}
					fmt.Printf("    %s  %s  (%s)\n", r.Date, status, r.ID)
				}
			}

			return nil
		},
	}
}

// RegisterEmployeeCmd creates the registerEmployee command.
func RegisterEmployeeCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "registerEmployee <username>",
		Short: "Add an employee to the directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			email, _ := cmd.Flags().GetString("email")
			admin, _ := cmd.Flags().GetBool("admin")

			outcome, employee, err := services.RegisterEmployee(app.Ctx, app.Database, app.Logger, args[0], email, admin)
			if err != nil {
				return err
			}

			switch outcome {
			case services.EmployeeRegistered:
				fmt.Printf("Registered %s (%s).\n", employee.Username, employee.ID)
			default:
				fmt.Printf("Not registered: %s\n", outcome)
			}

			return nil
		},
	}

	cmd.Flags().String("email", "", "Employee email, used for calendar attendee resolution")
	cmd.Flags().Bool("admin", false, "Grant administrator rights")

	return cmd
}

// UpdateEmployeeCmd creates the updateEmployee command.
func UpdateEmployeeCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "updateEmployee <employee_id>",
		Short: "Change an employee's username or email",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username, _ := cmd.Flags().GetString("username")
			email, _ := cmd.Flags().GetString("email")

			outcome, err := services.UpdateEmployee(app.Ctx, app.Database, app.Logger, services.UpdateEmployeeInput{
				ID:       args[0],
				Username: username,
				Email:    email,
			})
			if err != nil {
				return err
			}

			switch outcome {
			case services.EmployeeUpdated:
				fmt.Println("Employee updated.")
			default:
				fmt.Printf("Not updated: %s\n", outcome)
			}

			return nil
		},
	}

	cmd.Flags().String("username", "", "New username")
	cmd.Flags().String("email", "", "New email")
	cmd.MarkFlagRequired("username")

	return cmd
}

// DeleteEmployeeCmd creates the deleteEmployee command.
func DeleteEmployeeCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deleteEmployee <employee_id>",
		Short: "Remove an employee and their block-date requests",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := services.RemoveEmployee(app.Ctx, app.Database, app.Logger, args[0]); err != nil {
				return err
			}

			fmt.Println("Employee removed.")
			return nil
		},
	}
}
