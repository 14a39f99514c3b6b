package command

import (
	"fmt"

	"smartrx-client/internal/app/services/store"

	"github.com/spf13/cobra"
)

func newPrescriptionsCmd(app *application) *cobra.Command {
	prescriptionsCmd := &cobra.Command{
		Use:   "prescriptions",
		Short: "Prescriptions",
		Long:  "The prescriptions command is used to manage the prescription history",
	}
	prescriptionsCmd.AddCommand(newPrescriptionsListCmd(app), newPrescriptionsDeleteCmd(app))
	return prescriptionsCmd
}

func newPrescriptionsListCmd(app *application) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List Prescriptions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store.FromContext(cmd.Context())
			if err != nil {
				return err
			}

			err = s.Load(cmd.Context())
			if err != nil {
				return err
			}

			prescriptionHistory := s.PrescriptionHistory()
			for _, prescription := range prescriptionHistory {
				err = printJSON(cmd, prescription)
				if err != nil {
					return err
				}
			}
			app.Console.Infof("Found %v prescriptions", len(prescriptionHistory))
			return nil
		},
	}
}

func newPrescriptionsDeleteCmd(app *application) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete Prescription",
		Long:  "The delete command removes a prescription and refreshes the medications and reminders derived from it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prescriptionID := args[0]

			s, err := store.FromContext(cmd.Context())
			if err != nil {
				return err
			}

			err = s.Load(cmd.Context())
			if err != nil {
				return err
			}

			result := s.DeletePrescription(cmd.Context(), prescriptionID)
			if !result.Success {
				return fmt.Errorf("unable to delete prescription %s: %s", prescriptionID, result.Message())
			}

			app.Console.WithField("remaining", len(s.PrescriptionHistory())).
				Infof("Deleted prescription %s", prescriptionID)
			return nil
		},
	}
}
