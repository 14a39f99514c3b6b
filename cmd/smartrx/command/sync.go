package command

import (
	"smartrx-client/internal/app/services/store"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newSyncCmd(app *application) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Sync SmartRx Data",
		Long:  "The sync command fetches prescriptions, medications, reminders and the user profile and reports what was found",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store.FromContext(cmd.Context())
			if err != nil {
				return err
			}

			err = <-s.StartLoad(cmd.Context())
			if err != nil {
				return err
			}

			app.Console.WithFields(logrus.Fields{
				"prescriptions": len(s.PrescriptionHistory()),
				"medications":   len(s.MedicationData()),
				"reminders":     len(s.Reminders()),
				"profile":       s.UserData().FullName,
			}).Info("Synced with " + s.APIBaseURL())
			return nil
		},
	}
}
