package command

import (
	"fmt"

	"smartrx-client/internal/app/models"
	"smartrx-client/internal/app/services/store"
	"smartrx-client/internal/pkg/pointer"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

// profileFlags maps each update flag to the profile field it sets.
var profileFlags = []struct {
	Name  string
	Usage string
	Field func(update *models.UserProfileUpdate) **string
}{
	{"full-name", "Full name", func(u *models.UserProfileUpdate) **string { return &u.FullName }},
	{"dob", "Date of birth", func(u *models.UserProfileUpdate) **string { return &u.Dob }},
	{"gender", "Gender", func(u *models.UserProfileUpdate) **string { return &u.Gender }},
	{"medical-conditions", "Medical conditions", func(u *models.UserProfileUpdate) **string { return &u.MedicalConditions }},
	{"medications", "Current medications", func(u *models.UserProfileUpdate) **string { return &u.Medications }},
	{"allergies", "Allergies", func(u *models.UserProfileUpdate) **string { return &u.Allergies }},
	{"emergency-contact-name", "Emergency contact name", func(u *models.UserProfileUpdate) **string { return &u.EmergencyContactName }},
	{"emergency-contact-number", "Emergency contact number", func(u *models.UserProfileUpdate) **string { return &u.EmergencyContactNumber }},
	{"preferred-pharmacy", "Preferred pharmacy", func(u *models.UserProfileUpdate) **string { return &u.PreferredPharmacy }},
}

func newProfileCmd(app *application) *cobra.Command {
	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "User Profile",
		Long:  "The profile command is used to view and edit the SmartRx user profile",
	}
	profileCmd.AddCommand(newProfileShowCmd(), newProfileUpdateCmd(app))
	return profileCmd
}

func newProfileShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show User Profile",
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

			return printJSON(cmd, s.UserData())
		},
	}
}

func newProfileUpdateCmd(app *application) *cobra.Command {
	values := make([]string, len(profileFlags))

	updateCmd := &cobra.Command{
		Use:   "update",
		Short: "Update User Profile",
		Long:  "The update command changes only the profile fields whose flags are given",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var update models.UserProfileUpdate
			changed := 0
			for i, flag := range profileFlags {
				if cmd.Flags().Changed(flag.Name) {
					*flag.Field(&update) = pointer.FromString(values[i])
					changed++
				}
			}
			if changed == 0 {
				return fmt.Errorf("at least one profile flag is required")
			}

			s, err := store.FromContext(cmd.Context())
			if err != nil {
				return err
			}

			// The update is merged onto the stored profile, so load it first.
			err = s.Load(cmd.Context())
			if err != nil {
				return err
			}

			result := s.UpdateUserData(cmd.Context(), update)
			if !result.Success {
				return fmt.Errorf("profile updated locally but not saved: %s", result.Message())
			}

			app.Console.WithField("fields", changed).Info("Profile saved")
			return printJSON(cmd, s.UserData())
		},
	}

	for i, flag := range profileFlags {
		updateCmd.Flags().StringVar(&values[i], flag.Name, "", flag.Usage)
	}
	return updateCmd
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}
