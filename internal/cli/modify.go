package cli

import (
	"context"

	"github.com/MKhiriev/go-vault-client/internal/service"
	"github.com/MKhiriev/go-vault-client/models"
	"github.com/spf13/cobra"
)

const flagHideFilename = "hide-filename"

type modifyFlags struct {
	token            string
	password         string
	askPassword      bool
	previousPassword string
	customExpiry     string
	hideFilename     bool
}

func newModifyCommand(st *state) *cobra.Command {
	var f modifyFlags

	cmd := &cobra.Command{
		Use:   "modify",
		Short: "Modify the options of a file in the vault",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			password, err := resolvePassword(cmd, f.password, f.askPassword)
			if err != nil {
				return err
			}

			spec := models.ModifySpec{
				Token:            f.token,
				Password:         password,
				PreviousPassword: f.previousPassword,
				CustomExpiry:     f.customExpiry,
			}
			if cmd.Flags().Changed(flagHideFilename) {
				hide := f.hideFilename
				spec.HideFilename = &hide
			}

			return st.app.Run(cmd.Context(), func(ctx context.Context, vault service.VaultService) (models.Result, error) {
				return vault.Modify(ctx, spec)
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.token, flagToken, "t", "", "Token of the file to modify")
	flags.StringVar(&f.previousPassword, "previous-password", "", "Current password of the file (required when changing it)")
	flags.StringVar(&f.customExpiry, "custom-expiry", "", "New expiry of the file, e.g. 1d")
	flags.BoolVar(&f.hideFilename, flagHideFilename, false, "Hide (true) or show (false) the file name in the URL")
	addPasswordFlags(cmd, &f.password, &f.askPassword, "New password for the file (replaces the current one)")
	_ = cmd.MarkFlagRequired(flagToken)

	return cmd
}
