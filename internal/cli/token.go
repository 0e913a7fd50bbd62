package cli

import (
	"context"

	"github.com/MKhiriev/go-vault-client/internal/service"
	"github.com/MKhiriev/go-vault-client/models"
	"github.com/spf13/cobra"
)

const flagToken = "token"

func newInfoCommand(st *state) *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show information about a file in the vault",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			spec := models.TokenSpec{Token: token}
			return st.app.Run(cmd.Context(), func(ctx context.Context, vault service.VaultService) (models.Result, error) {
				return vault.Info(ctx, spec)
			})
		},
	}

	cmd.Flags().StringVarP(&token, flagToken, "t", "", "Token of the file")
	_ = cmd.MarkFlagRequired(flagToken)

	return cmd
}

func newDeleteCommand(st *state) *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a file from the vault",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			spec := models.TokenSpec{Token: token}
			return st.app.Run(cmd.Context(), func(ctx context.Context, vault service.VaultService) (models.Result, error) {
				return vault.Delete(ctx, spec)
			})
		},
	}

	cmd.Flags().StringVarP(&token, flagToken, "t", "", "Token of the file")
	_ = cmd.MarkFlagRequired(flagToken)

	return cmd
}
