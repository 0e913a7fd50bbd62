package cli

import (
	"context"

	"github.com/MKhiriev/go-vault-client/internal/service"
	"github.com/MKhiriev/go-vault-client/models"
	"github.com/spf13/cobra"
)

type downloadFlags struct {
	url         string
	token       string
	output      string
	password    string
	askPassword bool
}

func newDownloadCommand(st *state) *cobra.Command {
	var f downloadFlags

	cmd := &cobra.Command{
		Use:   "download",
		Short: "Retrieve a file from the vault",
		Long: `Retrieve a file from the vault, either by its direct URL or by its token.

With --output naming an existing directory the file is saved there under its
original name; any other --output is used as the exact destination file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			password, err := resolvePassword(cmd, f.password, f.askPassword)
			if err != nil {
				return err
			}

			spec := models.DownloadSpec{
				Token:    f.token,
				URL:      f.url,
				Output:   f.output,
				Password: password,
			}

			return st.app.Run(cmd.Context(), func(ctx context.Context, vault service.VaultService) (models.Result, error) {
				return vault.Download(ctx, spec)
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.url, "url", "u", "", "Direct URL of the file to download")
	flags.StringVarP(&f.token, "token", "t", "", "Token of the file to download")
	flags.StringVarP(&f.output, "output", "o", "", "Output file or directory (default: current directory)")
	addPasswordFlags(cmd, &f.password, &f.askPassword, "Password if required to download the file")

	cmd.MarkFlagsMutuallyExclusive("url", "token")
	cmd.MarkFlagsOneRequired("url", "token")

	return cmd
}
