package cli

import (
	"context"

	"github.com/MKhiriev/go-vault-client/internal/logger"
	"github.com/MKhiriev/go-vault-client/internal/service"
	"github.com/MKhiriev/go-vault-client/models"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

// writeClipboard is a test seam for clipboard.WriteAll.
var writeClipboard = clipboard.WriteAll

type uploadFlags struct {
	file            string
	url             string
	expires         string
	password        string
	askPassword     bool
	hideFilename    bool
	oneTimeDownload bool
	copyURL         bool
}

func newUploadCommand(st *state) *cobra.Command {
	var f uploadFlags

	cmd := &cobra.Command{
		Use:   "upload",
		Short: "Upload a file or a remote URL to the vault",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			password, err := resolvePassword(cmd, f.password, f.askPassword)
			if err != nil {
				return err
			}

			spec := models.UploadSpec{
				FilePath:        f.file,
				URL:             f.url,
				Password:        password,
				Expires:         f.expires,
				HideFilename:    f.hideFilename,
				OneTimeDownload: f.oneTimeDownload,
			}

			return st.app.Run(cmd.Context(), func(ctx context.Context, vault service.VaultService) (models.Result, error) {
				res, err := vault.Upload(ctx, spec)
				if err == nil && f.copyURL {
					copyStoredURL(ctx, res)
				}
				return res, err
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.file, "file", "f", "", "File to upload to the vault (max size 100MB)")
	flags.StringVarP(&f.url, "url", "u", "", "Remote URL the vault fetches the content from (max size 100MB)")
	flags.StringVarP(&f.expires, "expires", "e", "", "Expiry of the content, e.g. 30m, 12h or 1d")
	flags.BoolVar(&f.hideFilename, "hide-filename", false, "Hide the file name from the generated URL")
	flags.BoolVarP(&f.oneTimeDownload, "one-time-download", "o", false, "Delete the file after first access")
	flags.BoolVar(&f.copyURL, "copy", false, "Copy the storage URL to the clipboard")
	addPasswordFlags(cmd, &f.password, &f.askPassword, "Password required to download the file")

	cmd.MarkFlagsMutuallyExclusive("file", "url")
	cmd.MarkFlagsOneRequired("file", "url")

	return cmd
}

// copyStoredURL puts the storage URL of a stored file on the clipboard. A
// clipboard failure never changes the outcome.
func copyStoredURL(ctx context.Context, res models.Result) {
	if res.Outcome.Stored == nil {
		return
	}

	log := logger.FromContext(ctx)
	if err := writeClipboard(res.Outcome.Stored.URL); err != nil {
		log.Warn().Err(err).Msg("cannot copy url to clipboard")
		return
	}
	log.Debug().Msg("url copied to clipboard")
}
