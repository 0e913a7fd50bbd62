package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	flagPassword    = "password"
	flagAskPassword = "ask-password"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// resolvePassword returns password, or reads one from the terminal without
// echo when ask is set. The prompt goes to stderr; stdout carries only the
// rendered result.
func resolvePassword(cmd *cobra.Command, password string, ask bool) (string, error) {
	if !ask {
		return password, nil
	}

	w := cmd.ErrOrStderr()
	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return "", err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	return string(pw), nil
}

func addPasswordFlags(cmd *cobra.Command, password *string, ask *bool, usage string) {
	cmd.Flags().StringVarP(password, flagPassword, "p", "", usage)
	cmd.Flags().BoolVar(ask, flagAskPassword, false, "Read the password from the terminal without echo")
	cmd.MarkFlagsMutuallyExclusive(flagPassword, flagAskPassword)
}
