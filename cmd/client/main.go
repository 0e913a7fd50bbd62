package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-vault-client/internal/cli"
	"github.com/MKhiriev/go-vault-client/internal/client"
	"github.com/MKhiriev/go-vault-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := cli.Execute(ctx, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
	stop()

	if err != nil {
		if !errors.Is(err, client.ErrRendered) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
