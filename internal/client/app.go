package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-vault-client/internal/adapter"
	"github.com/MKhiriev/go-vault-client/internal/config"
	"github.com/MKhiriev/go-vault-client/internal/display"
	"github.com/MKhiriev/go-vault-client/internal/logger"
	"github.com/MKhiriev/go-vault-client/internal/service"
	"github.com/MKhiriev/go-vault-client/models"
)

type App struct {
	services *service.Services
	renderer *display.Renderer

	logger *logger.Logger
}

// NewApp wires the HTTP adapter, the vault service and the renderer writing
// to out from cfg.
func NewApp(cfg *config.ClientConfig, out io.Writer, log *logger.Logger) (*App, error) {
	vaultAdapter, err := adapter.NewHTTPVaultAdapter(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create vault adapter: %w", err)
	}

	services, err := service.NewServices(cfg.Adapter.Endpoint, vaultAdapter, log)
	if err != nil {
		return nil, fmt.Errorf("create services: %w", err)
	}

	format, err := display.ParseFormat(cfg.Output.Format)
	if err != nil {
		return nil, err
	}

	return newApp(services, display.NewRenderer(format, cfg.Output.NoColor, out), log), nil
}

func newApp(services *service.Services, renderer *display.Renderer, log *logger.Logger) *App {
	return &App{
		services: services,
		renderer: renderer,
		logger:   log.GetChildLogger("app"),
	}
}

// Run executes command against the vault service and renders its result.
//
// A service-reported failure is rendered and Run returns nil. A fatal error
// is returned as is; a transport failure is rendered first so that json and
// yaml consumers still get a document, and comes back wrapped in [ErrRendered].
func (a *App) Run(ctx context.Context, command Command) error {
	res, err := command(ctx, a.services.VaultService)
	if err != nil {
		if !errors.Is(err, adapter.ErrTransport) {
			a.logger.Error().Err(err).Msg("command failed")
			return err
		}

		a.logger.Debug().Err(err).Msg("transport failure")
		if renderErr := a.renderer.Render(service.TransportFailure(err)); renderErr != nil {
			return errors.Join(err, renderErr)
		}
		return fmt.Errorf("%w: %w", ErrRendered, err)
	}

	if res.Outcome.Kind == models.ServiceError {
		a.logger.Warn().Str("name", res.Outcome.Name).Str("message", res.Outcome.Message).Msg("vault reported a failure")
	}

	if err = a.renderer.Render(res); err != nil {
		return fmt.Errorf("render result: %w", err)
	}
	return nil
}
