package service

import (
	"github.com/MKhiriev/go-vault-client/internal/adapter"
	"github.com/MKhiriev/go-vault-client/internal/logger"
	"github.com/MKhiriev/go-vault-client/internal/validators"
)

// Services groups the services available to the command layer.
type Services struct {
	VaultService VaultService
}

// NewServices wires the vault service on top of vaultAdapter. endpoint is the
// vault REST root all token requests are addressed to.
func NewServices(endpoint string, vaultAdapter adapter.VaultAdapter, logger *logger.Logger) (*Services, error) {
	validator := validators.NewSpecValidator()
	builder, err := adapter.NewRequestBuilder(endpoint, validator)
	if err != nil {
		return nil, err
	}

	return &Services{
		VaultService: NewVaultService(builder, validator, vaultAdapter, logger),
	}, nil
}
