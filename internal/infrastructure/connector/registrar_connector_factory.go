package connector

import (
	"fmt"

	"github.com/tofunames/tofunames/internal/domain/registrar"
	"github.com/tofunames/tofunames/internal/pkg/config"
	"github.com/tofunames/tofunames/internal/pkg/logger"
	"github.com/tofunames/tofunames/internal/pkg/metrics"
)

// NewRegistrarConnector creates the connector selected by settings.Provider
func NewRegistrarConnector(settings *config.RegistrarSettings, m *metrics.RegistrarMetrics, logger logger.Logger) (registrar.Connector, error) {
	timeout := settings.EffectiveTimeout()

	switch settings.Provider {
	case config.CentralNicRegistrar:
		return NewCentralNicConnector(&settings.CentralNic, timeout, m, logger)
	case config.NetimRegistrar:
		return NewNetimConnector(&settings.Netim, timeout, m, logger)
	default:
		return nil, fmt.Errorf("unsupported registrar provider: %s", settings.Provider)
	}
}
