package services

import (
	portsrepo "github.com/SscSPs/fixed_asset_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fixed_asset_ledger/internal/core/ports/services"
	"github.com/SscSPs/fixed_asset_ledger/internal/platform/metrics"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, m *metrics.Metrics) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Asset: NewAssetService(repos.AssetRepo),
		Depreciation: NewDepreciationService(
			repos.DepreciationRepo,
			repos.TxRunner,
			WithDepreciationMetrics(m),
		),
	}
}
