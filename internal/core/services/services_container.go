package services

import (
	portsrepo "github.com/SscSPs/car_insurance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/car_insurance_app/internal/core/ports/services"
	"github.com/SscSPs/car_insurance_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, options ...ServiceOption) *portssvc.ServiceContainer {
	batchSize, maxBatches := DefaultExpiryBatchSize, DefaultExpiryMaxBatches
	if cfg != nil {
		batchSize, maxBatches = cfg.ExpiryScanBatchSize, cfg.ExpiryScanMaxBatches
	}

	return &portssvc.ServiceContainer{
		Car:      NewCarService(repos.CarRepo, options...),
		Policy:   NewPolicyService(repos.PolicyRepo, options...),
		Claim:    NewClaimService(repos.ClaimRepo, options...),
		Validity: NewValidityService(repos.PolicyRepo, options...),
		History:  NewHistoryService(repos.PolicyRepo, repos.ClaimRepo, options...),
		Expiry:   NewExpiryService(repos.ExpiryLogRepo, batchSize, maxBatches, options...),
	}
}
