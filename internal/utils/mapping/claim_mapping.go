package mapping

import (
	"github.com/SscSPs/car_insurance_app/internal/core/domain"
	"github.com/SscSPs/car_insurance_app/internal/models"
)

// ToModelClaim converts a domain Claim to a model Claim
func ToModelClaim(d domain.Claim) models.Claim {
	return models.Claim{
		ClaimID:     d.ClaimID,
		CarID:       d.CarID,
		ClaimDate:   d.ClaimDate,
		Description: d.Description,
		Amount:      d.Amount,
		CreatedAt:   d.CreatedAt,
	}
}

// ToDomainClaim converts a model Claim to a domain Claim
func ToDomainClaim(m models.Claim) domain.Claim {
	return domain.Claim{
		ClaimID:     m.ClaimID,
		CarID:       m.CarID,
		ClaimDate:   domain.DateOf(m.ClaimDate),
		Description: m.Description,
		Amount:      m.Amount,
		CreatedAt:   m.CreatedAt,
	}
}

// ToDomainClaimSlice converts a slice of model claims to a slice of domain claims
func ToDomainClaimSlice(ms []models.Claim) []domain.Claim {
	ds := make([]domain.Claim, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainClaim(m)
	}
	return ds
}
