package mapping

import (
	"github.com/SscSPs/car_insurance_app/internal/core/domain"
	"github.com/SscSPs/car_insurance_app/internal/models"
)

// ToModelPolicy converts a domain InsurancePolicy to a model InsurancePolicy
func ToModelPolicy(d domain.InsurancePolicy) models.InsurancePolicy {
	return models.InsurancePolicy{
		PolicyID:  d.PolicyID,
		CarID:     d.CarID,
		Provider:  d.Provider,
		StartDate: d.StartDate,
		EndDate:   d.EndDate,
		CreatedAt: d.CreatedAt,
	}
}

// ToDomainPolicy converts a model InsurancePolicy to a domain InsurancePolicy.
// DATE columns are normalised to UTC midnight.
func ToDomainPolicy(m models.InsurancePolicy) domain.InsurancePolicy {
	return domain.InsurancePolicy{
		PolicyID:  m.PolicyID,
		CarID:     m.CarID,
		Provider:  m.Provider,
		StartDate: domain.DateOf(m.StartDate),
		EndDate:   domain.DateOf(m.EndDate),
		CreatedAt: m.CreatedAt,
	}
}

// ToDomainPolicySlice converts a slice of model policies to a slice of domain policies
func ToDomainPolicySlice(ms []models.InsurancePolicy) []domain.InsurancePolicy {
	ds := make([]domain.InsurancePolicy, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPolicy(m)
	}
	return ds
}
