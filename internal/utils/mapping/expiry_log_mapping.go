package mapping

import (
	"github.com/SscSPs/car_insurance_app/internal/core/domain"
	"github.com/SscSPs/car_insurance_app/internal/models"
)

// ToModelExpiryLog converts a domain PolicyExpiryLog to a model PolicyExpiryLog
func ToModelExpiryLog(d domain.PolicyExpiryLog) models.PolicyExpiryLog {
	return models.PolicyExpiryLog{
		LogID:          d.LogID,
		PolicyID:       d.PolicyID,
		LoggedExpiryAt: d.LoggedExpiryAt,
	}
}

// ToDomainExpiryLog converts a model PolicyExpiryLog to a domain PolicyExpiryLog
func ToDomainExpiryLog(m models.PolicyExpiryLog) domain.PolicyExpiryLog {
	d := domain.PolicyExpiryLog{
		LogID:          m.LogID,
		PolicyID:       m.PolicyID,
		LoggedExpiryAt: m.LoggedExpiryAt,
	}
	if m.CarID != nil {
		d.CarID = *m.CarID
	}
	if m.EndDate != nil {
		d.EndDate = domain.DateOf(*m.EndDate)
	}
	return d
}

// ToDomainExpiryLogSlice converts a slice of model logs to a slice of domain logs
func ToDomainExpiryLogSlice(ms []models.PolicyExpiryLog) []domain.PolicyExpiryLog {
	ds := make([]domain.PolicyExpiryLog, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExpiryLog(m)
	}
	return ds
}
