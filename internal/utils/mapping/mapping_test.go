package mapping_test

import (
	"testing"
	"time"

	"github.com/SscSPs/car_insurance_app/internal/core/domain"
	"github.com/SscSPs/car_insurance_app/internal/models"
	"github.com/SscSPs/car_insurance_app/internal/utils/mapping"
	"github.com/stretchr/testify/assert"
)

func TestToDomainPolicy_NormalisesDates(t *testing.T) {
	// pgx may hand DATE values back in a non-UTC location.
	loc := time.FixedZone("UTC+3", 3*60*60)
	m := models.InsurancePolicy{
		PolicyID:  "p1",
		StartDate: time.Date(2025, time.January, 1, 0, 0, 0, 0, loc),
		EndDate:   time.Date(2025, time.December, 31, 0, 0, 0, 0, loc),
	}

	d := mapping.ToDomainPolicy(m)
	assert.Equal(t, domain.NewDate(2025, time.January, 1), d.StartDate)
	assert.Equal(t, domain.NewDate(2025, time.December, 31), d.EndDate)
}

func TestCarMapping_YearOfManufacture(t *testing.T) {
	year := 2019
	m := mapping.ToModelCar(domain.Car{CarID: "c1", YearOfManufacture: &year})
	if assert.NotNil(t, m.YearOfManufacture) {
		assert.EqualValues(t, 2019, *m.YearOfManufacture)
	}

	d := mapping.ToDomainCar(models.Car{CarID: "c1"})
	assert.Nil(t, d.YearOfManufacture)
}

func TestToDomainExpiryLog_OptionalJoinColumns(t *testing.T) {
	carID := "c1"
	end := domain.NewDate(2025, time.March, 31)

	withJoin := mapping.ToDomainExpiryLog(models.PolicyExpiryLog{LogID: "l1", PolicyID: "p1", CarID: &carID, EndDate: &end})
	assert.Equal(t, "c1", withJoin.CarID)
	assert.Equal(t, end, withJoin.EndDate)

	bare := mapping.ToDomainExpiryLog(models.PolicyExpiryLog{LogID: "l1", PolicyID: "p1"})
	assert.Empty(t, bare.CarID)
	assert.True(t, bare.EndDate.IsZero())
}
