package mapping

import (
	"github.com/SscSPs/car_insurance_app/internal/core/domain"
	"github.com/SscSPs/car_insurance_app/internal/models"
)

// ToModelOwner converts a domain Owner to a model Owner
func ToModelOwner(d domain.Owner) models.Owner {
	return models.Owner{
		OwnerID:    d.OwnerID,
		OwnerName:  d.OwnerName,
		OwnerEmail: d.OwnerEmail,
	}
}

// ToModelCar converts a domain Car to a model Car
func ToModelCar(d domain.Car) models.Car {
	m := models.Car{
		CarID:   d.CarID,
		VIN:     d.VIN,
		Make:    d.Make,
		Model:   d.Model,
		OwnerID: d.OwnerID,
	}
	if d.YearOfManufacture != nil {
		y := int32(*d.YearOfManufacture)
		m.YearOfManufacture = &y
	}
	return m
}

// ToDomainCar converts a model Car to a domain Car
func ToDomainCar(m models.Car) domain.Car {
	d := domain.Car{
		CarID:   m.CarID,
		VIN:     m.VIN,
		Make:    m.Make,
		Model:   m.Model,
		OwnerID: m.OwnerID,
	}
	if m.YearOfManufacture != nil {
		y := int(*m.YearOfManufacture)
		d.YearOfManufacture = &y
	}
	return d
}
