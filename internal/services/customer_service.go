package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/terraincognita07/cyra/internal/db"
	"github.com/terraincognita07/cyra/internal/models"
)

var ErrInvalidWeight = errors.New("weight must be positive")

const (
	healthyBMIMin = 18.5
	healthyBMIMax = 25.0
)

// BMISummary pairs the standard BMI with the healthy weight range for the
// customer's height and a plain-language note on the distance to it.
type BMISummary struct {
	BMI             float64  `json:"bmi"`
	HealthyWeightLo float64  `json:"healthy_weight_lo"`
	HealthyWeightHi float64  `json:"healthy_weight_hi"`
	ChangeMessage   *string  `json:"change_message"`
	Notes           []string `json:"notes"`
}

type CustomerService struct {
	customers *db.CustomerRepository
	location  *time.Location
}

func NewCustomerService(customers *db.CustomerRepository, location *time.Location) *CustomerService {
	if location == nil {
		location = time.UTC
	}
	return &CustomerService{customers: customers, location: location}
}

func (service *CustomerService) GetCustomer(customerID uint) (models.Customer, error) {
	return service.customers.FindByID(customerID)
}

func (service *CustomerService) UpdateProfile(customerID uint, updates map[string]any) error {
	return service.customers.UpdateByID(customerID, updates)
}

func (service *CustomerService) AddWeightEntry(customerID uint, weight float64, unit string, entryDate time.Time) (models.WeightEntry, error) {
	if weight <= 0 {
		return models.WeightEntry{}, ErrInvalidWeight
	}
	if unit != models.WeightUnitKg && unit != models.WeightUnitLb {
		unit = models.WeightUnitKg
	}

	entry := models.WeightEntry{
		CustomerID: customerID,
		Weight:     weight,
		Unit:       unit,
		EntryDate:  DateAtLocation(entryDate, service.location),
	}
	if err := service.customers.CreateWeightEntry(&entry); err != nil {
		return models.WeightEntry{}, err
	}
	return entry, nil
}

func (service *CustomerService) LatestWeight(customerID uint) (models.WeightEntry, bool, error) {
	return service.customers.LatestWeightEntry(customerID)
}

func (service *CustomerService) ListWeightEntries(customerID uint) ([]models.WeightEntry, error) {
	return service.customers.ListWeightEntries(customerID)
}

// BMIForCustomer combines the latest weight with the stored height.
// ok is false while either measurement is missing.
func (service *CustomerService) BMIForCustomer(customerID uint) (BMISummary, bool, error) {
	customer, err := service.customers.FindByID(customerID)
	if err != nil {
		return BMISummary{}, false, err
	}
	if customer.HeightCm == nil || *customer.HeightCm <= 0 {
		return BMISummary{}, false, nil
	}

	latest, found, err := service.customers.LatestWeightEntry(customerID)
	if err != nil {
		return BMISummary{}, false, err
	}
	if !found {
		return BMISummary{}, false, nil
	}

	return BMIHealthSummary(latest.WeightKg(), *customer.HeightCm), true, nil
}

// BMIHealthSummary computes the standard BMI plus the healthy weight range
// for the height and how far the current weight sits from it.
func BMIHealthSummary(weightKg float64, heightCm float64) BMISummary {
	heightM := heightCm / 100.0
	bmi := weightKg / (heightM * heightM)

	minWeight := healthyBMIMin * heightM * heightM
	maxWeight := healthyBMIMax * heightM * heightM

	summary := BMISummary{
		BMI:             bmi,
		HealthyWeightLo: minWeight,
		HealthyWeightHi: maxWeight,
		Notes: []string{
			"Healthy BMI: 18.5-25 kg/m²",
			fmt.Sprintf("Healthy weight: %.1f-%.1f kg", minWeight, maxWeight),
		},
	}

	switch {
	case weightKg < minWeight:
		message := fmt.Sprintf("Gain %.1f kg to reach a healthy weight.", minWeight-weightKg)
		summary.ChangeMessage = &message
	case weightKg > maxWeight:
		message := fmt.Sprintf("Lose %.1f kg to reach a healthy weight.", weightKg-maxWeight)
		summary.ChangeMessage = &message
	}

	return summary
}
