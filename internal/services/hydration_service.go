package services

import (
	"errors"
	"time"

	"github.com/terraincognita07/cyra/internal/db"
	"github.com/terraincognita07/cyra/internal/models"
)

var ErrInvalidAmount = errors.New("amount must be positive")

// HydrationView is the API-facing shape of one day's intake, including
// the derived figures.
type HydrationView struct {
	Date            time.Time `json:"date"`
	AmountMl        int       `json:"amount_ml"`
	GlassSizeMl     int       `json:"glass_size_ml"`
	DailyGoalMl     int       `json:"daily_goal_ml"`
	GlassesCount    float64   `json:"glasses_count"`
	TotalLiters     float64   `json:"total_liters"`
	ProgressPercent float64   `json:"progress_percent"`
}

type HydrationService struct {
	hydration *db.HydrationRepository
	location  *time.Location
}

func NewHydrationService(hydration *db.HydrationRepository, location *time.Location) *HydrationService {
	if location == nil {
		location = time.UTC
	}
	return &HydrationService{hydration: hydration, location: location}
}

// GetDay returns the day's log, or an untracked default when nothing was
// logged yet.
func (service *HydrationService) GetDay(customerID uint, day time.Time) (HydrationView, error) {
	dayStart, dayEnd := DayRange(day, service.location)
	log, found, err := service.hydration.FindByCustomerAndDayRange(customerID, dayStart, dayEnd)
	if err != nil {
		return HydrationView{}, err
	}
	if !found {
		log = models.HydrationLog{
			CustomerID:  customerID,
			Date:        dayStart,
			GlassSizeMl: models.DefaultGlassSizeMl,
			DailyGoalMl: models.DefaultDailyGoalMl,
		}
	}
	return viewOf(log), nil
}

// AddIntake adds milliliters to the day's total, creating the log row on
// first use.
func (service *HydrationService) AddIntake(customerID uint, day time.Time, amountMl int) (HydrationView, error) {
	if amountMl <= 0 {
		return HydrationView{}, ErrInvalidAmount
	}

	dayStart, dayEnd := DayRange(day, service.location)
	log, found, err := service.hydration.FindByCustomerAndDayRange(customerID, dayStart, dayEnd)
	if err != nil {
		return HydrationView{}, err
	}

	if !found {
		log = models.HydrationLog{
			CustomerID:  customerID,
			Date:        dayStart,
			AmountMl:    amountMl,
			GlassSizeMl: models.DefaultGlassSizeMl,
			DailyGoalMl: models.DefaultDailyGoalMl,
		}
		if err := service.hydration.Create(&log); err != nil {
			return HydrationView{}, err
		}
		return viewOf(log), nil
	}

	log.AmountMl += amountMl
	if err := service.hydration.Save(&log); err != nil {
		return HydrationView{}, err
	}
	return viewOf(log), nil
}

// AddGlass adds one default glass of water.
func (service *HydrationService) AddGlass(customerID uint, day time.Time) (HydrationView, error) {
	dayStart, dayEnd := DayRange(day, service.location)
	log, found, err := service.hydration.FindByCustomerAndDayRange(customerID, dayStart, dayEnd)
	if err != nil {
		return HydrationView{}, err
	}

	glassSize := models.DefaultGlassSizeMl
	if found && log.GlassSizeMl > 0 {
		glassSize = log.GlassSizeMl
	}
	return service.AddIntake(customerID, day, glassSize)
}

// UpdateGoals changes the glass size and daily goal for the day's log.
func (service *HydrationService) UpdateGoals(customerID uint, day time.Time, glassSizeMl int, dailyGoalMl int) (HydrationView, error) {
	if glassSizeMl <= 0 || dailyGoalMl <= 0 {
		return HydrationView{}, ErrInvalidAmount
	}

	dayStart, dayEnd := DayRange(day, service.location)
	log, found, err := service.hydration.FindByCustomerAndDayRange(customerID, dayStart, dayEnd)
	if err != nil {
		return HydrationView{}, err
	}

	if !found {
		log = models.HydrationLog{
			CustomerID:  customerID,
			Date:        dayStart,
			GlassSizeMl: glassSizeMl,
			DailyGoalMl: dailyGoalMl,
		}
		if err := service.hydration.Create(&log); err != nil {
			return HydrationView{}, err
		}
		return viewOf(log), nil
	}

	log.GlassSizeMl = glassSizeMl
	log.DailyGoalMl = dailyGoalMl
	if err := service.hydration.Save(&log); err != nil {
		return HydrationView{}, err
	}
	return viewOf(log), nil
}

func viewOf(log models.HydrationLog) HydrationView {
	return HydrationView{
		Date:            log.Date,
		AmountMl:        log.AmountMl,
		GlassSizeMl:     log.GlassSizeMl,
		DailyGoalMl:     log.DailyGoalMl,
		GlassesCount:    log.GlassesCount(),
		TotalLiters:     log.TotalLiters(),
		ProgressPercent: log.ProgressPercent(),
	}
}
