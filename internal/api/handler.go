package api

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/terraincognita07/cyra/internal/db"
	"github.com/terraincognita07/cyra/internal/services"
	"gorm.io/gorm"
)

const contextClaimsKey = "auth_claims"

type Handler struct {
	secretKey []byte
	location  *time.Location
	validate  *validator.Validate
	repos     *db.Repositories
	auth      *services.AuthService
	periods   *services.PeriodService
	status    *services.StatusService
	settings  *services.PeriodSettingsService
	customers *services.CustomerService
	days      *services.DailyEntryService
	hydration *services.HydrationService
}

func NewHandler(database *gorm.DB, secretKey string, location *time.Location) (*Handler, error) {
	if location == nil {
		location = time.UTC
	}

	repos := db.NewRepositories(database)
	if err := repos.Symptoms.EnsureBuiltins(); err != nil {
		return nil, err
	}

	return &Handler{
		secretKey: []byte(secretKey),
		location:  location,
		validate:  validator.New(),
		repos:     repos,
		auth:      services.NewAuthService(database, repos.Users, repos.Customers),
		periods:   services.NewPeriodService(database, repos.Periods, repos.PeriodProfiles, repos.Settings, location),
		status:    services.NewStatusService(repos.Periods, repos.PeriodProfiles, location),
		settings:  services.NewPeriodSettingsService(repos.PeriodProfiles),
		customers: services.NewCustomerService(repos.Customers, location),
		days:      services.NewDailyEntryService(repos.DailyEntries, location),
		hydration: services.NewHydrationService(repos.Hydration, location),
	}, nil
}
