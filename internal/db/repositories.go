package db

import "gorm.io/gorm"

type Repositories struct {
	Users          *UserRepository
	Customers      *CustomerRepository
	Periods        *PeriodRepository
	PeriodProfiles *PeriodProfileRepository
	DailyEntries   *DailyEntryRepository
	Symptoms       *SymptomRepository
	Hydration      *HydrationRepository
	Settings       *AppSettingsRepository
	Tips           *DailyTipRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:          NewUserRepository(database),
		Customers:      NewCustomerRepository(database),
		Periods:        NewPeriodRepository(database),
		PeriodProfiles: NewPeriodProfileRepository(database),
		DailyEntries:   NewDailyEntryRepository(database),
		Symptoms:       NewSymptomRepository(database),
		Hydration:      NewHydrationRepository(database),
		Settings:       NewAppSettingsRepository(database),
		Tips:           NewDailyTipRepository(database),
	}
}
