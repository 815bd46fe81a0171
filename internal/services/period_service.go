package services

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/terraincognita07/cyra/internal/db"
	"github.com/terraincognita07/cyra/internal/models"
	"gorm.io/gorm"
)

var (
	ErrPeriodNotFound     = errors.New("period record not found")
	ErrInvalidInterval    = errors.New("end date is before start date")
	ErrConcurrentMutation = errors.New("concurrent period mutation in progress")
)

// Actor identifies who performs a mutation. Audit stamping is explicit:
// callers pass the actor instead of the service reaching into ambient
// request state.
type Actor struct {
	UserID uint
}

// PeriodService owns every period record mutation. Each write recomputes
// the record's derived lengths, then re-projects the customer's profile
// inside the same transaction, so a committed write is never observably
// stale. Writes for the same customer are serialized; cross-customer
// writes proceed in parallel.
type PeriodService struct {
	database *gorm.DB
	periods  *db.PeriodRepository
	profiles *db.PeriodProfileRepository
	settings *db.AppSettingsRepository
	location *time.Location
	locks    customerLocks
}

func NewPeriodService(
	database *gorm.DB,
	periods *db.PeriodRepository,
	profiles *db.PeriodProfileRepository,
	settings *db.AppSettingsRepository,
	location *time.Location,
) *PeriodService {
	if location == nil {
		location = time.UTC
	}
	return &PeriodService{
		database: database,
		periods:  periods,
		profiles: profiles,
		settings: settings,
		location: location,
	}
}

type StartPeriodInput struct {
	StartDate time.Time
	EndDate   *time.Time
}

// StartPeriod logs a new period. The end date may be omitted: the record
// stays open, counts as active through today, and is excluded from
// prediction math until it is closed.
func (service *PeriodService) StartPeriod(actor Actor, customerID uint, input StartPeriodInput, now time.Time) (models.PeriodRecord, error) {
	startDay := DateAtLocation(input.StartDate, service.location)
	var endDay *time.Time
	if input.EndDate != nil {
		day := DateAtLocation(*input.EndDate, service.location)
		if day.Before(startDay) {
			return models.PeriodRecord{}, ErrInvalidInterval
		}
		endDay = &day
	}

	release, acquired := service.locks.acquire(customerID)
	if !acquired {
		return models.PeriodRecord{}, ErrConcurrentMutation
	}
	defer release()

	record := models.PeriodRecord{
		ID:         uuid.NewString(),
		CustomerID: customerID,
		StartDate:  startDay,
		EndDate:    endDay,
		CreatedBy:  actor.UserID,
		UpdatedBy:  actor.UserID,
	}

	err := service.database.Transaction(func(tx *gorm.DB) error {
		periods := service.periods.WithTx(tx)
		if err := service.applyDerivedLengths(periods, &record); err != nil {
			return err
		}
		if err := periods.Create(&record); err != nil {
			return err
		}
		return RecalculateProfile(periods, service.profiles.WithTx(tx), service.settings.WithTx(tx).Load(), customerID, now, service.location)
	})
	if err != nil {
		return models.PeriodRecord{}, err
	}
	return record, nil
}

type UpdatePeriodInput struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// UpdatePeriod edits an existing record's dates. Supplying an end date for
// an open record closes it.
func (service *PeriodService) UpdatePeriod(actor Actor, customerID uint, recordID string, input UpdatePeriodInput, now time.Time) (models.PeriodRecord, error) {
	release, acquired := service.locks.acquire(customerID)
	if !acquired {
		return models.PeriodRecord{}, ErrConcurrentMutation
	}
	defer release()

	var updated models.PeriodRecord
	err := service.database.Transaction(func(tx *gorm.DB) error {
		periods := service.periods.WithTx(tx)

		record, found, err := periods.FindByIDForCustomer(recordID, customerID)
		if err != nil {
			return err
		}
		if !found {
			return ErrPeriodNotFound
		}

		if input.StartDate != nil {
			record.StartDate = DateAtLocation(*input.StartDate, service.location)
		}
		if input.EndDate != nil {
			endDay := DateAtLocation(*input.EndDate, service.location)
			record.EndDate = &endDay
		}
		if record.EndDate != nil && record.EndDate.Before(record.StartDate) {
			return ErrInvalidInterval
		}

		record.UpdatedBy = actor.UserID
		if err := service.applyDerivedLengths(periods, &record); err != nil {
			return err
		}
		if err := periods.Save(&record); err != nil {
			return err
		}

		updated = record
		return RecalculateProfile(periods, service.profiles.WithTx(tx), service.settings.WithTx(tx).Load(), customerID, now, service.location)
	})
	if err != nil {
		return models.PeriodRecord{}, err
	}
	return updated, nil
}

// ClosePeriod sets the end date on an existing record.
func (service *PeriodService) ClosePeriod(actor Actor, customerID uint, recordID string, endDate time.Time, now time.Time) (models.PeriodRecord, error) {
	return service.UpdatePeriod(actor, customerID, recordID, UpdatePeriodInput{EndDate: &endDate}, now)
}

// DeletePeriod removes a record and re-projects the profile.
func (service *PeriodService) DeletePeriod(actor Actor, customerID uint, recordID string, now time.Time) error {
	release, acquired := service.locks.acquire(customerID)
	if !acquired {
		return ErrConcurrentMutation
	}
	defer release()

	return service.database.Transaction(func(tx *gorm.DB) error {
		periods := service.periods.WithTx(tx)

		_, found, err := periods.FindByIDForCustomer(recordID, customerID)
		if err != nil {
			return err
		}
		if !found {
			return ErrPeriodNotFound
		}

		if err := periods.DeleteByID(recordID); err != nil {
			return err
		}
		return RecalculateProfile(periods, service.profiles.WithTx(tx), service.settings.WithTx(tx).Load(), customerID, now, service.location)
	})
}

// GetActivePeriod returns the record covering today, if any.
func (service *PeriodService) GetActivePeriod(customerID uint, now time.Time) (models.PeriodRecord, bool, error) {
	dayStart, dayEnd := DayRange(now, service.location)
	return service.periods.FindActiveOn(customerID, dayStart, dayEnd)
}

// applyDerivedLengths recomputes the record's own derived fields. The
// inclusive period length needs a closed interval; the cycle length is
// measured against the chronologically previous record's start. Other
// records' stored values are left untouched.
func (service *PeriodService) applyDerivedLengths(periods *db.PeriodRepository, record *models.PeriodRecord) error {
	if record.EndDate != nil {
		periodLength := DaysBetween(record.StartDate, *record.EndDate) + 1
		record.PeriodLength = &periodLength
	} else {
		record.PeriodLength = nil
	}

	previous, found, err := periods.FindPreviousBefore(record.CustomerID, record.StartDate, record.ID)
	if err != nil {
		return err
	}
	if !found {
		record.CycleLength = nil
		return nil
	}

	cycleLength := DaysBetween(previous.StartDate, record.StartDate)
	record.CycleLength = &cycleLength
	return nil
}

// customerLocks serializes profile recomputation per customer. TryLock
// keeps the failure mode explicit: a busy customer yields
// ErrConcurrentMutation and the caller decides whether to retry.
type customerLocks struct {
	mutex sync.Mutex
	locks map[uint]*sync.Mutex
}

func (locks *customerLocks) acquire(customerID uint) (func(), bool) {
	locks.mutex.Lock()
	if locks.locks == nil {
		locks.locks = make(map[uint]*sync.Mutex)
	}
	lock, exists := locks.locks[customerID]
	if !exists {
		lock = &sync.Mutex{}
		locks.locks[customerID] = lock
	}
	locks.mutex.Unlock()

	if !lock.TryLock() {
		return nil, false
	}
	return lock.Unlock, true
}
