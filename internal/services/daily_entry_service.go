package services

import (
	"errors"
	"strings"
	"time"

	"github.com/terraincognita07/cyra/internal/db"
	"github.com/terraincognita07/cyra/internal/models"
)

var ErrUnknownMood = errors.New("unknown mood")

type DailyEntryInput struct {
	Mood       string
	SymptomIDs []uint
	Notes      string
}

type DailyEntryService struct {
	entries  *db.DailyEntryRepository
	location *time.Location
}

func NewDailyEntryService(entries *db.DailyEntryRepository, location *time.Location) *DailyEntryService {
	if location == nil {
		location = time.UTC
	}
	return &DailyEntryService{entries: entries, location: location}
}

// UpsertEntry creates or replaces the customer's log for one calendar day.
// An update that clears everything deletes the row instead of keeping an
// empty one.
func (service *DailyEntryService) UpsertEntry(customerID uint, day time.Time, input DailyEntryInput) (models.DailyEntry, error) {
	mood := strings.TrimSpace(input.Mood)
	if !models.IsKnownMood(mood) {
		return models.DailyEntry{}, ErrUnknownMood
	}

	dayStart, dayEnd := DayRange(day, service.location)
	entry, found, err := service.entries.FindByCustomerAndDayRange(customerID, dayStart, dayEnd)
	if err != nil {
		return models.DailyEntry{}, err
	}

	if !found {
		entry = models.DailyEntry{
			CustomerID: customerID,
			Date:       dayStart,
			SymptomIDs: []uint{},
		}
	}

	entry.Mood = mood
	entry.SymptomIDs = input.SymptomIDs
	if entry.SymptomIDs == nil {
		entry.SymptomIDs = []uint{}
	}
	entry.Notes = strings.TrimSpace(input.Notes)

	if !entry.HasData() {
		if found {
			if err := service.entries.DeleteByCustomerAndDayRange(customerID, dayStart, dayEnd); err != nil {
				return models.DailyEntry{}, err
			}
		}
		return models.DailyEntry{CustomerID: customerID, Date: dayStart, SymptomIDs: []uint{}}, nil
	}

	if !found {
		if err := service.entries.Create(&entry); err != nil {
			return models.DailyEntry{}, err
		}
		return entry, nil
	}

	if err := service.entries.Save(&entry); err != nil {
		return models.DailyEntry{}, err
	}
	return entry, nil
}

func (service *DailyEntryService) GetEntry(customerID uint, day time.Time) (models.DailyEntry, bool, error) {
	dayStart, dayEnd := DayRange(day, service.location)
	return service.entries.FindByCustomerAndDayRange(customerID, dayStart, dayEnd)
}

func (service *DailyEntryService) ListEntries(customerID uint, from *time.Time, to *time.Time) ([]models.DailyEntry, error) {
	var fromStart *time.Time
	var toEnd *time.Time
	if from != nil {
		start, _ := DayRange(*from, service.location)
		fromStart = &start
	}
	if to != nil {
		_, end := DayRange(*to, service.location)
		toEnd = &end
	}
	return service.entries.ListByCustomerRange(customerID, fromStart, toEnd)
}
