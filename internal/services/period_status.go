package services

import (
	"time"

	"github.com/terraincognita07/cyra/internal/db"
	"github.com/terraincognita07/cyra/internal/models"
)

// DefaultPeriodPageSize bounds the period history listing.
const DefaultPeriodPageSize = 10

// StatusSnapshot is the full read-side view of a customer's cycle state:
// the current prediction fields plus the selected status card. Nullable
// fields stay nil when no history supports them; absence of a prediction
// is an expected steady state, not an error.
type StatusSnapshot struct {
	ActivePeriod       *models.PeriodRecord `json:"active_period"`
	IsFertile          bool                 `json:"is_fertile"`
	PregnancyChance    string               `json:"pregnancy_chance"`
	NextPeriodDate     *time.Time           `json:"next_period_date"`
	OvulationDate      *time.Time           `json:"ovulation_date"`
	FertileWindowStart *time.Time           `json:"fertile_window_start"`
	FertileWindowEnd   *time.Time           `json:"fertile_window_end"`
	AvgCycleLength     int                  `json:"avg_cycle_length"`
	AvgPeriodLength    int                  `json:"avg_period_length"`
	CurrentCycleDay    *int                 `json:"current_cycle_day"`
	CurrentPhase       *string              `json:"current_phase"`
	CycleRegularity    string               `json:"cycle_regularity"`
	CycleVariance      *float64             `json:"cycle_variance"`
	LatePeriodDays     *int                 `json:"late_period_days"`
	CardStatus         string               `json:"card_status"`
	CardLabel          string               `json:"card_label"`
	CardValue          string               `json:"card_value"`
	CardSubtitle       string               `json:"card_subtitle"`
	CardButtonText     string               `json:"card_button_text"`
}

type PeriodListItem struct {
	ID          string     `json:"id"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	CycleLength *int       `json:"cycle_length"`
}

type PeriodPage struct {
	Items      []PeriodListItem `json:"items"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalCount int64            `json:"total_count"`
}

// StatusService is the pure read path. It only reads committed scalar
// fields and computes derived properties on the fly, so it takes no locks.
type StatusService struct {
	periods  *db.PeriodRepository
	profiles *db.PeriodProfileRepository
	location *time.Location
}

func NewStatusService(periods *db.PeriodRepository, profiles *db.PeriodProfileRepository, location *time.Location) *StatusService {
	if location == nil {
		location = time.UTC
	}
	return &StatusService{periods: periods, profiles: profiles, location: location}
}

// GetStatus assembles the status snapshot for a customer. A customer with
// no profile yet gets the default one: predictions absent, averages at
// their defaults, and the no-data card.
func (service *StatusService) GetStatus(customerID uint, now time.Time) (StatusSnapshot, error) {
	profile, found, err := service.profiles.FindByCustomer(customerID)
	if err != nil {
		return StatusSnapshot{}, err
	}
	if !found {
		profile = models.DefaultPeriodProfile(customerID)
	}

	var lastPeriod *models.PeriodRecord
	if profile.LastPeriodID != nil {
		record, recordFound, err := service.periods.FindByIDForCustomer(*profile.LastPeriodID, customerID)
		if err != nil {
			return StatusSnapshot{}, err
		}
		if recordFound {
			lastPeriod = &record
		}
	}

	var activePeriod *models.PeriodRecord
	dayStart, dayEnd := DayRange(now, service.location)
	active, activeFound, err := service.periods.FindActiveOn(customerID, dayStart, dayEnd)
	if err != nil {
		return StatusSnapshot{}, err
	}
	if activeFound {
		activePeriod = &active
	}

	today := DateAtLocation(now, service.location)
	inputs := ProjectionInputsFromProfile(profile, lastPeriod)
	projection := BuildCycleProjection(inputs, service.location)

	snapshot := StatusSnapshot{
		ActivePeriod:    activePeriod,
		IsFertile:       IsFertileToday(projection, today),
		PregnancyChance: PregnancyChanceToday(projection, today),
		AvgCycleLength:  inputs.AvgCycleLength,
		AvgPeriodLength: inputs.AvgPeriodLength,
		CycleRegularity: profile.CycleRegularity,
		CycleVariance:   profile.CycleVariance,
	}

	if !projection.NextPeriodStart.IsZero() {
		snapshot.NextPeriodDate = timePtr(projection.NextPeriodStart)
		snapshot.OvulationDate = timePtr(projection.OvulationDate)
		snapshot.FertileWindowStart = timePtr(projection.FertileWindowStart)
		snapshot.FertileWindowEnd = timePtr(projection.FertileWindowEnd)
	}

	if cycleDay := CurrentCycleDay(inputs, today, service.location); cycleDay > 0 {
		snapshot.CurrentCycleDay = &cycleDay
	}
	if phase := CurrentPhase(inputs, projection, today, service.location); phase != "" {
		snapshot.CurrentPhase = &phase
	}
	if lateDays, late := LatePeriodDays(projection, today); late {
		snapshot.LatePeriodDays = &lateDays
	}

	card := SelectCard(activePeriod, projection, today, service.location)
	snapshot.CardStatus = card.Status
	snapshot.CardLabel = card.Label
	snapshot.CardValue = card.Value
	snapshot.CardSubtitle = card.Subtitle
	snapshot.CardButtonText = card.ButtonText

	return snapshot, nil
}

// ListPeriods returns one page of the customer's history, newest first.
func (service *StatusService) ListPeriods(customerID uint, page int, pageSize int) (PeriodPage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = DefaultPeriodPageSize
	}

	totalCount, err := service.periods.CountByCustomer(customerID)
	if err != nil {
		return PeriodPage{}, err
	}

	records, err := service.periods.ListByCustomerDesc(customerID, pageSize, (page-1)*pageSize)
	if err != nil {
		return PeriodPage{}, err
	}

	items := make([]PeriodListItem, 0, len(records))
	for _, record := range records {
		items = append(items, PeriodListItem{
			ID:          record.ID,
			StartDate:   record.StartDate,
			EndDate:     record.EndDate,
			CycleLength: record.CycleLength,
		})
	}

	return PeriodPage{
		Items:      items,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: totalCount,
	}, nil
}

func timePtr(value time.Time) *time.Time {
	return &value
}
