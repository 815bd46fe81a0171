package services

import (
	"fmt"
	"time"

	"github.com/terraincognita07/cyra/internal/models"
)

const (
	CardStatusPeriodActive      = "period_active"
	CardStatusPeriodLate        = "period_late"
	CardStatusFertileWindow     = "fertile_window"
	CardStatusUpcomingOvulation = "upcoming_ovulation"
	CardStatusUpcomingPeriod    = "upcoming_period"
	CardStatusNoData            = "no_data"
)

const (
	shortDateLayout = "Jan 02"
	longDateLayout  = "Jan 02, 2006"
)

// CardView is the single human-facing summary of the customer's current
// cycle state.
type CardView struct {
	Status     string `json:"card_status"`
	Label      string `json:"card_label"`
	Value      string `json:"card_value"`
	Subtitle   string `json:"card_subtitle"`
	ButtonText string `json:"card_button_text"`
}

// SelectCard picks the status card in strict priority order: an in-progress
// period always dominates the display, lateness is surfaced before fertility
// signals, then the nearest upcoming event, and finally the empty state.
// First match wins.
func SelectCard(activePeriod *models.PeriodRecord, projection CycleProjection, today time.Time, location *time.Location) CardView {
	if activePeriod != nil {
		return activePeriodCard(*activePeriod, today, location)
	}

	if lateDays, late := LatePeriodDays(projection, today); late {
		return latePeriodCard(lateDays, projection)
	}

	if IsFertileToday(projection, today) {
		daysLeft := DaysBetween(today, projection.FertileWindowEnd)
		if daysLeft >= 0 {
			return fertileWindowCard(daysLeft, projection)
		}
	}

	if card, found := upcomingEventCard(projection, today); found {
		return card
	}

	return CardView{
		Status:     CardStatusNoData,
		Label:      "Next Event",
		Value:      "Not Available",
		Subtitle:   "Start tracking your periods",
		ButtonText: "Start Period",
	}
}

func activePeriodCard(record models.PeriodRecord, today time.Time, location *time.Location) CardView {
	endDay := periodEndDay(record, today, location)
	subtitle := fmt.Sprintf("%s - %s",
		DateAtLocation(record.StartDate, location).Format(shortDateLayout),
		endDay.Format(longDateLayout))

	return CardView{
		Status:     CardStatusPeriodActive,
		Label:      "Current Period",
		Value:      "In Progress",
		Subtitle:   subtitle,
		ButtonText: "End Period",
	}
}

func latePeriodCard(lateDays int, projection CycleProjection) CardView {
	subtitle := "Please start your period when it arrives"
	if !projection.NextPeriodStart.IsZero() {
		subtitle = "Expected: " + projection.NextPeriodStart.Format(longDateLayout)
	}

	return CardView{
		Status:     CardStatusPeriodLate,
		Label:      "Period Late",
		Value:      fmt.Sprintf("%d %s", lateDays, pluralDay(lateDays)),
		Subtitle:   subtitle,
		ButtonText: "Start Period",
	}
}

func fertileWindowCard(daysLeft int, projection CycleProjection) CardView {
	value := "Today"
	if daysLeft > 0 {
		value = fmt.Sprintf("%d %s", daysLeft, pluralDay(daysLeft))
	}

	subtitle := fmt.Sprintf("%s - %s",
		projection.FertileWindowStart.Format(shortDateLayout),
		projection.FertileWindowEnd.Format(longDateLayout))

	return CardView{
		Status:     CardStatusFertileWindow,
		Label:      "Fertile Window Ends",
		Value:      value,
		Subtitle:   subtitle,
		ButtonText: "View History",
	}
}

// upcomingEventCard picks whichever of ovulation and next period start is
// nearest in the future. On a tie ovulation wins, since the period check
// only replaces it when strictly closer.
func upcomingEventCard(projection CycleProjection, today time.Time) (CardView, bool) {
	eventDays := -1
	eventLabel := ""
	eventStatus := ""
	eventDate := time.Time{}

	if !projection.OvulationDate.IsZero() && !projection.OvulationDate.Before(today) {
		eventDays = DaysBetween(today, projection.OvulationDate)
		eventLabel = "Ovulation"
		eventStatus = CardStatusUpcomingOvulation
		eventDate = projection.OvulationDate
	}

	if !projection.NextPeriodStart.IsZero() && !projection.NextPeriodStart.Before(today) {
		daysToPeriod := DaysBetween(today, projection.NextPeriodStart)
		if eventDays < 0 || daysToPeriod < eventDays {
			eventDays = daysToPeriod
			eventLabel = "Next Period"
			eventStatus = CardStatusUpcomingPeriod
			eventDate = projection.NextPeriodStart
		}
	}

	if eventDays < 0 {
		return CardView{}, false
	}

	value := "Today"
	switch {
	case eventDays == 1:
		value = "1 Day Left"
	case eventDays > 1:
		value = fmt.Sprintf("%d Days Left", eventDays)
	}

	return CardView{
		Status:     eventStatus,
		Label:      eventLabel,
		Value:      value,
		Subtitle:   "Expected: " + eventDate.Format(longDateLayout),
		ButtonText: "Start Period",
	}, true
}

func pluralDay(count int) string {
	if count == 1 {
		return "Day"
	}
	return "Days"
}
