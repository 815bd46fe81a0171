package services

import (
	"time"

	"github.com/terraincognita07/cyra/internal/models"
)

// FertileWindowLeadDays is how many days before ovulation the fertile
// window opens; it closes one day after ovulation.
const FertileWindowLeadDays = 5

// ProjectionInputs is the snapshot the projector works from: the reference
// period record and the stored scalar settings. Nothing else feeds the
// forward-looking dates, so they are always consistent with current inputs.
type ProjectionInputs struct {
	LastPeriod        *models.PeriodRecord
	AvgCycleLength    int
	AvgPeriodLength   int
	LutealPhaseLength int
}

func ProjectionInputsFromProfile(profile models.PeriodProfile, lastPeriod *models.PeriodRecord) ProjectionInputs {
	inputs := ProjectionInputs{
		LastPeriod:        lastPeriod,
		AvgCycleLength:    profile.AvgCycleLength,
		AvgPeriodLength:   profile.AvgPeriodLength,
		LutealPhaseLength: profile.LutealPhaseLength,
	}
	if inputs.AvgCycleLength <= 0 {
		inputs.AvgCycleLength = models.DefaultCycleLength
	}
	if inputs.AvgPeriodLength <= 0 {
		inputs.AvgPeriodLength = models.DefaultPeriodLength
	}
	if inputs.LutealPhaseLength <= 0 {
		inputs.LutealPhaseLength = models.DefaultLutealPhaseLength
	}
	return inputs
}

// CycleProjection carries the forward-looking dates. Zero times mean the
// value is not derivable (no period history yet).
type CycleProjection struct {
	NextPeriodStart    time.Time
	OvulationDate      time.Time
	FertileWindowStart time.Time
	FertileWindowEnd   time.Time
}

// BuildCycleProjection derives the prediction dates from the last period
// start and the scalar settings. Computed on every read, never cached.
func BuildCycleProjection(inputs ProjectionInputs, location *time.Location) CycleProjection {
	projection := CycleProjection{}
	if inputs.LastPeriod == nil || inputs.AvgCycleLength <= 0 {
		return projection
	}

	lastStart := DateAtLocation(inputs.LastPeriod.StartDate, location)
	projection.NextPeriodStart = lastStart.AddDate(0, 0, inputs.AvgCycleLength)
	projection.OvulationDate = projection.NextPeriodStart.AddDate(0, 0, -inputs.LutealPhaseLength)
	projection.FertileWindowStart = projection.OvulationDate.AddDate(0, 0, -FertileWindowLeadDays)
	projection.FertileWindowEnd = projection.OvulationDate.AddDate(0, 0, 1)
	return projection
}

// FollicularPhaseLength is the cycle length minus the fixed luteal phase.
func FollicularPhaseLength(inputs ProjectionInputs) int {
	return inputs.AvgCycleLength - inputs.LutealPhaseLength
}

// CurrentCycleDay is 1 on the day the last period started, or 0 when there
// is no history or the reference start lies in the future.
func CurrentCycleDay(inputs ProjectionInputs, today time.Time, location *time.Location) int {
	if inputs.LastPeriod == nil {
		return 0
	}
	lastStart := DateAtLocation(inputs.LastPeriod.StartDate, location)
	if today.Before(lastStart) {
		return 0
	}
	return DaysBetween(lastStart, today) + 1
}

func IsFertileToday(projection CycleProjection, today time.Time) bool {
	return betweenCalendarDaysInclusive(today, projection.FertileWindowStart, projection.FertileWindowEnd)
}

// PregnancyChanceToday tiers conception probability by distance from
// ovulation: high within [ovulation-2, ovulation+1], medium elsewhere in
// the fertile window or within two days of either window boundary, low
// otherwise or when no ovulation date exists.
func PregnancyChanceToday(projection CycleProjection, today time.Time) string {
	if projection.OvulationDate.IsZero() {
		return models.PregnancyChanceLow
	}

	highStart := projection.OvulationDate.AddDate(0, 0, -2)
	highEnd := projection.OvulationDate.AddDate(0, 0, 1)
	if betweenCalendarDaysInclusive(today, highStart, highEnd) {
		return models.PregnancyChanceHigh
	}

	if betweenCalendarDaysInclusive(today, projection.FertileWindowStart, projection.FertileWindowEnd) {
		return models.PregnancyChanceMedium
	}

	nearBefore := projection.FertileWindowStart.AddDate(0, 0, -2)
	nearAfter := projection.FertileWindowEnd.AddDate(0, 0, 2)
	if betweenCalendarDaysInclusive(today, nearBefore, projection.FertileWindowStart) ||
		betweenCalendarDaysInclusive(today, projection.FertileWindowEnd, nearAfter) {
		return models.PregnancyChanceMedium
	}

	return models.PregnancyChanceLow
}

// CurrentPhase names the cycle phase covering today. A cycle running past
// its predicted next start stays luteal: lateness is not a separate phase.
// Empty string means the phase is not derivable.
func CurrentPhase(inputs ProjectionInputs, projection CycleProjection, today time.Time, location *time.Location) string {
	if inputs.LastPeriod == nil {
		return ""
	}

	if inputs.LastPeriod.CoversDay(today, today) {
		return models.PhaseMenstrual
	}

	if projection.OvulationDate.IsZero() {
		return ""
	}

	ovulationBandStart := projection.OvulationDate.AddDate(0, 0, -1)
	ovulationBandEnd := projection.OvulationDate.AddDate(0, 0, 1)
	if betweenCalendarDaysInclusive(today, ovulationBandStart, ovulationBandEnd) {
		return models.PhaseOvulation
	}

	if !today.Before(projection.NextPeriodStart) {
		return models.PhaseLuteal
	}
	if today.After(projection.OvulationDate) {
		return models.PhaseLuteal
	}

	lastEnd := periodEndDay(*inputs.LastPeriod, today, location)
	if today.After(lastEnd) && today.Before(projection.OvulationDate) {
		return models.PhaseFollicular
	}

	return ""
}

// LatePeriodDays reports how many days overdue the predicted period is.
// "Not late" is absence, never zero: ok is false when there is no
// prediction or the predicted date has not passed yet.
func LatePeriodDays(projection CycleProjection, today time.Time) (int, bool) {
	if projection.NextPeriodStart.IsZero() {
		return 0, false
	}
	lateDays := DaysBetween(projection.NextPeriodStart, today)
	if lateDays <= 0 {
		return 0, false
	}
	return lateDays, true
}

// periodEndDay resolves the calendar day a record ends on, treating an
// open record as running through today.
func periodEndDay(record models.PeriodRecord, today time.Time, location *time.Location) time.Time {
	if record.EndDate != nil {
		return DateAtLocation(*record.EndDate, location)
	}
	return today
}
