package services

import (
	"time"

	"github.com/terraincognita07/cyra/internal/db"
	"github.com/terraincognita07/cyra/internal/models"
)

// RecalculateProfile re-projects a customer's period profile after any
// record mutation. It persists only the scalar fields the projector reads
// from; forward-looking dates stay derived. The routine is idempotent:
// running it twice with no intervening mutation stores identical state.
func RecalculateProfile(
	periods *db.PeriodRepository,
	profiles *db.PeriodProfileRepository,
	settings models.AppSettings,
	customerID uint,
	now time.Time,
	location *time.Location,
) error {
	profile, err := profiles.FindOrCreateByCustomer(customerID)
	if err != nil {
		return err
	}

	latest, found, err := periods.FindLatestByCustomer(customerID)
	if err != nil {
		return err
	}
	if !found {
		// History is gone; fall back to defaults so the profile never
		// predicts from deleted records.
		return profiles.UpdateScalars(customerID, map[string]any{
			"avg_cycle_length":  models.DefaultCycleLength,
			"avg_period_length": models.DefaultPeriodLength,
			"last_period_id":    nil,
			"cycle_regularity":  models.RegularityUnknown,
			"cycle_variance":    nil,
		})
	}

	avgCycleLength := profile.AvgCycleLength
	avgPeriodLength := profile.AvgPeriodLength
	if profile.UseAverageCycle {
		recent, err := periods.ListRecentWithCycleLength(customerID, settings.PeriodsForAverage)
		if err != nil {
			return err
		}
		// Apply averages only when computable; thin history never
		// overwrites previously good values.
		if averages, ok := CalculateAverageCycleData(recent); ok {
			avgCycleLength = averages.AvgCycleLength
			avgPeriodLength = averages.AvgPeriodLength
		}
	}

	reference, err := chooseReferencePeriod(periods, customerID, latest, now, location)
	if err != nil {
		return err
	}

	recentForRegularity, err := periods.ListRecentWithCycleLength(customerID, settings.RegularityWindow)
	if err != nil {
		return err
	}
	regularity, variance := ClassifyRegularity(recentForRegularity)

	return profiles.UpdateScalars(customerID, map[string]any{
		"avg_cycle_length":  avgCycleLength,
		"avg_period_length": avgPeriodLength,
		"last_period_id":    reference.ID,
		"cycle_regularity":  regularity,
		"cycle_variance":    variance,
	})
}

// chooseReferencePeriod anchors date projection. While the latest record is
// still running it would skew "next period" math, so the most recent closed
// record is preferred; the open record is the fallback when nothing else
// exists.
func chooseReferencePeriod(
	periods *db.PeriodRepository,
	customerID uint,
	latest models.PeriodRecord,
	now time.Time,
	location *time.Location,
) (models.PeriodRecord, error) {
	today := DateAtLocation(now, location)

	stillRunning := latest.EndDate == nil || DateAtLocation(*latest.EndDate, location).After(today)
	if !stillRunning {
		return latest, nil
	}

	closed, found, err := periods.FindMostRecentClosed(customerID, now)
	if err != nil {
		return models.PeriodRecord{}, err
	}
	if found {
		return closed, nil
	}
	return latest, nil
}
