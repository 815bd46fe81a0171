package services

import (
	"math"

	"github.com/terraincognita07/cyra/internal/models"
)

// RegularityThresholdDays is the standard deviation of recent cycle lengths
// below which cycles are classified as regular.
const RegularityThresholdDays = 3.0

// MinRecordsForRegularity is the smallest history that supports a
// regularity classification at all.
const MinRecordsForRegularity = 3

type AverageCycleData struct {
	AvgCycleLength  int
	AvgPeriodLength int
}

// CalculateAverageCycleData computes rolling averages over records that
// carry a computed cycle length. It returns ok=false when the history is
// too thin to produce both averages; callers must keep their previous
// values in that case rather than overwriting them.
func CalculateAverageCycleData(records []models.PeriodRecord) (AverageCycleData, bool) {
	cycleLengths := make([]int, 0, len(records))
	periodLengths := make([]int, 0, len(records))
	for _, record := range records {
		if record.CycleLength != nil {
			cycleLengths = append(cycleLengths, *record.CycleLength)
		}
		if record.PeriodLength != nil {
			periodLengths = append(periodLengths, *record.PeriodLength)
		}
	}

	if len(cycleLengths) == 0 || len(periodLengths) == 0 {
		return AverageCycleData{}, false
	}

	return AverageCycleData{
		AvgCycleLength:  int(math.Round(meanInts(cycleLengths))),
		AvgPeriodLength: int(math.Round(meanInts(periodLengths))),
	}, true
}

// ClassifyRegularity classifies cycle consistency from recent cycle lengths.
// Fewer than three qualifying records yield "unknown" with no variance.
// Otherwise the sample standard deviation decides: under 3 days is regular.
// The returned deviation is rounded to two decimals.
func ClassifyRegularity(records []models.PeriodRecord) (string, *float64) {
	cycleLengths := make([]int, 0, len(records))
	for _, record := range records {
		if record.CycleLength != nil {
			cycleLengths = append(cycleLengths, *record.CycleLength)
		}
	}

	if len(cycleLengths) < MinRecordsForRegularity {
		return models.RegularityUnknown, nil
	}

	deviation := sampleStdDev(cycleLengths)
	rounded := math.Round(deviation*100) / 100

	if deviation < RegularityThresholdDays {
		return models.RegularityRegular, &rounded
	}
	return models.RegularityIrregular, &rounded
}

func meanInts(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	var total int
	for _, value := range values {
		total += value
	}
	return float64(total) / float64(len(values))
}

func sampleStdDev(values []int) float64 {
	if len(values) < 2 {
		return 0
	}

	mean := meanInts(values)
	var sumSquares float64
	for _, value := range values {
		difference := float64(value) - mean
		sumSquares += difference * difference
	}
	return math.Sqrt(sumSquares / float64(len(values)-1))
}
