package models

import "testing"

func TestHydrationLogDerivedFigures(t *testing.T) {
	t.Parallel()

	log := HydrationLog{AmountMl: 1125, GlassSizeMl: 250, DailyGoalMl: 2000}

	if got := log.GlassesCount(); got != 4.5 {
		t.Errorf("glasses = %v, want 4.5", got)
	}
	if got := log.TotalLiters(); got != 1.13 {
		t.Errorf("liters = %v, want 1.13", got)
	}
	if got := log.ProgressPercent(); got != 56.25 {
		t.Errorf("progress = %v, want 56.25", got)
	}
}

func TestHydrationLogProgressCap(t *testing.T) {
	t.Parallel()

	log := HydrationLog{AmountMl: 3000, GlassSizeMl: 250, DailyGoalMl: 2000}
	if got := log.ProgressPercent(); got != 100 {
		t.Errorf("progress = %v, want capped at 100", got)
	}
}

func TestHydrationLogZeroDenominators(t *testing.T) {
	t.Parallel()

	log := HydrationLog{AmountMl: 500}
	if got := log.GlassesCount(); got != 0 {
		t.Errorf("glasses with zero glass size = %v, want 0", got)
	}
	if got := log.ProgressPercent(); got != 0 {
		t.Errorf("progress with zero goal = %v, want 0", got)
	}
}
