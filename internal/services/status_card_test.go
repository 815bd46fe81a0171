package services

import (
	"testing"
	"time"

	"github.com/terraincognita07/cyra/internal/models"
)

func TestSelectCardActivePeriod(t *testing.T) {
	t.Parallel()

	record := models.PeriodRecord{
		CustomerID: 1,
		StartDate:  mustParseDay(t, "2025-06-01"),
		EndDate:    dayPtr(t, "2025-06-05"),
	}
	projection := BuildCycleProjection(referenceInputs(t), time.UTC)

	card := SelectCard(&record, projection, mustParseDay(t, "2025-06-03"), time.UTC)

	if card.Status != CardStatusPeriodActive {
		t.Fatalf("card status = %q, want %q", card.Status, CardStatusPeriodActive)
	}
	if card.Label != "Current Period" || card.Value != "In Progress" {
		t.Errorf("card header = %q / %q, want Current Period / In Progress", card.Label, card.Value)
	}
	if card.Subtitle != "Jun 01 - Jun 05, 2025" {
		t.Errorf("card subtitle = %q, want %q", card.Subtitle, "Jun 01 - Jun 05, 2025")
	}
	if card.ButtonText != "End Period" {
		t.Errorf("card button = %q, want End Period", card.ButtonText)
	}
}

func TestSelectCardOpenPeriodRunsThroughToday(t *testing.T) {
	t.Parallel()

	record := models.PeriodRecord{CustomerID: 1, StartDate: mustParseDay(t, "2025-06-01")}

	card := SelectCard(&record, CycleProjection{}, mustParseDay(t, "2025-06-04"), time.UTC)

	if card.Status != CardStatusPeriodActive {
		t.Fatalf("card status = %q, want %q", card.Status, CardStatusPeriodActive)
	}
	if card.Subtitle != "Jun 01 - Jun 04, 2025" {
		t.Errorf("card subtitle = %q, want %q", card.Subtitle, "Jun 01 - Jun 04, 2025")
	}
}

// An in-progress period suppresses every other signal, lateness included.
func TestSelectCardActiveBeatsLate(t *testing.T) {
	t.Parallel()

	record := models.PeriodRecord{CustomerID: 1, StartDate: mustParseDay(t, "2025-07-01")}
	projection := BuildCycleProjection(referenceInputs(t), time.UTC)

	card := SelectCard(&record, projection, mustParseDay(t, "2025-07-02"), time.UTC)
	if card.Status != CardStatusPeriodActive {
		t.Errorf("card status = %q, want %q", card.Status, CardStatusPeriodActive)
	}
}

func TestSelectCardLatePeriod(t *testing.T) {
	t.Parallel()

	projection := BuildCycleProjection(referenceInputs(t), time.UTC)

	card := SelectCard(nil, projection, mustParseDay(t, "2025-07-02"), time.UTC)

	if card.Status != CardStatusPeriodLate {
		t.Fatalf("card status = %q, want %q", card.Status, CardStatusPeriodLate)
	}
	if card.Label != "Period Late" {
		t.Errorf("card label = %q, want Period Late", card.Label)
	}
	if card.Value != "3 Days" {
		t.Errorf("card value = %q, want %q", card.Value, "3 Days")
	}
	if card.Subtitle != "Expected: Jun 29, 2025" {
		t.Errorf("card subtitle = %q, want %q", card.Subtitle, "Expected: Jun 29, 2025")
	}
	if card.ButtonText != "Start Period" {
		t.Errorf("card button = %q, want Start Period", card.ButtonText)
	}
}

func TestSelectCardLatePeriodSingular(t *testing.T) {
	t.Parallel()

	projection := BuildCycleProjection(referenceInputs(t), time.UTC)

	card := SelectCard(nil, projection, mustParseDay(t, "2025-06-30"), time.UTC)
	if card.Value != "1 Day" {
		t.Errorf("card value = %q, want %q", card.Value, "1 Day")
	}
}

func TestSelectCardFertileWindow(t *testing.T) {
	t.Parallel()

	projection := BuildCycleProjection(referenceInputs(t), time.UTC)

	card := SelectCard(nil, projection, mustParseDay(t, "2025-06-12"), time.UTC)

	if card.Status != CardStatusFertileWindow {
		t.Fatalf("card status = %q, want %q", card.Status, CardStatusFertileWindow)
	}
	if card.Label != "Fertile Window Ends" {
		t.Errorf("card label = %q, want Fertile Window Ends", card.Label)
	}
	if card.Value != "4 Days" {
		t.Errorf("card value = %q, want %q", card.Value, "4 Days")
	}
	if card.Subtitle != "Jun 10 - Jun 16, 2025" {
		t.Errorf("card subtitle = %q, want %q", card.Subtitle, "Jun 10 - Jun 16, 2025")
	}
	if card.ButtonText != "View History" {
		t.Errorf("card button = %q, want View History", card.ButtonText)
	}
}

func TestSelectCardFertileWindowClosesToday(t *testing.T) {
	t.Parallel()

	projection := BuildCycleProjection(referenceInputs(t), time.UTC)

	card := SelectCard(nil, projection, mustParseDay(t, "2025-06-16"), time.UTC)
	if card.Status != CardStatusFertileWindow {
		t.Fatalf("card status = %q, want %q", card.Status, CardStatusFertileWindow)
	}
	if card.Value != "Today" {
		t.Errorf("card value = %q, want Today", card.Value)
	}
}

func TestSelectCardUpcomingEvents(t *testing.T) {
	t.Parallel()

	projection := BuildCycleProjection(referenceInputs(t), time.UTC)

	testCases := []struct {
		name         string
		today        string
		wantStatus   string
		wantLabel    string
		wantValue    string
		wantSubtitle string
	}{
		{
			// 2025-06-07: ovulation in 8 days, period in 22.
			name:         "ovulation is the nearer event",
			today:        "2025-06-07",
			wantStatus:   CardStatusUpcomingOvulation,
			wantLabel:    "Ovulation",
			wantValue:    "8 Days Left",
			wantSubtitle: "Expected: Jun 15, 2025",
		},
		{
			name:         "period is the nearer event",
			today:        "2025-06-25",
			wantStatus:   CardStatusUpcomingPeriod,
			wantLabel:    "Next Period",
			wantValue:    "4 Days Left",
			wantSubtitle: "Expected: Jun 29, 2025",
		},
		{
			name:         "event due tomorrow",
			today:        "2025-06-28",
			wantStatus:   CardStatusUpcomingPeriod,
			wantLabel:    "Next Period",
			wantValue:    "1 Day Left",
			wantSubtitle: "Expected: Jun 29, 2025",
		},
		{
			name:         "event due today",
			today:        "2025-06-29",
			wantStatus:   CardStatusUpcomingPeriod,
			wantLabel:    "Next Period",
			wantValue:    "Today",
			wantSubtitle: "Expected: Jun 29, 2025",
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			card := SelectCard(nil, projection, mustParseDay(t, testCase.today), time.UTC)

			if card.Status != testCase.wantStatus {
				t.Fatalf("card status = %q, want %q", card.Status, testCase.wantStatus)
			}
			if card.Label != testCase.wantLabel {
				t.Errorf("card label = %q, want %q", card.Label, testCase.wantLabel)
			}
			if card.Value != testCase.wantValue {
				t.Errorf("card value = %q, want %q", card.Value, testCase.wantValue)
			}
			if card.Subtitle != testCase.wantSubtitle {
				t.Errorf("card subtitle = %q, want %q", card.Subtitle, testCase.wantSubtitle)
			}
		})
	}
}

func TestSelectCardUpcomingTieGoesToOvulation(t *testing.T) {
	t.Parallel()

	projection := CycleProjection{
		NextPeriodStart: mustParseDay(t, "2025-06-20"),
		OvulationDate:   mustParseDay(t, "2025-06-20"),
	}

	card := SelectCard(nil, projection, mustParseDay(t, "2025-06-18"), time.UTC)
	if card.Status != CardStatusUpcomingOvulation {
		t.Errorf("card status = %q, want %q", card.Status, CardStatusUpcomingOvulation)
	}
}

func TestSelectCardNoData(t *testing.T) {
	t.Parallel()

	card := SelectCard(nil, CycleProjection{}, mustParseDay(t, "2025-06-15"), time.UTC)

	if card.Status != CardStatusNoData {
		t.Fatalf("card status = %q, want %q", card.Status, CardStatusNoData)
	}
	if card.Label != "Next Event" || card.Value != "Not Available" {
		t.Errorf("card header = %q / %q, want Next Event / Not Available", card.Label, card.Value)
	}
	if card.Subtitle != "Start tracking your periods" {
		t.Errorf("card subtitle = %q, want %q", card.Subtitle, "Start tracking your periods")
	}
	if card.ButtonText != "Start Period" {
		t.Errorf("card button = %q, want Start Period", card.ButtonText)
	}
}
