package services

import (
	"golang-medtrackbackend/models"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func strPtr(s string) *string { return &s }

func medication(name, scheduledTime string) models.Medication {
	id := primitive.NewObjectID()
	return models.Medication{
		ID:           id,
		Name:         strPtr(name),
		Dosage:       strPtr("100mg"),
		Frequency:    strPtr("once"),
		Time:         strPtr(scheduledTime),
		MedicationID: id.Hex(),
	}
}

func logFor(med models.Medication, takenAt time.Time) models.MedicationLog {
	id := primitive.NewObjectID()
	medID := med.MedicationID
	return models.MedicationLog{
		ID:           id,
		MedicationID: &medID,
		TakenAt:      takenAt,
		LogID:        id.Hex(),
	}
}

func TestDayBounds(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	now := time.Date(2025, time.March, 14, 13, 45, 12, 0, loc)

	start, end := DayBounds(now)

	if !start.Equal(time.Date(2025, time.March, 14, 0, 0, 0, 0, loc)) {
		t.Fatalf("start = %v, want local midnight", start)
	}
	// midnight belongs to the day, the next midnight does not
	nextMidnight := start.Add(24 * time.Hour)
	if !end.Before(nextMidnight) {
		t.Fatalf("end = %v, want before %v", end, nextMidnight)
	}
	lastMoment := time.Date(2025, time.March, 14, 23, 59, 59, 999000000, loc)
	if end.Before(lastMoment) {
		t.Fatalf("end = %v, want at least %v", end, lastMoment)
	}
}

func TestProgress(t *testing.T) {
	aspirin := medication("Aspirin", "08:00")
	metformin := medication("Metformin", "08:00")
	vitaminD := medication("Vitamin D", "20:00")
	meds := []models.Medication{aspirin, metformin, vitaminD}
	now := time.Now()

	tests := []struct {
		name       string
		meds       []models.Medication
		logs       []models.MedicationLog
		taken      int
		total      int
		percentage int
	}{
		{
			name:  "no logs",
			meds:  meds,
			taken: 0, total: 3, percentage: 0,
		},
		{
			name: "one of three rounds down",
			meds: meds,
			logs: []models.MedicationLog{logFor(aspirin, now)},
			taken: 1, total: 3, percentage: 33,
		},
		{
			name: "two of three rounds up",
			meds: meds,
			logs: []models.MedicationLog{logFor(aspirin, now), logFor(metformin, now)},
			taken: 2, total: 3, percentage: 67,
		},
		{
			name: "duplicate logs count once",
			meds: meds,
			logs: []models.MedicationLog{logFor(aspirin, now), logFor(aspirin, now)},
			taken: 1, total: 3, percentage: 33,
		},
		{
			name: "all taken",
			meds: meds,
			logs: []models.MedicationLog{logFor(aspirin, now), logFor(metformin, now), logFor(vitaminD, now)},
			taken: 3, total: 3, percentage: 100,
		},
		{
			name:  "empty registry",
			meds:  nil,
			logs:  []models.MedicationLog{logFor(aspirin, now)},
			taken: 0, total: 0, percentage: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Progress(tt.meds, tt.logs)
			if got.TakenCount != tt.taken || got.TotalCount != tt.total || got.Percentage != tt.percentage {
				t.Fatalf("Progress() = %+v, want {%d %d %d}", got, tt.taken, tt.total, tt.percentage)
			}
		})
	}
}

func TestIsTakenToday(t *testing.T) {
	aspirin := medication("Aspirin", "08:00")
	metformin := medication("Metformin", "08:00")
	logs := []models.MedicationLog{logFor(aspirin, time.Now())}

	if !IsTakenToday(aspirin.MedicationID, logs) {
		t.Fatal("aspirin should be taken")
	}
	if IsTakenToday(metformin.MedicationID, logs) {
		t.Fatal("metformin should not be taken")
	}

	// pure derivation: asking twice without a mutation gives the same answer
	if IsTakenToday(aspirin.MedicationID, logs) != IsTakenToday(aspirin.MedicationID, logs) {
		t.Fatal("IsTakenToday is not stable")
	}
	if IsTakenToday(aspirin.MedicationID, nil) {
		t.Fatal("no logs means not taken")
	}
}

func TestGroupBySchedule(t *testing.T) {
	aspirin := medication("Aspirin", "08:00")
	metformin := medication("Metformin", "08:00")
	vitaminD := medication("Vitamin D", "20:00")

	groups := GroupBySchedule([]models.Medication{aspirin, metformin, vitaminD})

	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if groups[0].Time != "08:00" || groups[1].Time != "20:00" {
		t.Fatalf("group order = [%s %s], want first-occurrence order", groups[0].Time, groups[1].Time)
	}
	if len(groups[0].Medications) != 2 {
		t.Fatalf("08:00 bucket has %d medications, want 2", len(groups[0].Medications))
	}
	if *groups[0].Medications[0].Name != "Aspirin" || *groups[0].Medications[1].Name != "Metformin" {
		t.Fatal("registry order not preserved inside the bucket")
	}
	if *groups[1].Medications[0].Name != "Vitamin D" {
		t.Fatalf("20:00 bucket holds %s", *groups[1].Medications[0].Name)
	}
}

func TestGroupByScheduleUnscheduled(t *testing.T) {
	scheduled := medication("Aspirin", "08:00")
	blank := medication("PRN Painkiller", "")
	nilTime := medication("Old Entry", "")
	nilTime.Time = nil

	groups := GroupBySchedule([]models.Medication{scheduled, blank, nilTime})

	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if groups[1].Time != UnscheduledGroup {
		t.Fatalf("sentinel bucket = %q, want %q", groups[1].Time, UnscheduledGroup)
	}
	if len(groups[1].Medications) != 2 {
		t.Fatalf("sentinel bucket has %d medications, want 2", len(groups[1].Medications))
	}
}

func TestGroupByScheduleEmpty(t *testing.T) {
	if groups := GroupBySchedule(nil); len(groups) != 0 {
		t.Fatalf("got %d groups for empty registry, want 0", len(groups))
	}
}
