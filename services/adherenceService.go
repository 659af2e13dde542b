package services

import (
	"golang-medtrackbackend/models"
	"math"
	"time"
)

// ProgressSummary is the day's adherence picture for one user.
type ProgressSummary struct {
	TakenCount int `json:"taken_count"`
	TotalCount int `json:"total_count"`
	Percentage int `json:"percentage"`
}

// ScheduleGroup is one bucket of medications sharing a scheduled time.
type ScheduleGroup struct {
	Time        string              `json:"time"`
	Medications []models.Medication `json:"medications"`
}

// UnscheduledGroup is the bucket for medications without a time value.
const UnscheduledGroup = "unscheduled"

// DayBounds returns the start and end of the calendar day containing t,
// in t's location. Both bounds are inclusive query values.
func DayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	end := start.Add(24*time.Hour - time.Nanosecond)
	return start, end
}

// IsTakenToday reports whether any of the day's log entries reference the
// medication. It only inspects the slice it is given; no fetch happens here.
func IsTakenToday(medicationID string, todaysLogs []models.MedicationLog) bool {
	for _, entry := range todaysLogs {
		if entry.MedicationID != nil && *entry.MedicationID == medicationID {
			return true
		}
	}
	return false
}

// Progress computes the taken/total counts and the rounded percentage of
// medications taken today. An empty registry yields zero percent.
func Progress(medications []models.Medication, todaysLogs []models.MedicationLog) ProgressSummary {
	taken := make(map[string]bool, len(todaysLogs))
	for _, entry := range todaysLogs {
		if entry.MedicationID != nil {
			taken[*entry.MedicationID] = true
		}
	}

	summary := ProgressSummary{TotalCount: len(medications)}
	for _, medication := range medications {
		if taken[medication.MedicationID] {
			summary.TakenCount++
		}
	}

	if summary.TotalCount > 0 {
		summary.Percentage = int(math.Round(float64(summary.TakenCount) / float64(summary.TotalCount) * 100))
	}
	return summary
}

// GroupBySchedule partitions medications by their scheduled time string.
// Buckets appear in order of first occurrence and keep registry order inside.
func GroupBySchedule(medications []models.Medication) []ScheduleGroup {
	var groups []ScheduleGroup
	index := make(map[string]int, len(medications))

	for _, medication := range medications {
		key := UnscheduledGroup
		if medication.Time != nil && *medication.Time != "" {
			key = *medication.Time
		}

		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, ScheduleGroup{Time: key})
		}
		groups[i].Medications = append(groups[i].Medications, medication)
	}
	return groups
}
