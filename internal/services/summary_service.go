package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/terraincognita07/fertilis/internal/fertility"
)

type CycleSummary struct {
	TotalEntries                 int
	EntriesWithFlow              int
	EntriesWithTemperature       int
	EntriesWithPositiveTestStrip int
	EntriesWithMucus             int
	EntriesWithNotes             int
	CurrentCycleDay              int
	Baseline                     CycleBaseline
}

type SummaryService struct {
	logs  PredictionLogRepository
	users CycleSettingsReader
}

func NewSummaryService(logs PredictionLogRepository, users CycleSettingsReader) *SummaryService {
	return &SummaryService{logs: logs, users: users}
}

// Summarize counts every entry logged up to and including day. Spotting
// counts as flow here even though it never starts a cycle.
func (service *SummaryService) Summarize(userID uint, day time.Time, location *time.Location) (CycleSummary, error) {
	today := DateAtLocation(day, location)
	baseline, err := loadCycleBaseline(service.logs, service.users, userID, today, location)
	if err != nil {
		return CycleSummary{}, err
	}

	_, toEnd := DayRange(today, location)
	logs, err := service.logs.ListByUserRange(userID, nil, &toEnd)
	if err != nil {
		return CycleSummary{}, fmt.Errorf("%w: %w", ErrPredictionLogsLoadFailed, err)
	}

	summary := CycleSummary{
		CurrentCycleDay: baseline.CurrentCycleDay(today),
		Baseline:        baseline,
	}
	for _, entry := range logs {
		if !entry.HasData() {
			continue
		}
		summary.TotalEntries++

		observation := entry.Observation()
		if observation.Flow != fertility.FlowUnset && observation.Flow != fertility.FlowNone {
			summary.EntriesWithFlow++
		}
		if observation.HasTemperature() {
			summary.EntriesWithTemperature++
		}
		if observation.TestStrip.IsPositive() {
			summary.EntriesWithPositiveTestStrip++
		}
		if observation.HasMucus() {
			summary.EntriesWithMucus++
		}
		if strings.TrimSpace(entry.Notes) != "" {
			summary.EntriesWithNotes++
		}
	}
	return summary, nil
}
