package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/terraincognita07/fertilis/internal/fertility"
	"github.com/terraincognita07/fertilis/internal/models"
)

// PredictionHistoryDays is how much log history feeds one prediction.
const PredictionHistoryDays = 30

var (
	ErrPredictionLogsLoadFailed     = errors.New("load prediction logs failed")
	ErrPredictionSettingsLoadFailed = errors.New("load cycle settings failed")
)

type PredictionLogRepository interface {
	ListByUserRange(userID uint, fromStart *time.Time, toEnd *time.Time) ([]models.FertilityLog, error)
	ListBleedingDays(userID uint, before time.Time) ([]models.FertilityLog, error)
}

type CycleSettingsReader interface {
	LoadCycleSettings(userID uint) (models.User, error)
}

type Prediction struct {
	Date     time.Time
	CycleDay int
	Result   fertility.Result
	Detector string
	Baseline CycleBaseline
}

type PredictionService struct {
	logs   PredictionLogRepository
	users  CycleSettingsReader
	engine *fertility.Engine
	logger zerolog.Logger
}

func NewPredictionService(logs PredictionLogRepository, users CycleSettingsReader, engine *fertility.Engine) *PredictionService {
	if engine == nil {
		engine = fertility.NewEngine()
	}
	return &PredictionService{
		logs:   logs,
		users:  users,
		engine: engine,
		logger: log.With().Str("component", "prediction").Logger(),
	}
}

// Predict runs the engine for userID as of day. Observations come from the
// PredictionHistoryDays days ending on day; the baseline uses the whole
// bleeding history up to day.
func (service *PredictionService) Predict(userID uint, day time.Time, location *time.Location) (Prediction, error) {
	today := DateAtLocation(day, location)
	baseline, err := loadCycleBaseline(service.logs, service.users, userID, today, location)
	if err != nil {
		return Prediction{}, err
	}

	fromStart, toEnd := LookbackRange(today, PredictionHistoryDays, location)
	logs, err := service.logs.ListByUserRange(userID, &fromStart, &toEnd)
	if err != nil {
		return Prediction{}, fmt.Errorf("%w: %w", ErrPredictionLogsLoadFailed, err)
	}

	result, detector := service.engine.Explain(fertility.Input{
		Observations:       models.Observations(logs),
		Anchor:             baseline.Anchor,
		AverageCycleLength: baseline.AverageCycleLength,
		Now:                today,
	})

	service.logger.Debug().
		Uint("user_id", userID).
		Str("date", today.Format("2006-01-02")).
		Int("observations", len(logs)).
		Str("method", string(result.Method)).
		Str("detector", detector).
		Str("confidence", result.Confidence.String()).
		Msg("prediction computed")

	return Prediction{
		Date:     today,
		CycleDay: baseline.CurrentCycleDay(today),
		Result:   result,
		Detector: detector,
		Baseline: baseline,
	}, nil
}

func loadCycleBaseline(logs PredictionLogRepository, users CycleSettingsReader, userID uint, today time.Time, location *time.Location) (CycleBaseline, error) {
	settings, err := users.LoadCycleSettings(userID)
	if err != nil {
		return CycleBaseline{}, fmt.Errorf("%w: %w", ErrPredictionSettingsLoadFailed, err)
	}
	_, dayEnd := DayRange(today, location)
	bleedingDays, err := logs.ListBleedingDays(userID, dayEnd)
	if err != nil {
		return CycleBaseline{}, fmt.Errorf("%w: %w", ErrPredictionLogsLoadFailed, err)
	}
	return ResolveCycleBaseline(settings, bleedingDays, today, location), nil
}
