package fertility

import "time"

// Input is everything a prediction depends on. Now is the caller's reference
// date; Anchor is the first day of the current cycle when known.
type Input struct {
	Observations       []Observation
	Anchor             *time.Time
	AverageCycleLength int
	Now                time.Time
}

// Engine runs detectors in priority order and falls back to the cycle-day
// estimate. An Engine is immutable and safe for concurrent use.
type Engine struct {
	detectors []Detector
	estimator CycleDayEstimator
}

// NewEngine builds an engine over the given detectors, or DefaultDetectors
// when none are passed.
func NewEngine(detectors ...Detector) *Engine {
	if len(detectors) == 0 {
		detectors = DefaultDetectors()
	}
	chain := make([]Detector, len(detectors))
	copy(chain, detectors)
	return &Engine{detectors: chain}
}

var defaultEngine = NewEngine()

// Predict classifies input with the default detector chain.
func Predict(input Input) Result {
	return defaultEngine.Predict(input)
}

func (engine *Engine) Predict(input Input) Result {
	result, _ := engine.Explain(input)
	return result
}

// Explain is Predict plus the name of the detector that produced the result,
// or "" when the calendar estimate or the insufficient-data answer was used.
func (engine *Engine) Explain(input Input) (Result, string) {
	evidence := newEvidence(input.Observations, input.Now)
	for _, detector := range engine.detectors {
		result, ok := detector.Detect(evidence)
		if !ok {
			continue
		}
		result.OvulationDetected = true
		result.PredictedDay = nil
		result.FertileWindowStart = nil
		result.FertileWindowEnd = nil
		return result, detector.Name()
	}

	if input.Anchor == nil || input.Anchor.IsZero() {
		return insufficientData(), ""
	}
	return engine.estimator.Estimate(*input.Anchor, input.AverageCycleLength, input.Now), ""
}
