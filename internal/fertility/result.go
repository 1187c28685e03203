package fertility

import "fmt"

type Status string

const (
	StatusPreOvulation    Status = "pre-ovulation"
	StatusOvulationLikely Status = "ovulation-likely"
	StatusPostOvulation   Status = "post-ovulation"
	StatusUnknown         Status = "unknown"
)

// Method names the rule that produced a Result.
type Method string

const (
	MethodTemperatureShift Method = "bbt-temperature-shift"
	MethodPeakWithSupport  Method = "opk-peak-with-support"
	MethodPeakOnly         Method = "opk-peak-only"
	MethodMucusPattern     Method = "cervical-mucus-pattern"
	MethodBasicPeak        Method = "basic-opk-peak"
	MethodBasicHigh        Method = "basic-opk-high"
	MethodCycleBased       Method = "cycle-based"
	MethodInsufficientData Method = "insufficient-data"
)

const insufficientDataMessage = "Not enough fertility signs and no cycle start date. Keep tracking!"

// Result is the outcome of one prediction. Offsets are nil when unknown.
// PredictedDay and the fertile window are cycle-day numbers and are only set
// by the cycle-based estimate.
type Result struct {
	OvulationDetected  bool       `json:"ovulation_detected"`
	Status             Status     `json:"status"`
	Confidence         Confidence `json:"confidence"`
	Method             Method     `json:"method"`
	DaysUntilOvulation *int       `json:"days_until_ovulation"`
	PredictedDay       *int       `json:"predicted_day"`
	FertileWindowStart *int       `json:"fertile_window_start"`
	FertileWindowEnd   *int       `json:"fertile_window_end"`
	Message            string     `json:"message"`
	SupportingSignals  []string   `json:"supporting_signals,omitempty"`
}

func insufficientData() Result {
	return Result{
		Status:     StatusUnknown,
		Confidence: ConfidenceLow,
		Method:     MethodInsufficientData,
		Message:    insufficientDataMessage,
	}
}

// statusForOffset classifies a signal-based reading taken daysAgo days before now.
func statusForOffset(daysAgo int) Status {
	if daysAgo == 0 {
		return StatusOvulationLikely
	}
	return StatusPostOvulation
}

func intPtr(value int) *int {
	return &value
}

func pluralDays(count int) string {
	if count < 0 {
		count = -count
	}
	if count == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", count)
}
