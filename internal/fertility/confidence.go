package fertility

import (
	"encoding"
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidConfidence = errors.New("fertility: invalid confidence")

// Confidence grades how strongly the evidence supports a result. Values are
// ordered, so ConfidenceHigh > ConfidenceMedium > ConfidenceLow.
type Confidence int

const (
	ConfidenceLow Confidence = iota + 1
	ConfidenceMedium
	ConfidenceHigh
)

var (
	confidenceNames  = [...]string{ConfidenceLow: "low", ConfidenceMedium: "medium", ConfidenceHigh: "high"}
	confidenceByName = map[string]Confidence{
		"low":    ConfidenceLow,
		"medium": ConfidenceMedium,
		"high":   ConfidenceHigh,
	}
)

var (
	_ fmt.Stringer             = Confidence(0)
	_ encoding.TextMarshaler   = Confidence(0)
	_ encoding.TextUnmarshaler = (*Confidence)(nil)
)

func (confidence Confidence) IsValid() bool {
	return confidence >= ConfidenceLow && confidence <= ConfidenceHigh
}

// AtLeast reports whether confidence meets the given threshold.
func (confidence Confidence) AtLeast(threshold Confidence) bool {
	return confidence >= threshold
}

func (confidence Confidence) String() string {
	if !confidence.IsValid() {
		return fmt.Sprintf("Confidence(%d)", int(confidence))
	}
	return confidenceNames[confidence]
}

func (confidence Confidence) MarshalText() ([]byte, error) {
	if !confidence.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidConfidence, int(confidence))
	}
	return []byte(confidenceNames[confidence]), nil
}

func (confidence *Confidence) UnmarshalText(text []byte) error {
	parsed, err := ParseConfidence(string(text))
	if err != nil {
		return err
	}
	*confidence = parsed
	return nil
}

func ParseConfidence(raw string) (Confidence, error) {
	parsed, ok := confidenceByName[strings.ToLower(strings.TrimSpace(raw))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidConfidence, raw)
	}
	return parsed, nil
}

// confidenceFromSupport maps a corroboration count to a grade.
func confidenceFromSupport(support int) Confidence {
	switch {
	case support >= 2:
		return ConfidenceHigh
	case support == 1:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}
