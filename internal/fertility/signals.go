package fertility

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	ErrInvalidFlow        = errors.New("fertility: invalid flow value")
	ErrInvalidTestStrip   = errors.New("fertility: invalid test strip reading")
	ErrInvalidMucus       = errors.New("fertility: invalid cervical mucus value")
	ErrInvalidFerning     = errors.New("fertility: invalid ferning value")
	ErrInvalidTemperature = errors.New("fertility: invalid basal temperature")
)

// Flow is the menstrual flow intensity recorded for a day. The engine carries
// it but none of the detectors read it.
type Flow string

const (
	FlowUnset    Flow = ""
	FlowNone     Flow = "none"
	FlowSpotting Flow = "spotting"
	FlowLight    Flow = "light"
	FlowMedium   Flow = "medium"
	FlowHeavy    Flow = "heavy"
)

// IsBleeding reports whether the flow marks a period day. Spotting does not.
func (flow Flow) IsBleeding() bool {
	return flow == FlowLight || flow == FlowMedium || flow == FlowHeavy
}

// TestStripReading is a qualitative ovulation test (OPK) result.
type TestStripReading string

const (
	TestStripUnset    TestStripReading = ""
	TestStripNegative TestStripReading = "negative"
	TestStripLow      TestStripReading = "low"
	TestStripHigh     TestStripReading = "high"
	TestStripPeak     TestStripReading = "peak"
)

// IsPositive reports whether the reading is recorded and not negative.
func (reading TestStripReading) IsPositive() bool {
	return reading != TestStripUnset && reading != TestStripNegative
}

// MucusQuality describes cervical mucus consistency.
type MucusQuality string

const (
	MucusUnset    MucusQuality = ""
	MucusNone     MucusQuality = "none"
	MucusDry      MucusQuality = "dry"
	MucusSticky   MucusQuality = "sticky"
	MucusCreamy   MucusQuality = "creamy"
	MucusWatery   MucusQuality = "watery"
	MucusEggWhite MucusQuality = "egg-white"
)

// IsDrying reports whether the quality is one of the post-fertile types that
// follow egg-white mucus.
func (quality MucusQuality) IsDrying() bool {
	return quality == MucusCreamy || quality == MucusSticky
}

// Ferning is a saliva or mucus microscopy result.
type Ferning string

const (
	FerningUnset   Ferning = ""
	FerningNone    Ferning = "none"
	FerningPartial Ferning = "partial"
	FerningFull    Ferning = "full"
)

var (
	knownFlows      = []Flow{FlowNone, FlowSpotting, FlowLight, FlowMedium, FlowHeavy}
	knownTestStrips = []TestStripReading{TestStripNegative, TestStripLow, TestStripHigh, TestStripPeak}
	knownMucus      = []MucusQuality{MucusNone, MucusDry, MucusSticky, MucusCreamy, MucusWatery, MucusEggWhite}
	knownFerning    = []Ferning{FerningNone, FerningPartial, FerningFull}
)

// ParseFlow normalizes raw input. An empty value parses to FlowUnset.
func ParseFlow(raw string) (Flow, error) {
	value, err := parseCategory(raw, knownFlows)
	if err != nil {
		return FlowUnset, fmt.Errorf("%w: %q", ErrInvalidFlow, raw)
	}
	return value, nil
}

// ParseTestStrip normalizes raw input. An empty value parses to TestStripUnset.
func ParseTestStrip(raw string) (TestStripReading, error) {
	value, err := parseCategory(raw, knownTestStrips)
	if err != nil {
		return TestStripUnset, fmt.Errorf("%w: %q", ErrInvalidTestStrip, raw)
	}
	return value, nil
}

// ParseMucus normalizes raw input; "eggwhite" and "egg_white" are accepted as
// spellings of egg-white.
func ParseMucus(raw string) (MucusQuality, error) {
	normalized := strings.NewReplacer("_", "-", " ", "-").Replace(strings.ToLower(strings.TrimSpace(raw)))
	if normalized == "eggwhite" {
		normalized = string(MucusEggWhite)
	}
	value, err := parseCategory(normalized, knownMucus)
	if err != nil {
		return MucusUnset, fmt.Errorf("%w: %q", ErrInvalidMucus, raw)
	}
	return value, nil
}

// ParseFerning normalizes raw input. An empty value parses to FerningUnset.
func ParseFerning(raw string) (Ferning, error) {
	value, err := parseCategory(raw, knownFerning)
	if err != nil {
		return FerningUnset, fmt.Errorf("%w: %q", ErrInvalidFerning, raw)
	}
	return value, nil
}

func parseCategory[T ~string](raw string, known []T) (T, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		return "", nil
	}
	for _, candidate := range known {
		if string(candidate) == normalized {
			return candidate, nil
		}
	}
	return "", errors.New("unknown value")
}

// ValidateTemperature accepts finite readings on either the Fahrenheit
// (90–110) or Celsius (34–43) scale.
func ValidateTemperature(value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%w: not a finite number", ErrInvalidTemperature)
	}
	if (value >= 34 && value <= 43) || (value >= 90 && value <= 110) {
		return nil
	}
	return fmt.Errorf("%w: %.2f out of range", ErrInvalidTemperature, value)
}
