package api

import (
	"net/http"
	"testing"
)

func TestCycleSettingsRoundTrip(t *testing.T) {
	t.Parallel()

	app, _, _ := newTestApp(t)
	token := registerTestUser(t, app, "settings@example.com", "StrongPass1")

	initial := decodeJSON[cycleSettingsResponse](t, sendJSON(t, app, http.MethodGet, "/api/settings/cycle", nil, token))
	if initial.CycleLength != 28 || initial.LastPeriodStart != nil {
		t.Fatalf("unexpected initial settings: %+v", initial)
	}

	anchor := "2026-03-07"
	saved := decodeJSON[cycleSettingsResponse](t, sendJSON(t, app, http.MethodPost, "/api/settings/cycle", cycleSettingsInput{CycleLength: 30, LastPeriodStart: &anchor}, token))
	if saved.CycleLength != 30 || saved.LastPeriodStart == nil || *saved.LastPeriodStart != anchor {
		t.Fatalf("unexpected saved settings: %+v", saved)
	}

	kept := decodeJSON[cycleSettingsResponse](t, sendJSON(t, app, http.MethodPost, "/api/settings/cycle", map[string]any{"cycle_length": 29}, token))
	if kept.CycleLength != 29 || kept.LastPeriodStart == nil || *kept.LastPeriodStart != anchor {
		t.Fatalf("expected anchor to survive a length-only update, got %+v", kept)
	}

	prediction := decodeJSON[predictionResponse](t, sendJSON(t, app, http.MethodGet, "/api/prediction", nil, token))
	if prediction.Baseline.AnchorSource != "settings" || prediction.CycleDay != 14 {
		t.Fatalf("expected settings anchor at cycle day 14, got %+v", prediction)
	}

	cleared := ""
	reset := decodeJSON[cycleSettingsResponse](t, sendJSON(t, app, http.MethodPost, "/api/settings/cycle", cycleSettingsInput{CycleLength: 29, LastPeriodStart: &cleared}, token))
	if reset.LastPeriodStart != nil {
		t.Fatalf("expected anchor to be cleared, got %v", *reset.LastPeriodStart)
	}
}

func TestCycleSettingsValidation(t *testing.T) {
	t.Parallel()

	app, _, _ := newTestApp(t)
	token := registerTestUser(t, app, "validate@example.com", "StrongPass1")

	future := "2026-03-21"
	cases := []struct {
		name        string
		input       cycleSettingsInput
		wantMessage string
	}{
		{name: "short cycle", input: cycleSettingsInput{CycleLength: 14}, wantMessage: "cycle length out of range"},
		{name: "long cycle", input: cycleSettingsInput{CycleLength: 91}, wantMessage: "cycle length out of range"},
		{name: "future anchor", input: cycleSettingsInput{CycleLength: 28, LastPeriodStart: &future}, wantMessage: "invalid last period start"},
	}

	for _, testCase := range cases {
		response := sendJSON(t, app, http.MethodPost, "/api/settings/cycle", testCase.input, token)
		if response.StatusCode != http.StatusBadRequest {
			t.Fatalf("%s: expected status 400, got %d", testCase.name, response.StatusCode)
		}
		if message := readAPIError(t, response.Body); message != testCase.wantMessage {
			t.Fatalf("%s: expected %q, got %q", testCase.name, testCase.wantMessage, message)
		}
		_ = response.Body.Close()
	}
}
