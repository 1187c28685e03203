package services

import (
	"testing"
	"time"

	"github.com/terraincognita07/fertilis/internal/models"
)

func TestResolveCycleBaseline(t *testing.T) {
	t.Parallel()

	today := mustParseDay("2026-03-20")
	history := []models.FertilityLog{
		bleedingLog(1, "2026-01-01"),
		bleedingLog(1, "2026-01-29"),
		bleedingLog(1, "2026-02-28"),
	}

	cases := []struct {
		name             string
		user             models.User
		bleeding         []models.FertilityLog
		wantAnchor       string
		wantAnchorSource string
		wantLength       int
		wantLengthSource string
		wantCycleDay     int
	}{
		{
			name:             "settings only",
			user:             models.User{CycleLength: 30, LastPeriodStart: dayPtr("2026-03-01")},
			wantAnchor:       "2026-03-01",
			wantAnchorSource: BaselineSourceSettings,
			wantLength:       30,
			wantLengthSource: BaselineSourceSettings,
			wantCycleDay:     20,
		},
		{
			name:             "detected start newer than settings",
			user:             models.User{CycleLength: 30, LastPeriodStart: dayPtr("2026-02-01")},
			bleeding:         history,
			wantAnchor:       "2026-02-28",
			wantAnchorSource: BaselineSourceDetected,
			wantLength:       29,
			wantLengthSource: BaselineSourceHistory,
			wantCycleDay:     21,
		},
		{
			name:             "settings newer than detected start",
			user:             models.User{CycleLength: 27, LastPeriodStart: dayPtr("2026-03-10")},
			bleeding:         []models.FertilityLog{bleedingLog(1, "2026-02-10")},
			wantAnchor:       "2026-03-10",
			wantAnchorSource: BaselineSourceSettings,
			wantLength:       27,
			wantLengthSource: BaselineSourceSettings,
			wantCycleDay:     11,
		},
		{
			name:             "future anchor ignored",
			user:             models.User{LastPeriodStart: dayPtr("2026-03-25")},
			wantAnchorSource: BaselineSourceNone,
			wantLength:       models.DefaultCycleLength,
			wantLengthSource: BaselineSourceDefault,
		},
		{
			name:             "future bleeding falls back to settings",
			user:             models.User{CycleLength: 10, LastPeriodStart: dayPtr("2026-03-05")},
			bleeding:         []models.FertilityLog{bleedingLog(1, "2026-03-22")},
			wantAnchor:       "2026-03-05",
			wantAnchorSource: BaselineSourceSettings,
			wantLength:       models.DefaultCycleLength,
			wantLengthSource: BaselineSourceDefault,
			wantCycleDay:     16,
		},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			baseline := ResolveCycleBaseline(testCase.user, testCase.bleeding, today, time.UTC)
			if testCase.wantAnchor == "" {
				if baseline.Anchor != nil {
					t.Fatalf("expected no anchor, got %s", baseline.Anchor.Format("2006-01-02"))
				}
			} else if baseline.Anchor == nil || baseline.Anchor.Format("2006-01-02") != testCase.wantAnchor {
				t.Fatalf("expected anchor %s, got %v", testCase.wantAnchor, baseline.Anchor)
			}
			if baseline.AnchorSource != testCase.wantAnchorSource {
				t.Fatalf("expected anchor source %q, got %q", testCase.wantAnchorSource, baseline.AnchorSource)
			}
			if baseline.AverageCycleLength != testCase.wantLength {
				t.Fatalf("expected cycle length %d, got %d", testCase.wantLength, baseline.AverageCycleLength)
			}
			if baseline.LengthSource != testCase.wantLengthSource {
				t.Fatalf("expected length source %q, got %q", testCase.wantLengthSource, baseline.LengthSource)
			}
			if got := baseline.CurrentCycleDay(today); got != testCase.wantCycleDay {
				t.Fatalf("expected cycle day %d, got %d", testCase.wantCycleDay, got)
			}
		})
	}
}

func TestResolveCycleBaselineKeepsStoredDateInWesternZone(t *testing.T) {
	t.Parallel()

	location := time.FixedZone("UTC-5", -5*60*60)
	now := time.Date(2026, time.March, 20, 2, 0, 0, 0, time.UTC)
	user := models.User{CycleLength: 28, LastPeriodStart: dayPtr("2026-03-01")}

	baseline := ResolveCycleBaseline(user, nil, now, location)
	if baseline.Anchor == nil {
		t.Fatal("expected anchor from settings")
	}
	if got := baseline.Anchor.Format("2006-01-02"); got != "2026-03-01" {
		t.Fatalf("expected anchor 2026-03-01, got %s", got)
	}
	if got := baseline.CurrentCycleDay(DateAtLocation(now, location)); got != 19 {
		t.Fatalf("expected cycle day 19 on the local date, got %d", got)
	}
}
