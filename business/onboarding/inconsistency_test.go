package onboarding

import (
	"reflect"
	"testing"

	"hustlexp/domain"
)

func TestDetect_Rules(t *testing.T) {
	e := NewEngine(DefaultConfig())

	tests := []struct {
		name        string
		responses   domain.Responses
		wantFlags   []string
		wantPenalty float64
	}{
		{
			name:        "empty responses are clean",
			responses:   domain.Responses{},
			wantFlags:   []string{},
			wantPenalty: 0,
		},
		{
			name: "honest worker answers are clean",
			responses: domain.Responses{
				QuestionMotivation:        OptMotivationIncome,
				QuestionFrustration:       OptFrustrationPayment,
				QuestionAvailability:      OptAvailabilityFlexible,
				QuestionPriceOrientation:  OptPriceFairMarket,
				QuestionControlPreference: OptControlCollaborative,
			},
			wantFlags:   []string{},
			wantPenalty: 0,
		},
		{
			name: "perfect worker persona",
			responses: domain.Responses{
				QuestionMotivation:        OptMotivationIncome,
				QuestionFrustration:       OptFrustrationPayment,
				QuestionAvailability:      OptAvailabilityFlexible,
				QuestionPriceOrientation:  OptPriceCompetitive,
				QuestionControlPreference: OptControlAutonomous,
			},
			wantFlags:   []string{FlagSuspiciouslyPerfectWorker},
			wantPenalty: 0.25,
		},
		{
			name: "autonomy without availability",
			responses: domain.Responses{
				QuestionControlPreference: OptControlAutonomous,
				QuestionAvailability:      OptAvailabilityMinimal,
			},
			wantFlags:   []string{FlagAutonomyAvailabilityConflict},
			wantPenalty: 0.15,
		},
		{
			name: "income without availability",
			responses: domain.Responses{
				QuestionMotivation:   OptMotivationIncome,
				QuestionAvailability: OptAvailabilityMinimal,
			},
			wantFlags:   []string{FlagIncomeWithoutAvailability},
			wantPenalty: 0.10,
		},
		{
			name: "opposing extremes",
			responses: domain.Responses{
				QuestionMotivation:        OptMotivationIncome,
				QuestionControlPreference: OptControlDelegator,
			},
			wantFlags:   []string{FlagOpposingExtremes},
			wantPenalty: 0.10,
		},
		{
			// Four answers, all the first option on screen. Motivation's first
			// option also combines with minimal availability into the income
			// rule, so pick the poster-leaning spread instead.
			name: "straight line needs four answers",
			responses: domain.Responses{
				QuestionMotivation:        OptMotivationIncome,
				QuestionFrustration:       OptFrustrationPayment,
				QuestionPriceOrientation:  OptPriceCompetitive,
				QuestionControlPreference: OptControlAutonomous,
				QuestionAvailability:      "",
			},
			wantFlags:   []string{FlagSuspiciouslyPerfectWorker, FlagStraightLinePattern},
			wantPenalty: 0.35,
		},
		{
			name: "three first options do not trip straight line",
			responses: domain.Responses{
				QuestionMotivation:       OptMotivationIncome,
				QuestionFrustration:      OptFrustrationPayment,
				QuestionPriceOrientation: OptPriceCompetitive,
			},
			wantFlags:   []string{},
			wantPenalty: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := e.Detect(tt.responses)

			if !reflect.DeepEqual(report.Flags, tt.wantFlags) {
				t.Errorf("flags = %v, want %v", report.Flags, tt.wantFlags)
			}
			if report.TotalPenalty != tt.wantPenalty {
				t.Errorf("penalty = %v, want %v", report.TotalPenalty, tt.wantPenalty)
			}
			if report.HasInconsistencies != (len(tt.wantFlags) > 0) {
				t.Errorf("HasInconsistencies = %v with flags %v", report.HasInconsistencies, report.Flags)
			}
		})
	}
}

func TestDetect_PenaltyClampedAtCeiling(t *testing.T) {
	e := NewEngine(DefaultConfig())

	// Income motivation, first options everywhere: all five rules fire and
	// the raw sum of 0.70 must clamp to the configured 0.40.
	report := e.Detect(domain.Responses{
		QuestionMotivation:        OptMotivationIncome,
		QuestionFrustration:       OptFrustrationPayment,
		QuestionAvailability:      OptAvailabilityMinimal,
		QuestionPriceOrientation:  OptPriceCompetitive,
		QuestionControlPreference: OptControlAutonomous,
	})

	if len(report.Flags) != len(inconsistencyRules) {
		t.Errorf("expected all %d rules to fire, got %v", len(inconsistencyRules), report.Flags)
	}
	if report.TotalPenalty != e.cfg.MaxTotalPenalty {
		t.Errorf("penalty = %v, want clamp at %v", report.TotalPenalty, e.cfg.MaxTotalPenalty)
	}
}
