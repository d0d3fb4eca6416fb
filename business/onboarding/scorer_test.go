package onboarding

import (
	"math"
	"reflect"
	"testing"

	"hustlexp/domain"
)

// noContext suppresses both context signals so a scenario is driven purely by
// the calibration answers.
var noContext = domain.OnboardingContext{HourOfDay: -1}

func TestScore_NoSignals(t *testing.T) {
	e := NewEngine(DefaultConfig())

	rc := e.Score(noContext, domain.Responses{})

	if rc.Worker != 0.5 || rc.Poster != 0.5 {
		t.Errorf("expected neutral 0.5/0.5, got %v/%v", rc.Worker, rc.Poster)
	}
	if rc.Confidence != 0 {
		t.Errorf("expected zero confidence, got %v", rc.Confidence)
	}
	if rc.CertaintyTier != domain.TierWeak {
		t.Errorf("expected WEAK tier, got %s", rc.CertaintyTier)
	}
	if rc.Inconsistencies.HasInconsistencies {
		t.Errorf("empty responses must not flag inconsistencies")
	}
	if rc.Inconsistencies.Flags == nil {
		t.Errorf("flags must serialize as an empty list, not null")
	}
}

func TestScore_Scenarios(t *testing.T) {
	e := NewEngine(DefaultConfig())

	tests := []struct {
		name       string
		responses  domain.Responses
		wantWorker float64
		wantPoster float64
		wantTier   domain.CertaintyTier
		wantFlags  []string
	}{
		{
			name: "clean moderate worker",
			responses: domain.Responses{
				QuestionMotivation:        OptMotivationIncome,
				QuestionFrustration:       OptFrustrationPayment,
				QuestionAvailability:      OptAvailabilityFlexible,
				QuestionPriceOrientation:  OptPriceFairMarket,
				QuestionControlPreference: OptControlCollaborative,
			},
			wantWorker: 0.7235,
			wantPoster: 0.2765,
			wantTier:   domain.TierModerate,
			wantFlags:  []string{},
		},
		{
			name: "strong poster",
			responses: domain.Responses{
				QuestionMotivation:        OptMotivationGetHelp,
				QuestionFrustration:       OptFrustrationFindingHelp,
				QuestionAvailability:      OptAvailabilityMinimal,
				QuestionPriceOrientation:  OptPriceBudget,
				QuestionControlPreference: OptControlDelegator,
			},
			wantWorker: 0.1571,
			wantPoster: 0.8429,
			wantTier:   domain.TierStrong,
			wantFlags:  []string{},
		},
		{
			// Textbook tasker answers trip the gaming rule; the 0.25 penalty
			// shrinks 0.8429 to 0.7572 but leaves the lean intact.
			name: "suspiciously perfect worker is dampened",
			responses: domain.Responses{
				QuestionMotivation:        OptMotivationIncome,
				QuestionFrustration:       OptFrustrationPayment,
				QuestionAvailability:      OptAvailabilityFlexible,
				QuestionPriceOrientation:  OptPriceCompetitive,
				QuestionControlPreference: OptControlAutonomous,
			},
			wantWorker: 0.7572,
			wantPoster: 0.2428,
			wantTier:   domain.TierStrong,
			wantFlags:  []string{FlagSuspiciouslyPerfectWorker},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rc := e.Score(noContext, tt.responses)

			if rc.Worker != tt.wantWorker || rc.Poster != tt.wantPoster {
				t.Errorf("probabilities = %v/%v, want %v/%v", rc.Worker, rc.Poster, tt.wantWorker, tt.wantPoster)
			}
			if rc.CertaintyTier != tt.wantTier {
				t.Errorf("tier = %s, want %s", rc.CertaintyTier, tt.wantTier)
			}
			if !reflect.DeepEqual(rc.Inconsistencies.Flags, tt.wantFlags) {
				t.Errorf("flags = %v, want %v", rc.Inconsistencies.Flags, tt.wantFlags)
			}
		})
	}
}

func TestScore_ContextOnly(t *testing.T) {
	e := NewEngine(DefaultConfig())

	octx := domain.OnboardingContext{
		DeviceClass: "mobile",
		HourOfDay:   20,
	}

	rc := e.Score(octx, domain.Responses{})

	if rc.Worker != 0.58 || rc.Poster != 0.42 {
		t.Errorf("context-only probabilities = %v/%v, want 0.58/0.42", rc.Worker, rc.Poster)
	}
	if rc.CertaintyTier != domain.TierWeak {
		t.Errorf("context alone must stay WEAK, got %s", rc.CertaintyTier)
	}
}

func TestScore_ProbabilitiesSumToOne(t *testing.T) {
	e := NewEngine(DefaultConfig())

	responses := domain.Responses{
		QuestionMotivation:        OptMotivationIncome,
		QuestionFrustration:       OptFrustrationNoTime,
		QuestionAvailability:      OptAvailabilityWeekends,
		QuestionPriceOrientation:  OptPriceBudget,
		QuestionControlPreference: OptControlCollaborative,
	}

	octxs := []domain.OnboardingContext{
		noContext,
		{DeviceClass: "desktop", HourOfDay: 9},
		{DeviceClass: "tablet", HourOfDay: 3},
	}

	for _, octx := range octxs {
		rc := e.Score(octx, responses)
		if math.Abs(rc.Worker+rc.Poster-1) > 0.0001 {
			t.Errorf("probabilities %v + %v do not sum to 1", rc.Worker, rc.Poster)
		}
	}
}

func TestScore_DampeningNeverFlipsLead(t *testing.T) {
	e := NewEngine(DefaultConfig())

	// Every rule fires at once; the clamped 0.40 penalty shrinks the margin
	// hard but the worker side must still lead.
	responses := domain.Responses{
		QuestionMotivation:        OptMotivationIncome,
		QuestionFrustration:       OptFrustrationPayment,
		QuestionAvailability:      OptAvailabilityMinimal,
		QuestionPriceOrientation:  OptPriceCompetitive,
		QuestionControlPreference: OptControlAutonomous,
	}

	rc := e.Score(noContext, responses)

	if rc.Inconsistencies.TotalPenalty != e.cfg.MaxTotalPenalty {
		t.Fatalf("penalty = %v, want clamp at %v", rc.Inconsistencies.TotalPenalty, e.cfg.MaxTotalPenalty)
	}
	if rc.Worker <= rc.Poster {
		t.Errorf("dampening flipped the lead: %v/%v", rc.Worker, rc.Poster)
	}
	if rc.Worker != 0.6295 {
		t.Errorf("dampened worker = %v, want 0.6295", rc.Worker)
	}
}

func TestScore_Deterministic(t *testing.T) {
	e := NewEngine(DefaultConfig())

	octx := domain.OnboardingContext{DeviceClass: "mobile", HourOfDay: 14}
	responses := domain.Responses{
		QuestionMotivation:       OptMotivationExplore,
		QuestionFrustration:      OptFrustrationNoTime,
		QuestionAvailability:     OptAvailabilityWeekends,
		QuestionPriceOrientation: OptPriceFairMarket,
	}

	first := e.Score(octx, responses)
	for i := 0; i < 100; i++ {
		if got := e.Score(octx, responses); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d diverged: %+v vs %+v", i, got, first)
		}
	}
}

func TestScore_UnknownAnswersContributeNothing(t *testing.T) {
	e := NewEngine(DefaultConfig())

	base := domain.Responses{
		QuestionMotivation: OptMotivationIncome,
	}
	withNoise := domain.Responses{
		QuestionMotivation:  OptMotivationIncome,
		"retiredQuestion":   "whatever",
		QuestionFrustration: "not_an_option",
	}

	if a, b := e.Score(noContext, base), e.Score(noContext, withNoise); !reflect.DeepEqual(a, b) {
		t.Errorf("stale ids changed the score: %+v vs %+v", a, b)
	}
}
