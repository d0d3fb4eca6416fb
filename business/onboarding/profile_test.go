package onboarding

import (
	"testing"

	"hustlexp/domain"
)

func TestDeriveProfile_NoAnswersIsNeutral(t *testing.T) {
	got := DeriveProfile(domain.Responses{})

	want := domain.ProfileSignals{
		RiskTolerance:        0.5,
		UrgencyBias:          0.5,
		AuthorityExpectation: 0.5,
		PriceSensitivity:     0.5,
	}
	if got != want {
		t.Errorf("profile = %+v, want all neutral", got)
	}
}

func TestDeriveProfile_KnownCombination(t *testing.T) {
	got := DeriveProfile(domain.Responses{
		QuestionMotivation:        OptMotivationIncome,     // risk +0.05
		QuestionFrustration:       OptFrustrationPayment,   // urgency +0.10, risk +0.05
		QuestionAvailability:      OptAvailabilityFlexible, // urgency +0.15
		QuestionPriceOrientation:  OptPriceCompetitive,     // risk +0.20, price -0.10
		QuestionControlPreference: OptControlAutonomous,    // authority -0.20
	})

	want := domain.ProfileSignals{
		RiskTolerance:        0.8,
		UrgencyBias:          0.75,
		AuthorityExpectation: 0.3,
		PriceSensitivity:     0.4,
	}
	if got != want {
		t.Errorf("profile = %+v, want %+v", got, want)
	}
}

func TestDeriveProfile_ValuesStayInRange(t *testing.T) {
	// Walk every single-answer and a handful of full combinations; all four
	// scalars must hold [0,1].
	combos := []domain.Responses{
		{},
		{QuestionPriceOrientation: OptPriceBudget, QuestionMotivation: OptMotivationGetHelp},
		{QuestionFrustration: OptFrustrationNoTime, QuestionAvailability: OptAvailabilityFlexible},
		{QuestionFrustration: OptFrustrationFindingHelp, QuestionControlPreference: OptControlDelegator},
		{QuestionAvailability: OptAvailabilityMinimal, QuestionControlPreference: OptControlAutonomous},
	}
	for _, q := range questionBank {
		for _, opt := range q.Options {
			combos = append(combos, domain.Responses{q.ID: opt.ID})
		}
	}

	for _, responses := range combos {
		p := DeriveProfile(responses)
		for name, v := range map[string]float64{
			"risk":      p.RiskTolerance,
			"urgency":   p.UrgencyBias,
			"authority": p.AuthorityExpectation,
			"price":     p.PriceSensitivity,
		} {
			if v < 0 || v > 1 {
				t.Errorf("%s = %v out of range for %v", name, v, responses)
			}
		}
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{-0.3, 0},
		{0, 0},
		{0.42, 0.42},
		{1, 1},
		{1.2, 1},
	}
	for _, tt := range tests {
		if got := clamp01(tt.in); got != tt.want {
			t.Errorf("clamp01(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
