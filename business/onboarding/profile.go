package onboarding

import "hustlexp/domain"

// DeriveProfile computes the four behavioral traits from raw answers alone.
// Each scalar starts at 0.5 and is nudged by fixed deltas per answer, then
// clamped to [0,1]. The inferred role and confidence are deliberately not
// inputs here: profile metrics must not echo the role guess back at it.
func DeriveProfile(responses domain.Responses) domain.ProfileSignals {
	risk := 0.5
	urgency := 0.5
	authority := 0.5
	price := 0.5

	switch responses[QuestionMotivation] {
	case OptMotivationIncome:
		risk += 0.05
	case OptMotivationGetHelp:
		price += 0.05
	case OptMotivationExplore:
		risk -= 0.05
	}

	switch responses[QuestionFrustration] {
	case OptFrustrationPayment:
		urgency += 0.10
		risk += 0.05
	case OptFrustrationFindingHelp:
		authority += 0.10
	case OptFrustrationNoTime:
		urgency += 0.15
	}

	switch responses[QuestionAvailability] {
	case OptAvailabilityMinimal:
		urgency -= 0.20
	case OptAvailabilityWeekends:
		urgency += 0.05
	case OptAvailabilityFlexible:
		urgency += 0.15
	}

	switch responses[QuestionPriceOrientation] {
	case OptPriceCompetitive:
		risk += 0.20
		price -= 0.10
	case OptPriceFairMarket:
		price += 0.05
	case OptPriceBudget:
		risk -= 0.10
		price += 0.25
	}

	switch responses[QuestionControlPreference] {
	case OptControlAutonomous:
		authority -= 0.20
	case OptControlCollaborative:
		authority += 0.05
	case OptControlDelegator:
		authority += 0.25
	}

	return domain.ProfileSignals{
		RiskTolerance:        round4(clamp01(risk)),
		UrgencyBias:          round4(clamp01(urgency)),
		AuthorityExpectation: round4(clamp01(authority)),
		PriceSensitivity:     round4(clamp01(price)),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
