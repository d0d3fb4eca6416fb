package onboarding

import "hustlexp/domain"

// Question ids form a fixed closed set. The bank is append-only across engine
// versions: ids must never be removed or renumbered, because stored responses
// reference them forever.
const (
	QuestionMotivation        = "motivation"
	QuestionFrustration       = "frustration"
	QuestionAvailability      = "availability"
	QuestionPriceOrientation  = "priceOrientation"
	QuestionControlPreference = "controlPreference"
)

// Option ids, grouped by question.
const (
	OptMotivationIncome  = "income"
	OptMotivationGetHelp = "get_help"
	OptMotivationExplore = "explore"

	OptFrustrationPayment     = "payment"
	OptFrustrationFindingHelp = "finding_help"
	OptFrustrationNoTime      = "no_time"

	OptAvailabilityMinimal  = "minimal"
	OptAvailabilityWeekends = "weekends"
	OptAvailabilityFlexible = "flexible"

	OptPriceCompetitive = "competitive"
	OptPriceFairMarket  = "fair_market"
	OptPriceBudget      = "budget"

	OptControlAutonomous    = "autonomous"
	OptControlCollaborative = "collaborative"
	OptControlDelegator     = "delegator"
)

var questionBank = []domain.CalibrationQuestion{
	{
		ID:     QuestionMotivation,
		Prompt: "What brings you to HustleXP?",
		Options: []domain.QuestionOption{
			{ID: OptMotivationIncome, Label: "Earning steady income", Signal: domain.RoleSignal{Worker: 0.9, Poster: 0.1}},
			{ID: OptMotivationGetHelp, Label: "Getting things off my plate", Signal: domain.RoleSignal{Worker: 0.1, Poster: 0.9}},
			{ID: OptMotivationExplore, Label: "Just looking around", Signal: domain.RoleSignal{Worker: 0.5, Poster: 0.5}},
		},
	},
	{
		ID:     QuestionFrustration,
		Prompt: "What has frustrated you most about gig platforms?",
		Options: []domain.QuestionOption{
			{ID: OptFrustrationPayment, Label: "Getting paid late, or not at all", Signal: domain.RoleSignal{Worker: 0.85, Poster: 0.15}},
			{ID: OptFrustrationFindingHelp, Label: "Finding help I can actually rely on", Signal: domain.RoleSignal{Worker: 0.15, Poster: 0.85}},
			{ID: OptFrustrationNoTime, Label: "Not enough hours in the day", Signal: domain.RoleSignal{Worker: 0.4, Poster: 0.6}},
		},
	},
	{
		ID:     QuestionAvailability,
		Prompt: "How much time can you put in each week?",
		Options: []domain.QuestionOption{
			{ID: OptAvailabilityMinimal, Label: "A few hours here and there", Signal: domain.RoleSignal{Worker: 0.2, Poster: 0.8}},
			{ID: OptAvailabilityWeekends, Label: "Evenings and weekends", Signal: domain.RoleSignal{Worker: 0.6, Poster: 0.4}},
			{ID: OptAvailabilityFlexible, Label: "Fully flexible schedule", Signal: domain.RoleSignal{Worker: 0.8, Poster: 0.2}},
		},
	},
	{
		ID:     QuestionPriceOrientation,
		Prompt: "How do you think about pricing?",
		Options: []domain.QuestionOption{
			{ID: OptPriceCompetitive, Label: "Competitive — I price to win", Signal: domain.RoleSignal{Worker: 0.8, Poster: 0.2}},
			{ID: OptPriceFairMarket, Label: "Fair market rate, no games", Signal: domain.RoleSignal{Worker: 0.5, Poster: 0.5}},
			{ID: OptPriceBudget, Label: "Whatever fits the budget", Signal: domain.RoleSignal{Worker: 0.2, Poster: 0.8}},
		},
	},
	{
		ID:     QuestionControlPreference,
		Prompt: "How do you like work to get done?",
		Options: []domain.QuestionOption{
			{ID: OptControlAutonomous, Label: "Give me the goal, I handle the rest", Signal: domain.RoleSignal{Worker: 0.85, Poster: 0.15}},
			{ID: OptControlCollaborative, Label: "Collaborate and check in as we go", Signal: domain.RoleSignal{Worker: 0.5, Poster: 0.5}},
			{ID: OptControlDelegator, Label: "Delegate it and review the result", Signal: domain.RoleSignal{Worker: 0.15, Poster: 0.85}},
		},
	},
}

// Questions returns the full calibration bank in presentation order.
func Questions() []domain.CalibrationQuestion {
	return questionBank
}

// optionSignal resolves the signal pair for a (question, option) pair.
// Unknown ids report false so unanswered or stale responses contribute
// nothing instead of failing.
func optionSignal(questionID, optionID string) (domain.RoleSignal, bool) {
	for _, q := range questionBank {
		if q.ID != questionID {
			continue
		}
		for _, opt := range q.Options {
			if opt.ID == optionID {
				return opt.Signal, true
			}
		}
		return domain.RoleSignal{}, false
	}
	return domain.RoleSignal{}, false
}

// firstOptionID returns the id of the first option of a question, used by the
// straight-line gaming rule.
func firstOptionID(questionID string) string {
	for _, q := range questionBank {
		if q.ID == questionID && len(q.Options) > 0 {
			return q.Options[0].ID
		}
	}
	return ""
}
