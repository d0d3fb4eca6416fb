package onboarding

import "hustlexp/domain"

// Inconsistency flags. Each names a contradiction or gaming pattern detected
// across the answer combination, never from a single answer alone.
const (
	FlagSuspiciouslyPerfectWorker    = "SUSPICIOUSLY_PERFECT_WORKER"
	FlagAutonomyAvailabilityConflict = "AUTONOMY_AVAILABILITY_CONFLICT"
	FlagIncomeWithoutAvailability    = "INCOME_WITHOUT_AVAILABILITY"
	FlagOpposingExtremes             = "OPPOSING_EXTREMES"
	FlagStraightLinePattern          = "STRAIGHT_LINE_PATTERN"
)

const extremeSignal = 0.8

type inconsistencyRule struct {
	flag    string
	penalty float64
	fires   func(r domain.Responses) bool
}

// The rule set is fixed per engine version. Predicates read the responses map
// directly; a missing answer yields "" and the predicate simply fails, so
// partial answer sets never error.
var inconsistencyRules = []inconsistencyRule{
	{
		// The textbook tasker persona, answered too cleanly to trust.
		flag:    FlagSuspiciouslyPerfectWorker,
		penalty: 0.25,
		fires: func(r domain.Responses) bool {
			return r[QuestionMotivation] == OptMotivationIncome &&
				r[QuestionFrustration] == OptFrustrationPayment &&
				r[QuestionPriceOrientation] == OptPriceCompetitive &&
				r[QuestionControlPreference] == OptControlAutonomous
		},
	},
	{
		// Wants full autonomy over work but is barely available to do any.
		flag:    FlagAutonomyAvailabilityConflict,
		penalty: 0.15,
		fires: func(r domain.Responses) bool {
			return r[QuestionControlPreference] == OptControlAutonomous &&
				r[QuestionAvailability] == OptAvailabilityMinimal
		},
	},
	{
		// Here for income yet committing almost no hours.
		flag:    FlagIncomeWithoutAvailability,
		penalty: 0.10,
		fires: func(r domain.Responses) bool {
			return r[QuestionMotivation] == OptMotivationIncome &&
				r[QuestionAvailability] == OptAvailabilityMinimal
		},
	},
	{
		// Extreme answers on both sides of the fence at once.
		flag:    FlagOpposingExtremes,
		penalty: 0.10,
		fires: func(r domain.Responses) bool {
			workerExtreme := false
			posterExtreme := false
			for _, q := range questionBank {
				sig, ok := optionSignal(q.ID, r[q.ID])
				if !ok {
					continue
				}
				if sig.Worker >= extremeSignal {
					workerExtreme = true
				}
				if sig.Poster >= extremeSignal {
					posterExtreme = true
				}
			}
			return workerExtreme && posterExtreme
		},
	},
	{
		// Every answer is the first option on screen.
		flag:    FlagStraightLinePattern,
		penalty: 0.10,
		fires: func(r domain.Responses) bool {
			answered := 0
			for _, q := range questionBank {
				optID, ok := r[q.ID]
				if !ok || optID == "" {
					continue
				}
				if optID != firstOptionID(q.ID) {
					return false
				}
				answered++
			}
			return answered >= 4
		},
	},
}

// Detect evaluates every rule against the full answer set. Rules are never
// short-circuited: simultaneous violations all land in the flag list, and the
// summed penalty is clamped to the configured ceiling so some signal always
// survives dampening.
func (e *Engine) Detect(responses domain.Responses) domain.InconsistencyReport {
	report := domain.InconsistencyReport{Flags: []string{}}

	for _, rule := range inconsistencyRules {
		if !rule.fires(responses) {
			continue
		}
		report.Flags = append(report.Flags, rule.flag)
		report.TotalPenalty += rule.penalty
	}

	if report.TotalPenalty > e.cfg.MaxTotalPenalty {
		report.TotalPenalty = e.cfg.MaxTotalPenalty
	}
	report.TotalPenalty = round4(report.TotalPenalty)
	report.HasInconsistencies = len(report.Flags) > 0

	return report
}
