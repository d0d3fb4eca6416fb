package onboarding

// EngineVersion is stamped into every composed OnboardingResult. It is locked
// at build time together with the question bank, the weight table, the rule
// set and the thresholds below: a stored record must keep meaning whatever it
// meant when it was written, so the composer never reads a live version.
const EngineVersion = "1.4.0"

// Signal keys for the weight table beyond the question ids themselves.
const (
	SignalKeyDeviceType = "deviceType"
	SignalKeyTimeOfDay  = "timeOfDay"
)

const (
	defaultSignalWeight    = 0.1
	defaultStrongMin       = 0.75
	defaultModerateMin     = 0.60
	defaultRoleThreshold   = 0.55
	defaultMaxTotalPenalty = 0.40
)

type Config struct {
	// SignalWeights maps question ids plus deviceType/timeOfDay to a
	// non-negative weight. Keys absent from the table fall back to
	// DefaultSignalWeight; a missing key is a contract, not an error.
	SignalWeights       map[string]float64
	DefaultSignalWeight float64

	// Certainty bands over the dominant probability. The three tiers must
	// partition [0.5, 1.0] contiguously: [ModerateMin, StrongMin) is
	// MODERATE, everything below ModerateMin is WEAK.
	StrongMin   float64
	ModerateMin float64

	// RoleThreshold is the minimum probability for a side to win outright.
	RoleThreshold float64

	// MaxTotalPenalty caps the summed inconsistency penalties so that no
	// combination of firing rules can flatten the scorer to pure 50/50.
	MaxTotalPenalty float64
}

func DefaultConfig() Config {
	return Config{
		SignalWeights: map[string]float64{
			QuestionMotivation:        1.0,
			QuestionFrustration:       0.8,
			QuestionAvailability:      0.9,
			QuestionPriceOrientation:  0.7,
			QuestionControlPreference: 0.85,
			SignalKeyDeviceType:       0.3,
			SignalKeyTimeOfDay:        0.2,
		},
		DefaultSignalWeight: defaultSignalWeight,
		StrongMin:           defaultStrongMin,
		ModerateMin:         defaultModerateMin,
		RoleThreshold:       defaultRoleThreshold,
		MaxTotalPenalty:     defaultMaxTotalPenalty,
	}
}

// weightFor looks up a signal weight with the documented default fallback.
func (c Config) weightFor(key string) float64 {
	if w, ok := c.SignalWeights[key]; ok {
		return w
	}
	return c.DefaultSignalWeight
}
