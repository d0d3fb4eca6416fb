package onboarding

import (
	"math"

	"hustlexp/domain"
)

// Engine evaluates the role-inference pipeline. Every method is a pure
// function of its inputs plus the immutable config, so one Engine is safe to
// share across goroutines.
type Engine struct {
	cfg Config
}

func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

func (e *Engine) Config() Config {
	return e.cfg
}

// Score aggregates context and calibration signals into normalized role
// probabilities, then dampens them toward 50/50 by any inconsistency penalty.
func (e *Engine) Score(octx domain.OnboardingContext, responses domain.Responses) domain.RoleConfidence {
	var workerSum, posterSum, totalWeight float64

	if sig, ok := deviceSignal(octx.DeviceClass); ok {
		w := e.cfg.weightFor(SignalKeyDeviceType)
		workerSum += sig.Worker * w
		posterSum += sig.Poster * w
		totalWeight += w
	}

	if sig, ok := timeOfDaySignal(octx.HourOfDay); ok {
		w := e.cfg.weightFor(SignalKeyTimeOfDay)
		workerSum += sig.Worker * w
		posterSum += sig.Poster * w
		totalWeight += w
	}

	// Walk the bank in its fixed order rather than ranging over the map, so
	// float accumulation is deterministic for identical inputs.
	for _, q := range questionBank {
		sig, ok := optionSignal(q.ID, responses[q.ID])
		if !ok {
			continue
		}
		w := e.cfg.weightFor(q.ID)
		workerSum += sig.Worker * w
		posterSum += sig.Poster * w
		totalWeight += w
	}

	if workerSum+posterSum == 0 || totalWeight == 0 {
		// No context and no answers. A defined terminal case: neutral
		// probabilities, zero confidence, weakest tier.
		return domain.RoleConfidence{
			Worker:          0.5,
			Poster:          0.5,
			Confidence:      0,
			CertaintyTier:   domain.TierWeak,
			Inconsistencies: domain.InconsistencyReport{Flags: []string{}},
		}
	}

	worker := workerSum / (workerSum + posterSum)
	poster := posterSum / (workerSum + posterSum)

	report := e.Detect(responses)
	if report.HasInconsistencies {
		// Multiplicative shrink toward the uninformative prior. It scales the
		// distance from 0.5 and therefore can never flip which side leads.
		worker = 0.5 + (worker-0.5)*(1-report.TotalPenalty)
		poster = 0.5 + (poster-0.5)*(1-report.TotalPenalty)
	}

	worker = round4(worker)
	poster = round4(poster)
	confidence := round4(math.Abs(worker-0.5) * 2)

	rc := domain.RoleConfidence{
		Worker:          worker,
		Poster:          poster,
		Confidence:      confidence,
		Inconsistencies: report,
	}
	rc.CertaintyTier = e.ClassifyCertainty(rc.Dominant())

	return rc
}

// round4 pins stored floats to 4 decimal places so serialized records compare
// equal across platforms.
func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
