package onboarding

import "hustlexp/domain"

// ClassifyCertainty maps the dominant probability onto the three certainty
// bands. Thresholds come from config, and the bands partition [0.5, 1.0]
// contiguously, so the mapping is monotonic by construction.
func (e *Engine) ClassifyCertainty(dominant float64) domain.CertaintyTier {
	switch {
	case dominant >= e.cfg.StrongMin:
		return domain.TierStrong
	case dominant >= e.cfg.ModerateMin:
		return domain.TierModerate
	default:
		return domain.TierWeak
	}
}

// InferRole thresholds the normalized probabilities into a single role. The
// engine always commits to a best guess, even at WEAK certainty; whether the
// UI trusts it silently is the copy selector's call.
func (e *Engine) InferRole(rc domain.RoleConfidence) domain.UserRole {
	if rc.Worker >= e.cfg.RoleThreshold {
		return domain.RoleWorker
	}
	if rc.Poster >= e.cfg.RoleThreshold {
		return domain.RolePoster
	}
	// Both below threshold: take the strictly larger side, worker on a tie.
	if rc.Poster > rc.Worker {
		return domain.RolePoster
	}
	return domain.RoleWorker
}
