package onboarding

import "hustlexp/domain"

// reOnboardFloorDays is the hard minimum between completing onboarding and
// being allowed to redo it, regardless of any other factor.
const reOnboardFloorDays = 7

// CanReOnboard decides whether a user may redo role classification. It holds
// no state of its own and is evaluated fresh against the persisted record.
//
// Order matters: the day floor always wins; after that, a shaky original
// classification (WEAK) or a user who already corrected the engine once
// (override) both qualify. Everything else needs manual approval outside
// this engine.
func CanReOnboard(result domain.OnboardingResult, daysSinceCompletion int) bool {
	if daysSinceCompletion < reOnboardFloorDays {
		return false
	}
	if result.CertaintyTier == domain.TierWeak {
		return true
	}
	if result.RoleWasOverridden {
		return true
	}
	return false
}
