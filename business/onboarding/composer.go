package onboarding

import (
	"time"

	"hustlexp/domain"
)

// Compose runs the full pipeline and assembles the terminal record. It is
// the only constructor of domain.OnboardingResult in the codebase; no other
// component may produce a partial or alternate result shape.
//
// The id and completedAt are supplied by the caller so the function stays a
// pure evaluation: identical inputs always compose identical records.
func (e *Engine) Compose(
	id string,
	userID uint,
	octx domain.OnboardingContext,
	responses domain.Responses,
	override *domain.UserRole,
	completedAt time.Time,
) domain.OnboardingResult {

	rc := e.Score(octx, responses)
	inferred := e.InferRole(rc)

	final := inferred
	overridden := false
	if override != nil {
		// Validity of the override value is the transport layer's problem;
		// here it is assumed to be a real UserRole.
		final = *override
		overridden = *override != inferred
	}

	return domain.OnboardingResult{
		ID:                id,
		UserID:            userID,
		Version:           EngineVersion,
		CompletedAt:       completedAt,
		RoleConfidence:    rc,
		InferredRole:      inferred,
		FinalRole:         final,
		RoleWasOverridden: overridden,
		CertaintyTier:     rc.CertaintyTier,
		ConfirmationCopy:  CopyFor(rc.CertaintyTier, inferred),
		Inconsistencies:   rc.Inconsistencies,
		ProfileSignals:    DeriveProfile(responses),
		EnforcementRules:  DeriveEnforcement(final, rc.CertaintyTier),
		Context:           octx,
		Responses:         responses,
		Settings:          deriveSettings(final, rc.CertaintyTier),
	}
}
