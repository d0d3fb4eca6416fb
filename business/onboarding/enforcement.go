package onboarding

import "hustlexp/domain"

// DeriveEnforcement maps final role and certainty tier to the authorization
// flags consumed server-side. Visibility and XP follow the role; scrutiny
// follows certainty alone — a WEAK user gets the most conservative profile
// whichever role they ended up with.
func DeriveEnforcement(finalRole domain.UserRole, tier domain.CertaintyTier) domain.EnforcementRules {
	rules := domain.EnforcementRules{
		DisputeReviewPriority: domain.DisputeStandard,
	}

	switch finalRole {
	case domain.RoleWorker:
		rules.XPAccrualEnabled = true
		rules.CanAcceptTasks = true
	case domain.RolePoster:
		rules.CanPostTasks = true
	}

	switch tier {
	case domain.TierStrong:
		rules.TrustBuildingRate = 1.0
	case domain.TierModerate:
		rules.TrustBuildingRate = 0.75
	default:
		rules.DisputeReviewPriority = domain.DisputeElevated
		rules.TrustBuildingRate = 0.5
	}

	return rules
}

// deriveSettings builds the client settings block from the same two inputs.
func deriveSettings(finalRole domain.UserRole, tier domain.CertaintyTier) domain.OnboardingSettings {
	settings := domain.OnboardingSettings{
		ShowRoleSwitchHint: tier != domain.TierStrong,
	}

	if finalRole == domain.RoleWorker {
		settings.LandingTab = "tasks"
		settings.TaskFeedEnabled = true
	} else {
		settings.LandingTab = "post"
		settings.PostComposerEnabled = true
	}

	return settings
}
