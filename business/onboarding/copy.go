package onboarding

import "hustlexp/domain"

// CopyFor selects the disclosure contract for the confirmation screen.
// STRONG asserts the role outright, MODERATE asserts it with a visible undo,
// and WEAK withholds the guess entirely and forces an explicit pick. The
// calling screen must block progression while RequiresExplicitChoice is true.
func CopyFor(tier domain.CertaintyTier, inferred domain.UserRole) domain.ConfirmationCopy {
	if tier == domain.TierWeak {
		return domain.ConfirmationCopy{
			Headline:               "How will you use HustleXP?",
			Subtext:                "Pick whichever fits best. You can switch anytime in settings.",
			RequiresExplicitChoice: true,
		}
	}

	switch {
	case tier == domain.TierStrong && inferred == domain.RoleWorker:
		return domain.ConfirmationCopy{
			Headline: "You're set up to earn",
			Subtext:  "We've tailored your feed for finding work.",
		}
	case tier == domain.TierStrong && inferred == domain.RolePoster:
		return domain.ConfirmationCopy{
			Headline: "You're set up to get things done",
			Subtext:  "We've tailored your home screen for posting tasks.",
		}
	case inferred == domain.RoleWorker:
		return domain.ConfirmationCopy{
			Headline: "Looks like you're here to earn",
			Subtext:  "Not quite right? One tap to switch.",
		}
	default:
		return domain.ConfirmationCopy{
			Headline: "Looks like you're here to hire",
			Subtext:  "Not quite right? One tap to switch.",
		}
	}
}
