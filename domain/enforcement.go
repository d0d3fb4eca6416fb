package domain

// DisputePriority is the server-side review queue a user's disputes land in.
type DisputePriority string

const (
	DisputeStandard DisputePriority = "STANDARD"
	DisputeElevated DisputePriority = "ELEVATED"
)

// EnforcementRules are the authorization flags consumed by server-side
// systems. They are a pure function of final role and certainty tier;
// downstream services must read them from the stored OnboardingResult and
// never recompute them against live configuration.
type EnforcementRules struct {
	XPAccrualEnabled      bool            `json:"xp_accrual_enabled"`
	CanAcceptTasks        bool            `json:"can_accept_tasks"`
	CanPostTasks          bool            `json:"can_post_tasks"`
	DisputeReviewPriority DisputePriority `json:"dispute_review_priority"`
	TrustBuildingRate     float64         `json:"trust_building_rate"` // multiplier, 1.0 = normal
}
