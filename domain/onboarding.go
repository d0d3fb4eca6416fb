package domain

import "time"

// UserRole is the marketplace role inferred (or confirmed) at onboarding.
// There is no dual value: ambiguity is always resolved to exactly one role.
type UserRole string

const (
	RoleWorker UserRole = "WORKER"
	RolePoster UserRole = "POSTER"
)

func (r UserRole) Valid() bool {
	return r == RoleWorker || r == RolePoster
}

// CertaintyTier is the discrete confidence band that gates how assertively
// the UI presents the inferred role.
type CertaintyTier string

const (
	TierStrong   CertaintyTier = "STRONG"
	TierModerate CertaintyTier = "MODERATE"
	TierWeak     CertaintyTier = "WEAK"
)

// RoleSignal is the per-option contribution toward each role. The two values
// need not sum to 1, though in practice they are complementary.
type RoleSignal struct {
	Worker float64 `json:"worker"`
	Poster float64 `json:"poster"`
}

// QuestionOption is one forced choice within a calibration question.
// The signal pair is internal and never sent to clients.
type QuestionOption struct {
	ID     string     `json:"id"`
	Label  string     `json:"label"`
	Signal RoleSignal `json:"-"`
}

// CalibrationQuestion belongs to a fixed, append-only bank: option ids and
// question ids must never be removed or renumbered across engine versions,
// or stored historical responses stop resolving.
type CalibrationQuestion struct {
	ID      string           `json:"id"`
	Prompt  string           `json:"prompt"`
	Options []QuestionOption `json:"options"`
}

// InconsistencyReport is the output of the gaming/contradiction detector.
type InconsistencyReport struct {
	TotalPenalty       float64  `json:"total_penalty"`
	Flags              []string `json:"flags"`
	HasInconsistencies bool     `json:"has_inconsistencies"`
}

// RoleConfidence holds the normalized role probabilities after dampening.
// Worker+Poster sum to 1 and all three scalars are rounded to 4 decimals so
// stored values are byte-stable across platforms.
type RoleConfidence struct {
	Worker          float64             `json:"worker"`
	Poster          float64             `json:"poster"`
	Confidence      float64             `json:"confidence"`
	CertaintyTier   CertaintyTier       `json:"certainty_tier"`
	Inconsistencies InconsistencyReport `json:"inconsistencies"`
}

// Dominant returns the larger of the two role probabilities.
func (rc RoleConfidence) Dominant() float64 {
	if rc.Poster > rc.Worker {
		return rc.Poster
	}
	return rc.Worker
}

// ConfirmationCopy is the disclosure contract for the confirmation screen.
// When RequiresExplicitChoice is true the screen must block progression until
// the user actively picks a role.
type ConfirmationCopy struct {
	Headline               string `json:"headline"`
	Subtext                string `json:"subtext"`
	RequiresExplicitChoice bool   `json:"requires_explicit_choice"`
}

// ProfileSignals are secondary behavioral traits derived from raw answers
// only. They deliberately never read the inferred role, so the engine cannot
// self-confirm its own guess through profile metrics.
type ProfileSignals struct {
	RiskTolerance        float64 `json:"risk_tolerance"`
	UrgencyBias          float64 `json:"urgency_bias"`
	AuthorityExpectation float64 `json:"authority_expectation"`
	PriceSensitivity     float64 `json:"price_sensitivity"`
}

// OnboardingSettings is the derived client settings block.
type OnboardingSettings struct {
	LandingTab          string `json:"landing_tab"` // tasks | post
	ShowRoleSwitchHint  bool   `json:"show_role_switch_hint"`
	TaskFeedEnabled     bool   `json:"task_feed_enabled"`
	PostComposerEnabled bool   `json:"post_composer_enabled"`
}

// OnboardingResult is the terminal record of one onboarding attempt. It is
// written exactly once and never mutated; a later role change goes through
// the re-onboarding path and produces a new record with a fresh id.
type OnboardingResult struct {
	ID                string              `json:"id"`
	UserID            uint                `json:"user_id"`
	Version           string              `json:"version"` // engine version locked at creation
	CompletedAt       time.Time           `json:"completed_at"`
	RoleConfidence    RoleConfidence      `json:"role_confidence"`
	InferredRole      UserRole            `json:"inferred_role"`
	FinalRole         UserRole            `json:"final_role"`
	RoleWasOverridden bool                `json:"role_was_overridden"`
	CertaintyTier     CertaintyTier       `json:"certainty_tier"`
	ConfirmationCopy  ConfirmationCopy    `json:"confirmation_copy"`
	Inconsistencies   InconsistencyReport `json:"inconsistencies"`
	ProfileSignals    ProfileSignals      `json:"profile_signals"`
	EnforcementRules  EnforcementRules    `json:"enforcement_rules"`
	Context           OnboardingContext   `json:"context"`
	Responses         Responses           `json:"responses"`
	Settings          OnboardingSettings  `json:"settings"`
}
