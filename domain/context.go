package domain

import "time"

// OnboardingContext is the environment snapshot taken the moment onboarding
// starts. It is captured exactly once per attempt by the client and never
// re-derived server-side; the engine treats it as read-only input.
type OnboardingContext struct {
	CapturedAt     time.Time `json:"captured_at"`
	DeviceClass    string    `json:"device_class"` // mobile | tablet | desktop
	Platform       string    `json:"platform"`     // ios | android | web
	Locale         string    `json:"locale"`
	Timezone       string    `json:"timezone"`
	HourOfDay      int       `json:"hour_of_day"` // 0-23, client-local
	DayOfWeek      int       `json:"day_of_week"` // 0=Sunday
	Referral       string    `json:"referral,omitempty"`
	CampaignID     string    `json:"campaign_id,omitempty"`
	SignupVelocity float64   `json:"signup_velocity,omitempty"` // screens/minute during signup
	FieldRevisions int       `json:"field_revisions"`           // times the user re-edited signup fields
}

// Responses maps a calibration question id to the chosen option id.
// Partial maps are fine; unanswered questions simply contribute nothing.
type Responses map[string]string
