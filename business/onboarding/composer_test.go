package onboarding

import (
	"reflect"
	"testing"
	"time"

	"hustlexp/domain"
)

var composerContext = domain.OnboardingContext{
	CapturedAt:  time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	DeviceClass: "mobile",
	Platform:    "ios",
	HourOfDay:   9,
	DayOfWeek:   6,
}

func workerResponses() domain.Responses {
	return domain.Responses{
		QuestionMotivation:        OptMotivationIncome,
		QuestionFrustration:       OptFrustrationPayment,
		QuestionAvailability:      OptAvailabilityFlexible,
		QuestionPriceOrientation:  OptPriceFairMarket,
		QuestionControlPreference: OptControlCollaborative,
	}
}

func TestCompose_Idempotent(t *testing.T) {
	e := NewEngine(DefaultConfig())
	completedAt := time.Date(2026, 3, 14, 9, 31, 0, 0, time.UTC)

	first := e.Compose("rec-1", 42, composerContext, workerResponses(), nil, completedAt)
	for i := 0; i < 50; i++ {
		again := e.Compose("rec-1", 42, composerContext, workerResponses(), nil, completedAt)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d composed a different record:\n%+v\nvs\n%+v", i, first, again)
		}
	}
}

func TestCompose_RecordIsInternallyConsistent(t *testing.T) {
	e := NewEngine(DefaultConfig())
	completedAt := time.Now().UTC()

	result := e.Compose("rec-2", 7, composerContext, workerResponses(), nil, completedAt)

	if result.Version != EngineVersion {
		t.Errorf("version = %s, want %s", result.Version, EngineVersion)
	}
	if result.CertaintyTier != result.RoleConfidence.CertaintyTier {
		t.Errorf("tier fields disagree: %s vs %s", result.CertaintyTier, result.RoleConfidence.CertaintyTier)
	}
	if result.FinalRole != result.InferredRole || result.RoleWasOverridden {
		t.Errorf("no override given, but final=%s inferred=%s overridden=%v",
			result.FinalRole, result.InferredRole, result.RoleWasOverridden)
	}
	if result.EnforcementRules != DeriveEnforcement(result.FinalRole, result.CertaintyTier) {
		t.Errorf("enforcement does not match final role and tier")
	}
	if result.ConfirmationCopy != CopyFor(result.CertaintyTier, result.InferredRole) {
		t.Errorf("copy does not match tier and inferred role")
	}
	if !result.CompletedAt.Equal(completedAt) {
		t.Errorf("completedAt = %v, want %v", result.CompletedAt, completedAt)
	}
}

func TestCompose_Override(t *testing.T) {
	e := NewEngine(DefaultConfig())
	poster := domain.RolePoster

	result := e.Compose("rec-3", 7, composerContext, workerResponses(), &poster, time.Now())

	if result.InferredRole != domain.RoleWorker {
		t.Fatalf("fixture should infer WORKER, got %s", result.InferredRole)
	}
	if result.FinalRole != domain.RolePoster {
		t.Errorf("final role = %s, want POSTER", result.FinalRole)
	}
	if !result.RoleWasOverridden {
		t.Errorf("override against the inference must set RoleWasOverridden")
	}

	// Enforcement and settings follow the final role, not the inference.
	if !result.EnforcementRules.CanPostTasks || result.EnforcementRules.CanAcceptTasks {
		t.Errorf("enforcement followed the inferred role: %+v", result.EnforcementRules)
	}
	if result.Settings.LandingTab != "post" {
		t.Errorf("settings followed the inferred role: %+v", result.Settings)
	}

	// The copy is frozen at inference time: it reflects what the user saw
	// before choosing to switch.
	if result.ConfirmationCopy != CopyFor(result.CertaintyTier, domain.RoleWorker) {
		t.Errorf("copy must reflect the inferred role")
	}
}

func TestCompose_OverrideMatchingInferenceIsNotAnOverride(t *testing.T) {
	e := NewEngine(DefaultConfig())
	worker := domain.RoleWorker

	result := e.Compose("rec-4", 7, composerContext, workerResponses(), &worker, time.Now())

	if result.RoleWasOverridden {
		t.Errorf("confirming the inference must not count as an override")
	}
	if result.FinalRole != domain.RoleWorker {
		t.Errorf("final role = %s, want WORKER", result.FinalRole)
	}
}
