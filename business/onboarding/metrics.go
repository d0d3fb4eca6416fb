package onboarding

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	OnboardingCompletedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "onboarding_completed_total",
			Help: "Count of completed onboarding attempts by final role, certainty tier, and override.",
		},
		[]string{"role", "tier", "overridden"},
	)

	InconsistencyFlagsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "onboarding_inconsistency_flags_total",
			Help: "Count of inconsistency flags raised during onboarding, by flag.",
		},
		[]string{"flag"},
	)
)

func init() {
	prometheus.MustRegister(OnboardingCompletedTotal, InconsistencyFlagsTotal)
}
