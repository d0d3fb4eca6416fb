package onboarding

import "testing"

func TestQuestionBankIntegrity(t *testing.T) {
	seen := make(map[string]bool)

	for _, q := range Questions() {
		if seen[q.ID] {
			t.Errorf("duplicate question id %q", q.ID)
		}
		seen[q.ID] = true

		if len(q.Options) < 2 {
			t.Errorf("question %q has %d options", q.ID, len(q.Options))
		}

		optSeen := make(map[string]bool)
		for _, opt := range q.Options {
			if optSeen[opt.ID] {
				t.Errorf("duplicate option id %q in question %q", opt.ID, q.ID)
			}
			optSeen[opt.ID] = true

			sig := opt.Signal
			if sig.Worker < 0 || sig.Worker > 1 || sig.Poster < 0 || sig.Poster > 1 {
				t.Errorf("option %s/%s signal out of range: %+v", q.ID, opt.ID, sig)
			}
		}
	}
}

func TestOptionSignalLookup(t *testing.T) {
	if sig, ok := optionSignal(QuestionMotivation, OptMotivationIncome); !ok || sig.Worker != 0.9 {
		t.Errorf("lookup = %+v ok=%v", sig, ok)
	}
	if _, ok := optionSignal(QuestionMotivation, "nope"); ok {
		t.Errorf("unknown option must not resolve")
	}
	if _, ok := optionSignal("nope", OptMotivationIncome); ok {
		t.Errorf("unknown question must not resolve")
	}
}

func TestFirstOptionID(t *testing.T) {
	if got := firstOptionID(QuestionAvailability); got != OptAvailabilityMinimal {
		t.Errorf("firstOptionID(availability) = %q", got)
	}
	if got := firstOptionID("nope"); got != "" {
		t.Errorf("firstOptionID(unknown) = %q, want empty", got)
	}
}
