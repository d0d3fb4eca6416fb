package onboarding

import "testing"

func TestDeviceSignal(t *testing.T) {
	if sig, ok := deviceSignal("mobile"); !ok || sig.Worker != 0.6 {
		t.Errorf("mobile = %+v ok=%v", sig, ok)
	}
	if sig, ok := deviceSignal("desktop"); !ok || sig.Poster != 0.6 {
		t.Errorf("desktop = %+v ok=%v", sig, ok)
	}
	if _, ok := deviceSignal("smartwatch"); ok {
		t.Errorf("unknown device class must be skipped, not neutralized")
	}
	if _, ok := deviceSignal(""); ok {
		t.Errorf("absent device class must be skipped")
	}
}

func TestTimeOfDaySignal(t *testing.T) {
	for _, hour := range []int{-1, 24, 99} {
		if _, ok := timeOfDaySignal(hour); ok {
			t.Errorf("hour %d out of range must be skipped", hour)
		}
	}

	night, _ := timeOfDaySignal(3)
	evening, _ := timeOfDaySignal(20)
	if night.Worker <= 0.5 || evening.Worker <= 0.5 {
		t.Errorf("off-hours lean worker: night=%+v evening=%+v", night, evening)
	}

	morning, _ := timeOfDaySignal(10)
	if morning.Poster <= 0.5 {
		t.Errorf("business hours lean poster: %+v", morning)
	}
}

func TestTimeBucket(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{-1, "unknown"},
		{0, "night"},
		{5, "night"},
		{6, "morning"},
		{12, "afternoon"},
		{18, "evening"},
		{23, "evening"},
		{24, "unknown"},
	}
	for _, tt := range tests {
		if got := timeBucket(tt.hour); got != tt.want {
			t.Errorf("timeBucket(%d) = %s, want %s", tt.hour, got, tt.want)
		}
	}
}

func TestConfigWeightFallback(t *testing.T) {
	cfg := DefaultConfig()

	if w := cfg.weightFor(QuestionMotivation); w != 1.0 {
		t.Errorf("motivation weight = %v, want 1.0", w)
	}
	if w := cfg.weightFor("someFutureQuestion"); w != cfg.DefaultSignalWeight {
		t.Errorf("unknown key weight = %v, want default %v", w, cfg.DefaultSignalWeight)
	}
}
