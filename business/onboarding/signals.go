package onboarding

import "hustlexp/domain"

// Context signal contributions. A context field with no defined contribution
// (unknown device class, out-of-range hour) is skipped entirely rather than
// mapped to a neutral value, so it adds no weight to the normalization.

func deviceSignal(deviceClass string) (domain.RoleSignal, bool) {
	switch deviceClass {
	case "mobile":
		// taskers overwhelmingly onboard from phones
		return domain.RoleSignal{Worker: 0.6, Poster: 0.4}, true
	case "tablet":
		return domain.RoleSignal{Worker: 0.5, Poster: 0.5}, true
	case "desktop":
		return domain.RoleSignal{Worker: 0.4, Poster: 0.6}, true
	default:
		return domain.RoleSignal{}, false
	}
}

func timeOfDaySignal(hour int) (domain.RoleSignal, bool) {
	if hour < 0 || hour > 23 {
		return domain.RoleSignal{}, false
	}
	switch {
	case hour < 6:
		return domain.RoleSignal{Worker: 0.6, Poster: 0.4}, true
	case hour < 12:
		return domain.RoleSignal{Worker: 0.45, Poster: 0.55}, true
	case hour < 18:
		return domain.RoleSignal{Worker: 0.45, Poster: 0.55}, true
	default:
		return domain.RoleSignal{Worker: 0.55, Poster: 0.45}, true
	}
}

// timeBucket labels the hour the same way the buckets above cut it; used only
// for logging and the preview surface.
func timeBucket(hour int) string {
	switch {
	case hour < 0 || hour > 23:
		return "unknown"
	case hour < 6:
		return "night"
	case hour < 12:
		return "morning"
	case hour < 18:
		return "afternoon"
	default:
		return "evening"
	}
}
