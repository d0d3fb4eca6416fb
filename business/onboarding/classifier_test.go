package onboarding

import (
	"testing"

	"hustlexp/domain"
)

func TestClassifyCertainty(t *testing.T) {
	e := NewEngine(DefaultConfig())

	tests := []struct {
		dominant float64
		want     domain.CertaintyTier
	}{
		{1.0, domain.TierStrong},
		{0.75, domain.TierStrong},
		{0.7499, domain.TierModerate},
		{0.60, domain.TierModerate},
		{0.5999, domain.TierWeak},
		{0.5, domain.TierWeak},
	}

	for _, tt := range tests {
		if got := e.ClassifyCertainty(tt.dominant); got != tt.want {
			t.Errorf("ClassifyCertainty(%v) = %s, want %s", tt.dominant, got, tt.want)
		}
	}
}

func TestClassifyCertainty_Monotonic(t *testing.T) {
	e := NewEngine(DefaultConfig())

	rank := map[domain.CertaintyTier]int{
		domain.TierWeak:     0,
		domain.TierModerate: 1,
		domain.TierStrong:   2,
	}

	prev := e.ClassifyCertainty(0.5)
	for d := 0.5; d <= 1.0; d += 0.001 {
		cur := e.ClassifyCertainty(d)
		if rank[cur] < rank[prev] {
			t.Fatalf("tier dropped from %s to %s at dominant=%v", prev, cur, d)
		}
		prev = cur
	}
}

func TestInferRole(t *testing.T) {
	e := NewEngine(DefaultConfig())

	tests := []struct {
		name   string
		worker float64
		poster float64
		want   domain.UserRole
	}{
		{"worker above threshold", 0.56, 0.44, domain.RoleWorker},
		{"poster above threshold", 0.44, 0.56, domain.RolePoster},
		{"both below, worker leads", 0.52, 0.48, domain.RoleWorker},
		{"both below, poster leads", 0.48, 0.52, domain.RolePoster},
		{"exact tie goes to worker", 0.5, 0.5, domain.RoleWorker},
		{"threshold boundary counts", 0.55, 0.45, domain.RoleWorker},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rc := domain.RoleConfidence{Worker: tt.worker, Poster: tt.poster}
			if got := e.InferRole(rc); got != tt.want {
				t.Errorf("InferRole(%v/%v) = %s, want %s", tt.worker, tt.poster, got, tt.want)
			}
		})
	}
}
