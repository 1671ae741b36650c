package component

import "testing"

func TestStatsDamageSaturates(t *testing.T) {
	tests := []struct {
		name   string
		health int
		hits   []int
		want   int
	}{
		{"partial", 50, []int{10, 15}, 25},
		{"exact", 20, []int{20}, 0},
		{"overkill", 30, []int{20, 20, 20}, 0},
		{"negative ignored", 30, []int{-5}, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Stats{Health: tt.health}
			for _, h := range tt.hits {
				s.Damage(h)
				if s.Health < 0 {
					t.Fatalf("health went negative: %d", s.Health)
				}
			}
			if s.Health != tt.want {
				t.Errorf("health = %d, want %d", s.Health, tt.want)
			}
			if s.IsDead() != (tt.want == 0) {
				t.Errorf("IsDead = %v", s.IsDead())
			}
		})
	}
}

func TestShieldAbsorb(t *testing.T) {
	s := &Shield{Health: 10, MaxHealth: 10}
	if s.Absorb(6) {
		t.Error("depleted after 6 of 10")
	}
	if s.Health != 4 {
		t.Errorf("health = %d, want 4", s.Health)
	}
	if !s.Absorb(8) {
		t.Error("not depleted after overkill")
	}
	if s.Health != 0 {
		t.Errorf("health = %d, want 0", s.Health)
	}
}

func TestSideOpposes(t *testing.T) {
	if !SidePlayer.Opposes(SideEnemy) || !SideEnemy.Opposes(SidePlayer) {
		t.Error("player and enemy must oppose")
	}
	for _, s := range []Side{SideNone, SidePlayer, SideEnemy} {
		if s.Opposes(s) {
			t.Errorf("%s opposes itself", s)
		}
		if s.Opposes(SideNone) || SideNone.Opposes(s) {
			t.Errorf("%s opposes none", s)
		}
	}
}
