package engine

import "testing"

func TestXPForNextLevel(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{1, 100},
		{2, 283},
		{3, 520},
		{4, 800},
		{5, 1118},
		{10, 3162},
		{100, 100000},
	}

	for _, tt := range tests {
		got := XPForNextLevel(tt.level)
		if got != tt.want {
			t.Errorf("XPForNextLevel(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestCalculateLevel(t *testing.T) {
	tests := []struct {
		totalXP        int
		wantLevel      int
		wantCurrentXP  int
		wantRequiredXP int
	}{
		{0, 1, 0, 100},
		{99, 1, 99, 100},
		{100, 2, 0, 283},
		{382, 2, 282, 283},
		{383, 3, 0, 520},
		{903, 4, 0, 800},
		{1000, 4, 97, 800},
	}

	for _, tt := range tests {
		got := CalculateLevel(tt.totalXP)
		if got.Level != tt.wantLevel || got.CurrentXP != tt.wantCurrentXP || got.RequiredXP != tt.wantRequiredXP {
			t.Errorf("CalculateLevel(%d) = %+v, want level=%d currentXP=%d requiredXP=%d",
				tt.totalXP, got, tt.wantLevel, tt.wantCurrentXP, tt.wantRequiredXP)
		}
	}
}

// The formula must place every XP total inside exactly one level band.
func TestCalculateLevelBounds(t *testing.T) {
	for totalXP := 0; totalXP <= 20000; totalXP += 7 {
		p := CalculateLevel(totalXP)
		if p.Level < 1 {
			t.Fatalf("CalculateLevel(%d).Level = %d, want >= 1", totalXP, p.Level)
		}
		if p.CurrentXP < 0 || p.CurrentXP >= p.RequiredXP {
			t.Fatalf("CalculateLevel(%d) = %+v: currentXP outside [0, requiredXP)", totalXP, p)
		}

		// Reconstruct the floor of the band and check the total sits in it.
		floor := 0
		for l := 1; l < p.Level; l++ {
			floor += XPForNextLevel(l)
		}
		if floor+p.CurrentXP != totalXP {
			t.Fatalf("CalculateLevel(%d): floor %d + currentXP %d != total", totalXP, floor, p.CurrentXP)
		}
	}
}

func TestRankTitle(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{1, "Awakened"},
		{4, "Awakened"},
		{5, "E-Rank Hunter"},
		{14, "E-Rank Hunter"},
		{15, "D-Rank Hunter"},
		{25, "C-Rank Hunter"},
		{40, "B-Rank Hunter"},
		{60, "A-Rank Hunter"},
		{80, "S-Rank Hunter"},
		{99, "S-Rank Hunter"},
		{100, "Shadow Monarch"},
		{250, "Shadow Monarch"},
	}

	for _, tt := range tests {
		got := RankTitle(tt.level)
		if got != tt.want {
			t.Errorf("RankTitle(%d) = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestLevelProgressPercent(t *testing.T) {
	p := LevelProgress{Level: 1, CurrentXP: 50, RequiredXP: 100}
	if got := p.Percent(); got != 0.5 {
		t.Errorf("Percent() = %v, want 0.5", got)
	}
	zero := LevelProgress{}
	if got := zero.Percent(); got != 0 {
		t.Errorf("Percent() on zero value = %v, want 0", got)
	}
}
