package engine

import "math"

// LevelProgress describes where a total XP amount sits in the level curve.
type LevelProgress struct {
	Level      int // current level, 1-based
	CurrentXP  int // XP accumulated within the current level
	RequiredXP int // XP needed to advance from the current level
}

// XPForNextLevel returns the XP required to advance from level to level+1.
func XPForNextLevel(level int) int {
	return int(math.Round(100 * math.Pow(float64(level), 1.5)))
}

// CalculateLevel derives the level progression for a total XP amount.
// The curve is walked from level 1 every time; no cached level is ever
// authoritative, so the result can never drift from the stored total.
func CalculateLevel(totalXP int) LevelProgress {
	level := 1
	accumulated := 0
	for accumulated+XPForNextLevel(level) <= totalXP {
		accumulated += XPForNextLevel(level)
		level++
	}
	return LevelProgress{
		Level:      level,
		CurrentXP:  totalXP - accumulated,
		RequiredXP: XPForNextLevel(level),
	}
}

// Percent returns the fraction of the current level completed, in [0, 1].
func (p LevelProgress) Percent() float64 {
	if p.RequiredXP <= 0 {
		return 0
	}
	return float64(p.CurrentXP) / float64(p.RequiredXP)
}

// RankTitle returns the rank label for a level.
func RankTitle(level int) string {
	switch {
	case level >= 100:
		return "Shadow Monarch"
	case level >= 80:
		return "S-Rank Hunter"
	case level >= 60:
		return "A-Rank Hunter"
	case level >= 40:
		return "B-Rank Hunter"
	case level >= 25:
		return "C-Rank Hunter"
	case level >= 15:
		return "D-Rank Hunter"
	case level >= 5:
		return "E-Rank Hunter"
	default:
		return "Awakened"
	}
}
