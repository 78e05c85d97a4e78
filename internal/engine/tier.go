package engine

// Tier identifies the difficulty category of a mission.
type Tier string

const (
	TierWinchester Tier = "winchester"
	TierSalvatores Tier = "salvatores"
	TierWaynes     Tier = "waynes"
	TierSuits      Tier = "suits"
)

// AllTiers returns all tiers in order from highest to lowest difficulty.
func AllTiers() []Tier {
	return []Tier{TierWinchester, TierSalvatores, TierWaynes, TierSuits}
}

// Valid reports whether t is one of the four known tiers.
func (t Tier) Valid() bool {
	switch t {
	case TierWinchester, TierSalvatores, TierWaynes, TierSuits:
		return true
	}
	return false
}

// BaseXP returns the XP granted for completing a mission of this tier.
func (t Tier) BaseXP() int {
	switch t {
	case TierWinchester:
		return 300
	case TierSalvatores:
		return 200
	case TierWaynes:
		return 150
	case TierSuits:
		return 100
	default:
		return 0
	}
}

// DisplayName returns a human-readable label for the tier.
func (t Tier) DisplayName() string {
	switch t {
	case TierWinchester:
		return "Winchester"
	case TierSalvatores:
		return "Salvatores"
	case TierWaynes:
		return "Waynes"
	case TierSuits:
		return "Suits"
	default:
		return string(t)
	}
}

// Description returns a short description of the tier's difficulty.
func (t Tier) Description() string {
	switch t {
	case TierWinchester:
		return "Epic, high-difficulty missions"
	case TierSalvatores:
		return "Important, meaningful challenges"
	case TierWaynes:
		return "Moderate everyday tasks"
	case TierSuits:
		return "Quick and simple activities"
	default:
		return ""
	}
}

// Icon returns the display icon for the tier.
func (t Tier) Icon() string {
	switch t {
	case TierWinchester:
		return "👑"
	case TierSalvatores:
		return "🗡️"
	case TierWaynes:
		return "🛠️"
	case TierSuits:
		return "📎"
	default:
		return "✦"
	}
}
