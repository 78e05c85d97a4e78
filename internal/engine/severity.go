package engine

// Severity controls how hard the engine punishes failure streaks.
type Severity string

const (
	SeverityTolerant Severity = "tolerant"
	SeverityNormal   Severity = "normal"
	SeverityPunitive Severity = "punitive"
)

// FailureStreakThreshold is the consecutive-failure count at which penalties
// and the day-blocking cascade kick in.
const FailureStreakThreshold = 4

// AllSeverities returns all severity modes from mildest to harshest.
func AllSeverities() []Severity {
	return []Severity{SeverityTolerant, SeverityNormal, SeverityPunitive}
}

// Valid reports whether s is a known severity mode.
func (s Severity) Valid() bool {
	switch s {
	case SeverityTolerant, SeverityNormal, SeverityPunitive:
		return true
	}
	return false
}

// PenaltyMultiplier returns the XP scaling factor applied while a failure
// streak is at or above the threshold. Tolerant mode never scales.
func (s Severity) PenaltyMultiplier() float64 {
	switch s {
	case SeverityPunitive:
		return 0.60
	case SeverityNormal:
		return 0.75
	default:
		return 1.0
	}
}

// DisplayName returns a human-readable label for the severity.
func (s Severity) DisplayName() string {
	switch s {
	case SeverityTolerant:
		return "Tolerant"
	case SeverityNormal:
		return "Normal"
	case SeverityPunitive:
		return "Punitive"
	default:
		return string(s)
	}
}

// Description returns a short explanation of the mode's effect.
func (s Severity) Description() string {
	switch s {
	case SeverityTolerant:
		return "Failure streaks never reduce XP or block days"
	case SeverityNormal:
		return "4+ consecutive failures cut granted XP to 75% and block the rest of the year"
	case SeverityPunitive:
		return "4+ consecutive failures cut granted XP to 60% and block the rest of the year"
	default:
		return ""
	}
}

// View is the preferred landing screen. Display-only: it never affects
// progression logic.
type View string

const (
	ViewYear View = "year"
	ViewDay  View = "day"
)

// AllViews returns the selectable default views.
func AllViews() []View {
	return []View{ViewYear, ViewDay}
}

// Valid reports whether v is a known view.
func (v View) Valid() bool {
	return v == ViewYear || v == ViewDay
}

// DisplayName returns a human-readable label for the view.
func (v View) DisplayName() string {
	switch v {
	case ViewYear:
		return "Year calendar"
	case ViewDay:
		return "Today"
	default:
		return string(v)
	}
}
