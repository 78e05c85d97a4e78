// Package stats derives analysis figures from a progression state. All
// functions are pure reads; nothing here mutates or persists.
package stats

import (
	"sort"

	"github.com/abelldev/huntlog/internal/engine"
)

// TierBreakdown aggregates mission outcomes for one tier.
type TierBreakdown struct {
	Tier      engine.Tier
	Completed int
	Failed    int
	Pending   int
}

// Attempted returns how many missions of the tier were resolved.
func (b TierBreakdown) Attempted() int {
	return b.Completed + b.Failed
}

// MonthXP is the XP earned within one calendar month.
type MonthXP struct {
	Month string // yyyy-mm
	XP    int
}

// Summary is the full analysis view over a progression state.
type Summary struct {
	TotalXP             int
	Level               engine.LevelProgress
	Rank                string
	Completed           int
	Failed              int
	Pending             int
	ConsecutiveFailures int
	BlockedDays         int
	Tiers               []TierBreakdown
	XPByMonth           []MonthXP
	BestDay             engine.Date // empty when no day earned XP
	BestDayXP           int
}

// Total returns the number of missions ever created and still on record.
func (s Summary) Total() int {
	return s.Completed + s.Failed + s.Pending
}

// CompletionRate returns completed / resolved, or 0 when nothing resolved.
func (s Summary) CompletionRate() float64 {
	resolved := s.Completed + s.Failed
	if resolved == 0 {
		return 0
	}
	return float64(s.Completed) / float64(resolved)
}

// Compute builds the analysis summary for a state.
func Compute(state *engine.State) Summary {
	sum := Summary{
		TotalXP:             state.TotalXP,
		Level:               state.Level(),
		Rank:                state.Rank(),
		ConsecutiveFailures: state.ConsecutiveFailures,
	}

	byTier := make(map[engine.Tier]*TierBreakdown)
	for _, tier := range engine.AllTiers() {
		byTier[tier] = &TierBreakdown{Tier: tier}
	}
	monthXP := make(map[string]int)

	for _, date := range state.Dates() {
		rec := state.Days[date]
		if rec.Blocked {
			sum.BlockedDays++
		}
		if rec.XPEarned > 0 {
			monthXP[monthOf(date)] += rec.XPEarned
			if rec.XPEarned > sum.BestDayXP {
				sum.BestDayXP = rec.XPEarned
				sum.BestDay = date
			}
		}
		for _, m := range rec.Missions {
			b, ok := byTier[m.Tier]
			if !ok {
				b = &TierBreakdown{Tier: m.Tier}
				byTier[m.Tier] = b
			}
			switch m.Status {
			case engine.StatusCompleted:
				b.Completed++
				sum.Completed++
			case engine.StatusFailed:
				b.Failed++
				sum.Failed++
			default:
				b.Pending++
				sum.Pending++
			}
		}
	}

	for _, tier := range engine.AllTiers() {
		sum.Tiers = append(sum.Tiers, *byTier[tier])
	}

	months := make([]string, 0, len(monthXP))
	for m := range monthXP {
		months = append(months, m)
	}
	sort.Strings(months)
	for _, m := range months {
		sum.XPByMonth = append(sum.XPByMonth, MonthXP{Month: m, XP: monthXP[m]})
	}

	return sum
}

func monthOf(d engine.Date) string {
	s := d.String()
	if len(s) < 7 {
		return s
	}
	return s[:7]
}
