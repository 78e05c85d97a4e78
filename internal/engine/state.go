package engine

import "sort"

// State is the full progression aggregate. Commands never mutate a State in
// place; each returns a fresh copy with the transition applied, so a caller
// can hold the previous state for comparison or rollback.
type State struct {
	TotalXP             int                 `json:"xp"`
	Days                map[Date]*DayRecord `json:"days"`
	ConsecutiveFailures int                 `json:"consecutiveFailures"`
	Severity            Severity            `json:"severity"`
	DefaultView         View                `json:"defaultView"`
}

// NewState returns an empty progression state with default preferences.
func NewState() *State {
	return &State{
		Days:        make(map[Date]*DayRecord),
		Severity:    SeverityNormal,
		DefaultView: ViewYear,
	}
}

// Level derives the current level progression from the XP total.
func (s *State) Level() LevelProgress {
	return CalculateLevel(s.TotalXP)
}

// Rank derives the current rank title from the XP total.
func (s *State) Rank() string {
	return RankTitle(s.Level().Level)
}

// Day returns the record for a date, or an empty unblocked default if none
// exists. The default is not installed into the map: reads never create
// records, only commands do.
func (s *State) Day(date Date) *DayRecord {
	if rec, ok := s.Days[date]; ok {
		return rec
	}
	return &DayRecord{Date: date}
}

// Blocked reports whether a date is blocked.
func (s *State) Blocked(date Date) bool {
	rec, ok := s.Days[date]
	return ok && rec.Blocked
}

// Dates returns every date with a record, in ascending calendar order.
func (s *State) Dates() []Date {
	out := make([]Date, 0, len(s.Days))
	for d := range s.Days {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Clone returns a deep copy of the state.
func (s *State) Clone() *State {
	days := make(map[Date]*DayRecord, len(s.Days))
	for d, rec := range s.Days {
		days[d] = rec.clone()
	}
	return &State{
		TotalXP:             s.TotalXP,
		Days:                days,
		ConsecutiveFailures: s.ConsecutiveFailures,
		Severity:            s.Severity,
		DefaultView:         s.DefaultView,
	}
}

// ensureDay returns the record for date, installing an empty one if absent.
// Only command code paths call this.
func (s *State) ensureDay(date Date) *DayRecord {
	if rec, ok := s.Days[date]; ok {
		return rec
	}
	rec := &DayRecord{Date: date}
	s.Days[date] = rec
	return rec
}
