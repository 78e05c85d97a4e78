// Package engine implements the progression and penalty rules of the journal
// as pure state transitions. Every command takes the current State and
// returns a new one; nothing in this package keeps hidden state, performs
// I/O, or reads the clock on its own.
package engine

import (
	"math"
	"strings"
	"time"
)

// AddMissionInput carries the caller-supplied fields for a new mission.
type AddMissionInput struct {
	Date               Date
	Title              string
	Description        string
	Tier               Tier
	CompletionCriteria string
	RewardText         string
	PunishmentText     string
	Time               string // optional HH:MM
}

// AddMission appends a new pending mission to its day. The id is supplied by
// the caller so the engine stays free of generation concerns. Adding to a
// blocked date is rejected here rather than left to the presentation layer,
// so the blocked invariant holds no matter which frontend issues the command.
func AddMission(s *State, id string, in AddMissionInput) (*State, *Mission, error) {
	if strings.TrimSpace(in.Title) == "" {
		return s, nil, &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if !in.Tier.Valid() {
		return s, nil, &ValidationError{Field: "tier", Reason: "unknown tier " + string(in.Tier)}
	}
	if s.Blocked(in.Date) {
		return s, nil, ErrDayBlocked
	}

	next := s.Clone()
	mission := &Mission{
		ID:                 id,
		Title:              in.Title,
		Description:        in.Description,
		Tier:               in.Tier,
		CompletionCriteria: in.CompletionCriteria,
		RewardText:         in.RewardText,
		PunishmentText:     in.PunishmentText,
		Date:               in.Date,
		Time:               in.Time,
		Status:             StatusPending,
	}
	rec := next.ensureDay(in.Date)
	rec.Missions = append(rec.Missions, mission)
	return next, mission, nil
}

// DeleteMission removes a pending mission from its day. Missing dates,
// missing ids, and already-resolved missions are all silent no-ops: resolved
// missions are immutable history and duplicate UI events must not corrupt it.
func DeleteMission(s *State, date Date, missionID string) *State {
	rec, ok := s.Days[date]
	if !ok {
		return s
	}
	mission := rec.Mission(missionID)
	if mission == nil || mission.Status != StatusPending {
		return s
	}

	next := s.Clone()
	nrec := next.Days[date]
	missions := nrec.Missions[:0]
	for _, m := range nrec.Missions {
		if m.ID != missionID {
			missions = append(missions, m)
		}
	}
	nrec.Missions = missions
	return next
}

// Resolution reports what a ResolveMission call did.
type Resolution struct {
	Applied        bool    // false when the call was a no-op
	Mission        Mission // the mission after resolution
	XPDelta        int     // XP granted, after any penalty scaling
	PenaltyApplied bool    // true when the failure-streak penalty scaled the delta
	Streak         int     // consecutive failures after the resolution
	DaysBlocked    int     // days newly covered by the blocking cascade
}

// ResolveMission marks a pending mission completed or failed and applies the
// XP, streak, penalty, and blocking consequences. Resolving a missing or
// already-resolved mission is a no-op, so replayed or double-clicked UI
// events are harmless. The clock is used only to find the year boundary of
// the blocking cascade.
func ResolveMission(s *State, date Date, missionID string, outcome Status, now time.Time) (*State, Resolution) {
	if outcome != StatusCompleted && outcome != StatusFailed {
		return s, Resolution{}
	}
	rec, ok := s.Days[date]
	if !ok {
		return s, Resolution{}
	}
	mission := rec.Mission(missionID)
	if mission == nil || mission.Status != StatusPending {
		return s, Resolution{}
	}

	next := s.Clone()
	nrec := next.Days[date]
	nmission := nrec.Mission(missionID)
	nmission.Status = outcome

	// The streak the penalty reads: a failure counts itself, a completion is
	// judged against the streak it is breaking (before the reset). A
	// completion made while a 4+ streak is active still pays the penalty.
	rawDelta := 0
	penaltyStreak := s.ConsecutiveFailures
	if outcome == StatusCompleted {
		rawDelta = nmission.Tier.BaseXP()
		next.ConsecutiveFailures = 0
	} else {
		next.ConsecutiveFailures++
		penaltyStreak = next.ConsecutiveFailures
	}

	res := Resolution{
		Applied: true,
		XPDelta: rawDelta,
		Streak:  next.ConsecutiveFailures,
	}

	if penaltyStreak >= FailureStreakThreshold && next.Severity != SeverityTolerant {
		res.XPDelta = int(math.Round(float64(rawDelta) * next.Severity.PenaltyMultiplier()))
		res.PenaltyApplied = true

		// Only a failure extends the streak upward, so only a failure locks
		// the calendar. A penalized completion ends the streak instead.
		if outcome == StatusFailed {
			res.DaysBlocked = blockThroughYearEnd(next, date, now)
		}
	}

	nrec.XPEarned += res.XPDelta
	next.TotalXP += res.XPDelta

	res.Mission = *nmission
	return next, res
}

// blockThroughYearEnd marks every day after from, up to the end of the
// wall-clock current year, as blocked. It returns the number of days newly
// blocked. The boundary year is taken from now rather than from the mission's
// own date; near a year boundary a backdated resolution can therefore block
// nothing, or block days in a different year than the mission. That matches
// the journal's historical behavior and a reset is the only way out.
func blockThroughYearEnd(s *State, from Date, now time.Time) int {
	blocked := 0
	for day := from.Next(); day.Year() == now.Year(); day = day.Next() {
		rec := s.ensureDay(day)
		if !rec.Blocked {
			rec.Blocked = true
			blocked++
		}
	}
	return blocked
}

// SetSeverity switches the penalty policy. It applies to future resolutions
// only; XP already granted is never rescaled.
func SetSeverity(s *State, mode Severity) *State {
	if !mode.Valid() || mode == s.Severity {
		return s
	}
	next := s.Clone()
	next.Severity = mode
	return next
}

// SetDefaultView records the preferred landing screen.
func SetDefaultView(s *State, v View) *State {
	if !v.Valid() || v == s.DefaultView {
		return s
	}
	next := s.Clone()
	next.DefaultView = v
	return next
}

// ResetYear wipes all progression: XP, day records, and the failure streak.
// Severity and default view are user preferences, not progression, and
// survive the reset.
func ResetYear(s *State) *State {
	return &State{
		Days:        make(map[Date]*DayRecord),
		Severity:    s.Severity,
		DefaultView: s.DefaultView,
	}
}
