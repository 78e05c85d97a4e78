// Package journal ties the progression engine to its collaborators: the id
// generator, the clock, and the store. Every mutating call runs one engine
// command, swaps in the returned state, and writes through to the store.
package journal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abelldev/huntlog/internal/engine"
	"github.com/abelldev/huntlog/internal/store"
)

// snapshotKeep bounds how many historical snapshots survive pruning.
const snapshotKeep = 20

// Options configures a Journal. Snapshots is required; the rest default.
type Options struct {
	Snapshots store.SnapshotRepo
	Events    store.EventRepo

	// NewID generates mission ids. Defaults to uuid.NewString.
	NewID func() string

	// Now supplies wall-clock time for the blocking cascade. Defaults to time.Now.
	Now func() time.Time
}

// Journal is the single writer over the progression state.
type Journal struct {
	state     *engine.State
	snapshots store.SnapshotRepo
	events    store.EventRepo
	newID     func() string
	now       func() time.Time
}

// Open restores the journal from the latest snapshot, or starts fresh when
// the store is empty.
func Open(ctx context.Context, opts Options) (*Journal, error) {
	j := &Journal{
		state:     engine.NewState(),
		snapshots: opts.Snapshots,
		events:    opts.Events,
		newID:     opts.NewID,
		now:       opts.Now,
	}
	if j.newID == nil {
		j.newID = uuid.NewString
	}
	if j.now == nil {
		j.now = time.Now
	}

	if j.snapshots != nil {
		snap, err := j.snapshots.Latest(ctx)
		if err != nil {
			return nil, fmt.Errorf("restore snapshot: %w", err)
		}
		if snap != nil {
			j.state = snap.State
		}
	}
	return j, nil
}

// State returns the current progression state. Callers must treat it as
// read-only; all mutation goes through journal commands.
func (j *Journal) State() *engine.State {
	return j.state
}

// Day returns the record for a date, or the empty default.
func (j *Journal) Day(date engine.Date) *engine.DayRecord {
	return j.state.Day(date)
}

// Today returns the current calendar day.
func (j *Journal) Today() engine.Date {
	return engine.DateOf(j.now())
}

// AddMission creates a pending mission and persists the new state.
func (j *Journal) AddMission(ctx context.Context, in engine.AddMissionInput) (*engine.Mission, error) {
	next, mission, err := engine.AddMission(j.state, j.newID(), in)
	if err != nil {
		return nil, err
	}
	j.state = next

	j.logEvent(ctx, store.MissionEvent{
		Date:      mission.Date,
		MissionID: mission.ID,
		Tier:      mission.Tier,
		Action:    store.ActionAdded,
	})
	return mission, j.persist(ctx)
}

// DeleteMission removes a pending mission. A no-op delete persists nothing.
func (j *Journal) DeleteMission(ctx context.Context, date engine.Date, missionID string) error {
	next := engine.DeleteMission(j.state, date, missionID)
	if next == j.state {
		return nil
	}
	mission := j.state.Day(date).Mission(missionID)
	j.state = next

	j.logEvent(ctx, store.MissionEvent{
		Date:      date,
		MissionID: missionID,
		Tier:      mission.Tier,
		Action:    store.ActionDeleted,
	})
	return j.persist(ctx)
}

// ResolveMission marks a mission completed or failed and persists the
// consequences. A no-op resolution persists nothing.
func (j *Journal) ResolveMission(ctx context.Context, date engine.Date, missionID string, outcome engine.Status) (engine.Resolution, error) {
	next, res := engine.ResolveMission(j.state, date, missionID, outcome, j.now())
	if !res.Applied {
		return res, nil
	}
	j.state = next

	action := store.ActionCompleted
	if outcome == engine.StatusFailed {
		action = store.ActionFailed
	}
	j.logEvent(ctx, store.MissionEvent{
		Date:      date,
		MissionID: missionID,
		Tier:      res.Mission.Tier,
		Action:    action,
		XPDelta:   res.XPDelta,
		Streak:    res.Streak,
	})
	return res, j.persist(ctx)
}

// SetSeverity switches the penalty policy for future resolutions.
func (j *Journal) SetSeverity(ctx context.Context, mode engine.Severity) error {
	next := engine.SetSeverity(j.state, mode)
	if next == j.state {
		return nil
	}
	j.state = next
	return j.persist(ctx)
}

// SetDefaultView records the preferred landing screen.
func (j *Journal) SetDefaultView(ctx context.Context, v engine.View) error {
	next := engine.SetDefaultView(j.state, v)
	if next == j.state {
		return nil
	}
	j.state = next
	return j.persist(ctx)
}

// ResetYear wipes all progression and the mission history, keeping the
// user's severity and view preferences.
func (j *Journal) ResetYear(ctx context.Context) error {
	j.state = engine.ResetYear(j.state)
	if j.events != nil {
		if err := j.events.Clear(ctx); err != nil {
			return fmt.Errorf("clear history: %w", err)
		}
	}
	return j.persist(ctx)
}

// ReplaceState swaps in an externally loaded state (import) and persists it.
func (j *Journal) ReplaceState(ctx context.Context, state *engine.State) error {
	if state == nil {
		return fmt.Errorf("replace state: nil state")
	}
	j.state = state.Clone()
	return j.persist(ctx)
}

// History returns recent mission events, newest first.
func (j *Journal) History(ctx context.Context, limit int) ([]store.MissionEvent, error) {
	if j.events == nil {
		return nil, nil
	}
	return j.events.Query(ctx, store.QueryOpts{Limit: limit})
}

func (j *Journal) persist(ctx context.Context) error {
	if j.snapshots == nil {
		return nil
	}
	if err := j.snapshots.Save(ctx, j.state); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	if err := j.snapshots.Prune(ctx, snapshotKeep); err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

func (j *Journal) logEvent(ctx context.Context, ev store.MissionEvent) {
	if j.events == nil {
		return
	}
	ev.Timestamp = j.now()
	_ = j.events.Append(ctx, ev)
}
