package journal

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/abelldev/huntlog/internal/engine"
	"github.com/abelldev/huntlog/internal/store"
)

var testNow = time.Date(2025, time.June, 15, 9, 30, 0, 0, time.UTC)

// openTestJournal builds a journal over an in-memory store with a fixed
// clock and deterministic mission ids.
func openTestJournal(t *testing.T) (*Journal, *store.Store) {
	t.Helper()
	st, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	n := 0
	j, err := Open(context.Background(), Options{
		Snapshots: st.Snapshots(),
		Events:    st.Events(),
		NewID: func() string {
			n++
			return fmt.Sprintf("mission-%d", n)
		},
		Now: func() time.Time { return testNow },
	})
	if err != nil {
		t.Fatalf("open journal: %v", err)
	}
	return j, st
}

func TestAddMissionWritesThrough(t *testing.T) {
	j, st := openTestJournal(t)
	ctx := context.Background()

	m, err := j.AddMission(ctx, engine.AddMissionInput{
		Date:  "2025-06-15",
		Title: "morning run",
		Tier:  engine.TierSuits,
	})
	if err != nil {
		t.Fatalf("add mission: %v", err)
	}
	if m.ID != "mission-1" {
		t.Errorf("mission id = %q, want mission-1", m.ID)
	}

	snap, err := st.Snapshots().Latest(ctx)
	if err != nil {
		t.Fatalf("latest snapshot: %v", err)
	}
	if snap == nil {
		t.Fatal("no snapshot after add")
	}
	if got := snap.State.Day("2025-06-15").Mission("mission-1"); got == nil {
		t.Error("snapshot missing the new mission")
	}

	events, err := st.Events().Query(ctx, store.QueryOpts{})
	if err != nil {
		t.Fatalf("query events: %v", err)
	}
	if len(events) != 1 || events[0].Action != store.ActionAdded {
		t.Errorf("events = %+v, want one added event", events)
	}
}

func TestAddMissionValidationDoesNotPersist(t *testing.T) {
	j, st := openTestJournal(t)
	ctx := context.Background()

	_, err := j.AddMission(ctx, engine.AddMissionInput{Date: "2025-06-15", Title: "  ", Tier: engine.TierSuits})
	if !engine.IsValidation(err) {
		t.Fatalf("err = %v, want ValidationError", err)
	}

	snap, err := st.Snapshots().Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap != nil {
		t.Error("rejected add still saved a snapshot")
	}
}

func TestResolveMissionPersistsConsequences(t *testing.T) {
	j, st := openTestJournal(t)
	ctx := context.Background()

	m, err := j.AddMission(ctx, engine.AddMissionInput{Date: "2025-06-15", Title: "boss fight", Tier: engine.TierWinchester})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	res, err := j.ResolveMission(ctx, m.Date, m.ID, engine.StatusCompleted)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !res.Applied || res.XPDelta != 300 {
		t.Fatalf("resolution = %+v", res)
	}

	snap, err := st.Snapshots().Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.State.TotalXP != 300 {
		t.Errorf("snapshot TotalXP = %d, want 300", snap.State.TotalXP)
	}

	// A repeated resolve is a no-op and writes nothing new.
	before, err := st.Events().Query(ctx, store.QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	res, err = j.ResolveMission(ctx, m.Date, m.ID, engine.StatusFailed)
	if err != nil {
		t.Fatalf("repeat resolve: %v", err)
	}
	if res.Applied {
		t.Error("repeat resolution applied")
	}
	after, err := st.Events().Query(ctx, store.QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(after) != len(before) {
		t.Errorf("repeat resolution appended events: %d -> %d", len(before), len(after))
	}
}

func TestJournalRestoresFromSnapshot(t *testing.T) {
	j, st := openTestJournal(t)
	ctx := context.Background()

	m, err := j.AddMission(ctx, engine.AddMissionInput{Date: "2025-06-15", Title: "grind", Tier: engine.TierWaynes})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := j.ResolveMission(ctx, m.Date, m.ID, engine.StatusCompleted); err != nil {
		t.Fatalf("resolve: %v", err)
	}

	reopened, err := Open(ctx, Options{Snapshots: st.Snapshots(), Events: st.Events()})
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if reopened.State().TotalXP != 150 {
		t.Errorf("restored TotalXP = %d, want 150", reopened.State().TotalXP)
	}
	if got := reopened.Day("2025-06-15").Mission(m.ID); got == nil || got.Status != engine.StatusCompleted {
		t.Errorf("restored mission = %+v", got)
	}
}

func TestResetYearClearsHistory(t *testing.T) {
	j, st := openTestJournal(t)
	ctx := context.Background()

	m, err := j.AddMission(ctx, engine.AddMissionInput{Date: "2025-06-15", Title: "x", Tier: engine.TierSuits})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := j.ResolveMission(ctx, m.Date, m.ID, engine.StatusCompleted); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if err := j.SetSeverity(ctx, engine.SeverityPunitive); err != nil {
		t.Fatalf("set severity: %v", err)
	}

	if err := j.ResetYear(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	if j.State().TotalXP != 0 || len(j.State().Days) != 0 {
		t.Errorf("state after reset: xp=%d days=%d", j.State().TotalXP, len(j.State().Days))
	}
	if j.State().Severity != engine.SeverityPunitive {
		t.Errorf("severity after reset = %q, want punitive preserved", j.State().Severity)
	}

	events, err := st.Events().Query(ctx, store.QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("history after reset has %d events, want 0", len(events))
	}

	// The reset survives a reopen.
	reopened, err := Open(ctx, Options{Snapshots: st.Snapshots()})
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if reopened.State().TotalXP != 0 || reopened.State().Severity != engine.SeverityPunitive {
		t.Errorf("reopened state: xp=%d severity=%q", reopened.State().TotalXP, reopened.State().Severity)
	}
}

func TestJournalWithoutStore(t *testing.T) {
	j, err := Open(context.Background(), Options{
		Now: func() time.Time { return testNow },
	})
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	m, err := j.AddMission(context.Background(), engine.AddMissionInput{Date: "2025-06-15", Title: "x", Tier: engine.TierSuits})
	if err != nil {
		t.Fatalf("add without store: %v", err)
	}
	if m.ID == "" {
		t.Error("default id generator produced empty id")
	}
	if j.Today() != "2025-06-15" {
		t.Errorf("Today() = %s", j.Today())
	}
}

func TestDeleteMissionNoOpPersistsNothing(t *testing.T) {
	j, st := openTestJournal(t)
	ctx := context.Background()

	if err := j.DeleteMission(ctx, "2025-06-15", "ghost"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	snap, err := st.Snapshots().Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap != nil {
		t.Error("no-op delete saved a snapshot")
	}
}
