package store

import (
	"context"
	"testing"

	"github.com/abelldev/huntlog/internal/engine"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil db handle")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is not asserted here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.Snapshots()
	ctx := context.Background()

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	state := engine.NewState()
	state.TotalXP = 450
	state.ConsecutiveFailures = 2
	state.Severity = engine.SeverityPunitive
	state.Days["2025-06-10"] = &engine.DayRecord{
		Date:     "2025-06-10",
		XPEarned: 450,
		Missions: []*engine.Mission{{
			ID:     "m-1",
			Title:  "clear the dungeon",
			Tier:   engine.TierWinchester,
			Date:   "2025-06-10",
			Status: engine.StatusCompleted,
		}},
	}

	if err := repo.Save(ctx, state); err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected a snapshot")
	}

	got := snap.State
	if got.TotalXP != 450 || got.ConsecutiveFailures != 2 || got.Severity != engine.SeverityPunitive {
		t.Errorf("restored state = xp=%d failures=%d severity=%q",
			got.TotalXP, got.ConsecutiveFailures, got.Severity)
	}
	rec := got.Day("2025-06-10")
	if len(rec.Missions) != 1 || rec.Missions[0].Title != "clear the dungeon" {
		t.Errorf("restored day record = %+v", rec)
	}
}

func TestSnapshotLatestWins(t *testing.T) {
	s := openTestStore(t)
	repo := s.Snapshots()
	ctx := context.Background()

	for _, xp := range []int{100, 200, 300} {
		state := engine.NewState()
		state.TotalXP = xp
		if err := repo.Save(ctx, state); err != nil {
			t.Fatalf("save xp=%d: %v", xp, err)
		}
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.State.TotalXP != 300 {
		t.Errorf("latest snapshot xp = %d, want 300", snap.State.TotalXP)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.Snapshots()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := repo.Save(ctx, engine.NewState()); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 2); err != nil {
		t.Fatalf("prune: %v", err)
	}

	var n int
	if err := s.DB().QueryRow(`SELECT COUNT(*) FROM snapshots`).Scan(&n); err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Errorf("snapshots after prune = %d, want 2", n)
	}

	// Pruning with fewer rows than keep is a no-op.
	if err := repo.Prune(ctx, 10); err != nil {
		t.Fatalf("prune (under keep): %v", err)
	}
}

func TestEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.Events()
	ctx := context.Background()

	events := []MissionEvent{
		{Date: "2025-06-10", MissionID: "m-1", Tier: engine.TierSuits, Action: ActionAdded},
		{Date: "2025-06-10", MissionID: "m-1", Tier: engine.TierSuits, Action: ActionCompleted, XPDelta: 100},
		{Date: "2025-06-11", MissionID: "m-2", Tier: engine.TierWaynes, Action: ActionFailed, Streak: 1},
	}
	for _, ev := range events {
		if err := repo.Append(ctx, ev); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := repo.Query(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d events, want 3", len(got))
	}
	// Newest first.
	if got[0].Action != ActionFailed || got[2].Action != ActionAdded {
		t.Errorf("events not in reverse sequence order: %v, %v", got[0].Action, got[2].Action)
	}
	if got[0].Sequence <= got[2].Sequence {
		t.Error("sequences not increasing across appends")
	}

	byDate, err := repo.Query(ctx, QueryOpts{Date: "2025-06-10"})
	if err != nil {
		t.Fatalf("query by date: %v", err)
	}
	if len(byDate) != 2 {
		t.Errorf("got %d events for date, want 2", len(byDate))
	}

	limited, err := repo.Query(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query limited: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("got %d events with limit 1", len(limited))
	}
}

func TestEventCountByAction(t *testing.T) {
	s := openTestStore(t)
	repo := s.Events()
	ctx := context.Background()

	for _, action := range []string{ActionAdded, ActionAdded, ActionCompleted, ActionFailed} {
		if err := repo.Append(ctx, MissionEvent{Date: "2025-06-10", MissionID: "m", Tier: engine.TierSuits, Action: action}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	counts, err := repo.CountByAction(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if counts[ActionAdded] != 2 || counts[ActionCompleted] != 1 || counts[ActionFailed] != 1 {
		t.Errorf("counts = %v", counts)
	}
}

func TestEventClear(t *testing.T) {
	s := openTestStore(t)
	repo := s.Events()
	ctx := context.Background()

	if err := repo.Append(ctx, MissionEvent{Date: "2025-06-10", MissionID: "m", Tier: engine.TierSuits, Action: ActionAdded}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}

	got, err := repo.Query(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d events after clear, want 0", len(got))
	}
}

func TestSequenceSharedAcrossRepos(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Events().Append(ctx, MissionEvent{Date: "2025-06-10", MissionID: "m", Tier: engine.TierSuits, Action: ActionAdded}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := s.Snapshots().Save(ctx, engine.NewState()); err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err := s.Snapshots().Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	events, err := s.Events().Query(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if snap.Sequence <= events[0].Sequence {
		t.Errorf("snapshot sequence %d not after event sequence %d", snap.Sequence, events[0].Sequence)
	}
}
