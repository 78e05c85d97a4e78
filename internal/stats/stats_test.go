package stats

import (
	"testing"
	"time"

	"github.com/abelldev/huntlog/internal/engine"
)

var testNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

// buildState runs a short mission history through the engine.
func buildState(t *testing.T) *engine.State {
	t.Helper()
	s := engine.NewState()

	add := func(date engine.Date, id string, tier engine.Tier) {
		t.Helper()
		var err error
		s, _, err = engine.AddMission(s, id, engine.AddMissionInput{Date: date, Title: "m", Tier: tier})
		if err != nil {
			t.Fatalf("add %s: %v", id, err)
		}
	}
	resolve := func(date engine.Date, id string, outcome engine.Status) {
		t.Helper()
		var res engine.Resolution
		s, res = engine.ResolveMission(s, date, id, outcome, testNow)
		if !res.Applied {
			t.Fatalf("resolve %s not applied", id)
		}
	}

	add("2025-05-20", "a", engine.TierWinchester)
	resolve("2025-05-20", "a", engine.StatusCompleted) // 300 XP in May

	add("2025-06-10", "b", engine.TierSuits)
	add("2025-06-10", "c", engine.TierSuits)
	resolve("2025-06-10", "b", engine.StatusCompleted) // 100 XP in June
	resolve("2025-06-10", "c", engine.StatusFailed)

	add("2025-06-11", "d", engine.TierWaynes) // stays pending
	return s
}

func TestComputeSummary(t *testing.T) {
	sum := Compute(buildState(t))

	if sum.TotalXP != 400 {
		t.Errorf("TotalXP = %d, want 400", sum.TotalXP)
	}
	if sum.Completed != 2 || sum.Failed != 1 || sum.Pending != 1 {
		t.Errorf("counts = completed:%d failed:%d pending:%d", sum.Completed, sum.Failed, sum.Pending)
	}
	if sum.Total() != 4 {
		t.Errorf("Total() = %d, want 4", sum.Total())
	}
	if got := sum.CompletionRate(); got < 0.66 || got > 0.67 {
		t.Errorf("CompletionRate() = %v, want 2/3", got)
	}
	if sum.ConsecutiveFailures != 1 {
		t.Errorf("ConsecutiveFailures = %d, want 1", sum.ConsecutiveFailures)
	}
	if sum.Rank != engine.RankTitle(sum.Level.Level) {
		t.Errorf("Rank %q disagrees with level %d", sum.Rank, sum.Level.Level)
	}
}

func TestComputeTierBreakdown(t *testing.T) {
	sum := Compute(buildState(t))

	if len(sum.Tiers) != 4 {
		t.Fatalf("got %d tiers, want 4", len(sum.Tiers))
	}
	byTier := make(map[engine.Tier]TierBreakdown)
	for _, b := range sum.Tiers {
		byTier[b.Tier] = b
	}

	if b := byTier[engine.TierWinchester]; b.Completed != 1 || b.Attempted() != 1 {
		t.Errorf("winchester = %+v", b)
	}
	if b := byTier[engine.TierSuits]; b.Completed != 1 || b.Failed != 1 {
		t.Errorf("suits = %+v", b)
	}
	if b := byTier[engine.TierWaynes]; b.Pending != 1 {
		t.Errorf("waynes = %+v", b)
	}
	if b := byTier[engine.TierSalvatores]; b.Attempted() != 0 || b.Pending != 0 {
		t.Errorf("salvatores = %+v", b)
	}
}

func TestComputeXPByMonthAndBestDay(t *testing.T) {
	sum := Compute(buildState(t))

	want := []MonthXP{{Month: "2025-05", XP: 300}, {Month: "2025-06", XP: 100}}
	if len(sum.XPByMonth) != len(want) {
		t.Fatalf("XPByMonth = %+v, want %+v", sum.XPByMonth, want)
	}
	for i, w := range want {
		if sum.XPByMonth[i] != w {
			t.Errorf("XPByMonth[%d] = %+v, want %+v", i, sum.XPByMonth[i], w)
		}
	}

	if sum.BestDay != "2025-05-20" || sum.BestDayXP != 300 {
		t.Errorf("best day = %s (%d XP), want 2025-05-20 (300)", sum.BestDay, sum.BestDayXP)
	}
}

func TestComputeBlockedDays(t *testing.T) {
	s := engine.NewState()
	s.Days["2025-07-01"] = &engine.DayRecord{Date: "2025-07-01", Blocked: true}
	s.Days["2025-07-02"] = &engine.DayRecord{Date: "2025-07-02", Blocked: true}
	s.Days["2025-07-03"] = &engine.DayRecord{Date: "2025-07-03"}

	sum := Compute(s)
	if sum.BlockedDays != 2 {
		t.Errorf("BlockedDays = %d, want 2", sum.BlockedDays)
	}
}

func TestComputeEmptyState(t *testing.T) {
	sum := Compute(engine.NewState())

	if sum.Total() != 0 || sum.CompletionRate() != 0 {
		t.Errorf("empty summary = %+v", sum)
	}
	if sum.Level.Level != 1 || sum.Rank != "Awakened" {
		t.Errorf("empty level = %+v rank %q", sum.Level, sum.Rank)
	}
	if sum.BestDay != "" {
		t.Errorf("BestDay = %q, want empty", sum.BestDay)
	}
}
