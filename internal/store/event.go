package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/abelldev/huntlog/internal/engine"
)

// Actions recorded in the mission event history.
const (
	ActionAdded     = "added"
	ActionCompleted = "completed"
	ActionFailed    = "failed"
	ActionDeleted   = "deleted"
)

// MissionEvent is one entry in the append-only mission history.
type MissionEvent struct {
	Sequence  int64
	Timestamp time.Time
	Date      engine.Date
	MissionID string
	Tier      engine.Tier
	Action    string
	XPDelta   int
	Streak    int
}

// QueryOpts filters event queries.
type QueryOpts struct {
	Limit int         // max results (0 = unlimited)
	After int64       // sequence > After
	Date  engine.Date // restrict to one calendar day
}

// EventRepo provides append and query access to the mission history.
// Snapshots capture where the hunter is; events capture how they got there.
type EventRepo interface {
	Append(ctx context.Context, ev MissionEvent) error
	Query(ctx context.Context, opts QueryOpts) ([]MissionEvent, error)
	CountByAction(ctx context.Context) (map[string]int, error)

	// Clear wipes the history. Used by the year reset.
	Clear(ctx context.Context) error
}

// sequenceCounter assigns a single increasing sequence shared by snapshots
// and mission events, so the two tables stay mutually ordered. The mutex
// serializes within the process; the RETURNING clause makes the increment
// atomic at the database level.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

// eventRepo implements EventRepo with raw SQL.
type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *eventRepo) Append(ctx context.Context, ev MissionEvent) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	ts := ev.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO mission_events (sequence, timestamp, date, mission_id, tier, action, xp_delta, streak)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		seqNum, ts.UTC().UnixMilli(), string(ev.Date), ev.MissionID, string(ev.Tier), ev.Action, ev.XPDelta, ev.Streak,
	)
	if err != nil {
		return fmt.Errorf("append mission event: %w", err)
	}
	return nil
}

func (r *eventRepo) Query(ctx context.Context, opts QueryOpts) ([]MissionEvent, error) {
	q := `SELECT sequence, timestamp, date, mission_id, tier, action, xp_delta, streak
	      FROM mission_events WHERE 1=1`
	args := []any{}

	if opts.After > 0 {
		q += ` AND sequence > ?`
		args = append(args, opts.After)
	}
	if opts.Date != "" {
		q += ` AND date = ?`
		args = append(args, string(opts.Date))
	}
	q += ` ORDER BY sequence DESC`
	if opts.Limit > 0 {
		q += ` LIMIT ?`
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query mission events: %w", err)
	}
	defer rows.Close()

	var events []MissionEvent
	for rows.Next() {
		var (
			ev     MissionEvent
			millis int64
			date   string
			tier   string
		)
		if err := rows.Scan(&ev.Sequence, &millis, &date, &ev.MissionID, &tier, &ev.Action, &ev.XPDelta, &ev.Streak); err != nil {
			return nil, fmt.Errorf("scan mission event: %w", err)
		}
		ev.Timestamp = time.UnixMilli(millis).UTC()
		ev.Date = engine.Date(date)
		ev.Tier = engine.Tier(tier)
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate mission events: %w", err)
	}
	return events, nil
}

func (r *eventRepo) CountByAction(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT action, COUNT(*) FROM mission_events GROUP BY action`,
	)
	if err != nil {
		return nil, fmt.Errorf("count mission events: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			action string
			n      int
		)
		if err := rows.Scan(&action, &n); err != nil {
			return nil, fmt.Errorf("scan event count: %w", err)
		}
		counts[action] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate event counts: %w", err)
	}
	return counts, nil
}

func (r *eventRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM mission_events`); err != nil {
		return fmt.Errorf("clear mission events: %w", err)
	}
	return nil
}
