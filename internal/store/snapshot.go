package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/abelldev/huntlog/internal/engine"
)

// Snapshot is a point-in-time capture of the full progression state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	State     *engine.State
}

// SnapshotRepo manages progression state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot, assigning its sequence number.
	Save(ctx context.Context, state *engine.State) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the keep most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// snapshotRepo implements SnapshotRepo with raw SQL.
type snapshotRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *snapshotRepo) Save(ctx context.Context, state *engine.State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO snapshots (sequence, timestamp, data) VALUES (?, ?, ?)`,
		seqNum, time.Now().UTC().UnixMilli(), string(data),
	)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Latest(ctx context.Context) (*Snapshot, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, sequence, timestamp, data FROM snapshots ORDER BY sequence DESC LIMIT 1`,
	)

	var (
		snap   Snapshot
		millis int64
		data   string
	)
	err := row.Scan(&snap.ID, &snap.Sequence, &millis, &data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}

	state := engine.NewState()
	if err := json.Unmarshal([]byte(data), state); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot data: %w", err)
	}
	if state.Days == nil {
		state.Days = make(map[engine.Date]*engine.DayRecord)
	}

	snap.Timestamp = time.UnixMilli(millis).UTC()
	snap.State = state
	return &snap, nil
}

func (r *snapshotRepo) Prune(ctx context.Context, keep int) error {
	// Find the sequence threshold: the Nth most recent snapshot.
	row := r.db.QueryRowContext(ctx,
		`SELECT sequence FROM snapshots ORDER BY sequence DESC LIMIT 1 OFFSET ?`, keep,
	)

	var threshold int64
	err := row.Scan(&threshold)
	if errors.Is(err, sql.ErrNoRows) {
		return nil // fewer than keep snapshots exist
	}
	if err != nil {
		return fmt.Errorf("query prune threshold: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `DELETE FROM snapshots WHERE sequence <= ?`, threshold)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}
