package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

const transitionsTable = "transitions"

// TransitionKind names the user action that produced a transition.
type TransitionKind string

const (
	KindSelect TransitionKind = "select"
	KindRest   TransitionKind = "rest"
	KindFocus  TransitionKind = "focus" // leaving rest via toggle
	KindStop   TransitionKind = "stop"
	KindResume TransitionKind = "resume"
)

// Transition is one journaled state change, captured after it was applied.
type Transition struct {
	// Sequence is assigned on append; ignored when writing.
	Sequence int64

	RunID     string
	Kind      TransitionKind
	Selection string
	Running   bool

	// Session is the session clock right after the transition.
	Session time.Duration

	// Total is the accrued total of the selected subject (zero when resting).
	Total time.Duration

	At time.Time
}

// QueryOpts filters journal reads.
type QueryOpts struct {
	RunID string // only this run ("" = all)
	After int64  // sequence > After
	Limit int    // max results (0 = unlimited)
}

// JournalRepo appends and reads transitions.
type JournalRepo interface {
	// Append stores a transition.
	Append(ctx context.Context, t Transition) error

	// Recent returns matching transitions, newest first.
	Recent(ctx context.Context, opts QueryOpts) ([]Transition, error)
}

type journalRepo struct {
	drv *entsql.Driver
}

func (r *journalRepo) Append(ctx context.Context, t Transition) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Insert(transitionsTable).
		Columns("run_id", "kind", "selection", "running", "session_ms", "total_ms", "at_ms").
		Values(t.RunID, string(t.Kind), t.Selection, t.Running,
			t.Session.Milliseconds(), t.Total.Milliseconds(), t.At.UnixMilli()).
		Query()

	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("append transition: %w", err)
	}
	return nil
}

func (r *journalRepo) Recent(ctx context.Context, opts QueryOpts) ([]Transition, error) {
	sel := entsql.Dialect(dialect.SQLite).
		Select("id", "run_id", "kind", "selection", "running", "session_ms", "total_ms", "at_ms").
		From(entsql.Table(transitionsTable))

	var preds []*entsql.Predicate
	if opts.RunID != "" {
		preds = append(preds, entsql.EQ("run_id", opts.RunID))
	}
	if opts.After > 0 {
		preds = append(preds, entsql.GT("id", opts.After))
	}
	if len(preds) > 0 {
		sel.Where(entsql.And(preds...))
	}
	sel.OrderBy(entsql.Desc("id"))
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}

	query, args := sel.Query()
	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query transitions: %w", err)
	}
	defer rows.Close()

	var out []Transition
	for rows.Next() {
		var (
			t                  Transition
			kind               string
			sessionMs, totalMs int64
			atMs               int64
		)
		if err := rows.Scan(&t.Sequence, &t.RunID, &kind, &t.Selection, &t.Running, &sessionMs, &totalMs, &atMs); err != nil {
			return nil, fmt.Errorf("scan transition: %w", err)
		}
		t.Kind = TransitionKind(kind)
		t.Session = time.Duration(sessionMs) * time.Millisecond
		t.Total = time.Duration(totalMs) * time.Millisecond
		t.At = time.UnixMilli(atMs)
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transitions: %w", err)
	}
	return out, nil
}
