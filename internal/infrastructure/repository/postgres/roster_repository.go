package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/roster-manager/internal/domain/roster"
	qb "github.com/riskibarqy/roster-manager/internal/platform/querybuilder"
)

// RosterRepository stores roster snapshots as ordered rows keyed by snapshot name.
// Load reads the input snapshot; Save replaces the output snapshot.
type RosterRepository struct {
	db     *sqlx.DB
	input  string
	output string
}

func NewRosterRepository(db *sqlx.DB, input, output string) *RosterRepository {
	return &RosterRepository{
		db:     db,
		input:  input,
		output: output,
	}
}

func (r *RosterRepository) Source() string {
	return "Snapshot " + r.input
}

func (r *RosterRepository) Load(ctx context.Context) (*roster.Roster, error) {
	query, args, err := buildLoadQuery(r.input)
	if err != nil {
		return nil, fmt.Errorf("build select roster snapshot query: %w", err)
	}

	var rows []rosterEntryTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select roster snapshot %s: %w", r.input, err)
	}
	if len(rows) == 0 {
		return nil, roster.ErrSourceNotFound
	}

	return roster.FromEntries(rowsToEntries(rows)), nil
}

func (r *RosterRepository) Save(ctx context.Context, rs *roster.Roster) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx save roster snapshot: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	clearQuery, clearArgs, err := buildClearQuery(r.output)
	if err != nil {
		return fmt.Errorf("build clear roster snapshot query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
		return fmt.Errorf("clear roster snapshot %s: %w", r.output, err)
	}

	entries := rs.Entries()
	if len(entries) > 0 {
		insertQuery, insertArgs, err := buildInsertQuery(r.output, entries)
		if err != nil {
			return fmt.Errorf("build insert roster snapshot query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			return fmt.Errorf("insert roster snapshot %s: %w", r.output, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save roster snapshot tx: %w", err)
	}
	return nil
}

func buildLoadQuery(snapshot string) (string, []any, error) {
	return qb.Select(rosterEntrySelectColumns...).From(rosterEntriesTable).
		Where(
			qb.Eq("snapshot", snapshot),
			qb.IsNull("deleted_at"),
		).
		OrderBy("position").
		ToSQL()
}

func buildClearQuery(snapshot string) (string, []any, error) {
	return qb.Update(rosterEntriesTable).
		SetExpr("deleted_at", "NOW()").
		Where(
			qb.Eq("snapshot", snapshot),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
}

func buildInsertQuery(snapshot string, entries []roster.Entry) (string, []any, error) {
	b := qb.InsertInto(rosterEntriesTable).Columns("snapshot", "position", "jersey_number", "rating")
	for i, e := range entries {
		b.Values(snapshot, i+1, e.JerseyNumber, e.Rating)
	}
	return b.ToSQL()
}

func rowsToEntries(rows []rosterEntryTableModel) []roster.Entry {
	out := make([]roster.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, roster.Entry{
			JerseyNumber: row.JerseyNumber,
			Rating:       row.Rating,
		})
	}
	return out
}
