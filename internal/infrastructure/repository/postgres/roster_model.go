package postgres

import "time"

const rosterEntriesTable = "roster_snapshot_entries"

type rosterEntryTableModel struct {
	ID           int64      `db:"id"`
	Snapshot     string     `db:"snapshot"`
	Position     int        `db:"position"`
	JerseyNumber int        `db:"jersey_number"`
	Rating       int        `db:"rating"`
	CreatedAt    time.Time  `db:"created_at"`
	DeletedAt    *time.Time `db:"deleted_at"`
}

var rosterEntrySelectColumns = []string{
	"id",
	"snapshot",
	"position",
	"jersey_number",
	"rating",
	"created_at",
	"deleted_at",
}
