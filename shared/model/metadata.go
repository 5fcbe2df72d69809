package model

import "time"

// Metadata carries the storage-generated identity of a row. Both columns
// are produced by the database, so they are excluded from INSERT column
// lists via the gen tag.
type Metadata struct {
	ID        int64     `db:"id"         gen:"db"`
	CreatedAt time.Time `db:"created_at" gen:"db"`
}
