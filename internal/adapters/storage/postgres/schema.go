package postgres

import (
	"context"
	"database/sql"
)

// schema es idempotente: se puede correr en cada arranque.
const schema = `
CREATE TABLE IF NOT EXISTS people (
	id         UUID PRIMARY KEY,
	position   BIGSERIAL NOT NULL,
	first_name TEXT NOT NULL,
	last_name  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS pets (
	id        UUID PRIMARY KEY,
	person_id UUID NOT NULL REFERENCES people(id) ON DELETE CASCADE,
	position  BIGSERIAL NOT NULL,
	name      TEXT NOT NULL,
	type      TEXT NOT NULL CHECK (type IN ('cat','dog','hamster','turtle','bird','snake')),
	age       INTEGER NOT NULL CHECK (age >= 0),
	UNIQUE (person_id, name)
);

CREATE INDEX IF NOT EXISTS pets_person_id_idx ON pets (person_id);
`

func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}
