package database

import (
	"context"
	"database/sql"
	"fmt"
)

// Schema defines the dossier database. A dossier is one database; every
// process that opens it shares these tables, so all mutations elsewhere in
// the codebase go through transactions against this schema.
const Schema = `
CREATE TABLE IF NOT EXISTS dossier (
    id             INTEGER PRIMARY KEY,
    label          TEXT NOT NULL,
    currency       TEXT NOT NULL DEFAULT 'EUR',
    exercice_begin DATE NOT NULL,
    exercice_end   DATE NOT NULL,
    updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- One row per identifier kind. get_next is a single atomic upsert so two
-- processes can never be handed the same value.
CREATE TABLE IF NOT EXISTS counters (
    dossier_id INTEGER NOT NULL DEFAULT 1,
    kind       TEXT NOT NULL,
    last_value BIGINT NOT NULL DEFAULT 0,
    PRIMARY KEY (dossier_id, kind)
);

CREATE TABLE IF NOT EXISTS ledgers (
    mnemo      TEXT PRIMARY KEY,
    label      TEXT NOT NULL,
    notes      TEXT NOT NULL DEFAULT '',
    last_close DATE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS accounts (
    number           VARCHAR(64) PRIMARY KEY,
    label            TEXT NOT NULL,
    currency         TEXT NOT NULL,
    notes            TEXT NOT NULL DEFAULT '',
    root             BOOLEAN NOT NULL DEFAULT FALSE,
    settleable       BOOLEAN NOT NULL DEFAULT FALSE,
    reconciliable    BOOLEAN NOT NULL DEFAULT FALSE,
    forwardable      BOOLEAN NOT NULL DEFAULT FALSE,
    closed           BOOLEAN NOT NULL DEFAULT FALSE,
    validated_debit  NUMERIC(20,5) NOT NULL DEFAULT 0,
    validated_credit NUMERIC(20,5) NOT NULL DEFAULT 0,
    rough_debit      NUMERIC(20,5) NOT NULL DEFAULT 0,
    rough_credit     NUMERIC(20,5) NOT NULL DEFAULT 0,
    future_debit     NUMERIC(20,5) NOT NULL DEFAULT 0,
    future_credit    NUMERIC(20,5) NOT NULL DEFAULT 0,
    deffect          DATE,
    created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- Period-end snapshots, append-only except for re-archiving the same date.
CREATE TABLE IF NOT EXISTS account_archives (
    account_number VARCHAR(64) NOT NULL REFERENCES accounts(number),
    archived_on    DATE NOT NULL,
    debit          NUMERIC(20,5) NOT NULL,
    credit         NUMERIC(20,5) NOT NULL,
    PRIMARY KEY (account_number, archived_on)
);

CREATE TABLE IF NOT EXISTS entries (
    number            BIGINT PRIMARY KEY,
    label             TEXT NOT NULL,
    ref               TEXT NOT NULL DEFAULT '',
    deffect           DATE NOT NULL,
    dope              DATE NOT NULL,
    account_number    VARCHAR(64) NOT NULL REFERENCES accounts(number),
    currency          TEXT NOT NULL,
    ledger            TEXT NOT NULL REFERENCES ledgers(mnemo),
    ope_template      TEXT NOT NULL DEFAULT '',
    debit             NUMERIC(20,5) NOT NULL DEFAULT 0,
    credit            NUMERIC(20,5) NOT NULL DEFAULT 0,
    status            TEXT NOT NULL CHECK (status IN ('past','rough','validated','deleted','future')),
    settlement_number BIGINT,
    settlement_stamp  TIMESTAMPTZ,
    created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at        TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    CHECK ((debit = 0) <> (credit = 0))
);

CREATE INDEX IF NOT EXISTS idx_entries_account ON entries(account_number);
CREATE INDEX IF NOT EXISTS idx_entries_ledger ON entries(ledger);
CREATE INDEX IF NOT EXISTS idx_entries_status ON entries(status);
CREATE INDEX IF NOT EXISTS idx_entries_settlement ON entries(settlement_number);

CREATE TABLE IF NOT EXISTS conciliation_groups (
    id         BIGINT PRIMARY KEY,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- A member (entry or bank line) belongs to at most one group; the unique
-- constraint is the backstop behind the check-then-set in the store.
CREATE TABLE IF NOT EXISTS conciliation_members (
    group_id    BIGINT NOT NULL REFERENCES conciliation_groups(id) ON DELETE CASCADE,
    member_kind TEXT NOT NULL CHECK (member_kind IN ('entry','bat_line')),
    member_id   BIGINT NOT NULL,
    PRIMARY KEY (group_id, member_kind, member_id),
    UNIQUE (member_kind, member_id)
);

CREATE TABLE IF NOT EXISTS bat_files (
    id         BIGINT PRIMARY KEY,
    import_id  UUID NOT NULL,
    uri        TEXT NOT NULL,
    format     TEXT NOT NULL,
    currency   TEXT NOT NULL DEFAULT '',
    begin_date DATE,
    end_date   DATE,
    line_count INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS bat_lines (
    id       BIGINT PRIMARY KEY,
    bat_id   BIGINT NOT NULL REFERENCES bat_files(id) ON DELETE CASCADE,
    dope     DATE,
    deffect  DATE NOT NULL,
    ref      TEXT NOT NULL DEFAULT '',
    label    TEXT NOT NULL,
    currency TEXT NOT NULL DEFAULT '',
    amount   NUMERIC(20,5) NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_bat_lines_bat ON bat_lines(bat_id);
`

// Migrate applies the schema and guarantees the singleton dossier row exists.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("applying schema: %w", err)
	}

	query := `
		INSERT INTO dossier (id, label, currency, exercice_begin, exercice_end)
		VALUES (1, 'default', 'EUR', DATE_TRUNC('year', NOW())::date, (DATE_TRUNC('year', NOW()) + INTERVAL '1 year - 1 day')::date)
		ON CONFLICT (id) DO NOTHING
	`
	if _, err := db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("seeding dossier row: %w", err)
	}

	return nil
}
