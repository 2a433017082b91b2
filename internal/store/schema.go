package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS cards (
    id              INTEGER PRIMARY KEY AUTOINCREMENT,
    name            TEXT NOT NULL UNIQUE,
    balance         REAL NOT NULL DEFAULT 0,
    interest_rate   REAL NOT NULL DEFAULT 0,
    minimum_payment REAL NOT NULL DEFAULT 0,
    credit_limit    REAL NOT NULL DEFAULT 0,
    updated_at      TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS scenarios (
    name            TEXT PRIMARY KEY,
    loan_amount     REAL NOT NULL,
    down_payment    REAL NOT NULL DEFAULT 0,
    interest_rate   REAL NOT NULL DEFAULT 0,
    term_years      INTEGER NOT NULL,
    property_tax    REAL NOT NULL DEFAULT 0,
    home_insurance  REAL NOT NULL DEFAULT 0,
    pmi_rate        REAL NOT NULL DEFAULT 0,
    updated_at      TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_cards_name ON cards(name);
`
