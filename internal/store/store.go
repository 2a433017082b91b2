// Package store persists tracked cards and saved mortgage scenarios in a
// local SQLite database.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"fincalc/internal/model"
	"fincalc/internal/mortgage"

	_ "modernc.org/sqlite" // register sqlite driver
)

// ErrNotFound is returned when a named card or scenario does not exist.
var ErrNotFound = errors.New("not found")

// Store wraps the SQLite database.
type Store struct {
	db *sql.DB
}

// DefaultPath returns the XDG-compliant database location.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "fincalc", "fincalc.db")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "fincalc", "fincalc.db")
}

// Open opens or creates the database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveCard inserts a card, or updates it when a card with the same name
// already exists. The stored row's ID is written back to the card.
func (s *Store) SaveCard(c *model.Card) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(`INSERT INTO cards
		(name, balance, interest_rate, minimum_payment, credit_limit, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			balance = excluded.balance,
			interest_rate = excluded.interest_rate,
			minimum_payment = excluded.minimum_payment,
			credit_limit = excluded.credit_limit,
			updated_at = excluded.updated_at`,
		c.Name, c.Balance, c.InterestRate, c.MinimumPayment, c.CreditLimit, now,
	)
	if err != nil {
		return fmt.Errorf("saving card %q: %w", c.Name, err)
	}

	// LastInsertId is unreliable on the upsert-update path, so resolve the
	// row id by name either way.
	row := s.db.QueryRow("SELECT id FROM cards WHERE name = ?", c.Name)
	return row.Scan(&c.ID)
}

// GetCard fetches one card by name.
func (s *Store) GetCard(name string) (model.Card, error) {
	row := s.db.QueryRow(`SELECT id, name, balance, interest_rate, minimum_payment, credit_limit
		FROM cards WHERE name = ?`, name)

	var c model.Card
	err := row.Scan(&c.ID, &c.Name, &c.Balance, &c.InterestRate, &c.MinimumPayment, &c.CreditLimit)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Card{}, fmt.Errorf("card %q: %w", name, ErrNotFound)
	}
	return c, err
}

// ListCards returns all cards ordered by name.
func (s *Store) ListCards() ([]model.Card, error) {
	rows, err := s.db.Query(`SELECT id, name, balance, interest_rate, minimum_payment, credit_limit
		FROM cards ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var cards []model.Card
	for rows.Next() {
		var c model.Card
		if err := rows.Scan(&c.ID, &c.Name, &c.Balance, &c.InterestRate, &c.MinimumPayment, &c.CreditLimit); err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, rows.Err()
}

// DeleteCard removes a card by name.
func (s *Store) DeleteCard(name string) error {
	res, err := s.db.Exec("DELETE FROM cards WHERE name = ?", name)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("card %q: %w", name, ErrNotFound)
	}
	return nil
}

// SaveScenario stores a named set of mortgage inputs, replacing any
// existing scenario with the same name.
func (s *Store) SaveScenario(name string, in mortgage.Inputs) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(`INSERT OR REPLACE INTO scenarios
		(name, loan_amount, down_payment, interest_rate, term_years,
		 property_tax, home_insurance, pmi_rate, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		name, in.LoanAmount, in.DownPayment, in.InterestRate, in.TermYears,
		in.PropertyTax, in.HomeInsurance, in.PMIRate, now,
	)
	if err != nil {
		return fmt.Errorf("saving scenario %q: %w", name, err)
	}
	return nil
}

// GetScenario fetches one saved mortgage scenario by name.
func (s *Store) GetScenario(name string) (mortgage.Inputs, error) {
	row := s.db.QueryRow(`SELECT loan_amount, down_payment, interest_rate, term_years,
		property_tax, home_insurance, pmi_rate
		FROM scenarios WHERE name = ?`, name)

	var in mortgage.Inputs
	err := row.Scan(&in.LoanAmount, &in.DownPayment, &in.InterestRate, &in.TermYears,
		&in.PropertyTax, &in.HomeInsurance, &in.PMIRate)
	if errors.Is(err, sql.ErrNoRows) {
		return mortgage.Inputs{}, fmt.Errorf("scenario %q: %w", name, ErrNotFound)
	}
	return in, err
}

// ListScenarios returns the names of all saved scenarios.
func (s *Store) ListScenarios() ([]string, error) {
	rows, err := s.db.Query("SELECT name FROM scenarios ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// DeleteScenario removes a saved scenario by name.
func (s *Store) DeleteScenario(name string) error {
	res, err := s.db.Exec("DELETE FROM scenarios WHERE name = ?", name)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("scenario %q: %w", name, ErrNotFound)
	}
	return nil
}
