package store

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/geange/fa"
)

//go:embed schema.sql
var schemaSQL string

// LastSession is the entry name used for the most recently edited automaton.
const LastSession = "last"

// ErrNotFound is returned when no automaton is stored under the requested name.
var ErrNotFound = errors.New("automaton not found")

// Store keeps named automata in a SQLite database.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Entry describes a stored automaton.
type Entry struct {
	Name      string    `json:"name" yaml:"name"`
	States    int       `json:"states" yaml:"states"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}

// Open creates or opens the database at path and applies the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite has a single writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to execute schema: %w", err)
	}

	slog.Debug("store opened", "path", path)
	return &Store{db: db, now: time.Now}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}
	return nil
}

// Save stores a under name, replacing any previous entry, together with the last tested input.
func (s *Store) Save(ctx context.Context, name string, a *fa.Automaton, input []string) error {
	if name == "" {
		return errors.New("save: empty name")
	}
	document, err := fa.Encode(a, fa.JSON)
	if err != nil {
		return fmt.Errorf("save %q: %w", name, err)
	}
	if input == nil {
		input = []string{}
	}
	encodedInput, err := json.Marshal(input)
	if err != nil {
		return fmt.Errorf("save %q: encode input: %w", name, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO automata (name, document, input, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			document = excluded.document,
			input = excluded.input,
			updated_at = excluded.updated_at
	`, name, string(document), string(encodedInput), s.now().UnixMilli())
	if err != nil {
		return fmt.Errorf("save %q: %w", name, err)
	}

	slog.Debug("automaton saved", "name", name, "states", a.GetNumStates())
	return nil
}

// Load returns the automaton stored under name and its last tested input.
func (s *Store) Load(ctx context.Context, name string) (*fa.Automaton, []string, error) {
	var document, encodedInput string
	err := s.db.QueryRowContext(ctx,
		`SELECT document, input FROM automata WHERE name = ?`, name,
	).Scan(&document, &encodedInput)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, fmt.Errorf("load %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("load %q: %w", name, err)
	}

	a, err := fa.Decode([]byte(document), fa.JSON)
	if err != nil {
		return nil, nil, fmt.Errorf("load %q: %w", name, err)
	}
	var input []string
	if err := json.Unmarshal([]byte(encodedInput), &input); err != nil {
		return nil, nil, fmt.Errorf("load %q: decode input: %w", name, err)
	}
	return a, input, nil
}

// List returns every stored automaton, most recently updated first.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, document, updated_at FROM automata ORDER BY updated_at DESC, name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var name, document string
		var updatedAt int64
		if err := rows.Scan(&name, &document, &updatedAt); err != nil {
			return nil, fmt.Errorf("list: %w", err)
		}
		entry := Entry{Name: name, UpdatedAt: time.UnixMilli(updatedAt)}
		if a, err := fa.Decode([]byte(document), fa.JSON); err == nil {
			entry.States = a.GetNumStates()
		} else {
			slog.Warn("stored automaton does not decode", "name", name, "error", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	return entries, nil
}

// Delete removes the automaton stored under name.
func (s *Store) Delete(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM automata WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("delete %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete %q: %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("delete %q: %w", name, ErrNotFound)
	}
	return nil
}
