package pose

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite" // pure go sqlite driver

	"github.com/Faultbox/marionette/pkg/formats"
)

// ErrNotFound is returned by Load for a pose name the store does not
// contain.
var ErrNotFound = errors.New("pose not found")

// Store persists poses in a single SQLite table as JSON payloads.
type Store struct {
	db *sql.DB
}

// OpenStore opens (creating if needed) a pose store at path.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS poses (
		name TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create poses table: %w", err)
	}
	return &Store{db: db}, nil
}

// Save inserts or replaces a pose under its name.
func (s *Store) Save(p *formats.Pose) error {
	payload, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode pose %q: %w", p.Name, err)
	}
	if _, err := s.db.Exec(
		`INSERT INTO poses (name, payload) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET payload = excluded.payload`,
		p.Name, payload,
	); err != nil {
		return fmt.Errorf("save pose %q: %w", p.Name, err)
	}
	return nil
}

// Load returns the pose stored under name, or ErrNotFound.
func (s *Store) Load(name string) (*formats.Pose, error) {
	var payload []byte
	err := s.db.QueryRow(`SELECT payload FROM poses WHERE name = ?`, name).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("load pose %q: %w", name, err)
	}
	var p formats.Pose
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, fmt.Errorf("decode pose %q: %w", name, err)
	}
	return &p, nil
}

// List returns the stored pose names in lexical order.
func (s *Store) List() ([]string, error) {
	rows, err := s.db.Query(`SELECT name FROM poses ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list poses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan pose name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Delete removes a pose. Deleting a missing pose is not an error.
func (s *Store) Delete(name string) error {
	if _, err := s.db.Exec(`DELETE FROM poses WHERE name = ?`, name); err != nil {
		return fmt.Errorf("delete pose %q: %w", name, err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
