package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/pflow-xyz/go-synthesis/petri"
)

// SQLiteStore persists the snapshot stack in a SQLite database, so a
// session's history survives process restarts.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the database at path. Use ":memory:"
// for an ephemeral store.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS snapshots (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL,
		created_at DATETIME NOT NULL,
		action TEXT NOT NULL,
		graph TEXT NOT NULL
	);
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Push(ctx context.Context, g *petri.Graph, description string) (Action, error) {
	data, err := json.Marshal(g)
	if err != nil {
		return Action{}, fmt.Errorf("encoding graph: %w", err)
	}
	action := Action{
		ID:          uuid.New(),
		Timestamp:   time.Now().UTC(),
		Description: description,
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO snapshots (id, created_at, action, graph) VALUES (?, ?, ?, ?)`,
		action.ID.String(), action.Timestamp.Format(time.RFC3339Nano), description, string(data))
	if err != nil {
		return Action{}, fmt.Errorf("inserting snapshot: %w", err)
	}
	seq, err := res.LastInsertId()
	if err != nil {
		return Action{}, fmt.Errorf("reading sequence: %w", err)
	}
	action.Seq = int(seq)
	return action, nil
}

func (s *SQLiteStore) Undo(ctx context.Context) (*petri.Graph, error) {
	n, err := s.Len(ctx)
	if err != nil {
		return nil, err
	}
	if n < 2 {
		return nil, ErrEmpty
	}
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM snapshots WHERE seq = (SELECT MAX(seq) FROM snapshots)`); err != nil {
		return nil, fmt.Errorf("deleting snapshot: %w", err)
	}
	return s.Current(ctx)
}

func (s *SQLiteStore) Current(ctx context.Context) (*petri.Graph, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT graph FROM snapshots ORDER BY seq DESC LIMIT 1`).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	g := petri.NewGraph()
	if err := json.Unmarshal([]byte(data), g); err != nil {
		return nil, fmt.Errorf("decoding graph: %w", err)
	}
	return g, nil
}

func (s *SQLiteStore) Len(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM snapshots`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting snapshots: %w", err)
	}
	return n, nil
}

func (s *SQLiteStore) Actions(ctx context.Context) ([]Action, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT seq, id, created_at, action FROM snapshots ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("listing snapshots: %w", err)
	}
	defer rows.Close()

	var actions []Action
	for rows.Next() {
		var (
			a       Action
			id      string
			created string
		)
		if err := rows.Scan(&a.Seq, &id, &created, &a.Description); err != nil {
			return nil, fmt.Errorf("scanning snapshot: %w", err)
		}
		if a.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parsing snapshot id: %w", err)
		}
		if a.Timestamp, err = time.Parse(time.RFC3339Nano, created); err != nil {
			return nil, fmt.Errorf("parsing snapshot timestamp: %w", err)
		}
		actions = append(actions, a)
	}
	return actions, rows.Err()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
