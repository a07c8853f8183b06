package scenario

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/katalvlaran/gridtour/gridgraph"

	_ "modernc.org/sqlite"
)

const schemaVersion = 1

// MemoryDB is the path of a private in-memory database.
const MemoryDB = ":memory:"

// Store keeps named scenarios in a SQLite database.
type Store struct {
	db     *sql.DB
	dbPath string
}

// Summary describes a stored scenario without loading it.
type Summary struct {
	Name       string
	Width      int
	Height     int
	Costs      int
	Objectives int
	CreatedAt  time.Time
}

// OpenStore opens or creates the database at path and makes sure the schema
// exists.
func OpenStore(ctx context.Context, path string) (*Store, error) {
	if path != MemoryDB {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, fmt.Errorf("scenario: create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("scenario: open database: %w", err)
	}
	// One connection: an in-memory database is private to its connection and
	// SQLite allows a single writer anyway.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("scenario: set pragma %s: %w", pragma, err)
		}
	}

	s := &Store{db: db, dbPath: path}
	if err := s.initSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("scenario: initialize schema: %w", err)
	}

	return s, nil
}

// Path returns the database file path.
func (s *Store) Path() string { return s.dbPath }

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) initSchema(ctx context.Context) error {
	var tables int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'schema_version'",
	).Scan(&tables)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if tables > 0 {
		var version int
		err := s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version)
		switch {
		case err == nil:
			if version > schemaVersion {
				return fmt.Errorf("database schema version %d is newer than supported %d", version, schemaVersion)
			}
			return nil
		case !errors.Is(err, sql.ErrNoRows):
			return fmt.Errorf("read schema version: %w", err)
		}
	}

	schema := `
	CREATE TABLE IF NOT EXISTS schema_version (
		version INTEGER PRIMARY KEY
	);
	INSERT OR IGNORE INTO schema_version (version) VALUES (1);

	CREATE TABLE IF NOT EXISTS scenarios (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		width INTEGER NOT NULL,
		height INTEGER NOT NULL,
		origin_x INTEGER NOT NULL,
		origin_y INTEGER NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS cells (
		scenario_id INTEGER NOT NULL REFERENCES scenarios(id) ON DELETE CASCADE,
		x INTEGER NOT NULL,
		y INTEGER NOT NULL,
		terrain INTEGER NOT NULL,
		PRIMARY KEY (scenario_id, x, y)
	);

	CREATE TABLE IF NOT EXISTS travel_costs (
		scenario_id INTEGER NOT NULL REFERENCES scenarios(id) ON DELETE CASCADE,
		from_x INTEGER NOT NULL,
		from_y INTEGER NOT NULL,
		to_x INTEGER NOT NULL,
		to_y INTEGER NOT NULL,
		cost REAL NOT NULL,
		PRIMARY KEY (scenario_id, from_x, from_y, to_x, to_y)
	);

	CREATE TABLE IF NOT EXISTS objectives (
		scenario_id INTEGER NOT NULL REFERENCES scenarios(id) ON DELETE CASCADE,
		ordinal INTEGER NOT NULL,
		x INTEGER NOT NULL,
		y INTEGER NOT NULL,
		PRIMARY KEY (scenario_id, ordinal)
	);
	`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Save writes sc under name in one transaction, replacing any scenario
// already stored with that name.
func (s *Store) Save(ctx context.Context, name string, sc Scenario) (err error) {
	if name == "" {
		return ErrInvalidName
	}
	if err := sc.Validate(); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("scenario: begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, "DELETE FROM scenarios WHERE name = ?", name); err != nil {
		return fmt.Errorf("scenario: replace %q: %w", name, err)
	}
	res, err := tx.ExecContext(ctx,
		`INSERT INTO scenarios (name, width, height, origin_x, origin_y, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		name, sc.Grid.Width, sc.Grid.Height, sc.Origin.X, sc.Origin.Y, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("scenario: insert %q: %w", name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("scenario: insert %q: %w", name, err)
	}

	cells := sc.Grid.Cells()
	if err = insertAll(ctx, tx, "INSERT INTO cells (scenario_id, x, y, terrain) VALUES (?, ?, ?, ?)",
		len(cells), func(i int) []any {
			c := cells[i]
			return []any{id, c.X, c.Y, int(c.Terrain)}
		}); err != nil {
		return fmt.Errorf("scenario: insert cells: %w", err)
	}

	recs := sc.Costs.Records()
	if err = insertAll(ctx, tx, "INSERT INTO travel_costs (scenario_id, from_x, from_y, to_x, to_y, cost) VALUES (?, ?, ?, ?, ?, ?)",
		len(recs), func(i int) []any {
			r := recs[i]
			return []any{id, r.From.X, r.From.Y, r.To.X, r.To.Y, r.Cost}
		}); err != nil {
		return fmt.Errorf("scenario: insert costs: %w", err)
	}

	if err = insertAll(ctx, tx, "INSERT INTO objectives (scenario_id, ordinal, x, y) VALUES (?, ?, ?, ?)",
		len(sc.Objectives), func(i int) []any {
			o := sc.Objectives[i]
			return []any{id, i, o.X, o.Y}
		}); err != nil {
		return fmt.Errorf("scenario: insert objectives: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("scenario: commit: %w", err)
	}

	return nil
}

// insertAll runs one prepared statement n times with the arguments of row(i).
func insertAll(ctx context.Context, tx *sql.Tx, query string, n int, row func(i int) []any) error {
	if n == 0 {
		return nil
	}
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i := 0; i < n; i++ {
		if _, err := stmt.ExecContext(ctx, row(i)...); err != nil {
			return err
		}
	}

	return nil
}

// Load reads the scenario stored under name.
// Returns ErrNotFound for unknown names.
func (s *Store) Load(ctx context.Context, name string) (Scenario, error) {
	var (
		id            int64
		width, height int
		origin        gridgraph.Coord
	)
	err := s.db.QueryRowContext(ctx,
		"SELECT id, width, height, origin_x, origin_y FROM scenarios WHERE name = ?", name,
	).Scan(&id, &width, &height, &origin.X, &origin.Y)
	if errors.Is(err, sql.ErrNoRows) {
		return Scenario{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return Scenario{}, fmt.Errorf("scenario: load %q: %w", name, err)
	}

	cells := make([]gridgraph.Cell, 0, width*height)
	err = queryRows(ctx, s.db, "SELECT x, y, terrain FROM cells WHERE scenario_id = ?", id, func(rows *sql.Rows) error {
		var c gridgraph.Cell
		var terrain int
		if err := rows.Scan(&c.X, &c.Y, &terrain); err != nil {
			return err
		}
		c.Terrain = gridgraph.Terrain(terrain)
		cells = append(cells, c)
		return nil
	})
	if err != nil {
		return Scenario{}, fmt.Errorf("scenario: load cells: %w", err)
	}
	grid, err := gridgraph.NewGridGraph(width, height, cells)
	if err != nil {
		return Scenario{}, fmt.Errorf("scenario: load %q: %w", name, err)
	}

	var recs []gridgraph.CostRecord
	err = queryRows(ctx, s.db, "SELECT from_x, from_y, to_x, to_y, cost FROM travel_costs WHERE scenario_id = ?", id, func(rows *sql.Rows) error {
		var r gridgraph.CostRecord
		if err := rows.Scan(&r.From.X, &r.From.Y, &r.To.X, &r.To.Y, &r.Cost); err != nil {
			return err
		}
		recs = append(recs, r)
		return nil
	})
	if err != nil {
		return Scenario{}, fmt.Errorf("scenario: load costs: %w", err)
	}
	costs, err := gridgraph.NewCostTable(recs)
	if err != nil {
		return Scenario{}, fmt.Errorf("scenario: load %q: %w", name, err)
	}

	var objectives []gridgraph.Coord
	err = queryRows(ctx, s.db, "SELECT x, y FROM objectives WHERE scenario_id = ? ORDER BY ordinal", id, func(rows *sql.Rows) error {
		var o gridgraph.Coord
		if err := rows.Scan(&o.X, &o.Y); err != nil {
			return err
		}
		objectives = append(objectives, o)
		return nil
	})
	if err != nil {
		return Scenario{}, fmt.Errorf("scenario: load objectives: %w", err)
	}

	return Scenario{Grid: grid, Costs: costs, Origin: origin, Objectives: objectives}, nil
}

func queryRows(ctx context.Context, db *sql.DB, query string, id int64, scan func(*sql.Rows) error) error {
	rows, err := db.QueryContext(ctx, query, id)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return err
		}
	}

	return rows.Err()
}

// List returns a summary of every stored scenario ordered by name.
func (s *Store) List(ctx context.Context) ([]Summary, error) {
	query := `
	SELECT s.name, s.width, s.height, s.created_at,
		(SELECT COUNT(*) FROM travel_costs t WHERE t.scenario_id = s.id),
		(SELECT COUNT(*) FROM objectives o WHERE o.scenario_id = s.id)
	FROM scenarios s
	ORDER BY s.name`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("scenario: list: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var (
			sum     Summary
			created string
		)
		if err := rows.Scan(&sum.Name, &sum.Width, &sum.Height, &created, &sum.Costs, &sum.Objectives); err != nil {
			return nil, fmt.Errorf("scenario: list: %w", err)
		}
		if sum.CreatedAt, err = time.Parse(time.RFC3339, created); err != nil {
			return nil, fmt.Errorf("scenario: list %q: created_at: %w", sum.Name, err)
		}
		out = append(out, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scenario: list: %w", err)
	}

	return out, nil
}
