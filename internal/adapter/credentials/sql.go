package credentials

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"  // Postgres driver
	_ "modernc.org/sqlite" // SQLite driver

	"linenotify/internal/domain/model"
	"linenotify/internal/domain/ports"
)

// Supported SQL drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// SQLStore reads tokens from a line_tokens table. Rows are returned in
// insertion order so the first row for a duplicated name wins.
type SQLStore struct {
	db     *sql.DB
	driver string
}

var _ ports.CredentialStore = (*SQLStore)(nil)

// OpenSQLStore opens the database and makes sure the table exists.
func OpenSQLStore(ctx context.Context, driver, dsn string) (*SQLStore, error) {
	if driver != DriverSQLite && driver != DriverPostgres {
		return nil, fmt.Errorf("unsupported token store driver %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s token store: %w", driver, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s token store: %w", driver, err)
	}

	store := &SQLStore{db: db, driver: driver}
	if err := store.migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLStore) migrate(ctx context.Context) error {
	ddl := `CREATE TABLE IF NOT EXISTS line_tokens (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		token TEXT NOT NULL
	)`
	if s.driver == DriverPostgres {
		ddl = `CREATE TABLE IF NOT EXISTS line_tokens (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		token TEXT NOT NULL
	)`
	}
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create line_tokens table: %w", err)
	}
	return nil
}

// ListCredentials returns every stored token.
func (s *SQLStore) ListCredentials(ctx context.Context) ([]model.Credential, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name, token FROM line_tokens ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query line_tokens: %w", err)
	}
	defer rows.Close()

	var credentials []model.Credential
	for rows.Next() {
		var c model.Credential
		if err := rows.Scan(&c.Name, &c.Token); err != nil {
			return nil, fmt.Errorf("scan line_tokens row: %w", err)
		}
		credentials = append(credentials, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate line_tokens: %w", err)
	}
	return credentials, nil
}

// Close releases the database handle.
func (s *SQLStore) Close() error {
	return s.db.Close()
}
