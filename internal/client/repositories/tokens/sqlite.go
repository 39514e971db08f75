package tokens

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/earnhub/adminctl/internal/common"
	"github.com/earnhub/adminctl/internal/dbx"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// InitDatabase opens the local credentials database and makes sure the
// schema exists. The schema is a single key-value table, so there is no
// migration history to manage.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS credentials (
		  key   TEXT PRIMARY KEY,
		  value TEXT NOT NULL
		)
	`)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to init credentials schema: %w", err)
	}
	return db, nil
}

func (r *SQLiteRepository) Load(ctx context.Context) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM credentials WHERE key = ?`, common.TokenStorageKey).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to load token: %w", err)
	}
	return value, nil
}

// Save drops any stale copy and writes the new token in one transaction, so
// a crash can never leave two generations of credentials behind.
func (r *SQLiteRepository) Save(ctx context.Context, token string) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM credentials WHERE key = ?`, common.TokenStorageKey); err != nil {
			return fmt.Errorf("failed to drop stale token: %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO credentials (key, value) VALUES (?, ?)`,
			common.TokenStorageKey, token); err != nil {
			return fmt.Errorf("failed to save token: %w", err)
		}
		return nil
	})
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM credentials WHERE key = ?`, common.TokenStorageKey)
	if err != nil {
		return fmt.Errorf("failed to clear token: %w", err)
	}
	return nil
}
