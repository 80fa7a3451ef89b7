package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/blogem/visit-logger/models"
)

type sqliteVisitRepository struct {
	db *sql.DB
}

// NewSQLiteVisitRepository creates a visit repository backed by the visits table
func NewSQLiteVisitRepository(db *sql.DB) VisitRepository {
	return &sqliteVisitRepository{db: db}
}

// Append inserts a new visit row and sets the visit ID
func (r *sqliteVisitRepository) Append(ctx context.Context, visit *models.Visit) error {
	query := `
		INSERT INTO visits (timestamp, line, method, path, user_agent, ip_address)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	timestamp := visit.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	result, err := r.db.ExecContext(
		ctx,
		query,
		timestamp.UTC(),
		models.VisitLine,
		visit.Method,
		visit.Path,
		visit.UserAgent,
		visit.IPAddress,
	)
	if err != nil {
		return fmt.Errorf("insert visit: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get visit id: %w", err)
	}
	visit.ID = id
	visit.Timestamp = timestamp

	return nil
}

// Count returns the number of recorded visits
func (r *sqliteVisitRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM visits").Scan(&count); err != nil {
		return 0, fmt.Errorf("count visits: %w", err)
	}
	return count, nil
}
