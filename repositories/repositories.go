package repositories

import (
	"database/sql"
	"fmt"
)

// Sink kinds accepted by NewRepositories
const (
	SinkFile   = "file"
	SinkSQLite = "sqlite"
)

// Repositories struct holds all repository interfaces
type Repositories struct {
	Visit VisitRepository
}

// NewRepositories creates the visit repository for the given sink kind.
// db is only used by the sqlite sink and may be nil otherwise.
func NewRepositories(sink, logFile string, db *sql.DB) (*Repositories, error) {
	var (
		visit VisitRepository
		err   error
	)

	switch sink {
	case SinkFile:
		visit, err = NewFileVisitRepository(logFile)
		if err != nil {
			return nil, err
		}
	case SinkSQLite:
		if db == nil {
			return nil, fmt.Errorf("sqlite sink requires a database connection")
		}
		visit = NewSQLiteVisitRepository(db)
	default:
		return nil, fmt.Errorf("unknown visit sink %q", sink)
	}

	return &Repositories{Visit: visit}, nil
}
