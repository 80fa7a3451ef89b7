package repositories

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogem/visit-logger/database"
	"github.com/blogem/visit-logger/models"
)

func setupTestDB(t *testing.T) *sql.DB {
	db, err := database.Initialize(filepath.Join(t.TempDir(), "visits.db"))
	if err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestFileVisitRepository_CreatesFileOnFirstAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs.txt")
	repo, err := NewFileVisitRepository(path)
	require.NoError(t, err)

	require.NoError(t, repo.Append(context.Background(), &models.Visit{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Visited homepage\n", string(data))
}

func TestFileVisitRepository_AppendsAfterExistingLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs.txt")
	prior := strings.Repeat(models.VisitLine, 3)
	require.NoError(t, os.WriteFile(path, []byte(prior), 0o644))

	repo, err := NewFileVisitRepository(path)
	require.NoError(t, err)
	require.NoError(t, repo.Append(context.Background(), &models.Visit{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.SplitAfter(string(data), "\n")
	// SplitAfter leaves a trailing empty element after the final newline
	require.Len(t, lines, 5)
	assert.Equal(t, models.VisitLine, lines[3])
	assert.Equal(t, prior+models.VisitLine, string(data))
}

func TestFileVisitRepository_ConcurrentAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs.txt")
	repo, err := NewFileVisitRepository(path)
	require.NoError(t, err)

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, repo.Append(context.Background(), &models.Visit{}))
		}()
	}
	wg.Wait()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat(models.VisitLine, n), string(data))

	count, err := repo.(VisitCounter).Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, n, count)
}

func TestFileVisitRepository_UnwritablePath(t *testing.T) {
	dir := t.TempDir()
	// A regular file used as a directory component can never be opened
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	repo, err := NewFileVisitRepository(filepath.Join(blocker, "logs.txt"))
	require.NoError(t, err)

	err = repo.Append(context.Background(), &models.Visit{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open visit log")

	data, err := os.ReadFile(blocker)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestFileVisitRepository_CanceledContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs.txt")
	repo, err := NewFileVisitRepository(path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = repo.Append(ctx, &models.Visit{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.NoFileExists(t, path)
}

func TestFileVisitRepository_CountMissingFile(t *testing.T) {
	repo, err := NewFileVisitRepository(filepath.Join(t.TempDir(), "logs.txt"))
	require.NoError(t, err)

	count, err := repo.(VisitCounter).Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestFileVisitRepository_CountLargeLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs.txt")
	// Larger than the read buffer so lines straddle chunk boundaries
	const n = 10000
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat(models.VisitLine, n)), 0o644))

	repo, err := NewFileVisitRepository(path)
	require.NoError(t, err)

	count, err := repo.(VisitCounter).Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, n, count)
}

func TestNewFileVisitRepository_EmptyPath(t *testing.T) {
	_, err := NewFileVisitRepository("")
	assert.ErrorIs(t, err, ErrEmptyPath)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriterVisitRepository(t *testing.T) {
	var buf bytes.Buffer
	repo := NewWriterVisitRepository(&buf)

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Append(context.Background(), &models.Visit{}))
	}
	assert.Equal(t, strings.Repeat(models.VisitLine, 3), buf.String())

	err := NewWriterVisitRepository(failingWriter{}).Append(context.Background(), &models.Visit{})
	assert.ErrorContains(t, err, "disk full")
}

func TestSQLiteVisitRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSQLiteVisitRepository(db)
	ctx := context.Background()

	visit := &models.Visit{
		Method:    "GET",
		Path:      "/",
		UserAgent: "test-agent",
		IPAddress: "203.0.113.7",
	}
	require.NoError(t, repo.Append(ctx, visit))
	assert.NotZero(t, visit.ID)
	assert.False(t, visit.Timestamp.IsZero())

	require.NoError(t, repo.Append(ctx, &models.Visit{Method: "GET", Path: "/"}))

	count, err := repo.(VisitCounter).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	var line, agent string
	err = db.QueryRow("SELECT line, user_agent FROM visits WHERE id = ?", visit.ID).Scan(&line, &agent)
	require.NoError(t, err)
	assert.Equal(t, models.VisitLine, line)
	assert.Equal(t, "test-agent", agent)
}

func TestNewRepositories(t *testing.T) {
	repos, err := NewRepositories(SinkFile, filepath.Join(t.TempDir(), "logs.txt"), nil)
	require.NoError(t, err)
	assert.NotNil(t, repos.Visit)

	_, err = NewRepositories(SinkSQLite, "", nil)
	assert.Error(t, err)

	repos, err = NewRepositories(SinkSQLite, "", setupTestDB(t))
	require.NoError(t, err)
	assert.NotNil(t, repos.Visit)

	_, err = NewRepositories("redis", "logs.txt", nil)
	assert.ErrorContains(t, err, "unknown visit sink")
}
