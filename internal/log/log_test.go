package log

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	// Use temp directory for test database
	tmpDir := t.TempDir()
	origDBPath := dbPathFunc
	dbPathFunc = func() string {
		return filepath.Join(tmpDir, "log", "test.db")
	}
	defer func() { dbPathFunc = origDBPath }()

	t.Run("open and close", func(t *testing.T) {
		err := Open()
		require.NoError(t, err)
		defer Close()

		// Verify database file exists
		assert.FileExists(t, DBPath())
	})

	t.Run("log entry", func(t *testing.T) {
		err := Open()
		require.NoError(t, err)
		defer Close()

		SetProject("/test/project")

		Log(Entry{
			Source:  "file:open",
			Action:  "open",
			Path:    "src/app.py",
			Line:    12,
			Success: true,
		})

		// Verify entry was written
		db, err := sql.Open("sqlite", DBPath())
		require.NoError(t, err)
		defer db.Close()

		var count int
		err = db.QueryRow("SELECT COUNT(*) FROM log").Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		var source, action, path string
		var line, success int
		err = db.QueryRow("SELECT source, action, path, line, success FROM log WHERE id = 1").
			Scan(&source, &action, &path, &line, &success)
		require.NoError(t, err)
		assert.Equal(t, "file:open", source)
		assert.Equal(t, "open", action)
		assert.Equal(t, "src/app.py", path)
		assert.Equal(t, 12, line)
		assert.Equal(t, 1, success)
	})

	t.Run("log error entry", func(t *testing.T) {
		// Reset global for clean test
		Close()

		err := Open()
		require.NoError(t, err)
		defer Close()

		SetProject("/test/project")

		Log(Entry{
			Source:  "edit:edit",
			Action:  "edit",
			Path:    "src/broken.py",
			Success: false,
			Error:   "edit rejected",
		})

		db, err := sql.Open("sqlite", DBPath())
		require.NoError(t, err)
		defer db.Close()

		var success int
		var errMsg string
		err = db.QueryRow("SELECT success, error FROM log ORDER BY id DESC LIMIT 1").
			Scan(&success, &errMsg)
		require.NoError(t, err)
		assert.Equal(t, 0, success)
		assert.Equal(t, "edit rejected", errMsg)
	})

	t.Run("log with detail", func(t *testing.T) {
		Close()

		err := Open()
		require.NoError(t, err)
		defer Close()

		SetProject("/test/project")

		Log(Entry{
			Source:  "edit:edit",
			Action:  "edit",
			Success: true,
			Detail:  map[string]any{"end": 10, "replacement_lines": 4},
		})

		db, err := sql.Open("sqlite", DBPath())
		require.NoError(t, err)
		defer db.Close()

		var detail string
		err = db.QueryRow("SELECT detail FROM log ORDER BY id DESC LIMIT 1").Scan(&detail)
		require.NoError(t, err)
		assert.Contains(t, detail, "replacement_lines")
		assert.Contains(t, detail, "10")
	})

	t.Run("log without logger is noop", func(t *testing.T) {
		Close()

		// Should not panic
		Log(Entry{
			Source:  "test:cmd",
			Action:  "test",
			Success: true,
		})
	})

	t.Run("recent returns newest first", func(t *testing.T) {
		Close()
		err := Open()
		require.NoError(t, err)
		defer Close()

		SetProject("/test/project")

		Log(Entry{Source: "file:open", Action: "open", Path: "a.py", Success: true})
		Log(Entry{Source: "edit:edit", Action: "edit", Path: "a.py", Line: 3, Success: true})

		entries, err := Recent(10)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(entries), 2)
		assert.Equal(t, "edit:edit", entries[0].Source)
		assert.Equal(t, 3, entries[0].Line)
	})

	t.Run("open is idempotent", func(t *testing.T) {
		err := Open()
		require.NoError(t, err)

		err = Open() // second call should succeed
		require.NoError(t, err)

		Close()
	})
}

func TestHash(t *testing.T) {
	h1 := hash("/home/user/project")
	h2 := hash("/home/user/project")
	h3 := hash("/home/user/other")

	assert.Equal(t, h1, h2, "same input should produce same hash")
	assert.NotEqual(t, h1, h3, "different input should produce different hash")
	assert.Len(t, h1, 16, "BLAKE2b-64 should produce 16 hex chars")
}

func TestDBPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	expected := filepath.Join(home, ".lnedit", "log", "lnedit-log.db")

	// Use default path function
	origDBPath := dbPathFunc
	dbPathFunc = defaultDBPath
	defer func() { dbPathFunc = origDBPath }()

	assert.Equal(t, expected, DBPath())
}

func TestBuilder(t *testing.T) {
	// Use temp directory for test database
	tmpDir := t.TempDir()
	origDBPath := dbPathFunc
	dbPathFunc = func() string {
		return filepath.Join(tmpDir, "log", "test.db")
	}
	defer func() { dbPathFunc = origDBPath }()

	t.Run("fluent API success", func(t *testing.T) {
		Close()
		err := Open()
		require.NoError(t, err)
		defer Close()

		SetProject("/test/project")

		Event("file:goto", "goto").
			Path("src/app.py").
			Line(42).
			Write(nil) // success

		db, err := sql.Open("sqlite", DBPath())
		require.NoError(t, err)
		defer db.Close()

		var source, action, path string
		var line, success int
		err = db.QueryRow("SELECT source, action, path, line, success FROM log ORDER BY id DESC LIMIT 1").
			Scan(&source, &action, &path, &line, &success)
		require.NoError(t, err)
		assert.Equal(t, "file:goto", source)
		assert.Equal(t, "goto", action)
		assert.Equal(t, "src/app.py", path)
		assert.Equal(t, 42, line)
		assert.Equal(t, 1, success)
	})

	t.Run("fluent API with error", func(t *testing.T) {
		Close()
		err := Open()
		require.NoError(t, err)
		defer Close()

		SetProject("/test/project")

		testErr := sql.ErrNoRows // use any error
		Event("file:open", "open").
			Path("src/missing.py").
			Write(testErr)

		db, err := sql.Open("sqlite", DBPath())
		require.NoError(t, err)
		defer db.Close()

		var success int
		var errMsg string
		err = db.QueryRow("SELECT success, error FROM log ORDER BY id DESC LIMIT 1").
			Scan(&success, &errMsg)
		require.NoError(t, err)
		assert.Equal(t, 0, success)
		assert.Equal(t, testErr.Error(), errMsg)
	})

	t.Run("fluent API with Detail", func(t *testing.T) {
		Close()
		err := Open()
		require.NoError(t, err)
		defer Close()

		SetProject("/test/project")

		Event("edit:edit", "edit").
			Detail("end", 10).
			Detail("accepted", true).
			Write(nil)

		db, err := sql.Open("sqlite", DBPath())
		require.NoError(t, err)
		defer db.Close()

		var detail string
		err = db.QueryRow("SELECT detail FROM log ORDER BY id DESC LIMIT 1").Scan(&detail)
		require.NoError(t, err)
		assert.Contains(t, detail, "accepted")
		assert.Contains(t, detail, "10")
	})
}
