package surrealdb

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteRaw_WritesUnderDataPath(t *testing.T) {
	m := &Manager{dataPath: t.TempDir(), logger: testLogger()}

	data := []byte{0x89, 'P', 'N', 'G'}
	require.NoError(t, m.WriteRaw("charts", "networth.png", data))

	got, err := os.ReadFile(filepath.Join(m.dataPath, "charts", "networth.png"))
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestWriteRaw_OverwritesExisting(t *testing.T) {
	m := &Manager{dataPath: t.TempDir(), logger: testLogger()}

	require.NoError(t, m.WriteRaw("charts", "networth.png", []byte("v1")))
	require.NoError(t, m.WriteRaw("charts", "networth.png", []byte("v2")))

	got, err := os.ReadFile(filepath.Join(m.dataPath, "charts", "networth.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), got)

	// No leftover temp file
	entries, err := os.ReadDir(filepath.Join(m.dataPath, "charts"))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteRaw_SanitizesKey(t *testing.T) {
	m := &Manager{dataPath: t.TempDir(), logger: testLogger()}

	require.NoError(t, m.WriteRaw("charts", "../escape.png", []byte("x")))

	// The sanitized file stays inside the data path
	if _, err := os.Stat(filepath.Join(m.dataPath, "escape.png")); err == nil {
		t.Fatal("expected key to be sanitized, file escaped the charts directory")
	}
	entries, err := os.ReadDir(filepath.Join(m.dataPath, "charts"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.NotContains(t, entries[0].Name(), "..")
}

func TestManager_StoresAccessible(t *testing.T) {
	db := testDB(t)
	m := &Manager{
		db:       db,
		logger:   testLogger(),
		dataPath: t.TempDir(),
	}
	m.positionStore = NewPositionStore(db, testLogger())
	m.netWorthStore = NewNetWorthStore(db, testLogger())
	m.internalStore = NewInternalStore(db, testLogger())

	assert.NotNil(t, m.Positions())
	assert.NotNil(t, m.NetWorth())
	assert.NotNil(t, m.Internal())
	assert.NotEmpty(t, m.DataPath())
}
