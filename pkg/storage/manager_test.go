package storage

import (
	"bytes"
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errReader struct{}

func (errReader) Read(p []byte) (int, error) { return 0, stderrors.New("read failed") }

func TestNewManagerCreatesNestedDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "images", "cards")

	manager, err := NewManager(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, dir, manager.GetOutputDir())
}

func TestNewManagerFailsOnFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "cards")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	_, err := NewManager(file)
	assert.Error(t, err)
}

func TestManager(t *testing.T) {
	tempDir := t.TempDir()

	manager, err := NewManager(tempDir)
	require.NoError(t, err)
	assert.Equal(t, 0, manager.GetSavedCount())

	exists, err := manager.Exists("wildbg.jpg")
	require.NoError(t, err)
	assert.False(t, exists)

	testData := []byte("test card data")
	require.NoError(t, manager.Save(bytes.NewReader(testData), "wildbg.jpg"))

	content, err := os.ReadFile(filepath.Join(tempDir, "wildbg.jpg"))
	require.NoError(t, err)
	assert.Equal(t, testData, content)

	exists, err = manager.Exists("wildbg.jpg")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, 1, manager.GetSavedCount())

	// No temp file left behind
	entries, err := os.ReadDir(tempDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "wildbg.jpg", entries[0].Name())
}

func TestExistsSeesFilesCreatedElsewhere(t *testing.T) {
	tempDir := t.TempDir()
	manager, err := NewManager(tempDir)
	require.NoError(t, err)

	// Empty files still count as present
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "manual.jpg"), nil, 0644))

	exists, err := manager.Exists("manual.jpg")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, os.Remove(filepath.Join(tempDir, "manual.jpg")))
	exists, err = manager.Exists("manual.jpg")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSaveTruncatesExisting(t *testing.T) {
	tempDir := t.TempDir()
	manager, err := NewManager(tempDir)
	require.NoError(t, err)

	require.NoError(t, manager.Save(bytes.NewReader([]byte("a much longer original body")), "card.jpg"))
	require.NoError(t, manager.Save(bytes.NewReader([]byte("short")), "card.jpg"))

	content, err := os.ReadFile(filepath.Join(tempDir, "card.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "short", string(content))
}

func TestSaveReadErrorLeavesNoFile(t *testing.T) {
	tempDir := t.TempDir()
	manager, err := NewManager(tempDir)
	require.NoError(t, err)

	err = manager.Save(errReader{}, "broken.jpg")
	require.Error(t, err)

	entries, err := os.ReadDir(tempDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Equal(t, 0, manager.GetSavedCount())
}

func TestSaveMissingSubdirectory(t *testing.T) {
	manager, err := NewManager(t.TempDir())
	require.NoError(t, err)

	err = manager.Save(bytes.NewReader([]byte("x")), "sub/card.jpg")
	assert.Error(t, err)
}

func TestPathIsVerbatim(t *testing.T) {
	manager, err := NewManager(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(manager.GetOutputDir(), "Wild%20Card.jpg"), manager.Path("Wild%20Card.jpg"))
}
