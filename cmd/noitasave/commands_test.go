package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestEnv points managed storage at a temp directory and configures
// a temp game root with a live save containing world.dat="v1".
func setupTestEnv(t *testing.T) (gameRoot, liveDir string) {
	t.Helper()

	t.Setenv("NOITASAVE_HOME", filepath.Join(t.TempDir(), "storage"))

	gameRoot = t.TempDir()
	liveDir = filepath.Join(gameRoot, "save00")
	require.NoError(t, os.MkdirAll(liveDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(liveDir, "world.dat"), []byte("v1"), 0644))

	_, err := captureOutput(t, func() error {
		return runSetDir(nil, []string{gameRoot})
	})
	require.NoError(t, err)

	return gameRoot, liveDir
}

// captureOutput runs fn with stdout redirected and returns what it printed.
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	runErr := fn()

	w.Close()
	var buf bytes.Buffer
	buf.ReadFrom(r)
	os.Stdout = old

	return buf.String(), runErr
}

func TestSaveAndListCommands(t *testing.T) {
	setupTestEnv(t)

	out, err := captureOutput(t, func() error {
		return runSave(nil, []string{"first run"})
	})
	require.NoError(t, err)
	assert.Contains(t, out, "Successfully saved game with name: first run")

	out, err = captureOutput(t, func() error {
		return runList(nil, nil)
	})
	require.NoError(t, err)
	assert.Contains(t, out, "first run")

	t.Run("duplicate name is an error", func(t *testing.T) {
		_, err := captureOutput(t, func() error {
			return runSave(nil, []string{"first run"})
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
	})
}

func TestListCommandEmpty(t *testing.T) {
	setupTestEnv(t)

	out, err := captureOutput(t, func() error {
		return runList(nil, nil)
	})
	require.NoError(t, err)
	assert.Contains(t, out, "No saves found")

	out, err = captureOutput(t, func() error {
		return runList(nil, []string{"removed"})
	})
	require.NoError(t, err)
	assert.Contains(t, out, "Trash is empty")

	_, err = captureOutput(t, func() error {
		return runList(nil, []string{"bogus"})
	})
	assert.Error(t, err)
}

func TestUnconfiguredCommandsFail(t *testing.T) {
	t.Setenv("NOITASAVE_HOME", filepath.Join(t.TempDir(), "storage"))

	_, err := captureOutput(t, func() error {
		return runSave(nil, []string{"a"})
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "set-external-dir")
}

func TestLoadCommand(t *testing.T) {
	_, liveDir := setupTestEnv(t)

	_, err := captureOutput(t, func() error {
		return runSave(nil, []string{"s1"})
	})
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(liveDir, "world.dat"), []byte("v2"), 0644))

	out, err := captureOutput(t, func() error {
		return runLoad(nil, []string{"s1"})
	})
	require.NoError(t, err)
	assert.Contains(t, out, "Save [s1] successfully loaded!")

	data, err := os.ReadFile(filepath.Join(liveDir, "world.dat"))
	require.NoError(t, err)
	assert.Equal(t, "v1", string(data))

	t.Run("no name prints the listing", func(t *testing.T) {
		out, err := captureOutput(t, func() error {
			return runLoad(nil, nil)
		})
		require.NoError(t, err)
		assert.Contains(t, out, "Please specify which save to load")
		assert.Contains(t, out, "s1")
	})

	t.Run("unknown name is a message, not a failure", func(t *testing.T) {
		out, err := captureOutput(t, func() error {
			return runLoad(nil, []string{"nope"})
		})
		require.NoError(t, err)
		assert.Contains(t, out, "Failed to find save with name: nope")
	})
}

func TestTrashCommands(t *testing.T) {
	setupTestEnv(t)

	_, err := captureOutput(t, func() error {
		return runSave(nil, []string{"s1"})
	})
	require.NoError(t, err)

	out, err := captureOutput(t, func() error {
		return runRemove(nil, []string{"s1"})
	})
	require.NoError(t, err)
	assert.Contains(t, out, "Moved [s1] to the trash")

	out, err = captureOutput(t, func() error {
		return runList(nil, []string{"removed"})
	})
	require.NoError(t, err)
	assert.Contains(t, out, "s1")

	t.Run("delete of active save is rejected", func(t *testing.T) {
		_, err := captureOutput(t, func() error {
			return runRestore(nil, []string{"s1"})
		})
		require.NoError(t, err)

		_, err = captureOutput(t, func() error {
			return runDelete(nil, []string{"s1"})
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "remove it to the trash")
	})

	t.Run("trash then delete removes everything", func(t *testing.T) {
		_, err := captureOutput(t, func() error {
			return runRemove(nil, []string{"s1"})
		})
		require.NoError(t, err)

		out, err := captureOutput(t, func() error {
			return runDelete(nil, []string{"s1"})
		})
		require.NoError(t, err)
		assert.Contains(t, out, "Permanently deleted [s1]")

		out, err = captureOutput(t, func() error {
			return runList(nil, nil)
		})
		require.NoError(t, err)
		assert.Contains(t, out, "No saves found")
	})

	t.Run("remove of unknown save reports and succeeds", func(t *testing.T) {
		out, err := captureOutput(t, func() error {
			return runRemove(nil, []string{"ghost"})
		})
		require.NoError(t, err)
		assert.Contains(t, out, "Failed to find save with name: ghost")
	})
}

func TestImportCommand(t *testing.T) {
	setupTestEnv(t)

	src := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "world.dat"), []byte("imported"), 0644))

	out, err := captureOutput(t, func() error {
		return runImport(nil, []string{src, "borrowed"})
	})
	require.NoError(t, err)
	assert.Contains(t, out, "Successfully imported")

	out, err = captureOutput(t, func() error {
		return runList(nil, nil)
	})
	require.NoError(t, err)
	assert.Contains(t, out, "borrowed")
}
