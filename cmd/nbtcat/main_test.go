package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aetherworks/anvil/tag"
	"github.com/aetherworks/anvil/wire"
)

func TestRun_NoSubcommand(t *testing.T) {
	require.Equal(t, 1, run(nil))
}

func TestRun_UnknownSubcommand(t *testing.T) {
	require.Equal(t, 2, run([]string{"frobnicate"}))
}

func TestRun_MissingFileArgument(t *testing.T) {
	require.Equal(t, 3, run([]string{"print"}))
}

func TestRun_FileDoesNotExist(t *testing.T) {
	require.Equal(t, 3, run([]string{"print", "/nonexistent/path.dat"}))
}

func TestRun_PrintSucceeds(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "level.dat")

	root := tag.NewCompound()
	require.NoError(t, root.Set("greeting", mustString(t, "hi")))
	require.NoError(t, wire.WriteFile(path, root, "Level", false))

	require.Equal(t, 0, run([]string{"print", path}))
}

func TestRun_PrintSelectorMiss(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "level.dat")

	root := tag.NewCompound()
	require.NoError(t, root.Set("greeting", mustString(t, "hi")))
	require.NoError(t, wire.WriteFile(path, root, "Level", false))

	require.Equal(t, 4, run([]string{"print", path, "missing"}))
}
