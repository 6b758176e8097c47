package world

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aetherworks/anvil/errs"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, nil, 0o644))
}

func TestEnumerateRegionFiles(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "r.0.0.mca"))
	touch(t, filepath.Join(dir, "r.-1.2.mca"))
	touch(t, filepath.Join(dir, "r.0.0.mcr")) // wrong format, ignored
	touch(t, filepath.Join(dir, "notaregion.txt"))

	files, err := EnumerateRegionFiles(dir, FormatAnvil)
	require.NoError(t, err)
	require.Len(t, files, 2)

	byCoord := map[[2]int]bool{}
	for _, f := range files {
		byCoord[[2]int{f.RX, f.RZ}] = true
	}
	require.True(t, byCoord[[2]int{0, 0}])
	require.True(t, byCoord[[2]int{-1, 2}])
}

func TestEnumerateRegionFiles_UnknownFormat(t *testing.T) {
	dir := t.TempDir()
	_, err := EnumerateRegionFiles(dir, Format(99))
	require.ErrorIs(t, err, errs.ErrUnknownRegionFmt)
}

func TestEnumerateWorld(t *testing.T) {
	dir := t.TempDir()

	mainRegion := filepath.Join(dir, "region")
	require.NoError(t, os.MkdirAll(mainRegion, 0o755))
	touch(t, filepath.Join(mainRegion, "r.0.0.mca"))

	netherRegion := filepath.Join(dir, "DIM-1", "region")
	require.NoError(t, os.MkdirAll(netherRegion, 0o755))
	touch(t, filepath.Join(netherRegion, "r.0.0.mca"))

	endRegion := filepath.Join(dir, "DIM1", "region")
	require.NoError(t, os.MkdirAll(endRegion, 0o755))
	touch(t, filepath.Join(endRegion, "r.0.0.mca"))

	result, err := EnumerateWorld(dir, FormatAnvil)
	require.NoError(t, err)

	require.Len(t, result[0], 1)
	require.Len(t, result[-1], 1)
	require.Len(t, result[1], 1)
}
