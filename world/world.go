// Package world enumerates Anvil/Region world directories (spec §4.5):
// listing region files within a dimension, and discovering dimensions
// within a world save.
package world

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/aetherworks/anvil/errs"
)

// Format selects the region-file naming convention and extension.
type Format int

const (
	// FormatAnvil is the current region-file format, extension ".mca".
	FormatAnvil Format = iota
	// FormatRegion is the legacy region-file format, extension ".mcr".
	FormatRegion
)

func (f Format) extension() (string, error) {
	switch f {
	case FormatAnvil:
		return "mca", nil
	case FormatRegion:
		return "mcr", nil
	default:
		return "", fmt.Errorf("%w: %d", errs.ErrUnknownRegionFmt, f)
	}
}

// RegionFile identifies one region file by its coordinates and path.
type RegionFile struct {
	Path   string
	RX, RZ int
}

var regionFilePattern = regexp.MustCompile(`^r\.(-?\d+)\.(-?\d+)\.(mca|mcr)$`)

// EnumerateRegionFiles lists the region files of the given format
// directly inside dir, matching "r.<rx>.<rz>.<ext>".
func EnumerateRegionFiles(dir string, fmtKind Format) ([]RegionFile, error) {
	ext, err := fmtKind.extension()
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var out []RegionFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		m := regionFilePattern.FindStringSubmatch(entry.Name())
		if m == nil || m[3] != ext {
			continue
		}
		rx, errX := strconv.Atoi(m[1])
		rz, errZ := strconv.Atoi(m[2])
		if errX != nil || errZ != nil {
			continue
		}
		out = append(out, RegionFile{
			Path: filepath.Join(dir, entry.Name()),
			RX:   rx,
			RZ:   rz,
		})
	}
	return out, nil
}

var dimDirPattern = regexp.MustCompile(`^DIM(-?\d+)$`)

// EnumerateWorld maps dimension id to that dimension's region files.
// Dimension 0 is the world directory's own "region" subdirectory;
// dimension n (n != 0) lives under "DIM<n>/region" (spec §4.5).
func EnumerateWorld(dir string, fmtKind Format) (map[int][]RegionFile, error) {
	result := make(map[int][]RegionFile)

	if mainRegion := filepath.Join(dir, "region"); dirExists(mainRegion) {
		files, err := EnumerateRegionFiles(mainRegion, fmtKind)
		if err != nil {
			return nil, err
		}
		result[0] = files
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		m := dimDirPattern.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}
		dimID, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		regionDir := filepath.Join(dir, entry.Name(), "region")
		if !dirExists(regionDir) {
			continue
		}
		files, err := EnumerateRegionFiles(regionDir, fmtKind)
		if err != nil {
			return nil, err
		}
		result[dimID] = files
	}

	return result, nil
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
