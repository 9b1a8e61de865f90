// Package storage reads and writes CSV line data on the local filesystem.
// Writes are atomic: temp file, flush, fsync, rename.
package storage

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/csvtable/pkg/table"
	"github.com/mesh-intelligence/csvtable/pkg/types"
)

// maxLineSize bounds a single line read from a CSV file.
const maxLineSize = 1 << 20

// ReadLines returns the file's content split on line boundaries, in order.
// Returns types.ErrFileNotFound when the path does not exist. An empty
// file yields an empty slice, not an error.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, types.ErrFileNotFound)
		}
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", path, err)
	}
	return lines, nil
}

// WriteRows serializes rows verbatim (one line terminator per row, no
// field escaping) and overwrites path with the result. The write is
// atomic via the temp-file, fsync, rename pattern. OS permission errors
// map to types.ErrPermissionDenied.
func WriteRows(path string, rows []string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".csv-*.tmp")
	if err != nil {
		if os.IsPermission(err) {
			return fmt.Errorf("creating temp file in %s: %w", dir, types.ErrPermissionDenied)
		}
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	if _, err := w.WriteString(table.Serialize(rows)); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing rows: %w", err)
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flushing buffer: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		if os.IsPermission(err) {
			return fmt.Errorf("renaming temp file: %w", types.ErrPermissionDenied)
		}
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// CheckWritable probes whether a write to path could succeed, returning
// types.ErrPermissionDenied when the enclosing directory refuses a
// create. The probe file is removed before returning. This is the
// capability check callers run before WriteRows; it does not request
// permission, only reports.
func CheckWritable(path string) error {
	dir := filepath.Dir(path)
	f, err := os.CreateTemp(dir, ".probe-*.tmp")
	if err != nil {
		if os.IsPermission(err) {
			return fmt.Errorf("%s: %w", dir, types.ErrPermissionDenied)
		}
		return fmt.Errorf("probing %s: %w", dir, err)
	}
	name := f.Name()
	f.Close()
	os.Remove(name)
	return nil
}
