// Package component orchestrates CSV reads and writes around the pure
// table core, surfacing each outcome through exactly one of two output
// channels: the data handler on success or the error handler on failure.
// This is the host-independent replacement for the event-dispatch glue a
// hosted component would use.
package component

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/mesh-intelligence/csvtable/internal/fetch"
	"github.com/mesh-intelligence/csvtable/internal/history"
	"github.com/mesh-intelligence/csvtable/internal/storage"
	"github.com/mesh-intelligence/csvtable/pkg/table"
	"github.com/mesh-intelligence/csvtable/pkg/types"
)

// Error messages surfaced on the error channel.
const (
	msgEmptyData    = "CSV data is empty."
	msgFileNotFound = "CSV file not found."
)

// Recorder receives one entry per completed operation. *history.Log
// implements it; tests substitute their own.
type Recorder interface {
	Record(e history.Entry) error
}

// Options configures a Component. All fields are optional.
type Options struct {
	// Fetcher performs URL reads. Defaults to a fetcher with
	// types.DefaultHTTPTimeout.
	Fetcher *fetch.Fetcher

	// OnData receives the full row sequence once per successful load.
	OnData func(rows []string)

	// OnError receives a descriptive message once per failed operation.
	OnError func(msg string)

	// RequestPermission is invoked, fire-and-forget, when a write is
	// attempted without storage permission. The write is not retried
	// after the hook runs.
	RequestPermission func()

	// History, when set, records every operation outcome.
	History Recorder
}

// Component holds the most recently loaded table and runs read/write
// operations against the collaborators. Loads replace the table
// wholesale; a failed load leaves the previous table untouched. Callers
// must not interleave two loads against the same instance — the mutex
// below guards memory, not operation ordering.
type Component struct {
	mu    sync.RWMutex
	table table.Table

	fetcher           *fetch.Fetcher
	onData            func([]string)
	onError           func(string)
	requestPermission func()
	history           Recorder
}

// New creates a Component from the given options.
func New(opts Options) *Component {
	c := &Component{
		fetcher:           opts.Fetcher,
		onData:            opts.OnData,
		onError:           opts.OnError,
		requestPermission: opts.RequestPermission,
		history:           opts.History,
	}
	if c.fetcher == nil {
		c.fetcher = fetch.New(types.DefaultHTTPTimeout)
	}
	if c.onData == nil {
		c.onData = func([]string) {}
	}
	if c.onError == nil {
		c.onError = func(string) {}
	}
	return c
}

// Table returns the currently held table.
func (c *Component) Table() table.Table {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.table
}

// Cell looks up a cell in the currently held table. Indices are 1-based;
// anything out of range yields "".
func (c *Component) Cell(row, col int) string {
	return c.Table().Cell(row, col)
}

// ReadURL fetches rawURL on a background goroutine and delivers the
// outcome through the handlers: the data handler for a non-empty body,
// the error handler for an empty body or a transport failure. The
// returned channel closes when delivery is done, so the caller decides
// where to wait.
func (c *Component) ReadURL(ctx context.Context, rawURL string) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		lines, err := c.fetcher.Lines(ctx, rawURL)
		if err != nil {
			c.fail(history.OpReadURL, rawURL, fmt.Sprintf("Error reading data from CSV URL: %v", err))
			return
		}
		if len(lines) == 0 {
			c.fail(history.OpReadURL, rawURL, msgEmptyData)
			return
		}
		c.deliver(history.OpReadURL, rawURL, lines)
	}()
	return done
}

// ReadFile loads path synchronously and delivers the outcome through the
// handlers. Unlike ReadURL, an empty file is a valid empty table.
func (c *Component) ReadFile(path string) {
	lines, err := storage.ReadLines(path)
	if err != nil {
		if errors.Is(err, types.ErrFileNotFound) {
			c.fail(history.OpReadFile, path, msgFileNotFound)
			return
		}
		c.fail(history.OpReadFile, path, fmt.Sprintf("Error reading data from CSV file: %v", err))
		return
	}
	c.deliver(history.OpReadFile, path, lines)
}

// WriteFile serializes rows verbatim and overwrites path. The write
// capability is checked first: when denied, the permission hook fires and
// nothing is written or surfaced on the error channel. Write failures go
// to the error channel. The held table is not consulted or modified.
func (c *Component) WriteFile(path string, rows []string) {
	if err := storage.CheckWritable(path); err != nil {
		if errors.Is(err, types.ErrPermissionDenied) {
			c.denied(path)
			return
		}
		c.fail(history.OpWriteFile, path, fmt.Sprintf("Error writing data to CSV file: %v", err))
		return
	}
	if err := storage.WriteRows(path, rows); err != nil {
		if errors.Is(err, types.ErrPermissionDenied) {
			// Permission was revoked between check and write.
			c.denied(path)
			return
		}
		c.fail(history.OpWriteFile, path, fmt.Sprintf("Error writing data to CSV file: %v", err))
		return
	}
	c.record(history.Entry{
		Op:     history.OpWriteFile,
		Source: path,
		Rows:   len(rows),
		Status: history.StatusOK,
	})
}

// deliver replaces the held table and fires the data handler.
func (c *Component) deliver(op, source string, lines []string) {
	c.mu.Lock()
	c.table = table.Load(lines)
	c.mu.Unlock()

	c.record(history.Entry{
		Op:     op,
		Source: source,
		Rows:   len(lines),
		Status: history.StatusOK,
	})
	c.onData(lines)
}

// fail fires the error handler with the given message.
func (c *Component) fail(op, source, msg string) {
	c.record(history.Entry{
		Op:      op,
		Source:  source,
		Status:  history.StatusError,
		Message: msg,
	})
	c.onError(msg)
}

// denied fires the permission hook without touching the error channel.
func (c *Component) denied(path string) {
	c.record(history.Entry{
		Op:      history.OpWriteFile,
		Source:  path,
		Status:  history.StatusDenied,
		Message: types.ErrPermissionDenied.Error(),
	})
	if c.requestPermission != nil {
		c.requestPermission()
	}
}

// record logs the entry when a recorder is attached. Recording is
// best-effort; a history failure must not mask the operation outcome.
func (c *Component) record(e history.Entry) {
	if c.history == nil {
		return
	}
	_ = c.history.Record(e)
}
