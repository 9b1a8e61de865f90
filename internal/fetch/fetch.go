// Package fetch reads CSV line data over HTTP.
package fetch

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// maxLineSize bounds a single CSV line read from a response body.
const maxLineSize = 1 << 20

// utf8BOM is stripped from the first line when present.
const utf8BOM = "\xef\xbb\xbf"

// Fetcher retrieves line-oriented text over HTTP GET.
type Fetcher struct {
	client *http.Client
}

// New creates a Fetcher whose requests time out after the given duration.
// A zero timeout disables the client timeout; callers can still cancel
// through the context.
func New(timeout time.Duration) *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: timeout},
	}
}

// NewWithClient creates a Fetcher using the given client. Used by tests
// and callers with transport requirements.
func NewWithClient(client *http.Client) *Fetcher {
	return &Fetcher{client: client}
}

// Lines performs a GET against rawURL and returns the response body split
// on line boundaries, in order. Line endings are not included; a UTF-8
// BOM on the first line is stripped. A non-2xx status is an error. An
// empty body yields an empty slice, not an error; the caller decides
// whether that is acceptable.
func (f *Fetcher) Lines(ctx context.Context, rawURL string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("get %s: unexpected status %s", rawURL, resp.Status)
	}

	var lines []string
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := scanner.Text()
		if len(lines) == 0 {
			line = strings.TrimPrefix(line, utf8BOM)
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	return lines, nil
}
