package types

import "time"

// Config holds the settings shared by the CLI and the component.
type Config struct {
	// DefaultURL is used by URL reads when the caller supplies no URL.
	DefaultURL string `json:"default_url" yaml:"default_url" mapstructure:"default_url"`

	// HTTPTimeout bounds a single URL read. Zero means no client timeout;
	// callers may still cancel via context. A zero value is replaced by
	// DefaultHTTPTimeout when the config is loaded from file.
	HTTPTimeout time.Duration `json:"http_timeout" yaml:"http_timeout" mapstructure:"http_timeout"`

	// DataDir is where the operation history database lives.
	DataDir string `json:"data_dir" yaml:"data_dir" mapstructure:"data_dir"`
}

// DefaultHTTPTimeout is applied when no timeout is configured.
const DefaultHTTPTimeout = 30 * time.Second

// Validate checks that the Config is well-formed, returning a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.HTTPTimeout < 0 {
		return ErrTimeoutInvalid
	}
	return nil
}
