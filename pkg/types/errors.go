package types

import "errors"

// Operation errors. Collaborators return these sentinels (possibly
// wrapped); the component converts them to the exact messages surfaced on
// its error channel.
var (
	// ErrEmptyResult reports that a URL read produced zero lines. File
	// reads do not apply this check; an empty file is a valid empty table.
	ErrEmptyResult = errors.New("csv data is empty")

	// ErrFileNotFound reports that a file read target does not exist.
	ErrFileNotFound = errors.New("csv file not found")

	// ErrPermissionDenied reports a write attempted without storage
	// permission. The component does not surface this on the error
	// channel; it invokes the permission-request hook instead.
	ErrPermissionDenied = errors.New("write permission denied")
)

// Config validation errors.
var (
	ErrTimeoutInvalid = errors.New("http timeout must not be negative")
)
