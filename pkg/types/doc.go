// Package types defines the configuration struct and standard error types
// shared by the csvtable collaborators.
package types
