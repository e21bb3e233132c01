package config

import "errors"

// Errors returned by record construction and the source adapters.
var (
	// ErrInvalidConfig indicates a record construction attempt with one or
	// more required fields missing or empty.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrInvalidEnvVars indicates that one or more of the required
	// environment variables is absent or empty.
	ErrInvalidEnvVars = errors.New("invalid environment variables")
	// ErrUnreadableSource indicates that the configuration file content is
	// not a usable JSON document (invalid syntax, not an object, or an
	// empty document).
	ErrUnreadableSource = errors.New("unreadable configuration source")
	// ErrSchemaMismatch indicates that the decoded JSON document contains
	// keys unknown to the record, or omits a required one.
	ErrSchemaMismatch = errors.New("configuration schema mismatch")
)
