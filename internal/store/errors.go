package store

import "errors"

// Sentinel errors returned by [KeyedStore] implementations. Callers should
// use [errors.Is] to match against these values.
var (
	// ErrNotFound is returned by Get when no record exists under the key.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidKey is returned by the filesystem store for keys that cannot
	// be mapped onto the sharded layout (shorter than the shard prefix or
	// containing path elements).
	ErrInvalidKey = errors.New("invalid record key")
)

// Low-level I/O errors. They wrap the underlying cause and are not part of
// the domain error taxonomy.
var (
	// ErrReadingRecord is returned when a stored record cannot be read or
	// decoded.
	ErrReadingRecord = errors.New("error reading record")

	// ErrWritingRecord is returned when a record cannot be persisted.
	ErrWritingRecord = errors.New("error writing record")

	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SQL statement fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrUnsupportedDriver is returned for database/sql drivers the SQL
	// store does not know how to talk to.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)
