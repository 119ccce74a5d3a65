package dataset

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for dataset loading. Both are fatal at startup and are
// surfaced to the operator as a page-level failure, never retried.
var (
	// ErrDatasetNotFound means the dataset file does not exist or cannot be read
	ErrDatasetNotFound = goerr.New("dataset file not found")

	// ErrDatasetMalformed means the file is not parseable as the expected CSV
	// layout (bad CSV syntax, missing required column, unparseable value)
	ErrDatasetMalformed = goerr.New("malformed dataset file")
)

// Context keys for error values
const (
	PathKey   = "path"
	ColumnKey = "column"
	LineKey   = "line"
	ValueKey  = "value"
)
