package articles

import "errors"

// Store operations fail with one of these sentinel errors (possibly
// wrapped). All of them are recoverable at the call site; none leaves the
// store in a partially mutated state.
var (
	// ErrParse means a load payload did not conform to the collection
	// schema. The store keeps its prior state.
	ErrParse = errors.New("malformed collection payload")

	// ErrDuplicateID means article creation collided with an existing id.
	ErrDuplicateID = errors.New("article id already exists")

	// ErrNotFound means an operation referenced a non-existent article.
	ErrNotFound = errors.New("article not found")

	// ErrIndexOutOfRange means a sub-item deletion index was out of range.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrNoSelection means an edit operation ran without a selected article.
	ErrNoSelection = errors.New("no article selected")
)
