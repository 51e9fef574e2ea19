package store

import "errors"

var (
	// ErrNotFound means the namespace has never been written.
	ErrNotFound = errors.New("not found")

	// ErrMalformed means a namespace row exists but its payload does not
	// deserialize. Callers decide whether to treat it as absence.
	ErrMalformed = errors.New("malformed stored value")
)

// The three independent storage namespaces. Each holds one JSON-serialized
// aggregate which is overwritten whole on every mutation.
const (
	NamespaceQuestions     = "questions"
	NamespaceSubCategories = "subcategories"
	NamespaceUser          = "user"
)
