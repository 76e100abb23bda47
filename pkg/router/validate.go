package router

import "fmt"

// ValidationErrorType categorizes route validation errors.
type ValidationErrorType string

const (
	// ErrorDuplicateParam indicates a pattern declares the same parameter
	// name twice, e.g. blog/[id]/comments/[id]/page.
	ErrorDuplicateParam ValidationErrorType = "duplicate_param"
)

// ValidationError reports a conflict discovered while building the route
// table.
type ValidationError struct {
	// Type is the error category.
	Type ValidationErrorType

	// Message is the human-readable error message.
	Message string

	// Files are the source files involved, when known.
	Files []string

	// Path is the conflicting URL pattern.
	Path string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}
