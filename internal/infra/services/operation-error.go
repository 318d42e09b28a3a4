package services

// OperationError is returned by a node operation when the host does not
// continue on failure. Message is the underlying error message, Summary and
// Description are the user facing texts.
type OperationError struct {
	Message     string
	Summary     string
	Description string
	Cause       error
}

func (e *OperationError) Error() string {
	return e.Message
}

func (e *OperationError) Unwrap() error {
	return e.Cause
}
