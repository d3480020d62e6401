package pipeline

import "fmt"

// DataIntegrityError reports that a referenced row disappeared between
// composition and storage. All result writes for the run are aborted.
type DataIntegrityError struct {
	Cause error
}

func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("data integrity violation: %v", e.Cause)
}

func (e *DataIntegrityError) Unwrap() error { return e.Cause }
