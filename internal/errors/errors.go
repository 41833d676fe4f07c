package errors

import "fmt"

// DataError represents a fatal problem with the knowledge-base data file
type DataError struct {
	Path      string
	Operation string
	Err       error
}

func (e *DataError) Error() string {
	return fmt.Sprintf("data file %s: %s failed: %v", e.Path, e.Operation, e.Err)
}

func (e *DataError) Unwrap() error {
	return e.Err
}

// NewDataError creates a new data file error
func NewDataError(path, operation string, err error) *DataError {
	return &DataError{
		Path:      path,
		Operation: operation,
		Err:       err,
	}
}

// MappingError represents an invalid entry in the id mapping table
type MappingError struct {
	OldID   string
	Message string
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("mapping error for %s: %s", e.OldID, e.Message)
}

// NewMappingError creates a new mapping error
func NewMappingError(oldID, message string) *MappingError {
	return &MappingError{
		OldID:   oldID,
		Message: message,
	}
}
