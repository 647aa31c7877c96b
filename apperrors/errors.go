package apperrors

import "fmt"

var (
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrUnauthenticated = fmt.Errorf("not authenticated")
	ErrForbidden       = fmt.Errorf("forbidden")
	ErrNotFound        = fmt.Errorf("not found")
	ErrConflict        = fmt.Errorf("conflict")
)
