package domain

import "fmt"

// APIError is the typed form of a non-2xx backend response.
// Code carries the backend's machine code when the body had one.
type APIError struct {
	Status  int
	Code    string
	Message string
	Details interface{}
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("backend: %d %s: %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("backend: %d: %s", e.Status, e.Message)
}

func (e *APIError) IsUnauthorized() bool {
	return e.Status == 401
}
