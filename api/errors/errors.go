package errors

import (
	"fmt"
	"strings"
)

// MultiErrors collects per-field validation failures so every violation is
// reported to the caller, not just the first.
type MultiErrors struct {
	Errors map[string][]ErrorInfo
}

type ErrorInfo struct {
	Message  string
	RawError error
}

func NewMultiErrors() *MultiErrors {
	return &MultiErrors{
		Errors: make(map[string][]ErrorInfo),
	}
}

func (e *MultiErrors) Add(key, message string, err error) {
	e.Errors[key] = append(e.Errors[key], ErrorInfo{
		Message:  message,
		RawError: err,
	})
}

func (e *MultiErrors) HasErrors() bool {
	return len(e.Errors) > 0
}

// Details flattens the collected errors to a field → reason map for JSON
// responses.
func (e *MultiErrors) Details() map[string]string {
	details := make(map[string]string, len(e.Errors))
	for field, errs := range e.Errors {
		messages := make([]string, 0, len(errs))
		for _, err := range errs {
			messages = append(messages, err.Message)
		}
		details[field] = strings.Join(messages, "; ")
	}
	return details
}

func (e *MultiErrors) Error() string {
	var parts []string
	for field, errors := range e.Errors {
		for _, err := range errors {
			parts = append(parts, fmt.Sprintf("%s: %s", field, err.Message))
		}
	}
	return strings.Join(parts, " | ")
}
