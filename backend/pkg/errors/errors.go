package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorType represents the category of error
type ErrorType string

const (
	// ErrorTypeGraph represents relationship graph errors
	ErrorTypeGraph ErrorType = "graph"
	// ErrorTypeRecords represents record store lookup errors
	ErrorTypeRecords ErrorType = "records"
	// ErrorTypeChart represents chart rendering errors
	ErrorTypeChart ErrorType = "chart"
	// ErrorTypeExport represents Neo4j export errors
	ErrorTypeExport ErrorType = "export"
	// ErrorTypeConfig represents configuration errors
	ErrorTypeConfig ErrorType = "config"
)

// BaseError is the base error type with common fields
type BaseError struct {
	Type      ErrorType
	Message   string
	Timestamp time.Time
	Err       error // Wrapped error
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the wrapped error for error unwrapping
func (e *BaseError) Unwrap() error {
	return e.Err
}

// NewBaseError creates a new base error
func NewBaseError(errType ErrorType, message string, err error) *BaseError {
	return &BaseError{
		Type:      errType,
		Message:   message,
		Timestamp: time.Now(),
		Err:       err,
	}
}

// Graph Errors

// ErrCompanyNotFound is returned when a company is not a node of the relationship graph
type ErrCompanyNotFound struct {
	*BaseError
	Company string
}

func NewCompanyNotFound(company string) *ErrCompanyNotFound {
	return &ErrCompanyNotFound{
		BaseError: NewBaseError(ErrorTypeGraph, fmt.Sprintf("company not in graph: %s", company), nil),
		Company:   company,
	}
}

// Record Errors

// ErrCompanyDataNotFound is returned when a company has no financial or no ESG rows
type ErrCompanyDataNotFound struct {
	*BaseError
	Company string
}

func NewCompanyDataNotFound(company string) *ErrCompanyDataNotFound {
	return &ErrCompanyDataNotFound{
		BaseError: NewBaseError(ErrorTypeRecords, fmt.Sprintf("no financial/ESG records: %s", company), nil),
		Company:   company,
	}
}

// Chart Errors

// ErrChartRenderFailed is returned when plotting or encoding a chart fails
type ErrChartRenderFailed struct {
	*BaseError
	Company string
}

func NewChartRenderFailed(company string, err error) *ErrChartRenderFailed {
	return &ErrChartRenderFailed{
		BaseError: NewBaseError(ErrorTypeChart, fmt.Sprintf("failed to render chart for %s", company), err),
		Company:   company,
	}
}

// Export Errors

// ErrExportFailed is returned when mirroring the graph into Neo4j fails
type ErrExportFailed struct {
	*BaseError
	Stage string
}

func NewExportFailed(stage string, err error) *ErrExportFailed {
	return &ErrExportFailed{
		BaseError: NewBaseError(ErrorTypeExport, fmt.Sprintf("export failed at %s", stage), err),
		Stage:     stage,
	}
}

// Config Errors

// ErrConfigMissingRequired is returned when a required config value is missing
type ErrConfigMissingRequired struct {
	*BaseError
	Field string
}

func NewConfigMissingRequired(field string) *ErrConfigMissingRequired {
	return &ErrConfigMissingRequired{
		BaseError: NewBaseError(ErrorTypeConfig, fmt.Sprintf("missing required config: %s", field), nil),
		Field:     field,
	}
}

// ErrConfigValidationFailed is returned when a config value is present but unusable
type ErrConfigValidationFailed struct {
	*BaseError
	Field  string
	Reason string
}

func NewConfigValidationFailed(field, reason string) *ErrConfigValidationFailed {
	return &ErrConfigValidationFailed{
		BaseError: NewBaseError(ErrorTypeConfig, fmt.Sprintf("config validation failed: %s - %s", field, reason), nil),
		Field:     field,
		Reason:    reason,
	}
}

// Helper functions

// IsErrorType checks if an error, or any error it wraps, is of a specific type
func IsErrorType(err error, errType ErrorType) bool {
	for err != nil {
		if baseErr := asBaseError(err); baseErr != nil && baseErr.Type == errType {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}

// As is errors.As, re-exported so callers importing this package need not
// alias the standard one
func As(err error, target any) bool {
	return errors.As(err, target)
}

// IsNotFound reports whether err is one of the lookup misses that map to a 404
func IsNotFound(err error) bool {
	var companyErr *ErrCompanyNotFound
	var dataErr *ErrCompanyDataNotFound
	return errors.As(err, &companyErr) || errors.As(err, &dataErr)
}

func asBaseError(err error) *BaseError {
	switch e := err.(type) {
	case *BaseError:
		return e
	case *ErrCompanyNotFound:
		return e.BaseError
	case *ErrCompanyDataNotFound:
		return e.BaseError
	case *ErrChartRenderFailed:
		return e.BaseError
	case *ErrExportFailed:
		return e.BaseError
	case *ErrConfigMissingRequired:
		return e.BaseError
	case *ErrConfigValidationFailed:
		return e.BaseError
	}
	return nil
}
