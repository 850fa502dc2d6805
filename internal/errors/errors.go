// Package errors provides the structured error type shared by the
// sanitizer, dialect catalog, and renderer.
//
// Every failure surfaced to a caller is a *RoboError carrying a stable
// code from the error taxonomy plus the offending field, so callers can
// correct input without inspecting internals.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents different categories of errors.
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeSecurity   ErrorType = "security"
	ErrorTypeTemplate   ErrorType = "template"
	ErrorTypeCatalog    ErrorType = "catalog"
	ErrorTypeResource   ErrorType = "resource"
	ErrorTypeInternal   ErrorType = "internal"
)

// Error taxonomy codes. These are part of the tool contract and must stay
// stable across releases.
const (
	CodeInvalidURL                = "ERR_INVALID_URL"
	CodeValueTooLong              = "ERR_VALUE_TOO_LONG"
	CodeValueTooShort             = "ERR_VALUE_TOO_SHORT"
	CodeUnsafeCredentialCharacter = "ERR_UNSAFE_CREDENTIAL_CHARACTER"
	CodeInvalidIdentifier         = "ERR_INVALID_IDENTIFIER"
	CodeUnsupportedMethod         = "ERR_UNSUPPORTED_METHOD"
	CodePayloadTooLarge           = "ERR_PAYLOAD_TOO_LARGE"
	CodeMissingRoleMapping        = "ERR_MISSING_ROLE_MAPPING"
	CodeUnknownTemplateKind       = "ERR_UNKNOWN_TEMPLATE_KIND"
	CodeMissingRequiredParameter  = "ERR_MISSING_REQUIRED_PARAMETER"
	CodeInternal                  = "ERR_INTERNAL"
)

// RoboError is a structured error with a stable code and field context.
type RoboError struct {
	Type    ErrorType
	Code    string
	Message string
	Field   string
	Cause   error
}

// Error implements the error interface.
func (e *RoboError) Error() string {
	var parts []string

	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Code))
	}

	if e.Field != "" {
		parts = append(parts, "field:"+e.Field)
	}

	parts = append(parts, e.Message)

	result := strings.Join(parts, " ")

	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}

	return result
}

// Unwrap returns the underlying cause error.
func (e *RoboError) Unwrap() error {
	return e.Cause
}

// Is implements error comparison by type and code.
func (e *RoboError) Is(target error) bool {
	var t *RoboError
	if errors.As(target, &t) {
		return e.Type == t.Type && e.Code == t.Code
	}

	return false
}

// WithField attaches the offending field name.
func (e *RoboError) WithField(field string) *RoboError {
	e.Field = field

	return e
}

// WithCause attaches the underlying cause.
func (e *RoboError) WithCause(cause error) *RoboError {
	e.Cause = cause

	return e
}

// Error creation functions

// NewValidationError creates a validation error with the given code.
func NewValidationError(code, message string) *RoboError {
	return &RoboError{
		Type:    ErrorTypeValidation,
		Code:    code,
		Message: message,
	}
}

// NewSecurityError creates a security error. Security errors mark inputs
// that would break out of the generated artifact's quoting/escaping rules.
func NewSecurityError(code, message string) *RoboError {
	return &RoboError{
		Type:    ErrorTypeSecurity,
		Code:    code,
		Message: message,
	}
}

// NewTemplateError creates a renderer error.
func NewTemplateError(code, message string) *RoboError {
	return &RoboError{
		Type:    ErrorTypeTemplate,
		Code:    code,
		Message: message,
	}
}

// NewCatalogError creates a catalog-authoring error. The only such error,
// ERR_MISSING_ROLE_MAPPING, is startup-fatal.
func NewCatalogError(code, message string) *RoboError {
	return &RoboError{
		Type:    ErrorTypeCatalog,
		Code:    code,
		Message: message,
	}
}

// NewResourceError creates a resource-protection error (oversized payloads).
func NewResourceError(code, message string) *RoboError {
	return &RoboError{
		Type:    ErrorTypeResource,
		Code:    code,
		Message: message,
	}
}

// NewInternalError creates an internal error.
func NewInternalError(message string, cause error) *RoboError {
	return &RoboError{
		Type:    ErrorTypeInternal,
		Code:    CodeInternal,
		Message: message,
		Cause:   cause,
	}
}

// CodeOf returns the taxonomy code of err, or ERR_INTERNAL for errors that
// did not originate in the core.
func CodeOf(err error) string {
	var re *RoboError
	if errors.As(err, &re) {
		return re.Code
	}

	return CodeInternal
}

// IsCode reports whether err carries the given taxonomy code.
func IsCode(err error, code string) bool {
	var re *RoboError
	if errors.As(err, &re) {
		return re.Code == code
	}

	return false
}

// IsSecurityError checks if an error is security-related.
func IsSecurityError(err error) bool {
	var re *RoboError
	if errors.As(err, &re) {
		return re.Type == ErrorTypeSecurity
	}

	return false
}

// Helper constructors for the common taxonomy entries.

// ErrInvalidURL creates an invalid URL error.
func ErrInvalidURL(detail string) *RoboError {
	return NewValidationError(CodeInvalidURL, "invalid URL: "+detail).WithField("url")
}

// ErrValueTooLong creates a length-cap error for the named field.
func ErrValueTooLong(field string, limit int) *RoboError {
	return NewValidationError(
		CodeValueTooLong,
		fmt.Sprintf("value exceeds maximum length of %d characters", limit),
	).WithField(field)
}

// ErrValueTooShort creates an empty-value error for the named field.
func ErrValueTooShort(field string) *RoboError {
	return NewValidationError(
		CodeValueTooShort,
		"value cannot be empty",
	).WithField(field)
}

// ErrUnsafeCredentialCharacter creates an unescapable-character error.
func ErrUnsafeCredentialCharacter(field string, r rune) *RoboError {
	return NewSecurityError(
		CodeUnsafeCredentialCharacter,
		fmt.Sprintf("credential contains character %q which cannot be safely escaped", r),
	).WithField(field)
}

// ErrInvalidIdentifier creates an identifier charset/allow-list error.
func ErrInvalidIdentifier(field, value string) *RoboError {
	return NewValidationError(
		CodeInvalidIdentifier,
		"invalid identifier: "+value,
	).WithField(field)
}

// ErrUnsupportedMethod creates an HTTP method error.
func ErrUnsupportedMethod(method string) *RoboError {
	return NewValidationError(
		CodeUnsupportedMethod,
		"unsupported HTTP method: "+method,
	).WithField("method")
}

// ErrPayloadTooLarge creates an oversized-payload error.
func ErrPayloadTooLarge(size, limit int) *RoboError {
	return NewResourceError(
		CodePayloadTooLarge,
		fmt.Sprintf("payload of %d characters exceeds limit of %d", size, limit),
	)
}

// ErrMissingRoleMapping creates the startup-fatal catalog error.
func ErrMissingRoleMapping(dialect, role string) *RoboError {
	return NewCatalogError(
		CodeMissingRoleMapping,
		fmt.Sprintf("dialect %q has no mapping for role %q", dialect, role),
	)
}

// ErrUnknownTemplateKind creates an unknown-kind renderer error.
func ErrUnknownTemplateKind(kind string) *RoboError {
	return NewTemplateError(
		CodeUnknownTemplateKind,
		"unknown template kind: "+kind,
	)
}

// ErrMissingRequiredParameter creates a missing-substitution-point error.
func ErrMissingRequiredParameter(param string) *RoboError {
	return NewTemplateError(
		CodeMissingRequiredParameter,
		"missing required parameter: "+param,
	).WithField(param)
}
