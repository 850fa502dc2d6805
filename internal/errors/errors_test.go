package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorFormatting(t *testing.T) {
	err := ErrValueTooLong("username", 256)
	assert.Equal(t, "[ERR_VALUE_TOO_LONG] field:username value exceeds maximum length of 256 characters", err.Error())

	bare := NewValidationError(CodeInvalidURL, "invalid URL: nope")
	assert.Equal(t, "[ERR_INVALID_URL] invalid URL: nope", bare.Error())
}

func TestErrorCause(t *testing.T) {
	cause := stderrors.New("unexpected EOF")
	err := NewInternalError("template execution failed", cause)

	assert.ErrorContains(t, err, "unexpected EOF")
	assert.Equal(t, cause, err.Unwrap())
	assert.True(t, stderrors.Is(err, cause))
}

func TestErrorIsMatchesTypeAndCode(t *testing.T) {
	a := ErrInvalidURL("first")
	b := ErrInvalidURL("second")
	assert.True(t, stderrors.Is(a, b), "same type and code must match regardless of message")

	c := ErrValueTooLong("url", 2048)
	assert.False(t, stderrors.Is(a, c))
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, CodeUnsupportedMethod, CodeOf(ErrUnsupportedMethod("TRACE")))
	assert.Equal(t, CodeInternal, CodeOf(stderrors.New("plain")))

	// Wrapped core errors still expose their code.
	wrapped := fmt.Errorf("tool call: %w", ErrPayloadTooLarge(200000, 100000))
	assert.Equal(t, CodePayloadTooLarge, CodeOf(wrapped))
	assert.True(t, IsCode(wrapped, CodePayloadTooLarge))
	assert.False(t, IsCode(wrapped, CodeInvalidURL))
}

func TestIsSecurityError(t *testing.T) {
	assert.True(t, IsSecurityError(ErrUnsafeCredentialCharacter("password", '\n')))
	assert.False(t, IsSecurityError(ErrInvalidURL("no scheme")))
	assert.False(t, IsSecurityError(stderrors.New("plain")))
}

func TestConstructorFields(t *testing.T) {
	tests := []struct {
		err       *RoboError
		wantCode  string
		wantType  ErrorType
		wantField string
	}{
		{ErrInvalidURL("x"), CodeInvalidURL, ErrorTypeValidation, "url"},
		{ErrValueTooLong("password", 256), CodeValueTooLong, ErrorTypeValidation, "password"},
		{ErrValueTooShort("username"), CodeValueTooShort, ErrorTypeValidation, "username"},
		{ErrUnsafeCredentialCharacter("password", '\t'), CodeUnsafeCredentialCharacter, ErrorTypeSecurity, "password"},
		{ErrInvalidIdentifier("test_data_file", "../x"), CodeInvalidIdentifier, ErrorTypeValidation, "test_data_file"},
		{ErrUnsupportedMethod("TRACE"), CodeUnsupportedMethod, ErrorTypeValidation, "method"},
		{ErrPayloadTooLarge(2, 1), CodePayloadTooLarge, ErrorTypeResource, ""},
		{ErrMissingRoleMapping("generic", "logout_button"), CodeMissingRoleMapping, ErrorTypeCatalog, ""},
		{ErrUnknownTemplateKind("responsive_test"), CodeUnknownTemplateKind, ErrorTypeTemplate, ""},
		{ErrMissingRequiredParameter("url"), CodeMissingRequiredParameter, ErrorTypeTemplate, "url"},
	}

	for _, tt := range tests {
		t.Run(tt.wantCode, func(t *testing.T) {
			require.NotNil(t, tt.err)
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.Equal(t, tt.wantType, tt.err.Type)
			assert.Equal(t, tt.wantField, tt.err.Field)
		})
	}
}
