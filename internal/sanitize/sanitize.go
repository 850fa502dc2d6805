// Package sanitize validates and normalizes caller-supplied values before
// they reach the dialect catalog or the template renderer.
//
// This package is the single trust boundary of the core: every value
// substituted into a generated artifact must be a Value produced here.
// Value has no exported fields and no exported constructor, so no code
// path can smuggle unvalidated text into a template.
package sanitize

import (
	"net/url"
	"strings"
	"unicode"

	"robogen/internal/errors"
)

// Length caps for each value class.
const (
	MaxURLLength        = 2048
	MaxCredentialLength = 256
	MaxFileNameLength   = 255
	MaxCodeTextLength   = 100000
)

// Rule identifies the validation rule that produced a Value.
type Rule string

const (
	RuleURL        Rule = "url"
	RuleCredential Rule = "credential"
	RuleIdentifier Rule = "identifier"
	RuleFileName   Rule = "filename"
	RuleMethod     Rule = "method"
	RuleFreeText   Rule = "freetext"
	// RuleCatalog tags values that originate from the process-local
	// selector catalog rather than from a caller. Catalog locators are
	// authored in-tree and verified at startup.
	RuleCatalog Rule = "catalog"
)

// Value is an input value proven to satisfy a specific safety rule.
// The zero Value is invalid and renders as the empty string.
type Value struct {
	text string
	rule Rule
}

// String returns the normalized text.
func (v Value) String() string { return v.text }

// Rule returns the rule that validated this value.
func (v Value) Rule() Rule { return v.rule }

// IsZero reports whether the value was never produced by a validation rule.
func (v Value) IsZero() bool { return v.rule == "" }

// Trusted wraps a process-local catalog string as a Value. It must only be
// used for locator expressions and other constants compiled into the
// binary, never for caller input.
func Trusted(s string) Value {
	return Value{text: s, rule: RuleCatalog}
}

// URL validates an absolute http/https URL. Surrounding whitespace is
// trimmed; everything else is accepted or rejected unchanged.
func URL(field, raw string) (Value, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Value{}, errors.ErrInvalidURL("URL cannot be empty").WithField(field)
	}
	if len(trimmed) > MaxURLLength {
		return Value{}, errors.ErrValueTooLong(field, MaxURLLength)
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return Value{}, errors.ErrInvalidURL(trimmed).WithField(field).WithCause(err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return Value{}, errors.ErrInvalidURL("scheme must be http or https, got " + parsed.Scheme + "://").WithField(field)
	}
	if parsed.Host == "" {
		return Value{}, errors.ErrInvalidURL("URL must have a hostname").WithField(field)
	}

	// Spaces and control characters inside a URL are never legitimate and
	// would also break the space-separated cell format of the output.
	for _, r := range trimmed {
		if r == ' ' || unicode.IsControl(r) {
			return Value{}, errors.ErrInvalidURL("URL contains whitespace or control characters").WithField(field)
		}
	}

	// Braces are not URL characters (RFC 3986), and a brace after a sigil
	// would be expanded as a variable reference once embedded in a template.
	if strings.ContainsAny(trimmed, "{}") {
		return Value{}, errors.ErrInvalidURL("URL contains brace characters").WithField(field)
	}

	return Value{text: trimmed, rule: RuleURL}, nil
}

// Credential validates a username or password and escapes every
// Robot-significant character so common passwords with symbols still work.
// Only characters that cannot be represented safely (control characters,
// including tab and newline) cause a hard failure.
func Credential(field, raw string) (Value, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Value{}, errors.ErrValueTooShort(field)
	}
	if len(trimmed) > MaxCredentialLength {
		return Value{}, errors.ErrValueTooLong(field, MaxCredentialLength)
	}

	escaped, err := Escape(field, trimmed)
	if err != nil {
		return Value{}, err
	}

	return Value{text: escaped, rule: RuleCredential}, nil
}

// Identifier validates a value against a fixed allow-list, case-insensitively,
// and returns the canonical entry.
func Identifier(field, raw string, allowed []string) (Value, error) {
	trimmed := strings.TrimSpace(raw)
	for _, candidate := range allowed {
		if strings.EqualFold(trimmed, candidate) {
			return Value{text: candidate, rule: RuleIdentifier}, nil
		}
	}

	return Value{}, errors.ErrInvalidIdentifier(field, trimmed)
}

// FileName validates a file name against an alphanumeric+`_`+`.`+`-`
// charset. It never truncates: over-long names are rejected outright.
func FileName(field, raw string) (Value, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Value{}, errors.ErrInvalidIdentifier(field, trimmed)
	}
	if len(trimmed) > MaxFileNameLength {
		return Value{}, errors.ErrValueTooLong(field, MaxFileNameLength)
	}
	for _, r := range trimmed {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_' || r == '.' || r == '-':
		default:
			return Value{}, errors.ErrInvalidIdentifier(field, trimmed)
		}
	}
	// Reject names that are only dots; "." and ".." are path navigation.
	if strings.Trim(trimmed, ".") == "" {
		return Value{}, errors.ErrInvalidIdentifier(field, trimmed)
	}

	return Value{text: trimmed, rule: RuleFileName}, nil
}

// Endpoint validates an API endpoint path. Unlike URL it permits relative
// paths, but Robot-significant characters are escaped and control
// characters rejected so the value stays a single literal cell.
func Endpoint(field, raw string) (Value, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Value{}, errors.ErrInvalidIdentifier(field, trimmed)
	}
	if len(trimmed) > MaxURLLength {
		return Value{}, errors.ErrValueTooLong(field, MaxURLLength)
	}

	escaped, err := Escape(field, trimmed)
	if err != nil {
		return Value{}, err
	}

	return Value{text: escaped, rule: RuleFreeText}, nil
}

// httpMethods is the closed set of supported methods.
var httpMethods = []string{"GET", "POST", "PUT", "DELETE", "PATCH"}

// Method validates and case-normalizes an HTTP method.
func Method(raw string) (Value, error) {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	for _, m := range httpMethods {
		if normalized == m {
			return Value{text: m, rule: RuleMethod}, nil
		}
	}

	return Value{}, errors.ErrUnsupportedMethod(raw)
}

// CodeText bounds the size of free-form test-language text supplied to the
// syntax validator. Content is unrestricted; malformed test text is the
// validator's expected input, not an error.
func CodeText(raw string, limit int) (Value, error) {
	if limit <= 0 {
		limit = MaxCodeTextLength
	}
	if len(raw) > limit {
		return Value{}, errors.ErrPayloadTooLarge(len(raw), limit)
	}

	return Value{text: raw, rule: RuleFreeText}, nil
}
