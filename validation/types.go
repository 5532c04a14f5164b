// SPDX-FileCopyrightText: Copyright 2026 CUI OSS
// SPDX-License-Identifier: Apache-2.0

package validation

// ValidationType identifies the HTTP protocol component a value was taken
// from. The character rules, size limits, and pipeline stages applied to a
// value all depend on its type.
type ValidationType string

// The closed set of validatable HTTP protocol components.
const (
	// URLPath is the path component of a request URI.
	URLPath ValidationType = "URL_PATH"

	// ParameterName is the name of a query string parameter.
	ParameterName ValidationType = "PARAMETER_NAME"

	// ParameterValue is the value of a query string parameter.
	ParameterValue ValidationType = "PARAMETER_VALUE"

	// HeaderName is the field name of an HTTP header.
	HeaderName ValidationType = "HEADER_NAME"

	// HeaderValue is the field value of an HTTP header.
	HeaderValue ValidationType = "HEADER_VALUE"

	// CookieName is the name of an HTTP cookie.
	CookieName ValidationType = "COOKIE_NAME"

	// CookieValue is the value of an HTTP cookie.
	CookieValue ValidationType = "COOKIE_VALUE"

	// Body is an HTTP message body treated as text.
	Body ValidationType = "BODY"
)

// AllTypes returns every ValidationType. The returned slice is a fresh copy
// and may be modified by the caller.
func AllTypes() []ValidationType {
	return []ValidationType{
		URLPath, ParameterName, ParameterValue,
		HeaderName, HeaderValue, CookieName, CookieValue, Body,
	}
}

// SupportsPercentEncoding reports whether percent-encoded octets are part of
// the component's grammar. Only URL paths and query parameters carry
// percent-encoding at the HTTP protocol layer; a literal '%' in a header or
// cookie is just a character.
func (t ValidationType) SupportsPercentEncoding() bool {
	switch t {
	case URLPath, ParameterName, ParameterValue:
		return true
	default:
		return false
	}
}

// SupportsUnicode reports whether octets above 0x7F are acceptable for this
// component at all. Header values may carry opaque non-ASCII payloads and
// bodies are arbitrary text; every other component is ASCII-only per its RFC.
func (t ValidationType) SupportsUnicode() bool {
	return t == Body || t == HeaderValue
}

// IsHeader reports whether the component is a header name or value. Header
// contexts collapse character failures to a single failure type.
func (t ValidationType) IsHeader() bool {
	return t == HeaderName || t == HeaderValue
}

// IsCookie reports whether the component is a cookie name or value.
func (t ValidationType) IsCookie() bool {
	return t == CookieName || t == CookieValue
}

// IsPathLike reports whether dot-segment normalization applies to the
// component.
func (t ValidationType) IsPathLike() bool {
	return t == URLPath
}

// String returns the wire-stable name of the type.
func (t ValidationType) String() string {
	return string(t)
}
