// SPDX-FileCopyrightText: Copyright 2026 CUI OSS
// SPDX-License-Identifier: Apache-2.0

package validation

// Category groups failure types for telemetry. Every FailureType belongs to
// exactly one Category.
type Category string

// The seven failure categories.
const (
	// CategoryEncoding covers percent-encoding and UTF-8 level failures.
	CategoryEncoding Category = "ENCODING_ISSUE"

	// CategoryTraversal covers dot-segment based path traversal attacks.
	CategoryTraversal Category = "PATH_TRAVERSAL_ATTACK"

	// CategoryCharacter covers injected or disallowed characters.
	CategoryCharacter Category = "CHARACTER_ATTACK"

	// CategorySize covers length and nesting limit violations.
	CategorySize Category = "SIZE_VIOLATION"

	// CategoryPattern covers known attack signature matches.
	CategoryPattern Category = "PATTERN_BASED"

	// CategoryStructural covers structurally malformed components.
	CategoryStructural Category = "STRUCTURAL_ISSUE"

	// CategoryProtocol covers RFC grammar violations.
	CategoryProtocol Category = "PROTOCOL_VIOLATION"
)

// AllCategories returns every Category in a stable order.
func AllCategories() []Category {
	return []Category{
		CategoryEncoding, CategoryTraversal, CategoryCharacter,
		CategorySize, CategoryPattern, CategoryStructural, CategoryProtocol,
	}
}

// FailureType is the closed taxonomy of validation failures. The taxonomy is
// shared by rejection (as the discriminator of ValidationError) and by
// telemetry (aggregated per Category in EventCounter).
type FailureType string

// Encoding issues.
const (
	// InvalidEncoding marks a malformed percent sequence or an overlong
	// UTF-8 byte sequence.
	InvalidEncoding FailureType = "INVALID_ENCODING"

	// DoubleEncoding marks a percent-encoded sequence whose decoded form is
	// itself percent-encoded.
	DoubleEncoding FailureType = "DOUBLE_ENCODING"

	// UnicodeNormalizationChanged marks input whose NFC form differs from
	// the decoded input, a known validation-bypass vector.
	UnicodeNormalizationChanged FailureType = "UNICODE_NORMALIZATION_CHANGED"

	// MalformedUTF8 marks decoded bytes that are not valid UTF-8.
	MalformedUTF8 FailureType = "MALFORMED_UTF8"
)

// Path traversal attacks.
const (
	// PathTraversalDetected marks dot-segment sequences that reference
	// parent directories, in literal or disguised form.
	PathTraversalDetected FailureType = "PATH_TRAVERSAL_DETECTED"

	// DirectoryEscapeAttempt marks a normalized path that escapes its root.
	DirectoryEscapeAttempt FailureType = "DIRECTORY_ESCAPE_ATTEMPT"
)

// Character attacks.
const (
	// NullByteInjection marks a raw or percent-encoded NUL byte.
	NullByteInjection FailureType = "NULL_BYTE_INJECTION"

	// ControlCharacters marks a disallowed ASCII control character.
	ControlCharacters FailureType = "CONTROL_CHARACTERS"

	// InvalidCharacter marks any other character outside the component's
	// allow-list.
	InvalidCharacter FailureType = "INVALID_CHARACTER"

	// CRLFInjection marks a carriage return or line feed inside a header,
	// the precondition for header splitting.
	CRLFInjection FailureType = "CRLF_INJECTION"
)

// Size violations.
const (
	// PathTooLong marks a URL path exceeding the configured maximum.
	PathTooLong FailureType = "PATH_TOO_LONG"

	// InputTooLong marks any non-path component exceeding its configured
	// maximum.
	InputTooLong FailureType = "INPUT_TOO_LONG"

	// ExcessiveNesting marks a path with too many segments or too much
	// retained depth.
	ExcessiveNesting FailureType = "EXCESSIVE_NESTING"

	// TooManyParameters marks a query string with more parameters than the
	// configured maximum.
	TooManyParameters FailureType = "TOO_MANY_PARAMETERS"
)

// Pattern based failures.
const (
	// SuspiciousPatternDetected marks a path targeting a well-known
	// sensitive location.
	SuspiciousPatternDetected FailureType = "SUSPICIOUS_PATTERN_DETECTED"

	// SuspiciousParameterName marks a parameter name associated with
	// injection probing.
	SuspiciousParameterName FailureType = "SUSPICIOUS_PARAMETER_NAME"

	// KnownAttackSignature marks a match against a caller-provided
	// signature catalog.
	KnownAttackSignature FailureType = "KNOWN_ATTACK_SIGNATURE"
)

// Structural issues.
const (
	// CookiePrefixViolation marks a __Host- or __Secure- cookie whose
	// attributes do not satisfy the prefix contract.
	CookiePrefixViolation FailureType = "COOKIE_PREFIX_VIOLATION"

	// MalformedCookie marks a Set-Cookie value that cannot be split into
	// name, value, and attributes.
	MalformedCookie FailureType = "MALFORMED_COOKIE"

	// InvalidStructure marks a component that is structurally unusable for
	// its ValidationType.
	InvalidStructure FailureType = "INVALID_STRUCTURE"
)

// Protocol violations.
const (
	// ProtocolViolation marks input that breaks the component's RFC grammar
	// without matching a more specific failure.
	ProtocolViolation FailureType = "PROTOCOL_VIOLATION"

	// UnsupportedValidationType marks a validation request for a type the
	// pipeline was not assembled for.
	UnsupportedValidationType FailureType = "UNSUPPORTED_VALIDATION_TYPE"
)

// failureInfo couples a failure type's category with its description.
type failureInfo struct {
	category    Category
	description string
}

var failureTable = map[FailureType]failureInfo{
	InvalidEncoding:             {CategoryEncoding, "malformed percent-encoding or overlong UTF-8 sequence"},
	DoubleEncoding:              {CategoryEncoding, "percent-encoding hidden inside percent-encoding"},
	UnicodeNormalizationChanged: {CategoryEncoding, "Unicode normalization changed the decoded input"},
	MalformedUTF8:               {CategoryEncoding, "decoded bytes are not valid UTF-8"},

	PathTraversalDetected:  {CategoryTraversal, "path traversal sequence detected"},
	DirectoryEscapeAttempt: {CategoryTraversal, "normalized path escapes its root"},

	NullByteInjection: {CategoryCharacter, "null byte injection attempt"},
	ControlCharacters: {CategoryCharacter, "disallowed control character"},
	InvalidCharacter:  {CategoryCharacter, "character outside the allowed set"},
	CRLFInjection:     {CategoryCharacter, "CR or LF inside a header component"},

	PathTooLong:       {CategorySize, "URL path exceeds the configured maximum length"},
	InputTooLong:      {CategorySize, "input exceeds the configured maximum length"},
	ExcessiveNesting:  {CategorySize, "path segment count or depth exceeds the ceiling"},
	TooManyParameters: {CategorySize, "query parameter count exceeds the configured maximum"},

	SuspiciousPatternDetected: {CategoryPattern, "path targets a well-known sensitive location"},
	SuspiciousParameterName:   {CategoryPattern, "parameter name matches an injection probe"},
	KnownAttackSignature:      {CategoryPattern, "input matches a configured attack signature"},

	CookiePrefixViolation: {CategoryStructural, "cookie prefix attribute contract violated"},
	MalformedCookie:       {CategoryStructural, "cookie cannot be parsed into name, value, and attributes"},
	InvalidStructure:      {CategoryStructural, "component structure is unusable for its type"},

	ProtocolViolation:         {CategoryProtocol, "component violates its RFC grammar"},
	UnsupportedValidationType: {CategoryProtocol, "no pipeline assembled for this validation type"},
}

// AllFailureTypes returns every FailureType in a stable order.
func AllFailureTypes() []FailureType {
	return []FailureType{
		InvalidEncoding, DoubleEncoding, UnicodeNormalizationChanged, MalformedUTF8,
		PathTraversalDetected, DirectoryEscapeAttempt,
		NullByteInjection, ControlCharacters, InvalidCharacter, CRLFInjection,
		PathTooLong, InputTooLong, ExcessiveNesting, TooManyParameters,
		SuspiciousPatternDetected, SuspiciousParameterName, KnownAttackSignature,
		CookiePrefixViolation, MalformedCookie, InvalidStructure,
		ProtocolViolation, UnsupportedValidationType,
	}
}

// Category returns the single telemetry category the failure belongs to.
func (f FailureType) Category() Category {
	return failureTable[f].category
}

// Description returns a short human-readable description of the failure.
func (f FailureType) Description() string {
	return failureTable[f].description
}

// String returns the wire-stable name of the failure type.
func (f FailureType) String() string {
	return string(f)
}
