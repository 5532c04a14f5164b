// SPDX-FileCopyrightText: Copyright 2026 CUI OSS
// SPDX-License-Identifier: Apache-2.0

package validation

import (
	"fmt"
	"strconv"
)

// maxLoggedInput caps how much of the offending input is reproduced in error
// messages. The full original input stays available via OriginalInput.
const maxLoggedInput = 256

// ValidationError is the single error type raised by every validator in this
// module. It is an immutable value discriminated by FailureType; construct it
// with NewError, which fails fast when a required field is missing.
type ValidationError struct {
	failureType    FailureType
	validationType ValidationType
	originalInput  string
	sanitizedInput string
	haveSanitized  bool
	detail         string
	cause          error
}

// ErrorBuilder assembles a ValidationError. The zero value is not usable;
// obtain one from NewError.
type ErrorBuilder struct {
	err ValidationError

	haveFailure bool
	haveType    bool
	haveInput   bool
}

// NewError starts building a ValidationError for the given failure.
func NewError(failureType FailureType) *ErrorBuilder {
	b := &ErrorBuilder{}
	b.err.failureType = failureType
	b.haveFailure = failureType != ""
	return b
}

// ValidationType records the component type the input was validated as.
// Required.
func (b *ErrorBuilder) ValidationType(t ValidationType) *ErrorBuilder {
	b.err.validationType = t
	b.haveType = t != ""
	return b
}

// OriginalInput records the untouched input that was rejected. Required.
// An empty string is a legal original input.
func (b *ErrorBuilder) OriginalInput(input string) *ErrorBuilder {
	b.err.originalInput = input
	b.haveInput = true
	return b
}

// SanitizedInput records the partially processed form of the input, for
// failures raised after a transformation stage (e.g. the decoded string that
// changed under normalization). Optional.
func (b *ErrorBuilder) SanitizedInput(input string) *ErrorBuilder {
	b.err.sanitizedInput = input
	b.err.haveSanitized = true
	return b
}

// Detail records a human-readable elaboration of the failure. Optional.
func (b *ErrorBuilder) Detail(detail string) *ErrorBuilder {
	b.err.detail = detail
	return b
}

// Cause records the lower-level error that triggered the failure. Optional.
func (b *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	b.err.cause = cause
	return b
}

// Build returns the completed error. It fails if the failure type, the
// validation type, or the original input was never supplied; a half-built
// error must not escape.
func (b *ErrorBuilder) Build() (*ValidationError, error) {
	switch {
	case !b.haveFailure:
		return nil, fmt.Errorf("validation error requires a failure type")
	case !b.haveType:
		return nil, fmt.Errorf("validation error requires a validation type")
	case !b.haveInput:
		return nil, fmt.Errorf("validation error requires the original input")
	}
	err := b.err
	return &err, nil
}

// MustBuild is Build for callers that have supplied all required fields
// statically. It panics on a construction error.
func (b *ErrorBuilder) MustBuild() *ValidationError {
	err, buildErr := b.Build()
	if buildErr != nil {
		panic(buildErr)
	}
	return err
}

// FailureType returns the taxonomy discriminator.
func (e *ValidationError) FailureType() FailureType {
	return e.failureType
}

// Category returns the telemetry category of the failure.
func (e *ValidationError) Category() Category {
	return e.failureType.Category()
}

// ValidationType returns the component type the input was validated as.
func (e *ValidationError) ValidationType() ValidationType {
	return e.validationType
}

// OriginalInput returns the untouched rejected input.
func (e *ValidationError) OriginalInput() string {
	return e.originalInput
}

// SanitizedInput returns the partially processed input and whether one was
// recorded.
func (e *ValidationError) SanitizedInput() (string, bool) {
	return e.sanitizedInput, e.haveSanitized
}

// Detail returns the optional elaboration, or "".
func (e *ValidationError) Detail() string {
	return e.detail
}

// Error renders the failure for logging. The offending input is truncated
// and control characters are escaped so the message is always safe to write
// to a terminal or log sink.
func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s [%s]: %s: input %s",
		e.failureType, e.validationType, e.failureType.Description(),
		sanitizeForLog(e.originalInput))
	if e.haveSanitized {
		msg += fmt.Sprintf(", sanitized %s", sanitizeForLog(e.sanitizedInput))
	}
	if e.detail != "" {
		msg += ": " + e.detail
	}
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	return msg
}

// Unwrap returns the recorded cause for errors.Is and errors.As traversal.
func (e *ValidationError) Unwrap() error {
	return e.cause
}

// sanitizeForLog quotes the input, escaping control and non-printable
// characters, and truncates it to maxLoggedInput runes.
func sanitizeForLog(input string) string {
	runes := []rune(input)
	if len(runes) > maxLoggedInput {
		return strconv.Quote(string(runes[:maxLoggedInput])) + "..."
	}
	return strconv.Quote(input)
}
