// SPDX-FileCopyrightText: Copyright 2026 CUI OSS
// SPDX-License-Identifier: Apache-2.0

package httperr

import (
	"errors"
	"net/http"

	"github.com/cuioss/cui-http-sub001/validation"
)

// CodedError wraps an error with an HTTP status code. This allows errors to
// carry their intended HTTP response code through the call stack, enabling
// centralized error handling in API handlers.
type CodedError struct {
	err  error
	code int
}

// Error implements the error interface.
func (e *CodedError) Error() string {
	return e.err.Error()
}

// Unwrap returns the underlying error for errors.Is() and errors.As()
// compatibility.
func (e *CodedError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code associated with this error.
func (e *CodedError) HTTPCode() int {
	return e.code
}

// WithCode wraps an error with an HTTP status code. The returned error
// implements Unwrap() for use with errors.Is() and errors.As(). If err is
// nil, WithCode returns nil.
func WithCode(err error, code int) error {
	if err == nil {
		return nil
	}
	return &CodedError{err: err, code: code}
}

// New creates a new error with the given message and HTTP status code.
func New(message string, code int) error {
	return &CodedError{err: errors.New(message), code: code}
}

// Code extracts the HTTP status code from an error. It unwraps the error
// chain looking for a CodedError, then for a *validation.ValidationError
// (mapped via StatusFor). If neither is found, it returns
// http.StatusInternalServerError.
func Code(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var coded *CodedError
	if errors.As(err, &coded) {
		return coded.code
	}

	var verr *validation.ValidationError
	if errors.As(err, &verr) {
		return StatusFor(verr)
	}

	return http.StatusInternalServerError
}

// StatusFor maps a validation failure to the HTTP status a front-facing
// handler should answer with. Oversized paths get 414 and oversized headers
// 431, per their dedicated status codes; every other rejection is a plain
// 400.
func StatusFor(verr *validation.ValidationError) int {
	switch verr.FailureType() {
	case validation.PathTooLong:
		return http.StatusRequestURITooLong
	case validation.InputTooLong:
		if verr.ValidationType().IsHeader() {
			return http.StatusRequestHeaderFieldsTooLarge
		}
		return http.StatusBadRequest
	default:
		return http.StatusBadRequest
	}
}

// Wrap attaches the mapped status code to a validation error, producing a
// CodedError ready for centralized handling. Non-validation errors get
// http.StatusInternalServerError. If err is nil, Wrap returns nil.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	var verr *validation.ValidationError
	if errors.As(err, &verr) {
		return WithCode(err, StatusFor(verr))
	}
	return WithCode(err, http.StatusInternalServerError)
}
