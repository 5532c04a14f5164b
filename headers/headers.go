// SPDX-FileCopyrightText: Copyright 2026 CUI OSS
// SPDX-License-Identifier: Apache-2.0

package headers

import (
	"strings"

	"golang.org/x/net/http/httpguts"

	"github.com/cuioss/cui-http-sub001/pipeline"
	"github.com/cuioss/cui-http-sub001/validation"
)

// Validator validates header names and values by running the security
// pipelines and cross-checking the result against the RFC 7230 grammar as
// implemented by golang.org/x/net/http/httpguts, the same checks Go's
// HTTP/2 stack applies. Both layers must pass; the strictest verdict wins.
type Validator struct {
	names  *pipeline.Pipeline
	values *pipeline.Pipeline
}

// NewValidator builds a header validator on top of the factory's pipelines.
func NewValidator(factory *pipeline.Factory) *Validator {
	return &Validator{
		names:  factory.For(validation.HeaderName),
		values: factory.For(validation.HeaderValue),
	}
}

// ValidateName validates an HTTP header field name.
func (v *Validator) ValidateName(name string) error {
	if err := checkCRLF(name, validation.HeaderName); err != nil {
		return err
	}
	if _, err := v.names.Validate(&name); err != nil {
		return err
	}
	// The character stage admits any visible ASCII; field names are the
	// narrower RFC token grammar.
	if !httpguts.ValidHeaderFieldName(name) {
		return validation.NewError(validation.ProtocolViolation).
			ValidationType(validation.HeaderName).
			OriginalInput(name).
			Detail("header name is not a valid RFC 7230 token").
			MustBuild()
	}
	return nil
}

// ValidateValue validates an HTTP header field value.
func (v *Validator) ValidateValue(value string) error {
	if err := checkCRLF(value, validation.HeaderValue); err != nil {
		return err
	}
	if _, err := v.values.Validate(&value); err != nil {
		return err
	}
	if !httpguts.ValidHeaderFieldValue(value) {
		return validation.NewError(validation.ProtocolViolation).
			ValidationType(validation.HeaderValue).
			OriginalInput(value).
			Detail("header value violates the RFC 7230 field-content grammar").
			MustBuild()
	}
	return nil
}

// checkCRLF reports CR or LF explicitly: header splitting deserves its own
// failure type rather than a generic character rejection.
func checkCRLF(input string, t validation.ValidationType) error {
	if !strings.ContainsAny(input, "\r\n") {
		return nil
	}
	return validation.NewError(validation.CRLFInjection).
		ValidationType(t).
		OriginalInput(input).
		Detail("CR or LF in header component").
		MustBuild()
}
