// SPDX-FileCopyrightText: Copyright 2026 CUI OSS
// SPDX-License-Identifier: Apache-2.0

package pipeline

import (
	"fmt"

	"github.com/cuioss/cui-http-sub001/config"
	"github.com/cuioss/cui-http-sub001/validation"
)

// LengthStage enforces the configured byte-length limit for the component.
// It runs first so later stages never touch oversized input.
type LengthStage struct {
	cfg            *config.Config
	validationType validation.ValidationType
	limit          int
}

// NewLengthStage returns the length stage for the given component type.
func NewLengthStage(cfg *config.Config, t validation.ValidationType) *LengthStage {
	return &LengthStage{cfg: cfg, validationType: t, limit: limitFor(cfg, t)}
}

// limitFor maps a component type to its configured limit.
func limitFor(cfg *config.Config, t validation.ValidationType) int {
	switch t {
	case validation.URLPath:
		return cfg.MaxPathLength()
	case validation.ParameterName:
		return cfg.MaxParameterNameLength()
	case validation.ParameterValue:
		return cfg.MaxParameterValueLength()
	case validation.HeaderName:
		return cfg.MaxHeaderNameLength()
	case validation.HeaderValue:
		return cfg.MaxHeaderValueLength()
	case validation.CookieName:
		return cfg.MaxCookieNameLength()
	case validation.CookieValue:
		return cfg.MaxCookieValueLength()
	case validation.Body:
		return cfg.MaxBodyLength()
	default:
		return cfg.MaxBodyLength()
	}
}

// Validate implements validation.Validator.
func (s *LengthStage) Validate(input *string) (*string, error) {
	if input == nil {
		return nil, nil
	}
	if len(*input) <= s.limit {
		return input, nil
	}

	failure := validation.InputTooLong
	if s.validationType == validation.URLPath {
		failure = validation.PathTooLong
	}
	return nil, validation.NewError(failure).
		ValidationType(s.validationType).
		OriginalInput(*input).
		Detail(fmt.Sprintf("%d bytes exceed the limit of %d", len(*input), s.limit)).
		MustBuild()
}
