// SPDX-FileCopyrightText: Copyright 2026 CUI OSS
// SPDX-License-Identifier: Apache-2.0

package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/cuioss/cui-http-sub001/headers"
	"github.com/cuioss/cui-http-sub001/httperr"
	"github.com/cuioss/cui-http-sub001/pipeline"
	"github.com/cuioss/cui-http-sub001/validation"
)

// handler applies the security pipelines to every request before it reaches
// the wrapped handler, and recovers panics so a single request cannot take
// the server down.
type handler struct {
	next            http.Handler
	factory         *pipeline.Factory
	headerValidator *headers.Validator
	logger          *slog.Logger
}

// Option configures the middleware.
type Option func(*handler)

// WithLogger logs each rejected request and recovered panic.
func WithLogger(logger *slog.Logger) Option {
	return func(h *handler) {
		h.logger = logger
	}
}

// Validate wraps next so that the request path, query parameters, headers,
// and cookies pass the security pipelines before the handler runs. Rejected
// requests are answered with the status code mapped by httperr; the
// offending input is never echoed to the client.
func Validate(next http.Handler, factory *pipeline.Factory, opts ...Option) http.Handler {
	h := &handler{
		next:            next,
		factory:         factory,
		headerValidator: headers.NewValidator(factory),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ServeHTTP implements http.Handler.
func (h *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if recovered := recover(); recovered != nil {
			if h.logger != nil {
				h.logger.Error("handler panic recovered", "panic", fmt.Sprint(recovered))
			}
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
	}()

	if err := h.validateRequest(r); err != nil {
		h.reject(w, err)
		return
	}

	h.next.ServeHTTP(w, r)
}

// validateRequest checks every untrusted protocol component of the request,
// stopping at the first rejection.
func (h *handler) validateRequest(r *http.Request) error {
	path := r.URL.EscapedPath()
	if _, err := h.factory.For(validation.URLPath).Validate(&path); err != nil {
		return err
	}

	if err := h.validateQuery(r.URL.RawQuery); err != nil {
		return err
	}

	for name, values := range r.Header {
		if err := h.headerValidator.ValidateName(name); err != nil {
			return err
		}
		for _, value := range values {
			if err := h.headerValidator.ValidateValue(value); err != nil {
				return err
			}
		}
	}

	nameChecks := h.factory.For(validation.CookieName)
	valueChecks := h.factory.For(validation.CookieValue)
	for _, c := range r.Cookies() {
		if _, err := nameChecks.Validate(&c.Name); err != nil {
			return err
		}
		if _, err := valueChecks.Validate(&c.Value); err != nil {
			return err
		}
	}

	return nil
}

// validateQuery walks the raw query string without decoding it; the
// pipelines own the single decode pass.
func (h *handler) validateQuery(rawQuery string) error {
	if rawQuery == "" {
		return nil
	}

	pairs := strings.Split(rawQuery, "&")
	if max := h.factory.Config().MaxParameterCount(); len(pairs) > max {
		h.factory.Counter().Record(validation.TooManyParameters.Category())
		return validation.NewError(validation.TooManyParameters).
			ValidationType(validation.ParameterName).
			OriginalInput(rawQuery).
			Detail(fmt.Sprintf("%d parameters exceed the limit of %d", len(pairs), max)).
			MustBuild()
	}

	names := h.factory.For(validation.ParameterName)
	values := h.factory.For(validation.ParameterValue)
	for _, pair := range pairs {
		name, value, _ := strings.Cut(pair, "=")
		if _, err := names.Validate(&name); err != nil {
			return err
		}
		if _, err := values.Validate(&value); err != nil {
			return err
		}
	}
	return nil
}

// reject answers with the mapped status code. Only the failure type is
// revealed; the offending input stays in the server-side log.
func (h *handler) reject(w http.ResponseWriter, err error) {
	code := httperr.Code(err)

	var verr *validation.ValidationError
	if errors.As(err, &verr) {
		if h.logger != nil {
			h.logger.Warn("request rejected",
				"failureType", verr.FailureType().String(),
				"validationType", verr.ValidationType().String(),
				"status", code)
		}
		http.Error(w, fmt.Sprintf("request validation failed: %s", verr.FailureType()), code)
		return
	}

	if h.logger != nil {
		h.logger.Warn("request rejected", "error", err.Error(), "status", code)
	}
	http.Error(w, "request validation failed", code)
}
