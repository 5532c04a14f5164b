// SPDX-FileCopyrightText: Copyright 2026 CUI OSS
// SPDX-License-Identifier: Apache-2.0

package pipeline

import (
	"errors"
	"log/slog"

	"github.com/cuioss/cui-http-sub001/config"
	"github.com/cuioss/cui-http-sub001/validation"
)

// Pipeline is the assembled validator chain for one ValidationType. It is
// immutable after construction and safe for unrestricted concurrent use.
//
// The pipeline owns telemetry, not the individual stages: every rejected
// Validate call increments the shared event counter exactly once, tagged by
// the failure's category.
type Pipeline struct {
	validationType validation.ValidationType
	chain          validation.Validator
	counter        *validation.EventCounter
	logger         *slog.Logger
}

// ValidationType returns the component type this pipeline validates.
func (p *Pipeline) ValidationType() validation.ValidationType {
	return p.validationType
}

// Validate implements validation.Validator.
func (p *Pipeline) Validate(input *string) (*string, error) {
	out, err := p.chain.Validate(input)
	if err == nil {
		return out, nil
	}

	var verr *validation.ValidationError
	if errors.As(err, &verr) {
		p.counter.Record(verr.Category())
		if p.logger != nil {
			p.logger.Debug("validation rejected",
				"validationType", verr.ValidationType().String(),
				"failureType", verr.FailureType().String(),
				"category", string(verr.Category()))
		}
	}
	return nil, err
}

// Factory assembles and caches one pipeline per ValidationType against a
// single policy and a single shared event counter.
type Factory struct {
	cfg       *config.Config
	counter   *validation.EventCounter
	logger    *slog.Logger
	pipelines map[validation.ValidationType]*Pipeline
}

// Option configures a Factory.
type Option func(*Factory)

// WithEventCounter shares an existing counter instead of creating a fresh
// one, letting several factories feed one telemetry sink.
func WithEventCounter(counter *validation.EventCounter) Option {
	return func(f *Factory) {
		f.counter = counter
	}
}

// WithLogger emits a debug record per rejected validation.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Factory) {
		f.logger = logger
	}
}

// NewFactory builds the pipelines for every ValidationType up front. The
// factory and its pipelines carry no per-call state.
func NewFactory(cfg *config.Config, opts ...Option) *Factory {
	f := &Factory{
		cfg:       cfg,
		counter:   validation.NewEventCounter(),
		pipelines: make(map[validation.ValidationType]*Pipeline),
	}
	for _, opt := range opts {
		opt(f)
	}
	for _, t := range validation.AllTypes() {
		f.pipelines[t] = f.assemble(t)
	}
	return f
}

// Counter returns the shared event counter for observability pulls.
func (f *Factory) Counter() *validation.EventCounter {
	return f.counter
}

// Config returns the policy the pipelines were assembled against.
func (f *Factory) Config() *config.Config {
	return f.cfg
}

// For returns the pipeline for the given type. An unknown type gets a
// rejecting pipeline rather than a nil.
func (f *Factory) For(t validation.ValidationType) *Pipeline {
	if p, ok := f.pipelines[t]; ok {
		return p
	}
	return &Pipeline{
		validationType: t,
		chain:          validation.Reject(validation.UnsupportedValidationType, t),
		counter:        f.counter,
		logger:         f.logger,
	}
}

// assemble wires the five stage slots for one component type. Slots that do
// not apply are gated off with validation.When so every pipeline has the
// same shape.
func (f *Factory) assemble(t validation.ValidationType) *Pipeline {
	// Decoding, normalization, and signature matching only make sense for
	// URL components; header, cookie, and body pipelines stop after the
	// character stage.
	decodes := t.SupportsPercentEncoding()
	pathLike := t.IsPathLike()

	chain := validation.Chain(
		NewLengthStage(f.cfg, t),
		NewCharacterStage(f.cfg, t),
		validation.When(NewDecodingStage(f.cfg, t), func(string) bool { return decodes }),
		validation.When(NewNormalizationStage(t), func(string) bool { return pathLike }),
		validation.When(NewPatternStage(f.cfg, t), func(string) bool { return decodes }),
	)

	return &Pipeline{
		validationType: t,
		chain:          chain,
		counter:        f.counter,
		logger:         f.logger,
	}
}
