// SPDX-FileCopyrightText: Copyright 2026 CUI OSS
// SPDX-License-Identifier: Apache-2.0

/*
Package pipeline assembles the defense-in-depth validation chains that
untrusted HTTP protocol components pass through before they reach
application logic.

# Stages

Each component type runs through up to five stages, in order:

  - Length: configured byte-length limits.
  - Character: RFC-derived allow-lists, checked in a single pass with
    positional percent-triplet handling.
  - Decoding: exactly one layer of percent-decoding, with double-encoding,
    overlong UTF-8, and Unicode normalization checks. URL components only.
  - Normalization: RFC 3986 §5.2.4 dot-segment removal with traversal
    detection before and after. URL paths only.
  - Pattern matching: traversal signatures, sensitive path targets,
    suspicious parameter names, and caller-provided signatures. URL
    components only.

A stage passes input through (possibly canonicalized) or rejects the whole
value with a *validation.ValidationError; nothing is ever silently fixed.

# Usage

	factory := pipeline.NewFactory(config.Default())
	path := "/api/users/../admin"
	out, err := factory.For(validation.URLPath).Validate(&path)

The factory's pipelines share one validation.EventCounter; every rejection
increments it exactly once, tagged by failure category:

	factory.Counter().Snapshot()

# Concurrency

Pipelines, stages, and the character bitmaps are immutable after
construction; Validate is synchronous and CPU-bound. The event counter uses
lock-free atomics. No external locking is required.
*/
package pipeline
