// SPDX-FileCopyrightText: Copyright 2026 CUI OSS
// SPDX-License-Identifier: Apache-2.0

/*
Package config holds the immutable validation policy consumed by the
pipeline stages: permissiveness flags, size limits, and the extensible
attack signature catalogs.

# Building a Policy

Use the presets for common cases:

	cfg := config.Default()
	hardened := config.Strict()

or the builder for explicit control:

	cfg, err := config.NewBuilder().
		AllowDoubleEncoding(true).
		MaxPathLength(1024).
		SuspiciousParameterNames([]string{"redirect", "cmd"}).
		Build()

Build validates the whole policy atomically; a Config with a non-positive
limit or a blank catalog entry can never be observed.

# File Loading

Policies can be loaded from YAML or JSON files. JSON documents are validated
against the embedded JSON Schema before parsing:

	cfg, err := config.LoadFile("/etc/cui-http/security.yaml")

Discovery follows the CUI_HTTP_SECURITY_CONFIG environment variable, then
the XDG config home:

	cfg, err := config.Load(&env.OSReader{})

# Concurrency

A Config is immutable after construction and safe to share by reference
across all concurrent validations.
*/
package config
