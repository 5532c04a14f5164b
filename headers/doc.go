// SPDX-FileCopyrightText: Copyright 2026 CUI OSS
// SPDX-License-Identifier: Apache-2.0

/*
Package headers validates HTTP header names and values with two independent
layers: the security pipelines (length, character class) and the RFC 7230
grammar checks from golang.org/x/net/http/httpguts. Input must satisfy
both.

	factory := pipeline.NewFactory(config.Default())
	v := headers.NewValidator(factory)

	if err := v.ValidateName("X-API-Key"); err != nil { ... }
	if err := v.ValidateValue("Bearer token123"); err != nil { ... }

CR and LF are reported as CRLFInjection before anything else runs; a header
that splits is an attack regardless of what else is wrong with it.
*/
package headers
