// SPDX-FileCopyrightText: Copyright 2026 CUI OSS
// SPDX-License-Identifier: Apache-2.0

/*
Package validation defines the shared vocabulary and core abstractions of the
HTTP security validation pipeline: the component types under validation, the
closed failure taxonomy, the single error type, the composable Validator
contract, and the thread-safe rejection counter.

# Validator Contract

A Validator either passes input through (possibly canonicalized) or rejects
it with a *ValidationError. Nil input yields nil output, never an error:

	out, err := v.Validate(&path)

Validators compose with AndThen, Compose, Chain, and When:

	v := validation.Chain(lengthStage, characterStage)
	v = validation.When(decodingStage, func(string) bool { return cfg.DecodeEnabled })

# Failure Taxonomy

Every rejection is discriminated by one of 22 FailureType values, each in
exactly one of seven categories (encoding, traversal, character, size,
pattern, structural, protocol). The category drives telemetry aggregation in
EventCounter.

# Errors

ValidationError is built through a validating builder that refuses to
produce an error value missing its failure type, validation type, or
original input:

	verr, err := validation.NewError(validation.NullByteInjection).
		ValidationType(validation.URLPath).
		OriginalInput(path).
		Detail("raw NUL at offset 4").
		Build()

Error messages truncate and quote the offending input so they are always
safe to log.

# Concurrency

Validators are stateless after construction. EventCounter is the only
mutable shared state and uses lock-free atomics.
*/
package validation
