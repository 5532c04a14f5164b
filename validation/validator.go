// SPDX-FileCopyrightText: Copyright 2026 CUI OSS
// SPDX-License-Identifier: Apache-2.0

package validation

//go:generate mockgen -source=validator.go -destination=mocks/mock_validator.go -package=mocks Validator

// Validator is the composable validation contract shared by every pipeline
// stage. A validator either passes the input through (possibly canonicalized)
// or rejects the whole value with a *ValidationError; it never silently fixes
// dangerous input.
//
// Input and output are optional: a nil input yields a nil output and no
// error. The empty string is a present, valid value and is distinct from nil.
//
// Implementations must be stateless after construction so a single validator
// can serve unrestricted concurrent calls.
type Validator interface {
	Validate(input *string) (*string, error)
}

// ValidatorFunc adapts a plain function to the Validator interface.
type ValidatorFunc func(input *string) (*string, error)

// Validate calls f.
func (f ValidatorFunc) Validate(input *string) (*string, error) {
	return f(input)
}

// AndThen returns a validator that applies v, then next on v's output.
// An error from either aborts the chain unchanged.
func AndThen(v, next Validator) Validator {
	return ValidatorFunc(func(input *string) (*string, error) {
		out, err := v.Validate(input)
		if err != nil {
			return nil, err
		}
		return next.Validate(out)
	})
}

// Compose returns a validator that applies before, then v on before's output.
// Compose(v, b) is AndThen(b, v).
func Compose(v, before Validator) Validator {
	return AndThen(before, v)
}

// Chain sequences any number of validators left to right. Chain() is
// Identity().
func Chain(validators ...Validator) Validator {
	return ValidatorFunc(func(input *string) (*string, error) {
		current := input
		for _, v := range validators {
			out, err := v.Validate(current)
			if err != nil {
				return nil, err
			}
			current = out
		}
		return current, nil
	})
}

// When gates v behind a predicate: when the predicate returns false the input
// passes through unchanged and v never runs. The predicate is consulted for
// present input only; nil input short-circuits to nil output as always.
// A panic in the predicate propagates to the caller.
func When(v Validator, predicate func(input string) bool) Validator {
	return ValidatorFunc(func(input *string) (*string, error) {
		if input == nil {
			return nil, nil
		}
		if !predicate(*input) {
			return input, nil
		}
		return v.Validate(input)
	})
}

// Identity returns the neutral validator: every input passes through
// unchanged.
func Identity() Validator {
	return ValidatorFunc(func(input *string) (*string, error) {
		return input, nil
	})
}

// Reject returns a validator that fails every present input with the given
// failure. It fills pipeline slots that are disabled or not assembled for a
// validation type.
func Reject(failureType FailureType, validationType ValidationType) Validator {
	return ValidatorFunc(func(input *string) (*string, error) {
		if input == nil {
			return nil, nil
		}
		err, buildErr := NewError(failureType).
			ValidationType(validationType).
			OriginalInput(*input).
			Build()
		if buildErr != nil {
			return nil, buildErr
		}
		return nil, err
	})
}
