// SPDX-FileCopyrightText: Copyright 2026 CUI OSS
// SPDX-License-Identifier: Apache-2.0

package validation

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorBuilderRequiredFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		build         func() (*ValidationError, error)
		errorContains string
	}{
		{
			name: "missing failure type",
			build: func() (*ValidationError, error) {
				return NewError("").ValidationType(URLPath).OriginalInput("/a").Build()
			},
			errorContains: "failure type",
		},
		{
			name: "missing validation type",
			build: func() (*ValidationError, error) {
				return NewError(NullByteInjection).OriginalInput("/a").Build()
			},
			errorContains: "validation type",
		},
		{
			name: "missing original input",
			build: func() (*ValidationError, error) {
				return NewError(NullByteInjection).ValidationType(URLPath).Build()
			},
			errorContains: "original input",
		},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			verr, err := tt.build()
			require.Error(t, err)
			assert.Nil(t, verr)
			assert.Contains(t, err.Error(), tt.errorContains)
		})
	}
}

func TestErrorBuilderComplete(t *testing.T) {
	t.Parallel()

	cause := errors.New("bad hex")
	verr, err := NewError(InvalidEncoding).
		ValidationType(ParameterValue).
		OriginalInput("a%zz").
		SanitizedInput("a").
		Detail("invalid digits").
		Cause(cause).
		Build()
	require.NoError(t, err)

	assert.Equal(t, InvalidEncoding, verr.FailureType())
	assert.Equal(t, CategoryEncoding, verr.Category())
	assert.Equal(t, ParameterValue, verr.ValidationType())
	assert.Equal(t, "a%zz", verr.OriginalInput())

	sanitized, ok := verr.SanitizedInput()
	assert.True(t, ok)
	assert.Equal(t, "a", sanitized)

	assert.Equal(t, "invalid digits", verr.Detail())
	assert.ErrorIs(t, verr, cause)
}

func TestErrorBuilderEmptyInputIsLegal(t *testing.T) {
	t.Parallel()

	verr, err := NewError(InvalidStructure).
		ValidationType(CookieName).
		OriginalInput("").
		Build()
	require.NoError(t, err)
	assert.Empty(t, verr.OriginalInput())
}

func TestErrorMessageSafety(t *testing.T) {
	t.Parallel()

	t.Run("control characters are escaped", func(t *testing.T) {
		t.Parallel()
		verr := NewError(ControlCharacters).
			ValidationType(HeaderValue).
			OriginalInput("key\r\nInjected: yes").
			MustBuild()

		msg := verr.Error()
		assert.NotContains(t, msg, "\r")
		assert.NotContains(t, msg, "\n")
		assert.Contains(t, msg, `\r\n`)
	})

	t.Run("long input is truncated", func(t *testing.T) {
		t.Parallel()
		long := strings.Repeat("x", 5000)
		verr := NewError(InputTooLong).
			ValidationType(Body).
			OriginalInput(long).
			MustBuild()

		msg := verr.Error()
		assert.Less(t, len(msg), 1000)
		assert.Contains(t, msg, "...")
		assert.Equal(t, long, verr.OriginalInput(), "original stays untouched")
	})

	t.Run("message names failure and validation type", func(t *testing.T) {
		t.Parallel()
		verr := NewError(NullByteInjection).
			ValidationType(URLPath).
			OriginalInput("/a\x00b").
			Detail("raw NUL byte at offset 2").
			MustBuild()

		msg := verr.Error()
		assert.Contains(t, msg, "NULL_BYTE_INJECTION")
		assert.Contains(t, msg, "URL_PATH")
		assert.Contains(t, msg, "raw NUL byte at offset 2")
	})

	t.Run("cause is rendered and unwrapped", func(t *testing.T) {
		t.Parallel()
		cause := fmt.Errorf("offset 3")
		verr := NewError(InvalidEncoding).
			ValidationType(URLPath).
			OriginalInput("/%g1").
			Cause(cause).
			MustBuild()

		assert.Contains(t, verr.Error(), "offset 3")
		assert.ErrorIs(t, verr, cause)
	})
}
