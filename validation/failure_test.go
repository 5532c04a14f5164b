// SPDX-FileCopyrightText: Copyright 2026 CUI OSS
// SPDX-License-Identifier: Apache-2.0

package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFailureTypeTaxonomy(t *testing.T) {
	t.Parallel()

	t.Run("has exactly 22 failure types", func(t *testing.T) {
		t.Parallel()
		assert.Len(t, AllFailureTypes(), 22)
	})

	t.Run("every failure type belongs to exactly one category", func(t *testing.T) {
		t.Parallel()
		for _, ft := range AllFailureTypes() {
			matches := 0
			for _, category := range AllCategories() {
				if ft.Category() == category {
					matches++
				}
			}
			assert.Equal(t, 1, matches, "failure type %s", ft)
		}
	})

	t.Run("every category has at least one member", func(t *testing.T) {
		t.Parallel()
		members := make(map[Category]int)
		for _, ft := range AllFailureTypes() {
			members[ft.Category()]++
		}
		for _, category := range AllCategories() {
			assert.Positive(t, members[category], "category %s", category)
		}
	})

	t.Run("every failure type has a description", func(t *testing.T) {
		t.Parallel()
		for _, ft := range AllFailureTypes() {
			assert.NotEmpty(t, ft.Description(), "failure type %s", ft)
		}
	})

	t.Run("no duplicate failure types", func(t *testing.T) {
		t.Parallel()
		seen := make(map[FailureType]bool)
		for _, ft := range AllFailureTypes() {
			require.False(t, seen[ft], "duplicate %s", ft)
			seen[ft] = true
		}
	})
}

func TestFailureTypeCategoryAssignments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		failure  FailureType
		category Category
	}{
		{InvalidEncoding, CategoryEncoding},
		{DoubleEncoding, CategoryEncoding},
		{UnicodeNormalizationChanged, CategoryEncoding},
		{PathTraversalDetected, CategoryTraversal},
		{DirectoryEscapeAttempt, CategoryTraversal},
		{NullByteInjection, CategoryCharacter},
		{ControlCharacters, CategoryCharacter},
		{CRLFInjection, CategoryCharacter},
		{PathTooLong, CategorySize},
		{ExcessiveNesting, CategorySize},
		{SuspiciousPatternDetected, CategoryPattern},
		{SuspiciousParameterName, CategoryPattern},
		{CookiePrefixViolation, CategoryStructural},
		{ProtocolViolation, CategoryProtocol},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(string(tt.failure), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.category, tt.failure.Category())
		})
	}
}

func TestValidationTypeProperties(t *testing.T) {
	t.Parallel()

	t.Run("only URL components support percent-encoding", func(t *testing.T) {
		t.Parallel()
		assert.True(t, URLPath.SupportsPercentEncoding())
		assert.True(t, ParameterName.SupportsPercentEncoding())
		assert.True(t, ParameterValue.SupportsPercentEncoding())
		assert.False(t, HeaderName.SupportsPercentEncoding())
		assert.False(t, HeaderValue.SupportsPercentEncoding())
		assert.False(t, CookieName.SupportsPercentEncoding())
		assert.False(t, CookieValue.SupportsPercentEncoding())
		assert.False(t, Body.SupportsPercentEncoding())
	})

	t.Run("only body and header values support Unicode", func(t *testing.T) {
		t.Parallel()
		for _, vt := range AllTypes() {
			expected := vt == Body || vt == HeaderValue
			assert.Equal(t, expected, vt.SupportsUnicode(), "type %s", vt)
		}
	})

	t.Run("only URL path is path-like", func(t *testing.T) {
		t.Parallel()
		for _, vt := range AllTypes() {
			assert.Equal(t, vt == URLPath, vt.IsPathLike(), "type %s", vt)
		}
	})

	t.Run("all types enumerated once", func(t *testing.T) {
		t.Parallel()
		assert.Len(t, AllTypes(), 8)
	})
}
