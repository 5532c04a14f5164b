// SPDX-FileCopyrightText: Copyright 2026 CUI OSS
// SPDX-License-Identifier: Apache-2.0

package pipeline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuioss/cui-http-sub001/validation"
)

func TestNormalizationStageResolvesDotSegments(t *testing.T) {
	t.Parallel()

	stage := NewNormalizationStage(validation.URLPath)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean path is unchanged", "/api/users", "/api/users"},
		{"current-directory segments vanish", "/api/./users", "/api/users"},
		{"mixed dot segments resolve", "/api/./users/../admin/./data", "/api/admin/data"},
		{"doubled separators collapse", "/api//users", "/api/users"},
		{"parent at absolute root is dropped", "/../api", "/api"},
		{"trailing slash survives", "/api/users/", "/api/users/"},
		{"trailing dot segment", "/api/users/.", "/api/users"},
		{"root", "/", "/"},
		{"relative stays relative", "users/data", "users/data"},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out, err := stage.Validate(&tt.input)
			require.NoError(t, err)
			require.NotNil(t, out)
			assert.Equal(t, tt.want, *out)
		})
	}
}

func TestNormalizationStageIdempotent(t *testing.T) {
	t.Parallel()

	stage := NewNormalizationStage(validation.URLPath)

	for _, input := range []string{
		"/api/./users/../admin/./data",
		"/api//users/",
		"/api/users",
	} {
		first, err := stage.Validate(&input)
		require.NoError(t, err)

		second, err := stage.Validate(first)
		require.NoError(t, err)
		assert.Equal(t, *first, *second)
	}
}

func TestNormalizationStageNilAndEmpty(t *testing.T) {
	t.Parallel()

	stage := NewNormalizationStage(validation.URLPath)

	out, err := stage.Validate(nil)
	require.NoError(t, err)
	assert.Nil(t, out)

	expectPass(t, stage, "")
}

func TestNormalizationStageIntentChecks(t *testing.T) {
	t.Parallel()

	stage := NewNormalizationStage(validation.URLPath)

	tests := []struct {
		name    string
		input   string
		failure validation.FailureType
	}{
		{"residual percent-escaped dot", "/a/%2e%2e/b", validation.PathTraversalDetected},
		{"residual escaped dot uppercase", "/a/%2E%2E/b", validation.PathTraversalDetected},
		{"four-dot run", "/a/..../b", validation.PathTraversalDetected},
		{"leading dot run", ".../b", validation.PathTraversalDetected},
		{"backslash traversal", `/a/..\..\windows`, validation.PathTraversalDetected},
		{"relative climb over sibling", "dir/../other", validation.PathTraversalDetected},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			expectFailure(t, stage, tt.input, tt.failure)
		})
	}
}

func TestNormalizationStageDirectoryEscape(t *testing.T) {
	t.Parallel()

	stage := NewNormalizationStage(validation.URLPath)

	tests := []struct {
		name  string
		input string
	}{
		{"plain climb", "../etc/passwd"},
		{"bare climb with trailing slash", "../"},
		{"stacked parent references", "../.."},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out, err := stage.Validate(&tt.input)
			assert.Nil(t, out)

			var verr *validation.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, validation.DirectoryEscapeAttempt, verr.FailureType())
		})
	}
}

func TestNormalizationStageBareParentReference(t *testing.T) {
	t.Parallel()

	stage := NewNormalizationStage(validation.URLPath)
	expectFailure(t, stage, "..", validation.PathTraversalDetected)
}

func TestNormalizationStageStructuralCeilings(t *testing.T) {
	t.Parallel()

	stage := NewNormalizationStage(validation.URLPath)

	t.Run("segment count ceiling", func(t *testing.T) {
		t.Parallel()
		input := "/" + strings.Repeat("a/", maxSegmentCount)
		expectFailure(t, stage, input, validation.ExcessiveNesting)
	})

	t.Run("retained depth ceiling", func(t *testing.T) {
		t.Parallel()
		input := "/" + strings.TrimSuffix(strings.Repeat("a/", maxRetainedDepth+1), "/")
		expectFailure(t, stage, input, validation.ExcessiveNesting)
	})

	t.Run("deep but within bounds", func(t *testing.T) {
		t.Parallel()
		input := "/" + strings.TrimSuffix(strings.Repeat("a/", maxRetainedDepth-1), "/")
		out, err := stage.Validate(&input)
		require.NoError(t, err)
		assert.Equal(t, input, *out)
	})
}
