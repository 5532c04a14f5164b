// SPDX-FileCopyrightText: Copyright 2026 CUI OSS
// SPDX-License-Identifier: Apache-2.0

package pipeline

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/cuioss/cui-http-sub001/validation"
)

// Hard ceilings on path structure. These bound the cost of normalization so
// the stage needs no cancellation support.
const (
	maxSegmentCount  = 1000
	maxRetainedDepth = 100
)

var (
	// Three or more literal dots adjacent to a separator ("..../",
	// "\...."), an IIS-era traversal obfuscation.
	dotRunPattern = regexp.MustCompile(`(^|[/\\])\.{3,}|\.{3,}([/\\]|$)`)

	// A relative path component climbing over its sibling ("dir/../other").
	// Only applied to relative paths: an absolute path resolves dot
	// segments against a fixed root and is judged after normalization.
	relativeClimbPattern = regexp.MustCompile(`^[^/\\]+/\.\./`)
)

// NormalizationStage resolves dot segments per RFC 3986 §5.2.4 and rejects
// traversal in three layers: intent checks on the raw string, an escape
// check on the normalized result, and a residual check for dot segments
// that survived normalization. The output is idempotent: normalizing it
// again yields the same string.
//
// The stage applies to path-like components only; assemble it behind a
// validation.When gate.
type NormalizationStage struct {
	validationType validation.ValidationType
}

// NewNormalizationStage returns the normalization stage for the given
// component type.
func NewNormalizationStage(t validation.ValidationType) *NormalizationStage {
	return &NormalizationStage{validationType: t}
}

// Validate implements validation.Validator.
func (s *NormalizationStage) Validate(input *string) (*string, error) {
	if input == nil {
		return nil, nil
	}
	value := *input
	if value == "" {
		return input, nil
	}

	if err := s.checkIntent(value); err != nil {
		return nil, err
	}

	normalized, err := s.normalize(value)
	if err != nil {
		return nil, err
	}

	if strings.HasPrefix(normalized, "../") || strings.HasPrefix(normalized, `..\`) {
		return nil, s.fail(validation.DirectoryEscapeAttempt, value,
			fmt.Sprintf("normalized path %q escapes its root", normalized))
	}

	if err := s.checkResidual(value, normalized); err != nil {
		return nil, err
	}

	return &normalized, nil
}

// checkIntent rejects traversal that is visible before normalization
// touches the string.
func (s *NormalizationStage) checkIntent(value string) error {
	// Percent escapes must have been resolved by the decoding stage; a
	// surviving escaped dot means a hidden layer slipped through.
	if strings.Contains(strings.ToLower(value), "%2e") {
		return s.fail(validation.PathTraversalDetected, value,
			"residual percent-escaped dot sequence")
	}
	if dotRunPattern.MatchString(value) {
		return s.fail(validation.PathTraversalDetected, value,
			"run of three or more dots adjacent to a separator")
	}
	if idx := strings.Index(value, `..\`); idx > 0 {
		return s.fail(validation.PathTraversalDetected, value,
			fmt.Sprintf("backslash traversal sequence at offset %d", idx))
	}
	if !strings.HasPrefix(value, "/") && relativeClimbPattern.MatchString(value) {
		return s.fail(validation.PathTraversalDetected, value,
			"relative path climbs over its leading component")
	}
	return nil
}

// normalize implements the RFC 3986 §5.2.4 dot-segment algorithm over "/"
// separated segments, with hard structural ceilings.
func (s *NormalizationStage) normalize(value string) (string, error) {
	segments := strings.Split(value, "/")
	if len(segments) > maxSegmentCount {
		return "", s.fail(validation.ExcessiveNesting, value,
			fmt.Sprintf("%d segments exceed the ceiling of %d", len(segments), maxSegmentCount))
	}

	absolute := strings.HasPrefix(value, "/")
	trailingSlash := strings.HasSuffix(value, "/")

	retained := make([]string, 0, len(segments))
	for _, segment := range segments {
		switch segment {
		case "", ".":
			// Empty segments from doubled separators and current-directory
			// segments vanish; leading/trailing slashes are restored below.
		case "..":
			if n := len(retained); n > 0 && retained[n-1] != ".." {
				retained = retained[:n-1]
			} else if !absolute {
				// A relative path may legitimately start with parent
				// references; they are kept and judged by the escape check.
				retained = append(retained, "..")
			}
			// For absolute paths a ".." at the root is dropped: there is
			// nothing above the root.
		default:
			retained = append(retained, segment)
		}
		if len(retained) > maxRetainedDepth {
			return "", s.fail(validation.ExcessiveNesting, value,
				fmt.Sprintf("retained depth exceeds the ceiling of %d", maxRetainedDepth))
		}
	}

	normalized := strings.Join(retained, "/")
	if absolute {
		normalized = "/" + normalized
	}
	if trailingSlash && !strings.HasSuffix(normalized, "/") {
		normalized += "/"
	}
	return normalized, nil
}

// checkResidual rejects dot segments that survived normalization anywhere
// but the leading position (the escape check owns that case).
func (s *NormalizationStage) checkResidual(value, normalized string) error {
	if normalized == ".." {
		return s.fail(validation.PathTraversalDetected, value,
			"path normalizes to a bare parent reference")
	}
	segments := strings.Split(strings.TrimPrefix(normalized, "/"), "/")
	for i, segment := range segments {
		if segment == ".." && i > 0 {
			return s.fail(validation.PathTraversalDetected, value,
				"parent reference survived normalization")
		}
	}
	if idx := strings.Index(normalized, `..\`); idx > 0 {
		return s.fail(validation.PathTraversalDetected, value,
			"backslash parent reference survived normalization")
	}
	return nil
}

func (s *NormalizationStage) fail(failure validation.FailureType, value, detail string) error {
	return validation.NewError(failure).
		ValidationType(s.validationType).
		OriginalInput(value).
		Detail(detail).
		MustBuild()
}
