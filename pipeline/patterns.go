// SPDX-FileCopyrightText: Copyright 2026 CUI OSS
// SPDX-License-Identifier: Apache-2.0

package pipeline

import (
	"fmt"
	"strings"

	"github.com/cuioss/cui-http-sub001/config"
	"github.com/cuioss/cui-http-sub001/validation"
)

// traversalSignatures are dot-segment attack fragments in their literal,
// percent-encoded, and overlong-encoded spellings. They catch traversal in
// components the normalization stage never sees (parameter values used as
// file names downstream) and obfuscations that survive a single decode.
// SQL, command, and XSS signatures are deliberately absent: those need
// semantic context only the application layer has.
var traversalSignatures = []string{
	"../",
	`..\`,
	"..%2f",
	"..%5c",
	"%2e%2e/",
	`%2e%2e\`,
	"%2e%2e%2f",
	"%2e%2e%5c",
	"..%c0%af",
	"..%c1%9c",
	"..%e0%80%af",
	"....//",
	`....\\`,
}

// PatternStage is the final signature layer over syntactically valid input.
// Checks run in fixed order (traversal signatures, then suspicious path
// targets, then suspicious parameter names, then caller-provided
// signatures) and the first match wins.
type PatternStage struct {
	cfg            *config.Config
	validationType validation.ValidationType

	// Catalogs are folded per the comparison policy once at construction.
	traversalSigs   []string
	suspiciousPaths []string
	suspiciousNames []string
	customSigs      []string
}

// NewPatternStage returns the pattern stage for the given component type.
func NewPatternStage(cfg *config.Config, t validation.ValidationType) *PatternStage {
	s := &PatternStage{cfg: cfg, validationType: t}
	s.traversalSigs = s.foldAll(traversalSignatures)
	s.suspiciousPaths = s.foldAll(cfg.SuspiciousPaths())
	s.suspiciousNames = s.foldAll(cfg.SuspiciousParameterNames())
	s.customSigs = s.foldAll(cfg.CustomSignatures())
	return s
}

// Validate implements validation.Validator.
func (s *PatternStage) Validate(input *string) (*string, error) {
	if input == nil {
		return nil, nil
	}
	value := *input
	folded := s.fold(value)

	for _, sig := range s.traversalSigs {
		if strings.Contains(folded, sig) {
			return nil, s.fail(validation.PathTraversalDetected, value,
				fmt.Sprintf("traversal signature %q", sig))
		}
	}

	if s.cfg.FailOnSuspiciousPatterns() && s.validationType == validation.URLPath {
		for _, sig := range s.suspiciousPaths {
			if strings.Contains(folded, sig) {
				return nil, s.fail(validation.SuspiciousPatternDetected, value,
					fmt.Sprintf("sensitive path target %q", sig))
			}
		}
	}

	if s.cfg.FailOnSuspiciousPatterns() && s.validationType == validation.ParameterName {
		for _, sig := range s.suspiciousNames {
			if strings.Contains(folded, sig) {
				return nil, s.fail(validation.SuspiciousParameterName, value,
					fmt.Sprintf("suspicious parameter name %q", sig))
			}
		}
	}

	for _, sig := range s.customSigs {
		if strings.Contains(folded, sig) {
			return nil, s.fail(validation.KnownAttackSignature, value,
				fmt.Sprintf("configured signature %q", sig))
		}
	}

	return input, nil
}

// fold lowercases the value unless the policy demands case-sensitive
// matching.
func (s *PatternStage) fold(value string) string {
	if s.cfg.CaseSensitiveComparison() {
		return value
	}
	return strings.ToLower(value)
}

func (s *PatternStage) foldAll(values []string) []string {
	folded := make([]string, len(values))
	for i, v := range values {
		folded[i] = s.fold(v)
	}
	return folded
}

func (s *PatternStage) fail(failure validation.FailureType, value, detail string) error {
	return validation.NewError(failure).
		ValidationType(s.validationType).
		OriginalInput(value).
		Detail(detail).
		MustBuild()
}
