// SPDX-FileCopyrightText: Copyright 2026 CUI OSS
// SPDX-License-Identifier: Apache-2.0

package cookie

import (
	"fmt"
	"strings"

	"github.com/cuioss/cui-http-sub001/validation"
)

// Cookie name prefixes with browser-enforced attribute contracts, per RFC
// 6265bis. Matching is case-insensitive, as user agents match them.
const (
	hostPrefix   = "__host-"
	securePrefix = "__secure-"
)

// PrefixValidator enforces the __Host- and __Secure- cookie prefix
// contracts. Unlike the character pipelines it operates on a structured
// Cookie, because the rules relate the name to the attribute string.
//
// The validator is stateless; the zero value is ready to use.
type PrefixValidator struct{}

// NewPrefixValidator returns a prefix validator.
func NewPrefixValidator() *PrefixValidator {
	return &PrefixValidator{}
}

// Validate checks the cookie against the prefix rules. Cookies without a
// recognized prefix only get the whitespace check; everything else passes.
func (*PrefixValidator) Validate(c Cookie) error {
	name := c.Name()

	// The check runs on the untrimmed original: a name that becomes legal
	// after trimming is exactly the normalization-bypass shape the rule
	// exists to catch.
	if name != strings.TrimSpace(name) {
		return prefixFail(validation.InvalidCharacter, c,
			"cookie name has leading or trailing whitespace")
	}

	lower := strings.ToLower(name)
	switch {
	case strings.HasPrefix(lower, hostPrefix):
		return validateHostPrefix(c)
	case strings.HasPrefix(lower, securePrefix):
		return validateSecurePrefix(c)
	default:
		return nil
	}
}

// validateHostPrefix enforces the strictest contract: Secure present, no
// Domain, Path exactly "/". The three violations carry distinguishing
// details so callers can report which constraint failed.
func validateHostPrefix(c Cookie) error {
	if !c.IsSecure() {
		return prefixFail(validation.CookiePrefixViolation, c,
			"__Host- cookie requires the Secure attribute")
	}
	if domain, ok := c.Domain(); ok {
		return prefixFail(validation.CookiePrefixViolation, c,
			fmt.Sprintf("__Host- cookie must not set a Domain attribute (got %q)", domain))
	}
	if path, ok := c.Path(); !ok || path != "/" {
		return prefixFail(validation.CookiePrefixViolation, c,
			fmt.Sprintf("__Host- cookie requires Path=/ (got %q)", path))
	}
	return nil
}

func validateSecurePrefix(c Cookie) error {
	if !c.IsSecure() {
		return prefixFail(validation.CookiePrefixViolation, c,
			"__Secure- cookie requires the Secure attribute")
	}
	return nil
}

func prefixFail(failure validation.FailureType, c Cookie, detail string) error {
	return validation.NewError(failure).
		ValidationType(validation.CookieName).
		OriginalInput(c.Name()).
		Detail(detail).
		MustBuild()
}
