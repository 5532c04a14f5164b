// SPDX-FileCopyrightText: Copyright 2026 CUI OSS
// SPDX-License-Identifier: Apache-2.0

/*
Package cookie models HTTP cookies as immutable values and enforces the RFC
6265bis __Host- and __Secure- prefix contracts.

# Cookie Values

A Cookie carries name, value, and the raw attribute string; attribute
accessors parse on demand:

	c := cookie.New("__Host-session", "abc123", "Secure; Path=/")
	c.IsSecure()        // true
	c.Domain()          // "", false

ParseSetCookie splits a raw Set-Cookie value:

	c, err := cookie.ParseSetCookie("id=42; Secure; Path=/")

# Prefix Validation

The prefix rules relate a cookie's name to its attributes, so validation
runs on the structured Cookie, not on a character stream:

	v := cookie.NewPrefixValidator()
	err := v.Validate(c)

__Host- requires Secure, forbids Domain, and requires Path exactly "/".
__Secure- requires Secure. The name is also checked for leading or trailing
whitespace on the untrimmed original, closing a known normalization bypass.
Character-level validation of cookie names and values belongs to the
pipeline package.
*/
package cookie
