// SPDX-FileCopyrightText: Copyright 2026 CUI OSS
// SPDX-License-Identifier: Apache-2.0

package cookie

import (
	"strings"

	"github.com/cuioss/cui-http-sub001/validation"
)

// Cookie is an immutable name, value, and raw attribute string as they
// appeared on the wire. Attributes are parsed on demand; the struct has no
// lifecycle beyond construction.
type Cookie struct {
	name       string
	value      string
	attributes string
}

// New builds a Cookie from its parts. The attribute string is kept verbatim
// (e.g. "Secure; Path=/; Domain=example.com").
func New(name, value, attributes string) Cookie {
	return Cookie{name: name, value: value, attributes: attributes}
}

// ParseSetCookie splits a raw Set-Cookie value into a Cookie. The value
// must carry a "name=value" pair before the first semicolon; a missing pair
// or an empty name is a MalformedCookie failure.
func ParseSetCookie(raw string) (Cookie, error) {
	pair := raw
	attributes := ""
	if idx := strings.Index(raw, ";"); idx >= 0 {
		pair = raw[:idx]
		attributes = strings.TrimSpace(raw[idx+1:])
	}

	eq := strings.Index(pair, "=")
	if eq < 0 {
		return Cookie{}, malformed(raw, "missing '=' in cookie pair")
	}
	name := pair[:eq]
	if name == "" {
		return Cookie{}, malformed(raw, "empty cookie name")
	}
	return Cookie{name: name, value: pair[eq+1:], attributes: attributes}, nil
}

func malformed(raw, detail string) error {
	return validation.NewError(validation.MalformedCookie).
		ValidationType(validation.CookieName).
		OriginalInput(raw).
		Detail(detail).
		MustBuild()
}

// Name returns the cookie name exactly as constructed, untrimmed.
func (c Cookie) Name() string { return c.name }

// Value returns the cookie value.
func (c Cookie) Value() string { return c.value }

// Attributes returns the raw attribute string.
func (c Cookie) Attributes() string { return c.attributes }

// IsSecure reports whether a Secure attribute is present.
func (c Cookie) IsSecure() bool {
	for _, attr := range c.splitAttributes() {
		if strings.EqualFold(attr, "secure") {
			return true
		}
	}
	return false
}

// Domain returns the Domain attribute value and whether one is present.
func (c Cookie) Domain() (string, bool) {
	return c.attributeValue("domain")
}

// Path returns the Path attribute value and whether one is present.
func (c Cookie) Path() (string, bool) {
	return c.attributeValue("path")
}

func (c Cookie) splitAttributes() []string {
	if c.attributes == "" {
		return nil
	}
	parts := strings.Split(c.attributes, ";")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

func (c Cookie) attributeValue(name string) (string, bool) {
	for _, attr := range c.splitAttributes() {
		key, value, found := strings.Cut(attr, "=")
		if found && strings.EqualFold(strings.TrimSpace(key), name) {
			return strings.TrimSpace(value), true
		}
	}
	return "", false
}
