// SPDX-FileCopyrightText: Copyright 2026 CUI OSS
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"strings"
)

// Default size limits. Header limits follow common server defaults; the
// remaining limits are conservative enough for typical REST traffic.
const (
	DefaultMaxPathLength           = 4096
	DefaultMaxParameterNameLength  = 128
	DefaultMaxParameterValueLength = 2048
	DefaultMaxHeaderNameLength     = 256
	DefaultMaxHeaderValueLength    = 8192
	DefaultMaxCookieNameLength     = 256
	DefaultMaxCookieValueLength    = 4096
	DefaultMaxBodyLength           = 1 << 20
	DefaultMaxParameterCount       = 100
)

// Config is the immutable validation policy shared by all pipeline stages.
// Build one through Builder (or the Default/Strict presets) and share it
// read-only across concurrent validations; it carries no mutable state.
type Config struct {
	allowNullBytes           bool
	allowControlCharacters   bool
	allowExtendedASCII       bool
	allowDoubleEncoding      bool
	normalizeUnicode         bool
	failOnSuspiciousPatterns bool
	caseSensitiveComparison  bool

	maxPathLength           int
	maxParameterNameLength  int
	maxParameterValueLength int
	maxHeaderNameLength     int
	maxHeaderValueLength    int
	maxCookieNameLength     int
	maxCookieValueLength    int
	maxBodyLength           int
	maxParameterCount       int

	suspiciousPaths          []string
	suspiciousParameterNames []string
	customSignatures         []string
}

// defaultSuspiciousPaths lists well-known sensitive absolute targets and
// dotfiles probed by scanners. The catalog is a policy default, not a
// constant: callers extend or replace it through the builder.
var defaultSuspiciousPaths = []string{
	"/etc/passwd",
	"/etc/shadow",
	"/etc/hosts",
	"/proc/self",
	"/windows/system32",
	"/boot.ini",
	"/web.config",
	"/wp-config.php",
	"/.env",
	"/.git",
	"/.ssh",
	"/.htaccess",
	"/.htpasswd",
	"/.aws/credentials",
}

// defaultSuspiciousParameterNames lists parameter names associated with
// injection and open-redirect probing.
var defaultSuspiciousParameterNames = []string{
	"script",
	"include",
	"require",
	"redirect",
	"redirect_uri_override",
	"exec",
	"cmd",
	"command",
	"eval",
	"template",
	"preprocess",
}

// Default returns the standard policy: reject null bytes, control
// characters, extended ASCII, and double encoding; fail closed on Unicode
// normalization changes; flag suspicious patterns case-insensitively.
func Default() *Config {
	cfg, err := NewBuilder().Build()
	if err != nil {
		panic(err)
	}
	return cfg
}

// Strict returns a hardened policy with tighter size limits for
// security-sensitive endpoints.
func Strict() *Config {
	cfg, err := NewBuilder().
		MaxPathLength(1024).
		MaxParameterNameLength(64).
		MaxParameterValueLength(512).
		MaxHeaderValueLength(4096).
		MaxCookieValueLength(1024).
		MaxBodyLength(64 << 10).
		MaxParameterCount(32).
		Build()
	if err != nil {
		panic(err)
	}
	return cfg
}

// AllowNullBytes reports whether literal or encoded NUL bytes are accepted.
func (c *Config) AllowNullBytes() bool { return c.allowNullBytes }

// AllowControlCharacters reports whether ASCII control characters outside a
// component's base set are accepted.
func (c *Config) AllowControlCharacters() bool { return c.allowControlCharacters }

// AllowExtendedASCII reports whether octets 0x80-0xFF are accepted for
// Unicode-capable components beyond their base set.
func (c *Config) AllowExtendedASCII() bool { return c.allowExtendedASCII }

// AllowDoubleEncoding reports whether a hidden second percent-encoding layer
// is tolerated (one layer is still all that gets decoded).
func (c *Config) AllowDoubleEncoding() bool { return c.allowDoubleEncoding }

// NormalizeUnicode reports whether decoded input is checked against its NFC
// form.
func (c *Config) NormalizeUnicode() bool { return c.normalizeUnicode }

// FailOnSuspiciousPatterns reports whether the suspicious path and parameter
// name catalogs are enforced.
func (c *Config) FailOnSuspiciousPatterns() bool { return c.failOnSuspiciousPatterns }

// CaseSensitiveComparison reports whether signature matching is case
// sensitive.
func (c *Config) CaseSensitiveComparison() bool { return c.caseSensitiveComparison }

// MaxPathLength returns the URL path length limit in bytes.
func (c *Config) MaxPathLength() int { return c.maxPathLength }

// MaxParameterNameLength returns the query parameter name length limit.
func (c *Config) MaxParameterNameLength() int { return c.maxParameterNameLength }

// MaxParameterValueLength returns the query parameter value length limit.
func (c *Config) MaxParameterValueLength() int { return c.maxParameterValueLength }

// MaxHeaderNameLength returns the header name length limit.
func (c *Config) MaxHeaderNameLength() int { return c.maxHeaderNameLength }

// MaxHeaderValueLength returns the header value length limit.
func (c *Config) MaxHeaderValueLength() int { return c.maxHeaderValueLength }

// MaxCookieNameLength returns the cookie name length limit.
func (c *Config) MaxCookieNameLength() int { return c.maxCookieNameLength }

// MaxCookieValueLength returns the cookie value length limit.
func (c *Config) MaxCookieValueLength() int { return c.maxCookieValueLength }

// MaxBodyLength returns the body length limit in bytes.
func (c *Config) MaxBodyLength() int { return c.maxBodyLength }

// MaxParameterCount returns the query parameter count limit.
func (c *Config) MaxParameterCount() int { return c.maxParameterCount }

// SuspiciousPaths returns a copy of the sensitive path catalog.
func (c *Config) SuspiciousPaths() []string {
	return append([]string(nil), c.suspiciousPaths...)
}

// SuspiciousParameterNames returns a copy of the parameter name catalog.
func (c *Config) SuspiciousParameterNames() []string {
	return append([]string(nil), c.suspiciousParameterNames...)
}

// CustomSignatures returns a copy of the caller-provided signature catalog.
func (c *Config) CustomSignatures() []string {
	return append([]string(nil), c.customSignatures...)
}

// Builder assembles a Config. All fields start at the Default policy; Build
// validates the result atomically so a Config with inconsistent limits can
// never be observed.
type Builder struct {
	cfg Config
}

// NewBuilder returns a builder primed with the default policy.
func NewBuilder() *Builder {
	return &Builder{cfg: Config{
		normalizeUnicode:         true,
		failOnSuspiciousPatterns: true,

		maxPathLength:           DefaultMaxPathLength,
		maxParameterNameLength:  DefaultMaxParameterNameLength,
		maxParameterValueLength: DefaultMaxParameterValueLength,
		maxHeaderNameLength:     DefaultMaxHeaderNameLength,
		maxHeaderValueLength:    DefaultMaxHeaderValueLength,
		maxCookieNameLength:     DefaultMaxCookieNameLength,
		maxCookieValueLength:    DefaultMaxCookieValueLength,
		maxBodyLength:           DefaultMaxBodyLength,
		maxParameterCount:       DefaultMaxParameterCount,

		suspiciousPaths:          defaultSuspiciousPaths,
		suspiciousParameterNames: defaultSuspiciousParameterNames,
	}}
}

// AllowNullBytes accepts literal and encoded NUL bytes.
func (b *Builder) AllowNullBytes(allow bool) *Builder {
	b.cfg.allowNullBytes = allow
	return b
}

// AllowControlCharacters accepts ASCII control characters outside the base
// set.
func (b *Builder) AllowControlCharacters(allow bool) *Builder {
	b.cfg.allowControlCharacters = allow
	return b
}

// AllowExtendedASCII accepts octets 0x80-0xFF for Unicode-capable
// components.
func (b *Builder) AllowExtendedASCII(allow bool) *Builder {
	b.cfg.allowExtendedASCII = allow
	return b
}

// AllowDoubleEncoding tolerates a hidden second percent-encoding layer.
func (b *Builder) AllowDoubleEncoding(allow bool) *Builder {
	b.cfg.allowDoubleEncoding = allow
	return b
}

// NormalizeUnicode enables the NFC fail-closed check.
func (b *Builder) NormalizeUnicode(enable bool) *Builder {
	b.cfg.normalizeUnicode = enable
	return b
}

// FailOnSuspiciousPatterns enables the suspicious path and parameter name
// catalogs.
func (b *Builder) FailOnSuspiciousPatterns(enable bool) *Builder {
	b.cfg.failOnSuspiciousPatterns = enable
	return b
}

// CaseSensitiveComparison makes signature matching case sensitive.
func (b *Builder) CaseSensitiveComparison(enable bool) *Builder {
	b.cfg.caseSensitiveComparison = enable
	return b
}

// MaxPathLength sets the URL path length limit.
func (b *Builder) MaxPathLength(limit int) *Builder {
	b.cfg.maxPathLength = limit
	return b
}

// MaxParameterNameLength sets the parameter name length limit.
func (b *Builder) MaxParameterNameLength(limit int) *Builder {
	b.cfg.maxParameterNameLength = limit
	return b
}

// MaxParameterValueLength sets the parameter value length limit.
func (b *Builder) MaxParameterValueLength(limit int) *Builder {
	b.cfg.maxParameterValueLength = limit
	return b
}

// MaxHeaderNameLength sets the header name length limit.
func (b *Builder) MaxHeaderNameLength(limit int) *Builder {
	b.cfg.maxHeaderNameLength = limit
	return b
}

// MaxHeaderValueLength sets the header value length limit.
func (b *Builder) MaxHeaderValueLength(limit int) *Builder {
	b.cfg.maxHeaderValueLength = limit
	return b
}

// MaxCookieNameLength sets the cookie name length limit.
func (b *Builder) MaxCookieNameLength(limit int) *Builder {
	b.cfg.maxCookieNameLength = limit
	return b
}

// MaxCookieValueLength sets the cookie value length limit.
func (b *Builder) MaxCookieValueLength(limit int) *Builder {
	b.cfg.maxCookieValueLength = limit
	return b
}

// MaxBodyLength sets the body length limit.
func (b *Builder) MaxBodyLength(limit int) *Builder {
	b.cfg.maxBodyLength = limit
	return b
}

// MaxParameterCount sets the query parameter count limit.
func (b *Builder) MaxParameterCount(limit int) *Builder {
	b.cfg.maxParameterCount = limit
	return b
}

// SuspiciousPaths replaces the sensitive path catalog.
func (b *Builder) SuspiciousPaths(paths []string) *Builder {
	b.cfg.suspiciousPaths = append([]string(nil), paths...)
	return b
}

// SuspiciousParameterNames replaces the parameter name catalog.
func (b *Builder) SuspiciousParameterNames(names []string) *Builder {
	b.cfg.suspiciousParameterNames = append([]string(nil), names...)
	return b
}

// CustomSignatures sets the caller-provided attack signature catalog.
func (b *Builder) CustomSignatures(signatures []string) *Builder {
	b.cfg.customSignatures = append([]string(nil), signatures...)
	return b
}

// Build validates and returns the immutable Config. All limits must be
// positive and catalog entries must be non-blank; violations are reported
// together with the offending field.
func (b *Builder) Build() (*Config, error) {
	limits := map[string]int{
		"maxPathLength":           b.cfg.maxPathLength,
		"maxParameterNameLength":  b.cfg.maxParameterNameLength,
		"maxParameterValueLength": b.cfg.maxParameterValueLength,
		"maxHeaderNameLength":     b.cfg.maxHeaderNameLength,
		"maxHeaderValueLength":    b.cfg.maxHeaderValueLength,
		"maxCookieNameLength":     b.cfg.maxCookieNameLength,
		"maxCookieValueLength":    b.cfg.maxCookieValueLength,
		"maxBodyLength":           b.cfg.maxBodyLength,
		"maxParameterCount":       b.cfg.maxParameterCount,
	}
	for field, limit := range limits {
		if limit <= 0 {
			return nil, fmt.Errorf("%s must be positive, got %d", field, limit)
		}
	}
	catalogs := map[string][]string{
		"suspiciousPaths":          b.cfg.suspiciousPaths,
		"suspiciousParameterNames": b.cfg.suspiciousParameterNames,
		"customSignatures":         b.cfg.customSignatures,
	}
	for field, entries := range catalogs {
		for i, entry := range entries {
			if strings.TrimSpace(entry) == "" {
				return nil, fmt.Errorf("%s[%d] must not be blank", field, i)
			}
		}
	}

	cfg := b.cfg
	cfg.suspiciousPaths = append([]string(nil), b.cfg.suspiciousPaths...)
	cfg.suspiciousParameterNames = append([]string(nil), b.cfg.suspiciousParameterNames...)
	cfg.customSignatures = append([]string(nil), b.cfg.customSignatures...)
	return &cfg, nil
}
