// SPDX-FileCopyrightText: Copyright 2026 CUI OSS
// SPDX-License-Identifier: Apache-2.0

package pipeline

import "github.com/cuioss/cui-http-sub001/validation"

// charBitmap is a 256-bit allow-list over single octets. The bitmaps below
// are derived from the component grammars of RFC 3986 and RFC 7230, built
// once at package init, and shared read-only by every pipeline.
type charBitmap [4]uint64

func (m *charBitmap) set(b byte) {
	m[b>>6] |= 1 << (b & 63)
}

func (m *charBitmap) setRange(lo, hi byte) {
	for b := int(lo); b <= int(hi); b++ {
		m.set(byte(b))
	}
}

func (m *charBitmap) setString(chars string) {
	for i := 0; i < len(chars); i++ {
		m.set(chars[i])
	}
}

// contains reports whether the octet is in the allow-list.
func (m *charBitmap) contains(b byte) bool {
	return m[b>>6]&(1<<(b&63)) != 0
}

// allowsHighBytes reports whether the allow-list admits octets above 0x7F.
// Used to gate code points whose UTF-8 encoding consists of such octets.
func (m *charBitmap) allowsHighBytes() bool {
	return m.contains(0x80)
}

// unreserved is the RFC 3986 §2.3 unreserved set.
const unreserved = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-._~"

var (
	// pathChars: RFC 3986 §3.3 pchar plus "/", without pct-encoded (the
	// character stage handles percent triplets positionally).
	pathChars charBitmap

	// queryChars: RFC 3986 §3.4 query component characters used for
	// parameter names and values.
	queryChars charBitmap

	// headerChars: RFC 7230 visible ASCII plus horizontal tab.
	headerChars charBitmap

	// bodyChars: printable ASCII plus tab, LF, CR, and the high octets of
	// UTF-8 multi-byte sequences.
	bodyChars charBitmap

	// cookieChars: unreserved only, the strictest class.
	cookieChars charBitmap
)

func init() {
	pathChars.setString(unreserved)
	pathChars.setString("/@:!$&'()*+,;=")

	queryChars.setString(unreserved)
	queryChars.setString("?&=!$'()*+,;")

	headerChars.setRange(0x20, 0x7E)
	headerChars.set('\t')

	bodyChars.setRange(0x20, 0x7E)
	bodyChars.set('\t')
	bodyChars.set('\n')
	bodyChars.set('\r')
	bodyChars.setRange(0x80, 0xFF)

	cookieChars.setString(unreserved)
}

// bitmapFor returns the shared allow-list for a validation type.
func bitmapFor(t validation.ValidationType) *charBitmap {
	switch t {
	case validation.URLPath:
		return &pathChars
	case validation.ParameterName, validation.ParameterValue:
		return &queryChars
	case validation.HeaderName, validation.HeaderValue:
		return &headerChars
	case validation.Body:
		return &bodyChars
	case validation.CookieName, validation.CookieValue:
		return &cookieChars
	default:
		return &cookieChars
	}
}

// isHexDigit reports whether b is an ASCII hexadecimal digit.
func isHexDigit(b byte) bool {
	switch {
	case b >= '0' && b <= '9':
		return true
	case b >= 'a' && b <= 'f':
		return true
	case b >= 'A' && b <= 'F':
		return true
	default:
		return false
	}
}

// hexValue returns the numeric value of an ASCII hex digit.
func hexValue(b byte) byte {
	switch {
	case b >= '0' && b <= '9':
		return b - '0'
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10
	default:
		return b - 'A' + 10
	}
}
