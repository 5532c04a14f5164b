// SPDX-FileCopyrightText: Copyright 2026 CUI OSS
// SPDX-License-Identifier: Apache-2.0

package pipeline

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/cuioss/cui-http-sub001/config"
	"github.com/cuioss/cui-http-sub001/validation"
)

// doubleEncodedLiterals are percent-encodings of percent-encoded attack
// fragments ("%2E%2E", "%2F", "%5C"), matched case-insensitively on the raw
// input. A match means the sender prepared the input for two decode passes.
var doubleEncodedLiterals = []string{
	"%252e%252e",
	"%252f",
	"%255c",
}

// DecodingStage performs exactly one layer of percent-decoding. It operates
// at the HTTP protocol layer only: application-layer encodings (HTML
// entities, JS escapes, octal escapes) pass through byte-for-byte.
//
// Beyond decoding it rejects a hidden second encoding layer, malformed hex
// escapes, overlong UTF-8 byte sequences, and, when the policy demands
// Unicode normalization, any input whose NFC form differs from the decoded
// string. The stage fails closed; it never normalizes silently.
type DecodingStage struct {
	cfg            *config.Config
	validationType validation.ValidationType
}

// NewDecodingStage returns the decoding stage for the given component type.
func NewDecodingStage(cfg *config.Config, t validation.ValidationType) *DecodingStage {
	return &DecodingStage{cfg: cfg, validationType: t}
}

// Validate implements validation.Validator.
func (s *DecodingStage) Validate(input *string) (*string, error) {
	if input == nil {
		return nil, nil
	}
	value := *input
	if value == "" {
		return input, nil
	}

	if s.isDoubleEncoded(value) {
		if !s.cfg.AllowDoubleEncoding() {
			return nil, s.fail(validation.DoubleEncoding, value,
				"second percent-encoding layer detected")
		}
		// Tolerated by policy: decode exactly one layer and stop. The
		// remaining layer is handed to the caller untouched.
		decoded, err := s.decodeOneLayer(value)
		if err != nil {
			return nil, err
		}
		return &decoded, nil
	}

	decoded, err := s.decodeOneLayer(value)
	if err != nil {
		return nil, err
	}

	if off, ok := findOverlongSequence(decoded); ok {
		return nil, s.fail(validation.InvalidEncoding, value,
			fmt.Sprintf("overlong UTF-8 sequence at decoded offset %d", off))
	}

	if !utf8.ValidString(decoded) {
		return nil, s.fail(validation.MalformedUTF8, value,
			"decoded bytes are not valid UTF-8")
	}

	if s.cfg.NormalizeUnicode() {
		normalized := norm.NFC.String(decoded)
		if normalized != decoded {
			return nil, validation.NewError(validation.UnicodeNormalizationChanged).
				ValidationType(s.validationType).
				OriginalInput(value).
				SanitizedInput(normalized).
				Detail("decoded input is not in NFC form").
				MustBuild()
		}
	}

	return &decoded, nil
}

// isDoubleEncoded reports whether the raw input hides a second
// percent-encoding layer: "%25" followed by two hex digits, or a known
// doubly-escaped literal.
func (s *DecodingStage) isDoubleEncoded(value string) bool {
	lower := strings.ToLower(value)
	for _, literal := range doubleEncodedLiterals {
		if strings.Contains(lower, literal) {
			return true
		}
	}
	for i := 0; i+4 < len(lower); i++ {
		if lower[i] == '%' && lower[i+1] == '2' && lower[i+2] == '5' &&
			isHexDigit(lower[i+3]) && isHexDigit(lower[i+4]) {
			return true
		}
	}
	return false
}

// decodeOneLayer resolves every well-formed percent triplet to its octet.
// A malformed triplet aborts the decode; the low-level position error is
// wrapped as the cause.
func (s *DecodingStage) decodeOneLayer(value string) (string, error) {
	if !strings.Contains(value, "%") {
		return value, nil
	}
	var b strings.Builder
	b.Grow(len(value))
	for i := 0; i < len(value); {
		if value[i] != '%' {
			b.WriteByte(value[i])
			i++
			continue
		}
		if i+2 >= len(value) {
			return "", s.failWithCause(validation.InvalidEncoding, value,
				fmt.Errorf("truncated percent sequence at offset %d", i))
		}
		hi, lo := value[i+1], value[i+2]
		if !isHexDigit(hi) || !isHexDigit(lo) {
			return "", s.failWithCause(validation.InvalidEncoding, value,
				fmt.Errorf("invalid hex digits %q at offset %d", value[i:i+3], i))
		}
		b.WriteByte(hexValue(hi)<<4 | hexValue(lo))
		i += 3
	}
	return b.String(), nil
}

// findOverlongSequence scans decoded bytes for non-shortest-form UTF-8:
// 0xC0/0xC1 lead bytes encode code points below 0x80 (e.g. %c0%ae for '.'),
// 0xE0 with a continuation below 0xA0 encodes below 0x800, and 0xF0 with a
// continuation below 0x90 encodes below 0x10000.
func findOverlongSequence(decoded string) (int, bool) {
	for i := 0; i < len(decoded); i++ {
		b := decoded[i]
		switch {
		case b == 0xC0 || b == 0xC1:
			return i, true
		case b == 0xE0:
			if i+1 < len(decoded) && decoded[i+1] >= 0x80 && decoded[i+1] < 0xA0 {
				return i, true
			}
		case b == 0xF0:
			if i+1 < len(decoded) && decoded[i+1] >= 0x80 && decoded[i+1] < 0x90 {
				return i, true
			}
		}
	}
	return 0, false
}

func (s *DecodingStage) fail(failure validation.FailureType, value, detail string) error {
	return validation.NewError(failure).
		ValidationType(s.validationType).
		OriginalInput(value).
		Detail(detail).
		MustBuild()
}

func (s *DecodingStage) failWithCause(failure validation.FailureType, value string, cause error) error {
	return validation.NewError(failure).
		ValidationType(s.validationType).
		OriginalInput(value).
		Cause(cause).
		MustBuild()
}
