// SPDX-FileCopyrightText: Copyright 2026 CUI OSS
// SPDX-License-Identifier: Apache-2.0

package pipeline

import (
	"fmt"
	"unicode/utf8"

	"github.com/cuioss/cui-http-sub001/config"
	"github.com/cuioss/cui-http-sub001/validation"
)

// combining mark block U+0300-U+036F; always rejected, regardless of
// configuration, because combining sequences defeat visual review and
// normalization checks downstream.
const (
	combiningLo = 0x0300
	combiningHi = 0x036F
)

// CharacterStage validates every character of the input against the
// component's RFC-derived allow-list in a single pass, exiting on the first
// violation. Percent triplets are recognized positionally for components
// whose grammar carries percent-encoding; the triplet itself is not decoded
// here (that is the decoding stage's job), only checked for well-formedness
// and for an encoded NUL.
type CharacterStage struct {
	cfg            *config.Config
	validationType validation.ValidationType
	bitmap         *charBitmap
}

// NewCharacterStage returns the character stage for the given component
// type.
func NewCharacterStage(cfg *config.Config, t validation.ValidationType) *CharacterStage {
	return &CharacterStage{cfg: cfg, validationType: t, bitmap: bitmapFor(t)}
}

// Validate implements validation.Validator.
func (s *CharacterStage) Validate(input *string) (*string, error) {
	if input == nil {
		return nil, nil
	}
	value := *input

	for i := 0; i < len(value); {
		b := value[i]

		// NUL is checked before anything else; it is the single most
		// dangerous octet in downstream string handling.
		if b == 0 {
			if s.cfg.AllowNullBytes() {
				i++
				continue
			}
			return nil, s.fail(validation.NullByteInjection, value,
				fmt.Sprintf("raw NUL byte at offset %d", i))
		}

		if b == '%' && s.validationType.SupportsPercentEncoding() {
			advance, err := s.checkPercentTriplet(value, i)
			if err != nil {
				return nil, err
			}
			i += advance
			continue
		}

		r, size := utf8.DecodeRuneInString(value[i:])
		if err := s.checkRune(r, value, i); err != nil {
			return nil, err
		}
		i += size
	}
	return input, nil
}

// checkPercentTriplet validates the percent sequence starting at offset i
// and returns how far to advance.
func (s *CharacterStage) checkPercentTriplet(value string, i int) (int, error) {
	if i+2 >= len(value) {
		return 0, s.fail(validation.InvalidEncoding, value,
			fmt.Sprintf("incomplete percent sequence at offset %d", i))
	}
	hi, lo := value[i+1], value[i+2]
	if !isHexDigit(hi) || !isHexDigit(lo) {
		return 0, s.fail(validation.InvalidEncoding, value,
			fmt.Sprintf("non-hex percent sequence %q at offset %d", value[i:i+3], i))
	}
	if hexValue(hi) == 0 && hexValue(lo) == 0 && !s.cfg.AllowNullBytes() {
		return 0, s.fail(validation.NullByteInjection, value,
			fmt.Sprintf("encoded NUL byte at offset %d", i))
	}
	return 3, nil
}

// checkRune classifies a single code point against the allow-list and the
// configured permissiveness.
func (s *CharacterStage) checkRune(r rune, value string, offset int) error {
	switch {
	case r >= 1 && r <= 31:
		if s.bitmap.contains(byte(r)) || s.cfg.AllowControlCharacters() {
			return nil
		}
		// Header contexts report every character failure uniformly.
		failure := validation.ControlCharacters
		if s.validationType.IsHeader() {
			failure = validation.InvalidCharacter
		}
		return s.fail(failure, value,
			fmt.Sprintf("control character 0x%02X at offset %d", r, offset))

	case r >= combiningLo && r <= combiningHi:
		return s.fail(validation.InvalidCharacter, value,
			fmt.Sprintf("combining mark U+%04X at offset %d", r, offset))

	case r <= 127:
		if s.bitmap.contains(byte(r)) {
			return nil
		}
		return s.fail(validation.InvalidCharacter, value,
			fmt.Sprintf("character %q at offset %d not allowed for %s", r, offset, s.validationType))

	case r <= 255:
		if s.validationType.SupportsUnicode() &&
			(s.cfg.AllowExtendedASCII() || s.bitmap.contains(byte(r))) {
			return nil
		}
		return s.fail(validation.InvalidCharacter, value,
			fmt.Sprintf("extended character U+%04X at offset %d not allowed for %s", r, offset, s.validationType))

	default:
		if s.validationType.SupportsUnicode() &&
			(s.cfg.AllowExtendedASCII() || s.bitmap.allowsHighBytes()) {
			return nil
		}
		return s.fail(validation.InvalidCharacter, value,
			fmt.Sprintf("code point U+%04X at offset %d not allowed for %s", r, offset, s.validationType))
	}
}

func (s *CharacterStage) fail(failure validation.FailureType, value, detail string) error {
	return validation.NewError(failure).
		ValidationType(s.validationType).
		OriginalInput(value).
		Detail(detail).
		MustBuild()
}
