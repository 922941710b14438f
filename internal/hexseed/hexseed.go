package hexseed

import (
	"fmt"
	"github.com/pkg/errors"
	"strconv"
	"strings"
	"unicode"
)

var (
	ErrEmpty      = errors.New("empty seed")
	ErrInvalidHex = errors.New("invalid hex character")
	ErrMalformed  = errors.New("malformed hex number")
	ErrNegative   = errors.New("negative seed")
	ErrOutOfRange = errors.New("seed exceeds 32 bits")
)

// IsValidHex reports whether every non-whitespace character of str may appear in
// a hex literal: digits, a-f, A-F, the x/X radix marker and a sign. An empty
// string is vacuously valid.
func IsValidHex(str string) bool {
	for _, c := range str {
		if unicode.IsSpace(c) {
			continue
		}
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		case c == 'x', c == 'X', c == '+', c == '-':
		default:
			return false
		}
	}
	return true
}

func StripSpaces(str string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, str)
}

// IsQuit reports whether the first non-whitespace character is the quit sentinel.
func IsQuit(str string) bool {
	str = strings.TrimLeftFunc(str, unicode.IsSpace)
	return len(str) > 0 && (str[0] == 'x' || str[0] == 'X')
}

// Parse converts a user supplied hex string to a seed. Values that do not fit in
// 32 bits are rejected rather than truncated.
func Parse(str string) (uint32, error) {
	s := StripSpaces(str)
	if s == "" {
		return 0, ErrEmpty
	}
	if !IsValidHex(s) {
		return 0, errors.Wrapf(ErrInvalidHex, "%q", str)
	}
	switch s[0] {
	case '-':
		return 0, errors.Wrapf(ErrNegative, "%q", str)
	case '+':
		s = s[1:]
	}
	if len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	if s == "" || strings.ContainsAny(s, "xX+-") {
		return 0, errors.Wrapf(ErrMalformed, "%q", str)
	}
	s = strings.TrimLeft(s, "0")
	if len(s) > 8 {
		return 0, errors.Wrapf(ErrOutOfRange, "%q", str)
	}
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, errors.Wrapf(ErrMalformed, "%q: %s", str, err)
	}
	return uint32(v), nil
}

func Format(seed uint32) string {
	return fmt.Sprintf("%08X", seed)
}
