// Copyright (c) 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bech32

import "fmt"

// Charset is the set of characters used in the data section of bech32
// strings.  The character at position i encodes the 5-bit value i.
const Charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

// Case selects the letter case used when rendering values.
type Case uint8

const (
	// Lower renders lowercase characters.  This is what encoders are
	// expected to output.
	Lower Case = iota

	// Upper renders uppercase characters, which encode more compactly in
	// alphanumeric QR codes.
	Upper
)

// charsetRev maps an ASCII byte to its 5-bit value, or -1 when the byte is
// not part of Charset.  Both cases map to the same value.
var charsetRev = [128]int8{
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	15, -1, 10, 17, 21, 20, 26, 30, 7, 5, -1, -1, -1, -1, -1, -1,
	-1, 29, -1, 24, 13, 25, 9, 8, 23, -1, 18, 22, 31, 27, 19, -1,
	1, 0, 3, 16, 11, 28, 12, 14, 6, 4, 2, -1, -1, -1, -1, -1,
	-1, 29, -1, 24, 13, 25, 9, 8, 23, -1, 18, 22, 31, 27, 19, -1,
	1, 0, 3, 16, 11, 28, 12, 14, 6, 4, 2, -1, -1, -1, -1, -1,
}

// CharValue returns the 5-bit value encoded by the charset character c.
// Upper and lower case characters are accepted alike.
func CharValue(c byte) (byte, error) {
	if c >= 128 || charsetRev[c] == -1 {
		str := fmt.Sprintf("invalid character not part of charset: %q", c)
		return 0, makeError(ErrInvalidChar, str)
	}
	return byte(charsetRev[c]), nil
}

// ValueChar returns the charset character for the 5-bit value v in the
// requested case.
func ValueChar(v byte, c Case) (byte, error) {
	if v >= 32 {
		str := fmt.Sprintf("value %d does not fit in 5 bits", v)
		return 0, makeError(ErrInvalidValue, str)
	}
	ch := Charset[v]
	if c == Upper {
		ch = toUpper(ch)
	}
	return ch, nil
}

// toBytes converts each character in chars to its 5-bit value.  The index
// of an invalid character is reported relative to chars, offset by base.
func toBytes(chars string, base int) ([]byte, error) {
	decoded := make([]byte, 0, len(chars))
	for i := 0; i < len(chars); i++ {
		v, err := CharValue(chars[i])
		if err != nil {
			str := fmt.Sprintf("invalid character not part of "+
				"charset: %q at index %d", chars[i], base+i)
			return nil, makeIndexError(ErrInvalidChar, base+i, str)
		}
		decoded = append(decoded, v)
	}
	return decoded, nil
}

// checkCase returns an ErrMixedCase error when s contains both upper and
// lower case ASCII letters.  Otherwise it reports whether any uppercase
// letter was seen.
func checkCase(s string) (bool, error) {
	var hasLower, hasUpper bool
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= 'a' && c <= 'z':
			hasLower = true
		case c >= 'A' && c <= 'Z':
			hasUpper = true
		default:
			continue
		}
		if hasLower && hasUpper {
			str := fmt.Sprintf("string not all lowercase or all "+
				"uppercase: case changes at index %d", i)
			return false, makeIndexError(ErrMixedCase, i, str)
		}
	}
	return hasUpper, nil
}

func toUpper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

func toLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// lowerASCII returns s with its ASCII letters lowercased.  Other bytes,
// including non-ASCII ones, are left untouched.
func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		b[i] = toLower(c)
	}
	return string(b)
}
