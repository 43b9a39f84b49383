// Copyright (c) 2017 The btcsuite developers
// Copyright (c) 2017 The Lightning Network Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bech32

import (
	"fmt"
	"strings"
)

const (
	// MaxLength is the maximum length of a bech32 string, including the
	// human-readable part, separator and checksum.
	MaxLength = 90

	// MinLength is the minimum length of a bech32 string: a one character
	// human-readable part, the separator and the checksum.
	MinLength = 1 + 1 + ChecksumLength

	// Separator divides the human-readable part from the data part.  The
	// last occurrence in a string is the separator since the
	// human-readable part may contain it too.
	Separator = '1'
)

// Encode encodes a byte slice into a bech32 string with the given
// human-readable part (HRP).  Note that the bytes must each encode 5 bits
// (base32).  The output is lowercase.
func Encode(hrp string, data []byte) (string, error) {
	return EncodeVersion(hrp, data, Version0)
}

// EncodeM is the exactly same as the Encode method, but it uses the new
// bech32m constant instead.
func EncodeM(hrp string, data []byte) (string, error) {
	return EncodeVersion(hrp, data, VersionM)
}

// EncodeVersion encodes 5-bit values into a lowercase string with the
// checksum of the given version.
func EncodeVersion(hrp string, data []byte, version Version) (string, error) {
	return encode(hrp, data, version, Lower)
}

// EncodeUpper is like EncodeVersion but renders the whole string in upper
// case, which QR codes store more compactly.
func EncodeUpper(hrp string, data []byte, version Version) (string, error) {
	return encode(hrp, data, version, Upper)
}

func encode(hrp string, data []byte, version Version, c Case) (string, error) {
	if err := ValidateHRP(hrp); err != nil {
		return "", err
	}
	checksumConst, ok := version.Const()
	if !ok {
		str := fmt.Sprintf("unknown bech32 version %d", version)
		return "", makeError(ErrInvalidVersion, str)
	}

	total := len(hrp) + 1 + len(data) + ChecksumLength
	if total > MaxLength {
		str := fmt.Sprintf("encoded length %d exceeds %d", total, MaxLength)
		return "", makeError(ErrTooLong, str)
	}

	// The checksum is always computed over the lowercase form of the
	// human-readable part.
	hrp = lowerASCII(hrp)
	checksum := createChecksum(hrp, data, checksumConst)

	var sb strings.Builder
	sb.Grow(total)
	for i := 0; i < len(hrp); i++ {
		if c == Upper {
			sb.WriteByte(toUpper(hrp[i]))
		} else {
			sb.WriteByte(hrp[i])
		}
	}
	sb.WriteByte(Separator)
	for i, v := range data {
		ch, err := ValueChar(v, c)
		if err != nil {
			str := fmt.Sprintf("value %d at data index %d does not "+
				"fit in 5 bits", v, i)
			return "", makeIndexError(ErrInvalidValue, i, str)
		}
		sb.WriteByte(ch)
	}
	sb.WriteString(renderValues(checksum, c))

	return sb.String(), nil
}

// Decode decodes a bech32 encoded string, returning the human-readable part
// and the data part excluding the checksum.  Only the original bech32
// checksum is accepted; use DecodeGeneric to also accept bech32m.
//
// Note that the returned data is 5-bit (base32) encoded and the
// human-readable part is lowercase.
func Decode(bech string) (string, []byte, error) {
	hrp, data, _, err := DecodeVersions(bech, Version0)
	return hrp, data, err
}

// DecodeGeneric is identical to Decode except it accepts both bech32 and
// bech32m checksums and returns the version it validated under.
func DecodeGeneric(bech string) (string, []byte, Version, error) {
	return DecodeVersions(bech)
}

// DecodeVersions decodes a bech32 string whose checksum is valid for one of
// the allowed versions, defaulting to every known version when none are
// given.  It returns the lowercase human-readable part, the 5-bit data
// part without the checksum and the version the checksum validated under.
func DecodeVersions(bech string, allowed ...Version) (string, []byte, Version, error) {
	if len(bech) > MaxLength {
		// Mixed case takes precedence over every other failure.
		if _, err := checkCase(bech); err != nil {
			return "", nil, VersionUnknown, err
		}
		str := fmt.Sprintf("invalid bech32 string length %d exceeds %d",
			len(bech), MaxLength)
		return "", nil, VersionUnknown, makeError(ErrTooLong, str)
	}
	return decodeNoLimit(bech, allowed)
}

// DecodeNoLimit is like DecodeGeneric but does not enforce MaxLength.
// BOLT-11 payment requests, for example, are far longer than 90 characters.
func DecodeNoLimit(bech string) (string, []byte, Version, error) {
	return decodeNoLimit(bech, nil)
}

func decodeNoLimit(bech string, allowed []Version) (string, []byte, Version, error) {
	// The characters must be either all lowercase or all uppercase.
	if _, err := checkCase(bech); err != nil {
		return "", nil, VersionUnknown, err
	}

	if len(bech) < MinLength {
		str := fmt.Sprintf("invalid bech32 string length %d, need at "+
			"least %d", len(bech), MinLength)
		return "", nil, VersionUnknown, makeError(ErrTooShort, str)
	}

	cands, err := candidates(allowed)
	if err != nil {
		return "", nil, VersionUnknown, err
	}

	// We'll work with the lowercase string from now on.
	bech = lowerASCII(bech)

	one := strings.LastIndexByte(bech, Separator)
	switch {
	case one == -1:
		return "", nil, VersionUnknown, makeError(ErrMissingSeparator,
			"separator '1' not found")

	case one == 0:
		return "", nil, VersionUnknown, makeIndexError(ErrInvalidHRP, 0,
			"empty human-readable part")

	case one+1+ChecksumLength > len(bech):
		str := fmt.Sprintf("%d characters after the separator, need "+
			"at least %d for the checksum", len(bech)-one-1,
			ChecksumLength)
		return "", nil, VersionUnknown, makeError(ErrTooShort, str)
	}

	hrp := bech[:one]
	if err := ValidateHRP(hrp); err != nil {
		return "", nil, VersionUnknown, err
	}

	data, err := toBytes(bech[one+1:], one+1)
	if err != nil {
		return "", nil, VersionUnknown, err
	}

	version, err := verifyChecksum(hrp, data, cands)
	if err != nil {
		return "", nil, VersionUnknown, err
	}

	return hrp, data[:len(data)-ChecksumLength], version, nil
}
