// Copyright (c) 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bech32

// EncodeFromBase256 converts a base256-encoded byte slice into 5-bit
// groups, padding the final group with zero bits, and encodes them with
// the checksum of the given version.
func EncodeFromBase256(hrp string, data []byte, version Version) (string, error) {
	converted, err := ConvertBits(data, 8, 5, true)
	if err != nil {
		return "", err
	}
	return EncodeVersion(hrp, converted, version)
}

// DecodeToBase256 decodes a bech32 string whose checksum is valid for one
// of the allowed versions (every known version when none are given) and
// regroups the data part back into bytes.  Leftover bits must be fewer
// than five and all zero.
func DecodeToBase256(bech string, allowed ...Version) (string, []byte, Version, error) {
	hrp, data, version, err := DecodeVersions(bech, allowed...)
	if err != nil {
		return "", nil, VersionUnknown, err
	}
	converted, err := ConvertBits(data, 5, 8, false)
	if err != nil {
		return "", nil, VersionUnknown, err
	}
	return hrp, converted, version, nil
}
