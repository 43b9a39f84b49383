// Copyright (c) 2021 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bech32

// ChecksumConst is a type that represents the currently defined bech32
// checksum constants.
type ChecksumConst uint32

const (
	// Version0Const is the original constant used in the checksum
	// verification for bech32.
	Version0Const ChecksumConst = 1

	// VersionMConst is the new constant used for bech32m checksum
	// verification.
	VersionMConst ChecksumConst = 0x2bc830a3
)

// Version defines the current set of bech32 versions.
type Version uint8

const (
	// Version0 defines the original bech version.
	Version0 Version = iota

	// VersionM is the new bech32 version defined in BIP-350, also known as
	// bech32m.
	VersionM

	// VersionUnknown denotes an unknown bech version.
	VersionUnknown
)

// versions lists every known version in the order decoders try them.
var versions = [...]Version{Version0, VersionM}

// Const returns the checksum constant associated with the version.  The
// second return value is false for VersionUnknown and undefined versions.
func (v Version) Const() (ChecksumConst, bool) {
	switch v {
	case Version0:
		return Version0Const, true
	case VersionM:
		return VersionMConst, true
	}
	return 0, false
}

// String returns the version as a human-readable name.
func (v Version) String() string {
	switch v {
	case Version0:
		return "bech32"
	case VersionM:
		return "bech32m"
	}
	return "unknown"
}

// ConstToVersion returns the version a checksum constant is associated
// with, or VersionUnknown.
func ConstToVersion(c ChecksumConst) Version {
	switch c {
	case Version0Const:
		return Version0
	case VersionMConst:
		return VersionM
	}
	return VersionUnknown
}
