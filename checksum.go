// Copyright (c) 2017 The btcsuite developers
// Copyright (c) 2017 The Lightning Network Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bech32

import (
	"errors"
	"fmt"
	"strings"
)

// Generator coefficients of the BCH code defined in BIP-173.
const (
	gen0 = 0x3b6a57b2
	gen1 = 0x26508e6d
	gen2 = 0x1ea119fa
	gen3 = 0x3d4233dd
	gen4 = 0x2a1462b3
)

// ChecksumLength is the number of 5-bit values in a bech32 checksum.
const ChecksumLength = 6

// polymodStep feeds the 5-bit value v into the 30-bit checksum
// accumulator chk and returns the new accumulator.
func polymodStep(chk uint32, v byte) uint32 {
	top := chk >> 25
	chk = (chk&0x1ffffff)<<5 ^ uint32(v)
	if top&1 != 0 {
		chk ^= gen0
	}
	if top&2 != 0 {
		chk ^= gen1
	}
	if top&4 != 0 {
		chk ^= gen2
	}
	if top&8 != 0 {
		chk ^= gen3
	}
	if top&16 != 0 {
		chk ^= gen4
	}
	return chk
}

// polymod computes the BCH checksum remainder over values.
func polymod(values []byte) uint32 {
	chk := uint32(1)
	for _, v := range values {
		chk = polymodStep(chk, v)
	}
	return chk
}

// hrpExpand returns the values the human-readable part contributes to the
// checksum: the high 3 bits of every character, a zero, then the low 5
// bits of every character.  hrp must already be lowercase.
func hrpExpand(hrp string) []byte {
	v := make([]byte, 0, len(hrp)*2+1)
	for i := 0; i < len(hrp); i++ {
		v = append(v, hrp[i]>>5)
	}
	v = append(v, 0)
	for i := 0; i < len(hrp); i++ {
		v = append(v, hrp[i]&31)
	}
	return v
}

// createChecksum computes the 6 checksum values for the lowercase hrp and
// data under the checksum constant c.
func createChecksum(hrp string, data []byte, c ChecksumConst) []byte {
	values := make([]byte, 0, len(hrp)*2+1+len(data)+ChecksumLength)
	values = append(values, hrpExpand(hrp)...)
	values = append(values, data...)
	values = append(values, make([]byte, ChecksumLength)...)
	mod := polymod(values) ^ uint32(c)

	res := make([]byte, ChecksumLength)
	for i := 0; i < ChecksumLength; i++ {
		res[i] = byte(mod>>uint(5*(5-i))) & 31
	}
	return res
}

// checksumResidue returns the polymod remainder of the lowercase hrp and
// data, where data still carries its trailing checksum.  The string is
// valid for a version exactly when the residue equals that version's
// checksum constant.
func checksumResidue(hrp string, data []byte) uint32 {
	values := make([]byte, 0, len(hrp)*2+1+len(data))
	values = append(values, hrpExpand(hrp)...)
	values = append(values, data...)
	return polymod(values)
}

// candidate pairs a version with the checksum constant it validates
// against.
type candidate struct {
	version Version
	c       ChecksumConst
}

// candidates returns the deduplicated candidate list for the allowed
// versions, preserving their order.  No versions means every known one.
func candidates(allowed []Version) ([]candidate, error) {
	if len(allowed) == 0 {
		allowed = versions[:]
	}
	cands := make([]candidate, 0, len(allowed))
next:
	for _, v := range allowed {
		c, ok := v.Const()
		if !ok {
			str := fmt.Sprintf("unknown bech32 version %d", v)
			return nil, makeError(ErrInvalidVersion, str)
		}
		for _, cand := range cands {
			if cand.version == v {
				continue next
			}
		}
		cands = append(cands, candidate{version: v, c: c})
	}
	return cands, nil
}

// selectVersion returns the single candidate whose constant matches the
// residue.  It fails with ErrChecksumMismatch when none does and with
// ErrAmbiguousVariant when more than one does.
func selectVersion(residue uint32, cands []candidate) (Version, error) {
	matched := VersionUnknown
	for _, cand := range cands {
		if residue != uint32(cand.c) {
			continue
		}
		if matched != VersionUnknown {
			str := fmt.Sprintf("checksum is valid for both %v and %v",
				matched, cand.version)
			return VersionUnknown, makeError(ErrAmbiguousVariant, str)
		}
		matched = cand.version
	}
	if matched == VersionUnknown {
		return VersionUnknown, makeError(ErrChecksumMismatch,
			"checksum failed")
	}
	return matched, nil
}

// verifyChecksum checks the checksum carried at the end of data against
// the allowed candidates and returns the version it validates under.
func verifyChecksum(hrp string, data []byte, cands []candidate) (Version, error) {
	residue := checksumResidue(hrp, data)
	version, err := selectVersion(residue, cands)
	if err == nil {
		log.Tracef("Checksum for hrp %q validated as %v", hrp, version)
		return version, nil
	}
	if !errors.Is(err, ErrChecksumMismatch) {
		return VersionUnknown, err
	}

	log.Tracef("Checksum residue %#08x for hrp %q matches no allowed "+
		"version", residue, hrp)

	// Report the checksum every allowed version expects.
	payload := data[:len(data)-ChecksumLength]
	actual := renderValues(data[len(data)-ChecksumLength:], Lower)
	expected := make([]string, 0, len(cands))
	for _, cand := range cands {
		sum := renderValues(createChecksum(hrp, payload, cand.c), Lower)
		expected = append(expected, fmt.Sprintf("%v %s", cand.version, sum))
	}
	str := fmt.Sprintf("invalid checksum (expected %s got %s)",
		strings.Join(expected, " or "), actual)
	return VersionUnknown, makeError(ErrChecksumMismatch, str)
}

// renderValues converts 5-bit values to charset characters.  Values must
// already be known to fit in 5 bits.
func renderValues(values []byte, c Case) string {
	var sb strings.Builder
	sb.Grow(len(values))
	for _, v := range values {
		ch, _ := ValueChar(v&31, c)
		sb.WriteByte(ch)
	}
	return sb.String()
}
