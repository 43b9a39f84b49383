// Copyright (c) 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bech32

import "fmt"

// ConvertBits converts a byte slice where each byte is encoding fromBits bits,
// to a byte slice where each byte is encoding toBits bits.  Groups are packed
// most significant bit first.
//
// When pad is true a final partial group is filled with trailing zero bits.
// When pad is false the leftover bits must be fewer than fromBits and all
// zero, otherwise ErrIncompleteGroup or ErrNonZeroPadding is returned.
func ConvertBits(data []byte, fromBits, toBits uint8, pad bool) ([]byte, error) {
	if fromBits < 1 || fromBits > 8 || toBits < 1 || toBits > 8 {
		str := fmt.Sprintf("only bit groups between 1 and 8 allowed, "+
			"got %d and %d", fromBits, toBits)
		return nil, makeError(ErrInvalidBitGroups, str)
	}

	maxSize := len(data)*int(fromBits)/int(toBits) + 1
	regrouped := make([]byte, 0, maxSize)

	// acc holds at most fromBits+toBits-1 pending bits, of which the low
	// nBits are meaningful.
	var acc uint32
	var nBits uint8
	inMask := uint32(1)<<fromBits - 1
	outMask := uint32(1)<<toBits - 1
	for i, b := range data {
		if uint32(b)&^inMask != 0 {
			str := fmt.Sprintf("value %d at index %d does not fit in "+
				"%d bits", b, i, fromBits)
			return nil, makeIndexError(ErrInvalidValue, i, str)
		}
		acc = acc<<fromBits | uint32(b)
		nBits += fromBits
		for nBits >= toBits {
			nBits -= toBits
			regrouped = append(regrouped, byte(acc>>nBits&outMask))
		}
		acc &= uint32(1)<<nBits - 1
	}

	switch {
	case pad:
		if nBits > 0 {
			regrouped = append(regrouped, byte(acc<<(toBits-nBits)&outMask))
		}

	case nBits >= fromBits:
		str := fmt.Sprintf("%d leftover bits do not form a padding "+
			"group shorter than %d bits", nBits, fromBits)
		return nil, makeError(ErrIncompleteGroup, str)

	case acc != 0:
		str := fmt.Sprintf("%d leftover padding bits are not zero", nBits)
		return nil, makeError(ErrNonZeroPadding, str)
	}

	return regrouped, nil
}
