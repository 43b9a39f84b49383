// Copyright (c) 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bech32

import (
	"errors"
	"fmt"
)

// MaxHRPLength is the longest human-readable part that still leaves room
// for the separator and checksum within MaxLength.
const MaxHRPLength = 83

// ValidateHRP checks that hrp is a usable human-readable part: 1 to
// MaxHRPLength characters, each in the printable ASCII range 33-126, all
// of one case.
func ValidateHRP(hrp string) error {
	if len(hrp) == 0 {
		return makeError(ErrInvalidHRP, "empty human-readable part")
	}
	if len(hrp) > MaxHRPLength {
		str := fmt.Sprintf("human-readable part length %d exceeds %d",
			len(hrp), MaxHRPLength)
		return makeError(ErrInvalidHRP, str)
	}
	for i := 0; i < len(hrp); i++ {
		if hrp[i] < 33 || hrp[i] > 126 {
			str := fmt.Sprintf("invalid character in human-readable "+
				"part: %q at index %d", hrp[i], i)
			return makeIndexError(ErrInvalidHRP, i, str)
		}
	}
	if _, err := checkCase(hrp); err != nil {
		var e Error
		if !errors.As(err, &e) {
			return err
		}
		str := fmt.Sprintf("human-readable part not all lowercase or "+
			"all uppercase: case changes at index %d", e.Index)
		return makeIndexError(ErrInvalidHRP, e.Index, str)
	}
	return nil
}
