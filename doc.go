// Copyright (c) 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package bech32 provides a Go implementation of the bech32 format specified in
BIP 173 and its bech32m revision specified in BIP 350.

Bech32 strings consist of a human-readable part (hrp), followed by the
separator 1, then a checksummed data part encoded using the 32 characters
"qpzry9x8gf2tvdw0s3jn54khce6mua7l".  The two versions share the alphabet and
the checksum polynomial and differ only in the constant the checksum is
XORed with.

The Encode and Decode family works on 5-bit values, while EncodeFromBase256
and DecodeToBase256 regroup ordinary bytes.  Decoders accept all-lowercase
or all-uppercase input and always return the human-readable part in lower
case; encoders output lowercase unless EncodeUpper is used.

Errors

Every error returned by this package is an Error wrapping one of the
ErrorKind values, so callers can test for a specific failure with errors.Is:

	_, _, _, err := bech32.DecodeGeneric(s)
	if errors.Is(err, bech32.ErrChecksumMismatch) {
		// ...
	}

More info: https://github.com/bitcoin/bips/blob/master/bip-0173.mediawiki
*/
package bech32
