/* Apache v2 license
 * Copyright (C) 2025 Open Listing Foundation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package upi

import (
	"github.com/pkg/errors"
)

var (
	// ASCII letters, either case; valid in every UPI field
	alphaCharSet = [128]uint8{
		'A': 1, 'B': 1, 'C': 1, 'D': 1, 'E': 1, 'F': 1, 'G': 1, 'H': 1, 'I': 1,
		'J': 1, 'K': 1, 'L': 1, 'M': 1, 'N': 1, 'O': 1, 'P': 1, 'Q': 1, 'R': 1,
		'S': 1, 'T': 1, 'U': 1, 'V': 1, 'W': 1, 'X': 1, 'Y': 1, 'Z': 1,
		'a': 1, 'b': 1, 'c': 1, 'd': 1, 'e': 1, 'f': 1, 'g': 1, 'h': 1, 'i': 1,
		'j': 1, 'k': 1, 'l': 1, 'm': 1, 'n': 1, 'o': 1, 'p': 1, 'q': 1, 'r': 1,
		's': 1, 't': 1, 'u': 1, 'v': 1, 'w': 1, 'x': 1, 'y': 1, 'z': 1,
	}

	// ASCII letters and digits; valid in all but the country code
	alphanumericCharSet = [128]uint8{
		'0': 1, '1': 1, '2': 1, '3': 1, '4': 1, '5': 1, '6': 1, '7': 1, '8': 1, '9': 1,
		'A': 1, 'B': 1, 'C': 1, 'D': 1, 'E': 1, 'F': 1, 'G': 1, 'H': 1, 'I': 1,
		'J': 1, 'K': 1, 'L': 1, 'M': 1, 'N': 1, 'O': 1, 'P': 1, 'Q': 1, 'R': 1,
		'S': 1, 'T': 1, 'U': 1, 'V': 1, 'W': 1, 'X': 1, 'Y': 1, 'Z': 1,
		'a': 1, 'b': 1, 'c': 1, 'd': 1, 'e': 1, 'f': 1, 'g': 1, 'h': 1, 'i': 1,
		'j': 1, 'k': 1, 'l': 1, 'm': 1, 'n': 1, 'o': 1, 'p': 1, 'q': 1, 'r': 1,
		's': 1, 't': 1, 'u': 1, 'v': 1, 'w': 1, 'x': 1, 'y': 1, 'z': 1,
	}
)

// IsAlpha returns true if the string contains only ASCII letters.
// An empty string is trivially alphabetic.
func IsAlpha(s string) bool {
	return inCharSet(&alphaCharSet, s)
}

// IsAlphanumeric returns true if the string contains only ASCII letters and
// the digits 0-9. An empty string is trivially alphanumeric.
func IsAlphanumeric(s string) bool {
	return inCharSet(&alphanumericCharSet, s)
}

func inCharSet(set *[128]uint8, s string) bool {
	for i := 0; i < len(s); i++ {
		if !(s[i] < 128 && set[s[i]] == 1) {
			return false
		}
	}
	return true
}

// toUpperASCII upper-cases ASCII letters and leaves every other byte alone,
// so normalizing never changes a component's length, even for invalid UTF-8.
func toUpperASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'a' <= c && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
	return string(b)
}

// CheckEncodable returns nil if New accepts the components AND the UPI it
// builds from them will pass Validate; otherwise, it returns an error with the
// same causes New uses.
//
// New only checks lengths, so New("US", "A-", "1") succeeds, but the hyphen in
// the jurisdiction means the result can never be parsed. Call this first if the
// components come from an untrusted source.
func CheckEncodable(country, jurisdiction, parcel string) error {
	if err := validateComponents(country, jurisdiction, parcel); err != nil {
		return err
	}
	if !IsAlpha(country) {
		return errors.Wrapf(ErrInvalidCountryCode, "country code may only "+
			"contain the letters A-Z, but is %q", country)
	}
	if !IsAlphanumeric(jurisdiction) {
		return errors.Wrapf(ErrInvalidJurisdictionCode, "jurisdiction code "+
			"may only contain the letters A-Z and digits 0-9, but is %q",
			jurisdiction)
	}
	if !IsAlphanumeric(parcel) {
		return errors.Wrapf(ErrInvalidParcelCode, "parcel code may only "+
			"contain the letters A-Z and digits 0-9, but is %q", parcel)
	}
	return nil
}
