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
	ErrMalformed        = errors.New("malformed UPI")
	ErrChecksumMismatch = errors.New("UPI checksum mismatch")
)

// MarshalText implements encoding.TextMarshaler. The zero UPI encodes as an
// empty string.
func (u UPI) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unlike Parse, it only
// accepts UPIs that pass Validate; the error's cause is ErrMalformed if the
// text isn't structured like a UPI, or ErrChecksumMismatch if the checksum is
// wrong.
//
// Empty text decodes to the zero UPI.
func (u *UPI) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*u = UPI{}
		return nil
	}

	parsed, err := parseValid(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// MustParse returns the UPI represented by s. It panics unless Validate(s).
//
// It's meant for tests and package-level variables holding known UPIs.
func MustParse(s string) UPI {
	u, err := parseValid(s)
	if err != nil {
		panic(err)
	}
	return u
}

func parseValid(s string) (UPI, error) {
	u, ok := Parse(s)
	if !ok {
		return UPI{}, errors.Wrapf(ErrMalformed, "%q doesn't match "+
			"COUNTRY-JURISDICTION-PARCEL-CHECKSUM", s)
	}
	if !u.Valid() {
		return UPI{}, errors.Wrapf(ErrChecksumMismatch, "%q has checksum %s, "+
			"but its components give %s",
			s, u.checksum, checksum(u.country, u.jurisdiction, u.parcel))
	}
	return u, nil
}
