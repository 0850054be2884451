/* Apache v2 license
 * Copyright (C) 2025 Open Listing Foundation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package upi

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"github.com/pkg/errors"
	"regexp"
	"strings"
)

// Field length bounds. New checks component lengths against these, and
// upiRegex is built from the same values.
const (
	CountryLen         = 2
	MinJurisdictionLen = 2
	MaxJurisdictionLen = 5
	MinParcelLen       = 1
	MaxParcelLen       = 20
	ChecksumLen        = 8

	// Separator joins the four fields of a UPI.
	Separator = "-"
)

var (
	ErrInvalidCountryCode      = errors.New("invalid country code")
	ErrInvalidJurisdictionCode = errors.New("invalid jurisdiction code")
	ErrInvalidParcelCode       = errors.New("invalid parcel code")
)

// upiRegex matches the four fields of a UPI in any letter case. Its bounds
// must stay the ones validateComponents checks.
//
// Only ASCII letters and digits match; (?i) would also fold in non-ASCII
// letters such as 'K' (Kelvin sign).
var upiRegex = regexp.MustCompile(fmt.Sprintf(
	`^([A-Za-z]{%d})-([A-Za-z0-9]{%d,%d})-([A-Za-z0-9]{%d,%d})-([A-Za-z0-9]{%d})$`,
	CountryLen,
	MinJurisdictionLen, MaxJurisdictionLen,
	MinParcelLen, MaxParcelLen,
	ChecksumLen))

// UPI is a Universal Property Identifier: a country code, a jurisdiction code,
// a parcel code and a checksum over the three.
//
// All fields are stored in their canonical, upper-case form. A UPI is a value;
// once built by New or Parse it never changes. The zero value represents the
// absence of a UPI.
//
// Although the parcel code often looks like a number, it's always treated as
// text: "00123" and "123" are different parcels, and leading '0's are kept.
type UPI struct {
	country      string
	jurisdiction string
	parcel       string
	checksum     string
}

func (u UPI) Country() string {
	return u.country
}

func (u UPI) Jurisdiction() string {
	return u.jurisdiction
}

func (u UPI) Parcel() string {
	return u.parcel
}

// Checksum returns the UPI's checksum as it was generated or parsed.
//
// For a UPI returned by Parse, this is whatever the input carried; use Valid
// to find out whether it matches the other components.
func (u UPI) Checksum() string {
	return u.checksum
}

// IsZero returns true if this is the zero UPI, e.g., the result of a failed
// Parse.
func (u UPI) IsZero() bool {
	return u == UPI{}
}

// String returns the UPI's textual form:
//
//	COUNTRY-JURISDICTION-PARCEL-CHECKSUM
//
// The zero UPI returns an empty string.
func (u UPI) String() string {
	if u.IsZero() {
		return ""
	}
	return u.country + Separator + u.jurisdiction + Separator +
		u.parcel + Separator + u.checksum
}

// Valid returns true if the UPI's checksum matches its components.
func (u UPI) Valid() bool {
	if u.IsZero() {
		return false
	}
	return u.checksum == checksum(u.country, u.jurisdiction, u.parcel)
}

// New returns the UPI for the given components, or an error if any of them has
// an invalid length.
//
// Lengths are checked on the input as given, before normalization, in the
// order country, jurisdiction, parcel; the error reports the first failure and
// its cause is one of ErrInvalidCountryCode, ErrInvalidJurisdictionCode or
// ErrInvalidParcelCode. Only lengths are checked: use CheckEncodable to also
// ensure the result will pass Validate.
func New(country, jurisdiction, parcel string) (UPI, error) {
	if err := validateComponents(country, jurisdiction, parcel); err != nil {
		return UPI{}, err
	}

	u := UPI{
		country:      toUpperASCII(country),
		jurisdiction: toUpperASCII(jurisdiction),
		parcel:       toUpperASCII(parcel),
	}
	u.checksum = checksum(u.country, u.jurisdiction, u.parcel)
	return u, nil
}

// Generate is a convenience function that returns the textual form of the UPI
// for the given components. See New for the validation rules.
//
// The result depends only on the inputs, ignoring their case:
// Generate("us", "az", "50123") == Generate("US", "AZ", "50123").
func Generate(country, jurisdiction, parcel string) (string, error) {
	u, err := New(country, jurisdiction, parcel)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

// Validate returns true if s is a well-formed UPI with a correct checksum.
//
// Letter case is ignored. A string that doesn't look like a UPI, or whose
// checksum doesn't match, is simply not valid: it's never an error.
func Validate(s string) bool {
	u, ok := Parse(s)
	return ok && u.Valid()
}

// Parse splits a UPI into its components, or returns false if s doesn't have
// the structure of a UPI.
//
// The components are returned in upper case. The checksum is NOT verified;
// use Validate, or Valid on the result, for that.
func Parse(s string) (UPI, bool) {
	m := upiRegex.FindStringSubmatch(s)
	if m == nil {
		return UPI{}, false
	}
	return UPI{
		country:      toUpperASCII(m[1]),
		jurisdiction: toUpperASCII(m[2]),
		parcel:       toUpperASCII(m[3]),
		checksum:     toUpperASCII(m[4]),
	}, true
}

// Checksum returns the checksum for the given components: the first 8 hex
// characters, in upper case, of the SHA-256 digest of the upper-cased
// components concatenated without a separator.
//
// The components' lengths are not checked.
func Checksum(country, jurisdiction, parcel string) string {
	return checksum(toUpperASCII(country), toUpperASCII(jurisdiction),
		toUpperASCII(parcel))
}

// checksum expects already normalized components.
func checksum(country, jurisdiction, parcel string) string {
	sum := sha256.Sum256([]byte(country + jurisdiction + parcel))
	return strings.ToUpper(hex.EncodeToString(sum[:ChecksumLen/2]))
}

func validateComponents(country, jurisdiction, parcel string) error {
	if len(country) != CountryLen {
		return errors.Wrapf(ErrInvalidCountryCode, "country code must be "+
			"exactly %d characters, but %q has %d",
			CountryLen, country, len(country))
	}
	if len(jurisdiction) < MinJurisdictionLen || len(jurisdiction) > MaxJurisdictionLen {
		return errors.Wrapf(ErrInvalidJurisdictionCode, "jurisdiction code "+
			"must be between %d and %d characters, but %q has %d",
			MinJurisdictionLen, MaxJurisdictionLen, jurisdiction, len(jurisdiction))
	}
	if len(parcel) < MinParcelLen || len(parcel) > MaxParcelLen {
		return errors.Wrapf(ErrInvalidParcelCode, "parcel code must be "+
			"between %d and %d characters, but %q has %d",
			MinParcelLen, MaxParcelLen, parcel, len(parcel))
	}
	return nil
}
