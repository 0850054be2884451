/* Apache v2 license
 * Copyright (C) 2025 Open Listing Foundation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package upi generates, validates and parses Universal Property Identifiers
// (UPIs), as defined by the Open Listing Foundation UPI Standard v1.0.
//
// A UPI gives a piece of land or property a single, human-readable key that
// works the same way regardless of which jurisdiction recorded it. It combines
// three components with a checksum:
//
//	COUNTRY-JURISDICTION-PARCEL-CHECKSUM
//	US-AZ-50123-6BBECEFC
//
//   - COUNTRY is a 2 letter code, usually ISO 3166-1 alpha-2.
//   - JURISDICTION is 2 to 5 letters or digits, usually a FIPS or similar code.
//   - PARCEL is 1 to 20 letters or digits: the assessor's parcel number.
//   - CHECKSUM is 8 hex digits derived from the other three.
//
// The canonical form of a UPI is upper case. Generation upper-cases its inputs
// and parsing accepts any case, so "us-az-50123-6bbecefc" is the same UPI as
// the example above. Nothing else about the components is interpreted: country
// and jurisdiction codes are not looked up in any registry, and the parcel is
// text, not a number, so its leading '0's are significant.
//
// The checksum is the first 8 characters of the hex-encoded SHA-256 digest of
// the upper-cased components concatenated without separators ("USAZ50123" in
// the example above), in upper case. It guards against transcription errors;
// it is far too short to resist deliberate forgery and shouldn't be treated as
// a security feature.
//
// There are two kinds of failure, and they're reported differently. Building a
// UPI from components that violate the length rules is a caller error: New and
// Generate return an error whose cause is ErrInvalidCountryCode,
// ErrInvalidJurisdictionCode or ErrInvalidParcelCode. On the other hand, a
// string that isn't a valid UPI is a perfectly ordinary input: Validate returns
// false and Parse returns false, with no error.
//
// Everything in this package is a pure function of its inputs and is safe for
// concurrent use.
package upi
