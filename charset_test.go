/* Apache v2 license
 * Copyright (C) 2025 Open Listing Foundation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package upi

import (
	"fmt"
	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
	"github.com/pkg/errors"
	"strings"
	"testing"
)

func TestCharSets(t *testing.T) {
	letters := "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	digits := "0123456789"

	w := expect.WrapT(t)

	// check every byte against the obvious, slow definition
	for c := 0; c < 256; c++ {
		s := string([]byte{byte(c)})
		w.As(c).ShouldBeEqual(IsAlpha(s), strings.Contains(letters, s))
		w.As(c).ShouldBeEqual(IsAlphanumeric(s), strings.Contains(letters+digits, s))
	}

	w.ShouldBeTrue(IsAlpha(""))
	w.ShouldBeTrue(IsAlphanumeric(""))
	w.ShouldBeTrue(IsAlpha(letters))
	w.ShouldBeTrue(IsAlphanumeric(letters + digits))
	w.ShouldBeFalse(IsAlpha(letters + "0"))
	w.ShouldBeFalse(IsAlphanumeric("É"))
	w.ShouldBeFalse(IsAlphanumeric("\u212A")) // Kelvin sign
}

func TestToUpperASCII(t *testing.T) {
	w := expect.WrapT(t)
	w.ShouldBeEqual(toUpperASCII("us-az-50123"), "US-AZ-50123")
	w.ShouldBeEqual(toUpperASCII("ABC"), "ABC")
	w.ShouldBeEqual(toUpperASCII(""), "")
	// only ASCII changes, so lengths never do
	w.ShouldBeEqual(toUpperASCII("é\xffz"), "é\xffZ")
	w.ShouldBeEqual(toUpperASCII("\u017F"), "\u017F") // long s
}

func TestCheckEncodable(t *testing.T) {
	type test struct {
		name                          string
		country, jurisdiction, parcel string
		cause                         error
	}

	pass := func(name, c, j, p string) test {
		return test{name: name, country: c, jurisdiction: j, parcel: p}
	}
	fail := func(name, c, j, p string, cause error) test {
		return test{name: name, country: c, jurisdiction: j, parcel: p, cause: cause}
	}

	for i, tt := range []test{
		pass("upper", "US", "AZ", "50123"),
		pass("lower", "us", "az", "00123"),
		pass("alphanumeric", "gb", "L0N", "A1B2C3"),

		fail("short country", "U", "AZ", "1", ErrInvalidCountryCode),
		fail("long parcel", "US", "AZ", strings.Repeat("1", 21), ErrInvalidParcelCode),
		fail("digit in country", "U5", "AZ", "1", ErrInvalidCountryCode),
		fail("hyphen in jurisdiction", "US", "A-", "1", ErrInvalidJurisdictionCode),
		fail("space in parcel", "US", "AZ", "501 23", ErrInvalidParcelCode),
		fail("slash in parcel", "US", "AZ", "12/34", ErrInvalidParcelCode),
		fail("non-ASCII country", "É", "AZ", "1", ErrInvalidCountryCode),
	} {
		t.Run(fmt.Sprintf("%02d_%s", i, tt.name), func(t *testing.T) {
			w := expect.WrapT(t)
			err := CheckEncodable(tt.country, tt.jurisdiction, tt.parcel)
			if tt.cause == nil {
				w.ShouldSucceed(err)
				s := w.ShouldHaveResult(Generate(tt.country, tt.jurisdiction, tt.parcel)).(string)
				w.As(s).ShouldBeTrue(Validate(s))
				return
			}

			w.ShouldFail(err)
			w.Logf("%+v", err)
			w.ShouldBeTrue(errors.Cause(err) == tt.cause)
		})
	}
}

func TestCheckEncodable_lengthOnlyGeneration(t *testing.T) {
	w := expect.WrapT(t)

	// New only checks lengths, so it happily builds a UPI that can't be parsed
	s := w.ShouldHaveResult(Generate("US", "A-", "1")).(string)
	w.ShouldBeEqual(s, "US-A--1-"+Checksum("US", "A-", "1"))
	w.ShouldBeFalse(Validate(s))

	w.ShouldFail(CheckEncodable("US", "A-", "1"))
}
