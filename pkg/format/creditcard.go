// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

// CreditCardNumber requires a string of 13 to 19 digits
// whose Luhn checksum is valid.
// Spaces and dashes between groups of digits are not accepted.
func CreditCardNumber(s string) error {
	if len(s) < minCardDigits || len(s) > maxCardDigits || countDigits(s) != len(s) {
		return mismatch(FormatCreditCardNumber, s)
	}
	if !luhnValid(s) {
		return mismatch(FormatCreditCardNumber, s)
	}
	return nil
}

// Card number lengths in use by the major networks.
const (
	minCardDigits = 13
	maxCardDigits = 19
)

// luhnValid reports whether the digit string s passes the Luhn check.
func luhnValid(s string) bool {
	sum := 0
	double := false
	// Walk from the check digit leftward,
	// doubling every second digit.
	for i := len(s) - 1; i >= 0; i-- {
		d := int(s[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}
