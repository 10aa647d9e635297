// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"net/netip"
	"strings"
	"sync"

	"golang.org/x/net/idna"
)

// hostnameProfile returns the IDNA profile used to check
// the labels of domain names.
var hostnameProfile = sync.OnceValue(func() *idna.Profile {
	return idna.New(idna.ValidateForRegistration())
})

// Limits from RFC 1035 section 2.3.4.
const (
	maxDomainLen = 253
	maxLabelLen  = 63
)

// isDomainName reports whether s is a fully qualified DNS domain name:
// two or more dot-separated letter-digit-hyphen labels,
// the last of which looks like a top-level domain.
// Internationalized names are only accepted in their ASCII (xn--) form.
func isDomainName(s string) bool {
	if len(s) == 0 || len(s) > maxDomainLen {
		return false
	}
	labels := strings.Split(s, ".")
	if len(labels) < 2 {
		return false
	}
	for _, label := range labels {
		if !isLDHLabel(label) {
			return false
		}
	}
	if !isTopLevelLabel(labels[len(labels)-1]) {
		return false
	}

	// Domain names are case-insensitive, but the registration
	// profile rejects upper case as unmapped.
	if _, err := hostnameProfile().ToASCII(strings.ToLower(s)); err != nil {
		return false
	}
	return true
}

// isLDHLabel reports whether s is a single DNS label made of
// letters, digits and hyphens, not starting or ending with a hyphen.
func isLDHLabel(s string) bool {
	if len(s) == 0 || len(s) > maxLabelLen {
		return false
	}
	if s[0] == '-' || s[len(s)-1] == '-' {
		return false
	}
	for i := range len(s) {
		c := s[i]
		if !isAlpha(c) && !isDigit(c) && c != '-' {
			return false
		}
	}
	return true
}

// isTopLevelLabel reports whether s could be a top-level domain:
// at least two letters, or a punycode A-label.
func isTopLevelLabel(s string) bool {
	if len(s) > 4 && strings.EqualFold(s[:4], "xn--") {
		return true
	}
	if len(s) < 2 {
		return false
	}
	for i := range len(s) {
		if !isAlpha(s[i]) {
			return false
		}
	}
	return true
}

// isIPv4 reports whether s is an IPv4 address in dotted decimal form.
func isIPv4(s string) bool {
	addr, err := netip.ParseAddr(s)
	return err == nil && addr.Is4()
}

// isIPv6 reports whether s is an IPv6 address with no zone.
func isIPv6(s string) bool {
	addr, err := netip.ParseAddr(s)
	return err == nil && addr.Is6() && addr.Zone() == ""
}

// isReachableHost reports whether the URI host s names something
// that could be reached over a network: localhost, an IP address,
// or a fully qualified domain name. A bracketed IP literal must
// hold an IPv6 address.
func isReachableHost(s string) bool {
	if strings.EqualFold(s, "localhost") {
		return true
	}
	if len(s) > 2 && s[0] == '[' && s[len(s)-1] == ']' {
		return isIPv6(s[1 : len(s)-1])
	}
	if isIPv4(s) {
		return true
	}
	return isDomainName(s)
}

// isAlpha reports whether c is an ASCII letter.
func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isHexDigit reports whether c is an ASCII hexadecimal digit.
func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
