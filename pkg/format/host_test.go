// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"strings"
	"testing"
)

func TestIsDomainName(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"example.com", true},
		{"EXAMPLE.COM", true},
		{"a.b.c.example.org", true},
		{"123.example.net", true},
		{"a-b.example.io", true},
		{"", false},
		{"localhost", false},
		{"example", false},
		{"example.c", false},
		{"example.c0m", false},
		{"-a.example.com", false},
		{"a-.example.com", false},
		{"ab--cd.example.com", false},
		{"a..example.com", false},
		{".example.com", false},
		{"example.com.", false},
		{"ex_ample.com", false},
		{"bücher.example", false},
		{strings.Repeat("a", 63) + ".com", true},
		{strings.Repeat("a", 64) + ".com", false},
	}
	for _, test := range tests {
		if got := isDomainName(test.in); got != test.want {
			t.Errorf("isDomainName(%q) = %t, want %t", test.in, got, test.want)
		}
	}
}

func TestIsReachableHost(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"localhost", true},
		{"LocalHost", true},
		{"127.0.0.1", true},
		{"[::1]", true},
		{"[2001:db8::1]", true},
		{"example.com", true},
		{"asdf", false},
		{"", false},
		{"[]", false},
		{"[127.0.0.1]", false},
		{"[v1.abc]", false},
		{"256.0.0.1", false},
		{"01.02.03.04", false},
	}
	for _, test := range tests {
		if got := isReachableHost(test.in); got != test.want {
			t.Errorf("isReachableHost(%q) = %t, want %t", test.in, got, test.want)
		}
	}
}
