// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"testing"

	"github.com/google/uuid"
)

func TestGUID(t *testing.T) {
	valid := []string{
		"34f8216d-b4b2-5d4d-b46b-ba1466ea3ab9",
		"34F8216D-B4B2-5D4D-B46B-BA1466EA3AB9",
		"34f8216D-B4b2-5d4D-b46B-Ba1466eA3Ab9",
		"{7e39b1e6-23d1-11e6-8456-e75e8e0d2af6}",
		"{7E39B1E6-23D1-11E6-8456-E75E8E0D2AF6}",
		"00000000-0000-0000-0000-000000000000",
		"ffffffff-ffff-ffff-ffff-ffffffffffff",
	}
	for _, s := range valid {
		if err := GUID(s); err != nil {
			t.Errorf("GUID(%q) = %v, want nil", s, err)
		}
	}

	invalid := []string{
		"",
		"34f8216d-xxxx-5d4d-b46b-ba1466ea3ab9",
		"ikr@ikr.su",
		"34f8216db4b25d4db46bba1466ea3ab9",
		"urn:uuid:34f8216d-b4b2-5d4d-b46b-ba1466ea3ab9",
		"34f8216d-b4b2-5d4d-b46b-ba1466ea3ab",
		"34f8216d-b4b2-5d4d-b46b-ba1466ea3ab90",
		"34f8216-db4b2-5d4d-b46b-ba1466ea3ab9",
		"34f8216d-b4b25-d4d-b46b-ba1466ea3ab9",
		"34f8216d_b4b2_5d4d_b46b_ba1466ea3ab9",
		"{34f8216d-b4b2-5d4d-b46b-ba1466ea3ab9",
		"34f8216d-b4b2-5d4d-b46b-ba1466ea3ab9}",
		"{{34f8216d-b4b2-5d4d-b46b-ba1466ea3ab9}}",
		"(34f8216d-b4b2-5d4d-b46b-ba1466ea3ab9)",
		" 34f8216d-b4b2-5d4d-b46b-ba1466ea3ab9",
		"34f8216d-b4b2-5d4d-b46b-ba1466ea3ag9",
		"{}",
	}
	for _, s := range invalid {
		if err := GUID(s); err == nil {
			t.Errorf("GUID(%q) = nil, want error", s)
		}
	}
}

func TestParseGUID(t *testing.T) {
	want := uuid.MustParse("7e39b1e6-23d1-11e6-8456-e75e8e0d2af6")
	for _, s := range []string{
		"7e39b1e6-23d1-11e6-8456-e75e8e0d2af6",
		"{7E39B1E6-23D1-11E6-8456-E75E8E0D2AF6}",
	} {
		got, ok := parseGUID(s)
		if !ok || got != want {
			t.Errorf("parseGUID(%q) = %v, %t, want %v, true", s, got, ok, want)
		}
	}
}
