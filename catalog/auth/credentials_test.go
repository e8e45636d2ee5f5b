package auth

import (
	"encoding/base64"
	"net/http"
	"testing"
)

func TestCredentialsFromRequest(t *testing.T) {
	type testCase struct {
		name   string
		header string
		email  string
		secret string
		ok     bool
	}
	encode := func(payload string) string {
		return "Basic " + base64.StdEncoding.EncodeToString([]byte(payload))
	}
	for _, tc := range []testCase{
		{"valid", encode("x@example.com:pw1"), "x@example.com", "pw1", true},
		{"secret with colons", encode("x@example.com:a:b:c"), "x@example.com", "a:b:c", true},
		{"empty secret", encode("x@example.com:"), "x@example.com", "", true},
		{"missing header", "", "", "", false},
		{"wrong scheme", "Bearer abc123", "", "", false},
		{"not base64", "Basic ???", "", "", false},
		{"no colon", encode("x@example.com"), "", "", false},
	} {
		r, err := http.NewRequest("GET", "/", nil)
		if err != nil {
			t.Fatal(err)
		}
		if tc.header != "" {
			r.Header.Set("Authorization", tc.header)
		}
		creds, ok := CredentialsFromRequest(r)
		if ok != tc.ok {
			t.Errorf("%v: expected ok=%v got %v", tc.name, tc.ok, ok)
			continue
		}
		if creds.Email != tc.email || creds.Secret != tc.secret {
			t.Errorf("%v: expected (%v, %v) got (%v, %v)", tc.name, tc.email, tc.secret, creds.Email, creds.Secret)
		}
	}
}
