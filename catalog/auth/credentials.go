package auth

import (
	"encoding/base64"
	"net/http"
	"strings"
)

type (
	// Credentials is a username/secret pair taken from a Basic
	// Authorization header.
	Credentials struct {
		Email  string
		Secret string
	}
)

const basicPrefix = "Basic "

// CredentialsFromRequest parses the Authorization header of r. A
// missing or malformed header is reported as absent (ok == false),
// never as an error.
func CredentialsFromRequest(r *http.Request) (Credentials, bool) {
	hdr := r.Header.Get("Authorization")
	if !strings.HasPrefix(hdr, basicPrefix) {
		return Credentials{}, false
	}
	payload, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(hdr, basicPrefix))
	if err != nil {
		return Credentials{}, false
	}
	// the secret may itself contain colons, only the first one splits
	parts := strings.SplitN(string(payload), ":", 2)
	if len(parts) != 2 {
		return Credentials{}, false
	}
	return Credentials{Email: parts[0], Secret: parts[1]}, true
}
