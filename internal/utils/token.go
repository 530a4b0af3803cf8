package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewSessionToken returns a fresh opaque session token
func NewSessionToken() string {
	return uuid.NewString()
}

// ExtractToken reads the token from an Authorization header value.
// Both a bare token and the "Bearer <token>" form are accepted.
func ExtractToken(header string) string {
	header = strings.TrimSpace(header)
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return header
}
