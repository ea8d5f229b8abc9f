package utils

import (
	"crypto/rand"
	"encoding/base64"
	"strings"
	"unicode"
)

// GeneratePortalToken builds the capability URL slug for a family's portal:
// the camper's cleaned last name plus a random URL-safe suffix.
func GeneratePortalToken(lastName string) string {
	var clean strings.Builder
	for _, r := range strings.ToLower(lastName) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			clean.WriteRune(r)
		}
	}

	buf := make([]byte, 8)
	rand.Read(buf)
	suffix := base64.RawURLEncoding.EncodeToString(buf)

	return clean.String() + "-" + suffix
}
