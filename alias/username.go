package alias

import (
	"encoding/base32"
	"strings"
)

// usernamePrefix marks an obfuscated display name on the wire.
const usernamePrefix = "enc."

var usernameEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// Obfuscate encodes a display name so the literal value never lands in
// the backend's free-text alias field. This is not a security boundary:
// the encoding is reversible by design.
func Obfuscate(name string) string {
	if name == "" {
		return ""
	}
	return usernamePrefix + strings.ToLower(usernameEncoding.EncodeToString([]byte(name)))
}

// Deobfuscate reverses Obfuscate. Values without the marker prefix, or
// with an undecodable remainder, pass through untouched since aliases may
// be written by unrelated senders.
func Deobfuscate(name string) string {
	if !strings.HasPrefix(name, usernamePrefix) {
		return name
	}
	decoded, err := usernameEncoding.DecodeString(strings.ToUpper(strings.TrimPrefix(name, usernamePrefix)))
	if err != nil {
		return name
	}
	return string(decoded)
}
