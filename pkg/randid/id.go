// Package randid generates short random identifiers.
package randid

import "crypto/rand"

// alphabet is intentionally lowercase-only so identifiers can be typed
// and matched case-insensitively.
const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Generate returns a random identifier of the given length drawn from
// [a-z0-9]. Randomness comes from crypto/rand; a read failure panics, as
// there is no reasonable way to continue without entropy.
func Generate(length int) string {
	if length <= 0 {
		return ""
	}

	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		panic("randid: " + err.Error())
	}

	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}

	return string(buf)
}
