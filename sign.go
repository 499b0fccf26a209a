package bintoken

import (
	"crypto/hmac"
	"crypto/sha256"
)

// sign computes the HMAC-SHA256 digest of payload keyed by secret. The
// digest covers the raw serialized payload bytes, never the base64url text.
// HMAC accepts keys of any length, so signing cannot fail.
func sign(secret, payload []byte) []byte {
	h := hmac.New(sha256.New, secret)
	h.Write(payload)
	return h.Sum(nil)
}
