package bintoken

import (
	"encoding/base64"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// CreateToken serializes the payload with MessagePack, signs the raw bytes
// with HMAC-SHA256 keyed by secret, and joins the unpadded base64url
// encodings of payload and signature with a dot.
func CreateToken[T any](payload T, secret string) (string, error) {
	data, err := msgpack.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSerialization, err)
	}

	sig := sign([]byte(secret), data)

	return base64.RawURLEncoding.EncodeToString(data) + "." + base64.RawURLEncoding.EncodeToString(sig), nil
}
