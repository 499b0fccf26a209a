package bintoken

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// timeNow is swapped in tests to pin the expiry clock.
var timeNow = time.Now

// VerifyToken authenticates a token with the secret and returns its payload.
//
// Each stage is a hard gate, in order: format, base64url decoding of both
// segments, constant-time signature comparison, deserialization, expiration.
// The payload is deserialized only after the signature check passes, so the
// codec never reads bytes that are not known to come from the secret holder.
// A token whose expiration equals the current second is still valid.
func VerifyToken[T Expirable](secret, token string) (T, error) {
	var payload T

	data, err := verifiedPayload([]byte(secret), token)
	if err != nil {
		return payload, err
	}

	if err := msgpack.Unmarshal(data, &payload); err != nil {
		return payload, fmt.Errorf("%w: %w", ErrDeserialization, err)
	}

	if payload.Expiration() < timeNow().Unix() {
		var zero T
		return zero, ErrExpiredToken
	}

	return payload, nil
}

// verifiedPayload runs the format, encoding, and signature gates and returns
// the authenticated payload bytes.
func verifiedPayload(secret []byte, token string) ([]byte, error) {
	payloadSeg, sigSeg, err := splitToken(token)
	if err != nil {
		return nil, err
	}

	data, err := decodeSegment(payloadSeg)
	if err != nil {
		return nil, err
	}

	sig, err := decodeSegment(sigSeg)
	if err != nil {
		return nil, err
	}

	expected := sign(secret, data)
	if subtle.ConstantTimeCompare(sig, expected) != 1 {
		return nil, ErrInvalidSignature
	}

	return data, nil
}
