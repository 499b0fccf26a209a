package bintoken

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// DecodeToken decodes a token's payload without checking the signature or
// expiration. The result carries no authenticity or freshness guarantee and
// must not be treated as a trust boundary; it is meant for reading
// non-sensitive hints, such as picking the right secret before calling
// VerifyToken.
func DecodeToken[T any](token string) (T, error) {
	var payload T

	seg, _, err := splitToken(token)
	if err != nil {
		return payload, err
	}

	data, err := decodeSegment(seg)
	if err != nil {
		return payload, err
	}

	if err := msgpack.Unmarshal(data, &payload); err != nil {
		return payload, fmt.Errorf("%w: %w", ErrDeserialization, err)
	}

	return payload, nil
}

// splitToken splits a token into its payload and signature segments.
// Exactly two non-empty segments are required; the separator implies nothing
// beyond the two-part split.
func splitToken(token string) (payload, sig string, err error) {
	parts := strings.Split(token, ".")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", ErrInvalidFormat
	}
	return parts[0], parts[1], nil
}

// decodeSegment decodes a single unpadded base64url token segment.
func decodeSegment(seg string) ([]byte, error) {
	data, err := base64.RawURLEncoding.DecodeString(seg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
	}
	return data, nil
}
