package bintoken

import "errors"

var (
	// ErrInvalidFormat reports a token that does not split into exactly two
	// non-empty dot-separated segments.
	ErrInvalidFormat = errors.New("bintoken: invalid token format")

	// ErrInvalidEncoding reports a segment that is not valid unpadded
	// base64url.
	ErrInvalidEncoding = errors.New("bintoken: invalid token encoding")

	// ErrInvalidSignature reports a signature that does not match the one
	// recomputed from the payload bytes.
	ErrInvalidSignature = errors.New("bintoken: invalid signature")

	// ErrExpiredToken reports an expiration timestamp in the past.
	ErrExpiredToken = errors.New("bintoken: token has expired")

	// ErrSerialization reports a payload that cannot be MessagePack encoded.
	ErrSerialization = errors.New("bintoken: cannot serialize payload")

	// ErrDeserialization reports payload bytes that do not decode into the
	// target type.
	ErrDeserialization = errors.New("bintoken: cannot deserialize payload")

	// ErrMissingSecret is returned by Service constructors when no secret is
	// provided.
	ErrMissingSecret = errors.New("bintoken: missing secret")
)
