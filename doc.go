// Package bintoken provides compact, signed tokens for embedding MessagePack payloads.
//
// Tokens use HMAC-SHA256 over the raw serialized payload bytes, with both
// payload and signature carried as unpadded base64url text. Payloads are
// encoded with MessagePack, so arbitrary structures stay compact on the wire.
// Suitable for session handles, email confirmations, password resets, and
// invite links where all validity state travels inside the token itself.
//
// Token format: base64url(msgpack(payload)).base64url(signature)
//
// The signature is the full 32-byte HMAC-SHA256 digest. Payload bytes are
// never deserialized before the signature check passes, so malformed or
// adversarial input cannot reach the codec unauthenticated. Signatures are
// compared in constant time.
//
// # Usage
//
//	import "github.com/dmitrymomot/bintoken"
//
//	type Payload struct {
//	    UserID int64 `msgpack:"uid"`
//	    Exp    int64 `msgpack:"exp"`
//	}
//
//	func (p Payload) Expiration() int64 { return p.Exp }
//
//	const secret = "my-very-strong-secret"
//
//	tok, err := bintoken.CreateToken(Payload{42, time.Now().Add(time.Hour).Unix()}, secret)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	p, err := bintoken.VerifyToken[Payload](secret, tok)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// VerifyToken requires the payload type to satisfy Expirable; a token whose
// expiration timestamp is in the past is rejected with ErrExpiredToken, with
// the boundary inclusive of the current second. DecodeToken reads the payload
// without the secret and without any authenticity guarantee, which is useful
// for extracting a routing hint before picking the right secret.
//
// A Service binds a secret and issuance defaults for call sites that issue
// and verify many tokens; it can be configured from the environment via
// Config. Claims is a ready-made payload carrying the registered claim set.
//
// # Error Handling
//
// Failures are reported through sentinel errors (ErrInvalidFormat,
// ErrInvalidEncoding, ErrInvalidSignature, ErrExpiredToken, ErrSerialization,
// ErrDeserialization) matchable with errors.Is. Underlying codec errors are
// wrapped and stay available through errors.As. Every error means "reject the
// token"; no error kind implies partial trust, and no partial payload is ever
// returned alongside an error.
//
// All operations are pure computations over in-memory buffers: no I/O, no
// shared mutable state, safe for concurrent use without coordination.
package bintoken
