package bintoken

// Expirable is the capability a payload must expose to be verifiable.
// Expiration returns the payload's validity deadline as a Unix timestamp in
// seconds, UTC. It is a read accessor only; verification never mutates the
// payload.
type Expirable interface {
	Expiration() int64
}
