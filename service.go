package bintoken

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
)

// defaultTTL applies to issued tokens when no TTL is configured.
const defaultTTL = time.Hour

// Service binds a secret and issuance defaults so call sites don't thread
// the key through every call. The secret is kept in memory only. Methods
// mirror the package-level functions; Go methods cannot carry type
// parameters, so Parse and Decode fill a caller-provided pointer instead of
// returning a typed value.
type Service struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

// New creates a Service with the provided secret and the default one-hour
// TTL. The secret should be at least 32 bytes for full HMAC-SHA256 strength.
func New(secret []byte) (*Service, error) {
	if len(secret) == 0 {
		return nil, ErrMissingSecret
	}

	return &Service{
		secret: secret,
		ttl:    defaultTTL,
		now:    time.Now,
	}, nil
}

// NewFromString creates a Service from a string secret. Convenience wrapper
// around New for string-based configuration.
func NewFromString(secret string) (*Service, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	return New([]byte(secret))
}

// NewFromConfig creates a Service from a Config, applying its TTL and issuer.
// A zero TTL keeps the one-hour default; any other value is honored as-is,
// so a negative TTL issues tokens that are already expired.
func NewFromConfig(cfg Config) (*Service, error) {
	s, err := NewFromString(cfg.Secret)
	if err != nil {
		return nil, err
	}

	if cfg.TTL != 0 {
		s.ttl = cfg.TTL
	}
	s.issuer = cfg.Issuer

	return s, nil
}

// NewFromEnv loads Config from the environment and builds a Service from it.
func NewFromEnv() (*Service, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	return NewFromConfig(cfg)
}

// Issue creates a token for the subject using the configured TTL and issuer.
// It returns the token together with the claims embedded in it.
func (s *Service) Issue(subject string) (string, Claims, error) {
	now := s.now()
	claims := Claims{
		ID:        uuid.NewString(),
		Subject:   subject,
		Issuer:    s.issuer,
		ExpiresAt: now.Add(s.ttl).Unix(),
		IssuedAt:  now.Unix(),
	}

	token, err := CreateToken(claims, string(s.secret))
	if err != nil {
		return "", Claims{}, err
	}

	return token, claims, nil
}

// Sign serializes and signs an arbitrary payload with the service secret.
// Unlike Issue, no claims are filled in; the payload is taken as-is.
func (s *Service) Sign(payload any) (string, error) {
	return CreateToken(payload, string(s.secret))
}

// Parse authenticates a token and deserializes its payload into the provided
// pointer. The pipeline matches VerifyToken: the payload is deserialized only
// after the signature check passes. If the payload type satisfies Expirable,
// the expiration gate is applied as well; types without the capability skip
// it, so pass one that implements Expirable whenever freshness matters.
func (s *Service) Parse(token string, payload any) error {
	data, err := verifiedPayload(s.secret, token)
	if err != nil {
		return err
	}

	if err := msgpack.Unmarshal(data, payload); err != nil {
		return fmt.Errorf("%w: %w", ErrDeserialization, err)
	}

	if exp, ok := payload.(Expirable); ok {
		if exp.Expiration() < s.now().Unix() {
			return ErrExpiredToken
		}
	}

	return nil
}

// Decode deserializes a token's payload into the provided pointer without
// checking the signature or expiration. See DecodeToken for the trust
// caveats.
func (s *Service) Decode(token string, payload any) error {
	seg, _, err := splitToken(token)
	if err != nil {
		return err
	}

	data, err := decodeSegment(seg)
	if err != nil {
		return err
	}

	if err := msgpack.Unmarshal(data, payload); err != nil {
		return fmt.Errorf("%w: %w", ErrDeserialization, err)
	}

	return nil
}
