package bintoken

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type expiringPayload struct {
	UserID int64 `msgpack:"user_id"`
	Exp    int64 `msgpack:"exp"`
}

func (p expiringPayload) Expiration() int64 { return p.Exp }

// pinClock fixes the package clock for the duration of the test. Tests using
// it must not run in parallel.
func pinClock(t *testing.T, now time.Time) {
	t.Helper()
	timeNow = func() time.Time { return now }
	t.Cleanup(func() { timeNow = time.Now })
}

func TestVerifyToken_ExpiryBoundary(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	pinClock(t, now)

	const secret = "s3cr3t"

	tests := []struct {
		name    string
		exp     int64
		wantErr error
	}{
		{
			name:    "expired one second ago",
			exp:     now.Unix() - 1,
			wantErr: ErrExpiredToken,
		},
		{
			name: "expires exactly now",
			exp:  now.Unix(),
		},
		{
			name: "expires far in the future",
			exp:  now.Add(24 * time.Hour).Unix(),
		},
		{
			name:    "expired long ago",
			exp:     now.Add(-24 * time.Hour).Unix(),
			wantErr: ErrExpiredToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := expiringPayload{UserID: 42, Exp: tt.exp}

			token, err := CreateToken(payload, secret)
			require.NoError(t, err)

			got, err := VerifyToken[expiringPayload](secret, token)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, got, "no payload should accompany an error")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, payload, got)
		})
	}
}

func TestDecodeToken_IgnoresExpiration(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	pinClock(t, now)

	payload := expiringPayload{UserID: 42, Exp: now.Add(-time.Hour).Unix()}

	token, err := CreateToken(payload, "s3cr3t")
	require.NoError(t, err)

	// Decoding is unauthenticated inspection; expired tokens still decode.
	got, err := DecodeToken[expiringPayload](token)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestNewClaims_UsesClock(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	pinClock(t, now)

	claims := NewClaims("user-42", 30*time.Minute)

	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, "user-42", claims.Subject)
	assert.Equal(t, now.Unix(), claims.IssuedAt)
	assert.Equal(t, now.Add(30*time.Minute).Unix(), claims.ExpiresAt)
}
