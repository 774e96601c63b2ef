package jwtservice

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/vitals/internal/error_values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	s := New("test_secret")
	uid := uuid.New()

	token, err := s.GenerateToken(uid)
	require.NoError(t, err)

	claims, err := s.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uid.String(), claims.UserID)
	parsed, err := claims.UID()
	require.NoError(t, err)
	assert.Equal(t, uid, parsed)
}

func TestParseTokenErrors(t *testing.T) {
	uid := uuid.New()
	issued := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	s := NewWithTTL("test_secret", time.Minute)
	s.now = func() time.Time { return issued }
	token, err := s.GenerateToken(uid)
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: uid.String()}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	testCases := []struct {
		Desc        string
		Token       string
		Service     func() *JWTService
		ExpectedErr error
	}{
		{
			Desc:  "expired",
			Token: token,
			Service: func() *JWTService {
				other := NewWithTTL("test_secret", time.Minute)
				other.now = func() time.Time { return issued.Add(2 * time.Minute) }
				return other
			},
			ExpectedErr: errorvalues.ErrTokenExpired,
		},
		{
			Desc:  "not valid yet",
			Token: token,
			Service: func() *JWTService {
				other := NewWithTTL("test_secret", time.Minute)
				other.now = func() time.Time { return issued.Add(-time.Hour) }
				return other
			},
			ExpectedErr: errorvalues.ErrTokenExpired,
		},
		{
			Desc:  "wrong secret",
			Token: token,
			Service: func() *JWTService {
				other := NewWithTTL("other_secret", time.Minute)
				other.now = s.now
				return other
			},
			ExpectedErr: errorvalues.ErrInvalidToken,
		},
		{
			Desc:        "garbage",
			Token:       "not.a.token",
			Service:     func() *JWTService { return s },
			ExpectedErr: errorvalues.ErrInvalidToken,
		},
		{
			Desc:        "unsigned",
			Token:       noneToken,
			Service:     func() *JWTService { return s },
			ExpectedErr: errorvalues.ErrInvalidToken,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			_, err := tc.Service().ParseToken(tc.Token)
			assert.ErrorIs(t, err, tc.ExpectedErr)
		})
	}
}

func TestClaimsUID(t *testing.T) {
	c := &Claims{UserID: "nope"}
	_, err := c.UID()
	assert.ErrorIs(t, err, errorvalues.ErrInvalidUserID)
}
