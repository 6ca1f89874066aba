package jwt

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/newsdesk/internal/domain/entity"
)

func TestJWTManager_RoundTrip(t *testing.T) {
	mgr := NewJWTManager("secret", 0)
	svc := NewJWTService(mgr)

	token, err := svc.GenerateAccessToken("user-1", entity.UserRoleAdmin)
	require.NoError(t, err)

	claims, err := svc.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, entity.UserRoleAdmin, claims.Role)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestJWTManager_Expired(t *testing.T) {
	mgr := NewJWTManager("secret", time.Hour)
	issued := time.Now().Add(-2 * time.Hour)
	mgr.now = func() time.Time { return issued }
	token, err := mgr.GenerateAccessToken("user-1", "User")
	require.NoError(t, err)

	mgr.now = time.Now
	_, err = mgr.VerifyToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestJWTManager_WrongSecret(t *testing.T) {
	token, err := NewJWTManager("one", 0).GenerateAccessToken("user-1", "User")
	require.NoError(t, err)

	_, err = NewJWTManager("two", 0).VerifyToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestJWTManager_RejectsOtherAlgorithms(t *testing.T) {
	token := gojwt.NewWithClaims(gojwt.SigningMethodNone, CustomClaims{ID: "user-1", Role: "Admin"})
	signed, err := token.SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewJWTManager("secret", 0).VerifyToken(signed)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
