package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := GenerateAccessToken("secret", 15, "acc-1", KindFreelancer, AccessProfile{
		Email:      "ada@x.com",
		Location:   "Berlin",
		HourlyRate: 55,
	})
	require.NoError(t, err)

	claims, err := ParseAccessToken("secret", token)
	require.NoError(t, err)
	assert.Equal(t, "acc-1", claims.AccountID)
	assert.Equal(t, KindFreelancer, claims.Kind)
	assert.Equal(t, "ada@x.com", claims.Email)
	assert.Equal(t, 55.0, claims.HourlyRate)
}

func TestAccessTokenWrongSecret(t *testing.T) {
	token, err := GenerateAccessToken("secret", 15, "acc-1", KindClient, AccessProfile{})
	require.NoError(t, err)

	_, err = ParseAccessToken("other-secret", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAccessTokenExpired(t *testing.T) {
	token, err := GenerateAccessToken("secret", -1, "acc-1", KindClient, AccessProfile{})
	require.NoError(t, err)

	_, err = ParseAccessToken("secret", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	token, err := GenerateRefreshToken("refresh-secret", 240, "acc-1", KindClient)
	require.NoError(t, err)

	claims, err := ParseRefreshToken("refresh-secret", token)
	require.NoError(t, err)
	assert.Equal(t, "acc-1", claims.AccountID)
	assert.Equal(t, KindClient, claims.Kind)
}

func TestRefreshTokensDistinctWithinSameSecond(t *testing.T) {
	first, err := GenerateRefreshToken("refresh-secret", 240, "acc-1", KindClient)
	require.NoError(t, err)
	second, err := GenerateRefreshToken("refresh-secret", 240, "acc-1", KindClient)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	firstClaims, err := ParseRefreshToken("refresh-secret", first)
	require.NoError(t, err)
	secondClaims, err := ParseRefreshToken("refresh-secret", second)
	require.NoError(t, err)
	assert.NotEmpty(t, firstClaims.ID)
	assert.NotEqual(t, firstClaims.ID, secondClaims.ID)
}

func TestRefreshTokenNotValidAsAccess(t *testing.T) {
	// distinct secrets keep the two token families apart
	token, err := GenerateRefreshToken("refresh-secret", 240, "acc-1", KindClient)
	require.NoError(t, err)

	_, err = ParseAccessToken("access-secret", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseGarbage(t *testing.T) {
	_, err := ParseAccessToken("secret", "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = ParseRefreshToken("secret", "")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
