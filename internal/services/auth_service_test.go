package services

import (
	"testing"

	"github.com/Vedant005/SkillBridge-Backend/internal/models"
	"github.com/Vedant005/SkillBridge-Backend/internal/repositories"
	"github.com/Vedant005/SkillBridge-Backend/internal/services/dto"
	"github.com/Vedant005/SkillBridge-Backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testJWT = JWTSettings{
	AccessSecret:    "access-test-secret",
	AccessTTLMin:    15,
	RefreshSecret:   "refresh-test-secret",
	RefreshTTLHours: 240,
}

func newAuthFixture(t *testing.T) (*gorm.DB, AuthService, ClientService, repositories.ClientRepository) {
	t.Helper()

	db := newTestDB(t)
	clientRepo := repositories.NewClientRepository(db)
	gigRepo := repositories.NewGigRepository(db)

	authService := NewAuthService(NewClientAccountStore(clientRepo), testJWT)
	clientService := NewClientService(clientRepo, gigRepo)
	return db, authService, clientService, clientRepo
}

func TestClientService_RegisterHashesPassword(t *testing.T) {
	_, _, clientService, clientRepo := newAuthFixture(t)

	client, err := clientService.Register(&dto.RegisterClientRequest{
		Email:    "a@x.com",
		Password: "secret1",
		Location: "NY",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, client.ID)
	assert.NotEqual(t, "secret1", client.PasswordHash)

	stored, err := clientRepo.FindByEmail("a@x.com")
	require.NoError(t, err)
	assert.NotContains(t, stored.PasswordHash, "secret1")
}

func TestClientService_RegisterDuplicateEmail(t *testing.T) {
	_, _, clientService, _ := newAuthFixture(t)

	first, err := clientService.Register(&dto.RegisterClientRequest{
		Email:    "a@x.com",
		Password: "secret1",
		Location: "NY",
	})
	require.NoError(t, err)

	_, err = clientService.Register(&dto.RegisterClientRequest{
		Email:    "a@x.com",
		Password: "another1",
		Location: "LA",
	})
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 409, appErr.HTTPCode)

	// the first account is unaffected
	got, err := clientService.Get(first.ID)
	require.NoError(t, err)
	assert.Equal(t, "NY", got.Location)
}

func TestAuthService_Login(t *testing.T) {
	_, authService, clientService, clientRepo := newAuthFixture(t)

	registered, err := clientService.Register(&dto.RegisterClientRequest{
		Email:    "a@x.com",
		Password: "secret1",
		Location: "NY",
	})
	require.NoError(t, err)

	account, pair, err := authService.Login(&dto.LoginRequest{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, account.ID)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	// login persists the refresh value on the account row
	stored, err := clientRepo.FindByID(registered.ID)
	require.NoError(t, err)
	assert.Equal(t, pair.RefreshToken, stored.RefreshToken)
}

func TestAuthService_LoginFailures(t *testing.T) {
	_, authService, clientService, _ := newAuthFixture(t)

	_, err := clientService.Register(&dto.RegisterClientRequest{
		Email:    "a@x.com",
		Password: "secret1",
		Location: "NY",
	})
	require.NoError(t, err)

	_, _, err = authService.Login(&dto.LoginRequest{Email: "a@x.com", Password: "wrong"})
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 401, appErr.HTTPCode)

	_, _, err = authService.Login(&dto.LoginRequest{Email: "nobody@x.com", Password: "secret1"})
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 401, appErr.HTTPCode)
}

func TestAuthService_RefreshRotation(t *testing.T) {
	_, authService, clientService, clientRepo := newAuthFixture(t)

	registered, err := clientService.Register(&dto.RegisterClientRequest{
		Email:    "a@x.com",
		Password: "secret1",
		Location: "NY",
	})
	require.NoError(t, err)

	_, pair, err := authService.Login(&dto.LoginRequest{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	// first refresh succeeds and rotates the stored value
	rotated, err := authService.Refresh(pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, pair.RefreshToken, rotated.RefreshToken)

	stored, err := clientRepo.FindByID(registered.ID)
	require.NoError(t, err)
	assert.Equal(t, rotated.RefreshToken, stored.RefreshToken)

	// replaying the superseded token fails
	_, err = authService.Refresh(pair.RefreshToken)
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 401, appErr.HTTPCode)

	// the rotated token is still good exactly once
	_, err = authService.Refresh(rotated.RefreshToken)
	require.NoError(t, err)
}

func TestAuthService_RefreshRejectsGarbage(t *testing.T) {
	_, authService, _, _ := newAuthFixture(t)

	var appErr *apperrors.AppError

	_, err := authService.Refresh("")
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 401, appErr.HTTPCode)

	_, err = authService.Refresh("not-a-jwt")
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 401, appErr.HTTPCode)
}

func TestAuthService_Logout(t *testing.T) {
	_, authService, clientService, clientRepo := newAuthFixture(t)

	registered, err := clientService.Register(&dto.RegisterClientRequest{
		Email:    "a@x.com",
		Password: "secret1",
		Location: "NY",
	})
	require.NoError(t, err)

	_, pair, err := authService.Login(&dto.LoginRequest{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	require.NoError(t, authService.Logout(registered.ID))

	stored, err := clientRepo.FindByID(registered.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.RefreshToken)

	// the cleared value means the old refresh token is dead
	_, err = authService.Refresh(pair.RefreshToken)
	assert.Error(t, err)
}

func TestClientService_DeleteCascadesGigs(t *testing.T) {
	db, _, clientService, _ := newAuthFixture(t)

	client, err := clientService.Register(&dto.RegisterClientRequest{
		Email:    "a@x.com",
		Password: "secret1",
		Location: "NY",
	})
	require.NoError(t, err)

	gigRepo := repositories.NewGigRepository(db)
	require.NoError(t, gigRepo.Create(&models.Gig{GigID: "g1", ClientID: client.ID, Title: "Gone soon"}))

	require.NoError(t, clientService.Delete(client.ID))

	_, err = gigRepo.FindByGigID("g1")
	assert.ErrorIs(t, err, repositories.ErrGigNotFound)
}

func TestClientService_AddAndRemoveGig(t *testing.T) {
	db, _, clientService, _ := newAuthFixture(t)

	owner, err := clientService.Register(&dto.RegisterClientRequest{
		Email:    "owner@x.com",
		Password: "secret1",
		Location: "NY",
	})
	require.NoError(t, err)
	other, err := clientService.Register(&dto.RegisterClientRequest{
		Email:    "other@x.com",
		Password: "secret1",
		Location: "LA",
	})
	require.NoError(t, err)

	gigRepo := repositories.NewGigRepository(db)
	require.NoError(t, gigRepo.Create(&models.Gig{GigID: "g1", ClientID: owner.ID, Title: "Movable"}))

	updated, err := clientService.AddGig(other.ID, "g1")
	require.NoError(t, err)
	require.Len(t, updated.Gigs, 1)
	assert.Equal(t, "g1", updated.Gigs[0].GigID)

	updated, err = clientService.RemoveGig(other.ID, "g1")
	require.NoError(t, err)
	assert.Empty(t, updated.Gigs)

	_, err = clientService.AddGig(other.ID, "missing")
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 404, appErr.HTTPCode)
}
