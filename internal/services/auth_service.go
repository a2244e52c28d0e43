package services

import (
	"github.com/Vedant005/SkillBridge-Backend/internal/auth"
	"github.com/Vedant005/SkillBridge-Backend/internal/repositories"
	"github.com/Vedant005/SkillBridge-Backend/internal/services/dto"
	"github.com/Vedant005/SkillBridge-Backend/pkg/apperrors"
)

// Account is the minimal projection the token flow needs. Both account
// kinds satisfy it through an AccountStore adapter, so one service
// implementation serves clients and freelancers alike.
type Account struct {
	ID              string
	Email           string
	Location        string
	HourlyRate      float64
	ExperienceLevel string
	PasswordHash    string
	RefreshToken    string
}

type AccountStore interface {
	Kind() auth.AccountKind
	FindForAuth(id string) (*Account, error)
	FindForAuthByEmail(email string) (*Account, error)
	UpdateRefreshToken(id string, token string) error
}

type JWTSettings struct {
	AccessSecret    string
	AccessTTLMin    int
	RefreshSecret   string
	RefreshTTLHours int
}

type AuthService interface {
	Login(req *dto.LoginRequest) (*Account, *dto.TokenPair, error)
	Refresh(incomingToken string) (*dto.TokenPair, error)
	Logout(accountID string) error
	IssueTokenPair(accountID string) (*dto.TokenPair, error)
}

type AuthServiceImpl struct {
	store AccountStore
	jwt   JWTSettings
}

func NewAuthService(store AccountStore, jwt JWTSettings) AuthService {
	return &AuthServiceImpl{store: store, jwt: jwt}
}

func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*Account, *dto.TokenPair, error) {
	account, err := s.store.FindForAuthByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrClientNotFound) || apperrors.Is(err, repositories.ErrFreelancerNotFound) {
			return nil, nil, apperrors.ErrInvalidCredentials
		}
		return nil, nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, account.PasswordHash) {
		return nil, nil, apperrors.ErrInvalidCredentials
	}

	pair, err := s.issuePair(account)
	if err != nil {
		return nil, nil, err
	}
	return account, pair, nil
}

// Refresh rotates the token pair. The stored refresh value must match the
// incoming token exactly; a mismatch means the token was already used or
// superseded, so the request is rejected. The new refresh value is
// persisted before anything is returned.
func (s *AuthServiceImpl) Refresh(incomingToken string) (*dto.TokenPair, error) {
	if incomingToken == "" {
		return nil, apperrors.ErrMissingRefreshToken
	}

	claims, err := auth.ParseRefreshToken(s.jwt.RefreshSecret, incomingToken)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	account, err := s.store.FindForAuth(claims.AccountID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if account.RefreshToken != incomingToken {
		return nil, apperrors.ErrInvalidToken
	}

	return s.issuePair(account)
}

func (s *AuthServiceImpl) Logout(accountID string) error {
	if err := s.store.UpdateRefreshToken(accountID, ""); err != nil {
		if apperrors.Is(err, repositories.ErrClientNotFound) || apperrors.Is(err, repositories.ErrFreelancerNotFound) {
			return apperrors.ErrInvalidToken
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AuthServiceImpl) IssueTokenPair(accountID string) (*dto.TokenPair, error) {
	account, err := s.store.FindForAuth(accountID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrClientNotFound) || apperrors.Is(err, repositories.ErrFreelancerNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}
	return s.issuePair(account)
}

func (s *AuthServiceImpl) issuePair(account *Account) (*dto.TokenPair, error) {
	kind := s.store.Kind()

	accessToken, err := auth.GenerateAccessToken(s.jwt.AccessSecret, s.jwt.AccessTTLMin, account.ID, kind, auth.AccessProfile{
		Email:           account.Email,
		Location:        account.Location,
		HourlyRate:      account.HourlyRate,
		ExperienceLevel: account.ExperienceLevel,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refreshToken, err := auth.GenerateRefreshToken(s.jwt.RefreshSecret, s.jwt.RefreshTTLHours, account.ID, kind)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.store.UpdateRefreshToken(account.ID, refreshToken); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
