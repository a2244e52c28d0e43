package services

import (
	"github.com/Vedant005/SkillBridge-Backend/internal/auth"
	"github.com/Vedant005/SkillBridge-Backend/internal/models"
	"github.com/Vedant005/SkillBridge-Backend/internal/repositories"
)

// clientAccountStore and freelancerAccountStore adapt the two repositories
// to the AccountStore shape the auth service works against.

type clientAccountStore struct {
	repo repositories.ClientRepository
}

func NewClientAccountStore(repo repositories.ClientRepository) AccountStore {
	return &clientAccountStore{repo: repo}
}

func (s *clientAccountStore) Kind() auth.AccountKind {
	return auth.KindClient
}

func (s *clientAccountStore) FindForAuth(id string) (*Account, error) {
	client, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return clientAccount(client), nil
}

func (s *clientAccountStore) FindForAuthByEmail(email string) (*Account, error) {
	client, err := s.repo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	return clientAccount(client), nil
}

func (s *clientAccountStore) UpdateRefreshToken(id string, token string) error {
	return s.repo.UpdateRefreshToken(id, token)
}

func clientAccount(client *models.Client) *Account {
	return &Account{
		ID:           client.ID,
		Email:        client.Email,
		Location:     client.Location,
		PasswordHash: client.PasswordHash,
		RefreshToken: client.RefreshToken,
	}
}

type freelancerAccountStore struct {
	repo repositories.FreelancerRepository
}

func NewFreelancerAccountStore(repo repositories.FreelancerRepository) AccountStore {
	return &freelancerAccountStore{repo: repo}
}

func (s *freelancerAccountStore) Kind() auth.AccountKind {
	return auth.KindFreelancer
}

func (s *freelancerAccountStore) FindForAuth(id string) (*Account, error) {
	freelancer, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return freelancerAccount(freelancer), nil
}

func (s *freelancerAccountStore) FindForAuthByEmail(email string) (*Account, error) {
	freelancer, err := s.repo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	return freelancerAccount(freelancer), nil
}

func (s *freelancerAccountStore) UpdateRefreshToken(id string, token string) error {
	return s.repo.UpdateRefreshToken(id, token)
}

func freelancerAccount(freelancer *models.Freelancer) *Account {
	return &Account{
		ID:              freelancer.ID,
		Email:           freelancer.Email,
		Location:        freelancer.Location,
		HourlyRate:      freelancer.HourlyRate,
		ExperienceLevel: freelancer.ExperienceLevel,
		PasswordHash:    freelancer.PasswordHash,
		RefreshToken:    freelancer.RefreshToken,
	}
}
