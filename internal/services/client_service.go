package services

import (
	"github.com/Vedant005/SkillBridge-Backend/internal/auth"
	"github.com/Vedant005/SkillBridge-Backend/internal/models"
	"github.com/Vedant005/SkillBridge-Backend/internal/repositories"
	"github.com/Vedant005/SkillBridge-Backend/internal/services/dto"
	"github.com/Vedant005/SkillBridge-Backend/pkg/apperrors"
)

type ClientService interface {
	Register(req *dto.RegisterClientRequest) (*models.Client, error)
	List() ([]models.Client, error)
	Get(id string) (*models.Client, error)
	Update(id string, req *dto.UpdateClientRequest) (*models.Client, error)
	Delete(id string) error
	AddGig(clientID, gigID string) (*models.Client, error)
	RemoveGig(clientID, gigID string) (*models.Client, error)
}

type ClientServiceImpl struct {
	clientRepo repositories.ClientRepository
	gigRepo    repositories.GigRepository
}

func NewClientService(clientRepo repositories.ClientRepository, gigRepo repositories.GigRepository) ClientService {
	return &ClientServiceImpl{clientRepo: clientRepo, gigRepo: gigRepo}
}

func (s *ClientServiceImpl) Register(req *dto.RegisterClientRequest) (*models.Client, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	client := &models.Client{
		Email:        req.Email,
		PasswordHash: hash,
		Location:     req.Location,
	}

	if err := s.clientRepo.Create(client); err != nil {
		if apperrors.Is(err, repositories.ErrClientAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	return client, nil
}

func (s *ClientServiceImpl) List() ([]models.Client, error) {
	clients, err := s.clientRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return clients, nil
}

func (s *ClientServiceImpl) Get(id string) (*models.Client, error) {
	client, err := s.clientRepo.FindByIDWithGigs(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrClientNotFound) {
			return nil, apperrors.ErrClientNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return client, nil
}

func (s *ClientServiceImpl) Update(id string, req *dto.UpdateClientRequest) (*models.Client, error) {
	fields := map[string]interface{}{}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if req.TotalSpent != nil {
		fields["total_spent"] = *req.TotalSpent
	}

	if len(fields) > 0 {
		if err := s.clientRepo.UpdateFields(id, fields); err != nil {
			if apperrors.Is(err, repositories.ErrClientNotFound) {
				return nil, apperrors.ErrClientNotFound
			}
			return nil, apperrors.InternalError(err)
		}
	}

	return s.Get(id)
}

func (s *ClientServiceImpl) Delete(id string) error {
	if err := s.clientRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrClientNotFound) {
			return apperrors.ErrClientNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// AddGig re-parents an existing gig under the client by its external id.
func (s *ClientServiceImpl) AddGig(clientID, gigID string) (*models.Client, error) {
	if _, err := s.clientRepo.FindByID(clientID); err != nil {
		if apperrors.Is(err, repositories.ErrClientNotFound) {
			return nil, apperrors.ErrClientNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.gigRepo.ReassignClient(gigID, clientID); err != nil {
		if apperrors.Is(err, repositories.ErrGigNotFound) {
			return nil, apperrors.ErrGigNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	return s.Get(clientID)
}

func (s *ClientServiceImpl) RemoveGig(clientID, gigID string) (*models.Client, error) {
	if _, err := s.clientRepo.FindByID(clientID); err != nil {
		if apperrors.Is(err, repositories.ErrClientNotFound) {
			return nil, apperrors.ErrClientNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.gigRepo.DeleteOwned(clientID, gigID); err != nil {
		if apperrors.Is(err, repositories.ErrGigNotFound) {
			return nil, apperrors.ErrGigNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	return s.Get(clientID)
}
