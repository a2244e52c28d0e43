package repositories

import (
	"errors"

	"github.com/Vedant005/SkillBridge-Backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrClientNotFound      = errors.New("client not found")
	ErrClientAlreadyExists = errors.New("client already exists")
)

type ClientRepository interface {
	FindByID(id string) (*models.Client, error)
	FindByIDWithGigs(id string) (*models.Client, error)
	FindByEmail(email string) (*models.Client, error)
	FindAll() ([]models.Client, error)
	Create(client *models.Client) error
	UpdateFields(id string, fields map[string]interface{}) error
	UpdateRefreshToken(id string, token string) error
	Delete(id string) error
}

type ClientRepositoryImpl struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) ClientRepository {
	return &ClientRepositoryImpl{db: db}
}

func (r *ClientRepositoryImpl) FindByID(id string) (*models.Client, error) {
	var client models.Client
	err := r.db.First(&client, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return &client, nil
}

func (r *ClientRepositoryImpl) FindByIDWithGigs(id string) (*models.Client, error) {
	var client models.Client
	err := r.db.Preload("Gigs").First(&client, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return &client, nil
}

func (r *ClientRepositoryImpl) FindByEmail(email string) (*models.Client, error) {
	var client models.Client
	err := r.db.First(&client, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return &client, nil
}

func (r *ClientRepositoryImpl) FindAll() ([]models.Client, error) {
	var clients []models.Client
	err := r.db.Preload("Gigs").Order("created_at DESC").Find(&clients).Error
	return clients, err
}

func (r *ClientRepositoryImpl) Create(client *models.Client) error {
	var existing models.Client
	if err := r.db.Where("email = ?", client.Email).First(&existing).Error; err == nil {
		return ErrClientAlreadyExists
	}

	return r.db.Create(client).Error
}

func (r *ClientRepositoryImpl) UpdateFields(id string, fields map[string]interface{}) error {
	result := r.db.Model(&models.Client{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrClientNotFound
	}
	return nil
}

func (r *ClientRepositoryImpl) UpdateRefreshToken(id string, token string) error {
	result := r.db.Model(&models.Client{}).Where("id = ?", id).Update("refresh_token", token)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrClientNotFound
	}
	return nil
}

// Delete removes the client together with its gigs in one transaction.
func (r *ClientRepositoryImpl) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("client_id = ?", id).Delete(&models.Gig{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&models.Client{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrClientNotFound
		}
		return nil
	})
}
