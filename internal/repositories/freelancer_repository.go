package repositories

import (
	"errors"

	"github.com/Vedant005/SkillBridge-Backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrFreelancerNotFound      = errors.New("freelancer not found")
	ErrFreelancerAlreadyExists = errors.New("freelancer already exists")
)

type FreelancerRepository interface {
	FindByID(id string) (*models.Freelancer, error)
	FindByEmail(email string) (*models.Freelancer, error)
	Create(freelancer *models.Freelancer) error
	Update(freelancer *models.Freelancer) error
	UpdateFields(id string, fields map[string]interface{}) error
	UpdateRefreshToken(id string, token string) error
	Delete(id string) error
}

type FreelancerRepositoryImpl struct {
	db *gorm.DB
}

func NewFreelancerRepository(db *gorm.DB) FreelancerRepository {
	return &FreelancerRepositoryImpl{db: db}
}

func (r *FreelancerRepositoryImpl) FindByID(id string) (*models.Freelancer, error) {
	var freelancer models.Freelancer
	err := r.db.First(&freelancer, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFreelancerNotFound
		}
		return nil, err
	}
	return &freelancer, nil
}

func (r *FreelancerRepositoryImpl) FindByEmail(email string) (*models.Freelancer, error) {
	var freelancer models.Freelancer
	err := r.db.First(&freelancer, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFreelancerNotFound
		}
		return nil, err
	}
	return &freelancer, nil
}

func (r *FreelancerRepositoryImpl) Create(freelancer *models.Freelancer) error {
	var existing models.Freelancer
	if err := r.db.Where("email = ?", freelancer.Email).First(&existing).Error; err == nil {
		return ErrFreelancerAlreadyExists
	}

	return r.db.Create(freelancer).Error
}

// Update persists the whole record; needed for fields with custom
// serialization such as skills.
func (r *FreelancerRepositoryImpl) Update(freelancer *models.Freelancer) error {
	return r.db.Save(freelancer).Error
}

func (r *FreelancerRepositoryImpl) UpdateFields(id string, fields map[string]interface{}) error {
	result := r.db.Model(&models.Freelancer{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFreelancerNotFound
	}
	return nil
}

func (r *FreelancerRepositoryImpl) UpdateRefreshToken(id string, token string) error {
	result := r.db.Model(&models.Freelancer{}).Where("id = ?", id).Update("refresh_token", token)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFreelancerNotFound
	}
	return nil
}

func (r *FreelancerRepositoryImpl) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Freelancer{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFreelancerNotFound
	}
	return nil
}
