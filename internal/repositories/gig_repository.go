package repositories

import (
	"errors"

	"github.com/Vedant005/SkillBridge-Backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrGigNotFound      = errors.New("gig not found")
	ErrGigAlreadyExists = errors.New("gig already exists")
)

type GigRepository interface {
	FindPage(limit, offset int) ([]models.Gig, error)
	CountAll() (int64, error)
	FindByGigID(gigID string) (*models.Gig, error)
	FindByClientID(clientID string) ([]models.Gig, error)
	Create(gig *models.Gig) error
	UpdateFields(gigID string, fields map[string]interface{}) error
	ReassignClient(gigID, clientID string) error
	DeleteByGigID(gigID string) error
	DeleteOwned(clientID, gigID string) error
}

type GigRepositoryImpl struct {
	db *gorm.DB
}

func NewGigRepository(db *gorm.DB) GigRepository {
	return &GigRepositoryImpl{db: db}
}

func (r *GigRepositoryImpl) FindPage(limit, offset int) ([]models.Gig, error) {
	var gigs []models.Gig
	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&gigs).Error
	return gigs, err
}

func (r *GigRepositoryImpl) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.Gig{}).Count(&count).Error
	return count, err
}

func (r *GigRepositoryImpl) FindByGigID(gigID string) (*models.Gig, error) {
	var gig models.Gig
	err := r.db.First(&gig, "gig_id = ?", gigID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGigNotFound
		}
		return nil, err
	}
	return &gig, nil
}

func (r *GigRepositoryImpl) FindByClientID(clientID string) ([]models.Gig, error) {
	var gigs []models.Gig
	err := r.db.Where("client_id = ?", clientID).Order("created_at DESC").Find(&gigs).Error
	return gigs, err
}

func (r *GigRepositoryImpl) Create(gig *models.Gig) error {
	var existing models.Gig
	if err := r.db.Where("gig_id = ?", gig.GigID).First(&existing).Error; err == nil {
		return ErrGigAlreadyExists
	}

	return r.db.Create(gig).Error
}

func (r *GigRepositoryImpl) UpdateFields(gigID string, fields map[string]interface{}) error {
	result := r.db.Model(&models.Gig{}).Where("gig_id = ?", gigID).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrGigNotFound
	}
	return nil
}

// ReassignClient moves an existing gig under a different owning client.
func (r *GigRepositoryImpl) ReassignClient(gigID, clientID string) error {
	result := r.db.Model(&models.Gig{}).Where("gig_id = ?", gigID).Update("client_id", clientID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrGigNotFound
	}
	return nil
}

func (r *GigRepositoryImpl) DeleteByGigID(gigID string) error {
	result := r.db.Where("gig_id = ?", gigID).Delete(&models.Gig{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrGigNotFound
	}
	return nil
}

// DeleteOwned removes a gig only when it belongs to the given client.
func (r *GigRepositoryImpl) DeleteOwned(clientID, gigID string) error {
	result := r.db.Where("client_id = ? AND gig_id = ?", clientID, gigID).Delete(&models.Gig{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrGigNotFound
	}
	return nil
}
