package repository

import (
	"errors"
	"strings"

	"github.com/tikprofil/tikprofil-api/internal/models"

	"gorm.io/gorm"
)

// BusinessRepository is the business profile data access interface.
type BusinessRepository interface {
	GetByID(id uint) (*models.Business, error)
	GetBySlug(slug string) (*models.Business, error)
	Create(business *models.Business) error
	Update(business *models.Business) error
	WithTx(tx *gorm.DB) *GormBusinessRepository
}

// GormBusinessRepository is the GORM implementation.
type GormBusinessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository creates a business repository.
func NewBusinessRepository(db *gorm.DB) *GormBusinessRepository {
	return &GormBusinessRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormBusinessRepository) WithTx(tx *gorm.DB) *GormBusinessRepository {
	if tx == nil {
		return r
	}
	return &GormBusinessRepository{db: tx}
}

// GetByID fetches a business by id.
func (r *GormBusinessRepository) GetByID(id uint) (*models.Business, error) {
	var business models.Business
	if err := r.db.First(&business, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &business, nil
}

// GetBySlug fetches a business by its public slug. Slugs are matched
// case-insensitively.
func (r *GormBusinessRepository) GetBySlug(slug string) (*models.Business, error) {
	var business models.Business
	normalized := strings.ToLower(strings.TrimSpace(slug))
	if err := r.db.Where("LOWER(slug) = ?", normalized).First(&business).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &business, nil
}

// Create inserts a business.
func (r *GormBusinessRepository) Create(business *models.Business) error {
	return r.db.Create(business).Error
}

// Update saves a business.
func (r *GormBusinessRepository) Update(business *models.Business) error {
	return r.db.Save(business).Error
}
