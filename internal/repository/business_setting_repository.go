package repository

import (
	"errors"

	"github.com/tikprofil/tikprofil-api/internal/models"

	"gorm.io/gorm"
)

// BusinessSettingRepository is the per-business settings data access interface.
type BusinessSettingRepository interface {
	GetByBusinessID(businessID uint) (*models.BusinessSetting, error)
	Create(setting *models.BusinessSetting) error
	Update(setting *models.BusinessSetting) error
	WithTx(tx *gorm.DB) *GormBusinessSettingRepository
}

// GormBusinessSettingRepository is the GORM implementation.
type GormBusinessSettingRepository struct {
	db *gorm.DB
}

// NewBusinessSettingRepository creates a settings repository.
func NewBusinessSettingRepository(db *gorm.DB) *GormBusinessSettingRepository {
	return &GormBusinessSettingRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormBusinessSettingRepository) WithTx(tx *gorm.DB) *GormBusinessSettingRepository {
	if tx == nil {
		return r
	}
	return &GormBusinessSettingRepository{db: tx}
}

// GetByBusinessID fetches the settings row of one business.
func (r *GormBusinessSettingRepository) GetByBusinessID(businessID uint) (*models.BusinessSetting, error) {
	var setting models.BusinessSetting
	if err := r.db.Where("business_id = ?", businessID).First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &setting, nil
}

// Create inserts a settings row.
func (r *GormBusinessSettingRepository) Create(setting *models.BusinessSetting) error {
	return r.db.Create(setting).Error
}

// Update saves a settings row.
func (r *GormBusinessSettingRepository) Update(setting *models.BusinessSetting) error {
	return r.db.Save(setting).Error
}
