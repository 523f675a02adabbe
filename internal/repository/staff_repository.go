package repository

import (
	"errors"
	"strings"
	"time"

	"github.com/tikprofil/tikprofil-api/internal/models"

	"gorm.io/gorm"
)

// StaffRepository is the staff account data access interface.
type StaffRepository interface {
	GetByID(id uint) (*models.Staff, error)
	GetByEmail(email string) (*models.Staff, error)
	ListByBusinessID(businessID uint) ([]models.Staff, error)
	Create(staff *models.Staff) error
	Update(staff *models.Staff) error
	TouchLastLogin(id uint, at time.Time) error
	BumpTokenVersion(id uint) error
	WithTx(tx *gorm.DB) *GormStaffRepository
}

// GormStaffRepository is the GORM implementation.
type GormStaffRepository struct {
	db *gorm.DB
}

// NewStaffRepository creates a staff repository.
func NewStaffRepository(db *gorm.DB) *GormStaffRepository {
	return &GormStaffRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormStaffRepository) WithTx(tx *gorm.DB) *GormStaffRepository {
	if tx == nil {
		return r
	}
	return &GormStaffRepository{db: tx}
}

// GetByID fetches a staff account by id.
func (r *GormStaffRepository) GetByID(id uint) (*models.Staff, error) {
	var staff models.Staff
	if err := r.db.First(&staff, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &staff, nil
}

// GetByEmail fetches a staff account by login email.
func (r *GormStaffRepository) GetByEmail(email string) (*models.Staff, error) {
	var staff models.Staff
	normalized := strings.ToLower(strings.TrimSpace(email))
	if err := r.db.Where("email = ?", normalized).First(&staff).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &staff, nil
}

// ListByBusinessID fetches all staff of one business.
func (r *GormStaffRepository) ListByBusinessID(businessID uint) ([]models.Staff, error) {
	var staff []models.Staff
	if err := r.db.Where("business_id = ?", businessID).Order("id asc").Find(&staff).Error; err != nil {
		return nil, err
	}
	return staff, nil
}

// Create inserts a staff account.
func (r *GormStaffRepository) Create(staff *models.Staff) error {
	return r.db.Create(staff).Error
}

// Update saves a staff account.
func (r *GormStaffRepository) Update(staff *models.Staff) error {
	return r.db.Save(staff).Error
}

// TouchLastLogin records a successful login time.
func (r *GormStaffRepository) TouchLastLogin(id uint, at time.Time) error {
	return r.db.Model(&models.Staff{}).
		Where("id = ?", id).
		UpdateColumn("last_login_at", at).Error
}

// BumpTokenVersion invalidates all outstanding tokens of one account.
func (r *GormStaffRepository) BumpTokenVersion(id uint) error {
	return r.db.Model(&models.Staff{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"token_version":        gorm.Expr("token_version + 1"),
			"token_invalid_before": time.Now(),
		}).Error
}
