package repository

import (
	"errors"

	"github.com/tikprofil/tikprofil-api/internal/models"

	"gorm.io/gorm"
)

// DiningTableRepository is the dine-in table data access interface.
type DiningTableRepository interface {
	GetByID(id uint) (*models.DiningTable, error)
	GetByLabel(businessID uint, label string) (*models.DiningTable, error)
	Create(table *models.DiningTable) error
	Update(table *models.DiningTable) error
	Delete(id uint) error
	List(filter DiningTableListFilter) ([]models.DiningTable, int64, error)
	WithTx(tx *gorm.DB) *GormDiningTableRepository
}

// GormDiningTableRepository is the GORM implementation.
type GormDiningTableRepository struct {
	db *gorm.DB
}

// NewDiningTableRepository creates a table repository.
func NewDiningTableRepository(db *gorm.DB) *GormDiningTableRepository {
	return &GormDiningTableRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormDiningTableRepository) WithTx(tx *gorm.DB) *GormDiningTableRepository {
	if tx == nil {
		return r
	}
	return &GormDiningTableRepository{db: tx}
}

// GetByID fetches a table by id.
func (r *GormDiningTableRepository) GetByID(id uint) (*models.DiningTable, error) {
	var table models.DiningTable
	if err := r.db.First(&table, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &table, nil
}

// GetByLabel fetches a table of one business by its label.
func (r *GormDiningTableRepository) GetByLabel(businessID uint, label string) (*models.DiningTable, error) {
	var table models.DiningTable
	if err := r.db.Where("business_id = ? AND label = ?", businessID, label).First(&table).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &table, nil
}

// Create inserts a table.
func (r *GormDiningTableRepository) Create(table *models.DiningTable) error {
	return r.db.Create(table).Error
}

// Update saves a table.
func (r *GormDiningTableRepository) Update(table *models.DiningTable) error {
	return r.db.Save(table).Error
}

// Delete soft-deletes a table.
func (r *GormDiningTableRepository) Delete(id uint) error {
	return r.db.Delete(&models.DiningTable{}, id).Error
}

// List fetches tables of one business.
func (r *GormDiningTableRepository) List(filter DiningTableListFilter) ([]models.DiningTable, int64, error) {
	var tables []models.DiningTable
	query := r.db.Model(&models.DiningTable{})

	if filter.BusinessID > 0 {
		query = query.Where("business_id = ?", filter.BusinessID)
	}
	if filter.OnlyActive {
		query = query.Where("is_active = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Order("label asc").Find(&tables).Error; err != nil {
		return nil, 0, err
	}
	return tables, total, nil
}
