package repository

import (
	"errors"

	"github.com/tikprofil/tikprofil-api/internal/models"

	"gorm.io/gorm"
)

// CategoryRepository is the menu category data access interface.
type CategoryRepository interface {
	GetByID(id uint) (*models.Category, error)
	Create(category *models.Category) error
	Update(category *models.Category) error
	Delete(id uint) error
	List(filter CategoryListFilter) ([]models.Category, int64, error)
	CountProducts(categoryID uint) (int64, error)
	WithTx(tx *gorm.DB) *GormCategoryRepository
}

// GormCategoryRepository is the GORM implementation.
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a category repository.
func NewCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormCategoryRepository) WithTx(tx *gorm.DB) *GormCategoryRepository {
	if tx == nil {
		return r
	}
	return &GormCategoryRepository{db: tx}
}

// GetByID fetches a category by id.
func (r *GormCategoryRepository) GetByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

// Create inserts a category.
func (r *GormCategoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

// Update saves a category.
func (r *GormCategoryRepository) Update(category *models.Category) error {
	return r.db.Save(category).Error
}

// Delete soft-deletes a category.
func (r *GormCategoryRepository) Delete(id uint) error {
	return r.db.Delete(&models.Category{}, id).Error
}

// List fetches categories sorted for menu display.
func (r *GormCategoryRepository) List(filter CategoryListFilter) ([]models.Category, int64, error) {
	var categories []models.Category
	query := r.db.Model(&models.Category{})

	if filter.BusinessID > 0 {
		query = query.Where("business_id = ?", filter.BusinessID)
	}
	if filter.Search != "" {
		query = query.Where("name LIKE ?", "%"+filter.Search+"%")
	}
	if filter.OnlyActive {
		query = query.Where("is_active = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Order("sort_order asc, id asc").Find(&categories).Error; err != nil {
		return nil, 0, err
	}
	return categories, total, nil
}

// CountProducts counts the live products under one category.
func (r *GormCategoryRepository) CountProducts(categoryID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Product{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
