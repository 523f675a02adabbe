package service

import (
	"strings"

	"github.com/tikprofil/tikprofil-api/internal/models"
	"github.com/tikprofil/tikprofil-api/internal/repository"
)

// CategoryService owns menu category management.
type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService creates a category service.
func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// Create stores a category.
func (s *CategoryService) Create(category *models.Category) error {
	category.Name = strings.TrimSpace(category.Name)
	if category.Name == "" || category.BusinessID == 0 {
		return ErrCategoryNotFound
	}
	return s.categoryRepo.Create(category)
}

// Update saves category changes scoped to a business.
func (s *CategoryService) Update(businessID uint, category *models.Category) error {
	current, err := s.categoryRepo.GetByID(category.ID)
	if err != nil {
		return err
	}
	if current == nil || current.BusinessID != businessID {
		return ErrCategoryNotFound
	}
	category.BusinessID = current.BusinessID
	category.Name = strings.TrimSpace(category.Name)
	if category.Name == "" {
		return ErrCategoryNotFound
	}
	return s.categoryRepo.Update(category)
}

// Delete soft-deletes an empty category. Categories still holding products
// cannot be removed.
func (s *CategoryService) Delete(businessID, categoryID uint) error {
	category, err := s.categoryRepo.GetByID(categoryID)
	if err != nil {
		return err
	}
	if category == nil || category.BusinessID != businessID {
		return ErrCategoryNotFound
	}
	count, err := s.categoryRepo.CountProducts(categoryID)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryNotFound
	}
	return s.categoryRepo.Delete(categoryID)
}

// List fetches categories for the admin panel.
func (s *CategoryService) List(filter repository.CategoryListFilter) ([]models.Category, int64, error) {
	return s.categoryRepo.List(filter)
}
