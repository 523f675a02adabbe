package service

import (
	"strings"

	"github.com/tikprofil/tikprofil-api/internal/models"
	"github.com/tikprofil/tikprofil-api/internal/repository"

	"github.com/shopspring/decimal"
)

// ProductService owns product management.
type ProductService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductService creates a product service.
func NewProductService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// Create validates and stores a product.
func (s *ProductService) Create(product *models.Product) error {
	if err := s.normalizeProduct(product.BusinessID, product); err != nil {
		return err
	}
	return s.productRepo.Create(product)
}

// Update saves product changes scoped to a business.
func (s *ProductService) Update(businessID uint, product *models.Product) error {
	current, err := s.productRepo.GetByID(product.ID)
	if err != nil {
		return err
	}
	if current == nil || current.BusinessID != businessID {
		return ErrProductNotFound
	}
	product.BusinessID = current.BusinessID
	if err := s.normalizeProduct(businessID, product); err != nil {
		return err
	}
	return s.productRepo.Update(product)
}

// Delete soft-deletes a product. Past order items keep their snapshots.
func (s *ProductService) Delete(businessID, productID uint) error {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil || product.BusinessID != businessID {
		return ErrProductNotFound
	}
	return s.productRepo.Delete(productID)
}

// Get fetches one product scoped to a business.
func (s *ProductService) Get(businessID, productID uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil || product.BusinessID != businessID {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// List fetches products for the admin panel.
func (s *ProductService) List(filter repository.ProductListFilter) ([]models.Product, int64, error) {
	return s.productRepo.List(filter)
}

func (s *ProductService) normalizeProduct(businessID uint, product *models.Product) error {
	product.Name = strings.TrimSpace(product.Name)
	if product.Name == "" || businessID == 0 {
		return ErrProductNotFound
	}
	if product.Price.Decimal.LessThan(decimal.Zero) {
		return ErrProductNotFound
	}
	if product.CategoryID != 0 {
		category, err := s.categoryRepo.GetByID(product.CategoryID)
		if err != nil {
			return err
		}
		if category == nil || category.BusinessID != businessID {
			return ErrCategoryNotFound
		}
	}
	return nil
}
