package admin

import (
	"errors"
	"strconv"
	"strings"

	"github.com/tikprofil/tikprofil-api/internal/http/response"
	"github.com/tikprofil/tikprofil-api/internal/models"
	"github.com/tikprofil/tikprofil-api/internal/repository"
	"github.com/tikprofil/tikprofil-api/internal/service"

	"github.com/gin-gonic/gin"
)

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return 0, false
	}
	return uint(id), true
}

// ====================  Categories  ====================

// CategoryRequest is the create/update payload for a category.
type CategoryRequest struct {
	Name      string `json:"name" binding:"required"`
	SortOrder int    `json:"sort_order"`
	IsActive  *bool  `json:"is_active"`
}

func (req *CategoryRequest) toModel(businessID uint) *models.Category {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return &models.Category{
		BusinessID: businessID,
		Name:       req.Name,
		SortOrder:  req.SortOrder,
		IsActive:   active,
	}
}

// ListCategories serves the category list.
func (h *Handler) ListCategories(c *gin.Context) {
	businessID, ok := getBusinessID(c)
	if !ok {
		return
	}

	categories, _, err := h.CategoryService.List(repository.CategoryListFilter{
		BusinessID: businessID,
		Search:     strings.TrimSpace(c.Query("search")),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	response.Success(c, categories)
}

// CreateCategory creates a category.
func (h *Handler) CreateCategory(c *gin.Context) {
	businessID, ok := getBusinessID(c)
	if !ok {
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	category := req.toModel(businessID)
	if err := h.CategoryService.Create(category); err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			respondError(c, response.CodeBadRequest, "error.bad_request", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	response.Success(c, category)
}

// UpdateCategory updates a category.
func (h *Handler) UpdateCategory(c *gin.Context) {
	businessID, ok := getBusinessID(c)
	if !ok {
		return
	}
	categoryID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	category := req.toModel(businessID)
	category.ID = categoryID
	if err := h.CategoryService.Update(businessID, category); err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			respondError(c, response.CodeNotFound, "error.category_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	response.Success(c, category)
}

// DeleteCategory soft-deletes an empty category.
func (h *Handler) DeleteCategory(c *gin.Context) {
	businessID, ok := getBusinessID(c)
	if !ok {
		return
	}
	categoryID, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.CategoryService.Delete(businessID, categoryID); err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			respondError(c, response.CodeNotFound, "error.category_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	response.Success(c, nil)
}

// ====================  Products  ====================

// ProductRequest is the create/update payload for a product.
type ProductRequest struct {
	CategoryID   uint             `json:"category_id"`
	Name         string           `json:"name" binding:"required"`
	Description  string           `json:"description"`
	Price        models.Money     `json:"price"`
	ImageURL     string           `json:"image_url"`
	SizeOptions  models.JSONArray `json:"size_options"`
	ExtraOptions models.JSONArray `json:"extra_options"`
	SortOrder    int              `json:"sort_order"`
	IsAvailable  *bool            `json:"is_available"`
}

func (req *ProductRequest) toModel(businessID uint) *models.Product {
	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}
	return &models.Product{
		BusinessID:   businessID,
		CategoryID:   req.CategoryID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		ImageURL:     req.ImageURL,
		SizeOptions:  req.SizeOptions,
		ExtraOptions: req.ExtraOptions,
		SortOrder:    req.SortOrder,
		IsAvailable:  available,
	}
}

func respondProductError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProductNotFound):
		respondError(c, response.CodeNotFound, "error.product_not_found", nil)
	case errors.Is(err, service.ErrCategoryNotFound):
		respondError(c, response.CodeBadRequest, "error.category_not_found", nil)
	default:
		respondError(c, response.CodeInternal, "error.internal", err)
	}
}

// ListProducts serves the product list with filters.
func (h *Handler) ListProducts(c *gin.Context) {
	businessID, ok := getBusinessID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	categoryID, _ := strconv.ParseUint(c.Query("category_id"), 10, 64)

	products, total, err := h.ProductService.List(repository.ProductListFilter{
		Page:         page,
		PageSize:     pageSize,
		BusinessID:   businessID,
		CategoryID:   uint(categoryID),
		Search:       strings.TrimSpace(c.Query("search")),
		WithCategory: true,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	pagination := response.BuildPagination(page, pageSize, total)
	response.SuccessWithPage(c, products, pagination)
}

// GetProduct serves one product.
func (h *Handler) GetProduct(c *gin.Context) {
	businessID, ok := getBusinessID(c)
	if !ok {
		return
	}
	productID, ok := parseIDParam(c)
	if !ok {
		return
	}

	product, err := h.ProductService.Get(businessID, productID)
	if err != nil {
		respondProductError(c, err)
		return
	}

	response.Success(c, product)
}

// CreateProduct creates a product.
func (h *Handler) CreateProduct(c *gin.Context) {
	businessID, ok := getBusinessID(c)
	if !ok {
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	product := req.toModel(businessID)
	if err := h.ProductService.Create(product); err != nil {
		respondProductError(c, err)
		return
	}

	response.Success(c, product)
}

// UpdateProduct updates a product.
func (h *Handler) UpdateProduct(c *gin.Context) {
	businessID, ok := getBusinessID(c)
	if !ok {
		return
	}
	productID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	product := req.toModel(businessID)
	product.ID = productID
	if err := h.ProductService.Update(businessID, product); err != nil {
		respondProductError(c, err)
		return
	}

	response.Success(c, product)
}

// DeleteProduct soft-deletes a product. Past orders keep their snapshots.
func (h *Handler) DeleteProduct(c *gin.Context) {
	businessID, ok := getBusinessID(c)
	if !ok {
		return
	}
	productID, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.ProductService.Delete(businessID, productID); err != nil {
		respondProductError(c, err)
		return
	}

	response.Success(c, nil)
}

// ====================  Dining tables  ====================

// DiningTableRequest is the create/update payload for a table.
type DiningTableRequest struct {
	Label    string `json:"label" binding:"required"`
	IsActive *bool  `json:"is_active"`
}

func (req *DiningTableRequest) toModel(businessID uint) *models.DiningTable {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return &models.DiningTable{
		BusinessID: businessID,
		Label:      req.Label,
		IsActive:   active,
	}
}

// ListTables serves the dining table list.
func (h *Handler) ListTables(c *gin.Context) {
	businessID, ok := getBusinessID(c)
	if !ok {
		return
	}

	tables, _, err := h.DiningTableService.List(repository.DiningTableListFilter{
		BusinessID: businessID,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	response.Success(c, tables)
}

// CreateTable creates a dining table.
func (h *Handler) CreateTable(c *gin.Context) {
	businessID, ok := getBusinessID(c)
	if !ok {
		return
	}

	var req DiningTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	table := req.toModel(businessID)
	if err := h.DiningTableService.Create(table); err != nil {
		if errors.Is(err, service.ErrTableNotFound) {
			respondError(c, response.CodeBadRequest, "error.bad_request", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	response.Success(c, table)
}

// UpdateTable updates a dining table.
func (h *Handler) UpdateTable(c *gin.Context) {
	businessID, ok := getBusinessID(c)
	if !ok {
		return
	}
	tableID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req DiningTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	table := req.toModel(businessID)
	table.ID = tableID
	if err := h.DiningTableService.Update(businessID, table); err != nil {
		if errors.Is(err, service.ErrTableNotFound) {
			respondError(c, response.CodeNotFound, "error.table_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	response.Success(c, table)
}

// DeleteTable soft-deletes a dining table.
func (h *Handler) DeleteTable(c *gin.Context) {
	businessID, ok := getBusinessID(c)
	if !ok {
		return
	}
	tableID, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.DiningTableService.Delete(businessID, tableID); err != nil {
		if errors.Is(err, service.ErrTableNotFound) {
			respondError(c, response.CodeNotFound, "error.table_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	response.Success(c, nil)
}
