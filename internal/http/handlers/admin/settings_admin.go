package admin

import (
	"errors"

	"github.com/tikprofil/tikprofil-api/internal/http/response"
	"github.com/tikprofil/tikprofil-api/internal/models"
	"github.com/tikprofil/tikprofil-api/internal/service"

	"github.com/gin-gonic/gin"
)

// GetSettings serves the ordering settings of the business.
func (h *Handler) GetSettings(c *gin.Context) {
	businessID, ok := getBusinessID(c)
	if !ok {
		return
	}

	setting, err := h.BusinessService.GetSetting(c.Request.Context(), businessID)
	if err != nil {
		if errors.Is(err, service.ErrBusinessNotFound) {
			respondError(c, response.CodeNotFound, "error.business_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	response.Success(c, setting)
}

// UpdateSettingsRequest is the settings payload.
type UpdateSettingsRequest struct {
	AcceptingOrders       *bool        `json:"accepting_orders"`
	MinOrderAmount        models.Money `json:"min_order_amount"`
	DeliveryFee           models.Money `json:"delivery_fee"`
	FreeDeliveryThreshold models.Money `json:"free_delivery_threshold"`
	Currency              string       `json:"currency"`
	NotifyURL             string       `json:"notify_url"`
}

// UpdateSettings saves the ordering settings and drops the settings cache so
// the storefront sees the change immediately.
func (h *Handler) UpdateSettings(c *gin.Context) {
	businessID, ok := getBusinessID(c)
	if !ok {
		return
	}

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	setting, err := h.BusinessService.GetSetting(c.Request.Context(), businessID)
	if err != nil {
		if errors.Is(err, service.ErrBusinessNotFound) {
			respondError(c, response.CodeNotFound, "error.business_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	if req.AcceptingOrders != nil {
		setting.AcceptingOrders = *req.AcceptingOrders
	}
	setting.MinOrderAmount = req.MinOrderAmount
	setting.DeliveryFee = req.DeliveryFee
	setting.FreeDeliveryThreshold = req.FreeDeliveryThreshold
	if req.Currency != "" {
		setting.Currency = req.Currency
	}
	setting.NotifyURL = req.NotifyURL

	if err := h.BusinessService.UpdateSetting(c.Request.Context(), setting); err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	response.Success(c, setting)
}

// GetProfile serves the public profile of the business.
func (h *Handler) GetProfile(c *gin.Context) {
	businessID, ok := getBusinessID(c)
	if !ok {
		return
	}

	business, err := h.BusinessRepo.GetByID(businessID)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	if business == nil {
		respondError(c, response.CodeNotFound, "error.business_not_found", nil)
		return
	}

	response.Success(c, business)
}

// UpdateProfileRequest is the profile payload.
type UpdateProfileRequest struct {
	Slug          string `json:"slug" binding:"required"`
	Name          string `json:"name" binding:"required"`
	Category      string `json:"category"`
	Description   string `json:"description"`
	Phone         string `json:"phone"`
	WhatsappPhone string `json:"whatsapp_phone"`
	Address       string `json:"address"`
	LogoURL       string `json:"logo_url"`
}

// UpdateProfile saves the public profile fields of the business.
func (h *Handler) UpdateProfile(c *gin.Context) {
	businessID, ok := getBusinessID(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	business, err := h.BusinessRepo.GetByID(businessID)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	if business == nil {
		respondError(c, response.CodeNotFound, "error.business_not_found", nil)
		return
	}

	business.Slug = req.Slug
	business.Name = req.Name
	if req.Category != "" {
		business.Category = req.Category
	}
	business.Description = req.Description
	business.Phone = req.Phone
	business.WhatsappPhone = req.WhatsappPhone
	business.Address = req.Address
	business.LogoURL = req.LogoURL

	if err := h.BusinessService.UpdateProfile(business); err != nil {
		if errors.Is(err, service.ErrSlugExists) {
			respondError(c, response.CodeConflict, "error.slug_exists", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	response.Success(c, business)
}
