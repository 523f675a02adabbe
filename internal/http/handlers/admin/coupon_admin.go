package admin

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/tikprofil/tikprofil-api/internal/http/response"
	"github.com/tikprofil/tikprofil-api/internal/models"
	"github.com/tikprofil/tikprofil-api/internal/repository"
	"github.com/tikprofil/tikprofil-api/internal/service"

	"github.com/gin-gonic/gin"
)

// CouponRequest is the create/update payload for a coupon.
type CouponRequest struct {
	Code           string       `json:"code" binding:"required"`
	Type           string       `json:"type" binding:"required"`
	Value          models.Money `json:"value"`
	MinOrderAmount models.Money `json:"min_order_amount"`
	MaxDiscount    models.Money `json:"max_discount"`
	UsageLimit     int          `json:"usage_limit"`
	PerUserLimit   int          `json:"per_user_limit"`
	ScopeType      string       `json:"scope_type"`
	ScopeRefIDs    string       `json:"scope_ref_ids"`
	ValidFrom      *time.Time   `json:"valid_from"`
	ValidUntil     *time.Time   `json:"valid_until"`
	IsActive       *bool        `json:"is_active"`
	IsPublic       bool         `json:"is_public"`
	FirstOrderOnly bool         `json:"first_order_only"`
}

func (req *CouponRequest) toModel(businessID uint) *models.Coupon {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return &models.Coupon{
		BusinessID:     businessID,
		Code:           req.Code,
		Type:           req.Type,
		Value:          req.Value,
		MinOrderAmount: req.MinOrderAmount,
		MaxDiscount:    req.MaxDiscount,
		UsageLimit:     req.UsageLimit,
		PerUserLimit:   req.PerUserLimit,
		ScopeType:      req.ScopeType,
		ScopeRefIDs:    req.ScopeRefIDs,
		ValidFrom:      req.ValidFrom,
		ValidUntil:     req.ValidUntil,
		IsActive:       active,
		IsPublic:       req.IsPublic,
		FirstOrderOnly: req.FirstOrderOnly,
	}
}

func respondCouponAdminError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCouponNotFound):
		respondError(c, response.CodeNotFound, "error.coupon_not_found", nil)
	case errors.Is(err, service.ErrCouponCodeExists):
		respondError(c, response.CodeConflict, "error.coupon_code_exists", nil)
	case errors.Is(err, service.ErrCouponInvalid):
		respondError(c, response.CodeBadRequest, "error.coupon_invalid", nil)
	default:
		respondError(c, response.CodeInternal, "error.internal", err)
	}
}

// ListCoupons serves the coupon list of the business.
func (h *Handler) ListCoupons(c *gin.Context) {
	businessID, ok := getBusinessID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	filter := repository.CouponListFilter{
		Page:       page,
		PageSize:   pageSize,
		BusinessID: businessID,
		Code:       strings.TrimSpace(c.Query("code")),
		Type:       strings.TrimSpace(c.Query("type")),
	}
	if raw := strings.TrimSpace(c.Query("is_active")); raw != "" {
		if active, err := strconv.ParseBool(raw); err == nil {
			filter.IsActive = &active
		}
	}

	coupons, total, err := h.CouponAdminService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	pagination := response.BuildPagination(page, pageSize, total)
	response.SuccessWithPage(c, coupons, pagination)
}

// GetCoupon serves one coupon.
func (h *Handler) GetCoupon(c *gin.Context) {
	businessID, ok := getBusinessID(c)
	if !ok {
		return
	}

	couponID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || couponID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	coupon, err := h.CouponAdminService.Get(businessID, uint(couponID))
	if err != nil {
		respondCouponAdminError(c, err)
		return
	}

	response.Success(c, coupon)
}

// CreateCoupon creates a coupon.
func (h *Handler) CreateCoupon(c *gin.Context) {
	businessID, ok := getBusinessID(c)
	if !ok {
		return
	}

	var req CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	coupon := req.toModel(businessID)
	if err := h.CouponAdminService.Create(coupon); err != nil {
		respondCouponAdminError(c, err)
		return
	}

	response.Success(c, coupon)
}

// UpdateCoupon updates a coupon. The redemption counter is not editable.
func (h *Handler) UpdateCoupon(c *gin.Context) {
	businessID, ok := getBusinessID(c)
	if !ok {
		return
	}

	couponID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || couponID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	var req CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	coupon := req.toModel(businessID)
	coupon.ID = uint(couponID)
	if err := h.CouponAdminService.Update(businessID, coupon); err != nil {
		respondCouponAdminError(c, err)
		return
	}

	response.Success(c, coupon)
}

// DeleteCoupon soft-deletes a coupon.
func (h *Handler) DeleteCoupon(c *gin.Context) {
	businessID, ok := getBusinessID(c)
	if !ok {
		return
	}

	couponID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || couponID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	if err := h.CouponAdminService.Delete(businessID, uint(couponID)); err != nil {
		respondCouponAdminError(c, err)
		return
	}

	response.Success(c, nil)
}

// ListCouponUsages serves the redemption ledger of one coupon.
func (h *Handler) ListCouponUsages(c *gin.Context) {
	businessID, ok := getBusinessID(c)
	if !ok {
		return
	}

	couponID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || couponID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	usages, total, err := h.CouponAdminService.ListUsages(businessID, repository.CouponUsageListFilter{
		Page:          page,
		PageSize:      pageSize,
		CouponID:      uint(couponID),
		CustomerPhone: strings.TrimSpace(c.Query("customer_phone")),
	})
	if err != nil {
		respondCouponAdminError(c, err)
		return
	}

	pagination := response.BuildPagination(page, pageSize, total)
	response.SuccessWithPage(c, usages, pagination)
}
