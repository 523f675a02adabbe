package admin

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/tikprofil/tikprofil-api/internal/http/response"
	"github.com/tikprofil/tikprofil-api/internal/repository"
	"github.com/tikprofil/tikprofil-api/internal/service"

	"github.com/gin-gonic/gin"
)

// ListOrders serves the order desk list with filters.
func (h *Handler) ListOrders(c *gin.Context) {
	businessID, ok := getBusinessID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	filter := repository.OrderListFilter{
		Page:          page,
		PageSize:      pageSize,
		BusinessID:    businessID,
		Status:        strings.TrimSpace(c.Query("status")),
		OrderNo:       strings.TrimSpace(c.Query("order_no")),
		CustomerPhone: strings.TrimSpace(c.Query("customer_phone")),
		DeliveryType:  strings.TrimSpace(c.Query("delivery_type")),
	}
	if from := strings.TrimSpace(c.Query("created_from")); from != "" {
		if t, err := time.Parse(time.RFC3339, from); err == nil {
			filter.CreatedFrom = &t
		}
	}
	if to := strings.TrimSpace(c.Query("created_to")); to != "" {
		if t, err := time.Parse(time.RFC3339, to); err == nil {
			filter.CreatedTo = &t
		}
	}

	orders, total, err := h.OrderService.ListAdmin(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	pagination := response.BuildPagination(page, pageSize, total)
	response.SuccessWithPage(c, orders, pagination)
}

// GetOrder serves one order with its items and status history.
func (h *Handler) GetOrder(c *gin.Context) {
	businessID, ok := getBusinessID(c)
	if !ok {
		return
	}

	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || orderID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	order, err := h.OrderService.GetAdmin(businessID, uint(orderID))
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			respondError(c, response.CodeNotFound, "error.order_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	response.Success(c, order)
}

// UpdateOrderStatusRequest names the target status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Note   string `json:"note"`
}

// UpdateOrderStatus moves an order along its lifecycle. Illegal jumps are
// rejected and every accepted transition writes a status log row.
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	businessID, ok := getBusinessID(c)
	if !ok {
		return
	}

	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || orderID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	order, err := h.OrderService.UpdateStatus(businessID, uint(orderID), req.Status, req.Note)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			respondError(c, response.CodeNotFound, "error.order_not_found", nil)
		case errors.Is(err, service.ErrOrderStatusInvalid):
			respondError(c, response.CodeBadRequest, "error.order_invalid_status", nil)
		default:
			respondError(c, response.CodeInternal, "error.internal", err)
		}
		return
	}

	response.Success(c, gin.H{
		"id":       order.ID,
		"order_no": order.OrderNo,
		"status":   order.Status,
	})
}
