package public

import (
	"errors"
	"strings"

	"github.com/tikprofil/tikprofil-api/internal/http/response"
	"github.com/tikprofil/tikprofil-api/internal/models"
	"github.com/tikprofil/tikprofil-api/internal/service"

	"github.com/gin-gonic/gin"
)

// CheckoutItemRequest is one cart line sent by the storefront.
type CheckoutItemRequest struct {
	ProductID  uint     `json:"product_id" binding:"required"`
	Quantity   int      `json:"quantity" binding:"required"`
	SizeName   string   `json:"size_name"`
	ExtraNames []string `json:"extra_names"`
}

// CheckoutRequest is the checkout payload. The submitted total is what the
// storefront displayed; the server recomputes and reconciles it.
type CheckoutRequest struct {
	CustomerName    string                `json:"customer_name" binding:"required"`
	CustomerPhone   string                `json:"customer_phone" binding:"required"`
	CustomerEmail   string                `json:"customer_email"`
	DeliveryType    string                `json:"delivery_type" binding:"required"`
	DeliveryAddress string                `json:"delivery_address"`
	TableLabel      string                `json:"table_label"`
	PaymentMethod   string                `json:"payment_method"`
	OrderNote       string                `json:"order_note"`
	CouponCode      string                `json:"coupon_code"`
	SubmittedTotal  models.Money          `json:"submitted_total"`
	Items           []CheckoutItemRequest `json:"items" binding:"required"`
}

// Checkout places an order for one business.
func (h *Handler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	var items []service.CheckoutItem
	for _, item := range req.Items {
		items = append(items, service.CheckoutItem{
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			SizeName:   item.SizeName,
			ExtraNames: item.ExtraNames,
		})
	}

	order, err := h.OrderService.Checkout(service.CheckoutInput{
		BusinessSlug:    c.Param("slug"),
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerEmail:   req.CustomerEmail,
		DeliveryType:    req.DeliveryType,
		DeliveryAddress: req.DeliveryAddress,
		TableLabel:      req.TableLabel,
		PaymentMethod:   req.PaymentMethod,
		OrderNote:       req.OrderNote,
		CouponCode:      req.CouponCode,
		SubmittedTotal:  req.SubmittedTotal,
		ClientIP:        c.ClientIP(),
		Items:           items,
	})
	if err != nil {
		respondCheckoutError(c, err)
		return
	}

	whatsappURL := ""
	if business, berr := h.BusinessService.GetBySlug(c.Param("slug")); berr == nil {
		whatsappURL = service.BuildWhatsAppLink(business, order)
	}

	response.Success(c, gin.H{
		"order_no":        order.OrderNo,
		"status":          order.Status,
		"subtotal":        order.Subtotal,
		"discount_amount": order.DiscountAmount,
		"delivery_fee":    order.DeliveryFee,
		"total_amount":    order.TotalAmount,
		"currency":        order.Currency,
		"whatsapp_url":    whatsappURL,
		"created_at":      order.CreatedAt,
	})
}

// TrackOrder serves the order detail keyed by order number and phone.
func (h *Handler) TrackOrder(c *gin.Context) {
	orderNo := strings.TrimSpace(c.Param("order_no"))
	phone := strings.TrimSpace(c.Query("phone"))
	if orderNo == "" || phone == "" {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	order, err := h.OrderService.Track(orderNo, phone)
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

// CancelOrderRequest identifies the order a customer wants to withdraw.
type CancelOrderRequest struct {
	CustomerPhone string `json:"customer_phone" binding:"required"`
}

// CancelOrder lets a customer withdraw an order that is still pending.
func (h *Handler) CancelOrder(c *gin.Context) {
	var req CancelOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	order, err := h.OrderService.CancelByCustomer(strings.TrimSpace(c.Param("order_no")), req.CustomerPhone)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			respondError(c, response.CodeNotFound, "error.order_not_found", nil)
		case errors.Is(err, service.ErrOrderCancelDenied):
			respondError(c, response.CodeBadRequest, "error.order_cancel_denied", nil)
		default:
			respondError(c, response.CodeInternal, "error.internal", err)
		}
		return
	}

	response.Success(c, gin.H{
		"order_no": order.OrderNo,
		"status":   order.Status,
	})
}
