package public

import (
	"github.com/tikprofil/tikprofil-api/internal/http/response"
	"github.com/tikprofil/tikprofil-api/internal/service"

	"github.com/gin-gonic/gin"
)

// ValidateCouponRequest carries the cart a coupon should be checked against.
type ValidateCouponRequest struct {
	CouponCode    string                `json:"coupon_code" binding:"required"`
	CustomerPhone string                `json:"customer_phone"`
	DeliveryType  string                `json:"delivery_type"`
	Items         []CheckoutItemRequest `json:"items" binding:"required"`
}

// ValidateCoupon evaluates a coupon against a cart without placing an order.
// The returned discount is exactly what checkout would apply.
func (h *Handler) ValidateCoupon(c *gin.Context) {
	var req ValidateCouponRequest
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

	quote, err := h.OrderService.QuoteCoupon(service.CouponQuoteInput{
		BusinessSlug:  c.Param("slug"),
		CouponCode:    req.CouponCode,
		CustomerPhone: req.CustomerPhone,
		DeliveryType:  req.DeliveryType,
		Items:         items,
	})
	if err != nil {
		respondCouponQuoteError(c, err)
		return
	}

	response.Success(c, gin.H{
		"valid":           true,
		"discount_amount": quote.Discount,
		"coupon": gin.H{
			"code":  quote.Coupon.Code,
			"type":  quote.Coupon.Type,
			"value": quote.Coupon.Value,
		},
	})
}
