package public

import (
	"github.com/tikprofil/tikprofil-api/internal/http/response"
	"github.com/tikprofil/tikprofil-api/internal/models"

	"github.com/gin-gonic/gin"
)

// publicSettingView is the slice of the settings a customer may see.
type publicSettingView struct {
	AcceptingOrders       bool         `json:"accepting_orders"`
	MinOrderAmount        models.Money `json:"min_order_amount"`
	DeliveryFee           models.Money `json:"delivery_fee"`
	FreeDeliveryThreshold models.Money `json:"free_delivery_threshold"`
	Currency              string       `json:"currency"`
}

// GetBusiness serves the public profile of one business: identity, ordering
// settings and the coupons it advertises.
func (h *Handler) GetBusiness(c *gin.Context) {
	business, err := h.BusinessService.GetBySlug(c.Param("slug"))
	if err != nil {
		respondWithMappedError(c, err, businessResolveErrorRules, response.CodeInternal, "error.internal")
		return
	}

	setting, err := h.BusinessService.GetSetting(c.Request.Context(), business.ID)
	if err != nil {
		respondWithMappedError(c, err, businessResolveErrorRules, response.CodeInternal, "error.internal")
		return
	}

	coupons, err := h.BusinessService.ListPublicCoupons(business.ID)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	response.Success(c, gin.H{
		"business": business,
		"setting": publicSettingView{
			AcceptingOrders:       setting.AcceptingOrders,
			MinOrderAmount:        setting.MinOrderAmount,
			DeliveryFee:           setting.DeliveryFee,
			FreeDeliveryThreshold: setting.FreeDeliveryThreshold,
			Currency:              setting.Currency,
		},
		"coupons": coupons,
	})
}

// GetMenu serves the public menu of one business.
func (h *Handler) GetMenu(c *gin.Context) {
	business, err := h.BusinessService.GetBySlug(c.Param("slug"))
	if err != nil {
		respondWithMappedError(c, err, businessResolveErrorRules, response.CodeInternal, "error.internal")
		return
	}

	menu, err := h.BusinessService.GetMenu(business.ID)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	response.Success(c, menu)
}
