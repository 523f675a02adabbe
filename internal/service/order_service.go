package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/tikprofil/tikprofil-api/internal/constants"
	"github.com/tikprofil/tikprofil-api/internal/logger"
	"github.com/tikprofil/tikprofil-api/internal/models"
	"github.com/tikprofil/tikprofil-api/internal/queue"
	"github.com/tikprofil/tikprofil-api/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderService owns checkout and the order lifecycle.
type OrderService struct {
	orderRepo           repository.OrderRepository
	productRepo         repository.ProductRepository
	tableRepo           repository.DiningTableRepository
	couponRepo          repository.CouponRepository
	couponUsageRepo     repository.CouponUsageRepository
	businessRepo        repository.BusinessRepository
	settingRepo         repository.BusinessSettingRepository
	couponService       *CouponService
	queueClient         *queue.Client
	cancelWindowMinutes int
}

// NewOrderService creates an order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	tableRepo repository.DiningTableRepository,
	couponRepo repository.CouponRepository,
	couponUsageRepo repository.CouponUsageRepository,
	businessRepo repository.BusinessRepository,
	settingRepo repository.BusinessSettingRepository,
	couponService *CouponService,
	queueClient *queue.Client,
	cancelWindowMinutes int,
) *OrderService {
	return &OrderService{
		orderRepo:           orderRepo,
		productRepo:         productRepo,
		tableRepo:           tableRepo,
		couponRepo:          couponRepo,
		couponUsageRepo:     couponUsageRepo,
		businessRepo:        businessRepo,
		settingRepo:         settingRepo,
		couponService:       couponService,
		queueClient:         queueClient,
		cancelWindowMinutes: cancelWindowMinutes,
	}
}

// CheckoutInput is the customer-submitted order request.
type CheckoutInput struct {
	BusinessSlug    string
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	DeliveryType    string
	DeliveryAddress string
	TableLabel      string
	PaymentMethod   string
	OrderNote       string
	CouponCode      string
	SubmittedTotal  models.Money
	ClientIP        string
	Items           []CheckoutItem
}

// CheckoutItem is one cart line. Prices never come from the client.
type CheckoutItem struct {
	ProductID  uint
	Quantity   int
	SizeName   string
	ExtraNames []string
}

// Checkout runs the full pipeline: server-side pricing, fee and coupon
// computation, total reconciliation, then a single transaction writing the
// order, its items, the opening status log and the coupon redemption.
func (s *OrderService) Checkout(input CheckoutInput) (*models.Order, error) {
	business, setting, err := s.resolveAcceptingBusiness(input.BusinessSlug)
	if err != nil {
		return nil, err
	}

	if len(input.Items) == 0 {
		return nil, ErrOrderEmpty
	}
	if err := s.validateDelivery(business.ID, &input); err != nil {
		return nil, err
	}
	if !isPaymentMethodAllowed(input.PaymentMethod) {
		return nil, ErrPaymentNotAvailable
	}

	items, subtotal, err := s.priceItems(business.ID, input.Items)
	if err != nil {
		return nil, err
	}

	if subtotal.Cmp(setting.MinOrderAmount.Decimal) < 0 {
		return nil, ErrOrderMinAmount
	}

	deliveryFee := s.resolveDeliveryFee(setting, input.DeliveryType, subtotal)

	discount := decimal.Zero
	var appliedCoupon *models.Coupon
	if strings.TrimSpace(input.CouponCode) != "" {
		quote, err := s.couponService.ApplyCoupon(
			business.ID,
			input.CouponCode,
			input.CustomerPhone,
			models.NewMoneyFromDecimal(subtotal),
			models.NewMoneyFromDecimal(deliveryFee),
			items,
		)
		if err != nil {
			return nil, err
		}
		discount = quote.Discount.Decimal
		appliedCoupon = quote.Coupon
	}

	total := subtotal.Add(deliveryFee).Sub(discount).Round(2)
	if !withinTolerance(total, input.SubmittedTotal.Decimal) {
		return nil, ErrOrderTotalMismatch
	}

	now := time.Now()
	order := &models.Order{
		OrderNo:         generateOrderNo(),
		BusinessID:      business.ID,
		CustomerName:    strings.TrimSpace(input.CustomerName),
		CustomerPhone:   strings.TrimSpace(input.CustomerPhone),
		CustomerEmail:   strings.TrimSpace(input.CustomerEmail),
		DeliveryType:    input.DeliveryType,
		DeliveryAddress: strings.TrimSpace(input.DeliveryAddress),
		TableLabel:      strings.TrimSpace(input.TableLabel),
		PaymentMethod:   input.PaymentMethod,
		OrderNote:       strings.TrimSpace(input.OrderNote),
		Status:          constants.OrderStatusPending,
		Currency:        setting.Currency,
		Subtotal:        models.NewMoneyFromDecimal(subtotal),
		DiscountAmount:  models.NewMoneyFromDecimal(discount),
		DeliveryFee:     models.NewMoneyFromDecimal(deliveryFee),
		TotalAmount:     models.NewMoneyFromDecimal(total),
		ClientIP:        strings.TrimSpace(input.ClientIP),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if appliedCoupon != nil {
		order.CouponID = &appliedCoupon.ID
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		orderRepo := s.orderRepo.WithTx(tx)
		if err := orderRepo.Create(order, items); err != nil {
			return err
		}
		if err := orderRepo.AppendStatusLog(&models.OrderStatusLog{
			OrderID:    order.ID,
			FromStatus: "",
			ToStatus:   constants.OrderStatusPending,
			Actor:      constants.StatusActorSystem,
			CreatedAt:  now,
		}); err != nil {
			return err
		}
		if appliedCoupon != nil {
			couponRepo := s.couponRepo.WithTx(tx)
			usageRepo := s.couponUsageRepo.WithTx(tx)
			redeemed, err := couponRepo.RedeemIncrement(appliedCoupon.ID)
			if err != nil {
				return err
			}
			if !redeemed {
				return ErrCouponUsageLimit
			}
			if err := usageRepo.Create(&models.CouponUsage{
				CouponID:       appliedCoupon.ID,
				OrderID:        order.ID,
				CustomerPhone:  order.CustomerPhone,
				DiscountAmount: models.NewMoneyFromDecimal(discount),
				CreatedAt:      now,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Callers render the order summary (response body, WhatsApp link) from
	// the returned value, so the line items ride along.
	order.Items = items

	s.enqueueNotify(order.ID, order.Status)
	return order, nil
}

func (s *OrderService) resolveAcceptingBusiness(slug string) (*models.Business, *models.BusinessSetting, error) {
	business, err := s.businessRepo.GetBySlug(slug)
	if err != nil {
		return nil, nil, err
	}
	if business == nil {
		return nil, nil, ErrBusinessNotFound
	}
	if !business.IsActive {
		return nil, nil, ErrBusinessInactive
	}
	setting, err := s.settingRepo.GetByBusinessID(business.ID)
	if err != nil {
		return nil, nil, err
	}
	if setting == nil || !setting.AcceptingOrders {
		return nil, nil, ErrOrdersPaused
	}
	return business, setting, nil
}

func (s *OrderService) validateDelivery(businessID uint, input *CheckoutInput) error {
	switch input.DeliveryType {
	case constants.DeliveryTypePickup:
		return nil
	case constants.DeliveryTypeDelivery:
		if strings.TrimSpace(input.DeliveryAddress) == "" {
			return ErrDeliveryNotAvailable
		}
		return nil
	case constants.DeliveryTypeDineIn:
		label := strings.TrimSpace(input.TableLabel)
		if label == "" {
			return ErrTableNotFound
		}
		table, err := s.tableRepo.GetByLabel(businessID, label)
		if err != nil {
			return err
		}
		if table == nil || !table.IsActive {
			return ErrTableNotFound
		}
		return nil
	default:
		return ErrDeliveryNotAvailable
	}
}

func isPaymentMethodAllowed(method string) bool {
	switch method {
	case constants.PaymentMethodCash, constants.PaymentMethodCard, constants.PaymentMethodTransfer:
		return true
	default:
		return false
	}
}

// priceItems builds order item snapshots from product rows. The client only
// names products and options; all amounts come from the database.
func (s *OrderService) priceItems(businessID uint, items []CheckoutItem) ([]models.OrderItem, decimal.Decimal, error) {
	ids := make([]uint, 0, len(items))
	for _, item := range items {
		if item.ProductID == 0 || item.Quantity <= 0 {
			return nil, decimal.Zero, ErrInvalidOrderItem
		}
		ids = append(ids, item.ProductID)
	}
	products, err := s.productRepo.ListByIDs(ids)
	if err != nil {
		return nil, decimal.Zero, err
	}
	byID := make(map[uint]*models.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	orderItems := make([]models.OrderItem, 0, len(items))
	subtotal := decimal.Zero
	for _, item := range items {
		product, ok := byID[item.ProductID]
		if !ok || product.BusinessID != businessID || !product.IsAvailable {
			return nil, decimal.Zero, ErrInvalidOrderItem
		}

		unitPrice := product.Price.Decimal
		sizeName := strings.TrimSpace(item.SizeName)
		if sizeName != "" {
			delta, ok := lookupOptionAmount(product.SizeOptions, sizeName, "price_delta")
			if !ok {
				return nil, decimal.Zero, ErrInvalidOrderItem
			}
			unitPrice = unitPrice.Add(delta)
		}

		extras := make(models.JSONArray, 0, len(item.ExtraNames))
		extrasTotal := decimal.Zero
		for _, extraName := range item.ExtraNames {
			name := strings.TrimSpace(extraName)
			if name == "" {
				continue
			}
			price, ok := lookupOptionAmount(product.ExtraOptions, name, "price_delta")
			if !ok {
				return nil, decimal.Zero, ErrInvalidOrderItem
			}
			extras = append(extras, map[string]interface{}{
				"name":  name,
				"price": price.StringFixed(2),
			})
			extrasTotal = extrasTotal.Add(price)
		}

		lineUnit := unitPrice.Add(extrasTotal)
		lineTotal := lineUnit.Mul(decimal.NewFromInt(int64(item.Quantity))).Round(2)
		orderItems = append(orderItems, models.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			CategoryID:  product.CategoryID,
			SizeName:    sizeName,
			ExtrasJSON:  extras,
			UnitPrice:   models.NewMoneyFromDecimal(lineUnit),
			Quantity:    item.Quantity,
			TotalPrice:  models.NewMoneyFromDecimal(lineTotal),
		})
		subtotal = subtotal.Add(lineTotal)
	}
	return orderItems, subtotal.Round(2), nil
}

func (s *OrderService) resolveDeliveryFee(setting *models.BusinessSetting, deliveryType string, subtotal decimal.Decimal) decimal.Decimal {
	if deliveryType != constants.DeliveryTypeDelivery {
		return decimal.Zero
	}
	threshold := setting.FreeDeliveryThreshold.Decimal
	if threshold.GreaterThan(decimal.Zero) && subtotal.Cmp(threshold) >= 0 {
		return decimal.Zero
	}
	return setting.DeliveryFee.Decimal
}

func (s *OrderService) enqueueNotify(orderID uint, event string) {
	if s.queueClient == nil {
		return
	}
	if err := s.queueClient.EnqueueOrderNotify(queue.OrderNotifyPayload{
		OrderID: orderID,
		Event:   event,
	}); err != nil {
		// Notification delivery is best effort; a full queue never blocks
		// an order.
		logger.Warnw("order_enqueue_notify_failed",
			"order_id", orderID,
			"event", event,
			"error", err,
		)
	}
}

// withinTolerance accepts at most one cent of drift between the recomputed
// and the client-submitted total.
func withinTolerance(calculated, submitted decimal.Decimal) bool {
	tolerance, err := decimal.NewFromString(constants.OrderTotalTolerance)
	if err != nil {
		tolerance = decimal.New(1, -2)
	}
	return calculated.Sub(submitted).Abs().Cmp(tolerance) <= 0
}

// lookupOptionAmount finds a named option in a JSON snapshot list and parses
// its amount field. Option names match case-insensitively.
func lookupOptionAmount(options models.JSONArray, name, amountKey string) (decimal.Decimal, bool) {
	for _, option := range options {
		optName, _ := option["name"].(string)
		if !strings.EqualFold(strings.TrimSpace(optName), name) {
			continue
		}
		switch v := option[amountKey].(type) {
		case string:
			amount, err := decimal.NewFromString(strings.TrimSpace(v))
			if err != nil {
				return decimal.Zero, false
			}
			return amount, true
		case float64:
			return decimal.NewFromFloat(v), true
		case int:
			return decimal.NewFromInt(int64(v)), true
		case nil:
			return decimal.Zero, true
		default:
			return decimal.Zero, false
		}
	}
	return decimal.Zero, false
}

func generateOrderNo() string {
	now := time.Now().Format("20060102150405")
	return fmt.Sprintf("TP%s%s", now, randNumeric(6))
}

func randNumeric(length int) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			b.WriteString("0")
			continue
		}
		fmt.Fprintf(&b, "%d", n.Int64())
	}
	return b.String()
}
