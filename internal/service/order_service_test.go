package service

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/tikprofil/tikprofil-api/internal/constants"
	"github.com/tikprofil/tikprofil-api/internal/models"
	"github.com/tikprofil/tikprofil-api/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type orderTestEnv struct {
	db       *gorm.DB
	svc      *OrderService
	business models.Business
}

func newOrderTestEnv(t *testing.T, name string) *orderTestEnv {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Business{}, &models.BusinessSetting{}, &models.Category{},
		&models.Product{}, &models.DiningTable{}, &models.Order{},
		&models.OrderItem{}, &models.OrderStatusLog{}, &models.Coupon{},
		&models.CouponUsage{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	// Checkout and status transitions open transactions on the global handle.
	models.DB = db

	business := models.Business{Slug: "kebapci", Name: "Kebapci Mehmet", Category: "restaurant", IsActive: true}
	if err := db.Create(&business).Error; err != nil {
		t.Fatalf("create business failed: %v", err)
	}
	setting := models.BusinessSetting{
		BusinessID:            business.ID,
		AcceptingOrders:       true,
		MinOrderAmount:        models.NewMoneyFromFloat(50),
		DeliveryFee:           models.NewMoneyFromFloat(20),
		FreeDeliveryThreshold: models.NewMoneyFromFloat(300),
		Currency:              "TRY",
	}
	if err := db.Create(&setting).Error; err != nil {
		t.Fatalf("create setting failed: %v", err)
	}

	couponRepo := repository.NewCouponRepository(db)
	usageRepo := repository.NewCouponUsageRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	couponService := NewCouponService(couponRepo, usageRepo, orderRepo)
	svc := NewOrderService(
		orderRepo,
		repository.NewProductRepository(db),
		repository.NewDiningTableRepository(db),
		couponRepo,
		usageRepo,
		repository.NewBusinessRepository(db),
		repository.NewBusinessSettingRepository(db),
		couponService,
		nil,
		0,
	)
	return &orderTestEnv{db: db, svc: svc, business: business}
}

func (e *orderTestEnv) createProduct(t *testing.T, p models.Product) models.Product {
	t.Helper()
	p.BusinessID = e.business.ID
	p.IsAvailable = true
	if err := e.db.Create(&p).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return p
}

func (e *orderTestEnv) checkoutInput(total float64, items ...CheckoutItem) CheckoutInput {
	return CheckoutInput{
		BusinessSlug:   e.business.Slug,
		CustomerName:   "Ayse",
		CustomerPhone:  "5551112233",
		DeliveryType:   constants.DeliveryTypePickup,
		PaymentMethod:  constants.PaymentMethodCash,
		SubmittedTotal: models.NewMoneyFromFloat(total),
		Items:          items,
	}
}

func TestCheckoutPersistsOrder(t *testing.T) {
	env := newOrderTestEnv(t, "checkout_persists")
	product := env.createProduct(t, models.Product{Name: "Adana Durum", Price: models.NewMoneyFromFloat(120)})

	order, err := env.svc.Checkout(env.checkoutInput(240, CheckoutItem{ProductID: product.ID, Quantity: 2}))
	if err != nil {
		t.Fatalf("Checkout error: %v", err)
	}
	if !strings.HasPrefix(order.OrderNo, "TP") {
		t.Fatalf("order no should start with TP, got %s", order.OrderNo)
	}
	if order.Status != constants.OrderStatusPending {
		t.Fatalf("status want pending got %s", order.Status)
	}
	if !order.Subtotal.Decimal.Equal(decimal.NewFromInt(240)) {
		t.Fatalf("subtotal want 240 got %s", order.Subtotal.String())
	}
	if !order.DeliveryFee.Decimal.IsZero() {
		t.Fatalf("pickup fee want 0 got %s", order.DeliveryFee.String())
	}
	if !order.TotalAmount.Decimal.Equal(decimal.NewFromInt(240)) {
		t.Fatalf("total want 240 got %s", order.TotalAmount.String())
	}

	// The returned order carries its lines so callers can render summaries
	// without a reload.
	if len(order.Items) != 1 {
		t.Fatalf("returned order items want 1 got %d", len(order.Items))
	}
	if order.Items[0].OrderID != order.ID {
		t.Fatalf("returned item should reference the order, got %d", order.Items[0].OrderID)
	}

	var items []models.OrderItem
	if err := env.db.Where("order_id = ?", order.ID).Find(&items).Error; err != nil {
		t.Fatalf("load items failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("items want 1 got %d", len(items))
	}
	if items[0].ProductName != "Adana Durum" || items[0].Quantity != 2 {
		t.Fatalf("item snapshot mismatch: %+v", items[0])
	}

	var logs []models.OrderStatusLog
	if err := env.db.Where("order_id = ?", order.ID).Find(&logs).Error; err != nil {
		t.Fatalf("load status logs failed: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("status logs want 1 got %d", len(logs))
	}
	if logs[0].ToStatus != constants.OrderStatusPending || logs[0].Actor != constants.StatusActorSystem {
		t.Fatalf("opening log mismatch: %+v", logs[0])
	}
}

func TestCheckoutTotalMismatch(t *testing.T) {
	env := newOrderTestEnv(t, "checkout_mismatch")
	product := env.createProduct(t, models.Product{Name: "Ayran", Price: models.NewMoneyFromFloat(60)})

	// A cent of drift is fine.
	if _, err := env.svc.Checkout(env.checkoutInput(60.01, CheckoutItem{ProductID: product.ID, Quantity: 1})); err != nil {
		t.Fatalf("Checkout within tolerance error: %v", err)
	}

	// Two cents is not.
	_, err := env.svc.Checkout(env.checkoutInput(60.02, CheckoutItem{ProductID: product.ID, Quantity: 1}))
	if !errors.Is(err, ErrOrderTotalMismatch) {
		t.Fatalf("expected total mismatch, got: %v", err)
	}

	var count int64
	env.db.Model(&models.Order{}).Count(&count)
	if count != 1 {
		t.Fatalf("rejected checkout must not persist an order, count %d", count)
	}
}

func TestCheckoutDeliveryFee(t *testing.T) {
	env := newOrderTestEnv(t, "checkout_delivery_fee")
	product := env.createProduct(t, models.Product{Name: "Pide", Price: models.NewMoneyFromFloat(100)})

	input := env.checkoutInput(120, CheckoutItem{ProductID: product.ID, Quantity: 1})
	input.DeliveryType = constants.DeliveryTypeDelivery
	input.DeliveryAddress = "Ataturk Cad. No:1"
	order, err := env.svc.Checkout(input)
	if err != nil {
		t.Fatalf("Checkout error: %v", err)
	}
	if !order.DeliveryFee.Decimal.Equal(decimal.NewFromInt(20)) {
		t.Fatalf("fee want 20 got %s", order.DeliveryFee.String())
	}

	// At the free-delivery threshold the fee is waived.
	input = env.checkoutInput(300, CheckoutItem{ProductID: product.ID, Quantity: 3})
	input.DeliveryType = constants.DeliveryTypeDelivery
	input.DeliveryAddress = "Ataturk Cad. No:1"
	order, err = env.svc.Checkout(input)
	if err != nil {
		t.Fatalf("Checkout error at threshold: %v", err)
	}
	if !order.DeliveryFee.Decimal.IsZero() {
		t.Fatalf("fee want 0 got %s", order.DeliveryFee.String())
	}
}

func TestCheckoutBelowMinAmount(t *testing.T) {
	env := newOrderTestEnv(t, "checkout_min_amount")
	product := env.createProduct(t, models.Product{Name: "Ayran", Price: models.NewMoneyFromFloat(25)})

	_, err := env.svc.Checkout(env.checkoutInput(25, CheckoutItem{ProductID: product.ID, Quantity: 1}))
	if !errors.Is(err, ErrOrderMinAmount) {
		t.Fatalf("expected min amount rejection, got: %v", err)
	}
}

func TestCheckoutDineInTableValidation(t *testing.T) {
	env := newOrderTestEnv(t, "checkout_dinein")
	product := env.createProduct(t, models.Product{Name: "Pide", Price: models.NewMoneyFromFloat(100)})
	table := models.DiningTable{BusinessID: env.business.ID, Label: "Masa 1", IsActive: true}
	if err := env.db.Create(&table).Error; err != nil {
		t.Fatalf("create table failed: %v", err)
	}
	inactive := models.DiningTable{BusinessID: env.business.ID, Label: "Depo", IsActive: false}
	if err := env.db.Create(&inactive).Error; err != nil {
		t.Fatalf("create table failed: %v", err)
	}

	input := env.checkoutInput(100, CheckoutItem{ProductID: product.ID, Quantity: 1})
	input.DeliveryType = constants.DeliveryTypeDineIn
	input.TableLabel = "Masa 99"
	if _, err := env.svc.Checkout(input); !errors.Is(err, ErrTableNotFound) {
		t.Fatalf("expected unknown table rejection, got: %v", err)
	}

	input.TableLabel = "Depo"
	if _, err := env.svc.Checkout(input); !errors.Is(err, ErrTableNotFound) {
		t.Fatalf("expected inactive table rejection, got: %v", err)
	}

	input.TableLabel = "Masa 1"
	if _, err := env.svc.Checkout(input); err != nil {
		t.Fatalf("Checkout error for valid table: %v", err)
	}
}

func TestCheckoutSizeAndExtrasPricing(t *testing.T) {
	env := newOrderTestEnv(t, "checkout_options")
	product := env.createProduct(t, models.Product{
		Name:  "Adana Durum",
		Price: models.NewMoneyFromFloat(120),
		SizeOptions: models.JSONArray{
			{"name": "Tek", "price_delta": 0},
			{"name": "Bucuk", "price_delta": 60},
		},
		ExtraOptions: models.JSONArray{
			{"name": "Nohut", "price_delta": 10},
		},
	})

	// 120 base + 60 size + 10 extra per unit.
	input := env.checkoutInput(190, CheckoutItem{
		ProductID:  product.ID,
		Quantity:   1,
		SizeName:   "Bucuk",
		ExtraNames: []string{"Nohut"},
	})
	order, err := env.svc.Checkout(input)
	if err != nil {
		t.Fatalf("Checkout error: %v", err)
	}
	if !order.Subtotal.Decimal.Equal(decimal.NewFromInt(190)) {
		t.Fatalf("subtotal want 190 got %s", order.Subtotal.String())
	}

	var item models.OrderItem
	if err := env.db.Where("order_id = ?", order.ID).First(&item).Error; err != nil {
		t.Fatalf("load item failed: %v", err)
	}
	if item.SizeName != "Bucuk" {
		t.Fatalf("size name want Bucuk got %s", item.SizeName)
	}
	if !item.UnitPrice.Decimal.Equal(decimal.NewFromInt(190)) {
		t.Fatalf("unit price want 190 got %s", item.UnitPrice.String())
	}

	// An unknown option name rejects the line.
	input = env.checkoutInput(120, CheckoutItem{ProductID: product.ID, Quantity: 1, SizeName: "Dev"})
	if _, err := env.svc.Checkout(input); !errors.Is(err, ErrInvalidOrderItem) {
		t.Fatalf("expected invalid item for unknown size, got: %v", err)
	}
}

func TestCheckoutCouponRedemptionAtCap(t *testing.T) {
	env := newOrderTestEnv(t, "checkout_coupon_cap")
	product := env.createProduct(t, models.Product{Name: "Pide", Price: models.NewMoneyFromFloat(100)})
	coupon := models.Coupon{
		BusinessID: env.business.ID,
		Code:       "SONKUPON",
		Type:       constants.CouponTypeFixed,
		Value:      models.NewMoneyFromFloat(10),
		UsageLimit: 1,
		IsActive:   true,
	}
	if err := env.db.Create(&coupon).Error; err != nil {
		t.Fatalf("create coupon failed: %v", err)
	}

	input := env.checkoutInput(90, CheckoutItem{ProductID: product.ID, Quantity: 1})
	input.CouponCode = "SONKUPON"
	order, err := env.svc.Checkout(input)
	if err != nil {
		t.Fatalf("Checkout error: %v", err)
	}
	if !order.DiscountAmount.Decimal.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("discount want 10 got %s", order.DiscountAmount.String())
	}

	var fresh models.Coupon
	if err := env.db.First(&fresh, coupon.ID).Error; err != nil {
		t.Fatalf("reload coupon failed: %v", err)
	}
	if fresh.UsedCount != 1 {
		t.Fatalf("used count want 1 got %d", fresh.UsedCount)
	}
	var usages int64
	env.db.Model(&models.CouponUsage{}).Where("coupon_id = ?", coupon.ID).Count(&usages)
	if usages != 1 {
		t.Fatalf("usage rows want 1 got %d", usages)
	}

	// The cap is spent; the next checkout is rejected.
	input = env.checkoutInput(90, CheckoutItem{ProductID: product.ID, Quantity: 1})
	input.CouponCode = "SONKUPON"
	if _, err := env.svc.Checkout(input); !errors.Is(err, ErrCouponUsageLimit) {
		t.Fatalf("expected usage limit rejection, got: %v", err)
	}
}

func TestCheckoutRejectsUnknownPaymentMethod(t *testing.T) {
	env := newOrderTestEnv(t, "checkout_payment")
	product := env.createProduct(t, models.Product{Name: "Pide", Price: models.NewMoneyFromFloat(100)})

	input := env.checkoutInput(100, CheckoutItem{ProductID: product.ID, Quantity: 1})
	input.PaymentMethod = "bitcoin"
	if _, err := env.svc.Checkout(input); !errors.Is(err, ErrPaymentNotAvailable) {
		t.Fatalf("expected payment rejection, got: %v", err)
	}

	input.PaymentMethod = ""
	if _, err := env.svc.Checkout(input); !errors.Is(err, ErrPaymentNotAvailable) {
		t.Fatalf("expected payment rejection for empty method, got: %v", err)
	}

	var count int64
	env.db.Model(&models.Order{}).Count(&count)
	if count != 0 {
		t.Fatalf("rejected checkout must not persist an order, count %d", count)
	}

	input.PaymentMethod = constants.PaymentMethodTransfer
	if _, err := env.svc.Checkout(input); err != nil {
		t.Fatalf("Checkout error for transfer: %v", err)
	}
}

func TestCheckoutPausedBusiness(t *testing.T) {
	env := newOrderTestEnv(t, "checkout_paused")
	product := env.createProduct(t, models.Product{Name: "Pide", Price: models.NewMoneyFromFloat(100)})

	if err := env.db.Model(&models.BusinessSetting{}).
		Where("business_id = ?", env.business.ID).
		Update("accepting_orders", false).Error; err != nil {
		t.Fatalf("update setting failed: %v", err)
	}

	_, err := env.svc.Checkout(env.checkoutInput(100, CheckoutItem{ProductID: product.ID, Quantity: 1}))
	if !errors.Is(err, ErrOrdersPaused) {
		t.Fatalf("expected paused rejection, got: %v", err)
	}
}
