package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/tikprofil/tikprofil-api/internal/constants"
	"github.com/tikprofil/tikprofil-api/internal/models"
	"github.com/tikprofil/tikprofil-api/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newCouponTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Coupon{}, &models.CouponUsage{}, &models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return db
}

func newCouponTestService(db *gorm.DB) *CouponService {
	return NewCouponService(
		repository.NewCouponRepository(db),
		repository.NewCouponUsageRepository(db),
		repository.NewOrderRepository(db),
	)
}

func cartItems(lines ...models.OrderItem) []models.OrderItem {
	return lines
}

func line(productID, categoryID uint, unit float64, qty int) models.OrderItem {
	unitPrice := models.NewMoneyFromFloat(unit)
	total := models.NewMoneyFromDecimal(unitPrice.Decimal.Mul(decimal.NewFromInt(int64(qty))))
	return models.OrderItem{
		ProductID:  productID,
		CategoryID: categoryID,
		UnitPrice:  unitPrice,
		Quantity:   qty,
		TotalPrice: total,
	}
}

func TestApplyCouponPercentageClampedByMaxDiscount(t *testing.T) {
	db := newCouponTestDB(t, "coupon_percentage_clamp")
	svc := newCouponTestService(db)

	coupon := models.Coupon{
		BusinessID:  1,
		Code:        "YUZDE20",
		Type:        constants.CouponTypePercentage,
		Value:       models.NewMoneyFromFloat(20),
		MaxDiscount: models.NewMoneyFromFloat(30),
		IsActive:    true,
	}
	if err := db.Create(&coupon).Error; err != nil {
		t.Fatalf("create coupon failed: %v", err)
	}

	quote, err := svc.ApplyCoupon(1, "YUZDE20", "5551112233",
		models.NewMoneyFromFloat(400), models.NewMoneyFromFloat(0),
		cartItems(line(1, 1, 400, 1)))
	if err != nil {
		t.Fatalf("ApplyCoupon error: %v", err)
	}
	// 20% of 400 is 80, capped at 30.
	if !quote.Discount.Decimal.Equal(decimal.NewFromInt(30)) {
		t.Fatalf("discount want 30 got %s", quote.Discount.String())
	}
}

func TestApplyCouponFixedExceedsSubtotal(t *testing.T) {
	db := newCouponTestDB(t, "coupon_fixed_unclamped")
	svc := newCouponTestService(db)

	coupon := models.Coupon{
		BusinessID: 1,
		Code:       "SABIT50",
		Type:       constants.CouponTypeFixed,
		Value:      models.NewMoneyFromFloat(50),
		IsActive:   true,
	}
	if err := db.Create(&coupon).Error; err != nil {
		t.Fatalf("create coupon failed: %v", err)
	}

	quote, err := svc.ApplyCoupon(1, "SABIT50", "5551112233",
		models.NewMoneyFromFloat(30), models.NewMoneyFromFloat(0),
		cartItems(line(1, 1, 30, 1)))
	if err != nil {
		t.Fatalf("ApplyCoupon error: %v", err)
	}
	// The fixed amount is not clamped to the subtotal.
	if !quote.Discount.Decimal.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("discount want 50 got %s", quote.Discount.String())
	}
}

func TestApplyCouponFreeDeliveryEqualsFee(t *testing.T) {
	db := newCouponTestDB(t, "coupon_free_delivery")
	svc := newCouponTestService(db)

	coupon := models.Coupon{
		BusinessID: 1,
		Code:       "KARGOBEDAVA",
		Type:       constants.CouponTypeFreeDelivery,
		IsActive:   true,
	}
	if err := db.Create(&coupon).Error; err != nil {
		t.Fatalf("create coupon failed: %v", err)
	}

	quote, err := svc.ApplyCoupon(1, "KARGOBEDAVA", "5551112233",
		models.NewMoneyFromFloat(200), models.NewMoneyFromFloat(24.90),
		cartItems(line(1, 1, 200, 1)))
	if err != nil {
		t.Fatalf("ApplyCoupon error: %v", err)
	}
	if !quote.Discount.Decimal.Equal(decimal.NewFromFloat(24.90)) {
		t.Fatalf("discount want 24.90 got %s", quote.Discount.String())
	}
}

func TestApplyCouponBogoPairPricing(t *testing.T) {
	db := newCouponTestDB(t, "coupon_bogo")
	svc := newCouponTestService(db)

	coupon := models.Coupon{
		BusinessID: 1,
		Code:       "BIRALBIRODE",
		Type:       constants.CouponTypeBogo,
		IsActive:   true,
	}
	if err := db.Create(&coupon).Error; err != nil {
		t.Fatalf("create coupon failed: %v", err)
	}

	// Three units form one full pair: one unit free.
	quote, err := svc.ApplyCoupon(1, "BIRALBIRODE", "5551112233",
		models.NewMoneyFromFloat(120), models.NewMoneyFromFloat(0),
		cartItems(line(1, 1, 40, 3)))
	if err != nil {
		t.Fatalf("ApplyCoupon error: %v", err)
	}
	if !quote.Discount.Decimal.Equal(decimal.NewFromInt(40)) {
		t.Fatalf("discount want 40 got %s", quote.Discount.String())
	}

	// A single unit earns nothing.
	quote, err = svc.ApplyCoupon(1, "BIRALBIRODE", "5551112233",
		models.NewMoneyFromFloat(40), models.NewMoneyFromFloat(0),
		cartItems(line(1, 1, 40, 1)))
	if err != nil {
		t.Fatalf("ApplyCoupon error: %v", err)
	}
	if !quote.Discount.Decimal.IsZero() {
		t.Fatalf("discount want 0 got %s", quote.Discount.String())
	}
}

func TestApplyCouponValidityWindow(t *testing.T) {
	db := newCouponTestDB(t, "coupon_window")
	svc := newCouponTestService(db)

	future := time.Now().Add(24 * time.Hour)
	past := time.Now().Add(-24 * time.Hour)

	notStarted := models.Coupon{
		BusinessID: 1, Code: "YARIN", Type: constants.CouponTypeFixed,
		Value: models.NewMoneyFromFloat(10), ValidFrom: &future, IsActive: true,
	}
	expired := models.Coupon{
		BusinessID: 1, Code: "DUN", Type: constants.CouponTypeFixed,
		Value: models.NewMoneyFromFloat(10), ValidUntil: &past, IsActive: true,
	}
	if err := db.Create(&notStarted).Error; err != nil {
		t.Fatalf("create coupon failed: %v", err)
	}
	if err := db.Create(&expired).Error; err != nil {
		t.Fatalf("create coupon failed: %v", err)
	}

	items := cartItems(line(1, 1, 100, 1))
	_, err := svc.ApplyCoupon(1, "YARIN", "", models.NewMoneyFromFloat(100), models.NewMoneyFromFloat(0), items)
	if !errors.Is(err, ErrCouponNotStarted) {
		t.Fatalf("expected not started, got: %v", err)
	}
	_, err = svc.ApplyCoupon(1, "DUN", "", models.NewMoneyFromFloat(100), models.NewMoneyFromFloat(0), items)
	if !errors.Is(err, ErrCouponExpired) {
		t.Fatalf("expected expired, got: %v", err)
	}
}

func TestApplyCouponInactiveBeforeWindow(t *testing.T) {
	db := newCouponTestDB(t, "coupon_inactive_first")
	svc := newCouponTestService(db)

	// Inactive and expired at once: the active flag is checked first.
	past := time.Now().Add(-24 * time.Hour)
	coupon := models.Coupon{
		BusinessID: 1, Code: "ESKI", Type: constants.CouponTypeFixed,
		Value: models.NewMoneyFromFloat(10), ValidUntil: &past, IsActive: false,
	}
	if err := db.Create(&coupon).Error; err != nil {
		t.Fatalf("create coupon failed: %v", err)
	}

	_, err := svc.ApplyCoupon(1, "ESKI", "", models.NewMoneyFromFloat(100), models.NewMoneyFromFloat(0),
		cartItems(line(1, 1, 100, 1)))
	if !errors.Is(err, ErrCouponInactive) {
		t.Fatalf("expected inactive, got: %v", err)
	}
}

func TestApplyCouponMinAmountAgainstFullSubtotal(t *testing.T) {
	db := newCouponTestDB(t, "coupon_min_amount")
	svc := newCouponTestService(db)

	// Product-scoped coupon: the minimum is still checked against the whole
	// cart, not the eligible slice.
	coupon := models.Coupon{
		BusinessID:     1,
		Code:           "MIN150",
		Type:           constants.CouponTypePercentage,
		Value:          models.NewMoneyFromFloat(10),
		MinOrderAmount: models.NewMoneyFromFloat(150),
		ScopeType:      constants.ScopeTypeProduct,
		ScopeRefIDs:    "[1]",
		IsActive:       true,
	}
	if err := db.Create(&coupon).Error; err != nil {
		t.Fatalf("create coupon failed: %v", err)
	}

	items := cartItems(line(1, 1, 50, 1), line(2, 1, 110, 1))

	_, err := svc.ApplyCoupon(1, "MIN150", "", models.NewMoneyFromFloat(100), models.NewMoneyFromFloat(0),
		cartItems(line(1, 1, 50, 1), line(2, 1, 50, 1)))
	if !errors.Is(err, ErrCouponMinAmount) {
		t.Fatalf("expected min amount rejection, got: %v", err)
	}

	quote, err := svc.ApplyCoupon(1, "MIN150", "", models.NewMoneyFromFloat(160), models.NewMoneyFromFloat(0), items)
	if err != nil {
		t.Fatalf("ApplyCoupon error: %v", err)
	}
	// But the percentage only applies to the eligible line.
	if !quote.Discount.Decimal.Equal(decimal.NewFromInt(5)) {
		t.Fatalf("discount want 5 got %s", quote.Discount.String())
	}
}

func TestApplyCouponUsageLimitReached(t *testing.T) {
	db := newCouponTestDB(t, "coupon_usage_limit")
	svc := newCouponTestService(db)

	coupon := models.Coupon{
		BusinessID: 1, Code: "SON", Type: constants.CouponTypeFixed,
		Value: models.NewMoneyFromFloat(10), UsageLimit: 5, UsedCount: 5, IsActive: true,
	}
	if err := db.Create(&coupon).Error; err != nil {
		t.Fatalf("create coupon failed: %v", err)
	}

	_, err := svc.ApplyCoupon(1, "SON", "", models.NewMoneyFromFloat(100), models.NewMoneyFromFloat(0),
		cartItems(line(1, 1, 100, 1)))
	if !errors.Is(err, ErrCouponUsageLimit) {
		t.Fatalf("expected usage limit, got: %v", err)
	}
}

func TestApplyCouponPerUserLimit(t *testing.T) {
	db := newCouponTestDB(t, "coupon_per_user")
	svc := newCouponTestService(db)

	coupon := models.Coupon{
		BusinessID: 1, Code: "TEKSEFER", Type: constants.CouponTypeFixed,
		Value: models.NewMoneyFromFloat(10), PerUserLimit: 1, IsActive: true,
	}
	if err := db.Create(&coupon).Error; err != nil {
		t.Fatalf("create coupon failed: %v", err)
	}
	prior := models.Order{
		OrderNo: "TP1", BusinessID: 1, CustomerName: "Ali", CustomerPhone: "5551112233",
		DeliveryType: constants.DeliveryTypePickup, PaymentMethod: constants.PaymentMethodCash,
		Status: constants.OrderStatusCompleted, Currency: "TRY",
	}
	if err := db.Create(&prior).Error; err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	usage := models.CouponUsage{CouponID: coupon.ID, OrderID: prior.ID, CustomerPhone: "5551112233"}
	if err := db.Create(&usage).Error; err != nil {
		t.Fatalf("create usage failed: %v", err)
	}

	items := cartItems(line(1, 1, 100, 1))
	_, err := svc.ApplyCoupon(1, "TEKSEFER", "5551112233", models.NewMoneyFromFloat(100), models.NewMoneyFromFloat(0), items)
	if !errors.Is(err, ErrCouponPerUserLimit) {
		t.Fatalf("expected per-user limit, got: %v", err)
	}

	// A different phone is still allowed.
	if _, err := svc.ApplyCoupon(1, "TEKSEFER", "5559998877", models.NewMoneyFromFloat(100), models.NewMoneyFromFloat(0), items); err != nil {
		t.Fatalf("ApplyCoupon error for fresh phone: %v", err)
	}

	// Cancelling the redeeming order gives the per-user slot back, matching
	// the released global counter.
	if err := db.Model(&models.Order{}).Where("id = ?", prior.ID).
		Update("status", constants.OrderStatusCancelled).Error; err != nil {
		t.Fatalf("update order failed: %v", err)
	}
	if _, err := svc.ApplyCoupon(1, "TEKSEFER", "5551112233", models.NewMoneyFromFloat(100), models.NewMoneyFromFloat(0), items); err != nil {
		t.Fatalf("ApplyCoupon error after cancellation: %v", err)
	}
}

func TestApplyCouponFirstOrderOnly(t *testing.T) {
	db := newCouponTestDB(t, "coupon_first_order")
	svc := newCouponTestService(db)

	coupon := models.Coupon{
		BusinessID: 1, Code: "HOSGELDIN", Type: constants.CouponTypeFixed,
		Value: models.NewMoneyFromFloat(10), FirstOrderOnly: true, IsActive: true,
	}
	if err := db.Create(&coupon).Error; err != nil {
		t.Fatalf("create coupon failed: %v", err)
	}
	prior := models.Order{
		OrderNo: "TP1", BusinessID: 1, CustomerName: "Ali", CustomerPhone: "5551112233",
		DeliveryType: constants.DeliveryTypePickup, PaymentMethod: constants.PaymentMethodCash,
		Status: constants.OrderStatusCompleted, Currency: "TRY",
	}
	if err := db.Create(&prior).Error; err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	items := cartItems(line(1, 1, 100, 1))
	_, err := svc.ApplyCoupon(1, "HOSGELDIN", "5551112233", models.NewMoneyFromFloat(100), models.NewMoneyFromFloat(0), items)
	if !errors.Is(err, ErrCouponFirstOrderOnly) {
		t.Fatalf("expected first-order rejection, got: %v", err)
	}

	// Cancelled orders do not count as prior orders.
	if err := db.Model(&models.Order{}).Where("id = ?", prior.ID).
		Update("status", constants.OrderStatusCancelled).Error; err != nil {
		t.Fatalf("update order failed: %v", err)
	}
	if _, err := svc.ApplyCoupon(1, "HOSGELDIN", "5551112233", models.NewMoneyFromFloat(100), models.NewMoneyFromFloat(0), items); err != nil {
		t.Fatalf("ApplyCoupon error after cancellation: %v", err)
	}
}

func TestApplyCouponCategoryScope(t *testing.T) {
	db := newCouponTestDB(t, "coupon_category_scope")
	svc := newCouponTestService(db)

	coupon := models.Coupon{
		BusinessID:  1,
		Code:        "ICECEK10",
		Type:        constants.CouponTypePercentage,
		Value:       models.NewMoneyFromFloat(10),
		ScopeType:   constants.ScopeTypeCategory,
		ScopeRefIDs: "[7]",
		IsActive:    true,
	}
	if err := db.Create(&coupon).Error; err != nil {
		t.Fatalf("create coupon failed: %v", err)
	}

	// Only the category-7 line is discounted.
	quote, err := svc.ApplyCoupon(1, "ICECEK10", "", models.NewMoneyFromFloat(150), models.NewMoneyFromFloat(0),
		cartItems(line(1, 7, 50, 1), line(2, 3, 100, 1)))
	if err != nil {
		t.Fatalf("ApplyCoupon error: %v", err)
	}
	if !quote.Discount.Decimal.Equal(decimal.NewFromInt(5)) {
		t.Fatalf("discount want 5 got %s", quote.Discount.String())
	}

	// No eligible line at all is a scope rejection.
	_, err = svc.ApplyCoupon(1, "ICECEK10", "", models.NewMoneyFromFloat(100), models.NewMoneyFromFloat(0),
		cartItems(line(2, 3, 100, 1)))
	if !errors.Is(err, ErrCouponScopeInvalid) {
		t.Fatalf("expected scope rejection, got: %v", err)
	}
}

func TestApplyCouponLookup(t *testing.T) {
	db := newCouponTestDB(t, "coupon_lookup")
	svc := newCouponTestService(db)

	coupon := models.Coupon{
		BusinessID: 1, Code: "BUYUK", Type: constants.CouponTypeFixed,
		Value: models.NewMoneyFromFloat(10), IsActive: true,
	}
	if err := db.Create(&coupon).Error; err != nil {
		t.Fatalf("create coupon failed: %v", err)
	}

	items := cartItems(line(1, 1, 100, 1))

	_, err := svc.ApplyCoupon(1, "", "", models.NewMoneyFromFloat(100), models.NewMoneyFromFloat(0), items)
	if !errors.Is(err, ErrCouponInvalid) {
		t.Fatalf("expected invalid for empty code, got: %v", err)
	}
	_, err = svc.ApplyCoupon(1, "YOK", "", models.NewMoneyFromFloat(100), models.NewMoneyFromFloat(0), items)
	if !errors.Is(err, ErrCouponNotFound) {
		t.Fatalf("expected not found, got: %v", err)
	}
	// Codes match case-insensitively.
	if _, err := svc.ApplyCoupon(1, "  buyuk ", "", models.NewMoneyFromFloat(100), models.NewMoneyFromFloat(0), items); err != nil {
		t.Fatalf("ApplyCoupon error for lowercase code: %v", err)
	}
	// Other businesses never see the code.
	_, err = svc.ApplyCoupon(2, "BUYUK", "", models.NewMoneyFromFloat(100), models.NewMoneyFromFloat(0), items)
	if !errors.Is(err, ErrCouponNotFound) {
		t.Fatalf("expected not found for other business, got: %v", err)
	}
}
