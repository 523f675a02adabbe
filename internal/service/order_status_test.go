package service

import (
	"errors"
	"testing"
	"time"

	"github.com/tikprofil/tikprofil-api/internal/constants"
	"github.com/tikprofil/tikprofil-api/internal/models"
	"github.com/tikprofil/tikprofil-api/internal/repository"
)

func (e *orderTestEnv) createOrder(t *testing.T, order models.Order) models.Order {
	t.Helper()
	order.BusinessID = e.business.ID
	if order.OrderNo == "" {
		order.OrderNo = generateOrderNo()
	}
	if order.Status == "" {
		order.Status = constants.OrderStatusPending
	}
	if order.DeliveryType == "" {
		order.DeliveryType = constants.DeliveryTypePickup
	}
	if order.PaymentMethod == "" {
		order.PaymentMethod = constants.PaymentMethodCash
	}
	if order.Currency == "" {
		order.Currency = "TRY"
	}
	if order.CustomerName == "" {
		order.CustomerName = "Ayse"
	}
	if order.CustomerPhone == "" {
		order.CustomerPhone = "5551112233"
	}
	if err := e.db.Create(&order).Error; err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	return order
}

func (e *orderTestEnv) statusLogCount(t *testing.T, orderID uint) int64 {
	t.Helper()
	var count int64
	if err := e.db.Model(&models.OrderStatusLog{}).Where("order_id = ?", orderID).Count(&count).Error; err != nil {
		t.Fatalf("count status logs failed: %v", err)
	}
	return count
}

func TestUpdateStatusFullLifecycle(t *testing.T) {
	env := newOrderTestEnv(t, "status_lifecycle")
	order := env.createOrder(t, models.Order{})

	chain := []string{
		constants.OrderStatusConfirmed,
		constants.OrderStatusPreparing,
		constants.OrderStatusReady,
		constants.OrderStatusDelivered,
		constants.OrderStatusCompleted,
	}
	for i, target := range chain {
		updated, err := env.svc.UpdateStatus(env.business.ID, order.ID, target, "")
		if err != nil {
			t.Fatalf("transition to %s error: %v", target, err)
		}
		if updated.Status != target {
			t.Fatalf("status want %s got %s", target, updated.Status)
		}
		if got := env.statusLogCount(t, order.ID); got != int64(i+1) {
			t.Fatalf("after %s status logs want %d got %d", target, i+1, got)
		}
	}
}

func TestUpdateStatusIllegalJump(t *testing.T) {
	env := newOrderTestEnv(t, "status_illegal")
	order := env.createOrder(t, models.Order{})

	_, err := env.svc.UpdateStatus(env.business.ID, order.ID, constants.OrderStatusReady, "")
	if !errors.Is(err, ErrOrderStatusInvalid) {
		t.Fatalf("expected invalid transition, got: %v", err)
	}
	if got := env.statusLogCount(t, order.ID); got != 0 {
		t.Fatalf("rejected transition must not log, got %d rows", got)
	}

	// Completed is terminal.
	done := env.createOrder(t, models.Order{Status: constants.OrderStatusCompleted})
	_, err = env.svc.UpdateStatus(env.business.ID, done.ID, constants.OrderStatusCancelled, "")
	if !errors.Is(err, ErrOrderStatusInvalid) {
		t.Fatalf("expected invalid transition from completed, got: %v", err)
	}
}

func TestUpdateStatusSameStatusNoOp(t *testing.T) {
	env := newOrderTestEnv(t, "status_noop")
	order := env.createOrder(t, models.Order{Status: constants.OrderStatusConfirmed})

	updated, err := env.svc.UpdateStatus(env.business.ID, order.ID, constants.OrderStatusConfirmed, "")
	if err != nil {
		t.Fatalf("same-status update error: %v", err)
	}
	if updated.Status != constants.OrderStatusConfirmed {
		t.Fatalf("status want confirmed got %s", updated.Status)
	}
	if got := env.statusLogCount(t, order.ID); got != 0 {
		t.Fatalf("no-op must not log, got %d rows", got)
	}
}

func TestUpdateStatusScopedToBusiness(t *testing.T) {
	env := newOrderTestEnv(t, "status_scope")
	order := env.createOrder(t, models.Order{})

	_, err := env.svc.UpdateStatus(env.business.ID+1, order.ID, constants.OrderStatusConfirmed, "")
	if !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected not found for other business, got: %v", err)
	}
}

func TestCancelByCustomerPendingOnly(t *testing.T) {
	env := newOrderTestEnv(t, "cancel_pending_only")
	pending := env.createOrder(t, models.Order{})
	confirmed := env.createOrder(t, models.Order{Status: constants.OrderStatusConfirmed})

	order, err := env.svc.CancelByCustomer(pending.OrderNo, pending.CustomerPhone)
	if err != nil {
		t.Fatalf("CancelByCustomer error: %v", err)
	}
	if order.Status != constants.OrderStatusCancelled {
		t.Fatalf("status want cancelled got %s", order.Status)
	}

	var log models.OrderStatusLog
	if err := env.db.Where("order_id = ?", pending.ID).First(&log).Error; err != nil {
		t.Fatalf("load status log failed: %v", err)
	}
	if log.Actor != constants.StatusActorCustomer {
		t.Fatalf("actor want customer got %s", log.Actor)
	}

	_, err = env.svc.CancelByCustomer(confirmed.OrderNo, confirmed.CustomerPhone)
	if !errors.Is(err, ErrOrderCancelDenied) {
		t.Fatalf("expected cancel denied for confirmed order, got: %v", err)
	}
}

func TestCancelByCustomerWindowExpired(t *testing.T) {
	env := newOrderTestEnv(t, "cancel_window")
	svc := NewOrderService(
		repository.NewOrderRepository(env.db),
		repository.NewProductRepository(env.db),
		repository.NewDiningTableRepository(env.db),
		repository.NewCouponRepository(env.db),
		repository.NewCouponUsageRepository(env.db),
		repository.NewBusinessRepository(env.db),
		repository.NewBusinessSettingRepository(env.db),
		nil,
		nil,
		15,
	)

	order := env.createOrder(t, models.Order{})
	stale := time.Now().Add(-30 * time.Minute)
	if err := env.db.Model(&models.Order{}).Where("id = ?", order.ID).
		Update("created_at", stale).Error; err != nil {
		t.Fatalf("backdate order failed: %v", err)
	}

	_, err := svc.CancelByCustomer(order.OrderNo, order.CustomerPhone)
	if !errors.Is(err, ErrOrderCancelDenied) {
		t.Fatalf("expected cancel denied past window, got: %v", err)
	}

	fresh := env.createOrder(t, models.Order{})
	if _, err := svc.CancelByCustomer(fresh.OrderNo, fresh.CustomerPhone); err != nil {
		t.Fatalf("CancelByCustomer error within window: %v", err)
	}
}

func TestCancelReleasesCouponRedemption(t *testing.T) {
	env := newOrderTestEnv(t, "cancel_release")
	coupon := models.Coupon{
		BusinessID: env.business.ID,
		Code:       "IADE",
		Type:       constants.CouponTypeFixed,
		Value:      models.NewMoneyFromFloat(10),
		UsageLimit: 10,
		UsedCount:  1,
		IsActive:   true,
	}
	if err := env.db.Create(&coupon).Error; err != nil {
		t.Fatalf("create coupon failed: %v", err)
	}
	order := env.createOrder(t, models.Order{CouponID: &coupon.ID})
	usage := models.CouponUsage{CouponID: coupon.ID, OrderID: order.ID, CustomerPhone: order.CustomerPhone}
	if err := env.db.Create(&usage).Error; err != nil {
		t.Fatalf("create usage failed: %v", err)
	}

	if _, err := env.svc.CancelByCustomer(order.OrderNo, order.CustomerPhone); err != nil {
		t.Fatalf("CancelByCustomer error: %v", err)
	}

	var fresh models.Coupon
	if err := env.db.First(&fresh, coupon.ID).Error; err != nil {
		t.Fatalf("reload coupon failed: %v", err)
	}
	if fresh.UsedCount != 0 {
		t.Fatalf("used count want 0 after release got %d", fresh.UsedCount)
	}
	// The usage row survives as the audit trail.
	var usages int64
	env.db.Model(&models.CouponUsage{}).Where("order_id = ?", order.ID).Count(&usages)
	if usages != 1 {
		t.Fatalf("usage rows want 1 got %d", usages)
	}
}

func TestRejectReleasesCouponRedemption(t *testing.T) {
	env := newOrderTestEnv(t, "reject_release")
	coupon := models.Coupon{
		BusinessID: env.business.ID,
		Code:       "REDKUPON",
		Type:       constants.CouponTypeFixed,
		Value:      models.NewMoneyFromFloat(10),
		UsedCount:  1,
		IsActive:   true,
	}
	if err := env.db.Create(&coupon).Error; err != nil {
		t.Fatalf("create coupon failed: %v", err)
	}
	order := env.createOrder(t, models.Order{CouponID: &coupon.ID})

	if _, err := env.svc.UpdateStatus(env.business.ID, order.ID, constants.OrderStatusRejected, "stok yok"); err != nil {
		t.Fatalf("UpdateStatus error: %v", err)
	}

	var fresh models.Coupon
	if err := env.db.First(&fresh, coupon.ID).Error; err != nil {
		t.Fatalf("reload coupon failed: %v", err)
	}
	if fresh.UsedCount != 0 {
		t.Fatalf("used count want 0 after release got %d", fresh.UsedCount)
	}
}
