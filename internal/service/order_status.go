package service

import (
	"strings"
	"time"

	"github.com/tikprofil/tikprofil-api/internal/constants"
	"github.com/tikprofil/tikprofil-api/internal/models"

	"gorm.io/gorm"
)

// allowedTransitions is the order lifecycle. Anything not listed is an
// illegal jump.
var allowedTransitions = map[string]map[string]bool{
	constants.OrderStatusPending: {
		constants.OrderStatusConfirmed: true,
		constants.OrderStatusCancelled: true,
		constants.OrderStatusRejected:  true,
	},
	constants.OrderStatusConfirmed: {
		constants.OrderStatusPreparing: true,
		constants.OrderStatusCancelled: true,
	},
	constants.OrderStatusPreparing: {
		constants.OrderStatusReady:     true,
		constants.OrderStatusCancelled: true,
	},
	constants.OrderStatusReady: {
		constants.OrderStatusDelivered: true,
	},
	constants.OrderStatusDelivered: {
		constants.OrderStatusCompleted: true,
	},
}

func isTransitionAllowed(current, target string) bool {
	nexts, ok := allowedTransitions[current]
	if !ok {
		return false
	}
	return nexts[target]
}

// UpdateStatus applies a staff-driven status transition. The move is checked
// against the transition table, recorded in the status log and the business
// webhook is notified.
func (s *OrderService) UpdateStatus(businessID, orderID uint, targetStatus, note string) (*models.Order, error) {
	order, err := s.orderRepo.GetByIDAndBusiness(orderID, businessID)
	if err != nil {
		return nil, ErrOrderFetchFailed
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	target := strings.ToLower(strings.TrimSpace(targetStatus))
	if target == "" {
		return nil, ErrOrderStatusInvalid
	}
	if order.Status == target {
		return order, nil
	}
	if !isTransitionAllowed(order.Status, target) {
		return nil, ErrOrderStatusInvalid
	}

	if err := s.applyTransition(order, target, constants.StatusActorStaff, note); err != nil {
		return nil, err
	}

	s.enqueueNotify(order.ID, target)
	return order, nil
}

// CancelByCustomer cancels an order from the public tracking page. Customers
// may only back out while the order is still pending, and only within the
// configured window after checkout.
func (s *OrderService) CancelByCustomer(orderNo, customerPhone string) (*models.Order, error) {
	order, err := s.orderRepo.GetByOrderNoAndPhone(orderNo, customerPhone)
	if err != nil {
		return nil, ErrOrderFetchFailed
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.Status != constants.OrderStatusPending {
		return nil, ErrOrderCancelDenied
	}
	if s.cancelWindowMinutes > 0 {
		deadline := order.CreatedAt.Add(time.Duration(s.cancelWindowMinutes) * time.Minute)
		if time.Now().After(deadline) {
			return nil, ErrOrderCancelDenied
		}
	}

	if err := s.applyTransition(order, constants.OrderStatusCancelled, constants.StatusActorCustomer, ""); err != nil {
		return nil, err
	}

	s.enqueueNotify(order.ID, constants.OrderStatusCancelled)
	return order, nil
}

// applyTransition writes the status change and its log row in one
// transaction. Moving a coupon order into cancelled or rejected releases the
// redemption counter; the ledger row stays as the audit trail.
func (s *OrderService) applyTransition(order *models.Order, target, actor, note string) error {
	now := time.Now()
	from := order.Status
	err := models.DB.Transaction(func(tx *gorm.DB) error {
		orderRepo := s.orderRepo.WithTx(tx)
		updates := map[string]interface{}{"updated_at": now}
		if err := orderRepo.UpdateStatus(order.ID, target, updates); err != nil {
			return ErrOrderUpdateFailed
		}
		if err := orderRepo.AppendStatusLog(&models.OrderStatusLog{
			OrderID:    order.ID,
			FromStatus: from,
			ToStatus:   target,
			Actor:      actor,
			Note:       strings.TrimSpace(note),
			CreatedAt:  now,
		}); err != nil {
			return ErrOrderUpdateFailed
		}
		if order.CouponID != nil && isTerminalFailure(target) {
			couponRepo := s.couponRepo.WithTx(tx)
			if err := couponRepo.ReleaseDecrement(*order.CouponID); err != nil {
				return ErrOrderUpdateFailed
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	order.Status = target
	order.UpdatedAt = now
	return nil
}

func isTerminalFailure(status string) bool {
	return status == constants.OrderStatusCancelled || status == constants.OrderStatusRejected
}
