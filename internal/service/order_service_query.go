package service

import (
	"strings"

	"github.com/tikprofil/tikprofil-api/internal/models"
	"github.com/tikprofil/tikprofil-api/internal/repository"
)

// Track looks up an order for the public tracking page. The phone number
// acts as the access secret; a mismatch is indistinguishable from a missing
// order.
func (s *OrderService) Track(orderNo, customerPhone string) (*models.Order, error) {
	if strings.TrimSpace(orderNo) == "" || strings.TrimSpace(customerPhone) == "" {
		return nil, ErrOrderNotFound
	}
	order, err := s.orderRepo.GetByOrderNoAndPhone(orderNo, customerPhone)
	if err != nil {
		return nil, ErrOrderFetchFailed
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// ListAdmin returns the business-scoped order list for the admin panel.
func (s *OrderService) ListAdmin(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return s.orderRepo.ListAdmin(filter)
}

// GetAdmin returns one order with items and status history, scoped to the
// staff member's business.
func (s *OrderService) GetAdmin(businessID, orderID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByIDAndBusiness(orderID, businessID)
	if err != nil {
		return nil, ErrOrderFetchFailed
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}
