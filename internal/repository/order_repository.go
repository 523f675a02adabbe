package repository

import (
	"errors"
	"strings"

	"github.com/tikprofil/tikprofil-api/internal/constants"
	"github.com/tikprofil/tikprofil-api/internal/models"

	"gorm.io/gorm"
)

// OrderRepository is the order data access interface.
type OrderRepository interface {
	Create(order *models.Order, items []models.OrderItem) error
	GetByID(id uint) (*models.Order, error)
	GetByIDAndBusiness(id, businessID uint) (*models.Order, error)
	GetByOrderNoAndPhone(orderNo, customerPhone string) (*models.Order, error)
	CountByPhone(businessID uint, customerPhone string) (int64, error)
	ListAdmin(filter OrderListFilter) ([]models.Order, int64, error)
	UpdateStatus(id uint, status string, updates map[string]interface{}) error
	AppendStatusLog(log *models.OrderStatusLog) error
	ListStatusLogs(orderID uint) ([]models.OrderStatusLog, error)
	WithTx(tx *gorm.DB) *GormOrderRepository
}

// GormOrderRepository is the GORM implementation.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates an order repository.
func NewOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormOrderRepository) WithTx(tx *gorm.DB) *GormOrderRepository {
	if tx == nil {
		return r
	}
	return &GormOrderRepository{db: tx}
}

// Create inserts an order together with its line items.
func (r *GormOrderRepository) Create(order *models.Order, items []models.OrderItem) error {
	if err := r.db.Create(order).Error; err != nil {
		return err
	}
	for i := range items {
		items[i].OrderID = order.ID
	}
	if len(items) > 0 {
		if err := r.db.Create(&items).Error; err != nil {
			return err
		}
	}
	return nil
}

// GetByID fetches an order with items and status history.
func (r *GormOrderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	query := r.db.Preload("Items").Preload("StatusLogs")
	if err := query.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// GetByIDAndBusiness fetches an order scoped to one business.
func (r *GormOrderRepository) GetByIDAndBusiness(id, businessID uint) (*models.Order, error) {
	var order models.Order
	query := r.db.Preload("Items").Preload("StatusLogs")
	if err := query.Where("id = ? AND business_id = ?", id, businessID).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// GetByOrderNoAndPhone fetches an order for customer tracking. The phone
// number acts as the shared secret, so both parts must match.
func (r *GormOrderRepository) GetByOrderNoAndPhone(orderNo, customerPhone string) (*models.Order, error) {
	var order models.Order
	query := r.db.Preload("Items").Preload("StatusLogs")
	if err := query.
		Where("order_no = ? AND customer_phone = ?", strings.TrimSpace(orderNo), strings.TrimSpace(customerPhone)).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// CountByPhone counts the orders one phone number placed at a business.
// Cancelled and rejected orders do not count as prior orders.
func (r *GormOrderRepository) CountByPhone(businessID uint, customerPhone string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Order{}).
		Where("business_id = ? AND customer_phone = ?", businessID, customerPhone).
		Where("status NOT IN ?", []string{constants.OrderStatusCancelled, constants.OrderStatusRejected}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ListAdmin fetches the order list for the admin panel.
func (r *GormOrderRepository) ListAdmin(filter OrderListFilter) ([]models.Order, int64, error) {
	var orders []models.Order
	query := r.db.Model(&models.Order{})

	if filter.BusinessID != 0 {
		query = query.Where("business_id = ?", filter.BusinessID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.OrderNo != "" {
		query = query.Where("order_no = ?", filter.OrderNo)
	}
	if filter.CustomerPhone != "" {
		query = query.Where("customer_phone = ?", filter.CustomerPhone)
	}
	if filter.DeliveryType != "" {
		query = query.Where("delivery_type = ?", filter.DeliveryType)
	}
	if filter.CreatedFrom != nil {
		query = query.Where("created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		query = query.Where("created_at <= ?", *filter.CreatedTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Preload("Items").Order("id desc").Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// UpdateStatus updates an order's status together with extra columns.
func (r *GormOrderRepository) UpdateStatus(id uint, status string, updates map[string]interface{}) error {
	if updates == nil {
		updates = map[string]interface{}{}
	}
	updates["status"] = status
	return r.db.Model(&models.Order{}).Where("id = ?", id).Updates(updates).Error
}

// AppendStatusLog appends one row to the status history.
func (r *GormOrderRepository) AppendStatusLog(log *models.OrderStatusLog) error {
	return r.db.Create(log).Error
}

// ListStatusLogs fetches the status history of one order in event order.
func (r *GormOrderRepository) ListStatusLogs(orderID uint) ([]models.OrderStatusLog, error) {
	var logs []models.OrderStatusLog
	if err := r.db.Where("order_id = ?", orderID).Order("id asc").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
