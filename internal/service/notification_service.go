package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/tikprofil/tikprofil-api/internal/config"
	"github.com/tikprofil/tikprofil-api/internal/logger"
	"github.com/tikprofil/tikprofil-api/internal/models"
	"github.com/tikprofil/tikprofil-api/internal/repository"
)

// NotificationService delivers order events to the business webhook. It runs
// on the worker side; the API only enqueues.
type NotificationService struct {
	orderRepo   repository.OrderRepository
	settingRepo repository.BusinessSettingRepository
	httpClient  *http.Client
}

// NewNotificationService creates a notification service.
func NewNotificationService(orderRepo repository.OrderRepository, settingRepo repository.BusinessSettingRepository, cfg config.NotifyConfig) *NotificationService {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 10
	}
	return &NotificationService{
		orderRepo:   orderRepo,
		settingRepo: settingRepo,
		httpClient: &http.Client{
			Timeout: time.Duration(timeout) * time.Second,
		},
	}
}

// orderNotifyBody is the webhook payload.
type orderNotifyBody struct {
	Event         string       `json:"event"`
	OrderNo       string       `json:"order_no"`
	Status        string       `json:"status"`
	BusinessID    uint         `json:"business_id"`
	CustomerName  string       `json:"customer_name"`
	CustomerPhone string       `json:"customer_phone"`
	DeliveryType  string       `json:"delivery_type"`
	TotalAmount   models.Money `json:"total_amount"`
	Currency      string       `json:"currency"`
	OccurredAt    time.Time    `json:"occurred_at"`
}

// DeliverOrderEvent posts one order event to the business's notify URL.
// A business without a notify URL is not an error. Non-2xx responses are,
// so the queue retries them.
func (s *NotificationService) DeliverOrderEvent(ctx context.Context, orderID uint, event string) error {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return err
	}
	if order == nil {
		logger.Warnw("order_notify_order_missing", "order_id", orderID, "event", event)
		return nil
	}

	setting, err := s.settingRepo.GetByBusinessID(order.BusinessID)
	if err != nil {
		return err
	}
	notifyURL := ""
	if setting != nil {
		notifyURL = strings.TrimSpace(setting.NotifyURL)
	}
	if notifyURL == "" {
		return nil
	}

	body, err := json.Marshal(orderNotifyBody{
		Event:         event,
		OrderNo:       order.OrderNo,
		Status:        order.Status,
		BusinessID:    order.BusinessID,
		CustomerName:  order.CustomerName,
		CustomerPhone: order.CustomerPhone,
		DeliveryType:  order.DeliveryType,
		TotalAmount:   order.TotalAmount,
		Currency:      order.Currency,
		OccurredAt:    time.Now(),
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, notifyURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("order notify webhook returned %d", resp.StatusCode)
	}
	return nil
}
