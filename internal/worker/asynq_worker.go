package worker

import (
	"context"
	"encoding/json"

	"github.com/tikprofil/tikprofil-api/internal/logger"
	"github.com/tikprofil/tikprofil-api/internal/provider"
	"github.com/tikprofil/tikprofil-api/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer handles queued tasks.
type Consumer struct {
	*provider.Container
}

// NewConsumer creates a consumer.
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register wires task handlers onto the mux.
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderNotify, c.handleOrderNotify)
}

func (c *Consumer) handleOrderNotify(ctx context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_notify_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.OrderNotifyPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_notify_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_order_notify_skip_invalid_payload", "order_id", payload.OrderID)
		return nil
	}
	if c.NotificationService == nil {
		logger.Warnw("worker_order_notify_skip_service_nil", "order_id", payload.OrderID)
		return nil
	}
	if err := c.NotificationService.DeliverOrderEvent(ctx, payload.OrderID, payload.Event); err != nil {
		logger.Warnw("worker_order_notify_failed",
			"order_id", payload.OrderID,
			"event", payload.Event,
			"error", err,
		)
		return err
	}
	return nil
}
