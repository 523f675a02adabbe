package queue

import (
	"encoding/json"

	"github.com/tikprofil/tikprofil-api/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderNotify delivers an order event to the business webhook.
	TaskOrderNotify = constants.TaskOrderNotify
)

// OrderNotifyPayload carries one order event.
type OrderNotifyPayload struct {
	OrderID uint   `json:"order_id"`
	Event   string `json:"event"` // the order status that triggered the event
}

// NewOrderNotifyTask creates an order notification task.
func NewOrderNotifyTask(payload OrderNotifyPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderNotify, body), nil
}
