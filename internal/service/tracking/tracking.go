// Package tracking ведет ленту статусов заказа. Запись только добавляется,
// текущее состояние заказа по ленте не восстанавливается.
package tracking

import (
	"context"
	"fmt"
	"strings"

	"dispatch/internal/entities"
)

type Tracking struct {
	repository Repository
}

func New(repository Repository) *Tracking {
	return &Tracking{repository: repository}
}

// Append пишет событие и возвращает его id. Пустая заметка хранится как NULL.
func (s *Tracking) Append(
	ctx context.Context,
	orderID string,
	status entities.OrderStatusType,
	note *string,
) (int64, error) {
	if strings.TrimSpace(orderID) == "" {
		return 0, ErrInvalidOrderID
	}
	if !status.IsValid() {
		return 0, ErrInvalidStatus
	}
	if note != nil && strings.TrimSpace(*note) == "" {
		note = nil
	}

	id, err := s.repository.Append(ctx, entities.TrackingEvent{
		OrderID: orderID,
		Status:  status,
		Note:    note,
	})
	if err != nil {
		return 0, fmt.Errorf("append tracking event: %w", err)
	}

	return id, nil
}

// ListFor события заказа от новых к старым.
func (s *Tracking) ListFor(ctx context.Context, orderID string) ([]entities.TrackingEvent, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, ErrInvalidOrderID
	}

	events, err := s.repository.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("list tracking events: %w", err)
	}

	return events, nil
}
