package order

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"dispatch/internal/entities"
)

type Service struct {
	orderReader   OrderReader
	statusFactory HandlerFactory
}

func New(orderReader OrderReader, statusFactory HandlerFactory) *Service {
	return &Service{
		orderReader:   orderReader,
		statusFactory: statusFactory,
	}
}

// ProcessOrderStatusChange применяет событие платформы заказов.
// Действие выбирается по статусу из события, статусы без обработчика пропускаются.
func (s *Service) ProcessOrderStatusChange(ctx context.Context, event entities.OrderEvent) (*entities.Order, error) {
	if strings.TrimSpace(event.OrderID) == "" || event.Status == "" {
		return nil, ErrMissingRequiredFields
	}

	// заказ должен уже лежать в нашей базе
	order, err := s.orderReader.GetOrder(ctx, event.OrderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	executeFn, err := s.statusFactory.GetHandler(event.Status)
	if err != nil {
		if errors.Is(err, ErrUndefinedStatus) {
			return order, nil
		}
		return order, err
	}

	if err := executeFn(ctx, order.ID); err != nil {
		return nil, err
	}

	return order, nil
}
