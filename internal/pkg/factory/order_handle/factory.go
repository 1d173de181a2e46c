package order_handle

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/entities"
	"dispatch/internal/service/dispatch"
	"dispatch/internal/service/order"
)

type DispatchService interface {
	Confirm(ctx context.Context, orderID string) (*entities.Order, error)
	Dispatch(ctx context.Context, orderID string) (*entities.DispatchResult, error)
	Cancel(ctx context.Context, orderID string, note *string) (*entities.Order, error)
}

// StatusHandlerFactory сопоставляет событию платформы заказов действие диспетчера.
// Повторная доставка сообщения ошибкой не считается.
type StatusHandlerFactory struct {
	dispatchService DispatchService
}

func NewStatusHandlerFactory(dispatchService DispatchService) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		dispatchService: dispatchService,
	}
}

func (f *StatusHandlerFactory) GetHandler(status entities.OrderStatusType) (order.ExecuteFn, error) {
	switch status {
	case entities.OrderConfirmed:
		return f.confirmedHandler, nil
	case entities.OrderCancelled:
		return f.cancelledHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", order.ErrUndefinedStatus, status)
	}
}

func (f *StatusHandlerFactory) confirmedHandler(ctx context.Context, orderID string) error {
	_, err := f.dispatchService.Confirm(ctx, orderID)
	switch {
	case err == nil:
	case errors.Is(err, dispatch.ErrTransitionNotAllowed),
		errors.Is(err, dispatch.ErrOrderAlreadyTerminal):
		// заказ уже ушел дальше подтверждения
		return nil
	default:
		return fmt.Errorf("confirm order %s: %w", orderID, err)
	}

	_, err = f.dispatchService.Dispatch(ctx, orderID)
	switch {
	case err == nil,
		errors.Is(err, dispatch.ErrOfferOutstanding),
		errors.Is(err, dispatch.ErrAlreadyAccepted):
		return nil
	default:
		return fmt.Errorf("dispatch confirmed order %s: %w", orderID, err)
	}
}

func (f *StatusHandlerFactory) cancelledHandler(ctx context.Context, orderID string) error {
	_, err := f.dispatchService.Cancel(ctx, orderID, nil)
	if err != nil && !errors.Is(err, dispatch.ErrOrderAlreadyTerminal) {
		return fmt.Errorf("cancel order %s: %w", orderID, err)
	}
	return nil
}
