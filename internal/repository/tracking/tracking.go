package tracking

import (
	"context"
	"fmt"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/tracking"

	"github.com/jackc/pgx/v5"
)

// Repository только INSERT и SELECT: строки order_tracking не меняются и не удаляются.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Append(ctx context.Context, event entities.TrackingEvent) (int64, error) {
	query := `
		INSERT INTO order_tracking (order_id, status, note)
		VALUES ($1, $2, $3)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(ctx, query, event.OrderID, event.Status.String(), event.Note).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return 0, tracking.ErrOrderNotFound
		}
		return 0, fmt.Errorf("unexpected tracking repository append error: %w", err)
	}

	return id, nil
}

// ListByOrder события от новых к старым, при равном времени выше больший id.
func (r *Repository) ListByOrder(ctx context.Context, orderID string) ([]entities.TrackingEvent, error) {
	query := `
		SELECT id, order_id, status, note, created_at
		FROM order_tracking
		WHERE order_id = $1
		ORDER BY created_at DESC, id DESC`

	rows, err := r.querier.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("unexpected tracking repository list error: %w", err)
	}

	eventsDB, err := pgx.CollectRows(rows, pgx.RowToStructByPos[TrackingEventDB])
	if err != nil {
		return nil, fmt.Errorf("unexpected tracking repository list error: %w", err)
	}

	return ToDomainList(eventsDB), nil
}
