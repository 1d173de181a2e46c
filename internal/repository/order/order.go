package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/dispatch"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var orderColumns = []string{
	"id", "order_number", "status",
	"assigned_rider_id", "rider_id", "assignment_status", "assignment_timeout_at",
	"pickup_address", "pickup_zone_id", "bulk_order_id", "dispatch_epoch",
	"confirmed_at", "assigned_at", "picked_up_at", "in_transit_at", "delivered_at", "cancelled_at",
	"created_at", "updated_at",
}

// Repository строки orders и связанные с назначением таблицы.
// Сами заказы создает платформа заказов, здесь они только читаются и переводятся.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, orderID string) (*entities.Order, error) {
	return r.getByID(ctx, orderID, false)
}

// GetByIDForUpdate берет строку заказа под блокировку до конца транзакции.
// Вне транзакции блокировка снимается сразу же, смысла в вызове нет.
func (r *Repository) GetByIDForUpdate(ctx context.Context, orderID string) (*entities.Order, error) {
	return r.getByID(ctx, orderID, true)
}

func (r *Repository) getByID(ctx context.Context, orderID string, forUpdate bool) (*entities.Order, error) {
	builder := qb.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": orderID})
	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	var orderModel OrderDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(
		&orderModel.ID,
		&orderModel.OrderNumber,
		&orderModel.Status,
		&orderModel.AssignedRiderID,
		&orderModel.RiderID,
		&orderModel.AssignmentStatus,
		&orderModel.AssignmentTimeoutAt,
		&orderModel.PickupAddress,
		&orderModel.PickupZoneID,
		&orderModel.BulkOrderID,
		&orderModel.DispatchEpoch,
		&orderModel.ConfirmedAt,
		&orderModel.AssignedAt,
		&orderModel.PickedUpAt,
		&orderModel.InTransitAt,
		&orderModel.DeliveredAt,
		&orderModel.CancelledAt,
		&orderModel.CreatedAt,
		&orderModel.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, dispatch.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(&orderModel)
}

func (r *Repository) SaveAssignment(ctx context.Context, orderID string, assignment entities.Assignment) error {
	assignmentModel := FromAssignmentDomain(assignment)

	query, args, err := qb.
		Update("orders").
		Set("assigned_rider_id", assignmentModel.AssignedRiderID).
		Set("rider_id", assignmentModel.RiderID).
		Set("assignment_status", assignmentModel.AssignmentStatus).
		Set("assignment_timeout_at", assignmentModel.AssignmentTimeoutAt).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": orderID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("unexpected order repository save assignment error: %w", err)
	}

	return r.execOne(ctx, "save assignment", query, args...)
}

// SetStatus меняет статус и проставляет метку статуса, если ее еще нет.
func (r *Repository) SetStatus(ctx context.Context, orderID string, status entities.OrderStatusType, at time.Time) error {
	builder := qb.
		Update("orders").
		Set("status", status.String()).
		Set("updated_at", sq.Expr("NOW()"))

	if column := milestoneColumn(status); column != "" {
		builder = builder.Set(column, sq.Expr("COALESCE("+column+", ?)", at))
	}

	query, args, err := builder.
		Where(sq.Eq{"id": orderID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("unexpected order repository set status error: %w", err)
	}

	return r.execOne(ctx, "set status", query, args...)
}

func (r *Repository) SetPickupZone(ctx context.Context, orderID string, zoneID int64) error {
	query := `
		UPDATE orders
		SET pickup_zone_id = $2,
			updated_at = NOW()
		WHERE id = $1`

	return r.execOne(ctx, "set pickup zone", query, orderID, zoneID)
}

// AdvanceEpoch открывает новый раунд офферов и возвращает его номер.
func (r *Repository) AdvanceEpoch(ctx context.Context, orderID string) (int, error) {
	query := `
		UPDATE orders
		SET dispatch_epoch = dispatch_epoch + 1,
			updated_at = NOW()
		WHERE id = $1
		RETURNING dispatch_epoch`

	var epoch int
	err := r.querier.QueryRow(ctx, query, orderID).Scan(&epoch)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, dispatch.ErrOrderNotFound
		}
		return 0, fmt.Errorf("unexpected order repository advance epoch error: %w", err)
	}

	return epoch, nil
}

func (r *Repository) AddExclusion(ctx context.Context, exclusion entities.OfferExclusion) error {
	query := `
		INSERT INTO order_offer_exclusions (order_id, dispatch_epoch, rider_id, reason)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (order_id, dispatch_epoch, rider_id) DO NOTHING`

	_, err := r.querier.Exec(ctx, query,
		exclusion.OrderID,
		exclusion.Epoch,
		exclusion.RiderID,
		exclusion.Reason,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return dispatch.ErrOrderNotFound
		}
		return fmt.Errorf("unexpected order repository add exclusion error: %w", err)
	}

	return nil
}

func (r *Repository) GetExcludedRiders(ctx context.Context, orderID string, epoch int) ([]int64, error) {
	query := `
		SELECT rider_id
		FROM order_offer_exclusions
		WHERE order_id = $1 AND dispatch_epoch = $2
		ORDER BY rider_id`

	rows, err := r.querier.Query(ctx, query, orderID, epoch)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get excluded riders error: %w", err)
	}

	riderIDs, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get excluded riders error: %w", err)
	}
	return riderIDs, nil
}

func (r *Repository) GetBulkSiblingIDs(ctx context.Context, bulkOrderID int64) ([]string, error) {
	query := `
		SELECT id
		FROM orders
		WHERE bulk_order_id = $1
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query, bulkOrderID)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get bulk siblings error: %w", err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get bulk siblings error: %w", err)
	}
	return ids, nil
}

// ListExpiredOffers заказы с оффером, дедлайн которого уже прошел, самые старые первыми.
func (r *Repository) ListExpiredOffers(ctx context.Context, now time.Time, limit uint64) ([]string, error) {
	query, args, err := qb.
		Select("id").
		From("orders").
		Where(sq.Eq{"assignment_status": entities.AssignmentStatusAssigned.String()}).
		Where(sq.LtOrEq{"assignment_timeout_at": now}).
		OrderBy("assignment_timeout_at ASC", "id ASC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list expired offers error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list expired offers error: %w", err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list expired offers error: %w", err)
	}
	return ids, nil
}

func (r *Repository) execOne(ctx context.Context, operation, query string, args ...any) error {
	result, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected order repository %s error: %w", operation, err)
	}

	if result.RowsAffected() == 0 {
		return dispatch.ErrOrderNotFound
	}
	return nil
}
